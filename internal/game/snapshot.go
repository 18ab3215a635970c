package game

import (
	"github.com/YangRuhao/Snake-Game/internal/entities"

	"github.com/google/uuid"
)

// Snapshot is an immutable copy of a session, safe to hand to another
// goroutine.
type Snapshot struct {
	SessionID uuid.UUID
	Status    Status
	Score     int
	Best      int
	Head      entities.Point
	Heading   entities.Direction
	Tail      []entities.Point
	Cherry    *entities.Point
	Ticks     int
}

// Source is anything that can hand out the latest snapshot.
type Source interface {
	Snapshot() Snapshot
}
