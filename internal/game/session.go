package game

import (
	"time"

	"github.com/YangRuhao/Snake-Game/internal/entities"
	"github.com/YangRuhao/Snake-Game/internal/playfield"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Session is one game: the snake, the cherry, the score and the status.
// It is not safe for concurrent use; Loop is what serializes access to it.
type Session struct {
	field  *playfield.Playfield
	rng    playfield.Intn
	logger *log.Logger

	id     uuid.UUID
	snake  *entities.Snake
	cherry *entities.Point
	score  int
	best   int
	status Status
	ticks  int
}

// NewRand returns the cherry RNG. A zero seed means "seed from the clock".
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func NewSession(field *playfield.Playfield, rng playfield.Intn, logger *log.Logger) *Session {
	if field == nil {
		field = playfield.Default()
	}
	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = log.Default()
	}
	spawn := field.Spawn()
	s := &Session{
		field:  field,
		rng:    rng,
		logger: logger,
		id:     uuid.New(),
		snake:  entities.NewSnake(spawn.X, spawn.Y),
		status: StatusNotStarted,
	}
	return s
}

func (s *Session) Status() Status { return s.status }
func (s *Session) Score() int     { return s.score }
func (s *Session) Best() int      { return s.best }

// Tick advances the game by one step. It does nothing unless the session is
// running, so a tick that races a pause or a game over is harmless.
func (s *Session) Tick() []Effect {
	if s.status != StatusRunning {
		return nil
	}
	s.ticks++
	s.snake.Move()

	if s.cherry != nil && s.snake.Head().IntersectsWithin(*s.cherry, playfield.PickupTolerance) {
		s.snake.AddTail()
		s.cherry = nil
		s.score++
		s.logger.Debug("cherry eaten", "session", s.id, "score", s.score, "length", s.snake.Len())
	}

	if s.cherry == nil {
		c := s.field.RandomCherry(s.rng)
		s.cherry = &c
	}

	head := s.snake.Head()
	if s.field.Escaped(head) || s.snake.BitesItself() {
		s.logger.Info("snake crashed", "session", s.id, "head", head, "score", s.score)
		return s.dispatch(EventCollision)
	}
	return nil
}

// HandleKey applies one key press and returns the effects the caller still
// has to carry out (timer control).
func (s *Session) HandleKey(k Key) []Effect {
	switch s.status {
	case StatusNotStarted:
		// Any key starts the game and is consumed by doing so.
		return s.dispatch(EventStart)
	case StatusRunning:
		if d, ok := k.Direction(); ok {
			s.snake.Turn(d)
			return nil
		}
	case StatusGameOver:
		if k == KeyConfirm {
			return s.dispatch(EventConfirm)
		}
		return nil
	}
	if k == KeyPause {
		return s.dispatch(EventPause)
	}
	return nil
}

// dispatch runs the status machine and applies the effects that belong to
// the session itself. All effects are returned so the caller can pick the
// ones it owns.
func (s *Session) dispatch(ev Event) []Effect {
	from := s.status
	to, effects := Transition(from, ev)
	if to == from && len(effects) == 0 {
		return nil
	}
	for _, e := range effects {
		switch e {
		case EffectReset:
			s.reset()
		case EffectRecordBest:
			s.best = max(s.score, s.best)
		}
	}
	s.status = to
	s.logger.Info("status changed", "session", s.id, "from", from, "to", to, "score", s.score, "best", s.best)
	return effects
}

func (s *Session) reset() {
	spawn := s.field.Spawn()
	s.id = uuid.New()
	s.score = 0
	s.cherry = nil
	s.ticks = 0
	s.snake = entities.NewSnake(spawn.X, spawn.Y)
}

// Snapshot copies the current state for renderers.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.id,
		Status:    s.status,
		Score:     s.score,
		Best:      s.best,
		Head:      s.snake.Head(),
		Heading:   s.snake.Heading(),
		Tail:      s.snake.Tail(),
		Ticks:     s.ticks,
	}
	if s.cherry != nil {
		c := *s.cherry
		snap.Cherry = &c
	}
	return snap
}
