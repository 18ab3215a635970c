package game

// Status is the phase a session is in.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event drives the status machine.
type Event int

const (
	EventStart Event = iota + 1
	EventPause
	EventCollision
	EventConfirm
)

// Effect is a side effect a transition asks its caller to carry out.
type Effect int

const (
	EffectStartTimer Effect = iota + 1
	EffectStopTimer
	EffectRecordBest
	EffectReset
)

func (e Effect) String() string {
	switch e {
	case EffectStartTimer:
		return "start_timer"
	case EffectStopTimer:
		return "stop_timer"
	case EffectRecordBest:
		return "record_best"
	case EffectReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Transition is the whole status machine. Pairs it does not list leave the
// status unchanged and request nothing.
//
//	NotStarted --start-->     Running   [start timer]
//	Running    --pause-->     Paused    [stop timer, record best]
//	Paused     --pause-->     Running   [start timer]
//	Running    --collision--> GameOver  [stop timer, record best]
//	GameOver   --confirm-->   Running   [reset, start timer]
func Transition(from Status, ev Event) (Status, []Effect) {
	switch {
	case from == StatusNotStarted && ev == EventStart:
		return StatusRunning, []Effect{EffectStartTimer}
	case from == StatusRunning && ev == EventPause:
		return StatusPaused, []Effect{EffectStopTimer, EffectRecordBest}
	case from == StatusPaused && ev == EventPause:
		return StatusRunning, []Effect{EffectStartTimer}
	case from == StatusRunning && ev == EventCollision:
		return StatusGameOver, []Effect{EffectStopTimer, EffectRecordBest}
	case from == StatusGameOver && ev == EventConfirm:
		return StatusRunning, []Effect{EffectReset, EffectStartTimer}
	default:
		return from, nil
	}
}
