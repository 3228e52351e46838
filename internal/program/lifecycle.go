package program

import "math"

// State is the open/close phase of a program window.
type State int

const (
	StateClosed  State = iota // icon only
	StateOpening              // launch animation running
	StateOpen                 // window visible and interactive
	StateClosing              // close animation running
)

func (s State) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Config holds the animation timings shared by every program.
type Config struct {
	LaunchTime     float64 // seconds from launch to open
	LaunchInterval float64 // animation step; progress is quantized to it
	CloseTime      float64 // seconds from close to closed
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		LaunchTime:     1.0,
		LaunchInterval: 0.05,
		CloseTime:      0.5,
	}
}

// Lifecycle is the program state machine:
//
//	Closed --Launch--> Opening --LaunchTime--> Open --Close--> Closing --CloseTime--> Closed
//
// Timers advance only through Update so a paused frame pump pauses every
// transition.
type Lifecycle struct {
	cfg   Config
	state State
	timer float64
}

// NewLifecycle returns a closed lifecycle.
func NewLifecycle(cfg Config) *Lifecycle {
	return &Lifecycle{cfg: cfg}
}

func (l *Lifecycle) State() State    { return l.state }
func (l *Lifecycle) Closed() bool    { return l.state == StateClosed }
func (l *Lifecycle) Opening() bool   { return l.state == StateOpening }
func (l *Lifecycle) Open() bool      { return l.state == StateOpen }
func (l *Lifecycle) Closing() bool   { return l.state == StateClosing }
func (l *Lifecycle) Timer() float64  { return l.timer }
func (l *Lifecycle) Config() Config  { return l.cfg }
func (l *Lifecycle) Animating() bool { return l.Opening() || l.Closing() }

// Launch starts the opening animation. It reports false and does nothing
// unless the program is fully closed.
func (l *Lifecycle) Launch() bool {
	if l.state != StateClosed {
		return false
	}
	l.state = StateOpening
	l.timer = 0
	return true
}

// Close starts the closing animation. It reports false and does nothing
// unless the program is open.
func (l *Lifecycle) Close() bool {
	if l.state != StateOpen {
		return false
	}
	l.state = StateClosing
	l.timer = 0
	return true
}

// Update advances the running animation and reports whether the state
// changed.
func (l *Lifecycle) Update(dt float64) bool {
	switch l.state {
	case StateOpening:
		l.timer += dt
		if l.timer >= l.cfg.LaunchTime {
			l.state = StateOpen
			return true
		}
	case StateClosing:
		l.timer += dt
		if l.timer >= l.cfg.CloseTime {
			l.state = StateClosed
			return true
		}
	}
	return false
}

// Progress returns the animation position in [0, 1], stepped down to a
// multiple of LaunchInterval. It is 0 outside the animated states.
func (l *Lifecycle) Progress() float64 {
	var duration float64
	switch l.state {
	case StateOpening:
		duration = l.cfg.LaunchTime
	case StateClosing:
		duration = l.cfg.CloseTime
	default:
		return 0
	}
	if duration <= 0 {
		return 1
	}
	stepped := l.timer
	if l.cfg.LaunchInterval > 0 {
		stepped -= math.Mod(l.timer, l.cfg.LaunchInterval)
	}
	return min(1, max(0, stepped/duration))
}
