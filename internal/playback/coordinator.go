// Package playback coordinates audio handles so that at most one of them
// plays at a time, however many players are mounted.
package playback

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"
	"time"

	"github.com/LXMachado/tinnie-house-revamp/internal/logger"
)

// Media is a playable audio handle. Implementations must be comparable,
// typically a pointer type, since the coordinator tracks handles by identity.
// A nil pointer wrapped in a Media is treated as no handle.
type Media interface {
	// Play starts or resumes playback and may block while media buffers.
	Play(ctx context.Context) error
	Pause()
	Paused() bool
	Position() time.Duration
	SetPosition(d time.Duration)
	// Duration returns zero when the length is not known yet.
	Duration() time.Duration
	SetVolume(v float64)
}

// State is the observable condition of a handle.
type State int

const (
	Stopped State = iota
	Paused
	Playing
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

var (
	// ErrPlaybackStart matches every *StartError.
	ErrPlaybackStart = errors.New("playback failed to start")
	// ErrSuperseded is returned when another handle took over before a start completed.
	ErrSuperseded = errors.New("playback superseded")
	// ErrNilMedia is returned when PlayToggle is given no handle.
	ErrNilMedia = errors.New("playback: nil media")
)

// StartError wraps the media error from a failed start.
type StartError struct {
	OwnerID string
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("playback start failed for %s: %v", e.OwnerID, e.Err)
}

func (e *StartError) Unwrap() []error {
	return []error{ErrPlaybackStart, e.Err}
}

// Listener receives the new active handle, or nil when nothing is active.
type Listener func(active Media)

type subscription struct {
	id uint64
	fn Listener
}

// Coordinator owns the single active handle.
//
// Listeners run synchronously on the goroutine that changed the active
// handle. They may read coordinator state but must not call PlayToggle,
// Release or Close from inside the callback.
type Coordinator struct {
	// bmu orders broadcasts. Lock order is bmu then mu.
	bmu sync.Mutex
	mu  sync.Mutex

	active  Media
	ownerID string
	gen     uint64

	subs   []subscription
	nextID uint64

	logger *logger.Logger
}

// New creates a Coordinator. A nil logger discards panic reports.
func New(log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.Discard()
	}
	return &Coordinator{logger: log.WithComponent("playback")}
}

// PlayToggle plays m on behalf of ownerID. Calling it again with the same
// pair pauses or resumes without notifying listeners. Any other handle that
// is playing is stopped and rewound first.
//
// A start that loses a race to a newer call stops its handle and returns
// ErrSuperseded. A start rejected by the media clears the active handle,
// notifies listeners with nil and returns a *StartError.
func (c *Coordinator) PlayToggle(ctx context.Context, m Media, ownerID string) error {
	if isNil(m) {
		return ErrNilMedia
	}

	c.bmu.Lock()
	c.mu.Lock()

	if c.active == m && c.ownerID == ownerID {
		if !m.Paused() {
			m.Pause()
			c.mu.Unlock()
			c.bmu.Unlock()
			return nil
		}
		gen := c.gen
		c.mu.Unlock()
		c.bmu.Unlock()
		return c.start(ctx, m, ownerID, gen)
	}

	if c.active != nil && !c.active.Paused() {
		stop(c.active)
	}
	c.active = m
	c.ownerID = ownerID
	c.gen++
	gen := c.gen
	subs := c.snapshot()
	c.mu.Unlock()

	c.broadcast(subs, m)
	c.bmu.Unlock()

	return c.start(ctx, m, ownerID, gen)
}

func (c *Coordinator) start(ctx context.Context, m Media, ownerID string, gen uint64) error {
	err := m.Play(ctx)

	c.bmu.Lock()
	c.mu.Lock()

	if c.gen != gen || c.active != m {
		if c.active != m {
			stop(m)
		}
		c.mu.Unlock()
		c.bmu.Unlock()
		return ErrSuperseded
	}

	if err == nil {
		c.mu.Unlock()
		c.bmu.Unlock()
		return nil
	}

	stop(m)
	c.active = nil
	c.ownerID = ""
	c.gen++
	subs := c.snapshot()
	c.mu.Unlock()

	c.logger.WithPlayer(ownerID).Warn("Playback failed to start", "error", err)
	c.broadcast(subs, nil)
	c.bmu.Unlock()

	return &StartError{OwnerID: ownerID, Err: err}
}

// StopActive pauses and rewinds the active handle if it is playing. The
// handle stays active.
func (c *Coordinator) StopActive() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil && !c.active.Paused() {
		stop(c.active)
	}
}

// PauseActive pauses the active handle without rewinding it.
func (c *Coordinator) PauseActive() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil && !c.active.Paused() {
		c.active.Pause()
	}
}

// IsActive reports whether m is the active handle.
func (c *Coordinator) IsActive(m Media) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !isNil(m) && c.active == m
}

// ActiveMedia returns the active handle or nil.
func (c *Coordinator) ActiveMedia() Media {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// ActiveOwnerID returns the owner of the active handle or "".
func (c *Coordinator) ActiveOwnerID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ownerID
}

// SetVolume sets the active handle's volume, clamped to [0, 1].
func (c *Coordinator) SetVolume(v float64) {
	if math.IsNaN(v) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		c.active.SetVolume(math.Max(0, math.Min(1, v)))
	}
}

// Seek moves the active handle, clamped to [0, duration]. An unknown
// duration clamps to zero.
func (c *Coordinator) Seek(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return
	}
	limit := c.active.Duration()
	if limit < 0 {
		limit = 0
	}
	c.active.SetPosition(min(max(d, 0), limit))
}

// Subscribe registers fn for active-handle changes and returns a function
// that removes it. The returned function is safe to call more than once.
func (c *Coordinator) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Release drops ownerID's claim on the active handle, stopping it and
// notifying listeners with nil. It does nothing if ownerID is not active.
func (c *Coordinator) Release(ownerID string) {
	c.bmu.Lock()
	defer c.bmu.Unlock()

	c.mu.Lock()
	if c.active == nil || c.ownerID != ownerID {
		c.mu.Unlock()
		return
	}
	stop(c.active)
	c.active = nil
	c.ownerID = ""
	c.gen++
	subs := c.snapshot()
	c.mu.Unlock()

	c.broadcast(subs, nil)
}

// Close stops the active handle and forgets every handle and listener.
func (c *Coordinator) Close() {
	c.bmu.Lock()
	defer c.bmu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil && !c.active.Paused() {
		stop(c.active)
	}
	c.active = nil
	c.ownerID = ""
	c.gen++
	c.subs = nil
}

// StateOf derives the state of m from the handle itself. Media exposes only
// Paused and Position, so a paused handle sitting at position zero reads as
// Stopped, including one paused by a toggle before it advanced.
func StateOf(m Media) State {
	switch {
	case isNil(m):
		return Stopped
	case !m.Paused():
		return Playing
	case m.Position() > 0:
		return Paused
	default:
		return Stopped
	}
}

// State returns the state of m as seen by the coordinator.
func (c *Coordinator) State(m Media) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return StateOf(m)
}

// isNil also catches a typed nil pointer stored in the interface.
func isNil(m Media) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (c *Coordinator) snapshot() []subscription {
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	return subs
}

func (c *Coordinator) broadcast(subs []subscription, active Media) {
	for _, s := range subs {
		c.notify(s, active)
	}
}

func (c *Coordinator) notify(s subscription, active Media) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Playback listener panicked", "subscription", s.id, "panic", r)
		}
	}()
	s.fn(active)
}

func stop(m Media) {
	m.Pause()
	m.SetPosition(0)
}
