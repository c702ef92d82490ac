package playback

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Player is one mounted widget bound to a single handle. Mount acquires an
// owner id and a subscription; Close gives both back.
type Player struct {
	coord   *Coordinator
	media   Media
	ownerID string

	unsubscribe func()
	closeOnce   sync.Once
}

// Mount binds m to c under a fresh owner id. onChange, if non-nil, is called
// whenever the active handle changes, reporting whether m is now active.
func Mount(c *Coordinator, m Media, onChange func(active bool)) *Player {
	p := &Player{
		coord:   c,
		media:   m,
		ownerID: uuid.NewString(),
	}
	p.unsubscribe = c.Subscribe(func(active Media) {
		if onChange != nil {
			onChange(active == m)
		}
	})
	return p
}

// OwnerID returns the id the player registers its handle under.
func (p *Player) OwnerID() string {
	return p.ownerID
}

// Media returns the handle bound to the player.
func (p *Player) Media() Media {
	return p.media
}

// Toggle plays or pauses the player's handle.
func (p *Player) Toggle(ctx context.Context) error {
	return p.coord.PlayToggle(ctx, p.media, p.ownerID)
}

// Active reports whether the player currently owns the active handle.
func (p *Player) Active() bool {
	return p.coord.ActiveOwnerID() == p.ownerID && p.coord.IsActive(p.media)
}

// State returns the player's current state.
func (p *Player) State() State {
	return p.coord.State(p.media)
}

// Close unsubscribes the player and, if it owns the active handle, stops
// and releases it. Close is idempotent.
func (p *Player) Close() {
	p.closeOnce.Do(func() {
		p.unsubscribe()
		p.coord.Release(p.ownerID)
	})
}
