// Package spotlight tracks which release is the label's current flagship.
package spotlight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
)

// ErrEmptyBundleID is returned when saving a blank spotlight id.
var ErrEmptyBundleID = errors.New("spotlight bundle id cannot be empty")

// Settings is the key-value store the spotlight id is persisted in.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Holder guards the current spotlight bundle id.
type Holder struct {
	mu       sync.RWMutex
	bundleID string
}

// NewHolder returns a Holder starting at bundleID.
func NewHolder(bundleID string) *Holder {
	return &Holder{bundleID: strings.TrimSpace(bundleID)}
}

// BundleID returns the current spotlight bundle id.
func (h *Holder) BundleID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.bundleID
}

// Set swaps the spotlight bundle id in memory.
func (h *Holder) Set(bundleID string) {
	h.mu.Lock()
	h.bundleID = strings.TrimSpace(bundleID)
	h.mu.Unlock()
}

// Load builds a Holder from the persisted value, or fallback when nothing
// has been stored yet.
func Load(ctx context.Context, settings Settings, fallback string) (*Holder, error) {
	id, err := settings.Get(ctx, constants.SettingSpotlightBundleID)
	if err != nil {
		return nil, fmt.Errorf("failed to read spotlight: %w", err)
	}
	if strings.TrimSpace(id) == "" {
		id = fallback
	}
	return NewHolder(id), nil
}

// Save persists bundleID and then swaps it into h.
func (h *Holder) Save(ctx context.Context, settings Settings, bundleID string) error {
	bundleID = strings.TrimSpace(bundleID)
	if bundleID == "" {
		return ErrEmptyBundleID
	}
	if err := settings.Set(ctx, constants.SettingSpotlightBundleID, bundleID); err != nil {
		return fmt.Errorf("failed to persist spotlight: %w", err)
	}
	h.Set(bundleID)
	return nil
}

// Reset forgets the persisted value and swaps fallback into h.
func (h *Holder) Reset(ctx context.Context, settings Settings, fallback string) error {
	if err := settings.Delete(ctx, constants.SettingSpotlightBundleID); err != nil {
		return fmt.Errorf("failed to clear spotlight: %w", err)
	}
	h.Set(fallback)
	return nil
}
