package playback

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activeLog struct {
	mu     sync.Mutex
	values []bool
}

func (l *activeLog) record(active bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = append(l.values, active)
}

func (l *activeLog) all() []bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]bool(nil), l.values...)
}

func TestPlayersHandOff(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	logA, logB := &activeLog{}, &activeLog{}
	a := Mount(c, newFake("a"), logA.record)
	b := Mount(c, newFake("b"), logB.record)
	defer a.Close()
	defer b.Close()

	assert.NotEqual(t, a.OwnerID(), b.OwnerID())

	require.NoError(t, a.Toggle(ctx))
	assert.True(t, a.Active())
	assert.Equal(t, Playing, a.State())

	require.NoError(t, b.Toggle(ctx))
	assert.False(t, a.Active())
	assert.Equal(t, Stopped, a.State())
	assert.Equal(t, Playing, b.State())

	assert.Equal(t, []bool{true, false}, logA.all())
	assert.Equal(t, []bool{false, true}, logB.all())
}

func TestPlayerToggle(t *testing.T) {
	c := New(nil)
	ctx := context.Background()
	p := Mount(c, newFake("a"), nil)
	defer p.Close()

	require.NoError(t, p.Toggle(ctx))
	assert.Equal(t, Playing, p.State())

	require.NoError(t, p.Toggle(ctx))
	assert.True(t, p.Active())
	assert.NotEqual(t, Playing, p.State())
}

func TestPlayerCloseReleasesActive(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	observer := &activeLog{}
	other := Mount(c, newFake("other"), observer.record)
	defer other.Close()

	p := Mount(c, newFake("a"), nil)
	require.NoError(t, p.Toggle(ctx))

	p.Close()
	p.Close()

	assert.Nil(t, c.ActiveMedia())
	assert.Equal(t, Stopped, StateOf(p.Media()))
	assert.Equal(t, []bool{false, false}, observer.all())
}

func TestPlayerCloseLeavesOthersPlaying(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	a := Mount(c, newFake("a"), nil)
	b := Mount(c, newFake("b"), nil)
	defer b.Close()

	require.NoError(t, b.Toggle(ctx))
	a.Close()

	assert.True(t, b.Active())
	assert.Equal(t, Playing, b.State())
}
