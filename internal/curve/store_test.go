package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts publisher invocations and keeps the last schedule.
type recorder struct {
	calls int
	last  []float64
}

func (r *recorder) receive(seconds []float64) {
	r.calls++
	r.last = seconds
}

func TestReplaceAllPublishesOnce(t *testing.T) {
	rec := &recorder{}
	s := NewStore(rec.receive)

	s.ReplaceAll(Generate(keysFor(3), Uniform, false, 10))

	assert.Equal(t, 1, rec.calls)
	require.Len(t, rec.last, 3)
	assert.InDelta(t, 0.0, rec.last[0], 1e-9)
	assert.InDelta(t, 5.0, rec.last[1], 1e-9)
	assert.InDelta(t, 10.0, rec.last[2], 1e-9)
}

func TestUpdateOneTouchesExactlyOneMarker(t *testing.T) {
	rec := &recorder{}
	s := NewStore(rec.receive)
	s.ReplaceAll(Generate(keysFor(3), Quadratic, false, 10))
	before := s.Markers()
	rec.calls = 0

	require.True(t, s.UpdateOne(1, 60, 10))

	assert.Equal(t, 1, rec.calls)
	after := s.Markers()
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, before[1].X, after[1].X, "drag never moves the slot")
	assert.InDelta(t, 60.0, after[1].Y, 1e-9)
	assert.InDelta(t, 6.0, after[1].Delay, 1e-9)
}

func TestUpdateOneUnknownIndexIsNoop(t *testing.T) {
	rec := &recorder{}
	s := NewStore(rec.receive)
	s.ReplaceAll(Generate(keysFor(2), Uniform, false, 10))
	before := s.Markers()
	rec.calls = 0

	assert.False(t, s.UpdateOne(9, 50, 10))
	assert.Zero(t, rec.calls, "a missed lookup must not publish")
	assert.Equal(t, before, s.Markers())
}

func TestRescaleKeepsShape(t *testing.T) {
	rec := &recorder{}
	s := NewStore(rec.receive)
	s.ReplaceAll(Generate(keysFor(4), Quadratic, false, 10))
	before := s.Markers()
	rec.calls = 0

	s.Rescale(30)

	assert.Equal(t, 1, rec.calls)
	for i, m := range s.Markers() {
		assert.Equal(t, before[i].X, m.X)
		assert.Equal(t, before[i].Y, m.Y, "rescale must not move markers")
		assert.InDelta(t, m.Y/100*30, m.Delay, 1e-9)
	}
}

func TestClearDoesNotPublish(t *testing.T) {
	rec := &recorder{}
	s := NewStore(rec.receive)
	s.ReplaceAll(Generate(keysFor(2), Uniform, false, 10))
	rec.calls = 0

	s.Clear()

	assert.Zero(t, rec.calls)
	assert.Zero(t, s.Len())
}

func TestMarkersReturnsCopy(t *testing.T) {
	s := NewStore(nil)
	s.ReplaceAll(Generate(keysFor(2), Uniform, false, 10))

	view := s.Markers()
	view[0].Y = 99

	assert.NotEqual(t, 99.0, s.Markers()[0].Y)
}

func TestMarkerOutOfRange(t *testing.T) {
	s := NewStore(nil)
	assert.Nil(t, s.Marker(0))
	s.ReplaceAll(Generate(keysFor(1), Uniform, false, 10))
	require.NotNil(t, s.Marker(0))
	assert.Nil(t, s.Marker(-1))
	assert.Nil(t, s.Marker(1))
}
