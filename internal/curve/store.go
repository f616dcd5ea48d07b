package curve

// Store holds the authoritative ordered marker sequence, index-aligned with
// the external collection at the time of the last regeneration. It is only
// mutated from Bubbletea's single-threaded Update loop, so no locking.
//
// Every mutation synchronously republishes the derived delay schedule to
// the onChange subscriber, exactly once per mutation.
type Store struct {
	markers  []Marker
	onChange func(seconds []float64)
}

// NewStore creates an empty store. onChange may be nil.
func NewStore(onChange func([]float64)) *Store {
	return &Store{onChange: onChange}
}

// ReplaceAll swaps in a full new marker sequence and publishes.
func (s *Store) ReplaceAll(markers []Marker) {
	s.markers = markers
	s.publish()
}

// UpdateOne replaces the Y of the marker whose Index field matches index,
// recomputing its delay under maxDelay. All other markers, and the target's
// X, are untouched. Lookup is by Index rather than slice position even
// though the two are expected to coincide. Returns false without
// publishing when no marker matches.
func (s *Store) UpdateOne(index int, newY, maxDelay float64) bool {
	for i := range s.markers {
		if s.markers[i].Index != index {
			continue
		}
		s.markers[i].Y = newY
		s.markers[i].Delay = Seconds(newY, maxDelay)
		s.publish()
		return true
	}
	return false
}

// Rescale recomputes every marker's delay from its current Y under a new
// max bound. Y values are untouched: rescaling reinterprets the same
// normalized shape, it does not regenerate it. Publishes.
func (s *Store) Rescale(maxDelay float64) {
	for i := range s.markers {
		s.markers[i].Delay = Seconds(s.markers[i].Y, maxDelay)
	}
	s.publish()
}

// Clear empties the store without publishing. Used when the external item
// list becomes empty; downstream must not be notified for zero items.
func (s *Store) Clear() {
	s.markers = nil
}

// Markers returns a copy of the ordered sequence.
func (s *Store) Markers() []Marker {
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Marker returns the marker at slice position i, or nil if out of range.
func (s *Store) Marker(i int) *Marker {
	if i < 0 || i >= len(s.markers) {
		return nil
	}
	m := s.markers[i]
	return &m
}

// Len returns the number of markers.
func (s *Store) Len() int {
	return len(s.markers)
}

// Delays returns the derived schedule in stored (itemIndex) order.
func (s *Store) Delays() []float64 {
	out := make([]float64, len(s.markers))
	for i, m := range s.markers {
		out[i] = m.Delay
	}
	return out
}

func (s *Store) publish() {
	if s.onChange == nil {
		return
	}
	s.onChange(s.Delays())
}
