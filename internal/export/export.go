// Package export is the downstream consumer of the editor's published
// delay schedules. It holds the most recent schedule during an editing
// session and writes the accepted result as YAML.
package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/stagger/internal/items"
)

// Entry is one scheduled item in the written output.
type Entry struct {
	Key          string  `yaml:"key"`
	DelaySeconds float64 `yaml:"delay_seconds"`
}

// Sink receives every schedule the editor publishes and remembers the
// latest one. The min delay floor is applied here, on the way out; the
// editor's own delay math never sees it.
type Sink struct {
	keys     []string
	minDelay float64
	latest   []float64
	received int
}

// NewSink creates a sink for the given ordered item keys. minDelay below
// zero is treated as zero.
func NewSink(list []items.Item, minDelay float64) *Sink {
	if minDelay < 0 {
		minDelay = 0
	}
	return &Sink{keys: items.Keys(list), minDelay: minDelay}
}

// Receive is wired as the editor's onChange callback.
func (s *Sink) Receive(seconds []float64) {
	s.latest = append(s.latest[:0], seconds...)
	s.received++
}

// Received reports how many schedules have been published so far.
func (s *Sink) Received() int {
	return s.received
}

// Schedule returns the latest schedule as entries in item order, with the
// min delay floor applied.
func (s *Sink) Schedule() []Entry {
	entries := make([]Entry, 0, len(s.latest))
	for i, d := range s.latest {
		key := ""
		if i < len(s.keys) {
			key = s.keys[i]
		}
		if d < s.minDelay {
			d = s.minDelay
		}
		entries = append(entries, Entry{Key: key, DelaySeconds: d})
	}
	return entries
}

// WriteYAML writes the accepted schedule to w.
func (s *Sink) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s.Schedule()); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return enc.Close()
}
