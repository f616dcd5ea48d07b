package curve

// Config is the process-wide editor state: which preset the current layout
// came from, flip direction, and the max delay bound. It is an explicit
// record passed through the editor rather than ambient package state.
type Config struct {
	Kind Kind
	// LastPreset tracks the most recent non-custom preset. Flip and reset
	// regenerate from it once the layout has been dragged into Custom;
	// custom edits are never preserved across flip.
	LastPreset Kind
	Flipped    bool
	MaxDelay   float64 // seconds, clamped to [1,60]
}

// DefaultConfig returns the initial editor state: quadratic ramp, not
// flipped, 10 second bound.
func DefaultConfig() Config {
	return Config{
		Kind:       Quadratic,
		LastPreset: Quadratic,
		MaxDelay:   DefaultMaxDelay,
	}
}

// Editor owns the position store and curve configuration and exposes every
// operation the UI drives: item (re)loading, preset application, flip,
// reset, rescale, and drag commit. All mutations run on the Update loop.
type Editor struct {
	cfg       Config
	store     *Store
	keys      []string
	lastCount int
}

// NewEditor creates an editor with a clamped copy of cfg. onChange receives
// the derived delay schedule after every store mutation.
func NewEditor(cfg Config, onChange func([]float64)) *Editor {
	cfg.MaxDelay = ClampMaxDelay(cfg.MaxDelay)
	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	if cfg.LastPreset == Custom {
		cfg.LastPreset = Quadratic
	}
	return &Editor{
		cfg:   cfg,
		store: NewStore(onChange),
	}
}

// SetItems replaces the external collection. The layout is regenerated only
// when the item count differs from the last seen count (or on first receipt
// of a non-empty list), discarding any drag edits. An empty list destroys
// the layout without notifying downstream.
func (e *Editor) SetItems(keys []string) {
	if len(keys) == 0 {
		e.keys = nil
		e.lastCount = 0
		e.store.Clear()
		return
	}
	e.keys = append([]string(nil), keys...)
	if len(keys) == e.lastCount {
		return
	}
	e.lastCount = len(keys)
	e.regenerate()
}

// ApplyPreset regenerates the full layout from a named preset with the
// current flip state. Custom is not a generatable preset and is ignored.
func (e *Editor) ApplyPreset(kind Kind) {
	if kind == Custom {
		return
	}
	e.cfg.Kind = kind
	e.cfg.LastPreset = kind
	e.regenerate()
}

// ToggleFlip inverts the curve direction by regenerating from the last
// non-custom preset with the opposite flip state. A dragged layout loses
// its edits; random resamples.
func (e *Editor) ToggleFlip() {
	e.cfg.Flipped = !e.cfg.Flipped
	e.cfg.Kind = e.cfg.LastPreset
	e.regenerate()
}

// Reset reapplies the quadratic preset with the current flip state.
func (e *Editor) Reset() {
	e.ApplyPreset(Quadratic)
}

// SetMaxDelay reclamps v into [1,60] and rescales every marker's delay in
// place. Normalized positions are untouched; only the seconds
// interpretation changes, so drag edits survive a rescale.
func (e *Editor) SetMaxDelay(v float64) {
	e.cfg.MaxDelay = ClampMaxDelay(v)
	if e.store.Len() == 0 {
		return
	}
	e.store.Rescale(e.cfg.MaxDelay)
}

// SetMaxDelayText parses raw text input per ParseMaxDelay and applies it.
func (e *Editor) SetMaxDelayText(s string) {
	e.SetMaxDelay(ParseMaxDelay(s))
}

// CommitDrag writes a drag gesture's final y for one marker and marks the
// layout custom. The y is clamped; an unknown index is a no-op and does
// not change the curve kind.
func (e *Editor) CommitDrag(index int, y float64) {
	if !e.store.UpdateOne(index, Clamp01e2(y), e.cfg.MaxDelay) {
		return
	}
	e.cfg.Kind = Custom
}

// Markers returns a copy of the current ordered marker sequence.
func (e *Editor) Markers() []Marker {
	return e.store.Markers()
}

// Delays returns the current derived schedule in item order.
func (e *Editor) Delays() []float64 {
	return e.store.Delays()
}

// Config returns the current configuration record.
func (e *Editor) Config() Config {
	return e.cfg
}

// Empty reports whether there is no layout to edit.
func (e *Editor) Empty() bool {
	return e.store.Len() == 0
}

func (e *Editor) regenerate() {
	// Custom cannot be generated; fall back to the preset it diverged from.
	if e.cfg.Kind == Custom {
		e.cfg.Kind = e.cfg.LastPreset
	}
	markers := Generate(e.keys, e.cfg.Kind, e.cfg.Flipped, e.cfg.MaxDelay)
	if markers == nil {
		return
	}
	e.store.ReplaceAll(markers)
}
