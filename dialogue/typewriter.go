// Package dialogue reveals conversation lines one rune at a time.
package dialogue

// DefaultInterval is the seconds of scaled time between revealed runes.
const DefaultInterval = 0.05

type reveal struct {
	generation uint64
	line       []rune
	shown      int
	wait       float64
}

// Typewriter is a single dialogue session. It is driven by Update with the
// scaled tick delta, so it freezes while the game is paused.
type Typewriter struct {
	Interval float64

	lines      []string
	index      int
	text       string
	active     bool
	generation uint64
	pending    *reveal
}

func NewTypewriter(interval float64) *Typewriter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Typewriter{Interval: interval}
}

// SetLines replaces the conversation and rewinds to the first line. Any
// reveal in flight is dropped.
func (t *Typewriter) SetLines(lines []string) {
	t.cancel()
	t.lines = append(t.lines[:0:0], lines...)
	t.index = 0
	t.text = ""
}

// Start shows the surface and begins revealing the current line.
func (t *Typewriter) Start() {
	t.cancel()
	t.index = 0
	t.text = ""
	if len(t.lines) == 0 {
		t.active = false
		return
	}
	t.active = true
	t.begin()
}

// Update advances the reveal by dt seconds.
func (t *Typewriter) Update(dt float64) {
	r := t.pending
	if r == nil || r.generation != t.generation || dt <= 0 {
		return
	}
	interval := t.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	r.wait += dt
	for r.wait >= interval && r.shown < len(r.line) {
		r.wait -= interval
		r.shown++
	}
	t.text = string(r.line[:r.shown])
	if r.shown >= len(r.line) {
		t.pending = nil
	}
}

// Confirm completes a line still being revealed, otherwise moves to the
// next line, closing the surface after the last one.
func (t *Typewriter) Confirm() {
	if !t.active {
		return
	}
	if !t.LineComplete() {
		t.cancel()
		t.text = t.lines[t.index]
		return
	}
	if t.index+1 < len(t.lines) {
		t.index++
		t.text = ""
		t.begin()
		return
	}
	t.cancel()
	t.active = false
	t.text = ""
}

func (t *Typewriter) Text() string { return t.text }

func (t *Typewriter) Active() bool { return t.active }

func (t *Typewriter) Index() int { return t.index }

func (t *Typewriter) Lines() []string { return t.lines }

// LineComplete reports whether the current line is fully shown.
func (t *Typewriter) LineComplete() bool {
	if !t.active || t.index >= len(t.lines) {
		return true
	}
	return t.pending == nil && t.text == t.lines[t.index]
}

func (t *Typewriter) begin() {
	line := []rune(t.lines[t.index])
	t.generation++
	r := &reveal{generation: t.generation, line: line}
	if len(line) > 0 {
		r.shown = 1
	}
	t.text = string(line[:r.shown])
	if r.shown < len(line) {
		t.pending = r
	} else {
		t.pending = nil
	}
}

func (t *Typewriter) cancel() {
	t.generation++
	t.pending = nil
}
