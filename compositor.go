// Package scrim is a terminal-screen compositor: a styled cell grid with
// double-buffered diffing that emits a minimal update stream to the
// terminal each frame.
package scrim

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Compositor owns a pair of cell buffers and a clip stack, exposing the
// drawing primitives widgets render through. Drawing goes to the current
// buffer; Render diffs it against the previous frame and emits a minimal
// operation stream to a Terminal.
//
// A Compositor is not safe for concurrent use. One frame is one full draw
// pass followed by one Render call, all from the same goroutine.
type Compositor struct {
	cur  *Buffer
	prev *Buffer
	clip *clipStack

	style Style // current style for SetChar/WriteString/Fill

	// Render bookkeeping
	lastStyle  Style // last style the terminal was left in
	styleKnown bool  // false until we have emitted a style this session
	changed    []int // scratch list of cell indices pending commit
	stats      RenderStats

	debugRender bool
}

// RenderStats holds statistics from the last render.
type RenderStats struct {
	DirtyRows    int
	ChangedCells int
	CursorMoves  int
	StyleChanges int
}

// NewCompositor creates a compositor with buffers of the given size.
func NewCompositor(width, height int) (*Compositor, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("compositor size must be positive, got %dx%d", width, height)
	}
	cur := NewBuffer(width, height)
	return &Compositor{
		cur:         cur,
		prev:        NewBuffer(width, height),
		clip:        newClipStack(cur.Bounds()),
		debugRender: os.Getenv("SCRIM_DEBUG_RENDER") != "",
	}, nil
}

// Width returns the buffer width.
func (c *Compositor) Width() int {
	return c.cur.width
}

// Height returns the buffer height.
func (c *Compositor) Height() int {
	return c.cur.height
}

// Bounds returns the full drawing extent.
func (c *Compositor) Bounds() Rect {
	return c.cur.Bounds()
}

// SetStyle sets the current style used by subsequent drawing calls.
func (c *Compositor) SetStyle(s Style) {
	c.style = s
}

// Style returns the current drawing style.
func (c *Compositor) Style() Style {
	return c.style
}

// SetChar writes one cell with the current style. Writes outside the
// active clip region or the buffer are silent no-ops.
func (c *Compositor) SetChar(x, y int, r rune) {
	c.SetCell(x, y, r, c.style)
}

// SetCell writes one cell with an explicit style, subject to the clip.
func (c *Compositor) SetCell(x, y int, r rune, style Style) {
	if !c.clip.current().Contains(x, y) {
		return
	}
	c.cur.Set(x, y, NewCell(r, style))
}

// WriteString writes runes left-to-right from (x, y) in the current style,
// stopping at the clip's right edge. Each rune occupies one cell; callers
// rendering double-width glyphs blank the following cell themselves.
// Returns the number of cells written.
func (c *Compositor) WriteString(x, y int, s string) int {
	clip := c.clip.current()
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	for _, r := range s {
		if x >= clip.Right() {
			break
		}
		if x >= clip.X {
			c.cur.Set(x, y, NewCell(r, c.style))
			written++
		}
		x++
	}
	return written
}

// Fill fills the intersection of rect and the active clip with the given
// rune in the current style.
func (c *Compositor) Fill(r Rect, ch rune) {
	region := r.Intersect(c.clip.current())
	c.cur.FillRect(region, NewCell(ch, c.style))
}

// Clear resets the whole current buffer to empty cells, ignoring the clip.
func (c *Compositor) Clear() {
	c.cur.Clear()
}

// HLine draws a horizontal line in the current style.
func (c *Compositor) HLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		c.SetChar(x+i, y, r)
	}
}

// VLine draws a vertical line in the current style.
func (c *Compositor) VLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		c.SetChar(x, y+i, r)
	}
}

// Box draws a rectangular frame in the current style. Border glyphs that
// land on existing border glyphs merge into tee and cross junctions, so
// adjacent boxes share separators. A rect narrower than 2 in either
// dimension is a no-op.
func (c *Compositor) Box(r Rect, border BorderStyle) {
	if r.W < 2 || r.H < 2 {
		return
	}

	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1

	c.setBorder(r.X, r.Y, border.TopLeft)
	c.setBorder(right, r.Y, border.TopRight)
	c.setBorder(r.X, bottom, border.BottomLeft)
	c.setBorder(right, bottom, border.BottomRight)

	for i := r.X + 1; i < right; i++ {
		c.setBorder(i, r.Y, border.Horizontal)
		c.setBorder(i, bottom, border.Horizontal)
	}
	for i := r.Y + 1; i < bottom; i++ {
		c.setBorder(r.X, i, border.Vertical)
		c.setBorder(right, i, border.Vertical)
	}
}

// setBorder writes a border glyph, merging with any border glyph already
// in the cell.
func (c *Compositor) setBorder(x, y int, r rune) {
	if !c.clip.current().Contains(x, y) {
		return
	}
	if merged, ok := mergeBorders(c.cur.Get(x, y).Rune, r); ok {
		r = merged
	}
	c.cur.Set(x, y, NewCell(r, c.style))
}

// GetCell returns the cell most recently drawn at (x, y).
func (c *Compositor) GetCell(x, y int) Cell {
	return c.cur.Get(x, y)
}

// PushClip intersects rect with the active clip region and makes the
// result active.
func (c *Compositor) PushClip(r Rect) {
	c.clip.push(r)
}

// PopClip restores the previous clip region. Popping the root extent is
// a no-op.
func (c *Compositor) PopClip() {
	c.clip.pop()
}

// Clip returns the active clip region.
func (c *Compositor) Clip() Rect {
	return c.clip.current()
}

// WithClip runs fn with rect pushed onto the clip stack, restoring the
// previous region even if fn panics or leaves its own pushes unpopped.
func (c *Compositor) WithClip(r Rect, fn func()) {
	depth := c.clip.depth()
	c.clip.push(r)
	defer c.clip.truncate(depth)
	fn()
}

// Resize reallocates both buffers at the new size and forces a full
// repaint on the next Render. Call between frames, never during one.
func (c *Compositor) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("compositor size must be positive, got %dx%d", width, height)
	}
	c.cur = NewBuffer(width, height)
	c.prev = NewBuffer(width, height)
	c.clip.reset(c.cur.Bounds())
	c.Invalidate()
	return nil
}

// Invalidate marks every cell as changed so the next Render repaints the
// whole screen. Use after the real terminal may have been scrolled or
// corrupted by output outside the compositor.
func (c *Compositor) Invalidate() {
	c.prev.Fill(Cell{Rune: invalidRune})
	c.cur.MarkAllDirty()
	c.styleKnown = false
}

// Render diffs the current frame against the previous one and emits the
// minimal stream of cursor moves, style changes, and characters to the
// terminal. On success the previous buffer matches the current one, so an
// immediate second Render emits nothing. On flush failure no state is
// committed and the next Render retries every undelivered cell.
func (c *Compositor) Render(t Terminal) error {
	width, height := c.cur.width, c.cur.height
	c.changed = c.changed[:0]

	stats := RenderStats{}
	cursorX, cursorY := -1, -1
	last := c.lastStyle
	known := c.styleKnown

	for y := 0; y < height; y++ {
		// Rows untouched since the last successful render cannot differ
		if !c.cur.RowDirty(y) {
			continue
		}
		stats.DirtyRows++

		row := y * width
		for x := 0; x < width; x++ {
			cell := c.cur.cells[row+x]
			if cell == c.prev.cells[row+x] {
				continue
			}

			if cursorX != x || cursorY != y {
				t.MoveCursor(x, y)
				stats.CursorMoves++
			}
			if !known || !cell.Style.Equal(last) {
				t.ApplyStyle(cell.Style)
				last = cell.Style
				known = true
				stats.StyleChanges++
			}

			r := displayRune(cell.Rune)
			t.WriteRune(r)
			stats.ChangedCells++
			c.changed = append(c.changed, row+x)

			// Cursor advances by the display width of the character
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				rw = 1
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if stats.ChangedCells > 0 {
		t.Reset()
		last = DefaultStyle()
	}

	if err := t.Flush(); err != nil {
		// Leave prev, dirty flags, and style state untouched so the next
		// frame re-attempts every undelivered cell.
		c.styleKnown = false
		return fmt.Errorf("render: %w", err)
	}

	for _, i := range c.changed {
		c.prev.cells[i] = c.cur.cells[i]
	}
	c.cur.ClearDirty()
	c.lastStyle = last
	c.styleKnown = known
	c.stats = stats

	if c.debugRender {
		fmt.Fprintf(os.Stderr, "render: %d dirty rows, %d cells, %d moves, %d styles\n",
			stats.DirtyRows, stats.ChangedCells, stats.CursorMoves, stats.StyleChanges)
	}
	return nil
}

// LastRenderStats returns statistics from the most recent successful Render.
func (c *Compositor) LastRenderStats() RenderStats {
	return c.stats
}

// displayRune substitutes a blank for runes the terminal cannot render as
// a single printable cell (control characters, invalid scalars).
func displayRune(r rune) rune {
	if r < ' ' || r == 0x7f || !utf8.ValidRune(r) {
		return ' '
	}
	return r
}
