package scrim

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Align controls horizontal text placement.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label displays a single line of styled text.
type Label struct {
	Text  string
	Style Style
	Align Align
}

// NewLabel creates a left-aligned label.
func NewLabel(text string) *Label {
	return &Label{Text: text}
}

// Draw implements Widget.
func (l *Label) Draw(c *Compositor, area Rect) {
	if area.Empty() {
		return
	}
	x := area.X
	switch l.Align {
	case AlignCenter:
		x = area.X + (area.W-runewidth.StringWidth(l.Text))/2
	case AlignRight:
		x = area.Right() - runewidth.StringWidth(l.Text)
	}
	if x < area.X {
		x = area.X
	}
	c.SetStyle(l.Style)
	c.WriteString(x, area.Y, l.Text)
}

// HandleInput implements Widget. Labels never consume input.
func (l *Label) HandleInput(Event) bool {
	return false
}

// MinSize implements Widget.
func (l *Label) MinSize() (int, int) {
	return runewidth.StringWidth(l.Text), 1
}

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Current int
	Total   int
	Style   Style
	Filled  rune // defaults to '█'
	Empty   rune // defaults to '░'
}

// NewProgressBar creates a progress bar out of current/total.
func NewProgressBar(current, total int) *ProgressBar {
	return &ProgressBar{Current: current, Total: total}
}

// Draw implements Widget.
func (p *ProgressBar) Draw(c *Compositor, area Rect) {
	if area.Empty() {
		return
	}
	filled, empty := p.Filled, p.Empty
	if filled == 0 {
		filled = '█'
	}
	if empty == 0 {
		empty = '░'
	}

	fillW := 0
	if p.Total > 0 {
		fillW = clamp(area.W*p.Current/p.Total, 0, area.W)
	}

	c.SetStyle(p.Style)
	c.HLine(area.X, area.Y, fillW, filled)
	c.HLine(area.X+fillW, area.Y, area.W-fillW, empty)
}

// HandleInput implements Widget. Progress bars never consume input.
func (p *ProgressBar) HandleInput(Event) bool {
	return false
}

// MinSize implements Widget.
func (p *ProgressBar) MinSize() (int, int) {
	return 4, 1
}

// List displays selectable items with a scroll window that follows the
// selection.
type List struct {
	Items    []string
	Selected int
	Marker   string // selection marker (default "> ")
	Style    Style
	Bar      Style // style for the selected row

	offset int // scroll offset for windowing
	height int // last drawn height, for paging
}

// NewList creates a list of the given items.
func NewList(items ...string) *List {
	return &List{Items: items, Bar: Style{Attr: AttrInverse}}
}

// ensureVisible adjusts the scroll offset so the selection stays on screen.
func (l *List) ensureVisible(visible int) {
	if visible <= 0 {
		return
	}
	if l.Selected < l.offset {
		l.offset = l.Selected
	}
	if l.Selected >= l.offset+visible {
		l.offset = l.Selected - visible + 1
	}
}

// Draw implements Widget.
func (l *List) Draw(c *Compositor, area Rect) {
	if area.Empty() {
		return
	}
	marker := l.Marker
	if marker == "" {
		marker = "> "
	}
	l.height = area.H
	l.clampSelection()
	l.ensureVisible(area.H)

	for row := 0; row < area.H; row++ {
		i := l.offset + row
		if i >= len(l.Items) {
			break
		}
		style := l.Style
		prefix := ""
		if i == l.Selected {
			style = l.Style.Merge(l.Bar)
			prefix = marker
		}
		c.SetStyle(style)
		if i == l.Selected {
			c.Fill(Rect{X: area.X, Y: area.Y + row, W: area.W, H: 1}, ' ')
		}
		c.WriteString(area.X, area.Y+row, prefix+l.Items[i])
	}
}

// HandleInput implements Widget, consuming navigation keys.
func (l *List) HandleInput(ev Event) bool {
	if ev.Type != EventKey || len(l.Items) == 0 {
		return false
	}
	page := l.height
	if page <= 0 {
		page = 10
	}
	switch ev.Key {
	case KeyUp:
		l.Selected--
	case KeyDown:
		l.Selected++
	case KeyPageUp:
		l.Selected -= page
	case KeyPageDown:
		l.Selected += page
	case KeyHome:
		l.Selected = 0
	case KeyEnd:
		l.Selected = len(l.Items) - 1
	default:
		return false
	}
	l.clampSelection()
	return true
}

func (l *List) clampSelection() {
	if len(l.Items) == 0 {
		l.Selected = 0
		return
	}
	l.Selected = clamp(l.Selected, 0, len(l.Items)-1)
}

// MinSize implements Widget.
func (l *List) MinSize() (int, int) {
	w := 0
	for _, it := range l.Items {
		w = max(w, runewidth.StringWidth(it)+2)
	}
	return w, min(len(l.Items), 1)
}

// Frame wraps a child widget in a border with an optional title, clipping
// the child to the interior.
type Frame struct {
	Child  Widget
	Title  string
	Border BorderStyle
	Style  Style
}

// NewFrame wraps a widget in a single-line border.
func NewFrame(child Widget, title string) *Frame {
	return &Frame{Child: child, Title: title, Border: BorderSingle}
}

// Draw implements Widget.
func (f *Frame) Draw(c *Compositor, area Rect) {
	if area.W < 2 || area.H < 2 {
		return
	}
	c.SetStyle(f.Style)
	c.Box(area, f.Border)
	if f.Title != "" {
		title := fmt.Sprintf(" %s ", f.Title)
		maxW := area.W - 2
		if runewidth.StringWidth(title) > maxW {
			title = runewidth.Truncate(title, maxW, "")
		}
		c.WriteString(area.X+1, area.Y, title)
	}
	if f.Child != nil {
		inner := area.Shrink(1)
		c.WithClip(inner, func() {
			f.Child.Draw(c, inner)
		})
	}
}

// HandleInput implements Widget, forwarding to the child.
func (f *Frame) HandleInput(ev Event) bool {
	if f.Child == nil {
		return false
	}
	return f.Child.HandleInput(ev)
}

// MinSize implements Widget.
func (f *Frame) MinSize() (int, int) {
	w, h := 0, 0
	if f.Child != nil {
		w, h = f.Child.MinSize()
	}
	w = max(w+2, runewidth.StringWidth(f.Title)+4)
	return w, h + 2
}
