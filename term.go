package scrim

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the output service the compositor renders through.
// Implementations buffer draw operations and commit them on Flush.
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int)
	// MoveCursor positions the cursor at the given cell (0-indexed).
	MoveCursor(x, y int)
	// ApplyStyle emits the effect sequence selecting the given style.
	ApplyStyle(s Style)
	// WriteRune emits one character at the cursor position.
	WriteRune(r rune)
	// Reset returns the terminal to its default style.
	Reset()
	// Flush commits all buffered operations.
	Flush() error
}

// Size represents dimensions.
type Size struct {
	Width  int
	Height int
}

// ANSITerm is a Terminal writing ANSI escape sequences to an io.Writer,
// usually a raw-mode tty. Operations accumulate in an internal buffer so
// a frame flushes in one write.
type ANSITerm struct {
	writer io.Writer
	fd     int
	buf    bytes.Buffer

	// width/height are updated by the signal goroutine while the render
	// loop reads them, so they are guarded by mu.
	mu     sync.Mutex
	width  int
	height int

	// Terminal state
	origTermios *unix.Termios
	inRawMode   bool

	// Resize handling
	resizeChan chan Size
	sigChan    chan os.Signal
}

// NewANSITerm creates a terminal writing to the given writer.
// Pass nil to use os.Stdout. The size is read from the tty when the
// writer is one, falling back to 80x24.
func NewANSITerm(w io.Writer) *ANSITerm {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	if f, ok := w.(*os.File); ok {
		fd = int(f.Fd())
	}

	width, height := 80, 24
	if term.IsTerminal(fd) {
		if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil {
			width, height = int(ws.Col), int(ws.Row)
		}
	}

	return &ANSITerm{
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
	}
}

// Size returns the terminal dimensions.
func (t *ANSITerm) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// setSize records new dimensions, reporting whether they changed.
func (t *ANSITerm) setSize(width, height int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if width == t.width && height == t.height {
		return false
	}
	t.width = width
	t.height = height
	return true
}

// ResizeChan returns a channel that receives size updates on terminal resize.
func (t *ANSITerm) ResizeChan() <-chan Size {
	return t.resizeChan
}

// EnterRawMode puts the terminal into raw mode and switches to the
// alternate screen for full-screen operation.
func (t *ANSITerm) EnterRawMode() error {
	if t.inRawMode {
		return nil
	}

	termios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	t.origTermios = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}

	t.inRawMode = true

	signal.Notify(t.sigChan, syscall.SIGWINCH)
	go t.handleSignals()

	t.writeString("\x1b[?1049h") // Enter alternate screen
	t.writeString("\x1b[2J")     // Clear screen
	t.writeString("\x1b[H")      // Move cursor to home position
	t.writeString("\x1b[?25l")   // Hide cursor

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (t *ANSITerm) ExitRawMode() error {
	if !t.inRawMode {
		return nil
	}

	t.writeString("\x1b[0m")     // Reset style
	t.writeString("\x1b[?25h")   // Show cursor
	t.writeString("\x1b[?1049l") // Exit alternate screen

	signal.Stop(t.sigChan)

	if t.origTermios != nil {
		if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, t.origTermios); err != nil {
			return fmt.Errorf("failed to restore termios: %w", err)
		}
	}

	t.inRawMode = false
	return nil
}

// handleSignals watches for window size changes.
func (t *ANSITerm) handleSignals() {
	for range t.sigChan {
		ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
		if err != nil {
			continue
		}
		width, height := int(ws.Col), int(ws.Row)
		if t.setSize(width, height) {
			// Non-blocking send so a slow consumer never wedges the handler
			select {
			case t.resizeChan <- Size{Width: width, Height: height}:
			default:
			}
		}
	}
}

// MoveCursor buffers a cursor move to the given cell (0-indexed).
func (t *ANSITerm) MoveCursor(x, y int) {
	t.buf.WriteString("\x1b[")
	t.writeIntToBuf(y + 1)
	t.buf.WriteByte(';')
	t.writeIntToBuf(x + 1)
	t.buf.WriteByte('H')
}

// WriteRune buffers one character.
func (t *ANSITerm) WriteRune(r rune) {
	t.buf.WriteRune(r)
}

// Reset buffers a style reset.
func (t *ANSITerm) Reset() {
	t.buf.WriteString("\x1b[0m")
}

// Flush writes the accumulated buffer to the terminal in one syscall.
func (t *ANSITerm) Flush() error {
	if t.buf.Len() == 0 {
		return nil
	}
	_, err := t.writer.Write(t.buf.Bytes())
	t.buf.Reset()
	if err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// ApplyStyle buffers the ANSI escape codes selecting the given style.
// The sequence always starts from a reset so attributes from the previous
// style never leak through.
func (t *ANSITerm) ApplyStyle(style Style) {
	t.buf.WriteString("\x1b[0")

	if style.Attr.Has(AttrBold) {
		t.buf.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		t.buf.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		t.buf.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		t.buf.WriteString(";4")
	}
	if style.Attr.Has(AttrBlink) {
		t.buf.WriteString(";5")
	}
	if style.Attr.Has(AttrInverse) {
		t.buf.WriteString(";7")
	}
	if style.Attr.Has(AttrStrikethrough) {
		t.buf.WriteString(";9")
	}

	t.writeColor(style.FG, true)
	t.writeColor(style.BG, false)

	t.buf.WriteByte('m')
}

// writeColor writes the ANSI escape code for a color (allocation-free).
func (t *ANSITerm) writeColor(c Color, fg bool) {
	switch c.Mode {
	case ColorNone, ColorDefault:
		// Default color (39 for fg, 49 for bg)
		if fg {
			t.buf.WriteString(";39")
		} else {
			t.buf.WriteString(";49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		t.buf.WriteByte(';')
		if c.Index >= 8 {
			// Bright colors
			t.writeIntToBuf(base + 60 + int(c.Index-8))
		} else {
			t.writeIntToBuf(base + int(c.Index))
		}
	case Color256:
		if fg {
			t.buf.WriteString(";38;5;")
		} else {
			t.buf.WriteString(";48;5;")
		}
		t.writeIntToBuf(int(c.Index))
	case ColorRGB:
		if fg {
			t.buf.WriteString(";38;2;")
		} else {
			t.buf.WriteString(";48;2;")
		}
		t.writeIntToBuf(int(c.R))
		t.buf.WriteByte(';')
		t.writeIntToBuf(int(c.G))
		t.buf.WriteByte(';')
		t.writeIntToBuf(int(c.B))
	}
}

// writeIntToBuf writes an integer to the buffer without allocation.
func (t *ANSITerm) writeIntToBuf(n int) {
	if n == 0 {
		t.buf.WriteByte('0')
		return
	}
	if n < 0 {
		t.buf.WriteByte('-')
		n = -n
	}

	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	t.buf.Write(scratch[i:])
}

// ShowCursor makes the cursor visible.
func (t *ANSITerm) ShowCursor() {
	t.writeString("\x1b[?25h")
}

// HideCursor hides the cursor.
func (t *ANSITerm) HideCursor() {
	t.writeString("\x1b[?25l")
}

// SetCursorShape changes the cursor shape.
func (t *ANSITerm) SetCursorShape(shape CursorShape) {
	var scratch [16]byte
	b := scratch[:0]
	b = append(b, "\x1b["...)
	b = appendInt(b, int(shape))
	b = append(b, " q"...)
	t.writer.Write(b)
}

// writeString writes a string directly to the terminal, bypassing the
// frame buffer. Used for mode switches that must take effect immediately.
func (t *ANSITerm) writeString(str string) {
	io.WriteString(t.writer, str)
}

// CursorShape represents the terminal cursor shape.
type CursorShape int

const (
	CursorDefault        CursorShape = 0 // Terminal default
	CursorBlockBlink     CursorShape = 1 // Blinking block
	CursorBlock          CursorShape = 2 // Steady block
	CursorUnderlineBlink CursorShape = 3 // Blinking underline
	CursorUnderline      CursorShape = 4 // Steady underline
	CursorBarBlink       CursorShape = 5 // Blinking bar (line)
	CursorBar            CursorShape = 6 // Steady bar (line)
)

// appendInt appends an integer to a byte slice without allocation.
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}
