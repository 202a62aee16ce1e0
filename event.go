package scrim

import "unicode/utf8"

// EventType distinguishes input event categories.
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Key represents a parsed input key.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyCtrlC
	KeyCtrlD
)

// Event represents a terminal input event.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int // For EventResize
	Height int // For EventResize
}

// KeyEvent builds a key event for the given key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a key event for a printable rune.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// ResizeEvent builds a resize event.
func ResizeEvent(w, h int) Event {
	return Event{Type: EventResize, Width: w, Height: h}
}

// csiKeys maps the final bytes of ESC [ sequences to keys.
var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTildeKeys maps ESC [ n ~ sequence numbers to keys.
var csiTildeKeys = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
}

// ParseEvent decodes one input event from raw terminal bytes, returning
// the event and the number of bytes consumed. Returns (Event{}, 0) when
// the buffer holds an incomplete sequence.
func ParseEvent(b []byte) (Event, int) {
	if len(b) == 0 {
		return Event{}, 0
	}

	switch b[0] {
	case 0x1b:
		if len(b) == 1 {
			return KeyEvent(KeyEscape), 1
		}
		if b[1] == '[' {
			// Scan to the CSI final byte (0x40-0x7e). Parameter bytes
			// all sit below 0x40, so anything before the final byte is
			// part of the same sequence.
			i := 2
			for i < len(b) && (b[i] < 0x40 || b[i] > 0x7e) {
				i++
			}
			if i == len(b) {
				// Mid-sequence, wait for more bytes
				return Event{}, 0
			}
			consumed := i + 1
			if i == 2 {
				if k, ok := csiKeys[b[2]]; ok {
					return KeyEvent(k), consumed
				}
			}
			if b[i] == '~' && i == 3 {
				if k, ok := csiTildeKeys[b[2]]; ok {
					return KeyEvent(k), consumed
				}
			}
			// Unrecognized sequence - swallow it whole
			return Event{}, consumed
		}
		return KeyEvent(KeyEscape), 1
	case '\r', '\n':
		return KeyEvent(KeyEnter), 1
	case '\t':
		return KeyEvent(KeyTab), 1
	case 0x7f, 0x08:
		return KeyEvent(KeyBackspace), 1
	case ' ':
		return KeyEvent(KeySpace), 1
	case 0x03:
		return KeyEvent(KeyCtrlC), 1
	case 0x04:
		return KeyEvent(KeyCtrlD), 1
	}

	if b[0] < ' ' {
		return Event{}, 1
	}

	// Printable rune, possibly multi-byte
	if !utf8.FullRune(b) {
		return Event{}, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size == 1 {
		return Event{}, 1
	}
	return RuneEvent(r), size
}
