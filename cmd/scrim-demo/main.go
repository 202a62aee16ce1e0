// Command scrim-demo renders a small full-screen dashboard to show the
// compositor, clip stack, and widget contract working together.
package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"scrim"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "scrim-demo: stdout is not a terminal")
		os.Exit(1)
	}

	t := scrim.NewANSITerm(nil)
	if err := t.EnterRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "scrim-demo: %v\n", err)
		os.Exit(1)
	}
	defer t.ExitRawMode()

	width, height := t.Size()
	comp, err := scrim.NewCompositor(width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrim-demo: %v\n", err)
		os.Exit(1)
	}

	if err := run(t, comp); err != nil {
		t.ExitRawMode()
		fmt.Fprintf(os.Stderr, "scrim-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(t *scrim.ANSITerm, comp *scrim.Compositor) error {
	list := scrim.NewList(
		"compositor.go",
		"buffer.go",
		"clip.go",
		"rect.go",
		"style.go",
		"term.go",
		"widget.go",
	)
	title := &scrim.Label{Text: "scrim demo - arrows move, q quits", Style: scrim.ThemeDark.Accent, Align: scrim.AlignCenter}
	progress := scrim.NewProgressBar(0, 100)
	progress.Style = scrim.Style{FG: scrim.BrightGreen}
	frame := scrim.NewFrame(list, "files")
	frame.Style = scrim.ThemeDark.Border
	root := scrim.NewStack(frame)

	events := make(chan scrim.Event, 16)
	go readInput(events)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case size := <-t.ResizeChan():
			if err := comp.Resize(size.Width, size.Height); err != nil {
				return err
			}
		case ev, ok := <-events:
			if !ok {
				// stdin closed, nothing left to wait for
				return nil
			}
			if ev.Type == scrim.EventKey {
				switch {
				case ev.Key == scrim.KeyCtrlC, ev.Key == scrim.KeyEscape:
					return nil
				case ev.Key == scrim.KeyRune && ev.Rune == 'q':
					return nil
				}
				root.HandleInput(ev)
			}
		case <-ticker.C:
			progress.Current = (progress.Current + 1) % 101
		}

		draw(comp, title, root, progress)
		if err := comp.Render(t); err != nil {
			return err
		}
	}
}

func draw(comp *scrim.Compositor, title, root, progress scrim.Widget) {
	comp.Clear()
	header, rest := comp.Bounds().SplitHorizontal(1)
	body, footer := rest.SplitHorizontal(rest.H - 1)
	title.Draw(comp, header)
	root.Draw(comp, body)
	progress.Draw(comp, footer.Inset(0, 1, 0, 1))
}

// readInput decodes raw stdin bytes into events.
func readInput(events chan<- scrim.Event) {
	buf := make([]byte, 0, 256)
	chunk := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(chunk)
		if err != nil {
			close(events)
			return
		}
		buf = append(buf, chunk[:n]...)
		for len(buf) > 0 {
			ev, consumed := scrim.ParseEvent(buf)
			if consumed == 0 {
				break // incomplete sequence, wait for more bytes
			}
			buf = buf[consumed:]
			if ev.Type != scrim.EventNone {
				events <- ev
			}
		}
	}
}
