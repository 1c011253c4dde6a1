package ui

import "github.com/gdamore/tcell/v2"

// Input is everything the loop needs from the keyboard for one tick.
type Input struct {
	Quit    bool
	Move    Direction
	Resized bool
}

// Screen wraps a tcell screen. Key events are collected by tcell on its own
// goroutine and drained without blocking by Poll.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

func NewScreen(s tcell.Screen) *Screen {
	sc := &Screen{
		screen: s,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go s.ChannelEvents(sc.events, sc.quit)
	return sc
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return NewScreen(s), nil
}

// Poll drains pending events. The last direction key pressed wins.
func (s *Screen) Poll() Input {
	var in Input
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuitKey(ev.Key(), ev.Rune()) {
					in.Quit = true
				}
				if dir := KeyToDirection(ev.Key(), ev.Rune()); dir != DirNone {
					in.Move = dir
				}
			case *tcell.EventResize:
				s.screen.Sync()
				in.Resized = true
			}
		default:
			return in
		}
	}
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

// Fini stops event collection and restores the terminal.
func (s *Screen) Fini() {
	select {
	case <-s.quit:
		return
	default:
		close(s.quit)
	}
	s.screen.Fini()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

// Style returns the style currently stored at a cell.
func (s *Screen) Style(x, y int) tcell.Style {
	_, _, style, _ := s.screen.GetContent(x, y)
	return style
}
