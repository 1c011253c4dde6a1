package ui

// Terminal bundles a Screen with its Renderer. It is the surface the game
// loop draws on.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
}

// OpenTerminal takes over the terminal. Close must be called to restore it.
func OpenTerminal() (*Terminal, error) {
	s, err := InitScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminal(s), nil
}

func NewTerminal(s *Screen) *Terminal {
	return &Terminal{screen: s, renderer: NewRenderer(s)}
}

func (t *Terminal) Poll() Input {
	return t.screen.Poll()
}

func (t *Terminal) CourtCells() (int, int) {
	return t.renderer.CourtCells()
}

func (t *Terminal) Render(v View) {
	t.renderer.RenderCourt(v)
}

func (t *Terminal) Message(title, message, hint string) {
	t.renderer.RenderMessage(title, message, hint)
}

func (t *Terminal) Close() {
	t.screen.Fini()
}
