package page

// State is the whole view state of the site: which page is shown and
// whether the mobile navigation panel is expanded.
type State struct {
	Current    Page
	MenuOpen   bool
	Transition Transition
}

// NewState returns the initial view state.
func NewState() State {
	return State{
		Current:    Home,
		Transition: Transition{Shown: Home},
	}
}

// Restore rebuilds a settled state from the values a client sends back
// with each request.
func Restore(current Page, menuOpen bool) State {
	return State{
		Current:    current,
		MenuOpen:   menuOpen,
		Transition: Transition{Shown: current},
	}
}

// Navigate makes target the current page and starts the transition to it.
func (s *State) Navigate(target Page) {
	s.Current = target
	s.Transition.Begin(target)
}

// Select navigates from a menu entry. The mobile panel is always closed
// afterwards.
func (s *State) Select(target Page) {
	s.MenuOpen = false
	s.Navigate(target)
}

// ToggleMenu flips the mobile navigation panel.
func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// IsActive reports whether p is the current page.
func (s State) IsActive(p Page) bool {
	return s.Current == p
}
