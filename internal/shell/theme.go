package shell

import "webterm/pkg/types"

// ThemeState is the theme selection of one session. Only the theme command
// changes it.
type ThemeState struct {
	current types.Theme
}

// NewThemeState returns a state set to initial
func NewThemeState(initial types.Theme) *ThemeState {
	return &ThemeState{current: initial}
}

// Current returns the selected theme
func (s *ThemeState) Current() types.Theme {
	return s.current
}

// Set selects t and reports whether the selection changed
func (s *ThemeState) Set(t types.Theme) bool {
	if s.current == t {
		return false
	}
	s.current = t
	return true
}
