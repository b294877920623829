// Package app implements the interaction state machine: it owns all
// application state and turns key presses and fetch results into state
// changes and requested side effects.
package app

import "github.com/asteroid-belt/skillsm/internal/models"

// Mode is the exclusive interaction context.
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
	ModeSearch
	ModeHelp
	ModeInstalling
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "LIST"
	case ModeDetail:
		return "DETAIL"
	case ModeSearch:
		return "SEARCH"
	case ModeHelp:
		return "HELP"
	case ModeInstalling:
		return "INSTALL"
	default:
		return "UNKNOWN"
	}
}

// State is the whole application state. Only Update mutates it.
//
// The detail cache is keyed by skill id alone and is never evicted.
type State struct {
	mode    Mode
	current models.ViewKind
	views   map[models.ViewKind]*ViewState
	keys    Keymap

	query string

	detailEntry   models.CatalogEntry
	detailCache   map[string]string
	detailLoading bool
	detailScroll  int

	status string

	installCommand string
	installOutput  string

	quit bool
}

// New creates the state with an empty list for every view.
func New(initial models.ViewKind) *State {
	views := make(map[models.ViewKind]*ViewState, len(models.AllViews()))
	for _, v := range models.AllViews() {
		views[v] = newViewState()
	}
	return &State{
		mode:        ModeList,
		current:     initial,
		views:       views,
		keys:        DefaultKeymap(),
		detailCache: make(map[string]string),
	}
}

// Mode returns the current mode.
func (s *State) Mode() Mode { return s.mode }

// CurrentView returns the active tab.
func (s *State) CurrentView() models.ViewKind { return s.current }

// View returns the state of the given view.
func (s *State) View(v models.ViewKind) *ViewState { return s.views[v] }

// Current returns the state of the active view.
func (s *State) Current() *ViewState { return s.views[s.current] }

// Keys returns the key bindings in use.
func (s *State) Keys() Keymap { return s.keys }

// Query returns the search buffer.
func (s *State) Query() string { return s.query }

// DetailEntry returns the entry opened in Detail mode.
func (s *State) DetailEntry() models.CatalogEntry { return s.detailEntry }

// Detail returns the cached document for a skill id.
func (s *State) Detail(skillID string) (string, bool) {
	md, ok := s.detailCache[skillID]
	return md, ok
}

// DetailLoading reports whether a detail fetch is outstanding.
func (s *State) DetailLoading() bool { return s.detailLoading }

// DetailScroll returns the detail scroll offset in lines. It has no upper
// bound; renderers clamp it to the content.
func (s *State) DetailScroll() int { return s.detailScroll }

// Status returns the last status line message.
func (s *State) Status() string { return s.status }

// InstallCommand returns the command shown in the install modal.
func (s *State) InstallCommand() string { return s.installCommand }

// InstallOutput returns the outcome shown in the install modal.
func (s *State) InstallOutput() string { return s.installOutput }

// ShouldQuit reports whether the user asked to exit.
func (s *State) ShouldQuit() bool { return s.quit }
