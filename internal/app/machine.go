package app

import (
	"slices"

	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/asteroid-belt/skillsm/internal/search"
	tea "github.com/charmbracelet/bubbletea"
)

const pageSize = 10

// transition handles one key action in one mode.
type transition func(s *State, in KeyInput) []Action

var transitions = map[Mode]map[KeyAction]transition{
	ModeList: {
		KeyQuit:        (*State).quitApp,
		KeyNextTab:     (*State).nextTab,
		KeyPrevTab:     (*State).prevTab,
		KeySelectTab:   (*State).selectTab,
		KeyUp:          moveBy(-1),
		KeyDown:        moveBy(1),
		KeyPageUp:      moveBy(-pageSize),
		KeyPageDown:    moveBy(pageSize),
		KeyTop:         (*State).selectTop,
		KeyBottom:      (*State).selectBottom,
		KeySelect:      (*State).openDetail,
		KeyStartSearch: (*State).startSearch,
		KeyInstall:     (*State).install,
		KeyRefresh:     (*State).refresh,
		KeyHelp:        (*State).openHelp,
		KeyCopyInstall: (*State).copySelected,
	},
	ModeDetail: {
		KeyQuit:        (*State).quitApp,
		KeyBack:        (*State).closeDetail,
		KeySelect:      (*State).closeDetail,
		KeyUp:          scrollBy(-1),
		KeyDown:        scrollBy(1),
		KeyPageUp:      scrollBy(-pageSize),
		KeyPageDown:    scrollBy(pageSize),
		KeyTop:         (*State).scrollTop,
		KeyCopyInstall: (*State).copyDetail,
	},
	ModeHelp: {
		KeyQuit: (*State).quitApp,
		KeyBack: (*State).toList,
		KeyHelp: (*State).toList,
	},
	ModeSearch: {
		KeyBack:   (*State).cancelSearch,
		KeySelect: (*State).toList,
	},
	ModeInstalling: {
		KeyQuit:   (*State).quitApp,
		KeyBack:   (*State).closeInstall,
		KeySelect: (*State).closeInstall,
	},
}

// Start marks the initial view loading and requests its fetch.
func (s *State) Start() []Action {
	s.Current().loading = true
	return []Action{FetchView{View: s.current}}
}

// Update applies one event and returns the side effects it requests.
func (s *State) Update(ev Event) []Action {
	switch ev := ev.(type) {
	case KeyPress:
		return s.handleKey(ev.Key)

	case ViewLoaded:
		entries := slices.Clone(ev.Entries)
		ev.View.Sort(entries)
		vs, ok := s.views[ev.View]
		if !ok {
			return nil
		}
		wasFiltered := vs.Filtered()
		vs.replace(entries)
		if wasFiltered && ev.View == s.current && s.query != "" {
			s.applyFilter()
		}

	case DetailLoaded:
		s.detailLoading = false
		s.detailCache[ev.SkillID] = ev.Markdown

	case Error:
		s.status = "Error: " + ev.Message
		s.detailLoading = false
		if vs := s.Current(); vs.loading {
			vs.loading = false
			vs.err = ev.Message
		}

	case Notice:
		s.status = ev.Message

	case InstallFinished:
		s.mode = ModeInstalling
		s.installCommand = ev.Command
		s.installOutput = ev.Output
	}
	return nil
}

func (s *State) handleKey(msg tea.KeyMsg) []Action {
	if s.mode == ModeSearch {
		switch msg.Type {
		case tea.KeyRunes:
			s.query += string(msg.Runes)
			s.applyFilter()
			return nil
		case tea.KeySpace:
			s.query += " "
			s.applyFilter()
			return nil
		case tea.KeyBackspace:
			if r := []rune(s.query); len(r) > 0 {
				s.query = string(r[:len(r)-1])
			}
			s.applyFilter()
			return nil
		}
	}

	in, ok := s.keys.Resolve(msg)
	if !ok {
		return nil
	}
	t, ok := transitions[s.mode][in.Action]
	if !ok {
		return nil
	}
	return t(s, in)
}

func (s *State) applyFilter() {
	vs := s.Current()
	if s.query == "" {
		vs.clearFilter()
		return
	}
	vs.setFilter(search.Filter(vs.entries, s.query))
}

func (s *State) quitApp(KeyInput) []Action {
	s.quit = true
	return nil
}

func (s *State) switchTo(v models.ViewKind) []Action {
	s.current = v
	vs := s.Current()
	if len(vs.entries) > 0 {
		return nil
	}
	vs.loading = true
	return []Action{FetchView{View: v}}
}

func (s *State) nextTab(KeyInput) []Action { return s.switchTo(s.current.Next()) }

func (s *State) prevTab(KeyInput) []Action { return s.switchTo(s.current.Prev()) }

func (s *State) selectTab(in KeyInput) []Action {
	views := models.AllViews()
	if in.Tab < 0 || in.Tab >= len(views) {
		return nil
	}
	return s.switchTo(views[in.Tab])
}

func moveBy(delta int) transition {
	return func(s *State, _ KeyInput) []Action {
		s.Current().move(delta)
		return nil
	}
}

func (s *State) selectTop(KeyInput) []Action {
	s.Current().top()
	return nil
}

func (s *State) selectBottom(KeyInput) []Action {
	s.Current().bottom()
	return nil
}

func (s *State) openDetail(KeyInput) []Action {
	entry, ok := s.Current().Selected()
	if !ok {
		return nil
	}
	s.mode = ModeDetail
	s.detailEntry = entry
	if _, cached := s.detailCache[entry.SkillID]; cached {
		return nil
	}
	s.detailLoading = true
	return []Action{FetchDetail{SourceRepo: entry.SourceRepo, SkillID: entry.SkillID}}
}

func (s *State) startSearch(KeyInput) []Action {
	s.mode = ModeSearch
	s.query = ""
	return nil
}

func (s *State) install(KeyInput) []Action {
	entry, ok := s.Current().Selected()
	if !ok {
		return nil
	}
	return []Action{RunInteractiveInstall{Entry: entry}}
}

// refresh keeps the current entries on screen until the new list arrives.
func (s *State) refresh(KeyInput) []Action {
	s.Current().loading = true
	return []Action{FetchView{View: s.current}}
}

func (s *State) openHelp(KeyInput) []Action {
	s.mode = ModeHelp
	return nil
}

func (s *State) copySelected(KeyInput) []Action {
	entry, ok := s.Current().Selected()
	if !ok {
		return nil
	}
	return []Action{CopyToClipboard{Entry: entry}}
}

func (s *State) copyDetail(KeyInput) []Action {
	return []Action{CopyToClipboard{Entry: s.detailEntry}}
}

func (s *State) closeDetail(KeyInput) []Action {
	s.mode = ModeList
	s.detailScroll = 0
	return nil
}

func scrollBy(delta int) transition {
	return func(s *State, _ KeyInput) []Action {
		s.detailScroll = max(s.detailScroll+delta, 0)
		return nil
	}
}

func (s *State) scrollTop(KeyInput) []Action {
	s.detailScroll = 0
	return nil
}

func (s *State) toList(KeyInput) []Action {
	s.mode = ModeList
	return nil
}

func (s *State) cancelSearch(KeyInput) []Action {
	s.mode = ModeList
	s.query = ""
	s.Current().clearFilter()
	return nil
}

func (s *State) closeInstall(KeyInput) []Action {
	s.mode = ModeList
	s.installOutput = ""
	return nil
}
