package app

import (
	"github.com/asteroid-belt/skillsm/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Event is an input to the state machine: a key press or the result of
// asynchronous work.
type Event interface{ isEvent() }

// KeyPress carries one key from the terminal.
type KeyPress struct {
	Key tea.KeyMsg
}

// ViewLoaded carries the complete entry list of one fetched view.
type ViewLoaded struct {
	View    models.ViewKind
	Entries []models.CatalogEntry
}

// DetailLoaded carries a resolved SKILL.md document.
type DetailLoaded struct {
	SkillID  string
	Markdown string
}

// Error reports a failed fetch or resolution.
type Error struct {
	Message string
}

// Notice is an informational status line message.
type Notice struct {
	Message string
}

// InstallFinished reports the end of a foreground install.
type InstallFinished struct {
	Entry   models.CatalogEntry
	Command string
	Output  string
}

func (KeyPress) isEvent()        {}
func (ViewLoaded) isEvent()      {}
func (DetailLoaded) isEvent()    {}
func (Error) isEvent()           {}
func (Notice) isEvent()          {}
func (InstallFinished) isEvent() {}

// Action is a side effect requested by the state machine. The machine never
// performs actions itself.
type Action interface{ isAction() }

// FetchView requests the view's page be downloaded and parsed.
type FetchView struct {
	View models.ViewKind
}

// FetchDetail requests the skill's SKILL.md be resolved.
type FetchDetail struct {
	SourceRepo string
	SkillID    string
}

// RunInteractiveInstall hands the terminal to the installer for the entry.
type RunInteractiveInstall struct {
	Entry models.CatalogEntry
}

// CopyToClipboard requests the entry's install command be placed on the
// system clipboard.
type CopyToClipboard struct {
	Entry models.CatalogEntry
}

func (FetchView) isAction()             {}
func (FetchDetail) isAction()           {}
func (RunInteractiveInstall) isAction() {}
func (CopyToClipboard) isAction()       {}
