package tui

import (
	"context"
	"errors"

	"github.com/asteroid-belt/skillsm/internal/app"
	"github.com/asteroid-belt/skillsm/internal/log"
	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/asteroid-belt/skillsm/internal/scraper"
	"github.com/asteroid-belt/skillsm/internal/telemetry"
	tea "github.com/charmbracelet/bubbletea"
)

// dispatch starts the work each action asks for. Fetches and clipboard
// writes run on their own goroutines and report back through the event
// channel. An install takes over the terminal and returns its command.
func (m *Model) dispatch(actions []app.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, a := range actions {
		switch a := a.(type) {
		case app.FetchView:
			log.Debug("dispatch fetch view", "view", a.View.Slug())
			go fetchView(m.ctx, m.deps.Catalog, a.View, m.events, m.deps.Telemetry)

		case app.FetchDetail:
			log.Debug("dispatch fetch detail", "source", a.SourceRepo, "skill", a.SkillID)
			go fetchDetail(m.ctx, m.deps.Resolver, a.SourceRepo, a.SkillID, m.events, m.deps.Telemetry)

		case app.CopyToClipboard:
			text := m.deps.Installer.CommandLine(a.Entry)
			m.deps.Telemetry.TrackSkillCopied(a.Entry.SkillID)
			go copyToClipboard(m.ctx, m.deps.Clipboard, text, m.events)

		case app.RunInteractiveInstall:
			cmds = append(cmds, m.installCmd(a.Entry))
		}
	}
	return tea.Batch(cmds...)
}

// installCmd suspends the program and runs the installer with the
// terminal's standard streams.
func (m *Model) installCmd(entry models.CatalogEntry) tea.Cmd {
	cmd := m.deps.Installer.Command(entry)
	line := m.deps.Installer.CommandLine(entry)
	log.Info("running installer", "command", line)

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return installFinishedMsg{entry: entry, command: line, err: err}
	})
}

func fetchView(ctx context.Context, catalog ViewFetcher, view models.ViewKind, events chan<- app.Event, tc telemetry.Client) {
	entries, err := catalog.FetchView(ctx, view)
	if err != nil {
		log.Warn("fetch view failed", "view", view.Slug(), "error", err)
		tc.TrackErrorDisplayed(errorType(err), "view")
		send(ctx, events, app.Error{Message: err.Error()})
		return
	}
	send(ctx, events, app.ViewLoaded{View: view, Entries: entries})
}

func fetchDetail(ctx context.Context, resolver DetailResolver, source, skillID string, events chan<- app.Event, tc telemetry.Client) {
	doc, err := resolver.Resolve(ctx, source, skillID)
	if err != nil {
		log.Warn("resolve detail failed", "source", source, "skill", skillID, "error", err)
		tc.TrackErrorDisplayed(errorType(err), "detail")
		send(ctx, events, app.Error{Message: err.Error()})
		return
	}
	send(ctx, events, app.DetailLoaded{SkillID: skillID, Markdown: doc})
}

func copyToClipboard(ctx context.Context, write func(string) error, text string, events chan<- app.Event) {
	if err := write(text); err != nil {
		log.Warn("clipboard write failed", "error", err)
		send(ctx, events, app.Notice{Message: "Clipboard unavailable: " + err.Error()})
		return
	}
	send(ctx, events, app.Notice{Message: "Copied: " + text})
}

// send delivers ev unless the program is shutting down.
func send(ctx context.Context, events chan<- app.Event, ev app.Event) {
	select {
	case events <- ev:
	case <-ctx.Done():
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, scraper.ErrNotFound):
		return "not_found"
	case errors.Is(err, scraper.ErrParse):
		return "parse"
	case errors.Is(err, scraper.ErrTransport):
		return "transport"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unknown"
	}
}
