// Package tui contains the Bubble Tea user interface.
package tui

import (
	"context"
	"time"

	"github.com/asteroid-belt/skillsm/internal/app"
	"github.com/asteroid-belt/skillsm/internal/config"
	"github.com/asteroid-belt/skillsm/internal/installer"
	"github.com/asteroid-belt/skillsm/internal/log"
	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/asteroid-belt/skillsm/internal/telemetry"
	"github.com/asteroid-belt/skillsm/internal/tui/theme"
	"github.com/asteroid-belt/skillsm/internal/tui/views"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// eventBuffer is the capacity of the inbound event channel.
const eventBuffer = 64

// ViewFetcher downloads one ranked view of the catalog.
type ViewFetcher interface {
	FetchView(ctx context.Context, view models.ViewKind) ([]models.CatalogEntry, error)
}

// DetailResolver locates a skill's SKILL.md.
type DetailResolver interface {
	Resolve(ctx context.Context, source, skillID string) (string, error)
}

// Deps are the collaborators the TUI dispatches work to.
type Deps struct {
	Catalog   ViewFetcher
	Resolver  DetailResolver
	Installer *installer.Installer
	Telemetry telemetry.Client

	// MarkdownStyle is the glamour style for the detail screen.
	MarkdownStyle string

	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx   context.Context
	state *app.State
	deps  Deps

	// Workers send results here; only waitForEvents reads it.
	events chan app.Event

	spinner    spinner.Model
	listView   *views.ListView
	detailView *views.DetailView
	helpView   *views.HelpView

	width  int
	height int
	ready  bool

	// Session tracking
	sessionStart      time.Time
	viewsVisited      int
	searchesPerformed int
	skillsPreviewed   int
	skillsInstalled   int
}

// Message types for Bubble Tea
type (
	// eventsMsg is every event that was buffered when the loop woke up.
	eventsMsg []app.Event

	installFinishedMsg struct {
		entry   models.CatalogEntry
		command string
		err     error
	}
)

// NewModel creates the TUI model starting on the initial view.
func NewModel(ctx context.Context, initial models.ViewKind, deps Deps) *Model {
	if deps.Telemetry == nil {
		deps.Telemetry = telemetry.New()
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}
	if deps.Installer == nil {
		deps.Installer = installer.New(config.DefaultConfig().Install)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Current.Warning)

	return &Model{
		ctx:          ctx,
		state:        app.New(initial),
		deps:         deps,
		events:       make(chan app.Event, eventBuffer),
		spinner:      sp,
		listView:     views.NewListView(),
		detailView:   views.NewDetailView(deps.MarkdownStyle, deps.Installer.CommandLine),
		helpView:     views.NewHelpView(),
		sessionStart: time.Now(),
	}
}

// State returns the interaction state. Callers must not mutate it.
func (m *Model) State() *app.State { return m.state }

// Init requests the initial view and starts listening for worker events.
func (m *Model) Init() tea.Cmd {
	m.deps.Telemetry.TrackAppStarted(m.state.CurrentView().Slug())

	return tea.Batch(
		m.spinner.Tick,
		m.dispatch(m.state.Start()),
		m.waitForEvents(),
	)
}

// waitForEvents blocks for the next worker event, then collects whatever
// else is already buffered so they are applied together.
func (m *Model) waitForEvents() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		batch := eventsMsg{ev}
		for {
			select {
			case ev := <-m.events:
				batch = append(batch, ev)
			default:
				return batch
			}
		}
	}
}

// Update handles terminal input and worker results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		body := max(m.height-3, 1)
		m.listView.SetSize(m.width, body)
		m.detailView.SetSize(m.width, body)
		m.helpView.SetSize(m.width, body)
		return m, nil

	case tea.KeyMsg:
		return m, m.apply(app.KeyPress{Key: msg})

	case eventsMsg:
		cmds := make([]tea.Cmd, 0, len(msg)+1)
		for _, ev := range msg {
			cmds = append(cmds, m.apply(ev))
		}
		if m.state.ShouldQuit() {
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.waitForEvents())
		return m, tea.Batch(cmds...)

	case installFinishedMsg:
		outcome := installer.Outcome(msg.err)
		log.Info("install finished", "source", msg.entry.SourceRepo, "skill", msg.entry.SkillID, "outcome", outcome)
		m.deps.Telemetry.TrackSkillInstalled(msg.entry.SourceRepo, msg.entry.SkillID, msg.err == nil)
		m.skillsInstalled++
		return m, m.apply(app.InstallFinished{Entry: msg.entry, Command: msg.command, Output: outcome})

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// apply runs one event through the state machine and dispatches the
// resulting actions.
func (m *Model) apply(ev app.Event) tea.Cmd {
	prevMode := m.state.Mode()
	prevView := m.state.CurrentView()
	prevQuery := m.state.Query()

	actions := m.state.Update(ev)
	m.track(ev, actions, prevMode, prevView, prevQuery)

	if m.state.ShouldQuit() {
		m.trackSessionExit()
		return tea.Quit
	}
	return m.dispatch(actions)
}

// track records telemetry for the transition just taken.
func (m *Model) track(ev app.Event, actions []app.Action, prevMode app.Mode, prevView models.ViewKind, prevQuery string) {
	mode := m.state.Mode()
	view := m.state.CurrentView()

	if view != prevView {
		m.deps.Telemetry.TrackViewNavigated(view.Slug(), prevView.Slug())
		m.viewsVisited++
	}

	switch {
	case mode == app.ModeDetail && prevMode != app.ModeDetail:
		cached := true
		for _, a := range actions {
			if _, ok := a.(app.FetchDetail); ok {
				cached = false
			}
		}
		entry := m.state.DetailEntry()
		m.deps.Telemetry.TrackSkillPreviewed(entry.SourceRepo, entry.SkillID, cached)
		m.skillsPreviewed++
	case mode == app.ModeHelp && prevMode != app.ModeHelp:
		m.deps.Telemetry.TrackHelpViewed(prevMode.String())
	case prevMode == app.ModeSearch && mode == app.ModeList && prevQuery != "" && m.state.Query() != "":
		m.deps.Telemetry.TrackSearchPerformed(len([]rune(prevQuery)), m.state.Current().Len())
		m.searchesPerformed++
	}

	if _, ok := ev.(app.KeyPress); ok && view == prevView {
		for _, a := range actions {
			if fv, ok := a.(app.FetchView); ok && fv.View == view {
				m.deps.Telemetry.TrackListRefreshed(view.Slug(), len(m.state.Current().Entries()))
			}
		}
	}
}

// trackSessionExit tracks session summary and app exit.
func (m *Model) trackSessionExit() {
	durationMs := time.Since(m.sessionStart).Milliseconds()
	m.deps.Telemetry.TrackSessionSummary(
		durationMs,
		m.viewsVisited,
		m.searchesPerformed,
		m.skillsPreviewed,
		m.skillsInstalled,
	)
	m.deps.Telemetry.TrackAppExited(durationMs)
}

// View returns the current screen as a string.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	s := m.state
	if s.Mode() == app.ModeInstalling {
		return views.RenderInstallModal(s.InstallCommand(), s.InstallOutput(), m.width, m.height)
	}

	spin := m.spinner.View()
	var content string
	switch s.Mode() {
	case app.ModeHelp:
		content = m.helpView.View(s.Keys())
	case app.ModeDetail:
		content = m.detailView.View(s, spin)
	default:
		content = m.listView.View(s, spin)
	}

	body := max(m.height-3, 1)
	content = lipgloss.NewStyle().Height(body).MaxHeight(body).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		views.RenderTabs(s.CurrentView(), m.width),
		content,
		views.RenderStatusBar(s, spin, m.width),
	)
}
