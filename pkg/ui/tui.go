// Package ui provides the Bubble Tea TUI for the seller dashboard.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogApp "github.com/brunovms/sellerboard/business/catalog/app"
	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
	profitApp "github.com/brunovms/sellerboard/business/profit/app"
	reportApp "github.com/brunovms/sellerboard/business/report/app"
	"github.com/brunovms/sellerboard/pkg/ui/components"
)

// toastNotFound is the failure/empty-result notification text.
const toastNotFound = "Falha! Dado não encontrado."

// fetchTimeout bounds one page request issued from the UI.
const fetchTimeout = 15 * time.Second

// Phase represents the current UI phase.
type Phase string

const (
	PhaseWelcome   Phase = "welcome"
	PhaseDashboard Phase = "dashboard"
)

// WelcomeDuration is how long the welcome screen shows before auto-advancing.
const WelcomeDuration = 2 * time.Second

// Services holds the application services the dashboard drives.
type Services struct {
	Catalog *catalogApp.CatalogService
	Profit  *profitApp.ProfitService
	Report  *reportApp.ReportService
	Export  reportApp.Reporter
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	services Services
	keys     KeyMap

	// Components
	summary  *components.SummaryComponent
	listings *components.ListingsComponent
	toasts   *components.ToastComponent
	search   *components.SearchComponent

	// Phase state
	phase        Phase
	welcomeStart time.Time

	// State
	width         int
	height        int
	quitting      bool
	searching     bool
	loading       bool
	initialLoaded bool
	exporting     bool

	page   catalog.Page
	filter catalog.Filter

	// Request sequencing: every fetch carries the next number and stale
	// responses are dropped in Update.
	seq     uint64
	applied uint64
}

// New creates a new TUI model.
func New(services Services) Model {
	return Model{
		services:     services,
		keys:         DefaultKeyMap(),
		summary:      components.NewSummaryComponent(),
		listings:     components.NewListingsComponent(),
		toasts:       components.NewToastComponent(),
		search:       components.NewSearchComponent(),
		phase:        PhaseWelcome,
		welcomeStart: time.Now(),
		seq:          1,
		loading:      true,
	}
}

// Init starts the tick loop and the initial page fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		fetchCmd(m.services.Catalog, 1, 1, catalog.Filter{}),
	)
}

// tickCmd returns a command that sends a tick every 100ms for animations
// and toast expiry.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// fetchCmd requests one page of listings off the UI loop.
func fetchCmd(svc *catalogApp.CatalogService, seq uint64, page int, filter catalog.Filter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		p, err := svc.FetchPage(ctx, page, filter)
		return ListingsMsg{Seq: seq, Page: p, Filter: filter, Err: err}
	}
}

// exportCmd writes the report off the UI loop.
func exportCmd(report reportApp.Report, reporter reportApp.Reporter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		path, err := reporter.Write(ctx, report)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// fetch issues a sequenced page request.
func (m *Model) fetch(page int, filter catalog.Filter) tea.Cmd {
	m.seq++
	m.loading = true
	return fetchCmd(m.services.Catalog, m.seq, page, filter)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		if m.phase == PhaseWelcome && time.Since(m.welcomeStart) >= WelcomeDuration {
			m.phase = PhaseDashboard
		}
		m.toasts.Prune(time.Now())
		return m, tickCmd()

	case ListingsMsg:
		return m.updateListings(msg)

	case ExportDoneMsg:
		m.exporting = false
		if msg.Err != nil {
			m.toasts.Push("Falha! Não foi possível exportar.", true, time.Now())
		} else {
			m.toasts.Push("Exportado: "+msg.Path, false, time.Now())
		}

	case ToastMsg:
		m.toasts.Push(msg.Text, msg.Error, time.Now())
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow quit
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key skips the welcome screen
	if m.phase == PhaseWelcome {
		m.phase = PhaseDashboard
		return m, nil
	}

	if m.searching {
		return m.updateSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevPage):
		if m.page.Number > 1 && !m.loading {
			return m, m.fetch(m.page.Number-1, m.filter)
		}

	case key.Matches(msg, m.keys.NextPage):
		if m.page.Number < m.page.TotalPages && !m.loading {
			return m, m.fetch(m.page.Number+1, m.filter)
		}

	case key.Matches(msg, m.keys.Up):
		m.listings.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.listings.MoveDown()

	case key.Matches(msg, m.keys.Group):
		m.listings.Toggle(components.ModeGroup)

	case key.Matches(msg, m.keys.Detail):
		m.listings.Toggle(components.ModeDetail)

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Reset()

	case key.Matches(msg, m.keys.Export):
		if !m.exporting && m.initialLoaded {
			m.exporting = true
			report := m.services.Report.Build(m.page)
			return m, exportCmd(report, m.services.Export)
		}

	case key.Matches(msg, m.keys.Reload):
		if !m.loading {
			page := m.page.Number
			if page < 1 {
				page = 1
			}
			return m, m.fetch(page, m.filter)
		}
	}

	return m, nil
}

func (m Model) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		return m, nil

	case "enter":
		filter := catalogApp.NormalizeFilter(m.search.Filter())
		m.searching = false
		return m, m.fetch(1, filter)

	case "tab", "down":
		m.search.Next()
		return m, nil

	case "shift+tab", "up":
		m.search.Prev()
		return m, nil
	}

	return m, m.search.Update(msg)
}

func (m Model) updateListings(msg ListingsMsg) (tea.Model, tea.Cmd) {
	// Drop stale responses from overlapping requests.
	if msg.Seq <= m.applied {
		return m, nil
	}
	m.applied = msg.Seq
	m.loading = false

	if msg.Err != nil {
		m.toasts.Push(toastNotFound, true, time.Now())
		if !msg.Filter.IsZero() {
			m.search.Reset()
		}
		if !m.initialLoaded {
			// Initial load failure leaves an explicit empty state.
			m.page = catalog.Page{Number: 1}
			m.initialLoaded = true
			m.summary.Update(m.services.Profit.Summarize(nil))
			m.listings.SetRows(nil)
		}
		return m, nil
	}

	// An empty search result is notified like a failure and the previous
	// page stays on screen.
	if msg.Page.IsEmpty() && !msg.Filter.IsZero() {
		m.toasts.Push(toastNotFound, true, time.Now())
		m.search.Reset()
		return m, nil
	}

	m.page = msg.Page
	m.filter = msg.Filter
	m.initialLoaded = true

	m.summary.Update(m.services.Profit.Summarize(msg.Page.Listings))
	m.listings.SetRows(m.buildRows(msg.Page))

	return m, nil
}

// buildRows precomputes every row's metrics so View never does arithmetic.
func (m Model) buildRows(page catalog.Page) []components.ListingRow {
	rows := make([]components.ListingRow, 0, len(page.Listings))

	for _, listing := range page.Listings {
		row := components.ListingRow{
			Listing: listing,
			Rollup:  m.services.Profit.RollupListing(listing),
		}

		for _, group := range listing.OrdersGroup {
			row.GroupMetrics = append(row.GroupMetrics, m.services.Profit.MeasureOrder(group.OrderLine))
		}
		for _, detail := range listing.OrdersDetail {
			row.DetailMetrics = append(row.DetailMetrics, m.services.Profit.MeasureOrder(detail.OrderLine))
		}

		rows = append(rows, row)
	}

	return rows
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return "\n  Até logo!\n\n"
	}

	if m.phase == PhaseWelcome {
		return m.renderWelcomeScreen()
	}

	var b strings.Builder

	title := TitleStyle.Render(" 📊 Sellerboard ")
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n\n")

	b.WriteString(m.summary.View())
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(BoxStyle.Render(m.search.View()))
	} else {
		b.WriteString(m.listings.View())
	}

	if m.toasts.Len() > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.toasts.View())
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("q: sair • ←→: páginas • ↑↓: anúncio • g: agrupado • d: detalhado • /: buscar • x: exportar • r: recarregar"))

	return b.String()
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.loading {
		spinners := []string{"◐", "◓", "◑", "◒"}
		idx := int(time.Now().UnixMilli()/100) % len(spinners)
		loadingStyle := lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
		parts = append(parts, loadingStyle.Render(spinners[idx]+" Carregando"))
	}

	if m.page.TotalPages > 0 {
		parts = append(parts, fmt.Sprintf("Página %d de %d", m.page.Number, m.page.TotalPages))
		parts = append(parts, fmt.Sprintf("%d anúncios", m.page.TotalCount))
	}

	if key, value, ok := m.filter.QueryParam(); ok {
		filterStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
		parts = append(parts, filterStyle.Render(fmt.Sprintf("filtro %s=%s", key, value)))
	}

	if m.exporting {
		parts = append(parts, MutedValue.Render("exportando..."))
	}

	return strings.Join(parts, "  │  ")
}

// renderWelcomeScreen renders the animated welcome screen.
func (m Model) renderWelcomeScreen() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	greenStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	elapsed := time.Since(m.welcomeStart)
	dotCount := int(elapsed.Milliseconds()/300) % 4
	dots := strings.Repeat(".", dotCount)

	var sb strings.Builder
	sb.WriteString("\n\n\n\n")

	logo := `
   ███████╗███████╗██╗     ██╗     ███████╗██████╗
   ██╔════╝██╔════╝██║     ██║     ██╔════╝██╔══██╗
   ███████╗█████╗  ██║     ██║     █████╗  ██████╔╝
   ╚════██║██╔══╝  ██║     ██║     ██╔══╝  ██╔══██╗
   ███████║███████╗███████╗███████╗███████╗██║  ██║
   ╚══════╝╚══════╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝
`
	sb.WriteString(titleStyle.Render(logo))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("        B O A R D   —   lucro por anúncio"))
	sb.WriteString("\n\n\n")
	sb.WriteString(greenStyle.Render(fmt.Sprintf("        Carregando anúncios%s", dots)))
	sb.WriteString("\n\n")
	sb.WriteString(mutedStyle.Render("        Pressione qualquer tecla para continuar..."))
	sb.WriteString("\n")

	return sb.String()
}

// Program holds the Bubble Tea program instance for external access.
var Program *tea.Program

// Run starts the Bubble Tea program.
func Run(services Services) error {
	Program = tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := Program.Run()
	return err
}

// Send sends a message to the running program.
func Send(msg tea.Msg) {
	if Program != nil {
		Program.Send(msg)
	}
}
