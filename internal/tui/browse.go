package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/recruitify/internal/api"
	"github.com/idilsaglam/recruitify/internal/model"
)

// jobItem adapts a Job to bubbles/list.Item
type jobItem struct {
	Job model.Job
}

func (i jobItem) rowText() string {
	if i.Job.Location == "" {
		return i.Job.Title
	}
	return fmt.Sprintf("%s (%s)", i.Job.Title, i.Job.Location)
}

// Implement list.Item interface
func (i jobItem) Title() string       { return i.rowText() }
func (i jobItem) Description() string { return "" }
func (i jobItem) FilterValue() string { return i.Job.Title }

// Custom delegate to control how items render (single line)
type jobDelegate struct{}

func (d jobDelegate) Height() int                               { return 1 }
func (d jobDelegate) Spacing() int                              { return 0 }
func (d jobDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d jobDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(jobItem)
	line := fmt.Sprintf("%s %s", pendingStyle.Render("•"), it.rowText())
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Messages carrying fetch/submit results back onto the UI loop.
type (
	jobsLoadedMsg []model.Job
	appsLoadedMsg []model.Application
	applySentMsg  struct{ app *model.Application }
	applyErrMsg   struct{ err error }
	fetchErrMsg   struct {
		what string
		err  error
	}
)

const (
	paneJobs = iota
	paneApplications
)

// browseModel is the view-controller of the interactive UI. It owns
// the submit handling for its whole lifetime and dies with the view.
type browseModel struct {
	client *api.Client

	list    list.Model  // jobs pane
	options []jobOption // job select control, rebuilt per jobs fetch
	selIdx  int         // selected option
	apps    []model.Application

	pane     int
	applying bool // apply form open
	form     applyForm

	notice    string
	noticeErr bool

	width, height int
}

func newBrowseModel(client *api.Client) browseModel {
	l := list.New(nil, jobDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Jobs")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("job", "jobs")

	applyBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply"))
	tabBind := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "applications"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{applyBind, tabBind, reloadBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{applyBind, tabBind, reloadBind} }

	return browseModel{
		client: client,
		list:   l,
		form:   newApplyForm(),
		width:  80,
		height: 24,
	}
}

// Browse starts the interactive UI and blocks until the user quits.
func Browse(client *api.Client) error {
	p := tea.NewProgram(newBrowseModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init kicks off both startup fetches at once; neither depends on the
// other and their results land in disjoint panes.
func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.fetchJobs(), m.fetchApplications())
}

func (m browseModel) fetchJobs() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		jobs, err := client.ListJobs(context.Background())
		if err != nil {
			return fetchErrMsg{what: "jobs", err: err}
		}
		return jobsLoadedMsg(jobs)
	}
}

func (m browseModel) fetchApplications() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		apps, err := client.ListApplications(context.Background())
		if err != nil {
			return fetchErrMsg{what: "applications", err: err}
		}
		return appsLoadedMsg(apps)
	}
}

func (m browseModel) submitApply(form model.ApplicationForm) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		app, err := client.Apply(context.Background(), form)
		if err != nil {
			return applyErrMsg{err: err}
		}
		return applySentMsg{app: app}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case jobsLoadedMsg:
		// Full replacement of both the list and the select control;
		// loading twice leaves exactly one row per job.
		items := make([]list.Item, 0, len(msg))
		for _, j := range msg {
			items = append(items, jobItem{Job: j})
		}
		m.list.SetItems(items)
		m.options = optionsFor(msg)
		if m.selIdx >= len(m.options) {
			m.selIdx = 0
		}
		return m, nil

	case appsLoadedMsg:
		m.apps = msg
		return m, nil

	case applySentMsg:
		m.applying = false
		m.form.reset()
		m.notice = "Application submitted"
		m.noticeErr = false
		// The one reload a successful submission triggers.
		return m, m.fetchApplications()

	case applyErrMsg:
		m.notice = noticeText(msg.err)
		m.noticeErr = true
		return m, nil

	case fetchErrMsg:
		m.notice = fmt.Sprintf("%s: %v", msg.what, msg.err)
		m.noticeErr = true
		return m, nil
	}

	if m.applying {
		return m.updateForm(msg)
	}
	return m.updateBrowse(msg)
}

// noticeText maps a failed submission to the user-facing notice.
// Server rejections read "Error: {message}"; anything else (network,
// unparseable body) shows raw.
func noticeText(err error) string {
	return "Error: " + err.Error()
}

func (m browseModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.KeyMsg:
		switch x.String() {
		case "esc":
			m.applying = false
			m.form.reset()
			return m, nil
		case "shift+tab":
			m.form.prev()
			return m, nil
		case "left":
			if len(m.options) > 0 {
				m.selIdx = (m.selIdx + len(m.options) - 1) % len(m.options)
			}
			return m, nil
		case "right":
			if len(m.options) > 0 {
				m.selIdx = (m.selIdx + 1) % len(m.options)
			}
			return m, nil
		case "enter":
			if m.form.next() {
				if len(m.options) == 0 {
					m.notice = "Error: no job selected"
					m.noticeErr = true
					return m, nil
				}
				return m, m.submitApply(m.form.value(m.options[m.selIdx]))
			}
			return m, nil
		}
	}
	return m, m.form.update(msg)
}

func (m browseModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc":
			return m, tea.Quit
		case "tab":
			if m.pane == paneJobs {
				m.pane = paneApplications
			} else {
				m.pane = paneJobs
			}
			return m, nil
		case "r":
			return m, tea.Batch(m.fetchJobs(), m.fetchApplications())
		case "a":
			m.applying = true
			m.notice = ""
			// open on the job under the cursor
			if i := m.list.Index(); i >= 0 && i < len(m.options) {
				m.selIdx = i
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// applicationRows renders the applications pane, one row per record in
// server order.
func (m browseModel) applicationRows() []string {
	if len(m.apps) == 0 {
		return []string{mutedStyle.Render("no applications yet")}
	}
	rows := make([]string, 0, len(m.apps))
	for _, a := range m.apps {
		rows = append(rows, fmt.Sprintf("%s %s applied for %s",
			successStyle.Render("•"), a.CandidateName(), a.JobTitle()))
	}
	return rows
}

func (m browseModel) View() string {
	listHeight := m.height - 6
	if m.applying {
		listHeight = m.height - 16
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)

	var content string
	switch m.pane {
	case paneApplications:
		header := titleStyle.Render("Applications") + "  " +
			accentStyle.Render(fmt.Sprintf("%d total", len(m.apps)))
		content = header + "\n\n" + strings.Join(m.applicationRows(), "\n") +
			"\n\n" + helpStyle.Render("tab jobs · r reload · q quit")
	default:
		content = m.list.View()
	}

	if m.applying {
		var opt jobOption
		if len(m.options) > 0 {
			opt = m.options[m.selIdx]
		}
		content += "\n" + boxStyle.Render(m.form.view(opt, len(m.options) > 0))
	}

	if m.notice != "" {
		line := successStyle.Render("✔ " + m.notice)
		if m.noticeErr {
			line = errorStyle.Render("✖ " + m.notice)
		}
		content += "\n" + line
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(content)
}
