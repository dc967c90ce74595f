package ui

import (
	"log"
	"strings"

	"ghprofile/internal/fetch"
	"ghprofile/internal/github"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SubmitMsg is sent when the user submits the search form (enter).
type SubmitMsg struct{}

// RefreshMsg refetches the current locator (ctrl+r).
type RefreshMsg struct{}

// QuitMsg closes the controller and exits (esc, ctrl+c).
type QuitMsg struct{}

// inputChrome is the horizontal space taken by the input frame and the button.
const inputChrome = 16

// SearchView is the single screen: a search form above the result region.
type SearchView struct {
	input      textinput.Model
	spinner    spinner.Model
	help       help.Model
	keys       *KeyHandler
	controller *fetch.Controller
	baseURL    string
	width      int
}

// Ensure SearchView implements View.
var _ View = (*SearchView)(nil)

// NewSearchView creates the search screen. Submitted queries are fetched
// from baseURL through controller.
func NewSearchView(controller *fetch.Controller, baseURL string) *SearchView {
	ti := textinput.New()
	ti.Placeholder = "Search User"
	ti.Prompt = "› "
	ti.Width = 32
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	reg := NewKeybindRegistry()
	reg.BindWithDesc("enter", func() tea.Msg { return SubmitMsg{} }, "search")
	reg.BindWithDesc("ctrl+r", func() tea.Msg { return RefreshMsg{} }, "refresh")
	reg.BindWithDesc("esc", func() tea.Msg { return QuitMsg{} }, "quit")
	reg.BindWithDesc("ctrl+c", func() tea.Msg { return QuitMsg{} }, "quit")

	return &SearchView{
		input:      ti,
		spinner:    s,
		help:       newHelpModel(),
		keys:       NewKeyHandler(reg),
		controller: controller,
		baseURL:    baseURL,
	}
}

// Query returns the text currently in the search input.
func (v *SearchView) Query() string {
	return v.input.Value()
}

// SetQuery replaces the search input text.
func (v *SearchView) SetQuery(q string) {
	v.input.SetValue(q)
}

// State returns the controller's request state.
func (v *SearchView) State() fetch.State {
	return v.controller.State()
}

// Init implements View. Mounting the view issues the initial fetch.
func (v *SearchView) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, v.withSpinner(v.controller.Init()))
}

// Update implements View.
func (v *SearchView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.ResultMsg:
		v.controller.Handle(msg)
		return v, nil
	case SubmitMsg:
		return v, v.submit()
	case RefreshMsg:
		return v, v.withSpinner(v.controller.Refresh())
	case QuitMsg:
		v.controller.Close()
		return v, tea.Quit
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
		if w := msg.Width - inputChrome; w > 0 {
			v.input.Width = min(w, 48)
		}
		return v, nil
	case spinner.TickMsg:
		// Let the tick chain stop once nothing is loading.
		if !v.controller.State().Loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if consumed, cmd := v.keys.Handle(msg); consumed {
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit turns the current query into a locator and hands it to the controller.
func (v *SearchView) submit() tea.Cmd {
	locator := github.UserURL(v.baseURL, v.input.Value())
	cmd := v.controller.SetLocator(locator)
	if cmd == nil {
		log.Printf("ui: %s already current, not refetching", locator)
		return nil
	}
	log.Printf("ui: searching %s", locator)
	return v.withSpinner(cmd)
}

// withSpinner pairs a fetch command with a spinner tick so the loading
// indicator animates. A nil fetch stays nil.
func (v *SearchView) withSpinner(fetchCmd tea.Cmd) tea.Cmd {
	if fetchCmd == nil {
		return nil
	}
	return tea.Batch(fetchCmd, v.spinner.Tick)
}

// View implements View.
func (v *SearchView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("GitHub user search") + "\n")

	form := lipgloss.JoinHorizontal(lipgloss.Center,
		Styles.Input.Render(v.input.View()),
		Styles.Button.Render("[ Search ]"),
	)
	b.WriteString(form + "\n")

	b.WriteString(v.renderResult() + "\n\n")
	b.WriteString(RenderKeybindHelp(v.help, v.keys.Registry))
	return b.String()
}

// renderResult renders exactly one of: error banner, loading indicator, card.
func (v *SearchView) renderResult() string {
	s := v.controller.State()
	switch {
	case s.Failed:
		return Styles.Banner.Render(errorText)
	case s.Loading:
		return Styles.Status.Render(v.spinner.View() + " " + loadingText)
	default:
		return renderCard(s.Profile, v.width)
	}
}
