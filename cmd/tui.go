package cmd

import (
	"fmt"
	"strings"

	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
	"github.com/suderio/svarog/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	stateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))

	dieFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	dieHurtStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F2C94C"))
	dieEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	dieVoidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EB5757")).Strikethrough(true)
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#56CCF2"))
)

const welcome = "svarog: hit dice at the table.\nType 'help' for commands, 'exit' to quit."

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type replModel struct {
	app          *session.Session
	textInput    textinput.Model
	viewport     viewport.Model
	suggestions  list.Model
	history      []string
	historyIdx   int
	logContent   string
	width        int
	height       int
	worldName    string
	campaignName string
	showList     bool
}

func newREPLModel(app *session.Session, worldName, campaignName string) replModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., chip 1d6 to: goblin)..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent(welcome)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	return replModel{
		app:          app,
		textInput:    ti,
		viewport:     vp,
		suggestions:  sugList,
		history:      []string{},
		historyIdx:   -1,
		logContent:   welcome,
		worldName:    worldName,
		campaignName: campaignName,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

// completions returns the candidate lines for a partial input. Keywords are
// offered for the first word, creature ids after "to:" or "by:", template
// names after "as:" and status names after add or remove.
func completions(val string, creatures, templates []string) []string {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	lower := strings.ToLower(val)

	complete := func(prefix string, candidates []string, suffix string) []string {
		base := val[:len(val)-len(prefix)]
		var out []string
		for _, c := range candidates {
			if strings.HasPrefix(strings.ToLower(c), strings.ToLower(prefix)) && !strings.EqualFold(c, prefix) {
				out = append(out, base+c+suffix)
			}
		}
		return out
	}

	for _, marker := range []string{"to: ", "by: ", "as: "} {
		if i := strings.LastIndex(lower, marker); i >= 0 {
			if marker == "as: " {
				return complete(val[i+len(marker):], templates, "")
			}
			return complete(val[i+len(marker):], creatures, "")
		}
	}

	fields := strings.Fields(lower)
	if len(fields) == 1 && !strings.HasSuffix(val, " ") {
		return complete(val, parser.Keywords(), " ")
	}
	if (fields[0] == "add" || fields[0] == "remove") && len(fields) <= 2 {
		prefix := ""
		if len(fields) == 2 && !strings.HasSuffix(val, " ") {
			prefix = val[strings.LastIndex(val, " ")+1:]
		} else if len(fields) == 2 {
			return nil
		}
		names := make([]string, 0, len(engine.StatusKinds))
		for _, k := range engine.StatusKinds {
			names = append(names, string(k))
		}
		return complete(prefix, names, " ")
	}
	return nil
}

func (m *replModel) updateSuggestions() {
	var items []list.Item
	ids := m.app.State().IDs()
	for _, c := range completions(m.textInput.Value(), ids, m.app.Loader().ListTemplates()) {
		items = append(items, suggestion(c))
	}

	m.suggestions.SetItems(items)
	m.showList = len(items) > 0
	if m.showList {
		h := min(len(items), 10)
		m.suggestions.SetHeight(max(h, 4))
		m.suggestions.ResetSelected()
	}
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}

			if val != "" {
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				m.logContent += strings.TrimRight(runLine(m.app, val), "\n")

				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
			}
		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	stateH := lipgloss.Height(m.renderState())
	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2
	}
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))

	overhead := titleH + stateH + 1 + listAreaHeight + infoH + 11
	m.viewport.Height = max(m.height-overhead, 4)

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

// renderDie colors a die by how much of it is left.
func renderDie(d *engine.HitDie) string {
	style := dieFullStyle
	switch {
	case d.Statuses.Has(engine.StatusVoid):
		style = dieVoidStyle
	case d.Statuses.Has(engine.StatusEmpty) || d.Value.IsEmpty():
		style = dieEmptyStyle
	case d.Value.Current() < d.Value.Total():
		style = dieHurtStyle
	}

	text := style.Render(d.Value.String())
	var tags []string
	for _, s := range d.Statuses.Strings() {
		if s != string(engine.StatusEmpty) && s != string(engine.StatusVoid) {
			tags = append(tags, s)
		}
	}
	if len(tags) > 0 {
		text += " " + tagStyle.Render(strings.Join(tags, " "))
	}
	return "[" + text + "]"
}

func renderCreature(c *engine.Creature) string {
	label := c.ID
	if c.Name != "" && c.Name != c.ID {
		label = fmt.Sprintf("%s (%s)", c.ID, c.Name)
	}
	if c.Health.Len() == 0 {
		return fmt.Sprintf(" - %s: no hit dice", label)
	}
	dice := make([]string, 0, c.Health.Len())
	for _, d := range c.Health.HitDice {
		dice = append(dice, renderDie(d))
	}
	return fmt.Sprintf(" - %s %d/%d: %s", label, c.Health.Current(), c.Health.Total(), strings.Join(dice, " "))
}

func (m *replModel) renderState() string {
	stateView := "=== Table ===\n\n"
	creatures := m.app.State().List()
	if len(creatures) == 0 {
		stateView += "No creatures spawned."
	}
	lines := make([]string, 0, len(creatures))
	for _, c := range creatures {
		lines = append(lines, renderCreature(c))
	}
	stateView += strings.Join(lines, "\n")

	if resp := m.app.LastResponses(); len(resp) > 0 {
		msgs := make([]string, 0, len(resp))
		for _, r := range resp {
			msgs = append(msgs, r.Message())
		}
		stateView += "\n\n" + infoStyle.Render("last: "+strings.Join(msgs, ", "))
	}

	return stateBoxStyle.Width(m.width - 4).Render(stateView)
}

func (m *replModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" svarog | %s / %s ", m.worldName, m.campaignName))
	stateBox := m.renderState()
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	inputArea := m.textInput.View()
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", inputArea, autocompleteStyle.Render(m.suggestions.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		stateBox,
		logBox,
		"\n",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)
}

// RunTUI runs the full-screen shell until the user quits.
func RunTUI(app *session.Session, world, campaign string) error {
	m := newREPLModel(app, world, campaign)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
