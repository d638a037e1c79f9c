package browse

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const (
	prompt        = "❯ "
	defaultWidth  = 80
	defaultHeight = 12
)

//nolint:gochecknoglobals
var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// model is the Bubble Tea model for the finder.
type model struct {
	input    textinput.Model
	items    items
	query    string
	matches  fuzzy.Matches // unused while query is empty
	cursor   int           // index into the visible rows
	width    int
	height   int
	chosen   *Item
	quitting bool
}

func newModel(list []Item) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "filter keys"
	ti.Focus()
	ti.Width = defaultWidth

	return model{
		input:  ti,
		items:  items(list),
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(1, msg.Height-2)
		m.input.Width = max(1, msg.Width-lipgloss.Width(m.input.Prompt)-1)

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		if item, ok := m.selected(); ok {
			m.chosen = &item
		}

		m.quitting = true

		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}

		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if m.cursor < m.visible()-1 {
			m.cursor++
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// refresh recomputes the matches for the current query.
func (m *model) refresh() {
	m.query = strings.TrimSpace(m.input.Value())
	m.matches = nil

	if m.query != "" {
		m.matches = fuzzy.FindFrom(m.query, m.items)
	}

	m.cursor = min(m.cursor, max(0, m.visible()-1))
}

// visible returns the number of rows the query selects.
func (m model) visible() int {
	if m.query == "" {
		return len(m.items)
	}

	return len(m.matches)
}

// row returns the item at visible row i and the key indexes it matched.
func (m model) row(i int) (Item, []int) {
	if m.query == "" {
		return m.items[i], nil
	}

	return m.items[m.matches[i].Index], m.matches[i].MatchedIndexes
}

func (m model) selected() (Item, bool) {
	if m.cursor >= m.visible() {
		return Item{}, false
	}

	item, _ := m.row(m.cursor)

	return item, true
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	n := m.visible()

	// Scroll so that the cursor stays on screen.
	first := max(0, m.cursor-m.height+1)
	last := min(n, first+m.height)

	for i := first; i < last; i++ {
		item, matched := m.row(i)
		line := highlight(item.Key, matched) + valueStyle.Render("="+item.Value)

		if i == m.cursor {
			line = selectedStyle.Render(item.Key + "=" + item.Value)
		}

		b.WriteString(truncate(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render(
		strconv.Itoa(n) + "/" + strconv.Itoa(len(m.items)),
	))

	return b.String()
}

// highlight renders key with the runes at the given byte offsets emphasized.
func highlight(key string, matched []int) string {
	if len(matched) == 0 {
		return keyStyle.Render(key)
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder

	for i, r := range key {
		if set[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(keyStyle.Render(string(r)))
		}
	}

	return b.String()
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
