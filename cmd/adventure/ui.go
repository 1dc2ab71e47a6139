package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/defaltsimon/pac-adventure/pkg/game"
)

const placeholderText = "What do you do?"

// AdventureUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type AdventureUI struct {
	game          *game.Game
	opening       string
	storyView     viewport.Model
	metaView      viewport.Model
	textarea      textarea.Model
	transcript    []transcriptEntry
	ready         bool
	width         int
	height        int
	showQuitModal bool
}

type transcriptEntry struct {
	input  string // empty for the opening entry
	text   string
	denial bool
	header string // room header rendered above the text, when set
}

var (
	storyPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narrativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	denyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var titleCaser = cases.Title(language.English)

// NewAdventureUI wires the engine into the terminal UI. The opening text is
// the starting message plus the starting room description.
func NewAdventureUI(g *game.Game, opening string) AdventureUI {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	storyVp := viewport.New(50, 20)
	storyVp.MouseWheelEnabled = true
	metaVp := viewport.New(20, 20)

	return AdventureUI{
		game:      g,
		opening:   opening,
		textarea:  ta,
		storyView: storyVp,
		metaView:  metaVp,
	}
}

// roomHeader renders the room name between dashes plus the ways out, the
// same banner the engine's original frontend printed.
func (m *AdventureUI) roomHeader() string {
	room := titleCaser.String(m.game.CurrentRoom().Name)
	ways := strings.Join(m.game.Ways(), ", ")

	width := m.storyView.Width - 6
	if width < len(room)+2 {
		width = len(room) + 2
	}
	pad := (width - len(room)) / 2
	banner := strings.Repeat("-", pad) + room + strings.Repeat("-", pad)
	return headerStyle.Render(banner) + "\n" + promptStyle.Render("You can go to: "+ways)
}

func (m *AdventureUI) writeStoryContent() {
	width := m.storyView.Width - 6
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(titleCaser.String(m.game.Name())) + "\n\n")
	content.WriteString(wordwrap.String(m.game.StartingMessage(), width) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	for _, e := range m.transcript {
		if e.input != "" {
			content.WriteString(playerStyle.Render("> "+e.input) + "\n")
		}
		if e.header != "" {
			content.WriteString(e.header + "\n")
		}
		style := narrativeStyle
		if e.denial {
			style = denyStyle
		}
		if e.text != "" {
			content.WriteString(style.Render(wordwrap.String(e.text, width)) + "\n")
		}
		content.WriteString("\n")
	}

	m.storyView.SetContent(content.String())
	m.storyView.GotoBottom()
}

func (m *AdventureUI) writeMetadata() {
	var content strings.Builder
	content.WriteString(titleStyle.Render("WORLD") + "\n\n")

	content.WriteString("Game:\n")
	content.WriteString(fmt.Sprintf("%s v%s\n\n", m.game.Name(), m.game.Version()))

	content.WriteString("Session:\n")
	content.WriteString(m.game.SessionID().String()[:8] + "...\n\n")

	content.WriteString("Room:\n")
	content.WriteString(m.game.CurrentRoom().Name + "\n\n")

	content.WriteString("Ways out:\n")
	if ways := m.game.Ways(); len(ways) > 0 {
		for _, w := range ways {
			content.WriteString("• " + w + "\n")
		}
	} else {
		content.WriteString("none\n")
	}
	content.WriteString("\n")

	content.WriteString("Inventory:\n")
	items := m.game.Inventory()
	if len(items) == 0 {
		content.WriteString("empty\n")
	} else {
		for _, it := range items {
			content.WriteString("• " + it.Name + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString("Visited: ")
	content.WriteString(fmt.Sprintf("%d rooms\n\n", len(m.game.Visited())))

	content.WriteString("Commands:\n")
	content.WriteString("• Enter: Act\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• help: Commands\n")

	m.metaView.SetContent(content.String())
}

func (m AdventureUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m AdventureUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		svCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		storyWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - storyWidth - 6

		m.storyView.Width = storyWidth - 2
		m.storyView.Height = m.height - 6
		m.metaView.Width = metaWidth - 2
		m.metaView.Height = m.height - 4
		m.textarea.SetWidth(storyWidth - 4)

		if !m.ready {
			m.ready = true
			m.transcript = []transcriptEntry{{text: m.opening, header: m.roomHeader()}}
		}
		m.writeStoryContent()
		m.writeMetadata()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()

			res := runCommand(m.game, input)
			if res.quit {
				m.showQuitModal = true
				return m, nil
			}

			entry := transcriptEntry{input: input, text: res.text, denial: res.denial}
			if res.header {
				entry.header = m.roomHeader()
			}
			m.transcript = append(m.transcript, entry)

			m.writeStoryContent()
			m.writeMetadata()
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.storyView, svCmd = m.storyView.Update(msg)
	m.metaView, mvCmd = m.metaView.Update(msg)

	return m, tea.Batch(tiCmd, svCmd, mvCmd)
}

func (m AdventureUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}
	return m, nil
}

func (m AdventureUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to leave the adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit or N to keep playing"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m AdventureUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	storyWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - storyWidth - 6

	storyPanel := storyPanelStyle.Width(storyWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.storyView.View(),
			separatorStyle.Render(strings.Repeat("─", storyWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaView.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, storyPanel, metaPanel)
}
