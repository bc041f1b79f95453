package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/models"
)

type sessionState int

const (
	stateInputName sessionState = iota
	stateInputDifficulty
	statePlaying
	stateShopping
	stateOver
	stateError
)

const defaultHunterName = "hunter"

// NewGameFunc starts a game for the named hunter.
type NewGameFunc func(name string, d models.Difficulty) (*engine.Engine, error)

// Options configures the UI. Empty HunterName or Difficulty are asked for.
type Options struct {
	HunterName string
	Difficulty string
	NewGame    NewGameFunc
}

type model struct {
	state     sessionState
	opts      Options
	engine    *engine.Engine
	name      string
	shopMode  engine.ShopMode
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	treasureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF"))
	winStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true)
	loseStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#AF5FD7")).Bold(true)
)

var menu = []string{
	"(B)uy something at the shop.",
	"(S)ell something at the shop.",
	"(E)xplore surrounding terrain.",
	"(H)unt for treasure.",
	"(M)ove on to a different town.",
	"(L)ook for trouble!",
	"(D)ig for gold.",
	"Give up the hunt and e(X)it.",
}

func NewModel(opts Options) model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40

	m := model{
		opts:      opts,
		textInput: ti,
		viewport:  viewport.New(80, 20),
		width:     100,
		height:    26,
	}
	m.gameLog = "Welcome to TREASURE HUNTER!\nGoing hunting for the big treasure, eh?\n\n"

	switch {
	case opts.HunterName == "":
		m.state = stateInputName
		m.textInput.Placeholder = "What's your name, Hunter?"
	case opts.Difficulty == "":
		m.name = opts.HunterName
		m.state = stateInputDifficulty
		m.textInput.Placeholder = "Easy, Normal, or Hard mode (e/n/h)"
	default:
		m.name = opts.HunterName
		m.state = stateInputDifficulty
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.state == stateInputDifficulty && m.opts.Difficulty != "" {
		d := m.opts.Difficulty
		return func() tea.Msg { return difficultyChosenMsg{answer: d} }
	}
	return textinput.Blink
}

// difficultyChosenMsg starts the game without asking, when configured.
type difficultyChosenMsg struct {
	answer string
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()
			return m.submit(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.65)
		m.viewport.Height = msg.Height - 6
		m.refreshLog()

	case difficultyChosenMsg:
		return m.chooseDifficulty(msg.answer)
	}

	if m.state != stateOver && m.state != stateError {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) submit(input string) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateInputName:
		if input == "" {
			input = defaultHunterName
		}
		m.name = input
		m.state = stateInputDifficulty
		m.textInput.Placeholder = "Easy, Normal, or Hard mode (e/n/h)"
		return m, nil

	case stateInputDifficulty:
		return m.chooseDifficulty(input)

	case statePlaying:
		if input == "" {
			return m, nil
		}
		m.echo(input)
		cmd := engine.ParseCommand(input)
		if cmd == engine.CmdBuy || cmd == engine.CmdSell {
			m.shopMode = engine.ShopBuy
			if cmd == engine.CmdSell {
				m.shopMode = engine.ShopSell
			}
			m.state = stateShopping
			m.textInput.Placeholder = "Item name"
			m.appendLog(renderOffers(m.shopMode, m.engine.Town().ShopOffers(m.shopMode)))
			return m, nil
		}
		return m.play(cmd, "")

	case stateShopping:
		m.state = statePlaying
		m.textInput.Placeholder = "What's your next move?"
		if input == "" {
			m.appendLog("You walk out of the shop.")
			return m, nil
		}
		m.echo(input)
		cmd := engine.CmdBuy
		if m.shopMode == engine.ShopSell {
			cmd = engine.CmdSell
		}
		return m.play(cmd, models.ParseItem(input))

	case stateOver, stateError:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) chooseDifficulty(answer string) (tea.Model, tea.Cmd) {
	d, err := models.ParseDifficulty(answer)
	if err != nil {
		m.appendLog(badStyle.Render("Pick e, n or h."))
		return m, nil
	}
	eng, err := m.opts.NewGame(m.name, d)
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	m.engine = eng
	m.state = statePlaying
	m.textInput.Placeholder = "What's your next move?"
	m.appendLog(renderNews(eng.Town().LatestNews(), m.viewport.Width))
	return m, nil
}

func (m model) play(cmd engine.Command, it models.Item) (tea.Model, tea.Cmd) {
	turn := m.engine.ProcessTurn(cmd, it)
	for _, res := range turn.Results {
		m.appendLog(renderNews(res, m.viewport.Width))
	}
	switch turn.Status {
	case engine.StatusWon:
		m.appendLog(winStyle.Render("Congrats! You found the last of the three treasures, you win!"))
	case engine.StatusLost:
		m.appendLog(loseStyle.Render("GAME OVER"))
	}
	if turn.Status != engine.StatusPlaying {
		m.state = stateOver
		m.textInput.Blur()
	}
	return m, nil
}

func (m *model) echo(input string) {
	m.appendLog(userStyle.Render("> " + input))
}

func (m *model) appendLog(s string) {
	m.gameLog += s + "\n\n"
	m.refreshLog()
}

func (m *model) refreshLog() {
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateInputName, stateInputDifficulty:
		s = lipgloss.JoinVertical(lipgloss.Left, m.gameLog, m.textInput.View())

	case statePlaying, stateShopping:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)
		help := helpStyle.Render("Type a menu letter and press Enter. Esc quits.")
		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateOver:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			helpStyle.Render(fmt.Sprintf("%d turns, %d towns. Press Enter to leave.", m.engine.Turns(), m.engine.TownsVisited())),
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	if m.engine == nil {
		return ""
	}
	h := m.engine.Hunter()
	town := m.engine.Town()

	hunter := titleStyle.Render("HUNTER") + "\n" + h.Info() + "\n\n"
	treasure := titleStyle.Render("TREASURE") + "\n" + treasureStyle.Render(town.TreasureInfo()) + "\n\n"
	place := titleStyle.Render("TOWN") + "\n" + town.Info() + "\n\n"
	moves := titleStyle.Render("MENU") + "\n" + strings.Join(menu, "\n")

	stateWidth := int(float64(m.width) * 0.33)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(hunter + treasure + place + moves)
}

func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
