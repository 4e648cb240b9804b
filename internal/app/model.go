package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriSelect/internal/eventbus"
	"github.com/Rorical/RoriSelect/internal/models"
	"github.com/Rorical/RoriSelect/internal/presentation"
	"github.com/Rorical/RoriSelect/internal/update"
	"github.com/Rorical/RoriSelect/internal/widget"
	"github.com/Rorical/RoriSelect/ui/components"
)

type AppModel struct {
	appModel models.AppModel
	session  *widget.Session
	eventBus *eventbus.EventBus
	display  presentation.Config
	input    textinput.Model
	spinner  spinner.Model
	keys     update.KeyMap
}

func NewAppModel(session *widget.Session, eb *eventbus.EventBus, display presentation.Config) *AppModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	state := session.State()
	return &AppModel{
		appModel: models.AppModel{
			State:  state,
			Status: update.StatusText(state),
			Width:  60,
		},
		session:  session,
		eventBus: eb,
		display:  display,
		input:    ti,
		spinner:  sp,
		keys:     update.DefaultKeyMap(),
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		update.ListenForPlatformEvents(m.eventBus),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case update.PlatformEventMsg:
		// Handle the feed update and continue listening
		update.HandlePlatformEvent(&m.appModel, msg, m.session)
		return m, update.ListenForPlatformEvents(m.eventBus)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, update.HandleKeyMsg(&m.appModel, msg, m.session, &m.input, m.keys)
	case tea.WindowSizeMsg:
		update.HandleWindowSizeMsg(&m.appModel, msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	props := presentation.Bind(m.appModel.State, m.display)
	props.MenuHeight = fitMenuHeight(props.MenuHeight, m.appModel.Height)
	b.WriteString(components.RenderDropdown(props, m.input.View(), m.spinner.View(), m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(props.Prefix, m.appModel.Status, m.keys, m.appModel.Width))

	return b.String()
}

// chromeLines is the height of everything but the menu rows: control with
// border, menu border and status line.
const chromeLines = 5

// fitMenuHeight shrinks the configured menu height to the terminal. A zero
// terminal height means no size was reported yet.
func fitMenuHeight(configured, terminal int) int {
	if terminal <= 0 {
		return configured
	}
	available := max(terminal-chromeLines, 1)
	if configured <= 0 || configured > available {
		return available
	}
	return configured
}
