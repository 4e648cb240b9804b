package update

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriSelect/internal/core"
	"github.com/Rorical/RoriSelect/internal/dispatcher"
	"github.com/Rorical/RoriSelect/internal/dispatcher/mocks"
	"github.com/Rorical/RoriSelect/internal/eventbus"
	"github.com/Rorical/RoriSelect/internal/feed"
	"github.com/Rorical/RoriSelect/internal/models"
	"github.com/Rorical/RoriSelect/internal/option"
	"github.com/Rorical/RoriSelect/internal/widget"
)

type harness struct {
	model   models.AppModel
	session *widget.Session
	input   textinput.Model
	keys    KeyMap
	sel     *mocks.Handle
	create  *mocks.Handle
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		sel:    new(mocks.Handle),
		create: new(mocks.Handle),
		keys:   DefaultKeyMap(),
		input:  textinput.New(),
	}
	h.input.Focus()
	for _, m := range []*mocks.Handle{h.sel, h.create} {
		m.On("Executable").Return(true)
		m.On("Invoke", mock.Anything).Return()
	}

	d := dispatcher.New(dispatcher.Handles{Select: h.sel, Create: h.create}, nil)
	h.session = widget.New(core.Settings{EnableCreate: true, EnableClear: true, EnableSearch: true}, d, nil)

	records := []option.Record{
		{Key: "1", Primary: option.Text("label1"), Secondary: option.Text("secondLabel1")},
		{Key: "2", Primary: option.Text("label2"), Secondary: option.Text("secondLabel2")},
		{Key: "3", Primary: option.Text("label3"), Secondary: option.Text("secondLabel3")},
	}
	HandlePlatformEvent(&h.model, PlatformEventMsg{Event: eventbus.OptionsFeedEvent{Feed: feed.AvailableRaw(records)}}, h.session)
	HandlePlatformEvent(&h.model, PlatformEventMsg{Event: eventbus.DefaultFeedEvent{Feed: feed.AvailableRaw(records[:1])}}, h.session)
	return h
}

func (h *harness) press(msg tea.KeyMsg) tea.Cmd {
	return HandleKeyMsg(&h.model, msg, h.session, &h.input, h.keys)
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestHandlePlatformEvent(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, core.PhaseReady, h.model.State.Phase)
	assert.Equal(t, "Ready", h.model.Status)
}

func TestHandleKeyMsg_TypeAndSelect(t *testing.T) {
	h := newHarness(t)

	h.typeText("label3")
	require.True(t, h.model.State.MenuOpen)
	require.Len(t, h.model.State.VisibleOptions, 1)
	assert.Equal(t, "Searching", h.model.Status)

	h.press(tea.KeyMsg{Type: tea.KeyEnter})

	h.sel.AssertNumberOfCalls(t, "Invoke", 1)
	assert.Equal(t, "", h.input.Value())
	assert.False(t, h.model.State.MenuOpen)
	assert.Equal(t, "Ready (saving)", h.model.Status)
}

func TestHandleKeyMsg_Create(t *testing.T) {
	h := newHarness(t)

	h.typeText("new")
	assert.Equal(t, "No match, Enter creates it", h.model.Status)

	h.press(tea.KeyMsg{Type: tea.KeyEnter})
	h.create.AssertCalled(t, "Invoke", dispatcher.Arg{Text: "new"})
}

func TestHandleKeyMsg_Navigation(t *testing.T) {
	h := newHarness(t)

	h.press(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, h.model.State.MenuOpen)
	assert.Equal(t, 0, h.model.State.Highlighted)

	h.press(tea.KeyMsg{Type: tea.KeyDown})
	h.press(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, h.model.State.Highlighted)

	h.press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, h.model.State.Highlighted)

	h.press(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, h.model.State.MenuOpen)
}

func TestHandleKeyMsg_EscResetsInput(t *testing.T) {
	h := newHarness(t)

	h.typeText("lab")
	assert.Equal(t, "lab", h.input.Value())

	h.press(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", h.input.Value())
	assert.Equal(t, "", h.model.State.Query)
	assert.False(t, h.model.State.MenuOpen)
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	h := newHarness(t)
	cmd := h.press(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Loading", StatusText(core.UIState{Phase: core.PhaseLoading}))
	assert.Equal(t, "No options", StatusText(core.UIState{Phase: core.PhaseEmpty}))
	assert.Equal(t, "Searching (saving)", StatusText(core.UIState{Phase: core.PhaseSearching, Pending: true}))
}
