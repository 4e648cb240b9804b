package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriSelect/internal/core"
	"github.com/Rorical/RoriSelect/internal/eventbus"
	"github.com/Rorical/RoriSelect/internal/models"
	"github.com/Rorical/RoriSelect/internal/widget"
)

// PlatformEventMsg wraps platform feed notifications for Bubble Tea
type PlatformEventMsg struct {
	Event eventbus.PlatformEvent
}

// ListenForPlatformEvents waits for the next feed notification.
func ListenForPlatformEvents(eb *eventbus.EventBus) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-eb.ToWidget()
		if !ok {
			return nil
		}
		return PlatformEventMsg{Event: event}
	}
}

// HandlePlatformEvent feeds a platform notification into the session
func HandlePlatformEvent(appModel *models.AppModel, msg PlatformEventMsg, s *widget.Session) {
	switch event := msg.Event.(type) {
	case eventbus.OptionsFeedEvent:
		appModel.State = s.OnOptionsFeed(event.Feed)
	case eventbus.DefaultFeedEvent:
		appModel.State = s.OnDefaultFeed(event.Feed)
	case eventbus.LinkedFeedEvent:
		appModel.State = s.OnLinkedFeed(event.Feed)
	default:
		return
	}
	appModel.Status = StatusText(appModel.State)
}

// HandleKeyMsg maps keyboard input onto the session hooks
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, s *widget.Session, input *textinput.Model, keys KeyMap) tea.Cmd {
	var cmd tea.Cmd

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, keys.Close):
		appModel.State = s.OnMenuOpenChange(false)
	case key.Matches(keyMsg, keys.Toggle):
		appModel.State = s.OnMenuOpenChange(!appModel.State.MenuOpen)
	case key.Matches(keyMsg, keys.Up):
		if appModel.State.MenuOpen {
			appModel.State = s.OnHighlightMove(-1)
		}
	case key.Matches(keyMsg, keys.Down):
		if appModel.State.MenuOpen {
			appModel.State = s.OnHighlightMove(1)
		} else {
			appModel.State = s.OnMenuOpenChange(true)
		}
	case key.Matches(keyMsg, keys.Select):
		appModel.State = s.OnOptionActivate(-1)
	case key.Matches(keyMsg, keys.Clear):
		appModel.State = s.OnClear()
	default:
		*input, cmd = input.Update(keyMsg)
		if input.Value() != appModel.State.Query {
			appModel.State = s.OnSearchTextChange(input.Value())
		}
	}

	// The query resets on close and after a command; keep the input in step.
	if input.Value() != appModel.State.Query {
		input.SetValue(appModel.State.Query)
	}
	appModel.Status = StatusText(appModel.State)
	return cmd
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

// StatusText describes the state for the status bar.
func StatusText(st core.UIState) string {
	var status string
	switch st.Phase {
	case core.PhaseLoading:
		status = "Loading"
	case core.PhaseEmpty:
		status = "No options"
	case core.PhaseSearching:
		status = "Searching"
	case core.PhaseOfferingCreate:
		status = "No match, Enter creates it"
	default:
		status = "Ready"
	}
	if st.Pending {
		status += " (saving)"
	}
	return status
}
