package widget

import (
	"go.uber.org/zap"

	"github.com/Rorical/RoriSelect/internal/core"
	"github.com/Rorical/RoriSelect/internal/dispatcher"
	"github.com/Rorical/RoriSelect/internal/feed"
	"github.com/Rorical/RoriSelect/internal/option"
)

// Session is one mounted dropdown. The renderer calls the On* hooks and
// re-renders from the returned state. Hooks must be called from a single
// goroutine; the bubbletea update loop does that.
type Session struct {
	machine    core.Machine
	dispatcher *dispatcher.Dispatcher
	logger     *zap.Logger
}

func New(settings core.Settings, d *dispatcher.Dispatcher, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		machine:    core.New(settings),
		dispatcher: d,
		logger:     logger,
	}
}

func (s *Session) State() core.UIState {
	return s.machine.State()
}

func (s *Session) OnSearchTextChange(text string) core.UIState {
	return s.handle(core.SearchChanged{Text: text})
}

func (s *Session) OnMenuOpenChange(open bool) core.UIState {
	return s.handle(core.MenuToggled{Open: open})
}

// OnOptionActivate handles Enter or a click on row. Pass a negative row for
// the highlighted one.
func (s *Session) OnOptionActivate(row int) core.UIState {
	return s.handle(core.Activated{Row: row})
}

func (s *Session) OnHighlightMove(delta int) core.UIState {
	return s.handle(core.HighlightMoved{Delta: delta})
}

func (s *Session) OnClear() core.UIState {
	return s.handle(core.ClearRequested{})
}

func (s *Session) OnOptionsFeed(raw feed.Raw[[]option.Record]) core.UIState {
	return s.handle(core.OptionsUpdated{Feed: raw})
}

func (s *Session) OnDefaultFeed(raw feed.Raw[[]option.Record]) core.UIState {
	return s.handle(core.DefaultUpdated{Feed: raw})
}

func (s *Session) OnLinkedFeed(raw feed.Raw[option.Linked]) core.UIState {
	return s.handle(core.LinkedUpdated{Feed: raw})
}

func (s *Session) handle(ev core.Event) core.UIState {
	next, cmd := s.machine.Update(ev)
	s.machine = next

	if cmd != nil {
		if s.dispatcher.Dispatch(cmd) {
			s.machine, _ = s.machine.Update(core.Dispatched{Command: cmd})
		} else {
			s.logger.Debug("command not dispatched", zap.String("command", dispatcher.Name(cmd)))
		}
	}

	// The machine drops its optimistic value on the first confirmed feed
	// value; the dispatcher follows.
	if s.dispatcher.InFlight() != nil && !s.machine.Pending() {
		s.dispatcher.Settle()
	}
	return s.machine.State()
}
