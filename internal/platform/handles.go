package platform

import (
	"github.com/Rorical/RoriSelect/internal/dispatcher"
	"github.com/Rorical/RoriSelect/internal/eventbus"
)

// Handles are the capabilities the runtime lends to the widget.
type Handles = dispatcher.Handles

type actionHandle struct {
	kind       eventbus.ActionKind
	executable bool
	bus        *eventbus.EventBus
}

func (h actionHandle) Executable() bool {
	return h.executable
}

func (h actionHandle) Invoke(arg dispatcher.Arg) {
	// A full channel drops the action; the bus reports it.
	_ = h.bus.SendToPlatform(eventbus.InvokeEvent{
		Action: h.kind,
		Option: arg.Option,
		Text:   arg.Text,
	})
}

type linkedSetter struct {
	field eventbus.LinkedField
	bus   *eventbus.EventBus
}

func (s linkedSetter) SetValue(value string) {
	_ = s.bus.SendToPlatform(eventbus.SetLinkedEvent{Field: s.field, Value: value})
}

func newHandles(cfg Config, bus *eventbus.EventBus) Handles {
	return Handles{
		Select:      actionHandle{kind: eventbus.ActionSelect, executable: cfg.SelectEnabled, bus: bus},
		Create:      actionHandle{kind: eventbus.ActionCreate, executable: cfg.CreateEnabled, bus: bus},
		Clear:       actionHandle{kind: eventbus.ActionClear, executable: cfg.ClearEnabled, bus: bus},
		LinkedLabel: linkedSetter{field: eventbus.LinkedLabel, bus: bus},
		LinkedID:    linkedSetter{field: eventbus.LinkedID, bus: bus},
	}
}
