package eventbus

import (
	"errors"
	"time"

	"github.com/Rorical/RoriSelect/internal/feed"
	"github.com/Rorical/RoriSelect/internal/option"
)

// ActionEvent represents requests sent from the widget to the platform
type ActionEvent interface {
	ActionEvent()
}

// PlatformEvent represents feed notifications sent from the platform to the widget
type PlatformEvent interface {
	PlatformEvent()
}

type ActionKind int

const (
	ActionSelect ActionKind = iota
	ActionCreate
	ActionClear
)

func (k ActionKind) String() string {
	switch k {
	case ActionSelect:
		return "select"
	case ActionCreate:
		return "create"
	case ActionClear:
		return "clear"
	}
	return "unknown"
}

// InvokeEvent - widget invokes a platform action
type InvokeEvent struct {
	Action ActionKind
	Option option.Option // ActionSelect
	Text   string        // ActionCreate
}

func (e InvokeEvent) ActionEvent() {}

type LinkedField int

const (
	LinkedLabel LinkedField = iota
	LinkedID
)

// SetLinkedEvent - widget writes into the linked label or id
type SetLinkedEvent struct {
	Field LinkedField
	Value string
}

func (e SetLinkedEvent) ActionEvent() {}

// OptionsFeedEvent - platform pushes the selectable universe
type OptionsFeedEvent struct {
	Feed feed.Raw[[]option.Record]
}

func (e OptionsFeedEvent) PlatformEvent() {}

// DefaultFeedEvent - platform pushes the current selection source
type DefaultFeedEvent struct {
	Feed feed.Raw[[]option.Record]
}

func (e DefaultFeedEvent) PlatformEvent() {}

// LinkedFeedEvent - platform pushes the linked label and id
type LinkedFeedEvent struct {
	Feed feed.Raw[option.Linked]
}

func (e LinkedFeedEvent) PlatformEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

var ErrChannelFull = errors.New("channel is full")

// EventBus handles communication between the widget and the platform
type EventBus struct {
	toPlatform    chan ActionEvent
	toWidget      chan PlatformEvent
	errorCallback func(EventBusError)
}

func NewEventBus(buffer int) *EventBus {
	if buffer <= 0 {
		buffer = 100
	}
	return &EventBus{
		toPlatform: make(chan ActionEvent, buffer),
		toWidget:   make(chan PlatformEvent, buffer),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) error {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
	return busError
}

// SendToPlatform never blocks: actions are fire-and-forget.
func (eb *EventBus) SendToPlatform(event ActionEvent) error {
	select {
	case eb.toPlatform <- event:
		return nil
	default:
		return eb.reportError("SendToPlatform", ErrChannelFull)
	}
}

func (eb *EventBus) SendToWidget(event PlatformEvent) error {
	select {
	case eb.toWidget <- event:
		return nil
	default:
		return eb.reportError("SendToWidget", ErrChannelFull)
	}
}

func (eb *EventBus) ToPlatform() <-chan ActionEvent {
	return eb.toPlatform
}

func (eb *EventBus) ToWidget() <-chan PlatformEvent {
	return eb.toWidget
}
