package core

import (
	"github.com/Rorical/RoriSelect/internal/feed"
	"github.com/Rorical/RoriSelect/internal/option"
)

// Event is an input to the machine: a feed notification or a user action.
type Event interface {
	event()
}

type OptionsUpdated struct {
	Feed feed.Raw[[]option.Record]
}

type DefaultUpdated struct {
	Feed feed.Raw[[]option.Record]
}

type LinkedUpdated struct {
	Feed feed.Raw[option.Linked]
}

type SearchChanged struct {
	Text string
}

type MenuToggled struct {
	Open bool
}

type HighlightMoved struct {
	Delta int
}

// Activated is Enter or a click on a menu row. A negative Row means the
// highlighted row.
type Activated struct {
	Row int
}

type ClearRequested struct{}

// Dispatched acknowledges that the dispatcher accepted Command.
type Dispatched struct {
	Command Command
}

func (OptionsUpdated) event() {}
func (DefaultUpdated) event() {}
func (LinkedUpdated) event()  {}
func (SearchChanged) event()  {}
func (MenuToggled) event()    {}
func (HighlightMoved) event() {}
func (Activated) event()      {}
func (ClearRequested) event() {}
func (Dispatched) event()     {}
