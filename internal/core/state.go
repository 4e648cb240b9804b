package core

import (
	"github.com/Rorical/RoriSelect/internal/option"
)

// Phase is the visual state the dropdown is in.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseEmpty
	PhaseReady
	PhaseSearching
	PhaseOfferingCreate
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseEmpty:
		return "empty"
	case PhaseReady:
		return "ready"
	case PhaseSearching:
		return "searching"
	case PhaseOfferingCreate:
		return "offering-create"
	}
	return "unknown"
}

// Selection is the currently chosen option, or none.
type Selection struct {
	option option.Option
	set    bool
}

func None() Selection { return Selection{} }

func Selected(o option.Option) Selection {
	return Selection{option: o, set: true}
}

func (s Selection) IsNone() bool { return !s.set }

func (s Selection) Option() (option.Option, bool) {
	return s.option, s.set
}

// CreateOffer is the "create new option" row shown when the typed text has
// no exact match.
type CreateOffer struct {
	RawText string
}

func (c CreateOffer) Label() string {
	return `Create "` + c.RawText + `"`
}

// UIState is everything the renderer needs for one frame. It is always
// derived from the machine and never edited directly.
type UIState struct {
	Phase            Phase
	VisibleOptions   []option.Option
	Selection        Selection
	MenuOpen         bool
	OfferCreate      *CreateOffer
	LoadingIndicator bool
	Query            string
	Highlighted      int  // row index; the create row follows the options
	Pending          bool // an optimistic selection awaits confirmation
}

// Rows is the number of activatable menu rows.
func (s UIState) Rows() int {
	n := len(s.VisibleOptions)
	if s.OfferCreate != nil {
		n++
	}
	return n
}

// Command is the single side effect a user interaction may request.
type Command interface {
	command()
}

type Select struct {
	Option option.Option
}

type Create struct {
	Text string
}

type Clear struct{}

func (Select) command() {}
func (Create) command() {}
func (Clear) command()  {}
