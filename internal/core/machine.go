package core

import (
	"strings"

	"github.com/Rorical/RoriSelect/internal/feed"
	"github.com/Rorical/RoriSelect/internal/option"
)

// Settings are the static display switches that change behavior.
type Settings struct {
	EnableCreate bool
	EnableClear  bool
	EnableSearch bool
}

type source int

const (
	fromDefault source = iota
	fromLinked
)

// Machine reconciles the options, default-value and linked feeds with user
// input. It is a value: Update returns the next machine and leaves the
// receiver untouched, so every transition can be replayed in tests.
type Machine struct {
	settings Settings

	options  feed.Normalizer[[]option.Record]
	defaults feed.Normalizer[[]option.Record]
	linked   feed.Normalizer[option.Linked]

	query       string
	menuOpen    bool
	highlighted int

	// optimistic is set between a dispatched command and the next confirmed
	// external value.
	optimistic *Selection
	authority  source
}

func New(settings Settings) Machine {
	return Machine{settings: settings}
}

func (m Machine) Settings() Settings { return m.settings }

// Pending reports whether an optimistic selection awaits confirmation.
func (m Machine) Pending() bool { return m.optimistic != nil }

// Update applies one event and returns the next machine together with at
// most one command. Feed events never produce commands.
func (m Machine) Update(ev Event) (Machine, Command) {
	switch e := ev.(type) {
	case OptionsUpdated:
		m.options.Apply(e.Feed)
	case DefaultUpdated:
		// A pending command is only confirmed by the linked feed; a default
		// value may predate it.
		if _, fresh := m.defaults.Apply(e.Feed); fresh && m.optimistic == nil {
			m.authority = fromDefault
		}
	case LinkedUpdated:
		if _, fresh := m.linked.Apply(e.Feed); fresh && m.optimistic != nil {
			m.confirm(fromLinked)
		}
	case SearchChanged:
		if !m.settings.EnableSearch {
			return m, nil
		}
		m.query = e.Text
		if e.Text != "" {
			m.menuOpen = true
		}
		m.highlighted = 0
	case MenuToggled:
		m.menuOpen = e.Open
		if !e.Open {
			m.query = ""
		}
		m.highlighted = 0
	case HighlightMoved:
		m.highlighted += e.Delta
	case Activated:
		cmd := m.activate(e.Row)
		return m, cmd
	case ClearRequested:
		if m.settings.EnableClear && !m.selection().IsNone() {
			return m, Clear{}
		}
		return m, nil
	case Dispatched:
		m.applyOptimistic(e.Command)
	}

	m.highlighted = clamp(m.highlighted, m.State().Rows())
	return m, nil
}

// State derives the UI state for the current inputs.
func (m Machine) State() UIState {
	all := m.allOptions()
	trimmed := strings.TrimSpace(m.query)

	visible := all
	if m.settings.EnableSearch {
		visible = Filter(all, trimmed)
	}

	var offer *CreateOffer
	if m.settings.EnableCreate && m.settings.EnableSearch && trimmed != "" && !HasExactMatch(all, trimmed) {
		offer = &CreateOffer{RawText: trimmed}
	}

	st := UIState{
		VisibleOptions:   visible,
		Selection:        m.selection(),
		MenuOpen:         m.menuOpen,
		OfferCreate:      offer,
		LoadingIndicator: m.loading(),
		Query:            m.query,
		Pending:          m.optimistic != nil,
	}
	st.Highlighted = clamp(m.highlighted, st.Rows())

	switch {
	case !m.bootstrapped():
		st.Phase = PhaseLoading
	case m.menuOpen && m.query != "" && offer != nil:
		st.Phase = PhaseOfferingCreate
	case m.menuOpen && m.query != "":
		st.Phase = PhaseSearching
	case len(all) == 0 && !m.settings.EnableCreate:
		st.Phase = PhaseEmpty
	default:
		st.Phase = PhaseReady
	}
	return st
}

// bootstrapped turns true once both gating feeds were available at least
// once. The linked feed does not gate.
func (m Machine) bootstrapped() bool {
	return m.options.Reached() && m.defaults.Reached()
}

func (m Machine) loading() bool {
	return !m.bootstrapped() || m.options.State().IsLoading() || m.defaults.State().IsLoading()
}

func (m Machine) allOptions() []option.Option {
	records, _ := m.options.State().Value()
	return option.ToOptions(records)
}

func (m Machine) selection() Selection {
	if m.optimistic != nil {
		return *m.optimistic
	}
	if m.authority == fromLinked {
		if l, ok := m.linked.State().Value(); ok {
			return m.resolveLinked(l)
		}
	}
	records, ok := m.defaults.State().Value()
	if !ok || len(records) == 0 {
		return None()
	}
	opt, ok := option.ToOption(records[0])
	if !ok {
		return None()
	}
	return Selected(opt)
}

func (m Machine) resolveLinked(l option.Linked) Selection {
	if l.Empty() {
		return None()
	}
	for _, o := range m.allOptions() {
		if l.ID != "" && o.SourceKey == l.ID {
			return Selected(o)
		}
		if l.ID == "" && o.PrimaryLabel == l.Label {
			return Selected(o)
		}
	}
	return Selected(option.Option{PrimaryLabel: l.Label, SourceKey: l.ID})
}

// confirm drops the optimistic selection in favor of the feed that just
// delivered a value.
func (m *Machine) confirm(src source) {
	m.optimistic = nil
	m.authority = src
}

func (m *Machine) activate(row int) Command {
	if !m.menuOpen {
		m.menuOpen = true
		m.highlighted = 0
		return nil
	}

	st := m.State()
	if row < 0 {
		row = st.Highlighted
	}
	switch {
	case row < len(st.VisibleOptions):
		return Select{Option: st.VisibleOptions[row]}
	case row == len(st.VisibleOptions) && st.OfferCreate != nil:
		return Create{Text: st.OfferCreate.RawText}
	}
	return nil
}

func (m *Machine) applyOptimistic(cmd Command) {
	var sel Selection
	switch c := cmd.(type) {
	case Select:
		sel = Selected(c.Option)
	case Create:
		sel = Selected(option.Option{PrimaryLabel: c.Text})
	case Clear:
		sel = None()
	default:
		return
	}
	m.optimistic = &sel
	m.query = ""
	m.menuOpen = false
	m.highlighted = 0
}

func clamp(i, rows int) int {
	if i >= rows {
		i = rows - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
