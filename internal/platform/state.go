package platform

import (
	"sync"

	"github.com/Rorical/RoriSelect/internal/eventbus"
	"github.com/Rorical/RoriSelect/internal/option"
)

// ContextState is the context object the widget is bound to: the key of the
// selected record and the linked label and id attributes.
type ContextState struct {
	mu          sync.RWMutex
	selectedKey string
	linked      option.Linked
}

func NewContextState(selectedKey string) *ContextState {
	return &ContextState{selectedKey: selectedKey}
}

func (cs *ContextState) Select(key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.selectedKey = key
}

func (cs *ContextState) SelectedKey() string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.selectedKey
}

func (cs *ContextState) SetLinked(field eventbus.LinkedField, value string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	switch field {
	case eventbus.LinkedLabel:
		cs.linked.Label = value
	case eventbus.LinkedID:
		cs.linked.ID = value
	}
}

func (cs *ContextState) Linked() option.Linked {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.linked
}
