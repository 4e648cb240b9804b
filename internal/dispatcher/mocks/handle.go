package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Rorical/RoriSelect/internal/dispatcher"
)

// Handle is a mock implementation of dispatcher.Handle
type Handle struct {
	mock.Mock
}

func (m *Handle) Executable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *Handle) Invoke(arg dispatcher.Arg) {
	m.Called(arg)
}

// Setter is a mock implementation of dispatcher.Setter
type Setter struct {
	mock.Mock
}

func (m *Setter) SetValue(value string) {
	m.Called(value)
}
