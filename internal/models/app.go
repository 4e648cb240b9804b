package models

import (
	"github.com/Rorical/RoriSelect/internal/core"
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	State  core.UIState // Last state returned by the widget session
	Status string       // Status bar text
	Width  int          // Terminal width
	Height int          // Terminal height, caps the menu rows
}
