// Package logger builds the zap logger shared by the platform, the widget
// session and the CLI.
package logger
