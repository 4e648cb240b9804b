package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/RoriSelect/internal/config"
	"github.com/Rorical/RoriSelect/internal/dataset"
	"github.com/Rorical/RoriSelect/internal/dispatcher"
	"github.com/Rorical/RoriSelect/internal/eventbus"
	"github.com/Rorical/RoriSelect/internal/logger"
	"github.com/Rorical/RoriSelect/internal/platform"
	"github.com/Rorical/RoriSelect/internal/widget"
)

// Application manages the complete application lifecycle
type Application struct {
	config   *config.Config
	logger   *zap.Logger
	eventBus *eventbus.EventBus
	service  *platform.Service
	model    *AppModel
}

func NewApplication(cfg *config.Config) (*Application, error) {
	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	data, err := dataset.LoadOrCreate(cfg.Platform.Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	eb := eventbus.NewEventBus(100)
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		log.Warn("event bus error", zap.String("operation", e.Operation), zap.Error(e.Err))
	})

	service := platform.NewService(cfg.Platform, data, eb, log.Named("platform"))
	disp := dispatcher.New(service.Handles(), log.Named("dispatcher"))
	session := widget.New(cfg.Display.Settings(), disp, log.Named("widget"))

	log.Info("application created",
		zap.String("dataset", cfg.Platform.Dataset),
		zap.Int("records", len(data.Records)))

	return &Application{
		config:   cfg,
		logger:   log,
		eventBus: eb,
		service:  service,
		model:    NewAppModel(session, eb, cfg.Display),
	}, nil
}

func (app *Application) Start() error {
	// Start the runtime before the UI so the first feeds are queued
	app.service.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	_ = app.logger.Sync()
}
