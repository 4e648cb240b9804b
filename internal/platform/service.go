package platform

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Rorical/RoriSelect/internal/dataset"
	"github.com/Rorical/RoriSelect/internal/eventbus"
	"github.com/Rorical/RoriSelect/internal/feed"
	"github.com/Rorical/RoriSelect/internal/option"
)

// Config holds configuration for the in-process runtime that backs the widget.
type Config struct {
	// Dataset is the YAML file holding the records.
	Dataset string `mapstructure:"dataset" default:""`
	// Latency delays every feed refresh to mimic a remote round trip.
	Latency time.Duration `mapstructure:"latency" default:"300ms"`
	// DefaultKey overrides the default selection stored in the dataset.
	DefaultKey string `mapstructure:"default_key" default:""`
	// Persist writes created records back to the dataset file.
	Persist bool `mapstructure:"persist" default:"false"`

	SelectEnabled bool `mapstructure:"select_enabled" default:"true"`
	CreateEnabled bool `mapstructure:"create_enabled" default:"true"`
	ClearEnabled  bool `mapstructure:"clear_enabled" default:"true"`
}

// Service plays the external runtime: it owns the records and the context
// object, publishes the three feeds and executes actions.
type Service struct {
	cfg    Config
	data   *dataset.Dataset
	state  *ContextState
	bus    *eventbus.EventBus
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewService(cfg Config, data *dataset.Dataset, bus *eventbus.EventBus, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	defaultKey := data.Default
	if cfg.DefaultKey != "" {
		defaultKey = cfg.DefaultKey
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cfg:    cfg,
		data:   data,
		state:  NewContextState(defaultKey),
		bus:    bus,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start publishes the initial feeds and runs the action loop in a goroutine.
func (s *Service) Start() {
	s.publish(eventbus.OptionsFeedEvent{Feed: feed.LoadingRaw[[]option.Record]()})
	s.publish(eventbus.DefaultFeedEvent{Feed: feed.LoadingRaw[[]option.Record]()})
	s.publishLinked()

	go func() {
		if !s.wait() {
			return
		}
		s.publishOptions()
		s.publishDefault()
		s.eventLoop()
	}()
}

func (s *Service) Stop() {
	s.cancel()
}

// Handles exposes the actions and linked setters to the dispatcher.
func (s *Service) Handles() Handles {
	return newHandles(s.cfg, s.bus)
}

func (s *Service) eventLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.bus.ToPlatform():
			if !ok {
				return
			}
			s.handleActionEvent(event)
		}
	}
}

func (s *Service) handleActionEvent(event eventbus.ActionEvent) {
	switch e := event.(type) {
	case eventbus.SetLinkedEvent:
		// Published together with the action that follows.
		s.state.SetLinked(e.Field, e.Value)
	case eventbus.InvokeEvent:
		s.handleInvoke(e)
	}
}

func (s *Service) handleInvoke(e eventbus.InvokeEvent) {
	s.logger.Info("action invoked", zap.Stringer("action", e.Action))

	switch e.Action {
	case eventbus.ActionSelect:
		s.state.Select(e.Option.SourceKey)
		s.publishLinked()
		s.refreshDefault()
	case eventbus.ActionCreate:
		entry, err := s.data.Add(dataset.Entry{Label: e.Text})
		if err != nil {
			s.logger.Error("failed to create record", zap.Error(err))
			return
		}
		s.persist()
		s.state.Select(entry.Key)
		s.state.SetLinked(eventbus.LinkedID, entry.Key)
		s.logger.Info("record created", zap.String("key", entry.Key), zap.String("label", entry.Label))

		s.publish(eventbus.OptionsFeedEvent{Feed: feed.LoadingRaw[[]option.Record]()})
		if !s.wait() {
			return
		}
		s.publishOptions()
		s.refreshDefault()
		s.publishLinked()
	case eventbus.ActionClear:
		s.state.Select("")
		s.publishLinked()
		s.refreshDefault()
	}
}

// refreshDefault publishes a loading default feed, then the new value after
// the configured latency.
func (s *Service) refreshDefault() {
	s.publish(eventbus.DefaultFeedEvent{Feed: feed.LoadingRaw[[]option.Record]()})
	if !s.wait() {
		return
	}
	s.publishDefault()
}

func (s *Service) publishOptions() {
	s.publish(eventbus.OptionsFeedEvent{Feed: feed.AvailableRaw(s.data.OptionRecords())})
}

func (s *Service) publishDefault() {
	records := []option.Record{}
	if key := s.state.SelectedKey(); key != "" {
		if entry, err := s.data.Find(key); err == nil {
			records = append(records, entry.Record())
		} else {
			s.logger.Warn("default record missing", zap.String("key", key))
		}
	}
	s.publish(eventbus.DefaultFeedEvent{Feed: feed.AvailableRaw(records)})
}

func (s *Service) publishLinked() {
	s.publish(eventbus.LinkedFeedEvent{Feed: feed.AvailableRaw(s.state.Linked())})
}

func (s *Service) publish(event eventbus.PlatformEvent) {
	if err := s.bus.SendToWidget(event); err != nil {
		s.logger.Warn("feed update dropped", zap.Error(err))
	}
}

func (s *Service) persist() {
	if !s.cfg.Persist || s.cfg.Dataset == "" {
		return
	}
	if err := dataset.Save(s.cfg.Dataset, s.data); err != nil {
		s.logger.Error("failed to save dataset", zap.Error(err))
	}
}

// wait sleeps for the configured latency and reports false on shutdown.
func (s *Service) wait() bool {
	if s.cfg.Latency <= 0 {
		return s.ctx.Err() == nil
	}
	select {
	case <-s.ctx.Done():
		return false
	case <-time.After(s.cfg.Latency):
		return true
	}
}
