package dispatcher

import (
	"go.uber.org/zap"

	"github.com/Rorical/RoriSelect/internal/core"
	"github.com/Rorical/RoriSelect/internal/option"
)

// Arg is what an action handle receives when invoked.
type Arg struct {
	Option option.Option // Select
	Text   string        // Create
}

// Handle is an action supplied by the runtime. Invoke is fire-and-forget.
type Handle interface {
	Executable() bool
	Invoke(arg Arg)
}

// Setter writes into a linked label or id owned by the runtime.
type Setter interface {
	SetValue(value string)
}

// Handles groups the capabilities injected by the runtime. Any of them may
// be nil; a nil action behaves as not executable.
type Handles struct {
	Select Handle
	Create Handle
	Clear  Handle

	LinkedLabel Setter
	LinkedID    Setter
}

// Dispatcher executes commands against the runtime handles, one at a time.
type Dispatcher struct {
	handles  Handles
	inFlight core.Command
	logger   *zap.Logger
}

func New(handles Handles, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		handles: handles,
		logger:  logger,
	}
}

// Dispatch runs cmd and reports whether it was accepted. A command is
// dropped, not queued, while another one is in flight or when its handle
// is not executable.
func (d *Dispatcher) Dispatch(cmd core.Command) bool {
	if cmd == nil {
		return false
	}
	d.release()
	if d.inFlight != nil {
		d.logger.Debug("command dropped, another one is in flight",
			zap.String("command", Name(cmd)),
			zap.String("in_flight", Name(d.inFlight)))
		return false
	}

	h := d.handleFor(cmd)
	if !d.executable(cmd) {
		d.logger.Debug("command ignored, action not executable", zap.String("command", Name(cmd)))
		return false
	}

	switch c := cmd.(type) {
	case core.Select:
		d.setLinked(c.Option.PrimaryLabel, c.Option.SourceKey)
		h.Invoke(Arg{Option: c.Option})
	case core.Create:
		// The runtime assigns the id of the new record.
		d.setLinked(c.Text, "")
		h.Invoke(Arg{Text: c.Text})
	case core.Clear:
		d.setLinked("", "")
		h.Invoke(Arg{})
	}

	d.inFlight = cmd
	d.logger.Debug("command dispatched", zap.String("command", Name(cmd)))
	return true
}

// release forgets the in-flight command once its handle is no longer
// executable, so a command the runtime can no longer confirm does not block.
func (d *Dispatcher) release() {
	if d.inFlight == nil || d.executable(d.inFlight) {
		return
	}
	d.logger.Debug("in-flight command released, action not executable",
		zap.String("command", Name(d.inFlight)))
	d.inFlight = nil
}

// Settle marks the in-flight command as confirmed.
func (d *Dispatcher) Settle() {
	d.inFlight = nil
}

// InFlight returns the command awaiting confirmation, or nil.
func (d *Dispatcher) InFlight() core.Command {
	return d.inFlight
}

func (d *Dispatcher) executable(cmd core.Command) bool {
	h := d.handleFor(cmd)
	return h != nil && h.Executable()
}

func (d *Dispatcher) handleFor(cmd core.Command) Handle {
	switch cmd.(type) {
	case core.Select:
		return d.handles.Select
	case core.Create:
		return d.handles.Create
	case core.Clear:
		return d.handles.Clear
	}
	return nil
}

func (d *Dispatcher) setLinked(label, id string) {
	if d.handles.LinkedLabel != nil {
		d.handles.LinkedLabel.SetValue(label)
	}
	if d.handles.LinkedID != nil {
		d.handles.LinkedID.SetValue(id)
	}
}

// Name is a short label for cmd used in logs.
func Name(cmd core.Command) string {
	switch cmd.(type) {
	case core.Select:
		return "select"
	case core.Create:
		return "create"
	case core.Clear:
		return "clear"
	case nil:
		return "none"
	}
	return "unknown"
}
