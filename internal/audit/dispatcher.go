package audit

import (
	"go.uber.org/zap"
)

// Event is one audit record: who did what to which entity.
type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher decouples the request path from audit writes: events go through
// a buffered channel to a single worker. When the buffer is full the event is
// dropped; auditing must never slow down or break an operation.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if d.logger == nil {
			// No database configured: the structured log is the audit trail.
			d.log.Info("audit",
				zap.String("action", ev.Action),
				zap.String("entity", ev.Entity),
				zap.String("entity_id", ev.EntityID),
				zap.String("user_id", ev.UserID),
			)
			continue
		}

		if err := d.logger.Log(ev); err != nil {
			d.log.Error("audit write failed", zap.Error(err), zap.String("action", ev.Action))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
