// Package ledger records sample changes published on the event bus into the
// contribution ledger.
package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"spellslinger-go/core/event"
	"spellslinger-go/core/eventbus"
	domainledger "spellslinger-go/domain/ledger"
)

// Recorder subscribes to sample events and appends ledger entries.
//
// The bus handler only enqueues; a worker goroutine performs the appends, so
// a slow or unreachable ledger never delays other subscribers. When the queue
// is full, entries are dropped with a warning. Ledger failures are logged and
// never reach the capture session.
type Recorder struct {
	repo    domainledger.Repository
	runID   string
	timeout time.Duration
	now     func() time.Time
	logger  *slog.Logger

	queue    chan *domainledger.Entry
	eventBus eventbus.EventBus
	subID    string

	stop     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// RecorderConfig holds configuration for the Recorder.
type RecorderConfig struct {
	Repository domainledger.Repository
	RunID      string
	Timeout    time.Duration // per append, defaults to 5s
	QueueSize  int           // pending entries, defaults to 256
	Logger     *slog.Logger
}

// NewRecorder creates a recorder. Call Start to begin recording.
func NewRecorder(cfg *RecorderConfig) *Recorder {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Repository == nil {
		cfg.Repository = domainledger.NopRepository{}
	}

	return &Recorder{
		repo:    cfg.Repository,
		runID:   cfg.RunID,
		timeout: cfg.Timeout,
		now:     time.Now,
		logger:  cfg.Logger.With("component", "ledger"),
		queue:   make(chan *domainledger.Entry, cfg.QueueSize),
		stop:    make(chan struct{}),
	}
}

// Start subscribes the recorder to bus and starts the append worker.
func (r *Recorder) Start(bus eventbus.EventBus) {
	r.wg.Add(1)
	go r.run()

	r.eventBus = bus
	r.subID = bus.Subscribe(r.handleEvent)
}

// Stop unsubscribes from the event bus and waits for the worker to append
// the entries already queued.
func (r *Recorder) Stop() {
	r.stopOnce.Do(func() {
		if r.eventBus != nil && r.subID != "" {
			r.eventBus.Unsubscribe(r.subID)
		}
		close(r.stop)
		r.wg.Wait()
	})
}

func (r *Recorder) handleEvent(e event.Event) {
	switch e := e.(type) {
	case *event.SampleSaved:
		r.enqueue(e.Label(), e.Index, domainledger.ActionSaved)
	case *event.SampleRemoved:
		r.enqueue(e.Label(), e.Index, domainledger.ActionRemoved)
	}
}

func (r *Recorder) enqueue(label string, index int, action domainledger.Action) {
	entry := &domainledger.Entry{
		RunID:  r.runID,
		Label:  label,
		Index:  index,
		Action: action,
		At:     r.now(),
	}

	select {
	case r.queue <- entry:
	default:
		r.logger.Warn("Contribution dropped, ledger queue full",
			"label", label, "index", index, "action", action)
	}
}

func (r *Recorder) run() {
	defer r.wg.Done()

	for {
		select {
		case <-r.stop:
			r.drain()
			return
		case entry := <-r.queue:
			r.append(entry)
		}
	}
}

func (r *Recorder) drain() {
	for {
		select {
		case entry := <-r.queue:
			r.append(entry)
		default:
			return
		}
	}
}

func (r *Recorder) append(entry *domainledger.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.repo.Append(ctx, entry); err != nil {
		r.logger.Warn("Failed to record contribution",
			"label", entry.Label, "index", entry.Index, "action", entry.Action, "error", err)
		return
	}
	r.logger.Debug("Contribution recorded", "label", entry.Label, "index", entry.Index, "action", entry.Action)
}
