// Package capture implements the rune capture session: mode selection,
// label selection, drawing, saving and undo.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"

	"spellslinger-go/core/command"
	"spellslinger-go/core/event"
	"spellslinger-go/core/eventbus"
	"spellslinger-go/core/state"
	"spellslinger-go/domain/label"
	"spellslinger-go/domain/sample"
	"spellslinger-go/domain/stroke"
	"spellslinger-go/infrastructure/classifier"
)

var (
	// ErrNoLabel is returned when a drawing completes in a dataset mode
	// before any label was selected.
	ErrNoLabel = errors.New("no rune selected")

	// ErrNotManual is returned when a label is selected outside manual mode.
	ErrNotManual = errors.New("labels can only be chosen in manual mode")

	// ErrModeNotSelected is returned for drawing input before a mode was chosen.
	ErrModeNotSelected = errors.New("no mode selected")
)

// Session holds the state of one capture run.
//
// A Session is driven by a single goroutine (the UI event loop) and is not
// safe for concurrent use. Subscribers receive its events asynchronously
// through the event bus and must not call back into it from there.
type Session struct {
	// Identity
	runID string

	// State
	mode    state.Mode
	current *label.Label
	history []label.Label

	// Components
	canvas *stroke.Canvas

	// Dependencies
	labels     *label.Registry
	samples    sample.Repository
	classifier classifier.Client
	eventBus   eventbus.EventBus
	rng        *rand.Rand
	logger     *slog.Logger
}

// Config holds configuration for creating a new Session.
type Config struct {
	RunID      string
	Labels     *label.Registry
	Samples    sample.Repository
	Classifier classifier.Client
	Stroke     *stroke.Config
	EventBus   eventbus.EventBus // optional
	Rand       *rand.Rand        // optional, seeded randomly when nil
	Logger     *slog.Logger
}

// New creates a session in ModeUnselected.
func New(cfg *Config) *Session {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Classifier == nil {
		cfg.Classifier = classifier.NewUnavailableClient(nil)
	}

	return &Session{
		runID:      cfg.RunID,
		mode:       state.ModeUnselected,
		canvas:     stroke.NewCanvas(cfg.Stroke),
		labels:     cfg.Labels,
		samples:    cfg.Samples,
		classifier: cfg.Classifier,
		eventBus:   cfg.EventBus,
		rng:        cfg.Rand,
		logger:     cfg.Logger,
	}
}

// RunID returns the identifier of this run.
func (s *Session) RunID() string {
	return s.runID
}

// Mode returns the current mode.
func (s *Session) Mode() state.Mode {
	return s.mode
}

// CurrentLabel returns the active label, if any.
func (s *Session) CurrentLabel() (label.Label, bool) {
	if s.current == nil {
		return label.Label{}, false
	}
	return *s.current, true
}

// HistoryLen returns the number of saves that can still be undone.
func (s *Session) HistoryLen() int {
	return len(s.history)
}

// Canvas returns the live drawing buffer for display.
func (s *Session) Canvas() image.Image {
	return s.canvas.Image()
}

// Counts returns the number of stored samples per label name.
func (s *Session) Counts() (map[string]int, error) {
	counts := make(map[string]int, s.labels.Count())
	for _, l := range s.labels.All() {
		n, err := s.samples.Count(l)
		if err != nil {
			return nil, err
		}
		counts[l.Name] = n
	}
	return counts, nil
}

// Dispatch processes one operator command.
func (s *Session) Dispatch(ctx context.Context, cmd command.Command) error {
	s.logger.Debug("Dispatching command", "command", cmd.CommandName(), "mode", s.mode)

	switch cmd := cmd.(type) {
	case *command.ChooseMode:
		return s.handleChooseMode(cmd)
	case *command.SelectLabel:
		return s.handleSelectLabel(cmd)
	case *command.PointerDown:
		return s.handlePointerDown(cmd)
	case *command.PointerDrag:
		return s.handlePointerDrag(cmd)
	case *command.PointerUp:
		return s.handlePointerUp(ctx)
	case *command.ClearCanvas:
		s.clearCanvas()
		return nil
	case *command.Undo:
		return s.handleUndo()
	default:
		return fmt.Errorf("unknown command: %T", cmd)
	}
}

// ========== Mode and label selection ==========

func (s *Session) handleChooseMode(cmd *command.ChooseMode) error {
	if !s.mode.CanTransitionTo(cmd.Mode) {
		reason := ""
		if s.mode.IsTerminal() {
			reason = "mode is final for this run"
		}
		return state.NewTransitionError(s.mode, cmd.Mode, reason)
	}

	if cmd.Mode == state.ModeIdentify && !s.classifier.IsAvailable() {
		return fmt.Errorf("cannot enter identify mode: %w", s.classifier.Err())
	}

	old := s.mode
	s.mode = cmd.Mode
	s.logger.Info("Mode changed", "from", old, "to", s.mode)
	s.publish(event.NewModeChanged(old, s.mode))

	if s.mode.IsRandom() {
		s.pickRandomLabel()
	}
	return nil
}

func (s *Session) handleSelectLabel(cmd *command.SelectLabel) error {
	if s.mode != state.ModeDatasetManual {
		return ErrNotManual
	}

	l, err := s.labels.Lookup(cmd.Text)
	if err != nil {
		return err
	}

	s.setLabel(l)
	return nil
}

func (s *Session) pickRandomLabel() {
	n := s.labels.Count()
	if n == 0 {
		return
	}
	s.setLabel(s.labels.At(s.rng.IntN(n)))
}

// setLabel makes l active and reloads its reference image.
func (s *Session) setLabel(l label.Label) {
	s.current = &l

	ref, err := s.samples.Reference(l)
	if err != nil {
		if !errors.Is(err, sample.ErrNoReference) {
			s.logger.Warn("Failed to load reference", "label", l.Name, "error", err)
		}
		ref = nil
	}

	s.logger.Debug("Label selected", "label", l.Name, "has_reference", ref != nil)
	s.publish(event.NewLabelChanged(l.Name, ref))
}

// ========== Drawing ==========

func (s *Session) handlePointerDown(cmd *command.PointerDown) error {
	if s.mode == state.ModeUnselected {
		return ErrModeNotSelected
	}
	s.canvas.Begin(cmd.X, cmd.Y)
	return nil
}

func (s *Session) handlePointerDrag(cmd *command.PointerDrag) error {
	if s.mode == state.ModeUnselected {
		return ErrModeNotSelected
	}
	s.canvas.Extend(cmd.X, cmd.Y)
	return nil
}

// handlePointerUp hands the finished drawing to the active mode and clears
// the canvas. A drawing without any segment is discarded.
func (s *Session) handlePointerUp(ctx context.Context) error {
	s.canvas.End()

	if s.mode == state.ModeUnselected {
		s.clearCanvas()
		return ErrModeNotSelected
	}
	if s.canvas.Empty() {
		return nil
	}

	img := s.canvas.Snapshot()
	s.clearCanvas()

	if s.mode == state.ModeIdentify {
		return s.identify(ctx, img)
	}
	return s.save(img)
}

func (s *Session) clearCanvas() {
	s.canvas.Reset()
	s.publish(&event.CanvasCleared{})
}

func (s *Session) save(img image.Image) error {
	if s.current == nil {
		return ErrNoLabel
	}
	l := *s.current

	smp, err := s.samples.Save(l, img)
	if err != nil {
		s.logger.Error("Failed to save sample", "label", l.Name, "error", err)
		s.publish(event.NewSaveFailed(l.Name, err))
		return fmt.Errorf("save %s: %w", l.Name, err)
	}

	s.history = append(s.history, l)
	s.logger.Info("Sample saved", "label", l.Name, "index", smp.Index, "path", smp.Path)
	s.publish(event.NewSampleSaved(l.Name, int(smp.Index), smp.Path))

	if smp.Index.IsReference() {
		// The first sample becomes the reference; refresh the preview.
		s.setLabel(l)
	}
	if s.mode.IsRandom() {
		s.pickRandomLabel()
	}
	return nil
}

func (s *Session) identify(ctx context.Context, img image.Image) error {
	pred, err := s.classifier.Classify(ctx, img)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	l, ok := s.labels.ByKey(pred.Key)
	if !ok {
		return fmt.Errorf("classifier returned key %d: %w", pred.Key, label.ErrUnknownLabel)
	}

	s.logger.Info("Rune identified", "label", l.Name, "confidence", pred.Confidence)
	s.publish(event.NewRuneIdentified(l.Name, pred.Confidence))
	return nil
}

// ========== Undo ==========

// handleUndo removes the most recent save of this run. It never removes a
// reference sample and is a silent no-op when nothing can be undone.
func (s *Session) handleUndo() error {
	s.clearCanvas()

	if len(s.history) == 0 {
		s.logger.Debug("Nothing to undo")
		return nil
	}
	l := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	highest, err := s.samples.HighestIndex(l)
	if err != nil {
		return fmt.Errorf("undo %s: %w", l.Name, err)
	}
	if highest <= sample.ReferenceIndex {
		s.logger.Debug("Undo keeps reference sample", "label", l.Name, "highest", highest)
		return nil
	}

	if err := s.samples.Remove(l, highest); err != nil {
		return fmt.Errorf("undo %s: %w", l.Name, err)
	}

	s.logger.Info("Sample removed", "label", l.Name, "index", highest)
	s.setLabel(l)
	s.publish(event.NewSampleRemoved(l.Name, int(highest)))
	return nil
}

func (s *Session) publish(e event.Event) {
	if s.eventBus != nil {
		s.eventBus.Publish(e)
	}
}
