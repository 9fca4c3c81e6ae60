// Package presentation provides the UI layer with event bridging to the application layer.
package presentation

import (
	"context"
	"image"
	"log/slog"
	"sync"

	"spellslinger-go/application/capture"
	"spellslinger-go/core/command"
	"spellslinger-go/core/event"
	"spellslinger-go/core/eventbus"
	"spellslinger-go/core/state"
	"spellslinger-go/domain/label"
)

// UIEventBridge bridges UI input to the capture session and routes session
// events back to the UI.
//
// Command methods must be called from the fyne main goroutine. Callbacks run
// on the event bus goroutine; UI updates inside them must go through fyne.Do.
type UIEventBridge struct {
	session  *capture.Session
	labels   *label.Registry
	eventBus eventbus.EventBus
	logger   *slog.Logger

	// UI callbacks - set by UI components
	callbacks   *UICallbacks
	callbacksMu sync.RWMutex

	// Subscription management
	subscriptionID string
}

// UICallbacks contains callbacks for UI updates.
type UICallbacks struct {
	OnModeChanged    func(oldMode, newMode state.Mode)
	OnLabelChanged   func(name string, reference image.Image)
	OnSampleSaved    func(name string, index int, path string)
	OnSampleRemoved  func(name string, index int)
	OnSaveFailed     func(name string, err error)
	OnRuneIdentified func(name string, confidence float64)
	OnCanvasCleared  func()
}

// BridgeConfig holds configuration for UIEventBridge.
type BridgeConfig struct {
	Session  *capture.Session
	Labels   *label.Registry
	EventBus eventbus.EventBus
	Logger   *slog.Logger
}

// NewUIEventBridge creates a new UI event bridge.
func NewUIEventBridge(cfg *BridgeConfig) *UIEventBridge {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	b := &UIEventBridge{
		session:   cfg.Session,
		labels:    cfg.Labels,
		eventBus:  cfg.EventBus,
		logger:    cfg.Logger,
		callbacks: &UICallbacks{},
	}

	if b.eventBus != nil {
		b.subscriptionID = b.eventBus.Subscribe(b.handleEvent)
	}

	return b
}

// SetCallbacks sets the UI callbacks.
func (b *UIEventBridge) SetCallbacks(callbacks *UICallbacks) {
	b.callbacksMu.Lock()
	defer b.callbacksMu.Unlock()
	b.callbacks = callbacks
}

// Close unsubscribes from the event bus.
func (b *UIEventBridge) Close() {
	if b.eventBus != nil && b.subscriptionID != "" {
		b.eventBus.Unsubscribe(b.subscriptionID)
		b.subscriptionID = ""
	}
}

// Command dispatching methods

func (b *UIEventBridge) dispatch(cmd command.Command) error {
	return b.session.Dispatch(context.Background(), cmd)
}

// ChooseMode answers the mode and selection policy prompts.
func (b *UIEventBridge) ChooseMode(mode state.Mode) error {
	return b.dispatch(command.NewChooseMode(mode))
}

// SelectLabel validates and activates a manually entered label.
func (b *UIEventBridge) SelectLabel(text string) error {
	return b.dispatch(command.NewSelectLabel(text))
}

// PointerDown starts a stroke at canvas coordinates.
func (b *UIEventBridge) PointerDown(x, y float32) error {
	return b.dispatch(command.NewPointerDown(x, y))
}

// PointerDrag extends the stroke.
func (b *UIEventBridge) PointerDrag(x, y float32) error {
	return b.dispatch(command.NewPointerDrag(x, y))
}

// PointerUp completes the drawing.
func (b *UIEventBridge) PointerUp() error {
	return b.dispatch(&command.PointerUp{})
}

// ClearCanvas discards the current drawing.
func (b *UIEventBridge) ClearCanvas() error {
	return b.dispatch(&command.ClearCanvas{})
}

// Undo reverses the most recent save.
func (b *UIEventBridge) Undo() error {
	return b.dispatch(&command.Undo{})
}

// Query methods

// Mode returns the session mode.
func (b *UIEventBridge) Mode() state.Mode {
	return b.session.Mode()
}

// CurrentLabel returns the active label name, or "" if none.
func (b *UIEventBridge) CurrentLabel() string {
	l, ok := b.session.CurrentLabel()
	if !ok {
		return ""
	}
	return l.Name
}

// CanUndo reports whether the run has a save left to undo.
func (b *UIEventBridge) CanUndo() bool {
	return b.session.HistoryLen() > 0
}

// LabelNames returns the label names in enumeration order.
func (b *UIEventBridge) LabelNames() []string {
	return b.labels.Names()
}

// CanvasImage returns the live drawing buffer.
func (b *UIEventBridge) CanvasImage() image.Image {
	return b.session.Canvas()
}

// Counts returns the stored sample count per label.
func (b *UIEventBridge) Counts() (map[string]int, error) {
	return b.session.Counts()
}

// Event handling

func (b *UIEventBridge) handleEvent(e event.Event) {
	b.callbacksMu.RLock()
	callbacks := b.callbacks
	b.callbacksMu.RUnlock()

	if callbacks == nil {
		return
	}

	switch evt := e.(type) {
	case *event.ModeChanged:
		if callbacks.OnModeChanged != nil {
			callbacks.OnModeChanged(evt.OldMode, evt.NewMode)
		}

	case *event.LabelChanged:
		if callbacks.OnLabelChanged != nil {
			callbacks.OnLabelChanged(evt.Label(), evt.Reference)
		}

	case *event.SampleSaved:
		if callbacks.OnSampleSaved != nil {
			callbacks.OnSampleSaved(evt.Label(), evt.Index, evt.Path)
		}

	case *event.SampleRemoved:
		if callbacks.OnSampleRemoved != nil {
			callbacks.OnSampleRemoved(evt.Label(), evt.Index)
		}

	case *event.SaveFailed:
		if callbacks.OnSaveFailed != nil {
			callbacks.OnSaveFailed(evt.Label(), evt.Error)
		}

	case *event.RuneIdentified:
		if callbacks.OnRuneIdentified != nil {
			callbacks.OnRuneIdentified(evt.Label(), evt.Confidence)
		}

	case *event.CanvasCleared:
		if callbacks.OnCanvasCleared != nil {
			callbacks.OnCanvasCleared()
		}
	}
}
