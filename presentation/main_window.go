package presentation

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"spellslinger-go/application/capture"
	"spellslinger-go/core/state"
)

const (
	textIdentify    = "Draw a rune to cast a spell"
	textNoReference = "No reference image found"
)

// MainWindow is the main application window: the drawing canvas on the
// left, the rune prompt, reference preview and dataset counts on the right.
type MainWindow struct {
	window   fyne.Window
	bridge   *UIEventBridge
	prompter *Prompter
	logger   *slog.Logger

	// UI components - Canvas
	drawing *DrawingCanvas

	// UI components - Side panel
	promptLabel   *widget.Label
	infoLabel     *widget.Label
	reference     *canvas.Image
	referenceText *widget.Label
	countsLabel   *widget.Label

	// UI components - Toolbar
	undoBtn     *widget.Button
	clearBtn    *widget.Button
	changeBtn   *widget.Button
	randomCheck *widget.Check

	previewSize int

	// Cleanup
	cleanupOnce sync.Once
}

// MainWindowConfig holds configuration for MainWindow.
type MainWindowConfig struct {
	App         fyne.App
	Bridge      *UIEventBridge
	Logger      *slog.Logger
	CanvasSize  int
	PreviewSize int
}

// NewMainWindow creates a new main window.
func NewMainWindow(cfg *MainWindowConfig) *MainWindow {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.PreviewSize <= 0 {
		cfg.PreviewSize = 140
	}

	w := &MainWindow{
		window:      cfg.App.NewWindow("Spellslinger - Rune System"),
		bridge:      cfg.Bridge,
		logger:      cfg.Logger,
		previewSize: cfg.PreviewSize,
	}
	w.prompter = NewPrompter(w.window, w.bridge, w.logger)

	w.init(cfg.CanvasSize)
	w.setupEventCallbacks()
	w.updateControls(w.bridge.Mode())
	w.refreshCounts()

	w.window.SetOnClosed(func() {
		w.Cleanup()
		cfg.App.Quit()
	})

	return w
}

func (w *MainWindow) init(canvasSize int) {
	w.drawing = NewDrawingCanvas(w.bridge.CanvasImage(), canvasSize)
	w.drawing.SetOnPointer(w.onPointerDown, w.onPointerDrag, w.onPointerUp)

	w.promptLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	w.promptLabel.Wrapping = fyne.TextWrapWord
	w.infoLabel = widget.NewLabel("")
	w.infoLabel.Wrapping = fyne.TextWrapWord

	previewSize := fyne.NewSize(float32(w.previewSize), float32(w.previewSize))
	w.reference = canvas.NewImageFromImage(nil)
	w.reference.FillMode = canvas.ImageFillContain
	w.reference.SetMinSize(previewSize)
	w.reference.Hide()
	w.referenceText = widget.NewLabelWithStyle(textNoReference, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	w.referenceText.Hide()

	w.countsLabel = widget.NewLabel("")

	side := container.NewVBox(
		w.promptLabel,
		container.NewCenter(container.NewStack(w.reference, w.referenceText)),
		w.infoLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Samples", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		w.countsLabel,
	)

	toolbar := w.createToolbar()
	split := container.NewHSplit(container.NewCenter(w.drawing), container.NewVScroll(side))
	split.SetOffset(0.55)

	w.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, split))
	w.window.Resize(fyne.NewSize(float32(canvasSize)*2+40, float32(canvasSize)+120))
}

func (w *MainWindow) createToolbar() fyne.CanvasObject {
	w.undoBtn = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), w.handleUndo)
	w.clearBtn = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), w.handleClear)
	w.changeBtn = widget.NewButtonWithIcon("Change Rune", theme.ViewRefreshIcon(), func() {
		w.prompter.AskLabel(w.bridge.CurrentLabel() == "")
	})
	w.randomCheck = widget.NewCheck("Random runes", w.handleRandomToggled)

	return container.NewHBox(
		w.undoBtn,
		w.clearBtn,
		w.changeBtn,
		layout.NewSpacer(),
		w.randomCheck,
	)
}

func (w *MainWindow) setupEventCallbacks() {
	if w.bridge == nil {
		return
	}

	w.bridge.SetCallbacks(&UICallbacks{
		OnModeChanged: func(oldMode, newMode state.Mode) {
			w.logger.Debug("Mode changed", "from", oldMode, "to", newMode)
			// UI update must run on main thread
			fyne.Do(func() {
				w.onModeChanged(newMode)
			})
		},
		OnLabelChanged: func(name string, reference image.Image) {
			fyne.Do(func() {
				w.onLabelChanged(name, reference)
			})
		},
		OnSampleSaved: func(name string, index int, path string) {
			fyne.Do(func() {
				w.onSampleSaved(name, index)
			})
		},
		OnSampleRemoved: func(name string, index int) {
			fyne.Do(func() {
				w.onSampleRemoved(name, index)
			})
		},
		OnSaveFailed: func(name string, err error) {
			w.logger.Error("Save failed", "label", name, "error", err)
			fyne.Do(func() {
				w.infoLabel.SetText(fmt.Sprintf("Could not save %s rune", name))
			})
		},
		OnRuneIdentified: func(name string, confidence float64) {
			fyne.Do(func() {
				w.promptLabel.SetText("Cast: " + name)
				w.infoLabel.SetText(fmt.Sprintf("Confidence %.0f%%", confidence*100))
			})
		},
		OnCanvasCleared: func() {
			fyne.Do(w.drawing.Redraw)
		},
	})
}

// Event handlers

func (w *MainWindow) onModeChanged(mode state.Mode) {
	w.updateControls(mode)
	if mode == state.ModeIdentify {
		w.promptLabel.SetText(textIdentify)
	}
}

func (w *MainWindow) onLabelChanged(name string, reference image.Image) {
	w.promptLabel.SetText("Draw this rune: " + name)
	w.setReference(reference)
}

func (w *MainWindow) onSampleSaved(name string, index int) {
	w.infoLabel.SetText(fmt.Sprintf("Saved %s rune as %d.png", name, index))
	w.refreshCounts()
	w.updateControls(w.bridge.Mode())
}

func (w *MainWindow) onSampleRemoved(name string, index int) {
	w.infoLabel.SetText(fmt.Sprintf("Removed %s rune %d.png, draw it again", name, index))
	w.refreshCounts()
	w.updateControls(w.bridge.Mode())
}

func (w *MainWindow) setReference(img image.Image) {
	if img == nil {
		w.reference.Image = nil
		w.reference.Hide()
		w.referenceText.Show()
		return
	}

	w.reference.Image = scalePreview(img, w.previewSize)
	w.referenceText.Hide()
	w.reference.Show()
	w.reference.Refresh()
}

func (w *MainWindow) updateControls(mode state.Mode) {
	setEnabled(w.undoBtn, mode.IsDataset() && w.bridge.CanUndo())
	setEnabled(w.clearBtn, mode != state.ModeUnselected)
	setEnabled(w.changeBtn, mode == state.ModeDatasetManual)

	w.randomCheck.Checked = mode.IsRandom()
	if mode.IsDataset() {
		w.randomCheck.Enable()
	} else {
		w.randomCheck.Disable()
	}
	w.randomCheck.Refresh()
}

func (w *MainWindow) refreshCounts() {
	counts, err := w.bridge.Counts()
	if err != nil {
		w.logger.Warn("Failed to count samples", "error", err)
		return
	}

	lines := make([]string, 0, len(counts))
	for _, name := range w.bridge.LabelNames() {
		lines = append(lines, fmt.Sprintf("%s: %d", name, counts[name]))
	}
	w.countsLabel.SetText(strings.Join(lines, "\n"))
}

// Input handlers

func (w *MainWindow) onPointerDown(x, y float32) {
	if err := w.bridge.PointerDown(x, y); err != nil {
		w.logger.Debug("Pointer down ignored", "error", err)
	}
}

func (w *MainWindow) onPointerDrag(x, y float32) {
	if err := w.bridge.PointerDrag(x, y); err != nil {
		w.logger.Debug("Pointer drag ignored", "error", err)
	}
}

func (w *MainWindow) onPointerUp() {
	err := w.bridge.PointerUp()
	w.drawing.Redraw()
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, capture.ErrModeNotSelected):
		w.logger.Debug("Drawing before mode selection", "error", err)
	case errors.Is(err, capture.ErrNoLabel):
		d := dialog.NewError(err, w.window)
		d.SetOnClosed(func() { w.prompter.AskLabel(true) })
		d.Show()
	default:
		w.logger.Error("Drawing not processed", "error", err)
		dialog.ShowError(err, w.window)
	}
}

func (w *MainWindow) handleUndo() {
	if err := w.bridge.Undo(); err != nil {
		w.logger.Error("Undo failed", "error", err)
		dialog.ShowError(err, w.window)
	}
	w.drawing.Redraw()
	w.updateControls(w.bridge.Mode())
}

func (w *MainWindow) handleClear() {
	if err := w.bridge.ClearCanvas(); err != nil {
		w.logger.Error("Clear failed", "error", err)
	}
	w.drawing.Redraw()
}

func (w *MainWindow) handleRandomToggled(random bool) {
	mode := state.ModeDatasetManual
	if random {
		mode = state.ModeDatasetRandom
	}
	if w.bridge.Mode() == mode {
		return
	}

	if err := w.bridge.ChooseMode(mode); err != nil {
		w.logger.Warn("Selection policy not changed", "error", err)
		dialog.ShowError(err, w.window)
		w.updateControls(w.bridge.Mode())
		return
	}
	w.updateControls(mode)

	if mode == state.ModeDatasetManual && w.bridge.CurrentLabel() == "" {
		w.prompter.AskLabel(true)
	}
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// Public methods

// Show displays the main window and starts the mode prompts.
func (w *MainWindow) Show() {
	w.window.Show()
	w.prompter.Start()
}

// Cleanup releases resources.
func (w *MainWindow) Cleanup() {
	w.cleanupOnce.Do(func() {
		w.logger.Info("Starting cleanup...")

		if w.drawing != nil {
			w.drawing.ClearCallbacks()
		}
		if w.bridge != nil {
			w.bridge.Close()
		}

		w.logger.Info("Cleanup completed")
	})
}
