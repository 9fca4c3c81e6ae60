package presentation

import (
	"errors"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"spellslinger-go/core/state"
)

// Prompter runs the startup dialogs: mode choice, selection policy choice
// and manual label entry. Invalid answers show an error and ask again.
type Prompter struct {
	window fyne.Window
	bridge *UIEventBridge
	logger *slog.Logger
}

// NewPrompter creates a prompter for the window.
func NewPrompter(window fyne.Window, bridge *UIEventBridge, logger *slog.Logger) *Prompter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Prompter{
		window: window,
		bridge: bridge,
		logger: logger,
	}
}

// Start asks for the operating mode.
func (p *Prompter) Start() {
	p.askMode()
}

func (p *Prompter) askMode() {
	content := widget.NewLabel("Identify a drawn rune, or contribute drawings to the dataset?")
	dialog.NewCustomConfirm("Mode Selection", "Identify Rune", "Contribute to Dataset", content,
		func(identify bool) {
			if identify {
				if err := p.chooseMode(state.ModeIdentify); err != nil {
					p.showErrorThen(err, p.askMode)
				}
				return
			}
			p.askPolicy()
		}, p.window).Show()
}

func (p *Prompter) askPolicy() {
	content := widget.NewLabel("Choose the rune to draw yourself, or get a random rune after every save?")
	dialog.NewCustomConfirm("Dataset Mode", "Choose Rune", "Random Rune", content,
		func(manual bool) {
			mode := state.ModeDatasetRandom
			if manual {
				mode = state.ModeDatasetManual
			}
			if err := p.chooseMode(mode); err != nil {
				p.showErrorThen(err, p.askPolicy)
				return
			}
			if manual {
				p.AskLabel(true)
			}
		}, p.window).Show()
}

// AskLabel prompts for a rune name. When required is true, cancelling asks
// again; otherwise the current label is kept.
func (p *Prompter) AskLabel(required bool) {
	names := p.bridge.LabelNames()
	entry := widget.NewSelectEntry(names)
	entry.SetPlaceHolder("Rune name")

	item := widget.NewFormItem("Rune", entry)
	item.HintText = "Available runes: " + strings.Join(names, ", ")

	dialog.NewForm("Choose Rune", "OK", "Cancel", []*widget.FormItem{item},
		func(ok bool) {
			if !ok {
				if required {
					p.AskLabel(required)
				}
				return
			}
			if err := p.submitLabel(entry.Text); err != nil {
				p.showErrorThen(err, func() { p.AskLabel(required) })
			}
		}, p.window).Show()
}

func (p *Prompter) chooseMode(mode state.Mode) error {
	if err := p.bridge.ChooseMode(mode); err != nil {
		p.logger.Warn("Mode refused", "mode", mode, "error", err)
		return err
	}
	return nil
}

func (p *Prompter) submitLabel(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("enter a rune name")
	}
	if err := p.bridge.SelectLabel(text); err != nil {
		p.logger.Debug("Invalid rune entered", "text", text, "error", err)
		return err
	}
	return nil
}

func (p *Prompter) showErrorThen(err error, next func()) {
	d := dialog.NewError(err, p.window)
	d.SetOnClosed(next)
	d.Show()
}
