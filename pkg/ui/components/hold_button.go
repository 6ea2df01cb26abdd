package components

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const holdTickInterval = 50 * time.Millisecond

// HoldButton is a button that fires only after being held for HoldDuration
type HoldButton struct {
	widget.BaseWidget
	Text         string
	HoldDuration time.Duration
	OnConfirmed  func()

	mu        sync.Mutex
	holding   bool
	hovered   bool
	disabled  bool
	progress  float64
	holdStart time.Time
	ticker    *time.Ticker
	stopTick  chan struct{}
	now       func() time.Time
}

// NewHoldButton creates a new HoldButton
func NewHoldButton(text string, hold time.Duration, onConfirmed func()) *HoldButton {
	b := &HoldButton{
		Text:         text,
		HoldDuration: hold,
		OnConfirmed:  onConfirmed,
		now:          time.Now,
	}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *HoldButton) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(b.Text, theme.Color(theme.ColorNameForeground))
	text.Alignment = fyne.TextAlignCenter

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	progressBar := canvas.NewRectangle(theme.Color(theme.ColorNameError))

	return &holdButtonRenderer{
		button:      b,
		text:        text,
		bg:          bg,
		progressBar: progressBar,
	}
}

// Progress returns how far the current hold has advanced, from 0 to 1
func (b *HoldButton) Progress() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.progress
}

// Disable stops the button from reacting to holds
func (b *HoldButton) Disable() {
	b.mu.Lock()
	b.disabled = true
	b.mu.Unlock()
	b.stopHold()
}

// Enable re-enables the button
func (b *HoldButton) Enable() {
	b.mu.Lock()
	b.disabled = false
	b.mu.Unlock()
	b.Refresh()
}

// Disabled reports whether the button ignores holds
func (b *HoldButton) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

// Tapped implements fyne.Tappable
func (b *HoldButton) Tapped(*fyne.PointEvent) {}

// MouseIn implements desktop.Hoverable
func (b *HoldButton) MouseIn(*desktop.MouseEvent) {
	b.mu.Lock()
	b.hovered = true
	b.mu.Unlock()
	b.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (b *HoldButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (b *HoldButton) MouseOut() {
	b.mu.Lock()
	b.hovered = false
	b.mu.Unlock()
	// Leaving the button cancels the hold
	b.stopHold()
}

// MouseDown implements desktop.Mouseable
func (b *HoldButton) MouseDown(*desktop.MouseEvent) {
	b.startHold()
}

// MouseUp implements desktop.Mouseable
func (b *HoldButton) MouseUp(*desktop.MouseEvent) {
	b.stopHold()
}

func (b *HoldButton) startHold() {
	b.mu.Lock()
	if b.holding || b.disabled {
		b.mu.Unlock()
		return
	}
	b.holding = true
	b.progress = 0
	b.holdStart = b.now()
	b.ticker = time.NewTicker(holdTickInterval)
	b.stopTick = make(chan struct{})
	ticker, stop := b.ticker, b.stopTick
	b.mu.Unlock()

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(b.tick)
			}
		}
	}()
	b.Refresh()
}

func (b *HoldButton) stopHold() {
	b.mu.Lock()
	if b.ticker != nil {
		b.ticker.Stop()
		close(b.stopTick)
		b.ticker = nil
	}
	b.holding = false
	b.progress = 0
	b.mu.Unlock()
	b.Refresh()
}

// tick advances the progress bar and fires OnConfirmed once the hold completes
func (b *HoldButton) tick() {
	b.mu.Lock()
	if !b.holding {
		b.mu.Unlock()
		return
	}
	if b.HoldDuration <= 0 {
		b.progress = 1
	} else {
		b.progress = float64(b.now().Sub(b.holdStart)) / float64(b.HoldDuration)
	}
	done := b.progress >= 1
	b.mu.Unlock()

	if !done {
		b.Refresh()
		return
	}

	b.stopHold()
	if b.OnConfirmed != nil {
		b.OnConfirmed()
	}
}

type holdButtonRenderer struct {
	button      *HoldButton
	text        *canvas.Text
	bg          *canvas.Rectangle
	progressBar *canvas.Rectangle
}

func (r *holdButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.text.Resize(size)

	// Progress bar fills from left to right
	progressWidth := size.Width * float32(r.button.Progress())
	r.progressBar.Resize(fyne.NewSize(progressWidth, size.Height))
	r.progressBar.Move(fyne.NewPos(0, 0))
}

func (r *holdButtonRenderer) MinSize() fyne.Size {
	textSize := r.text.MinSize()
	return fyne.NewSize(textSize.Width+theme.Padding()*4, textSize.Height+theme.Padding()*2)
}

func (r *holdButtonRenderer) Refresh() {
	r.button.mu.Lock()
	hovered, disabled := r.button.hovered, r.button.disabled
	r.button.mu.Unlock()

	r.text.Text = r.button.Text
	if disabled {
		r.text.Color = theme.Color(theme.ColorNameDisabled)
	} else {
		r.text.Color = theme.Color(theme.ColorNameForeground)
	}

	if hovered && !disabled {
		r.bg.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		r.bg.FillColor = theme.Color(theme.ColorNameButton)
	}

	size := r.bg.Size()
	progressWidth := size.Width * float32(r.button.Progress())
	r.progressBar.Resize(fyne.NewSize(progressWidth, size.Height))

	r.bg.Refresh()
	r.progressBar.Refresh()
	r.text.Refresh()
}

func (r *holdButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.progressBar, r.text}
}

func (r *holdButtonRenderer) Destroy() {}

func (r *holdButtonRenderer) BackgroundColor() color.Color {
	return theme.Color(theme.ColorNameButton)
}
