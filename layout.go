package signin

// Layout metrics in pixels.
const (
	ButtonHeight      = 70.0
	ButtonMarginX     = 20.0
	ButtonMarginY     = 5.0
	InputHeight       = 50.0
	CloseButtonSize   = 40.0
	BackgroundOverlap = 50.0 // background art is this much taller than the viewport
)

// Layout is the resting geometry of the screen for one viewport. The
// animated offsets are applied by Resolve.
type Layout struct {
	Viewport Rect

	// Background art; its bottom edge is clipped by a circle of radius
	// Background.Height centred on (Viewport.Width/2, 0).
	Background Rect

	// Bottom third of the viewport holding the two buttons.
	ButtonContainer Rect
	SignInButton    Rect
	FacebookButton  Rect

	// Form panel occupying the same third, and its contents.
	Form             Rect
	CloseButton      Rect
	EmailInput       Rect
	PasswordInput    Rect
	FormSignInButton Rect
}

// NewLayout computes the resting geometry for a width×height viewport.
func NewLayout(width, height float64) Layout {
	l := Layout{Viewport: Rect{0, 0, width, height}}
	l.Background = Rect{0, 0, width, height + BackgroundOverlap}

	third := height / 3
	l.ButtonContainer = Rect{0, height - third, width, third}
	l.Form = l.ButtonContainer

	// Two stacked buttons centred vertically in the container.
	slot := ButtonHeight + 2*ButtonMarginY
	top := l.ButtonContainer.Y + (third-2*slot)/2
	l.SignInButton = Rect{ButtonMarginX, top + ButtonMarginY, width - 2*ButtonMarginX, ButtonHeight}
	l.FacebookButton = l.SignInButton.Offset(0, slot)

	// Form contents: two inputs and a button, centred; close glyph hovers
	// above the panel.
	inputSlot := InputHeight + 2*ButtonMarginY
	top = l.Form.Y + (third-2*inputSlot-slot)/2
	l.EmailInput = Rect{ButtonMarginX, top + ButtonMarginY, width - 2*ButtonMarginX, InputHeight}
	l.PasswordInput = l.EmailInput.Offset(0, inputSlot)
	l.FormSignInButton = Rect{ButtonMarginX, top + 2*inputSlot + ButtonMarginY, width - 2*ButtonMarginX, ButtonHeight}
	l.CloseButton = Rect{width/2 - CloseButtonSize/2, l.Form.Y - CloseButtonSize, CloseButtonSize, CloseButtonSize}
	return l
}

// Frame is the geometry and styling of one rendered frame.
type Frame struct {
	Background Rect

	SignInButton   Rect
	FacebookButton Rect
	ButtonOpacity  float64
	ButtonZIndex   float64

	Form             Rect
	CloseButton      Rect
	EmailInput       Rect
	PasswordInput    Rect
	FormSignInButton Rect
	FormOpacity      float64
	FormZIndex       float64
	CloseRotationDeg float64
}

// FormOnTop reports whether the form panel stacks above the buttons. Ties go
// to the buttons.
func (f Frame) FormOnTop() bool {
	return f.FormZIndex > f.ButtonZIndex
}

// Resolve applies the animated outputs to the resting layout.
func (l Layout) Resolve(o Outputs) Frame {
	return Frame{
		Background: l.Background.Offset(0, o.BackgroundOffsetY),

		SignInButton:   l.SignInButton.Offset(0, o.ButtonOffsetY),
		FacebookButton: l.FacebookButton.Offset(0, o.ButtonOffsetY),
		ButtonOpacity:  o.ButtonOpacity,
		ButtonZIndex:   o.ButtonZIndex,

		Form:             l.Form.Offset(0, o.FormOffsetY),
		CloseButton:      l.CloseButton.Offset(0, o.FormOffsetY),
		EmailInput:       l.EmailInput.Offset(0, o.FormOffsetY),
		PasswordInput:    l.PasswordInput.Offset(0, o.FormOffsetY),
		FormSignInButton: l.FormSignInButton.Offset(0, o.FormOffsetY),
		FormOpacity:      o.FormOpacity,
		FormZIndex:       o.FormZIndex,
		CloseRotationDeg: o.CloseRotationDeg,
	}
}
