package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/signin"
)

var (
	colorPage     = signin.ColorWhite
	colorArt      = signin.Color{R: 0.18, G: 0.36, B: 0.62, A: 1}
	colorButton   = signin.Color{R: 0.92, G: 0.92, B: 0.92, A: 1}
	colorFacebook = signin.Color{R: 0, G: 0x78 / 255.0, B: 0xD7 / 255.0, A: 1}
	colorInput    = signin.Color{R: 0.85, G: 0.85, B: 0.85, A: 1}
	colorText     = signin.Color{R: 0, G: 0, B: 0, A: 1}
	colorTextAlt  = signin.ColorWhite
	colorHint     = signin.Color{R: 0x32 / 255.0, G: 0x32 / 255.0, B: 0x32 / 255.0, A: 1}
)

// draw renders the current frame into the screen and shows it.
func (h *host) draw() {
	f := h.scene.Frame()
	vp := h.scene.Layout().Viewport
	cw, ch := h.cellSize(vp)

	h.screen.Clear()
	h.fill(signin.Rect{Width: vp.Width, Height: vp.Height}, colorPage, 1, cw, ch)
	h.drawBackground(f, cw, ch)

	if f.FormOnTop() {
		h.drawButtons(f, cw, ch)
		h.drawForm(f, cw, ch)
	} else {
		h.drawForm(f, cw, ch)
		h.drawButtons(f, cw, ch)
	}
	h.screen.Show()
}

// drawBackground shades every cell whose centre falls inside the art's clip
// circle.
func (h *host) drawBackground(f signin.Frame, cw, ch float64) {
	bg := f.Background
	cx, cy, r := bg.X+bg.Width/2, bg.Y, bg.Height
	style := tcell.StyleDefault.Background(blend(colorArt, 1))
	for row := 0; row < h.rows; row++ {
		for col := 0; col < h.cols; col++ {
			x := (float64(col) + 0.5) * cw
			y := (float64(row) + 0.5) * ch
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				h.screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

func (h *host) drawButtons(f signin.Frame, cw, ch float64) {
	a := f.ButtonOpacity
	if a <= 0 {
		return
	}
	h.fill(f.SignInButton, colorButton, a, cw, ch)
	h.label(f.SignInButton, "Sign In", colorText, colorButton, a, cw, ch)
	h.fill(f.FacebookButton, colorFacebook, a, cw, ch)
	h.label(f.FacebookButton, "Sign In With Facebook", colorTextAlt, colorFacebook, a, cw, ch)
}

func (h *host) drawForm(f signin.Frame, cw, ch float64) {
	a := f.FormOpacity
	if a <= 0 {
		return
	}
	h.fill(f.Form, colorPage, a, cw, ch)
	h.fill(f.EmailInput, colorInput, a, cw, ch)
	h.label(f.EmailInput, "Email", colorHint, colorInput, a, cw, ch)
	h.fill(f.PasswordInput, colorInput, a, cw, ch)
	h.label(f.PasswordInput, "Password", colorHint, colorInput, a, cw, ch)
	h.fill(f.FormSignInButton, colorButton, a, cw, ch)
	h.label(f.FormSignInButton, "Sign In", colorText, colorButton, a, cw, ch)

	h.fill(f.CloseButton, colorButton, a, cw, ch)
	h.label(f.CloseButton, string(closeGlyph(f.CloseRotationDeg)), colorText, colorButton, a, cw, ch)
}

// closeGlyph approximates the rotated X: near multiples of 90° it reads as
// an X, near odd multiples of 45° as a plus.
func closeGlyph(deg float64) rune {
	a := math.Mod(deg, 90)
	if a < 0 {
		a += 90
	}
	if a >= 22.5 && a < 67.5 {
		return '+'
	}
	return 'X'
}

// cellRect returns the cells covered by r, clipped to the screen.
func (h *host) cellRect(r signin.Rect, cw, ch float64) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(r.X / cw))
	r0 = int(math.Floor(r.Y / ch))
	c1 = int(math.Ceil((r.X+r.Width)/cw)) - 1
	r1 = int(math.Ceil((r.Y+r.Height)/ch)) - 1
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, h.cols-1), min(r1, h.rows-1)
	return c0, r0, c1, r1
}

func (h *host) fill(r signin.Rect, c signin.Color, alpha, cw, ch float64) {
	c0, r0, c1, r1 := h.cellRect(r, cw, ch)
	style := tcell.StyleDefault.Background(blend(c, alpha))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			h.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// label writes s centred in r.
func (h *host) label(r signin.Rect, s string, fg, bg signin.Color, alpha, cw, ch float64) {
	c0, r0, c1, r1 := h.cellRect(r, cw, ch)
	if c1 < c0 || r1 < r0 {
		return
	}
	runes := []rune(s)
	width := c1 - c0 + 1
	if len(runes) > width {
		runes = runes[:width]
	}
	row := (r0 + r1) / 2
	col := c0 + (width-len(runes))/2
	style := tcell.StyleDefault.Foreground(blend(fg, alpha)).Background(blend(bg, alpha))
	for i, ru := range runes {
		h.screen.SetContent(col+i, row, ru, nil, style)
	}
}

// blend mixes c over the white page at the given opacity.
func blend(c signin.Color, alpha float64) tcell.Color {
	a := math.Max(0, math.Min(1, alpha*c.A))
	mix := func(v float64) int32 {
		return int32(math.Round((v*a + colorPage.R*(1-a)) * 255))
	}
	return tcell.NewRGBColor(mix(c.R), mix(c.G), mix(c.B))
}
