package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/signin"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorPage      = signin.ColorWhite
	colorArt       = signin.Color{R: 0.18, G: 0.36, B: 0.62, A: 1}
	colorArtGlow   = signin.Color{R: 0.42, G: 0.66, B: 0.9, A: 1}
	colorButton    = signin.ColorWhite
	colorFacebook  = signin.Color{R: 0, G: 0x78 / 255.0, B: 0xD7 / 255.0, A: 1}
	colorLabel     = signin.Color{R: 0, G: 0, B: 0, A: 1}
	colorLabelAlt  = signin.ColorWhite
	colorOutline   = signin.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	colorHint      = signin.Color{R: 0x32 / 255.0, G: 0x32 / 255.0, B: 0x32 / 255.0, A: 1}
	colorShadow    = signin.Color{R: 0, G: 0, B: 0, A: 0.22}
	colorHighlight = signin.Color{R: 0, G: 0, B: 0, A: 1}
)

const (
	labelSize     = 20
	hintSize      = 16
	glyphSize     = 18
	highlightPeak = 0.15
	highlightFade = 0.3 // seconds
)

// painter draws a signin.Frame.
type painter struct {
	bold    *text.GoTextFace
	regular *text.GoTextFace
	glyph   *text.GoTextFace

	// Press feedback on the open button, faded with a tween.
	highlight      *gween.Tween
	highlightAlpha float64
}

func newPainter() (*painter, error) {
	boldSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	regSrc, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	return &painter{
		bold:    &text.GoTextFace{Source: boldSrc, Size: labelSize},
		regular: &text.GoTextFace{Source: regSrc, Size: hintSize},
		glyph:   &text.GoTextFace{Source: boldSrc, Size: glyphSize},
	}, nil
}

// onGesture starts or drops the press highlight on the open button.
func (p *painter) onGesture(ctx signin.GestureContext) {
	if ctx.Event.Trigger != signin.TriggerOpen {
		return
	}
	switch ctx.Event.Phase {
	case signin.PhaseBegan:
		p.highlight = nil
		p.highlightAlpha = highlightPeak
	case signin.PhaseEnd, signin.PhaseFailed, signin.PhaseCancelled:
		p.highlight = gween.New(float32(p.highlightAlpha), 0, highlightFade, ease.OutQuad)
	}
}

// update advances the highlight tween by dt milliseconds.
func (p *painter) update(dt float64) {
	if p.highlight == nil {
		return
	}
	v, done := p.highlight.Update(float32(dt / 1000))
	p.highlightAlpha = float64(v)
	if done {
		p.highlight = nil
		p.highlightAlpha = 0
	}
}

func (p *painter) draw(screen *ebiten.Image, f signin.Frame) {
	screen.Fill(colorPage.RGBA(1))
	p.drawBackground(screen, f)

	if f.FormOnTop() {
		p.drawButtons(screen, f)
		p.drawForm(screen, f)
	} else {
		p.drawForm(screen, f)
		p.drawButtons(screen, f)
	}
}

// drawBackground paints the art clipped by a circle of radius equal to its
// height, centred on its top edge.
func (p *painter) drawBackground(screen *ebiten.Image, f signin.Frame) {
	bg := f.Background
	cx := float32(bg.X + bg.Width/2)
	cy := float32(bg.Y)
	vector.DrawFilledCircle(screen, cx, cy, float32(bg.Height), colorArt.RGBA(1), true)
	vector.DrawFilledCircle(screen, cx, cy, float32(bg.Height*0.6), colorArtGlow.RGBA(0.5), true)
}

func (p *painter) drawButtons(screen *ebiten.Image, f signin.Frame) {
	a := f.ButtonOpacity
	if a <= 0 {
		return
	}
	fillPill(screen, f.SignInButton, colorButton.RGBA(a))
	if p.highlightAlpha > 0 {
		fillPill(screen, f.SignInButton, colorHighlight.RGBA(p.highlightAlpha*a))
	}
	p.label(screen, p.bold, "Sign In", f.SignInButton.Center(), colorLabel, a, 0)

	fillPill(screen, f.FacebookButton, colorFacebook.RGBA(a))
	p.label(screen, p.bold, "Sign In With Facebook", f.FacebookButton.Center(), colorLabelAlt, a, 0)
}

func (p *painter) drawForm(screen *ebiten.Image, f signin.Frame) {
	a := f.FormOpacity
	if a <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(f.Form.X), float32(f.Form.Y),
		float32(f.Form.Width), float32(f.Form.Height), colorPage.RGBA(a), false)

	for _, in := range []struct {
		rect signin.Rect
		hint string
	}{
		{f.EmailInput, "Email"},
		{f.PasswordInput, "Password"},
	} {
		strokePill(screen, in.rect, colorOutline.RGBA(a))
		w, _ := text.Measure(in.hint, p.regular, 0)
		at := in.rect.Center()
		at.X = in.rect.X + in.rect.Height/2 + w/2
		p.label(screen, p.regular, in.hint, at, colorHint, a, 0)
	}

	fillPill(screen, f.FormSignInButton.Offset(0, 1), colorShadow.RGBA(a))
	fillPill(screen, f.FormSignInButton, colorButton.RGBA(a))
	p.label(screen, p.bold, "Sign In", f.FormSignInButton.Center(), colorLabel, a, 0)

	c := f.CloseButton.Center()
	r := float32(f.CloseButton.Width / 2)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y+1), r, colorShadow.RGBA(a), true)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), r, colorButton.RGBA(a), true)
	p.label(screen, p.glyph, "X", c, colorLabel, a, f.CloseRotationDeg)
}

// label draws s centred on at, rotated by deg degrees about its centre.
func (p *painter) label(screen *ebiten.Image, face *text.GoTextFace, s string, at signin.Vec2, c signin.Color, alpha, deg float64) {
	w, h := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if deg != 0 {
		op.GeoM.Rotate(deg * math.Pi / 180)
	}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, face, op)
}

// fillPill fills a rectangle whose short sides are semicircles.
func fillPill(dst *ebiten.Image, r signin.Rect, c color.Color) {
	rad := r.Height / 2
	vector.DrawFilledRect(dst, float32(r.X+rad), float32(r.Y), float32(r.Width-2*rad), float32(r.Height), c, false)
	vector.DrawFilledCircle(dst, float32(r.X+rad), float32(r.Y+rad), float32(rad), c, true)
	vector.DrawFilledCircle(dst, float32(r.X+r.Width-rad), float32(r.Y+rad), float32(rad), c, true)
}

// strokePill outlines a pill with a hairline.
func strokePill(dst *ebiten.Image, r signin.Rect, c color.Color) {
	rad := float32(r.Height / 2)
	var path vector.Path
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.Width), float32(r.Y+r.Height)
	path.MoveTo(x0+rad, y0)
	path.LineTo(x1-rad, y0)
	path.Arc(x1-rad, y0+rad, rad, -math.Pi/2, math.Pi/2, vector.Clockwise)
	path.LineTo(x0+rad, y1)
	path.Arc(x0+rad, y0+rad, rad, math.Pi/2, 3*math.Pi/2, vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1})
	cr, cg, cb, ca := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img
	}
	return whiteImage
}
