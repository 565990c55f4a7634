package primejudge

import (
	"image"
	"math"
	"strconv"
	"strings"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// numericFilter restricts the editor to the characters of a signed decimal integer.
const numericFilter = "-0123456789"

// tone selects the color a result line is painted with.
type tone int

const (
	toneNormal tone = iota
	toneMuted
	toneSuccess
	toneFailure
)

type resultLine struct {
	text string
	tone tone
}

// Gui is the basic struct containing all of the information needed for the UI operation.
// It only keeps widget state; the number and its verdict live in the JudgmentState.
// The window itself is owned by the caller, which invokes Layout on every frame.
type Gui struct {
	cfg   Config
	state *JudgmentState
	theme Theme
	th    *material.Theme

	input    widget.Editor
	inputErr bool
	result   widget.List

	btn struct {
		judge widget.Clickable
		dark  widget.Clickable
		light widget.Clickable
		inc   widget.Clickable
		dec   widget.Clickable
	}
}

// NewGUI initializes the Gio interface around the provided state.
func NewGUI(cfg Config, state *JudgmentState) *Gui {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	g := &Gui{
		cfg:   cfg,
		state: state,
		th:    th,
	}
	g.input.SingleLine = true
	g.input.Submit = true
	g.input.Filter = numericFilter
	g.input.SetText(strconv.FormatInt(state.Input(), 10))
	g.result.Axis = layout.Vertical
	g.setTheme(cfg.Theme)

	return g
}

// Title returns the window title.
func (g *Gui) Title() string {
	return windowTitle
}

// Size returns the configured window size in device independent pixels.
func (g *Gui) Size() (unit.Dp, unit.Dp) {
	return unit.Dp(float32(g.cfg.Width)), unit.Dp(float32(g.cfg.Height))
}

// Layout processes the pending widget events and draws the whole window.
func (g *Gui) Layout(gtx C) D {
	g.update(gtx)

	paint.Fill(gtx.Ops, g.th.Palette.Bg)

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(g.layoutHeader),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(g.layoutInput),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(material.Button(g.th, &g.btn.judge, "Judge").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(g.layoutSeparator),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Flexed(1, g.layoutResult),
			layout.Rigid(g.layoutFooter),
		)
	})
}

// update consumes the editor and button events of the current frame.
func (g *Gui) update(gtx C) {
	for {
		ev, ok := g.input.Update(gtx)
		if !ok {
			break
		}
		switch ev.(type) {
		case widget.ChangeEvent:
			g.applyInput(g.input.Text())
		case widget.SubmitEvent:
			g.judge()
		}
	}

	if g.btn.judge.Clicked(gtx) {
		g.judge()
	}
	if g.btn.dark.Clicked(gtx) {
		g.setTheme(DarkTheme)
	}
	if g.btn.light.Clicked(gtx) {
		g.setTheme(LightTheme)
	}
	if g.btn.inc.Clicked(gtx) {
		g.step(1)
	}
	if g.btn.dec.Clicked(gtx) {
		g.step(-1)
	}
	g.state.Refresh()
}

// applyInput parses the editor content. Text which is not a valid
// 64-bit integer keeps the previous input and flags the editor.
func (g *Gui) applyInput(s string) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		g.inputErr = true
		return
	}
	g.inputErr = false
	g.state.SetInput(n)
}

func (g *Gui) judge() {
	if g.inputErr {
		// Judge the last valid value and make the editor show it again.
		g.inputErr = false
		g.input.SetText(strconv.FormatInt(g.state.Input(), 10))
	}
	g.state.Judge()
}

func (g *Gui) step(delta int64) {
	n := stepInput(g.state.Input(), delta)
	g.inputErr = false
	g.state.SetInput(n)
	g.input.SetText(strconv.FormatInt(n, 10))
}

func (g *Gui) setTheme(name ThemeName) {
	g.theme = LookupTheme(name)
	g.th.Palette = g.theme.Palette
}

func (g *Gui) layoutHeader(gtx C) D {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, material.H5(g.th, windowTitle).Layout),
		layout.Rigid(material.Button(g.th, &g.btn.light, "Light").Layout),
		layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		layout.Rigid(material.Button(g.th, &g.btn.dark, "Dark").Layout),
	)
}

func (g *Gui) layoutInput(gtx C) D {
	row := func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.Body1(g.th, "Enter number:").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.Button(g.th, &g.btn.dec, "−").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				border := widget.Border{
					Color:        g.theme.Muted,
					CornerRadius: unit.Dp(4),
					Width:        unit.Dp(1),
				}
				return border.Layout(gtx, func(gtx C) D {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx,
						material.Editor(g.th, &g.input, "0").Layout,
					)
				})
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(material.Button(g.th, &g.btn.inc, "+").Layout),
		)
	}
	if !g.inputErr {
		return row(gtx)
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(row),
		layout.Rigid(func(gtx C) D {
			lbl := material.Caption(g.th, "Not a valid 64-bit integer")
			lbl.Color = g.theme.Failure
			return layout.Inset{Top: unit.Dp(4)}.Layout(gtx, lbl.Layout)
		}),
	)
}

func (g *Gui) layoutSeparator(gtx C) D {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(1)))
	paint.FillShape(gtx.Ops, g.theme.Muted, clip.Rect{Max: size}.Op())

	return D{Size: size}
}

func (g *Gui) layoutResult(gtx C) D {
	lines := resultLines(g.state.Current())

	return material.List(g.th, &g.result).Layout(gtx, len(lines), func(gtx C, i int) D {
		lbl := material.Body1(g.th, lines[i].text)
		switch lines[i].tone {
		case toneMuted:
			lbl.Color = g.theme.Muted
		case toneSuccess:
			lbl.Color = g.theme.Success
		case toneFailure:
			lbl.Color = g.theme.Failure
		}
		return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, lbl.Layout)
	})
}

func (g *Gui) layoutFooter(gtx C) D {
	lbl := material.Caption(g.th, Footer)
	lbl.Color = g.theme.Muted
	lbl.Alignment = text.Middle

	return layout.Center.Layout(gtx, lbl.Layout)
}

// resultLines returns the lines displayed in the result region for the verdict.
func resultLines(v Verdict) []resultLine {
	switch v.Kind {
	case Invalid:
		return []resultLine{{v.Message(), toneFailure}}
	case Prime:
		return []resultLine{{v.Message(), toneSuccess}}
	case Composite:
		return []resultLine{
			{v.Message(), toneFailure},
			{"Factors found:", toneNormal},
			{v.FactorList(), toneNormal},
		}
	}
	return []resultLine{{v.Message(), toneMuted}}
}

// stepInput adds delta to n, saturating at the int64 bounds.
func stepInput(n, delta int64) int64 {
	switch {
	case delta > 0 && n > math.MaxInt64-delta:
		return math.MaxInt64
	case delta < 0 && n < math.MinInt64-delta:
		return math.MinInt64
	}
	return n + delta
}
