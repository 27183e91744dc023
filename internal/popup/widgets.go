package popup

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"quran-reminder/internal/i18n"
)

// draw renders the whole card. opacity scales every color; slide shifts
// the card off the right edge during the slide-in animation.
func (w *Window) draw(gtx layout.Context, content Content, theme Theme, opacity, slide float32) {
	// Slide offset in pixels
	offset := int(slide * float32(gtx.Constraints.Max.X))
	defer op.Offset(image.Pt(offset, 0)).Push(gtx.Ops).Pop()

	drawCard(gtx, theme, opacity)

	layout.UniformInset(unit.Dp(14)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Header: icon, title, close button
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawHeader(gtx, theme, opacity)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

			// Arabic text
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !content.ShowArabic {
					return layout.Dimensions{}
				}
				return drawVerseLabel(gtx, content.Arabic, unit.Sp(16), fade(theme.Text, opacity), text.End)
			}),

			// Translation text
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !content.ShowTranslation {
					return layout.Dimensions{}
				}
				return layout.Inset{Top: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return drawVerseLabel(gtx, content.Translation, unit.Sp(13), fade(theme.TextDim, opacity), text.End)
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

			// Reference
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return drawVerseLabel(gtx, content.Reference, unit.Sp(11), fade(theme.Accent, opacity), text.Middle)
			}),
		)
	})
}

// drawCard fills the rounded card background with a border.
func drawCard(gtx layout.Context, theme Theme, opacity float32) {
	rr := gtx.Dp(unit.Dp(10))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: gtx.Constraints.Max},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, fade(theme.BG, opacity), rect.Op(gtx.Ops))

	border := clip.Stroke{
		Path:  rect.Path(gtx.Ops),
		Width: float32(gtx.Dp(unit.Dp(1))),
	}
	paint.FillShape(gtx.Ops, fade(theme.Border, opacity), border.Op())
}

func (w *Window) drawHeader(gtx layout.Context, theme Theme, opacity float32) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		// Book icon
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = fade(theme.Accent, opacity)
			return material.Label(th, unit.Sp(16), "📖").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		// Title
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = fade(theme.Title, opacity)
			lbl := material.Label(th, unit.Sp(13), i18n.T("popup_title"))
			lbl.Font.Weight = font.Bold
			return lbl.Layout(gtx)
		}),
		// Spacer
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{}
		}),
		// Close button
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return drawCloseButton(gtx, &w.closeBtn, theme, opacity)
		}),
	)
}

// drawVerseLabel renders one wrapped text block.
func drawVerseLabel(gtx layout.Context, txt string, size unit.Sp, col color.NRGBA, align text.Alignment) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = col
	lbl := material.Label(th, size, txt)
	lbl.Alignment = align
	return lbl.Layout(gtx)
}

// drawCloseButton draws an X button.
func drawCloseButton(gtx layout.Context, btn *widget.Clickable, theme Theme, opacity float32) layout.Dimensions {
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := gtx.Dp(unit.Dp(20))

		col := fade(theme.CloseIdle, opacity)
		if btn.Hovered() {
			col = fade(theme.CloseHot, opacity)
		}

		s := float32(size)
		margin := s * 0.25

		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(f32.Pt(margin, margin))
		path.LineTo(f32.Pt(s-margin, s-margin))
		paint.FillShape(gtx.Ops, col, clip.Stroke{
			Path:  path.End(),
			Width: float32(gtx.Dp(unit.Dp(2))),
		}.Op())

		var path2 clip.Path
		path2.Begin(gtx.Ops)
		path2.MoveTo(f32.Pt(s-margin, margin))
		path2.LineTo(f32.Pt(margin, s-margin))
		paint.FillShape(gtx.Ops, col, clip.Stroke{
			Path:  path2.End(),
			Width: float32(gtx.Dp(unit.Dp(2))),
		}.Op())

		return layout.Dimensions{Size: image.Pt(size, size)}
	})
}
