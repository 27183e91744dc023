package settings

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"quran-reminder/internal/config"
	"quran-reminder/internal/i18n"
)

// Color palette - modern dark theme
var (
	colorBG         = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	colorPanel      = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	colorPanelLight = color.NRGBA{R: 55, G: 55, B: 62, A: 255}
	colorText       = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorTextDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorAccent     = color.NRGBA{R: 39, G: 174, B: 96, A: 255}
)

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	// Fill background
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	interval, duration, maxLength, language, theme := w.getValues()

	return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Title (fixed)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawTitle(gtx)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			// Scrollable content area
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				return material.List(th, &w.contentList).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawRemindersSection(gtx, interval, duration, maxLength)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawDisplaySection(gtx, language, theme)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawBehaviorSection(gtx)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawHotkeySection(gtx)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawUILanguageSection(gtx)
						}),
					)
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Buttons (fixed at bottom)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawButtons(gtx)
			}),
		)
	})
}

func (w *Window) drawTitle(gtx layout.Context) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorText

	label := material.Label(th, unit.Sp(22), i18n.T("settings_title"))
	label.Font.Weight = font.Bold
	return label.Layout(gtx)
}

func (w *Window) drawSectionHeader(gtx layout.Context, text string) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorTextDim

	label := material.Label(th, unit.Sp(12), text)
	label.Font.Weight = font.Medium
	return label.Layout(gtx)
}

func (w *Window) drawRemindersSection(gtx layout.Context, interval, duration, maxLength int) layout.Dimensions {
	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, i18n.T("settings_reminders"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawStepperRow(gtx, i18n.T("settings_interval"),
					interval, &w.intervalDec, &w.intervalInc)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawStepperRow(gtx, i18n.T("settings_duration"),
					duration, &w.durationDec, &w.durationInc)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawStepperRow(gtx, i18n.T("settings_max_length"),
					maxLength, &w.maxLenDec, &w.maxLenInc)
			}),
		)
	})
}

func (w *Window) drawDisplaySection(gtx layout.Context, language config.DisplayLanguage, theme config.Theme) layout.Dimensions {
	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, i18n.T("settings_display"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Verse language
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawFieldLabel(gtx, i18n.T("settings_language"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawChoiceButton(gtx, w.langButtons[config.LangBoth],
							i18n.T("settings_lang_both"), language == config.LangBoth)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawChoiceButton(gtx, w.langButtons[config.LangArabic],
							i18n.T("settings_lang_arabic"), language == config.LangArabic)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawChoiceButton(gtx, w.langButtons[config.LangPersian],
							i18n.T("settings_lang_persian"), language == config.LangPersian)
					}),
				)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Theme
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawFieldLabel(gtx, i18n.T("settings_theme"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawChoiceButton(gtx, w.themeButtons[config.ThemeLight],
							i18n.T("settings_theme_light"), theme == config.ThemeLight)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawChoiceButton(gtx, w.themeButtons[config.ThemeDark],
							i18n.T("settings_theme_dark"), theme == config.ThemeDark)
					}),
				)
			}),
		)
	})
}

func (w *Window) drawBehaviorSection(gtx layout.Context) layout.Dimensions {
	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawToggleRow(gtx, &w.autoStart, i18n.T("settings_auto_start"), "")
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawToggleRow(gtx, &w.recitation,
					i18n.T("settings_recitation"), i18n.T("settings_recitation_hint"))
			}),
		)
	})
}

func (w *Window) drawHotkeySection(gtx layout.Context) layout.Dimensions {
	hotkey := w.config.Hotkey()

	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, i18n.T("settings_hotkey"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawHotkeyPreview(gtx, hotkey)
			}),
		)
	})
}

func (w *Window) drawHotkeyPreview(gtx layout.Context, hotkey config.HotkeyConfig) layout.Dimensions {
	// Record content to measure size
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = colorAccent
		label := material.Label(th, unit.Sp(16), "⌨  "+hotkeyDisplay(hotkey))
		label.Font.Weight = font.Medium
		return label.Layout(gtx)
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanelLight, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)

	return dims
}

// hotkeyDisplay formats the hotkey for display, e.g. "Ctrl + Shift + Q".
func hotkeyDisplay(hk config.HotkeyConfig) string {
	result := ""
	for _, m := range hk.Modifiers {
		if result != "" {
			result += " + "
		}
		switch m {
		case config.ModCtrl:
			result += "Ctrl"
		case config.ModShift:
			result += "Shift"
		case config.ModAlt:
			result += "Alt"
		case config.ModSuper:
			result += "Super"
		}
	}
	if result != "" {
		result += " + "
	}
	switch hk.Key {
	case config.KeySpace:
		result += "Space"
	case config.KeyReturn:
		result += "Enter"
	default:
		k := string(hk.Key)
		if len(k) == 1 {
			result += strings.ToUpper(k)
		} else {
			// f1..f4 render as F1..F4
			result += strings.ToUpper(k[:1]) + k[1:]
		}
	}
	return result
}

func (w *Window) drawUILanguageSection(gtx layout.Context) layout.Dimensions {
	selectedLang := w.getSelectedUILang()

	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, i18n.T("settings_ui_language"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawChoiceButton(gtx, w.uiLangButtons[i18n.EN], "English", selectedLang == i18n.EN)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawChoiceButton(gtx, w.uiLangButtons[i18n.FA], "فارسی", selectedLang == i18n.FA)
					}),
				)
			}),
		)
	})
}

func (w *Window) drawFieldLabel(gtx layout.Context, text string) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorTextDim
	lbl := material.Label(th, unit.Sp(13), text)
	return lbl.Layout(gtx)
}

// drawStepperRow renders "label   [-] value [+]".
func (w *Window) drawStepperRow(gtx layout.Context, label string, value int, dec, inc *widget.Clickable) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = colorText
			lbl := material.Label(th, unit.Sp(14), label)
			return lbl.Layout(gtx)
		}),

		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawStepperButton(gtx, dec, "−")
		}),

		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			// Fixed-width value so the row does not jitter
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(48))
			th := material.NewTheme()
			th.Palette.Fg = colorAccent
			lbl := material.Label(th, unit.Sp(15), fmt.Sprintf("%d", value))
			lbl.Font.Weight = font.Medium
			lbl.Alignment = text.Middle
			return lbl.Layout(gtx)
		}),

		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawStepperButton(gtx, inc, "+")
		}),
	)
}

func (w *Window) drawStepperButton(gtx layout.Context, btn *widget.Clickable, label string) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		size := gtx.Dp(unit.Dp(28))
		gtx.Constraints.Min = image.Pt(size, size)
		gtx.Constraints.Max = image.Pt(size, size)
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = colorText
			lbl := material.Label(th, unit.Sp(16), label)
			lbl.Font.Weight = font.Bold
			return lbl.Layout(gtx)
		})
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(6))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanelLight, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}

func (w *Window) drawChoiceButton(gtx layout.Context, btn *widget.Clickable, label string, selected bool) layout.Dimensions {
	bgColor := colorPanelLight
	textColor := colorTextDim
	if selected {
		bgColor = colorAccent
		textColor = colorText
	}

	// Record content to measure size
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(8), Bottom: unit.Dp(8),
			Left: unit.Dp(12), Right: unit.Dp(12),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = textColor
			lbl := material.Label(th, unit.Sp(13), label)
			lbl.Font.Weight = font.Medium
			return lbl.Layout(gtx)
		})
	})
	call := macro.Stop()

	// Draw background
	rr := gtx.Dp(unit.Dp(6))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bgColor, rect.Op(gtx.Ops))

	// Replay content
	call.Add(gtx.Ops)

	return dims
}

func (w *Window) drawToggleRow(gtx layout.Context, toggle *widget.Bool, label, hint string) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		// Toggle
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			sw := material.Switch(th, toggle, "")
			sw.Color.Enabled = colorAccent
			sw.Color.Disabled = colorPanel
			return sw.Layout(gtx)
		}),

		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),

		// Description
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					th := material.NewTheme()
					th.Palette.Fg = colorText
					lbl := material.Label(th, unit.Sp(14), label)
					lbl.Font.Weight = font.Medium
					return lbl.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if hint == "" {
						return layout.Dimensions{}
					}
					th := material.NewTheme()
					th.Palette.Fg = colorTextDim
					lbl := material.Label(th, unit.Sp(11), hint)
					return lbl.Layout(gtx)
				}),
			)
		}),
	)
}

func (w *Window) drawPanel(gtx layout.Context, content layout.Widget) layout.Dimensions {
	// First layout content to get its size
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(16)).Layout(gtx, content)
	call := macro.Stop()

	// Draw background with content size
	rr := gtx.Dp(unit.Dp(12))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanel, rect.Op(gtx.Ops))

	// Replay content drawing
	call.Add(gtx.Ops)

	return dims
}

func (w *Window) drawButtons(gtx layout.Context) layout.Dimensions {
	return layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{}
		}),

		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawButton(gtx, &w.cancelBtn, i18n.T("settings_cancel"), colorPanel, colorText)
		}),

		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),

		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawButton(gtx, &w.applyBtn, i18n.T("settings_apply"), colorAccent, colorText)
		}),
	)
}

func (w *Window) drawButton(gtx layout.Context, btn *widget.Clickable, label string, bgColor, textColor color.NRGBA) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(10), Bottom: unit.Dp(10),
			Left: unit.Dp(20), Right: unit.Dp(20),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = textColor
			lbl := material.Label(th, unit.Sp(14), label)
			lbl.Font.Weight = font.Medium
			return lbl.Layout(gtx)
		})
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bgColor, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}
