package popup

import "image/color"

// Theme holds the popup color scheme.
type Theme struct {
	BG        color.NRGBA // card background
	Border    color.NRGBA // card border
	Title     color.NRGBA // header title
	Text      color.NRGBA // Arabic text
	TextDim   color.NRGBA // translation text
	Accent    color.NRGBA // reference line
	CloseIdle color.NRGBA // close button
	CloseHot  color.NRGBA // close button hovered
}

// Light returns the light color scheme.
func Light() Theme {
	return Theme{
		BG:        color.NRGBA{R: 255, G: 255, B: 255, A: 235},
		Border:    color.NRGBA{R: 39, G: 174, B: 96, A: 80},
		Title:     color.NRGBA{R: 44, G: 62, B: 80, A: 255},
		Text:      color.NRGBA{R: 44, G: 62, B: 80, A: 255},
		TextDim:   color.NRGBA{R: 52, G: 73, B: 94, A: 255},
		Accent:    color.NRGBA{R: 39, G: 174, B: 96, A: 255},
		CloseIdle: color.NRGBA{R: 52, G: 73, B: 94, A: 255},
		CloseHot:  color.NRGBA{R: 231, G: 76, B: 60, A: 255},
	}
}

// Dark returns the dark color scheme.
func Dark() Theme {
	return Theme{
		BG:        color.NRGBA{R: 30, G: 30, B: 30, A: 235},
		Border:    color.NRGBA{R: 39, G: 174, B: 96, A: 100},
		Title:     color.NRGBA{R: 236, G: 240, B: 241, A: 255},
		Text:      color.NRGBA{R: 189, G: 195, B: 199, A: 255},
		TextDim:   color.NRGBA{R: 149, G: 165, B: 166, A: 255},
		Accent:    color.NRGBA{R: 39, G: 174, B: 96, A: 255},
		CloseIdle: color.NRGBA{R: 149, G: 165, B: 166, A: 255},
		CloseHot:  color.NRGBA{R: 231, G: 76, B: 60, A: 255},
	}
}

// fade scales a color's alpha by t in [0, 1].
func fade(c color.NRGBA, t float32) color.NRGBA {
	if t >= 1 {
		return c
	}
	if t < 0 {
		t = 0
	}
	c.A = uint8(float32(c.A) * t)
	return c
}
