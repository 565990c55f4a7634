package primejudge

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gioui.org/widget/material"
)

// ErrUnknownTheme is returned for theme names other than light and dark.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeName identifies one of the supported color schemes.
type ThemeName string

const (
	LightTheme ThemeName = "light"
	DarkTheme  ThemeName = "dark"
)

// Theme is the set of colors used to paint the window.
type Theme struct {
	Name    ThemeName
	Palette material.Palette
	Success color.NRGBA
	Failure color.NRGBA
	Muted   color.NRGBA
}

var themes = map[ThemeName]Theme{
	LightTheme: {
		Name: LightTheme,
		Palette: material.Palette{
			Bg:         color.NRGBA{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff},
			Fg:         color.NRGBA{R: 0x3c, G: 0x3c, B: 0x3c, A: 0xff},
			ContrastBg: color.NRGBA{R: 0x0f, G: 0x8b, B: 0x8d, A: 0xff},
			ContrastFg: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		},
		Success: color.NRGBA{R: 0x1e, G: 0x88, B: 0x3a, A: 0xff},
		Failure: color.NRGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff},
		Muted:   color.NRGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff},
	},
	DarkTheme: {
		Name: DarkTheme,
		Palette: material.Palette{
			Bg:         color.NRGBA{R: 0x1b, G: 0x1b, B: 0x1b, A: 0xff},
			Fg:         color.NRGBA{R: 0xd2, G: 0xd2, B: 0xd2, A: 0xff},
			ContrastBg: color.NRGBA{R: 0x2e, G: 0x6d, B: 0xa4, A: 0xff},
			ContrastFg: color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
		},
		Success: color.NRGBA{R: 0x6a, G: 0xd1, B: 0x7d, A: 0xff},
		Failure: color.NRGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff},
		Muted:   color.NRGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff},
	},
}

// ParseTheme converts a case insensitive theme name into a ThemeName.
func ParseTheme(name string) (ThemeName, error) {
	t := ThemeName(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := themes[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// LookupTheme returns the colors of the named theme, falling back to the light one.
func LookupTheme(name ThemeName) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[LightTheme]
}
