package rendering

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Font is a preview font family
type Font string

// Supported fonts
const (
	FontSegoeUI Font = "Segoe UI"
	FontRoboto  Font = "Roboto"
	FontGeorgia Font = "Georgia"
)

// Fonts lists the supported fonts in menu order.
var Fonts = []Font{FontSegoeUI, FontRoboto, FontGeorgia}

// Theme is a preview color theme
type Theme string

// Supported themes
const (
	ThemeLight  Theme = "Light"
	ThemeDark   Theme = "Dark"
	ThemeModern Theme = "Modern"
)

// Themes lists the supported themes in menu order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeModern}

// Presentation holds the visual choices applied to the preview. It never
// affects document data.
type Presentation struct {
	Font     Font  `json:"font" validate:"required,oneof='Segoe UI' Roboto Georgia"`
	Theme    Theme `json:"theme" validate:"required,oneof=Light Dark Modern"`
	DarkMode bool  `json:"dark_mode"`
}

var validate = validator.New()

// DefaultPresentation returns the presentation a session starts with.
func DefaultPresentation() Presentation {
	return Presentation{Font: FontSegoeUI, Theme: ThemeLight}
}

// Validate checks the font and theme against the supported sets.
func (p Presentation) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid presentation: %w", err)
	}
	return nil
}

// ThemeClass returns the CSS classes for the preview root, e.g. "preview-modern dark".
func (p Presentation) ThemeClass() string {
	cls := "preview-" + strings.ToLower(string(p.Theme))
	if p.DarkMode {
		cls += " dark"
	}
	return cls
}

// FontClass returns the CSS class selecting the font family.
func (p Presentation) FontClass() string {
	return "font-" + strings.ReplaceAll(strings.ToLower(string(p.Font)), " ", "-")
}

// ParseFont matches name case-insensitively against the supported fonts.
func ParseFont(name string) (Font, error) {
	for _, f := range Fonts {
		if strings.EqualFold(string(f), strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown font %q", name)
}

// ParseTheme matches name case-insensitively against the supported themes.
func ParseTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", name)
}

// NextFont returns the font after f, wrapping around.
func NextFont(f Font) Font {
	return next(Fonts, f)
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	return next(Themes, t)
}

func next[T comparable](all []T, cur T) T {
	for i, v := range all {
		if v == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
