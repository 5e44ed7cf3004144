package widget

import (
	"html/template"
	"regexp"
	"strings"
	"time"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeCustom Theme = "custom"
)

const (
	DefaultAccentColor     = "#4F46E5"
	DefaultBackgroundColor = "#FFFFFF"
	DefaultPadding         = 16
	DefaultInterval        = 30 * time.Second

	positiveChangeColor = "#10B981"
	negativeChangeColor = "#EF4444"

	defaultTextColor = "#000000"
)

// colorPattern accepts hex, named and functional (rgb, hsl, ...) CSS colours
var colorPattern = regexp.MustCompile(`^(#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|[a-zA-Z]+|(?:rgba?|hsla?)\([0-9a-zA-Z.%\s,/+-]*\))$`)

// ValidColor reports whether value is a colour the widget can render
func ValidColor(value string) bool {
	return colorPattern.MatchString(strings.TrimSpace(value))
}

// cssColor returns value as trusted CSS, or fallback when it is not a colour
func cssColor(value, fallback string) template.CSS {
	value = strings.TrimSpace(value)
	if !ValidColor(value) {
		value = fallback
	}
	return template.CSS(value)
}

// ThemeStyles are the resolved colours a view is drawn with
type ThemeStyles struct {
	Background string
	Text       string
	Accent     string
}

var builtinThemes = map[Theme]ThemeStyles{
	ThemeLight: {Background: "#FFFFFF", Text: "#000000", Accent: "#4F46E5"},
	ThemeDark:  {Background: "#1F2937", Text: "#FFFFFF", Accent: "#60A5FA"},
}

// ParseTheme maps a name to a Theme; unknown names fall back to light
func ParseTheme(name string) Theme {
	switch Theme(name) {
	case ThemeDark, ThemeCustom:
		return Theme(name)
	default:
		return ThemeLight
	}
}

// Styles resolves the colours for the configured theme. Custom uses the
// configured background and accent on black text; a value that is not a
// colour falls back to the default.
func (o Options) Styles() ThemeStyles {
	if o.Theme == ThemeCustom {
		return ThemeStyles{
			Background: string(cssColor(o.BackgroundColor, DefaultBackgroundColor)),
			Text:       defaultTextColor,
			Accent:     string(cssColor(o.AccentColor, DefaultAccentColor)),
		}
	}
	if styles, ok := builtinThemes[o.Theme]; ok {
		return styles
	}
	return builtinThemes[ThemeLight]
}
