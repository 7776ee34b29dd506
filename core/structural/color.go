// Package structural implements the structural accessibility analyzer:
// eight independent detection algorithms that walk the document tree and
// emit findings. Each detector is a pure function of the document and is
// isolated by the runner, so a faulty detector degrades to an empty
// finding category instead of aborting the scan.
package structural

import (
	"math"
	"strconv"
	"strings"

	"github.com/pagelens/pagelens/schema"
)

// Color is an sRGB color with channels in [0,255] and alpha in [0,1].
type Color struct {
	R, G, B float64
	A       float64
}

// ContrastAssessment is the transient result of evaluating one
// foreground/background pair. Ratio is always >= 1.
type ContrastAssessment struct {
	Foreground    Color
	Background    Color
	Ratio         float64
	RequiredRatio float64
	Passes        bool
	Level         schema.WCAGLevel
}

var namedColors = map[string]string{
	"black":     "#000000",
	"silver":    "#c0c0c0",
	"gray":      "#808080",
	"grey":      "#808080",
	"white":     "#ffffff",
	"maroon":    "#800000",
	"red":       "#ff0000",
	"purple":    "#800080",
	"fuchsia":   "#ff00ff",
	"green":     "#008000",
	"lime":      "#00ff00",
	"olive":     "#808000",
	"yellow":    "#ffff00",
	"navy":      "#000080",
	"blue":      "#0000ff",
	"teal":      "#008080",
	"aqua":      "#00ffff",
	"orange":    "#ffa500",
	"brown":     "#a52a2a",
	"pink":      "#ffc0cb",
	"gold":      "#ffd700",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"darkred":   "#8b0000",
	"darkblue":  "#00008b",
	"darkgreen": "#006400",
}

// ParseColor parses hex, rgb()/rgba() and common named colors. The second
// return value is false for unparseable or keyword values ("inherit",
// "currentcolor").
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, false
	}
	if s == "transparent" {
		return Color{A: 0}, true
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGB(s)
	}
	return Color{}, false
}

func parseHex(hex string) (Color, bool) {
	expand := func(h string) string {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	switch len(hex) {
	case 3, 4:
		hex = expand(hex)
	case 6, 8:
	default:
		return Color{}, false
	}
	parse := func(part string) (float64, bool) {
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}
	r, ok1 := parse(hex[0:2])
	g, ok2 := parse(hex[2:4])
	b, ok3 := parse(hex[4:6])
	if !ok1 || !ok2 || !ok3 {
		return Color{}, false
	}
	a := 1.0
	if len(hex) == 8 {
		av, ok := parse(hex[6:8])
		if !ok {
			return Color{}, false
		}
		a = av / 255.0
	}
	return Color{R: r, G: g, B: b, A: a}, true
}

func parseRGB(s string) (Color, bool) {
	open := strings.Index(s, "(")
	closeIdx := strings.LastIndex(s, ")")
	if open < 0 || closeIdx <= open {
		return Color{}, false
	}
	parts := strings.FieldsFunc(s[open+1:closeIdx], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) < 3 {
		return Color{}, false
	}
	channel := func(p string) (float64, bool) {
		if strings.HasSuffix(p, "%") {
			v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			if err != nil {
				return 0, false
			}
			return v / 100 * 255, true
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	r, ok1 := channel(parts[0])
	g, ok2 := channel(parts[1])
	b, ok3 := channel(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return Color{}, false
	}
	a := 1.0
	if len(parts) >= 4 {
		av, err := strconv.ParseFloat(strings.TrimSuffix(parts[3], "%"), 64)
		if err == nil {
			if strings.HasSuffix(parts[3], "%") {
				av /= 100
			}
			a = av
		}
	}
	return Color{R: r, G: g, B: b, A: a}, true
}

// IsTransparent reports whether the color contributes no paint.
func (c Color) IsTransparent() bool {
	return c.A < 0.01
}

// RelativeLuminance computes the WCAG relative luminance in [0,1] using
// the sRGB-to-linear transform.
func RelativeLuminance(c Color) float64 {
	linear := func(v float64) float64 {
		v /= 255.0
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// ContrastRatio computes (Lmax+0.05)/(Lmin+0.05); symmetric in its
// arguments and always >= 1.
func ContrastRatio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// AssessContrast evaluates a pair against the required ratio for the
// given level and text size class.
func AssessContrast(fg, bg Color, level schema.WCAGLevel, largeText bool) ContrastAssessment {
	required := RequiredRatio(level, largeText)
	ratio := ContrastRatio(fg, bg)
	return ContrastAssessment{
		Foreground:    fg,
		Background:    bg,
		Ratio:         ratio,
		RequiredRatio: required,
		Passes:        ratio >= required,
		Level:         level,
	}
}

// RequiredRatio returns the WCAG minimum contrast ratio: AA is 3:1 for
// large text and 4.5:1 otherwise; AAA is 4.5:1 and 7:1.
func RequiredRatio(level schema.WCAGLevel, largeText bool) float64 {
	if level == schema.LevelAAA {
		if largeText {
			return 4.5
		}
		return 7.0
	}
	if largeText {
		return 3.0
	}
	return 4.5
}
