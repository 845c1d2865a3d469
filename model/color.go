package model

import (
	"strconv"
	"strings"
)

// ACI color codes for the named drafting colors.
const (
	ColorRed     = 1
	ColorYellow  = 2
	ColorGreen   = 3
	ColorCyan    = 4
	ColorBlue    = 5
	ColorMagenta = 6
	ColorWhite   = 7
)

var colorNames = map[int]string{
	ColorRed:     "red",
	ColorYellow:  "yellow",
	ColorGreen:   "green",
	ColorCyan:    "cyan",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorWhite:   "white",
}

var colorCodes = func() map[string]int {
	m := make(map[string]int, len(colorNames))
	for code, name := range colorNames {
		m[name] = code
	}
	// Color 7 renders black on light backgrounds.
	m["black"] = ColorWhite
	return m
}()

// ColorName returns the conventional name for an ACI color code, or the
// empty string for codes without one.
func ColorName(code int) string {
	return colorNames[code]
}

// ParseColor interprets a color given either as an ACI code ("5") or as a
// color name ("blue", case-insensitive). Valid codes are 1 through 255.
func ParseColor(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if code, ok := colorCodes[s]; ok {
		return code, true
	}
	code, err := strconv.Atoi(s)
	if err != nil || code < 1 || code > 255 {
		return 0, false
	}
	return code, true
}
