package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  __ _  ___ ___(_)___| |_ __ _ _ __ | |_ ", "#818cf8"},
	{" / _` |/ __/ __| / __| __/ _` | '_ \\| __|", "#a78bfa"},
	{"| (_| |\\__ \\__ \\ \\__ \\ || (_| | | | | |_ ", "#c084fc"},
	{" \\__,_||___/___/_|___/\\__\\__,_|_| |_|\\__|", "#e879f9"},
}

// PrintBanner writes the ASCII art banner followed by the version line.
// Colours are used only when color is true.
func PrintBanner(w io.Writer, version string, color bool) {
	profile := termenv.Ascii
	if color {
		profile = termenv.TrueColor
	}
	out := termenv.NewOutput(w, termenv.WithProfile(profile))

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w, out.String("  contacts shell "+version).Faint())
	fmt.Fprintln(w)
}
