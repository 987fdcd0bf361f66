package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/ptrains/ptrains-cli/internal/models"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

type sprintf func(format string, a ...interface{}) string

// Colors holds the color functions for different output types
type Colors struct {
	Time     sprintf
	Train    sprintf
	Service  sprintf
	Station  sprintf
	Operator sprintf
	Passed   sprintf
	Current  sprintf
	Notice   sprintf
	Header   sprintf
	Muted    sprintf
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		return &Colors{
			Time:     noColor,
			Train:    noColor,
			Service:  noColor,
			Station:  noColor,
			Operator: noColor,
			Passed:   noColor,
			Current:  noColor,
			Notice:   noColor,
			Header:   noColor,
			Muted:    noColor,
		}
	}

	return &Colors{
		Time:     color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Train:    color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Service:  color.New(color.FgMagenta).SprintfFunc(),
		Station:  color.New(color.FgWhite).SprintfFunc(),
		Operator: color.New(color.FgBlue).SprintfFunc(),
		Passed:   color.New(color.FgHiBlack).SprintfFunc(),
		Current:  color.New(color.FgGreen, color.Bold).SprintfFunc(),
		Notice:   color.New(color.FgYellow).SprintfFunc(),
		Header:   color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:    color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatNotes colors the Observacoes text of a train or stop. Notes that
// announce a delay or suppression are highlighted.
func (c *Colors) FormatNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return ""
	}
	if models.IsDisruption(notes) {
		return c.Notice("%s", notes)
	}
	return c.Muted("%s", notes)
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
