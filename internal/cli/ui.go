package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+styleValue.Render(value))
}

// printSummary prints the placed/dropped counts of a layout on one line.
func printSummary(w io.Writer, placed, total int) {
	line := "  " + styleNumber.Render(fmt.Sprint(placed)) + styleDim.Render(" placed")
	if dropped := total - placed; dropped > 0 {
		line += styleDim.Render(" · ") + styleWarning.Render(fmt.Sprintf("%d dropped", dropped))
	}
	fmt.Fprintln(w, line)
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}
