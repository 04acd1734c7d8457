package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Check NO_COLOR environment variable (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

// Semantic formatters for different types of CLI output.
var (
	// Entry formats password store entry names.
	// Yellow with color, no decoration without.
	Entry = Formatter{color.New(color.FgYellow), "", ""}

	// Folder formats directory names in the entry tree.
	// Blue and bold with color, trailing slash is added by the tree renderer.
	Folder = Formatter{color.New(color.FgBlue, color.Bold), "", ""}

	// Code formats runnable commands.
	// Yellow with color, `backticks` without.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Success formats success indicators and messages.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators and messages.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warning indicators and messages.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats informational hints and directional indicators.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats emphasized user values like remotes and key ids.
	// Cyan with color, 'single quotes' without.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}
)

// RenderTree renders sorted entry names (slash-separated) as an indented
// tree, one name component per line. Folders are printed once, in the order
// they first appear.
func RenderTree(names []string) string {
	var b strings.Builder
	var open []string

	for _, name := range names {
		parts := strings.Split(name, "/")
		dirs, leaf := parts[:len(parts)-1], parts[len(parts)-1]

		// Find how much of the open folder stack this entry shares.
		common := 0
		for common < len(open) && common < len(dirs) && open[common] == dirs[common] {
			common++
		}
		open = open[:common]

		for _, dir := range dirs[common:] {
			b.WriteString(strings.Repeat("    ", len(open)))
			b.WriteString(Folder.Sprint(dir))
			b.WriteString("/\n")
			open = append(open, dir)
		}

		b.WriteString(strings.Repeat("    ", len(open)))
		b.WriteString(Entry.Sprint(leaf))
		b.WriteString("\n")
	}

	return b.String()
}
