// Package ui provides semantic text formatting for CLI output.
//
// Formatters carry both a color (for capable terminals) and a plain-text
// decoration (for NO_COLOR or non-terminal output), so commands describe
// what a piece of text is rather than how it looks:
//
//	fmt.Println(ui.Success.Sprint("✓") + " Entry added")
//	fmt.Println(ui.Code.Sprint("passgit sync"))
//
// RenderTree turns a sorted list of slash-separated entry names into the
// indented tree shown by the list command.
package ui
