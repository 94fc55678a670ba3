// Package display renders facts as boxed terminal blocks.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/manas95826/fact-cli/facts"
)

var (
	frame  = color.New(color.FgHiBlue)
	header = color.New(color.FgHiCyan, color.Bold)
	number = color.New(color.FgHiYellow)
	body   = color.New(color.FgHiWhite)
)

// Render formats fact as a block. The index line is only shown for index > 1.
func Render(fact string, category facts.Category, index uint32) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s %s %s\n",
		frame.Sprint("┌─"),
		category.Emoji(),
		header.Sprint(category.DisplayName()),
		header.Sprint("Fact"),
	)
	if index > 1 {
		fmt.Fprintf(&b, "%s %s\n", frame.Sprint("│"), number.Sprintf("#%d", index))
	}
	fmt.Fprintf(&b, "%s\n", frame.Sprint("├─"))
	fmt.Fprintf(&b, "%s %s\n", frame.Sprint("│"), body.Sprint(fact))
	fmt.Fprintf(&b, "%s\n", frame.Sprint("└─"))
	b.WriteString("\n")

	return b.String()
}

// Print writes the rendered block to w.
func Print(w io.Writer, fact string, category facts.Category, index uint32) error {
	_, err := io.WriteString(w, Render(fact, category, index))
	return err
}

// Banner returns a highlighted status line, such as the watch mode prompt.
func Banner(text string, attrs ...color.Attribute) string {
	return color.New(attrs...).Sprint(text)
}
