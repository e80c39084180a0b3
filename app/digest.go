package app

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// BuildWeeklyDigestMarkdown renders a weekly summary as a markdown document
func BuildWeeklyDigestMarkdown(summary *WeeklySummary) string {
	var b strings.Builder

	b.WriteString("# Weekly Journal Digest\n\n")
	fmt.Fprintf(&b, "**Period:** %s\n\n", summary.Period)
	fmt.Fprintf(&b, "- Entries written: %d\n", summary.TotalEntries)
	fmt.Fprintf(&b, "- Words written: %d\n\n", summary.TotalWords)

	if len(summary.MoodTrends) > 0 {
		b.WriteString("## Mood Timeline\n\n")
		b.WriteString("| Date | Mood | Intensity |\n")
		b.WriteString("|------|------|-----------|\n")
		for _, point := range summary.MoodTrends {
			fmt.Fprintf(&b, "| %s | %s | %.1f |\n", point.Date, point.Mood, point.Intensity)
		}
		b.WriteString("\n")
	}

	if len(summary.Insights) > 0 {
		b.WriteString("## Insights\n\n")
		for _, insight := range summary.Insights {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", insight.Title, insight.Content)
		}
	}

	return b.String()
}

// RenderDigestHTML converts a markdown digest into an HTML fragment
func RenderDigestHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
