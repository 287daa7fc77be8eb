package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stockboard/internal/board"
	"stockboard/internal/quote"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

type column struct {
	title string
	key   board.SortKey
	right bool
	value func(quote.Quote) string
}

var columns = []column{
	{"SYMBOL", board.SortSymbol, false, func(q quote.Quote) string { return q.Symbol }},
	{"NAME", board.SortName, false, func(q quote.Quote) string { return q.Name }},
	{"PRICE", board.SortPrice, true, func(q quote.Quote) string { return q.Price }},
	{"CHANGE", board.SortChange, true, func(q quote.Quote) string { return q.Change }},
	{"CHANGE%", board.SortChangePercent, true, func(q quote.Quote) string { return q.ChangePercent }},
	{"HIGH", board.SortHigh, true, func(q quote.Quote) string { return q.High }},
	{"LOW", board.SortLow, true, func(q quote.Quote) string { return q.Low }},
	{"VOLUME", board.SortVolume, true, func(q quote.Quote) string { return q.Volume }},
	{"UPDATED", "", false, func(q quote.Quote) string { return q.LastUpdated }},
}

// Table renders a snapshot for the terminal. The loading, error and empty
// states are mutually exclusive with the data table. Rows with non-negative
// change use the up style, rows with negative change the down style.
func Table(snap board.Snapshot) string {
	switch snap.State {
	case board.StateIdle:
		return dimStyle.Render("press enter to load quotes") + "\n"
	case board.StateLoading:
		return dimStyle.Render("loading quotes...") + "\n"
	case board.StateFailed:
		return errorStyle.Render("error: "+snap.Err) + "\n"
	}
	if len(snap.Quotes) == 0 {
		if strings.TrimSpace(snap.Search) != "" {
			return dimStyle.Render(fmt.Sprintf("no symbols match %q", snap.Search)) + "\n"
		}
		return dimStyle.Render("no quotes") + "\n"
	}

	titles := make([]string, len(columns))
	widths := make([]int, len(columns))
	for i, c := range columns {
		titles[i] = c.title
		if c.key != "" && c.key == snap.SortKey {
			if snap.SortAsc {
				titles[i] += " ^"
			} else {
				titles[i] += " v"
			}
		}
		widths[i] = len(titles[i])
		for _, q := range snap.Quotes {
			if n := len(c.value(q)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(row(titles, widths)))
	b.WriteString("\n")
	for _, q := range snap.Quotes {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = c.value(q)
		}
		style := upStyle
		if q.Negative() {
			style = downStyle
		}
		b.WriteString(style.Render(row(cells, widths)))
		b.WriteString("\n")
	}
	if strings.TrimSpace(snap.Search) != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("filter: %q", snap.Search)))
		b.WriteString("\n")
	}
	return b.String()
}

func row(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		if columns[i].right {
			padded[i] = fmt.Sprintf("%*s", widths[i], c)
		} else {
			padded[i] = fmt.Sprintf("%-*s", widths[i], c)
		}
	}
	return strings.Join(padded, "  ")
}

// Markdown renders a snapshot as a markdown document, suitable for piping
// through a terminal markdown renderer or into a report.
func Markdown(snap board.Snapshot) string {
	var b strings.Builder
	b.WriteString("# Quotes\n\n")
	switch snap.State {
	case board.StateLoading:
		b.WriteString("_loading..._\n")
		return b.String()
	case board.StateFailed:
		b.WriteString("**error:** " + snap.Err + "\n")
		return b.String()
	}
	if len(snap.Quotes) == 0 {
		b.WriteString("_no quotes_\n")
		return b.String()
	}

	b.WriteString("| Symbol | Name | Price | Change | Change% | High | Low | Volume | Updated |\n")
	b.WriteString("|---|---|--:|--:|--:|--:|--:|--:|---|\n")
	for _, q := range snap.Quotes {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			q.Symbol, q.Name, q.Price, q.Change, q.ChangePercent, q.High, q.Low, q.Volume, q.LastUpdated)
	}
	return b.String()
}
