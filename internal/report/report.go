package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"radtui/pkg/record"
)

// Format selects how a record listing is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var headers = []string{"MAC Address", "VLAN", "Device Name"}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatMarkdown, FormatHTML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, markdown or html)", s)
}

// Write renders records to w in the given format.
func Write(w io.Writer, records []record.Record, f Format) error {
	var out []byte
	switch f {
	case FormatText:
		out = []byte(Text(records))
	case FormatMarkdown:
		out = []byte(Markdown(records))
	case FormatHTML:
		html, err := HTML(records)
		if err != nil {
			return err
		}
		out = html
	default:
		return fmt.Errorf("unknown format %q", f)
	}
	_, err := w.Write(out)
	return err
}

func rows(records []record.Record) [][]string {
	out := make([][]string, 0, len(records))
	for _, r := range records {
		out = append(out, []string{r.MAC, r.VLAN, r.DeviceName})
	}
	return out
}

// Text renders an aligned plain-text table followed by a total line.
func Text(records []record.Record) string {
	data := rows(records)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range data {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i == len(cells)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range data {
		writeRow(row)
	}
	fmt.Fprintf(&b, "\nTotal entries: %d\n", len(records))
	return b.String()
}

// Markdown renders a GitHub-flavored markdown table.
func Markdown(records []record.Record) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows(records) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeCell(cell)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}

var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"`", "\\`",
)

// escapeCell keeps a device name literal: no table breaks, no inline markup.
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// HTML converts the markdown table to an HTML fragment.
func HTML(records []record.Record) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(records)), &buf); err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}
	return buf.Bytes(), nil
}
