package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v2"

	"portfolio-api/core/content"
	"portfolio-api/core/domain"
)

// check prints a diagnostics report and exits non-zero when the store is unhealthy
func check(c *cli.Context) error {
	app, err := loadApplication(c)
	if err != nil {
		return err
	}
	defer app.Close()

	d := app.content.Diagnose(c.Context)
	writeDiagnostics(os.Stdout, d)

	if !d.Healthy() {
		return cli.Exit("content store check failed", ExitUpstreamDown)
	}
	return nil
}

// listPosts prints the feed result as JSON
func listPosts(c *cli.Context) error {
	app, err := loadApplication(c)
	if err != nil {
		return err
	}
	defer app.Close()

	username := c.String("username")
	if username == "" {
		username = app.feed.Username()
	}
	result := app.feed.Posts(c.Context, username)

	out := map[string]interface{}{
		"status": result.Status,
		"source": result.Source,
		"posts":  result.Items,
	}
	if result.Err != nil {
		out["error"] = result.Err.Error()
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return err
	}

	if result.Status == domain.StatusFailed {
		return cli.Exit("", ExitUpstreamDown)
	}
	return nil
}

func writeDiagnostics(w io.Writer, d content.Diagnostics) {
	fmt.Fprintf(w, "Checked at %s\n\n", d.Timestamp.Format("2006-01-02 15:04:05 MST"))

	settings := [][]string{
		{"spaceId", d.Environment["spaceId"]},
		{"accessToken", d.Environment["accessToken"]},
		{"environment", d.Environment["environment"]},
	}
	writeTable(w, []string{"Setting", "Value"}, settings)
	fmt.Fprintln(w)

	kinds := [][]string{
		kindRow("articles", d.Articles),
		kindRow("projects", d.Projects),
	}
	writeTable(w, []string{"Kind", "Status", "Count", "Error"}, kinds)

	for _, section := range []struct {
		name   string
		report content.KindReport
	}{{"Articles", d.Articles}, {"Projects", d.Projects}} {
		if len(section.report.Entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", section.name)
		rows := make([][]string, 0, len(section.report.Entries))
		for _, e := range section.report.Entries {
			rows = append(rows, []string{e.Title, e.Slug})
		}
		writeTable(w, []string{"Title", "Slug"}, rows)
	}
}

func kindRow(name string, r content.KindReport) []string {
	return []string{name, string(r.Status), strconv.Itoa(r.Count), r.Error}
}

// writeTable renders rows as an aligned plain-text table. Widths are measured
// in terminal cells so titles with wide characters still line up.
func writeTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := range headers {
			if i < len(row) {
				if width := runewidth.StringWidth(row[i]); width > widths[i] {
					widths[i] = width
				}
			}
		}
	}

	writeRow := func(cells []string) {
		var sb strings.Builder
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				sb.WriteString("  ")
			}
			if i == len(headers)-1 {
				sb.WriteString(cell)
				continue
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	writeRow(headers)
	separators := make([]string, len(headers))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(separators)
	for _, row := range rows {
		writeRow(row)
	}
}
