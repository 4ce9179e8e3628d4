// Package export renders a categorization report to an Excel workbook
// so a run can be handed off or reviewed offline.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"reddit-pulse-go/internal/types"
)

// Write saves the report as an .xlsx workbook at path: a Summary sheet
// with the run parameters and stats, one sheet per category bucket, and
// a Keywords sheet with the three clouds.
func Write(path string, rep *types.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSummary(f, rep); err != nil {
		return err
	}

	categorySheets := []struct {
		name  string
		items []types.CategorizedItem
	}{
		{"Benefits", rep.Benefits},
		{"Pain Points", rep.PainPoints},
		{"Suggestions", rep.Suggestions},
	}
	for _, cs := range categorySheets {
		if err := writeBucket(f, cs.name, cs.items); err != nil {
			return err
		}
	}

	if err := writeClouds(f, rep.Clouds); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, rep *types.Report) error {
	rows := [][]interface{}{
		{"Query", rep.Query},
		{"Timeframe", rep.Timeframe},
		{"Subreddit", rep.Subreddit},
		{"Total posts", rep.Stats.Total},
		{"Benefits shown", rep.Stats.Benefits},
		{"Pain points shown", rep.Stats.PainPoints},
		{"Suggestions shown", rep.Stats.Suggestions},
	}
	return writeRows(f, "Summary", rows)
}

func writeBucket(f *excelize.File, name string, items []types.CategorizedItem) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	rows := [][]interface{}{
		{"Title", "Subreddit", "Score", "Comments", "Posted", "URL"},
	}
	for _, it := range items {
		rows = append(rows, []interface{}{it.Text, it.Subreddit, it.Score, it.Comments, it.TimeAgo, it.URL})
	}
	return writeRows(f, name, rows)
}

func writeClouds(f *excelize.File, clouds types.Clouds) error {
	const name = "Keywords"
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	rows := [][]interface{}{
		{"Category", "Keyword", "Count"},
	}
	groups := []struct {
		label   string
		entries []types.KeywordEntry
	}{
		{"benefits", clouds.Benefits},
		{"painPoints", clouds.PainPoints},
		{"suggestions", clouds.Suggestions},
	}
	for _, g := range groups {
		for _, e := range g.entries {
			rows = append(rows, []interface{}{g.label, e.Text, e.Count})
		}
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
