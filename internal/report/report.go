// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report renders ping results as a terminal table or an Excel
// workbook.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/xuri/excelize/v2"

	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// SheetName is the worksheet written by [WriteXLSX].
const SheetName = "Ping"

// Header lists the report columns.
var Header = []string{"Address", "Status", "Format", "Version", "MOTD", "Players", "Latency (ms)", "Error"}

// Row flattens a result into report columns. The MOTD is stripped of
// style codes.
func Row(r slp.Result) []string {
	if r.Error != nil {
		return []string{r.Address.String(), "DOWN", "-", "-", "-", "-", "-", r.Error.Error()}
	}

	version := r.Response.Version
	if version == "" {
		version = "-"
	}

	return []string{
		r.Address.String(),
		"UP",
		r.Response.Format.String(),
		version,
		slp.TranslateColorStyle(r.Response.MOTD, slp.Plain{}),
		fmt.Sprintf("%d/%d", r.Response.Online, r.Response.Max),
		strconv.FormatInt(r.Latency.Milliseconds(), 10),
		"",
	}
}

// WriteTable writes results to w as a bordered table.
func WriteTable(w io.Writer, results []slp.Result) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(Header)
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)

	for _, r := range results {
		tw.Append(Row(r))
	}

	tw.Render()
}

// WriteXLSX saves results to an Excel workbook at path, one row per
// result under a bold header.
func WriteXLSX(path string, results []slp.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report: header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("report: header style: %w", err)
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		cols := Row(r)
		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = c
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("report: write row %d: %w", i+2, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "mcslp ping report",
		Creator: "mcslp",
		Created: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("report: document properties: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}
