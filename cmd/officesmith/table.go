// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderTable draws rows with rounded borders for terminals and plain
// ASCII borders otherwise. Short rows are padded by go-pretty.
func renderTable(w io.Writer, headers []string, rows [][]string, aligns []columnAlignment) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	if isTerminal(w) {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(tableRow(headers))
	for _, row := range rows {
		tw.AppendRow(tableRow(row))
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range configs {
		align := alignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align.text(), AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func tableRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func (a columnAlignment) text() text.Align {
	if a == alignRight {
		return text.AlignRight
	}
	return text.AlignLeft
}
