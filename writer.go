package ssvfill

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteSheet writes rows as a workbook with the single sheet Sheet3. The
// header row is filled with headerFill unless it is empty. Nothing is written
// to w unless the whole workbook was built.
func WriteSheet(rows []OutputRow, w io.Writer, headerFill string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), OutputSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(OutputSheet)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	styleID := 0
	if headerFill != "" {
		styleID, err = f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		})
		if err != nil {
			return fmt.Errorf("header style: %w", err)
		}
	}
	header := make([]any, len(Columns))
	for i, name := range Columns {
		header[i] = excelize.Cell{StyleID: styleID, Value: name}
	}
	if err := sw.SetRow(CellName("", 0, 0), header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		if err := sw.SetRow(CellName("", i+1, 0), row.Values()); err != nil {
			return fmt.Errorf("write row %d (%s): %w", i+2, row.Identifier, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}
