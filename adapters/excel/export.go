package excel

import (
	"io"

	"mindwell/models"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"ID", "Title", "Content", "Word Count", "Voice Transcribed", "Created At", "Updated At",
}

// WriteEntries writes journal entries as an XLSX workbook to w, one entry
// per row, newest-first in the order given
func WriteEntries(w io.Writer, entries []models.JournalEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Entries"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, entry := range entries {
		title := ""
		if entry.Title != nil {
			title = *entry.Title
		}
		row := []interface{}{
			entry.ID.String(),
			title,
			entry.Content,
			entry.WordCount,
			entry.IsVoiceTranscribed,
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
