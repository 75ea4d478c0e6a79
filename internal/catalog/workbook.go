package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetInfo        = "info"
	SheetQuestions   = "questions"
	SheetDescriptive = "descriptive"
)

// OptionSeparator splits the options cell of the questions sheet.
const OptionSeparator = "|"

// LoadWorkbook reads a catalog from an .xlsx file.
//
// Layout:
//   - info: two columns, key and value (id, title, instructor, examDate, examTime)
//   - questions: header row, then id, question, options, answer, hint
//   - descriptive (optional): header row, then id, question, answer
func LoadWorkbook(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	c, err := readWorkbook(f)
	if err != nil {
		return nil, err
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func readWorkbook(f *excelize.File) (*Catalog, error) {
	var c Catalog

	infoRows, err := f.GetRows(SheetInfo)
	if err != nil {
		return nil, fmt.Errorf("read %s sheet: %w", SheetInfo, err)
	}
	for _, row := range infoRows {
		if len(row) < 2 {
			continue
		}
		val := strings.TrimSpace(row[1])
		switch strings.ToLower(strings.TrimSpace(row[0])) {
		case "id":
			c.Info.ID = val
		case "title":
			c.Info.Title = val
		case "instructor":
			c.Info.Instructor = val
		case "examdate":
			c.Info.ExamDate = val
		case "examtime":
			c.Info.ExamTime = val
		}
	}

	qRows, err := f.GetRows(SheetQuestions)
	if err != nil {
		return nil, fmt.Errorf("read %s sheet: %w", SheetQuestions, err)
	}
	for i, row := range dataRows(qRows) {
		if len(row) < 4 {
			return nil, fmt.Errorf("%s row %d: want at least 4 columns, got %d", SheetQuestions, i+2, len(row))
		}
		q := Question{
			ID:     strings.TrimSpace(row[0]),
			Prompt: strings.TrimSpace(row[1]),
			Answer: strings.TrimSpace(row[3]),
		}
		q.Options = splitOptions(row[2])
		if len(row) > 4 {
			q.Hint = strings.TrimSpace(row[4])
		}
		c.Questions = append(c.Questions, q)
	}

	// The descriptive sheet is optional.
	if idx, _ := f.GetSheetIndex(SheetDescriptive); idx >= 0 {
		dRows, err := f.GetRows(SheetDescriptive)
		if err != nil {
			return nil, fmt.Errorf("read %s sheet: %w", SheetDescriptive, err)
		}
		for i, row := range dataRows(dRows) {
			if len(row) < 3 {
				return nil, fmt.Errorf("%s row %d: want 3 columns, got %d", SheetDescriptive, i+2, len(row))
			}
			c.Descriptive = append(c.Descriptive, DescriptiveQuestion{
				ID:     strings.TrimSpace(row[0]),
				Prompt: strings.TrimSpace(row[1]),
				Answer: strings.TrimSpace(row[2]),
			})
		}
	}

	return &c, nil
}

// dataRows drops the header row and blank rows.
func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	var out [][]string
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

func splitOptions(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, OptionSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
