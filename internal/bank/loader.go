package bank

import (
	"fmt"
	"strings"

	"quizsheet/internal/domain"
	"quizsheet/internal/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Spreadsheet columns the loader requires, matched case-insensitively
// against the header row.
var requiredColumns = []string{
	"question",
	"option_a",
	"option_b",
	"option_c",
	"option_d",
	"answer",
	"explanation",
}

var optionColumns = []string{"option_a", "option_b", "option_c", "option_d"}

// Load reads the question bank from an xlsx spreadsheet. The first row is
// the header; rows missing the question text or an option are logged and
// skipped rather than propagated. The answer column is kept verbatim and
// normalized later, at grading time. An unreadable file, a missing column,
// or a sheet with no usable rows is an error; callers treat that as fatal
// since a quiz service without questions cannot serve anything.
func Load(path string) (*domain.QuestionBank, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open quiz file %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("quiz file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("quiz file %s has no data rows", path)
	}

	headerIndex, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	appLogger := logger.Get()
	questions := make([]domain.Question, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		q := domain.Question{
			Text:        cell(row, headerIndex["question"]),
			RawAnswer:   cell(row, headerIndex["answer"]),
			Explanation: cell(row, headerIndex["explanation"]),
		}
		for i, col := range optionColumns {
			q.Options[i] = stripOptionPrefix(cell(row, headerIndex[col]))
		}

		if err := q.Validate(); err != nil {
			appLogger.Warn("Skipping invalid question row",
				zap.Int("row", rowNum+2),
				zap.Error(err),
			)
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz file %s contains no valid questions", path)
	}

	appLogger.Info("Question bank loaded",
		zap.String("file", path),
		zap.Int("questions", len(questions)),
		zap.Int("skipped", len(rows)-1-len(questions)),
	)
	return domain.NewQuestionBank(questions), nil
}

// mapHeader builds a lowercased header name -> column index map and checks
// every required column is present.
func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("quiz file is missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

// cell returns the trimmed value at column i, tolerating short rows: the
// xlsx reader drops trailing empty cells.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// stripOptionPrefix removes a leading "a."-style marker from option text.
// Only option cells are stripped; the answer column keeps its own prefix
// for the normalizer to interpret.
func stripOptionPrefix(s string) string {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[1] != '.' {
		return t
	}
	switch c := t[0]; {
	case c >= 'a' && c <= 'd', c >= 'A' && c <= 'D':
		return strings.TrimSpace(t[2:])
	}
	return t
}
