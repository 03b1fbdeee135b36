package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// Колонки листа с вопросами
const (
	ColumnQuestion   = "question"
	ColumnAnswer     = "answer"
	ColumnCategory   = "category"
	ColumnDifficulty = "difficulty"
)

var requiredColumns = []string{ColumnQuestion, ColumnAnswer, ColumnCategory, ColumnDifficulty}

// ErrEmptyWorkbook возвращается, если в книге нет листов или строки заголовка
var ErrEmptyWorkbook = errors.New("workbook has no header row")

// Row - строка листа в исходном виде
type Row struct {
	// Number - номер строки на листе (заголовок - строка 1)
	Number     int
	Question   string
	Answer     string
	Category   string
	Difficulty string
}

// ReadQuestions читает первый лист книги .xlsx.
// Первая строка - заголовок с колонками question, answer, category, difficulty (порядок любой).
func ReadQuestions(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	cell := func(values []string, col string) string {
		i := index[col]
		if i >= len(values) {
			return ""
		}
		return strings.TrimSpace(values[i])
	}

	result := make([]Row, 0, len(rows)-1)
	for i, values := range rows[1:] {
		if isBlank(values) {
			continue
		}
		result = append(result, Row{
			Number:     i + 2,
			Question:   cell(values, ColumnQuestion),
			Answer:     cell(values, ColumnAnswer),
			Category:   cell(values, ColumnCategory),
			Difficulty: cell(values, ColumnDifficulty),
		})
	}
	return result, nil
}

// WriteQuestions выгружает вопросы в .xlsx в формате, который понимает ReadQuestions.
// Категория записывается названием, если оно известно, иначе ID.
func WriteQuestions(w io.Writer, questions []entity.Question, categories map[uint]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := []interface{}{ColumnQuestion, ColumnAnswer, ColumnCategory, ColumnDifficulty}
	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, q := range questions {
		var category interface{} = q.CategoryID
		if name, ok := categories[q.CategoryID]; ok {
			category = name
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := sw.SetRow(cell, []interface{}{q.Question, q.Answer, category, q.Difficulty}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
