package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexibleInt принимает JSON число, числовую строку или null.
// Нераспознанное значение декодируется в 0 и дальше считается незаполненным.
type FlexibleInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	*f = FlexibleInt(parseLooseInt(data))
	return nil
}

// Uint возвращает значение как идентификатор (отрицательные -> 0)
func (f FlexibleInt) Uint() uint {
	if f < 0 {
		return 0
	}
	return uint(f)
}

// QuizCategory принимает null, число, числовую строку или объект {"id": N, "type": "..."}.
// Значение 0 означает "все категории".
type QuizCategory struct {
	ID   uint
	Type string
}

// UnmarshalJSON реализует json.Unmarshaler
func (q *QuizCategory) UnmarshalJSON(data []byte) error {
	*q = QuizCategory{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj struct {
			ID   FlexibleInt `json:"id"`
			Type string      `json:"type"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		q.ID = obj.ID.Uint()
		q.Type = obj.Type
		return nil
	}

	q.ID = FlexibleInt(parseLooseInt(trimmed)).Uint()
	return nil
}

// CategoryID возвращает фильтр категории (nil - все категории)
func (q *QuizCategory) CategoryID() *uint {
	if q == nil || q.ID == 0 {
		return nil
	}
	id := q.ID
	return &id
}

// parseLooseInt разбирает JSON число или строку с числом; все остальное -> 0
func parseLooseInt(data []byte) int {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		raw = strings.TrimSpace(s)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) < math.MaxInt32 {
		return int(f)
	}
	return 0
}
