package entity

// Category представляет категорию вопросов (справочные данные).
// При удалении категории удаляются и все ее вопросы.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryMap преобразует список категорий в отображение id -> type,
// в котором категории отдаются клиенту
func CategoryMap(categories []Category) map[uint]string {
	result := make(map[uint]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}
	return result
}
