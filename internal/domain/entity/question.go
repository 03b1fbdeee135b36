package entity

// Границы допустимой сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины.
// Вопрос не редактируется на месте: только создание и удаление.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	CategoryID uint   `gorm:"column:category_id;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}
