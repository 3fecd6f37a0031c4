package model

// Question belongs to exactly one QUIZ content and is replaced wholesale
// when the content is updated with a questions payload.
// swagger:model Question
type Question struct {
	BaseModel
	ContentID     uint     `gorm:"index;not null" json:"contentId"`
	Question      string   `gorm:"type:text;not null" json:"question"`
	Options       []string `gorm:"serializer:json;type:json" json:"options"`
	CorrectAnswer int      `gorm:"not null" json:"correctAnswer"`
	Explanation   *string  `gorm:"type:text" json:"explanation"`
}

func (Question) TableName() string {
	return "questions"
}
