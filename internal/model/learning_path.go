package model

type Difficulty string

const (
	Beginner     Difficulty = "BEGINNER"
	Intermediate Difficulty = "INTERMEDIATE"
	Advanced     Difficulty = "ADVANCED"
)

// ValidDifficulty reports whether s is a known difficulty level.
func ValidDifficulty(s string) bool {
	switch Difficulty(s) {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// LearningPath is the top-level enrollable course. Order drives the manual
// sort on listing pages and is unique only by convention.
// swagger:model LearningPath
type LearningPath struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	CategoryID  uint       `gorm:"index;not null" json:"categoryId"`
	Difficulty  Difficulty `gorm:"size:20;default:'BEGINNER'" json:"difficulty"`
	Order       int        `gorm:"default:0" json:"order"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Nodes    []Node    `gorm:"foreignKey:PathID" json:"nodes,omitempty"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}
