package model

type ContentType string

const (
	ContentVideo    ContentType = "VIDEO"
	ContentArticle  ContentType = "ARTICLE"
	ContentQuiz     ContentType = "QUIZ"
	ContentExercise ContentType = "EXERCISE"
)

// ValidContentType reports whether s is a known content type.
func ValidContentType(s string) bool {
	switch ContentType(s) {
	case ContentVideo, ContentArticle, ContentQuiz, ContentExercise:
		return true
	}
	return false
}

// Content is the polymorphic lesson payload a node points to. Only the
// fields relevant to Type are meaningful; writes null the rest.
// swagger:model Content
type Content struct {
	BaseModel
	Type        ContentType `gorm:"size:20;not null" json:"type"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description *string     `gorm:"type:text" json:"description"`
	VideoURL    *string     `gorm:"size:500" json:"videoUrl"`
	Duration    *int        `json:"duration"`
	ArticleText *string     `gorm:"type:longtext" json:"articleText"`

	Questions []Question `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`

	// Node is the outline entry referencing this content, resolved on
	// single-item reads. Not a database column.
	Node *Node `gorm:"-" json:"node,omitempty"`
}

func (Content) TableName() string {
	return "contents"
}
