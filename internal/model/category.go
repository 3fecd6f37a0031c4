package model

// Category is static reference data grouping learning paths. Admin-created,
// rarely mutated; deletion is intentionally not exposed.
// swagger:model Category
type Category struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;unique;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Paths []LearningPath `gorm:"foreignKey:CategoryID" json:"paths,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
