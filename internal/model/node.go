package model

// Node is one entry in a path's outline. Nodes form a forest per path,
// rooted at ParentID == nil; Order is meaningful only within a sibling
// group. A node may point at one Content item (leaf) or carry children
// (container); the schema does not force the distinction.
// swagger:model Node
type Node struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"not null;default:0" json:"order"`
	PathID      uint   `gorm:"index;not null" json:"pathId"`
	ParentID    *uint  `gorm:"index" json:"parentId"`
	ContentID   *uint  `gorm:"index" json:"contentId"`

	Parent   *Node    `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []Node   `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"children"`
	Content  *Content `gorm:"foreignKey:ContentID" json:"content,omitempty"`
}

func (Node) TableName() string {
	return "nodes"
}

// OrderUpdate is one entry of a reorder request, shared by node and path
// reordering.
type OrderUpdate struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}
