package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

type NodeRepository struct {
	DB *gorm.DB
}

func NewNodeRepository(db *gorm.DB) *NodeRepository {
	return &NodeRepository{DB: db}
}

func (r *NodeRepository) FindByPath(pathID uint) ([]model.Node, error) {
	var nodes []model.Node
	err := r.DB.Where("path_id = ?", pathID).
		Preload("Content").
		Order("`order` ASC").
		Find(&nodes).Error
	return nodes, err
}

func (r *NodeRepository) FindByID(id uint) (*model.Node, error) {
	var node model.Node
	err := r.DB.
		Preload("Content").
		Preload("Content.Questions").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("`order` ASC")
		}).
		Preload("Parent").
		First(&node, id).Error
	return &node, err
}

// FindFirstByPath returns the path's lowest-order node, or
// gorm.ErrRecordNotFound when the path has no nodes.
func (r *NodeRepository) FindFirstByPath(pathID uint) (*model.Node, error) {
	var node model.Node
	err := r.DB.Where("path_id = ?", pathID).
		Order("`order` ASC").
		First(&node).Error
	return &node, err
}

// FindNextByPath returns the next node by order strictly greater than
// afterOrder within the path.
func (r *NodeRepository) FindNextByPath(pathID uint, afterOrder int) (*model.Node, error) {
	var node model.Node
	err := r.DB.Where("path_id = ? AND `order` > ?", pathID, afterOrder).
		Order("`order` ASC").
		First(&node).Error
	return &node, err
}

func (r *NodeRepository) CountByPath(pathID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Node{}).Where("path_id = ?", pathID).Count(&count).Error
	return count, err
}

func (r *NodeRepository) Create(node *model.Node) error {
	return r.DB.Create(node).Error
}

func (r *NodeRepository) Update(node *model.Node) error {
	return r.DB.Save(node).Error
}

// Reorder applies all order updates inside one transaction, all-or-nothing.
func (r *NodeRepository) Reorder(updates []model.OrderUpdate) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&model.Node{}).
				Where("id = ?", u.ID).
				Update("order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete hard-deletes the node and its whole subtree in one transaction.
// Soft deleting here would leave descendants behind as live rows that
// flat reads and progress totals still see. The walk keeps a seen set so
// cyclic parent references in pre-existing data cannot loop.
func (r *NodeRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		seen := map[uint]bool{id: true}
		ids := []uint{id}
		frontier := []uint{id}
		for len(frontier) > 0 {
			var children []uint
			if err := tx.Model(&model.Node{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			frontier = frontier[:0]
			for _, childID := range children {
				if seen[childID] {
					continue
				}
				seen[childID] = true
				ids = append(ids, childID)
				frontier = append(frontier, childID)
			}
		}
		return tx.Unscoped().Delete(&model.Node{}, ids).Error
	})
}
