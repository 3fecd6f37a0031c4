package service

import (
	"context"
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"
	"edupath_backend/pkg/logger"
	"edupath_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type NodeService struct {
	NodeRepo *repository.NodeRepository
	PathRepo *repository.PathRepository
	Redis    *redis.Client
	TreeTTL  time.Duration
}

func NewNodeService(nodeRepo *repository.NodeRepository, pathRepo *repository.PathRepository, rdb *redis.Client, treeTTL time.Duration) *NodeService {
	if treeTTL <= 0 {
		treeTTL = 5 * time.Minute
	}
	return &NodeService{
		NodeRepo: nodeRepo,
		PathRepo: pathRepo,
		Redis:    rdb,
		TreeTTL:  treeTTL,
	}
}

type CreateNodeInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	PathID      uint   `json:"pathId" binding:"required"`
	ParentID    *uint  `json:"parentId"`
	ContentID   *uint  `json:"contentId"`
}

type UpdateNodeInput struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Order        *int    `json:"order"`
	ParentID     *uint   `json:"parentId"`
	ContentID    *uint   `json:"contentId"`
	ClearParent  bool    `json:"clearParent"`
	ClearContent bool    `json:"clearContent"`
}

func (s *NodeService) GetAll(pathID uint) ([]model.Node, error) {
	return s.NodeRepo.FindByPath(pathID)
}

func (s *NodeService) GetByID(id uint) (*model.Node, error) {
	node, err := s.NodeRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrNodeNotFound
	}
	return node, err
}

func (s *NodeService) Create(input CreateNodeInput) (*model.Node, error) {
	if _, err := s.PathRepo.FindByID(input.PathID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	if input.ParentID != nil {
		if err := s.validateParent(input.PathID, 0, *input.ParentID); err != nil {
			return nil, err
		}
	}

	node := &model.Node{
		Title:       input.Title,
		Description: input.Description,
		Order:       input.Order,
		PathID:      input.PathID,
		ParentID:    input.ParentID,
		ContentID:   input.ContentID,
	}
	if err := s.NodeRepo.Create(node); err != nil {
		return nil, err
	}

	s.invalidateTree(input.PathID)
	return s.NodeRepo.FindByID(node.ID)
}

func (s *NodeService) Update(id uint, input UpdateNodeInput) (*model.Node, error) {
	node, err := s.NodeRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrNodeNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		node.Title = *input.Title
	}
	if input.Description != nil {
		node.Description = *input.Description
	}
	if input.Order != nil {
		node.Order = *input.Order
	}
	if input.ClearParent {
		node.ParentID = nil
	} else if input.ParentID != nil {
		if err := s.validateParent(node.PathID, node.ID, *input.ParentID); err != nil {
			return nil, err
		}
		node.ParentID = input.ParentID
	}
	if input.ClearContent {
		node.ContentID = nil
	} else if input.ContentID != nil {
		node.ContentID = input.ContentID
	}

	// Preloaded associations must not be re-saved alongside the row.
	node.Children = nil
	node.Parent = nil
	node.Content = nil

	if err := s.NodeRepo.Update(node); err != nil {
		return nil, err
	}

	s.invalidateTree(node.PathID)
	return s.NodeRepo.FindByID(node.ID)
}

// validateParent checks that the parent exists, lives in the same path,
// and that making it the parent of nodeID would not close a cycle.
// nodeID is 0 on create (a new node cannot be its own ancestor).
func (s *NodeService) validateParent(pathID, nodeID, parentID uint) error {
	if nodeID != 0 && parentID == nodeID {
		return util.NewValidationError("a node cannot be its own parent")
	}

	visited := map[uint]bool{}
	current := parentID
	for current != 0 {
		if visited[current] {
			return util.NewValidationError("parent chain contains a cycle")
		}
		visited[current] = true

		parent, err := s.NodeRepo.FindByID(current)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return util.NewValidationError("parent node does not exist")
			}
			return err
		}
		if parent.PathID != pathID {
			return util.NewValidationError("parent node belongs to a different path")
		}
		if nodeID != 0 && parent.ID == nodeID {
			return util.NewValidationError("node cannot be moved under its own descendant")
		}
		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}
	return nil
}

// GetTree reassembles the path's flat node rows into a forest. Every node
// is keyed into a map, children are grouped under their parent, roots are
// the nil-parent nodes, and every children slice is sorted by order.
// Nodes whose ancestor chain never reaches a root (dangling or cyclic
// parent references) are omitted from the result.
func (s *NodeService) GetTree(pathID uint) ([]*model.Node, error) {
	if tree, ok := s.cachedTree(pathID); ok {
		return tree, nil
	}

	nodes, err := s.NodeRepo.FindByPath(pathID)
	if err != nil {
		return nil, err
	}

	nodeMap := make(map[uint]*model.Node, len(nodes))
	for i := range nodes {
		n := nodes[i]
		n.Children = []model.Node{}
		nodeMap[n.ID] = &n
	}

	var roots []*model.Node
	for _, n := range nodeMap {
		if n.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		if parent, ok := nodeMap[*n.ParentID]; ok {
			parent.Children = append(parent.Children, *n)
		}
	}

	// Children were appended by map iteration order; rebuild each level
	// sorted. Attaching copies above means grandchildren live on the map
	// entries, so resolve through the map while sorting.
	for _, root := range roots {
		sortChildren(root, nodeMap)
	}
	sortRoots(roots)

	s.storeTree(pathID, roots)
	return roots, nil
}

func sortRoots(roots []*model.Node) {
	for i := 1; i < len(roots); i++ {
		for j := i; j > 0 && roots[j].Order < roots[j-1].Order; j-- {
			roots[j], roots[j-1] = roots[j-1], roots[j]
		}
	}
}

// sortChildren rewrites n.Children from the fully-linked map entries and
// sorts every level by order, walking with a visited set so a cyclic
// parent chain cannot loop.
func sortChildren(n *model.Node, nodeMap map[uint]*model.Node) {
	visited := map[uint]bool{n.ID: true}
	var walk func(node *model.Node)
	walk = func(node *model.Node) {
		children := node.Children
		node.Children = make([]model.Node, 0, len(children))
		for i := range children {
			child, ok := nodeMap[children[i].ID]
			if !ok || visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			walk(child)
			node.Children = append(node.Children, *child)
		}
		for i := 1; i < len(node.Children); i++ {
			for j := i; j > 0 && node.Children[j].Order < node.Children[j-1].Order; j-- {
				node.Children[j], node.Children[j-1] = node.Children[j-1], node.Children[j]
			}
		}
	}
	walk(n)
}

func (s *NodeService) Reorder(updates []model.OrderUpdate) error {
	if len(updates) == 0 {
		return util.NewValidationError("no reorder updates provided")
	}
	if err := s.NodeRepo.Reorder(updates); err != nil {
		return err
	}
	// The touched paths are unknown without extra reads; drop all trees.
	s.invalidateAllTrees()
	return nil
}

func (s *NodeService) Delete(id uint) error {
	node, err := s.NodeRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrNodeNotFound
		}
		return err
	}
	if err := s.NodeRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateTree(node.PathID)
	return nil
}

const treeCachePrefix = "node_tree:"

func (s *NodeService) cachedTree(pathID uint) ([]*model.Node, bool) {
	if s.Redis == nil {
		return nil, false
	}
	raw, err := s.Redis.Get(context.Background(), fmt.Sprintf("%s%d", treeCachePrefix, pathID)).Bytes()
	if err != nil {
		monitoring.TreeCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	var tree []*model.Node
	if err := json.Unmarshal(raw, &tree); err != nil {
		monitoring.TreeCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	monitoring.TreeCacheLookups.WithLabelValues("hit").Inc()
	return tree, true
}

func (s *NodeService) storeTree(pathID uint, tree []*model.Node) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), fmt.Sprintf("%s%d", treeCachePrefix, pathID), raw, s.TreeTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache node tree", zap.Uint("pathId", pathID), zap.Error(err))
	}
}

func (s *NodeService) invalidateTree(pathID uint) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), fmt.Sprintf("%s%d", treeCachePrefix, pathID))
}

func (s *NodeService) invalidateAllTrees() {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	keys, err := s.Redis.Keys(ctx, treeCachePrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	s.Redis.Del(ctx, keys...)
}
