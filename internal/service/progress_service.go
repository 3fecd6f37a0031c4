package service

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"
	"edupath_backend/pkg/monitoring"
	"math"
	"time"

	"gorm.io/gorm"
)

// ProgressService drives the per-(user, path) state machine:
// NotStarted -> InProgress -> Completed, with Reset keeping the record and
// Abandon deleting it.
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	NodeRepo     *repository.NodeRepository
	PathRepo     *repository.PathRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, nodeRepo *repository.NodeRepository, pathRepo *repository.PathRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		NodeRepo:     nodeRepo,
		PathRepo:     pathRepo,
	}
}

// Start is idempotent: an existing record is returned unchanged. A new
// record begins at the path's lowest-order node, or nil for an empty path.
func (s *ProgressService) Start(userID, pathID uint) (*model.UserProgress, error) {
	existing, err := s.ProgressRepo.FindByUserAndPath(userID, pathID)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if _, err := s.PathRepo.FindByID(pathID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	var currentNodeID *uint
	if first, err := s.NodeRepo.FindFirstByPath(pathID); err == nil {
		currentNodeID = &first.ID
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	now := time.Now()
	progress := &model.UserProgress{
		UserID:           userID,
		PathID:           pathID,
		CompletedNodeIDs: []uint{},
		CurrentNodeID:    currentNodeID,
		StartedAt:        now,
		LastAccessedAt:   now,
	}
	if err := s.ProgressRepo.Create(progress); err != nil {
		return nil, err
	}

	monitoring.ProgressUpdates.WithLabelValues("start").Inc()
	return progress, nil
}

// CompleteNode records nodeID as done. It requires a prior Start, is a
// no-op for an already-completed node, advances the cursor to the next
// node by order (unchanged when the completed node was the last one), and
// stamps CompletedAt once the completed count reaches the live node count.
func (s *ProgressService) CompleteNode(userID, pathID, nodeID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndPath(userID, pathID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrProgressNotFound
		}
		return nil, err
	}

	for _, id := range progress.CompletedNodeIDs {
		if id == nodeID {
			return progress, nil
		}
	}

	progress.CompletedNodeIDs = append(progress.CompletedNodeIDs, nodeID)

	completedOrder := 0
	if node, err := s.NodeRepo.FindByID(nodeID); err == nil {
		completedOrder = node.Order
	}
	if next, err := s.NodeRepo.FindNextByPath(pathID, completedOrder); err == nil {
		progress.CurrentNodeID = &next.ID
	}

	total, err := s.NodeRepo.CountByPath(pathID)
	if err != nil {
		return nil, err
	}
	if int64(len(progress.CompletedNodeIDs)) >= total {
		now := time.Now()
		progress.CompletedAt = &now
	} else {
		progress.CompletedAt = nil
	}
	progress.LastAccessedAt = time.Now()

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}

	monitoring.ProgressUpdates.WithLabelValues("complete").Inc()
	return progress, nil
}

// Reset zeroes the record but keeps the row.
func (s *ProgressService) Reset(userID, pathID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndPath(userID, pathID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrProgressNotFound
		}
		return nil, err
	}

	var currentNodeID *uint
	if first, err := s.NodeRepo.FindFirstByPath(pathID); err == nil {
		currentNodeID = &first.ID
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	progress.CompletedNodeIDs = []uint{}
	progress.CurrentNodeID = currentNodeID
	progress.CompletedAt = nil
	progress.LastAccessedAt = time.Now()

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}

	monitoring.ProgressUpdates.WithLabelValues("reset").Inc()
	return progress, nil
}

// Abandon deletes the record outright, returning the user to NotStarted.
func (s *ProgressService) Abandon(userID, pathID uint) error {
	if _, err := s.ProgressRepo.FindByUserAndPath(userID, pathID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrProgressNotFound
		}
		return err
	}
	if err := s.ProgressRepo.Delete(userID, pathID); err != nil {
		return err
	}
	monitoring.ProgressUpdates.WithLabelValues("abandon").Inc()
	return nil
}

// GetPathProgress returns the record plus counts computed against the
// live (flat, not tree-aware) node count. A path with 0 nodes is 0%.
func (s *ProgressService) GetPathProgress(userID, pathID uint) (*model.PathProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndPath(userID, pathID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrProgressNotFound
		}
		return nil, err
	}

	total, err := s.NodeRepo.CountByPath(pathID)
	if err != nil {
		return nil, err
	}

	completed := len(progress.CompletedNodeIDs)
	return &model.PathProgress{
		UserProgress:        *progress,
		TotalNodes:          int(total),
		CompletedNodesCount: completed,
		ProgressPercentage:  percentage(completed, int(total)),
	}, nil
}

func (s *ProgressService) GetUserProgress(userID uint) ([]model.UserProgress, error) {
	return s.ProgressRepo.FindByUser(userID)
}

// GetUserStats aggregates across all of the user's progress records.
func (s *ProgressService) GetUserStats(userID uint) (*model.UserStats, error) {
	records, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &model.UserStats{TotalPaths: len(records)}
	for _, rec := range records {
		if rec.CompletedAt != nil {
			stats.CompletedPaths++
		}
		total, err := s.NodeRepo.CountByPath(rec.PathID)
		if err != nil {
			return nil, err
		}
		stats.TotalNodes += int(total)
		stats.CompletedNodes += len(rec.CompletedNodeIDs)
	}
	stats.InProgressPaths = stats.TotalPaths - stats.CompletedPaths
	stats.OverallProgress = percentage(stats.CompletedNodes, stats.TotalNodes)
	return stats, nil
}

func percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
