package model

import "time"

// UserProgress is the single row tracking one user's advancement through
// one path. CompletedNodeIDs has set semantics (no duplicates, order not
// meaningful). Node deletion does not scrub the list; percentages are
// recomputed against the live node count, so a stale id can only linger
// until the next reset.
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID           uint       `gorm:"uniqueIndex:idx_user_path;not null" json:"userId"`
	PathID           uint       `gorm:"uniqueIndex:idx_user_path;not null" json:"pathId"`
	CompletedNodeIDs []uint     `gorm:"serializer:json;type:json" json:"completedNodes"`
	CurrentNodeID    *uint      `json:"currentNodeId"`
	StartedAt        time.Time  `json:"startedAt"`
	LastAccessedAt   time.Time  `json:"lastAccessedAt"`
	CompletedAt      *time.Time `json:"completedAt"`

	Path *LearningPath `gorm:"foreignKey:PathID" json:"path,omitempty"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// PathProgress is the computed view returned to clients: the raw record
// plus counts derived from the live node table.
// swagger:model PathProgress
type PathProgress struct {
	UserProgress
	TotalNodes          int `json:"totalNodes"`
	CompletedNodesCount int `json:"completedNodesCount"`
	ProgressPercentage  int `json:"progressPercentage"`
}

// UserStats aggregates a user's progress records across all paths.
// swagger:model UserStats
type UserStats struct {
	TotalPaths      int `json:"totalPaths"`
	CompletedPaths  int `json:"completedPaths"`
	InProgressPaths int `json:"inProgressPaths"`
	TotalNodes      int `json:"totalNodes"`
	CompletedNodes  int `json:"completedNodes"`
	OverallProgress int `json:"overallProgress"`
}
