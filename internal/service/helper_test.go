package service

import (
	"testing"

	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// an in-memory sqlite database exists per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB) *model.Category {
	t.Helper()
	category := &model.Category{Name: "Backend", Slug: "backend"}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedPath(t *testing.T, db *gorm.DB, categoryID uint) *model.LearningPath {
	t.Helper()
	path := &model.LearningPath{
		Title:      "Go from scratch",
		CategoryID: categoryID,
		Difficulty: model.Beginner,
	}
	require.NoError(t, db.Create(path).Error)
	return path
}

func seedNode(t *testing.T, db *gorm.DB, pathID uint, title string, order int, parentID *uint) *model.Node {
	t.Helper()
	node := &model.Node{
		Title:    title,
		Order:    order,
		PathID:   pathID,
		ParentID: parentID,
	}
	require.NoError(t, db.Create(node).Error)
	return node
}

func newNodeService(db *gorm.DB) *NodeService {
	return NewNodeService(repository.NewNodeRepository(db), repository.NewPathRepository(db), nil, 0)
}

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewNodeRepository(db),
		repository.NewPathRepository(db),
	)
}

func newContentService(db *gorm.DB) *ContentService {
	return NewContentService(repository.NewContentRepository(db))
}

func newQuestionService(db *gorm.DB) *QuestionService {
	return NewQuestionService(repository.NewQuestionRepository(db), repository.NewContentRepository(db))
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), repository.NewProgressRepository(db))
}

func newPathService(db *gorm.DB) *PathService {
	return NewPathService(repository.NewPathRepository(db), repository.NewCategoryRepository(db), repository.NewProgressRepository(db))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
