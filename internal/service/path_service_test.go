package service

import (
	"testing"

	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePathAppendsToOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := newPathService(db)
	category := seedCategory(t, db)

	first, err := svc.Create(CreatePathInput{Title: "one", CategoryID: category.ID})
	require.NoError(t, err)
	second, err := svc.Create(CreatePathInput{Title: "two", CategoryID: category.ID})
	require.NoError(t, err)

	assert.Equal(t, first.Order+1, second.Order)
	assert.Equal(t, model.Beginner, first.Difficulty)
}

func TestCreatePathValidations(t *testing.T) {
	db := newTestDB(t)
	svc := newPathService(db)
	category := seedCategory(t, db)

	_, err := svc.Create(CreatePathInput{Title: "x", CategoryID: 999})
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)

	_, err = svc.Create(CreatePathInput{Title: "x", CategoryID: category.ID, Difficulty: "IMPOSSIBLE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown difficulty")
}

func TestGetAllFiltersAndPaginates(t *testing.T) {
	db := newTestDB(t)
	svc := newPathService(db)
	category := seedCategory(t, db)

	_, err := svc.Create(CreatePathInput{Title: "Go basics", CategoryID: category.ID, Difficulty: "BEGINNER"})
	require.NoError(t, err)
	_, err = svc.Create(CreatePathInput{Title: "Distributed systems", CategoryID: category.ID, Difficulty: "ADVANCED"})
	require.NoError(t, err)

	paths, total, err := svc.GetAll(repository.PathFilter{Difficulty: "ADVANCED"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, paths, 1)
	assert.Equal(t, "Distributed systems", paths[0].Title)

	paths, total, err = svc.GetAll(repository.PathFilter{Search: "basics"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, paths, 1)
	assert.Equal(t, "Go basics", paths[0].Title)

	_, _, err = svc.GetAll(repository.PathFilter{Difficulty: "NOPE"}, 1, 10)
	require.Error(t, err)
}

func TestReorderPaths(t *testing.T) {
	db := newTestDB(t)
	svc := newPathService(db)
	category := seedCategory(t, db)

	first, err := svc.Create(CreatePathInput{Title: "one", CategoryID: category.ID})
	require.NoError(t, err)
	second, err := svc.Create(CreatePathInput{Title: "two", CategoryID: category.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Reorder([]model.OrderUpdate{
		{ID: first.ID, Order: 2},
		{ID: second.ID, Order: 1},
	}))

	paths, _, err := svc.GetAll(repository.PathFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, second.ID, paths[0].ID)
	assert.Equal(t, first.ID, paths[1].ID)
}

func TestUpdatePathValidatesCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newPathService(db)
	category := seedCategory(t, db)

	path, err := svc.Create(CreatePathInput{Title: "one", CategoryID: category.ID})
	require.NoError(t, err)

	_, err = svc.Update(path.ID, UpdatePathInput{CategoryID: uintPtr(999)})
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)

	updated, err := svc.Update(path.ID, UpdatePathInput{Difficulty: strPtr("ADVANCED")})
	require.NoError(t, err)
	assert.Equal(t, model.Advanced, updated.Difficulty)
}

func TestDeletePath(t *testing.T) {
	db := newTestDB(t)
	svc := newPathService(db)
	category := seedCategory(t, db)

	path, err := svc.Create(CreatePathInput{Title: "one", CategoryID: category.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(path.ID))
	_, err = svc.GetByID(path.ID)
	assert.ErrorIs(t, err, util.ErrPathNotFound)

	assert.ErrorIs(t, svc.Delete(999), util.ErrPathNotFound)
}

func TestDeletePathRemovesNodes(t *testing.T) {
	db := newTestDB(t)
	svc := newPathService(db)
	category := seedCategory(t, db)

	path, err := svc.Create(CreatePathInput{Title: "one", CategoryID: category.ID})
	require.NoError(t, err)
	root := seedNode(t, db, path.ID, "Root", 1, nil)
	seedNode(t, db, path.ID, "Child", 1, &root.ID)

	require.NoError(t, svc.Delete(path.ID))

	var remaining int64
	require.NoError(t, db.Unscoped().Model(&model.Node{}).Where("path_id = ?", path.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestDeletePathBlockedByProgress(t *testing.T) {
	db := newTestDB(t)
	svc := newPathService(db)
	progressSvc := newProgressService(db)
	category := seedCategory(t, db)
	user := seedUser(t, db)

	path, err := svc.Create(CreatePathInput{Title: "one", CategoryID: category.ID})
	require.NoError(t, err)
	seedNode(t, db, path.ID, "Root", 1, nil)

	_, err = progressSvc.Start(user.ID, path.ID)
	require.NoError(t, err)

	err = svc.Delete(path.ID)
	require.Error(t, err)
	var appErr *util.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "progress")

	// the dependent record is untouched and the path survives
	_, err = progressSvc.GetPathProgress(user.ID, path.ID)
	require.NoError(t, err)

	require.NoError(t, progressSvc.Abandon(user.ID, path.ID))
	require.NoError(t, svc.Delete(path.ID))
	_, err = svc.GetByID(path.ID)
	assert.ErrorIs(t, err, util.ErrPathNotFound)
}
