package service

import (
	"encoding/json"
	"testing"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTreeAssemblesSortedForest(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)

	rootB := seedNode(t, db, path.ID, "Basics", 1, nil)
	rootA := seedNode(t, db, path.ID, "Advanced", 2, nil)
	childA2 := seedNode(t, db, path.ID, "Generics", 2, &rootA.ID)
	childA1 := seedNode(t, db, path.ID, "Interfaces", 1, &rootA.ID)
	grandchild := seedNode(t, db, path.ID, "Type sets", 1, &childA2.ID)

	tree, err := svc.GetTree(path.ID)
	require.NoError(t, err)

	require.Len(t, tree, 2)
	assert.Equal(t, rootB.ID, tree[0].ID)
	assert.Equal(t, rootA.ID, tree[1].ID)
	assert.Empty(t, tree[0].Children)

	require.Len(t, tree[1].Children, 2)
	assert.Equal(t, childA1.ID, tree[1].Children[0].ID)
	assert.Equal(t, childA2.ID, tree[1].Children[1].ID)

	require.Len(t, tree[1].Children[1].Children, 1)
	assert.Equal(t, grandchild.ID, tree[1].Children[1].Children[0].ID)

	// leaves serialize an empty children array, not a missing key
	payload, err := json.Marshal(tree[0])
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"children":[]`)
}

func TestGetTreeOmitsDanglingNodes(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)

	kept := seedNode(t, db, path.ID, "Kept", 1, nil)
	// parent id that does not exist; inserted below the service so the
	// write-time validation cannot intercept it
	missing := uint(9999)
	require.NoError(t, db.Create(&model.Node{
		Title: "Orphan", Order: 2, PathID: path.ID, ParentID: &missing,
	}).Error)

	tree, err := svc.GetTree(path.ID)
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, kept.ID, tree[0].ID)
}

func TestGetTreeOmitsCyclicCluster(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)

	root := seedNode(t, db, path.ID, "Root", 1, nil)
	a := seedNode(t, db, path.ID, "A", 2, nil)
	b := seedNode(t, db, path.ID, "B", 3, &a.ID)
	require.NoError(t, db.Model(&model.Node{}).Where("id = ?", a.ID).Update("parent_id", b.ID).Error)

	tree, err := svc.GetTree(path.ID)
	require.NoError(t, err)

	// a <-> b never reach a root, so only the true root survives
	require.Len(t, tree, 1)
	assert.Equal(t, root.ID, tree[0].ID)
}

func TestCreateRejectsUnknownPath(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)

	_, err := svc.Create(CreateNodeInput{Title: "n", PathID: 42})
	assert.ErrorIs(t, err, util.ErrPathNotFound)
}

func TestCreateValidatesParent(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)
	other := seedPath(t, db, category.ID)
	foreign := seedNode(t, db, other.ID, "Foreign", 1, nil)

	_, err := svc.Create(CreateNodeInput{Title: "n", PathID: path.ID, ParentID: uintPtr(12345)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent node does not exist")

	_, err = svc.Create(CreateNodeInput{Title: "n", PathID: path.ID, ParentID: &foreign.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different path")
}

func TestUpdateRejectsCycles(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)

	a := seedNode(t, db, path.ID, "A", 1, nil)
	b := seedNode(t, db, path.ID, "B", 2, &a.ID)
	c := seedNode(t, db, path.ID, "C", 3, &b.ID)

	_, err := svc.Update(a.ID, UpdateNodeInput{ParentID: &a.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own parent")

	_, err = svc.Update(a.ID, UpdateNodeInput{ParentID: &c.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "descendant")
}

func TestUpdateMovesAndClearsParent(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)

	a := seedNode(t, db, path.ID, "A", 1, nil)
	b := seedNode(t, db, path.ID, "B", 2, nil)
	child := seedNode(t, db, path.ID, "child", 1, &a.ID)

	moved, err := svc.Update(child.ID, UpdateNodeInput{ParentID: &b.ID})
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, b.ID, *moved.ParentID)

	promoted, err := svc.Update(child.ID, UpdateNodeInput{ClearParent: true})
	require.NoError(t, err)
	assert.Nil(t, promoted.ParentID)
}

func TestReorderAppliesAllUpdates(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)

	first := seedNode(t, db, path.ID, "first", 1, nil)
	second := seedNode(t, db, path.ID, "second", 2, nil)

	err := svc.Reorder([]model.OrderUpdate{
		{ID: first.ID, Order: 2},
		{ID: second.ID, Order: 1},
	})
	require.NoError(t, err)

	nodes, err := svc.GetAll(path.ID)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, second.ID, nodes[0].ID)
	assert.Equal(t, first.ID, nodes[1].ID)
}

func TestReorderRejectsEmptyBatch(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)

	err := svc.Reorder(nil)
	require.Error(t, err)
}

func TestDeleteUnknownNode(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)

	err := svc.Delete(12345)
	assert.ErrorIs(t, err, util.ErrNodeNotFound)
}

func TestDeleteRemovesDescendants(t *testing.T) {
	db := newTestDB(t)
	svc := newNodeService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)

	root := seedNode(t, db, path.ID, "Root", 1, nil)
	child := seedNode(t, db, path.ID, "Child", 1, &root.ID)
	seedNode(t, db, path.ID, "Grandchild", 1, &child.ID)
	kept := seedNode(t, db, path.ID, "Kept", 2, nil)

	user := seedUser(t, db)
	progressSvc := newProgressService(db)
	_, err := progressSvc.Start(user.ID, path.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(root.ID))

	nodes, err := svc.GetAll(path.ID)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, kept.ID, nodes[0].ID)

	// gone for good, not merely hidden behind deleted_at
	var remaining int64
	require.NoError(t, db.Unscoped().Model(&model.Node{}).Where("path_id = ?", path.ID).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	snapshot, err := progressSvc.GetPathProgress(user.ID, path.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.TotalNodes)

	tree, err := svc.GetTree(path.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, kept.ID, tree[0].ID)
}
