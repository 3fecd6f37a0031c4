package service

import (
	"testing"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContentKeepsOnlyTypedFields(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	video, err := svc.Create(CreateContentInput{
		Type:        "VIDEO",
		Title:       "Intro",
		VideoURL:    strPtr("https://cdn.example.com/intro.mp4"),
		Duration:    intPtr(300),
		ArticleText: strPtr("should be dropped"),
	})
	require.NoError(t, err)
	require.NotNil(t, video.VideoURL)
	assert.Equal(t, 300, *video.Duration)
	assert.Nil(t, video.ArticleText)

	article, err := svc.Create(CreateContentInput{
		Type:        "ARTICLE",
		Title:       "Reading",
		ArticleText: strPtr("body"),
		VideoURL:    strPtr("should be dropped"),
	})
	require.NoError(t, err)
	require.NotNil(t, article.ArticleText)
	assert.Nil(t, article.VideoURL)
	assert.Nil(t, article.Duration)
}

func TestCreateContentRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	_, err := svc.Create(CreateContentInput{Type: "PODCAST", Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown content type")
}

func TestUpdateContentClearsFieldsOnTypeChange(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	video, err := svc.Create(CreateContentInput{
		Type:     "VIDEO",
		Title:    "Intro",
		VideoURL: strPtr("https://cdn.example.com/intro.mp4"),
		Duration: intPtr(300),
	})
	require.NoError(t, err)

	updated, err := svc.Update(video.ID, UpdateContentInput{
		Type:        strPtr("ARTICLE"),
		ArticleText: strPtr("now an article"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ContentArticle, updated.Type)
	require.NotNil(t, updated.ArticleText)
	assert.Nil(t, updated.VideoURL)
	assert.Nil(t, updated.Duration)
}

func TestUpdateContentReplacesQuestionsWholesale(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	quiz, err := svc.Create(CreateContentInput{Type: "QUIZ", Title: "Checkpoint"})
	require.NoError(t, err)

	_, err = svc.Update(quiz.ID, UpdateContentInput{
		Questions: []QuestionInput{
			{Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Question: "q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 2},
		},
	})
	require.NoError(t, err)

	updated, err := svc.Update(quiz.ID, UpdateContentInput{
		Questions: []QuestionInput{
			{Question: "q3", Options: []string{"x", "y"}, CorrectAnswer: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Questions, 1)
	assert.Equal(t, "q3", updated.Questions[0].Question)

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Question{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "replaced questions must not linger as soft-deleted rows")
}

func TestUpdateContentRejectsOutOfRangeAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	quiz, err := svc.Create(CreateContentInput{Type: "QUIZ", Title: "Checkpoint"})
	require.NoError(t, err)

	_, err = svc.Update(quiz.ID, UpdateContentInput{
		Questions: []QuestionInput{
			{Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: 5},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correctAnswer")
}

func TestGetContentByType(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	_, err := svc.Create(CreateContentInput{Type: "VIDEO", Title: "v"})
	require.NoError(t, err)
	_, err = svc.Create(CreateContentInput{Type: "ARTICLE", Title: "a"})
	require.NoError(t, err)

	videos, err := svc.GetByType("VIDEO")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, model.ContentVideo, videos[0].Type)

	_, err = svc.GetByType("BOGUS")
	require.Error(t, err)
}

func TestGetByIDResolvesOwningNode(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	category := seedCategory(t, db)
	path := seedPath(t, db, category.ID)

	content, err := svc.Create(CreateContentInput{Type: "ARTICLE", Title: "Reading"})
	require.NoError(t, err)

	orphan, err := svc.GetByID(content.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.Node)

	node := seedNode(t, db, path.ID, "lesson", 1, nil)
	require.NoError(t, db.Model(node).Update("content_id", content.ID).Error)

	owned, err := svc.GetByID(content.ID)
	require.NoError(t, err)
	require.NotNil(t, owned.Node)
	assert.Equal(t, node.ID, owned.Node.ID)
}

func TestDeleteContentRemovesQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	quiz, err := svc.Create(CreateContentInput{Type: "QUIZ", Title: "Checkpoint"})
	require.NoError(t, err)
	_, err = svc.Update(quiz.ID, UpdateContentInput{
		Questions: []QuestionInput{
			{Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(quiz.ID))

	_, err = svc.GetByID(quiz.ID)
	assert.ErrorIs(t, err, util.ErrContentNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Where("content_id = ?", quiz.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
