package service

import (
	"testing"

	"edupath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestionRequiresQuizContent(t *testing.T) {
	db := newTestDB(t)
	contentSvc := newContentService(db)
	svc := newQuestionService(db)

	video, err := contentSvc.Create(CreateContentInput{Type: "VIDEO", Title: "v"})
	require.NoError(t, err)

	_, err = svc.Create(CreateQuestionInput{
		ContentID:     video.ID,
		Question:      "q",
		Options:       []string{"a", "b"},
		CorrectAnswer: 0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUIZ")

	_, err = svc.Create(CreateQuestionInput{
		ContentID: 9999,
		Question:  "q",
		Options:   []string{"a", "b"},
	})
	assert.ErrorIs(t, err, util.ErrContentNotFound)
}

func TestCreateQuestionValidatesAnswerIndex(t *testing.T) {
	db := newTestDB(t)
	contentSvc := newContentService(db)
	svc := newQuestionService(db)

	quiz, err := contentSvc.Create(CreateContentInput{Type: "QUIZ", Title: "q"})
	require.NoError(t, err)

	_, err = svc.Create(CreateQuestionInput{
		ContentID:     quiz.ID,
		Question:      "pick one",
		Options:       []string{"a", "b"},
		CorrectAnswer: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correctAnswer")
}

func TestUpdateQuestionRevalidatesAnswer(t *testing.T) {
	db := newTestDB(t)
	contentSvc := newContentService(db)
	svc := newQuestionService(db)

	quiz, err := contentSvc.Create(CreateContentInput{Type: "QUIZ", Title: "q"})
	require.NoError(t, err)
	question, err := svc.Create(CreateQuestionInput{
		ContentID:     quiz.ID,
		Question:      "pick one",
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: 2,
	})
	require.NoError(t, err)

	// shrinking the options below the stored answer must fail
	_, err = svc.Update(question.ID, UpdateQuestionInput{Options: []string{"a"}})
	require.Error(t, err)

	updated, err := svc.Update(question.ID, UpdateQuestionInput{
		Options:       []string{"x", "y"},
		CorrectAnswer: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CorrectAnswer)
}

func TestCheckAnswerGradesStatelessly(t *testing.T) {
	db := newTestDB(t)
	contentSvc := newContentService(db)
	svc := newQuestionService(db)

	quiz, err := contentSvc.Create(CreateContentInput{Type: "QUIZ", Title: "q"})
	require.NoError(t, err)
	question, err := svc.Create(CreateQuestionInput{
		ContentID:     quiz.ID,
		Question:      "pick one",
		Options:       []string{"a", "b"},
		CorrectAnswer: 1,
		Explanation:   strPtr("because"),
	})
	require.NoError(t, err)

	right, err := svc.CheckAnswer(question.ID, 1)
	require.NoError(t, err)
	assert.True(t, right.IsCorrect)
	assert.Equal(t, 1, right.CorrectAnswer)
	require.NotNil(t, right.Explanation)

	wrong, err := svc.CheckAnswer(question.ID, 0)
	require.NoError(t, err)
	assert.False(t, wrong.IsCorrect)

	_, err = svc.CheckAnswer(9999, 0)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}
