package service

import (
	"testing"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestionDTO() dto.QuestionCreateDTO {
	return dto.QuestionCreateDTO{
		QuestionText:  "Which nerve innervates the diaphragm?",
		Options:       []string{"Phrenic", "Vagus", "Intercostal", "Accessory"},
		CorrectAnswer: "Phrenic",
		Subject:       "Anatomy",
		Explanation:   "C3, C4, C5 keep the diaphragm alive.",
	}
}

func TestCreateQuestion(t *testing.T) {
	repo := &fakeQuestionRepo{}
	svc := NewAdminQuestionService(repo)

	resp, err := svc.CreateQuestion(validQuestionDTO())
	require.NoError(t, err)
	assert.Equal(t, "Phrenic", resp.CorrectAnswer)
	assert.Len(t, repo.questions, 1)
}

func TestCreateQuestionValidation(t *testing.T) {
	svc := NewAdminQuestionService(&fakeQuestionRepo{})

	req := validQuestionDTO()
	req.Options = []string{"Phrenic", "Phrenic", "Vagus"}
	_, err := svc.CreateQuestion(req)
	assert.ErrorContains(t, err, "duplicate option")

	req = validQuestionDTO()
	req.CorrectAnswer = "Sciatic"
	_, err = svc.CreateQuestion(req)
	assert.ErrorContains(t, err, "not among the options")
}

func TestImportQuestionsIsAllOrNothing(t *testing.T) {
	repo := &fakeQuestionRepo{}
	svc := NewAdminQuestionService(repo)

	bad := validQuestionDTO()
	bad.CorrectAnswer = "Sciatic"
	_, err := svc.ImportQuestions(dto.QuestionBatchCreateDTO{
		Questions: []dto.QuestionCreateDTO{validQuestionDTO(), bad},
	})
	assert.ErrorContains(t, err, "question 2")
	assert.Empty(t, repo.questions, "a failed import writes nothing")

	created, err := svc.ImportQuestions(dto.QuestionBatchCreateDTO{
		Questions: []dto.QuestionCreateDTO{validQuestionDTO(), validQuestionDTO()},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Len(t, repo.questions, 2)
}
