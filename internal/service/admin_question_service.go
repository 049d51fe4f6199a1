package service

import (
	"fmt"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// AdminQuestionService maintains the question bank.
type AdminQuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	ImportQuestions(req dto.QuestionBatchCreateDTO) ([]dto.QuestionResponseDTO, error)
	ListSubjects() ([]string, error)
}

type adminQuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewAdminQuestionService(questionRepo repository.QuestionRepository) AdminQuestionService {
	return &adminQuestionService{questionRepo: questionRepo}
}

func (s *adminQuestionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := validateQuestion(req)
	if err != nil {
		return nil, err
	}
	if err := s.questionRepo.Create(question); err != nil {
		log.Error().Err(err).Str("subject", req.Subject).Msg("CreateQuestion: failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}
	resp := questionDTO(*question)
	return &resp, nil
}

func (s *adminQuestionService) ImportQuestions(req dto.QuestionBatchCreateDTO) ([]dto.QuestionResponseDTO, error) {
	questions := make([]model.Question, len(req.Questions))
	for i, qReq := range req.Questions {
		q, err := validateQuestion(qReq)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions[i] = *q
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Int("count", len(questions)).Msg("ImportQuestions: batch create failed")
		return nil, fmt.Errorf("database error importing questions: %w", err)
	}

	dtos := make([]dto.QuestionResponseDTO, len(questions))
	for i, q := range questions {
		dtos[i] = questionDTO(q)
	}
	return dtos, nil
}

func (s *adminQuestionService) ListSubjects() ([]string, error) {
	subjects, err := s.questionRepo.ListSubjects()
	if err != nil {
		log.Error().Err(err).Msg("ListSubjects: failed to list subjects")
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	return subjects, nil
}

// validateQuestion checks that options are unique and the correct answer is
// one of them before anything touches the bank.
func validateQuestion(req dto.QuestionCreateDTO) (*model.Question, error) {
	seen := make(map[string]bool, len(req.Options))
	correctFound := false
	for _, opt := range req.Options {
		if seen[opt] {
			return nil, fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
		if opt == req.CorrectAnswer {
			correctFound = true
		}
	}
	if !correctFound {
		return nil, fmt.Errorf("correct answer %q is not among the options", req.CorrectAnswer)
	}

	return &model.Question{
		QuestionText:  req.QuestionText,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Subject:       req.Subject,
		Explanation:   req.Explanation,
	}, nil
}
