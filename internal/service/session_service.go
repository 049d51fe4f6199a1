package service

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SessionService owns the lifecycle of timed test attempts: question
// selection, countdown, answer capture, navigation and submission.
type SessionService interface {
	Start(userID uint, subject string) (*dto.SessionStateDTO, error)
	Snapshot(sessionID string, userID uint) (*dto.SessionStateDTO, error)
	SelectAnswer(sessionID string, userID uint, req dto.AnswerSelectDTO) (*dto.SessionStateDTO, error)
	Next(sessionID string, userID uint) (*dto.SessionStateDTO, error)
	Previous(sessionID string, userID uint) (*dto.SessionStateDTO, error)
	Jump(sessionID string, userID uint, index int) (*dto.SessionStateDTO, error)
	Submit(sessionID string, userID uint) (*dto.TestReviewDTO, error)
}

type sessionService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	store        *sessionStore
}

func NewSessionService(questionRepo repository.QuestionRepository, resultRepo repository.ResultRepository) SessionService {
	return &sessionService{
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		store:        newSessionStore(),
	}
}

func (s *sessionService) Start(userID uint, subject string) (*dto.SessionStateDTO, error) {
	questions, err := s.questionRepo.FindBySubject(subject)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Start: failed to fetch questions")
		return nil, fmt.Errorf("error fetching questions for subject %q: %w", subject, err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	shuffled := make([]model.Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > maxSessionQuestions {
		shuffled = shuffled[:maxSessionQuestions]
	}

	now := time.Now()
	sess := &testSession{
		id:              uuid.NewString(),
		userID:          userID,
		subject:         subject,
		questions:       shuffled,
		answers:         make(map[uint]string),
		timePerQuestion: make([]int, len(shuffled)),
		allottedSeconds: len(shuffled) * secondsPerQuestion,
		startedAt:       now,
		lastNavAt:       now,
	}
	sess.timer = time.AfterFunc(time.Duration(sess.allottedSeconds)*time.Second, func() {
		s.autoSubmit(sess.id)
	})
	s.store.put(sess)

	log.Info().Str("sessionID", sess.id).Uint("userID", userID).Str("subject", subject).
		Int("questions", len(shuffled)).Int("allottedSeconds", sess.allottedSeconds).
		Msg("Test session started")
	return s.stateDTO(sess), nil
}

func (s *sessionService) Snapshot(sessionID string, userID uint) (*dto.SessionStateDTO, error) {
	sess, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.stateDTOLocked(sess), nil
}

func (s *sessionService) SelectAnswer(sessionID string, userID uint, req dto.AnswerSelectDTO) (*dto.SessionStateDTO, error) {
	sess, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.submitted {
		return nil, ErrSessionNotFound
	}

	var question *model.Question
	for i := range sess.questions {
		if sess.questions[i].ID == req.QuestionID {
			question = &sess.questions[i]
			break
		}
	}
	if question == nil {
		return nil, ErrQuestionNotInSession
	}

	valid := false
	for _, opt := range question.Options {
		if opt == req.Option {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidOption
	}

	// Idempotent overwrite: re-selecting replaces the previous choice.
	sess.answers[req.QuestionID] = req.Option
	return s.stateDTOLocked(sess), nil
}

func (s *sessionService) Next(sessionID string, userID uint) (*dto.SessionStateDTO, error) {
	return s.navigate(sessionID, userID, func(sess *testSession) int {
		return sess.currentIndex + 1
	})
}

func (s *sessionService) Previous(sessionID string, userID uint) (*dto.SessionStateDTO, error) {
	return s.navigate(sessionID, userID, func(sess *testSession) int {
		return sess.currentIndex - 1
	})
}

func (s *sessionService) Jump(sessionID string, userID uint, index int) (*dto.SessionStateDTO, error) {
	return s.navigate(sessionID, userID, func(sess *testSession) int {
		return index
	})
}

// navigate moves the question pointer. Out-of-range targets are a no-op and
// elapsed time is flushed to the question being left, never the one entered.
func (s *sessionService) navigate(sessionID string, userID uint, target func(*testSession) int) (*dto.SessionStateDTO, error) {
	sess, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.submitted {
		return nil, ErrSessionNotFound
	}

	to := target(sess)
	if to < 0 || to >= len(sess.questions) || to == sess.currentIndex {
		return s.stateDTOLocked(sess), nil
	}
	sess.flushElapsed(time.Now())
	sess.currentIndex = to
	return s.stateDTOLocked(sess), nil
}

func (s *sessionService) Submit(sessionID string, userID uint) (*dto.TestReviewDTO, error) {
	sess, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.submitted {
		// The countdown beat us to it; the result row already exists.
		return nil, ErrSessionNotFound
	}
	return s.finishLocked(sess, false), nil
}

// autoSubmit fires when the countdown reaches zero. If a manual submit has
// already completed this is a no-op.
func (s *sessionService) autoSubmit(sessionID string) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.submitted {
		return
	}
	log.Info().Str("sessionID", sessionID).Msg("Countdown expired, auto-submitting session")
	s.finishLocked(sess, true)
}

// finishLocked scores the attempt, persists the result and discards the
// session. Persistence is fire-and-forget: a failed insert is logged and the
// locally computed review is still returned. Caller must hold sess.mu.
func (s *sessionService) finishLocked(sess *testSession, auto bool) *dto.TestReviewDTO {
	sess.submitted = true
	if !auto && sess.timer != nil {
		sess.timer.Stop()
	}
	sess.flushElapsed(time.Now())

	review := scoreAttempt(sess.questions, sess.answers, sess.timePerQuestion)
	review.AutoSubmitted = auto

	result := model.TestResult{
		UserID:          sess.userID,
		Subject:         sess.subject,
		ScorePercent:    review.ScorePercent,
		CorrectCount:    review.Score,
		WrongCount:      review.WrongCount,
		SkippedCount:    review.SkippedCount,
		TotalQuestions:  review.Total,
		TimePerQuestion: review.TimePerQuestion,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Str("sessionID", sess.id).Uint("userID", sess.userID).
			Msg("Failed to persist test result; review is still served from local scoring")
	}

	s.store.remove(sess.id)
	log.Info().Str("sessionID", sess.id).Int("score", review.Score).Int("total", review.Total).
		Bool("auto", auto).Msg("Test session submitted")
	return review
}

// scoreAttempt derives the scored review bundle from the raw attempt state.
// An empty answer is a skip; a non-empty answer is correct only on an exact
// match. Deterministic: the same inputs always produce the same result.
func scoreAttempt(questions []model.Question, answers map[uint]string, timePerQuestion []int) *dto.TestReviewDTO {
	review := &dto.TestReviewDTO{
		Results:         make([]dto.QuestionReviewDTO, len(questions)),
		Total:           len(questions),
		TimePerQuestion: timePerQuestion,
	}

	for i, q := range questions {
		userAnswer := answers[q.ID]
		isSkipped := userAnswer == ""
		isCorrect := !isSkipped && userAnswer == q.CorrectAnswer

		if isCorrect {
			review.Score++
		} else if isSkipped {
			review.SkippedCount++
		}

		timeSpent := 0
		if i < len(timePerQuestion) {
			timeSpent = timePerQuestion[i]
		}
		review.Results[i] = dto.QuestionReviewDTO{
			Question:   questionDTO(q),
			UserAnswer: userAnswer,
			IsCorrect:  isCorrect,
			IsSkipped:  isSkipped,
			TimeSpent:  timeSpent,
		}
	}

	review.WrongCount = review.Total - review.Score - review.SkippedCount
	if review.Total > 0 {
		review.ScorePercent = int(math.Round(float64(review.Score) / float64(review.Total) * 100))
	}
	return review
}

func (s *sessionService) ownedSession(sessionID string, userID uint) (*testSession, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.userID != userID {
		return nil, ErrSessionForbidden
	}
	return sess, nil
}

func (s *sessionService) stateDTO(sess *testSession) *dto.SessionStateDTO {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.stateDTOLocked(sess)
}

func (s *sessionService) stateDTOLocked(sess *testSession) *dto.SessionStateDTO {
	answers := make(map[uint]string, len(sess.answers))
	for qid, a := range sess.answers {
		answers[qid] = a
	}

	questions := make([]dto.SessionQuestionDTO, len(sess.questions))
	for i, q := range sess.questions {
		questions[i] = dto.SessionQuestionDTO{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      optionList(q),
			Subject:      q.Subject,
		}
	}

	return &dto.SessionStateDTO{
		SessionID:        sess.id,
		Subject:          sess.subject,
		Questions:        questions,
		CurrentIndex:     sess.currentIndex,
		Answers:          answers,
		TotalQuestions:   len(sess.questions),
		AllottedSeconds:  sess.allottedSeconds,
		RemainingSeconds: sess.remainingSeconds(time.Now()),
		StartedAt:        sess.startedAt,
	}
}

func questionDTO(q model.Question) dto.QuestionResponseDTO {
	return dto.QuestionResponseDTO{
		ID:            q.ID,
		QuestionText:  q.QuestionText,
		Options:       optionList(q),
		CorrectAnswer: q.CorrectAnswer,
		Subject:       q.Subject,
		Explanation:   q.Explanation,
		CreatedAt:     q.CreatedAt,
	}
}

// optionList degrades a missing options array to an empty list instead of
// rendering null.
func optionList(q model.Question) []string {
	if q.Options == nil {
		return []string{}
	}
	return []string(q.Options)
}
