package service

import (
	"context"
	"errors"

	"quizsheet/internal/domain"
	"quizsheet/internal/dto"
	"quizsheet/internal/logger"

	"go.uber.org/zap"
)

// notAnsweredDisplay is shown in place of an option code when the slot was
// never answered.
const notAnsweredDisplay = "not answered"

// QuizService drives a user's quiz attempt: sampling, progression, scoring,
// review and export. One attempt per user at a time; the attempt lives in
// the SessionStore, the question bank is shared and read-only.
type QuizService interface {
	// CurrentQuestion returns the question at the cursor, starting a new
	// attempt with a fresh random draw when the user has none.
	CurrentQuestion(ctx context.Context, userID string) (*dto.QuizQuestionResponse, error)

	// SubmitAnswer records a non-empty choice at the cursor and advances it.
	SubmitAnswer(ctx context.Context, userID, choice string) (*dto.SubmitAnswerResponse, error)

	// Results grades the attempt and clears the stored session so the next
	// quiz access starts a fresh attempt.
	Results(ctx context.Context, userID string) (*dto.QuizResultsResponse, error)

	// ExportResults grades the attempt without clearing it, for the
	// machine-readable download.
	ExportResults(ctx context.Context, userID string) (*dto.QuizResultsResponse, error)

	// ReviewQuestion looks up a single question by its original bank index.
	ReviewQuestion(bankIndex int) (*dto.ReviewResponse, error)

	// Reset aborts the current attempt, if any.
	Reset(ctx context.Context, userID string) error
}

type quizServiceImpl struct {
	bank       *domain.QuestionBank
	sessions   SessionStore
	sampleSize int
}

// NewQuizService creates a new QuizService over the given question bank.
// A non-positive sampleSize falls back to domain.DefaultSampleSize.
func NewQuizService(bank *domain.QuestionBank, sessions SessionStore, sampleSize int) QuizService {
	if sampleSize <= 0 {
		sampleSize = domain.DefaultSampleSize
	}
	return &quizServiceImpl{
		bank:       bank,
		sessions:   sessions,
		sampleSize: sampleSize,
	}
}

// startSession draws a fresh sample and stores the new attempt.
func (s *quizServiceImpl) startSession(ctx context.Context, userID string) (*domain.QuizSession, error) {
	sess := domain.StartSession(domain.SampleIndices(s.bank.Size(), s.sampleSize))
	if err := s.sessions.Put(ctx, userID, sess); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz attempt started",
		zap.String("userID", userID),
		zap.Int("questions", sess.Total()),
	)
	return sess, nil
}

func (s *quizServiceImpl) CurrentQuestion(ctx context.Context, userID string) (*dto.QuizQuestionResponse, error) {
	sess, err := s.sessions.Get(ctx, userID)
	if errors.Is(err, ErrSessionNotFound) {
		sess, err = s.startSession(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	if sess.State() == domain.SessionCompleted {
		return &dto.QuizQuestionResponse{
			Number:    sess.Total(),
			Total:     sess.Total(),
			Completed: true,
		}, nil
	}

	bankIndex, err := sess.Current()
	if err != nil {
		return nil, err
	}
	question, ok := s.bank.Question(bankIndex)
	if !ok {
		// Stored order no longer matches the loaded bank; discard it.
		logger.Get().Warn("Stale quiz session discarded",
			zap.String("userID", userID),
			zap.Int("bankIndex", bankIndex),
		)
		if err := s.sessions.Delete(ctx, userID); err != nil {
			return nil, err
		}
		return nil, domain.NewNoActiveSessionError()
	}

	instruction, sentence := question.SplitText()
	return &dto.QuizQuestionResponse{
		Number:      sess.Cursor + 1,
		Total:       sess.Total(),
		Instruction: instruction,
		Sentence:    sentence,
		Question:    question.Text,
		Options:     question.Options[:],
	}, nil
}

func (s *quizServiceImpl) SubmitAnswer(ctx context.Context, userID, choice string) (*dto.SubmitAnswerResponse, error) {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, domain.NewNoActiveSessionError()
		}
		return nil, err
	}

	if err := sess.Submit(choice); err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, userID, sess); err != nil {
		return nil, err
	}

	return &dto.SubmitAnswerResponse{
		Answered:  sess.Cursor,
		Total:     sess.Total(),
		Completed: sess.State() == domain.SessionCompleted,
	}, nil
}

func (s *quizServiceImpl) Results(ctx context.Context, userID string) (*dto.QuizResultsResponse, error) {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, domain.NewNoActiveSessionError()
		}
		return nil, err
	}

	response := buildResults(s.bank, sess)

	// Clear the attempt so the next quiz access starts over. Failing to
	// clear is not worth failing the response for.
	if err := s.sessions.Delete(ctx, userID); err != nil {
		logger.Get().Warn("Failed to clear quiz session after results", zap.Error(err), zap.String("userID", userID))
	}

	logger.Get().Info("Quiz attempt graded",
		zap.String("userID", userID),
		zap.Int("score", response.Score),
		zap.Int("total", response.Total),
	)
	return response, nil
}

func (s *quizServiceImpl) ExportResults(ctx context.Context, userID string) (*dto.QuizResultsResponse, error) {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, domain.NewNoActiveSessionError()
		}
		return nil, err
	}
	return buildResults(s.bank, sess), nil
}

func (s *quizServiceImpl) ReviewQuestion(bankIndex int) (*dto.ReviewResponse, error) {
	review, err := domain.ReviewAt(s.bank, bankIndex)
	if err != nil {
		return nil, err
	}
	return &dto.ReviewResponse{
		BankIndex:   review.BankIndex,
		Question:    review.Question.Text,
		Options:     review.Question.Options[:],
		Correct:     string(review.Correct),
		Explanation: review.Question.Explanation,
	}, nil
}

func (s *quizServiceImpl) Reset(ctx context.Context, userID string) error {
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Get().Info("Quiz attempt reset", zap.String("userID", userID))
	return nil
}

// buildResults grades the session and shapes the response. Results and
// ExportResults share it so both report through the same scoring path.
func buildResults(bank *domain.QuestionBank, sess *domain.QuizSession) *dto.QuizResultsResponse {
	results, score := domain.Grade(bank, sess)

	views := make([]dto.QuestionResultView, len(results))
	for i, r := range results {
		selected := notAnsweredDisplay
		if r.Selected.IsSet() {
			selected = string(r.Selected)
		}
		views[i] = dto.QuestionResultView{
			Number:      r.Position,
			BankIndex:   r.BankIndex,
			Question:    r.Question,
			Selected:    selected,
			Correct:     string(r.Correct),
			Explanation: r.Explanation,
			IsCorrect:   r.IsCorrect,
		}
	}

	return &dto.QuizResultsResponse{
		Results: views,
		Score:   score,
		Total:   sess.Total(),
	}
}
