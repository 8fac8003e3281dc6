package service

import (
	"context"
	"errors"
	"testing"

	"quizsheet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bankOf(questions ...domain.Question) *domain.QuestionBank {
	return domain.NewQuestionBank(questions)
}

func singleQuestion(rawAnswer string) domain.Question {
	return domain.Question{
		Text:        "다음 빈칸에 알맞은 것은? She ___ to school.",
		Options:     [4]string{"go", "goes", "going", "gone"},
		RawAnswer:   rawAnswer,
		Explanation: "3인칭 단수",
	}
}

func assertServiceErrCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "expected *DomainError, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestQuizService_StartsSessionOnFirstAccess(t *testing.T) {
	store := newMemorySessionStore()
	svc := NewQuizService(bankOf(singleQuestion("b. reason")), store, 5)
	ctx := context.Background()

	resp, err := svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Equal(t, 1, resp.Number)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, []string{"go", "goes", "going", "gone"}, resp.Options)
	assert.Equal(t, "다음 빈칸에 알맞은 것은?", resp.Instruction)
	assert.Equal(t, "She ___ to school.", resp.Sentence)

	// The attempt is persisted: the same question comes back on re-fetch.
	again, err := svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, resp, again)
}

func TestQuizService_LetterPrefixedAnswerScoresCorrect(t *testing.T) {
	// Correct answer raw "b. because reasons"; user submits "2" -> 1/1.
	store := newMemorySessionStore()
	svc := NewQuizService(bankOf(singleQuestion("b. because reasons")), store, 5)
	ctx := context.Background()

	_, err := svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)

	submitResp, err := svc.SubmitAnswer(ctx, "user1", "2")
	require.NoError(t, err)
	assert.True(t, submitResp.Completed)
	assert.Equal(t, 1, submitResp.Answered)

	results, err := svc.Results(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, results.Score)
	assert.Equal(t, 1, results.Total)
	require.Len(t, results.Results, 1)
	assert.True(t, results.Results[0].IsCorrect)
	assert.Equal(t, "2", results.Results[0].Selected)
	assert.Equal(t, "2", results.Results[0].Correct)

	// Results cleared the attempt; the next access starts a fresh one.
	_, ok := store.data["user1"]
	assert.False(t, ok)
}

func TestQuizService_EmptySubmissionDoesNotAdvance(t *testing.T) {
	// Correct answer "3"; empty submissions re-prompt until a real one lands.
	store := newMemorySessionStore()
	svc := NewQuizService(bankOf(singleQuestion("3")), store, 5)
	ctx := context.Background()

	_, err := svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.SubmitAnswer(ctx, "user1", "")
		assertServiceErrCode(t, err, domain.CodeEmptySubmission)

		resp, err := svc.CurrentQuestion(ctx, "user1")
		require.NoError(t, err)
		assert.False(t, resp.Completed, "session must stay in progress")
		assert.Equal(t, 1, resp.Number)
	}

	submitResp, err := svc.SubmitAnswer(ctx, "user1", "1")
	require.NoError(t, err)
	assert.True(t, submitResp.Completed)

	results, err := svc.Results(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 0, results.Score)
	assert.False(t, results.Results[0].IsCorrect)
}

func TestQuizService_SmallBankSamplesAllQuestions(t *testing.T) {
	// Bank of 2 with sample size 5 -> both questions drawn.
	store := newMemorySessionStore()
	svc := NewQuizService(bankOf(singleQuestion("1"), singleQuestion("2")), store, 5)
	ctx := context.Background()

	resp, err := svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	for i := 0; i < 2; i++ {
		_, err = svc.SubmitAnswer(ctx, "user1", "1")
		require.NoError(t, err)
	}

	resp, err = svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)
	assert.True(t, resp.Completed)

	// Reset followed by a new access draws a fresh attempt.
	require.NoError(t, svc.Reset(ctx, "user1"))
	resp, err = svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Equal(t, 1, resp.Number)
}

func TestQuizService_EmptyBankCompletesImmediately(t *testing.T) {
	store := newMemorySessionStore()
	svc := NewQuizService(domain.NewQuestionBank(nil), store, 5)
	ctx := context.Background()

	resp, err := svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Equal(t, 0, resp.Total)

	results, err := svc.Results(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 0, results.Score)
	assert.Empty(t, results.Results)
}

func TestQuizService_ExportDoesNotClearSession(t *testing.T) {
	store := newMemorySessionStore()
	svc := NewQuizService(bankOf(singleQuestion("b")), store, 5)
	ctx := context.Background()

	_, err := svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, "user1", "2")
	require.NoError(t, err)

	exported, err := svc.ExportResults(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, exported.Score)

	// Exporting twice yields identical output; the session survives.
	again, err := svc.ExportResults(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, exported, again)

	results, err := svc.Results(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, exported, results)
}

func TestQuizService_ResultsWithoutSession(t *testing.T) {
	svc := NewQuizService(bankOf(singleQuestion("1")), newMemorySessionStore(), 5)

	_, err := svc.Results(context.Background(), "user1")
	assertServiceErrCode(t, err, domain.CodeNoActiveSession)

	_, err = svc.SubmitAnswer(context.Background(), "user1", "1")
	assertServiceErrCode(t, err, domain.CodeNoActiveSession)
}

func TestQuizService_UnansweredShownAsNotAnswered(t *testing.T) {
	store := newMemorySessionStore()
	svc := NewQuizService(bankOf(singleQuestion("3")), store, 5)
	ctx := context.Background()

	_, err := svc.CurrentQuestion(ctx, "user1")
	require.NoError(t, err)

	// Grade mid-attempt through export: the slot is still unset.
	exported, err := svc.ExportResults(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, exported.Results, 1)
	assert.Equal(t, "not answered", exported.Results[0].Selected)
	assert.False(t, exported.Results[0].IsCorrect)
}

func TestQuizService_ReviewQuestion(t *testing.T) {
	svc := NewQuizService(bankOf(singleQuestion("b. prefix")), newMemorySessionStore(), 5)

	review, err := svc.ReviewQuestion(0)
	require.NoError(t, err)
	assert.Equal(t, 0, review.BankIndex)
	assert.Equal(t, "2", review.Correct)
	assert.Len(t, review.Options, 4)

	_, err = svc.ReviewQuestion(5)
	assertServiceErrCode(t, err, domain.CodeInvalidReviewIndex)
	_, err = svc.ReviewQuestion(-1)
	assertServiceErrCode(t, err, domain.CodeInvalidReviewIndex)
}
