package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank() *QuestionBank {
	return NewQuestionBank([]Question{
		{
			Text:        "다음 빈칸에 알맞은 것은? She ___ to school.",
			Options:     [4]string{"go", "goes", "going", "gone"},
			RawAnswer:   "b. because reasons",
			Explanation: "3인칭 단수 주어는 동사에 -es가 붙습니다.",
		},
		{
			Text:        "다음 중 올바른 문장은?",
			Options:     [4]string{"one", "two", "three", "four"},
			RawAnswer:   "3",
			Explanation: "explanation two",
		},
		{
			Text:        "malformed answer row",
			Options:     [4]string{"w", "x", "y", "z"},
			RawAnswer:   "정답 없음",
			Explanation: "",
		},
	})
}

func TestGrade_LetterPrefixedCorrectAnswer(t *testing.T) {
	bank := testBank()
	sess := StartSession([]int{0})
	require.NoError(t, sess.Submit("2"))

	results, score := Grade(bank, sess)
	require.Len(t, results, 1)
	assert.Equal(t, 1, score)
	assert.True(t, results[0].IsCorrect)
	assert.Equal(t, CanonicalAnswer("2"), results[0].Selected)
	assert.Equal(t, CanonicalAnswer("2"), results[0].Correct)
	assert.Equal(t, 0, results[0].BankIndex)
	assert.Equal(t, 1, results[0].Position)
}

func TestGrade_WrongAnswer(t *testing.T) {
	bank := testBank()
	sess := StartSession([]int{1})
	require.NoError(t, sess.Submit("1"))

	results, score := Grade(bank, sess)
	require.Len(t, results, 1)
	assert.Equal(t, 0, score)
	assert.False(t, results[0].IsCorrect)
	assert.Equal(t, CanonicalAnswer("3"), results[0].Correct)
}

func TestGrade_UnansweredIsIncorrect(t *testing.T) {
	bank := testBank()
	// Mid-attempt session: second slot never answered.
	sess := StartSession([]int{0, 1})
	require.NoError(t, sess.Submit("2"))

	results, score := Grade(bank, sess)
	require.Len(t, results, 2)
	assert.Equal(t, 1, score)
	assert.False(t, results[1].IsCorrect)
	assert.False(t, results[1].Selected.IsSet())
}

func TestGrade_MalformedCorrectAnswerNeverMatches(t *testing.T) {
	bank := testBank()
	for _, choice := range []string{"1", "2", "3", "4"} {
		sess := StartSession([]int{2})
		require.NoError(t, sess.Submit(choice))
		results, score := Grade(bank, sess)
		require.Len(t, results, 1)
		assert.Equal(t, 0, score)
		assert.False(t, results[0].Correct.IsSet())
	}
}

func TestGrade_Idempotent(t *testing.T) {
	bank := testBank()
	sess := StartSession([]int{1, 0})
	require.NoError(t, sess.Submit("3"))
	require.NoError(t, sess.Submit("4"))

	first, firstScore := Grade(bank, sess)
	second, secondScore := Grade(bank, sess)
	assert.Equal(t, first, second)
	assert.Equal(t, firstScore, secondScore)
}

func TestGrade_ScoreMatchesCorrectCount(t *testing.T) {
	bank := testBank()
	sess := StartSession([]int{0, 1, 2})
	require.NoError(t, sess.Submit("2")) // correct
	require.NoError(t, sess.Submit("3")) // correct
	require.NoError(t, sess.Submit("1")) // malformed raw answer, incorrect

	results, score := Grade(bank, sess)
	count := 0
	for _, r := range results {
		if r.IsCorrect {
			count++
		}
	}
	assert.Equal(t, count, score)
	assert.Equal(t, 2, score)
}

func TestReviewAt(t *testing.T) {
	bank := testBank()

	review, err := ReviewAt(bank, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, review.BankIndex)
	assert.Equal(t, CanonicalAnswer("2"), review.Correct)
	assert.Equal(t, bank.questions[0].Text, review.Question.Text)

	for _, idx := range []int{-1, 3, 100} {
		_, err := ReviewAt(bank, idx)
		assertDomainCode(t, err, CodeInvalidReviewIndex)
	}
}

func TestQuestion_SplitText(t *testing.T) {
	q := Question{Text: "다음 빈칸에 알맞은 것은? She goes to school."}
	instruction, sentence := q.SplitText()
	assert.Equal(t, "다음 빈칸에 알맞은 것은?", instruction)
	assert.Equal(t, "She goes to school.", sentence)

	q = Question{Text: "한국어로만 된 문제"}
	instruction, sentence = q.SplitText()
	assert.Equal(t, "한국어로만 된 문제", instruction)
	assert.Equal(t, "", sentence)
}
