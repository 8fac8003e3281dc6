package domain

// Result is the graded outcome for one presented question. It is derived
// on demand from the session and the bank, never persisted.
type Result struct {
	Position    int // 1-based position within the attempt
	BankIndex   int // original question-bank index, usable for review lookups
	Question    string
	Selected    CanonicalAnswer // AnswerUnset when the slot was never answered
	Correct     CanonicalAnswer // AnswerUnset when the raw field is malformed
	Explanation string
	IsCorrect   bool
}

// Grade scores the session against the bank, producing one Result per drawn
// question in presentation order plus the aggregate score. Both the stored
// response and the raw correct-answer field go through NormalizeAnswer so a
// single mapping decides correctness everywhere; an unset value on either
// side counts as incorrect. Grading does not mutate the session, so calling
// it twice yields identical output.
func Grade(bank *QuestionBank, sess *QuizSession) ([]Result, int) {
	results := make([]Result, 0, sess.Total())
	score := 0
	for i, bankIndex := range sess.Order {
		q, ok := bank.Question(bankIndex)
		if !ok {
			// A session drawn against a different bank load; skip rather
			// than invent a question for it.
			continue
		}
		selected := NormalizeAnswer(sess.Responses[i])
		correct := q.CorrectAnswer()
		isCorrect := selected.IsSet() && correct.IsSet() && selected == correct
		if isCorrect {
			score++
		}
		results = append(results, Result{
			Position:    i + 1,
			BankIndex:   bankIndex,
			Question:    q.Text,
			Selected:    selected,
			Correct:     correct,
			Explanation: q.Explanation,
			IsCorrect:   isCorrect,
		})
	}
	return results, score
}

// Review is the session-independent view of a single bank question, used
// for post-quiz inspection.
type Review struct {
	BankIndex int
	Question  Question
	Correct   CanonicalAnswer
}

// ReviewAt looks up a question by its original bank index and recomputes its
// normalized correct answer. No active session is required.
func ReviewAt(bank *QuestionBank, index int) (*Review, error) {
	q, ok := bank.Question(index)
	if !ok {
		return nil, NewInvalidReviewIndexError(index, bank.Size())
	}
	return &Review{
		BankIndex: index,
		Question:  *q,
		Correct:   q.CorrectAnswer(),
	}, nil
}
