package domain

import "strings"

// Question represents a single quiz question loaded from the spreadsheet.
// Instances are immutable after load; RawAnswer keeps the correct-answer
// field exactly as it appeared in the source and is normalized on demand.
type Question struct {
	Text        string
	Options     [4]string
	RawAnswer   string
	Explanation string
}

// Validate validates the question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("question text is required")
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return NewValidationError("option " + string(rune('a'+i)) + " is required")
		}
	}
	return nil
}

// CorrectAnswer returns the normalized correct-answer code for the question.
func (q *Question) CorrectAnswer() CanonicalAnswer {
	return NormalizeAnswer(q.RawAnswer)
}

// SplitText separates a leading instruction from the quoted sentence of the
// prompt. Prompts pair a native-language instruction with an example sentence;
// the sentence is taken to start at the first Latin letter. When the prompt
// contains no Latin letters the whole text is the instruction.
func (q *Question) SplitText() (instruction, sentence string) {
	for i, r := range q.Text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return strings.TrimSpace(q.Text[:i]), strings.TrimSpace(q.Text[i:])
		}
	}
	return strings.TrimSpace(q.Text), ""
}

// QuestionBank is the ordered, read-only collection of all loaded questions.
// It is built once at startup and safe for concurrent reads.
type QuestionBank struct {
	questions []Question
}

// NewQuestionBank creates a QuestionBank from the given questions.
func NewQuestionBank(questions []Question) *QuestionBank {
	return &QuestionBank{questions: questions}
}

// Size returns the number of questions in the bank.
func (b *QuestionBank) Size() int {
	return len(b.questions)
}

// Question returns the question at the given bank index.
func (b *QuestionBank) Question(index int) (*Question, bool) {
	if index < 0 || index >= len(b.questions) {
		return nil, false
	}
	return &b.questions[index], true
}
