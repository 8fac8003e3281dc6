package dto

// QuizQuestionResponse carries the question at the session cursor.
// Completed is set instead of a question once every drawn question has been
// answered; clients should then fetch the results.
type QuizQuestionResponse struct {
	Number      int      `json:"number"` // 1-based position within the attempt
	Total       int      `json:"total"`
	Instruction string   `json:"instruction,omitempty"`
	Sentence    string   `json:"sentence,omitempty"`
	Question    string   `json:"question,omitempty"`
	Options     []string `json:"options,omitempty"`
	Completed   bool     `json:"completed"`
}

// SubmitAnswerRequest carries the user's selected option code ("1".."4").
type SubmitAnswerRequest struct {
	Choice string `json:"choice"`
}

// SubmitAnswerResponse reports progress after a recorded submission.
type SubmitAnswerResponse struct {
	Answered  int  `json:"answered"`
	Total     int  `json:"total"`
	Completed bool `json:"completed"`
}

// QuestionResultView is the graded outcome of one presented question.
type QuestionResultView struct {
	Number      int    `json:"number"`
	BankIndex   int    `json:"bank_index"`
	Question    string `json:"question"`
	Selected    string `json:"selected_answer"`
	Correct     string `json:"correct_answer,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	IsCorrect   bool   `json:"is_correct"`
}

// QuizResultsResponse is the scored outcome of a completed attempt.
type QuizResultsResponse struct {
	Results []QuestionResultView `json:"results"`
	Score   int                  `json:"score"`
	Total   int                  `json:"total"`
}

// ReviewResponse is the session-independent view of one bank question.
type ReviewResponse struct {
	BankIndex   int      `json:"bank_index"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct_answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
