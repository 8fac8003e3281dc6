package handler

import (
	"strconv"

	"quizsheet/internal/domain"
	"quizsheet/internal/middleware"
	"quizsheet/internal/service"
	"quizsheet/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	return userID
}

// GetQuestion handles GET /api/quiz. It resumes the attempt in progress,
// starting a new one with a fresh draw when the user has none. Once the
// attempt is complete the response carries completed=true and the client
// should fetch the results.
func (h *QuizHandler) GetQuestion(c *fiber.Ctx) error {
	resp, err := h.service.CurrentQuestion(c.Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer handles POST /api/quiz/answer. An empty choice is rejected
// without advancing the attempt so the client re-prompts.
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req struct {
		Choice string `json:"choice" form:"choice"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateAnswerChoice(req.Choice); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswer(c.Context(), currentUserID(c), req.Choice)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetResults handles GET /api/quiz/results. Producing results clears the
// attempt, so the next quiz access starts over.
func (h *QuizHandler) GetResults(c *fiber.Ctx) error {
	resp, err := h.service.Results(c.Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ExportResults handles GET /api/quiz/export: the same scored results as a
// downloadable attachment, without clearing the attempt.
func (h *QuizHandler) ExportResults(c *fiber.Ctx) error {
	resp, err := h.service.ExportResults(c.Context(), currentUserID(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="quiz_results.json"`)
	return c.JSON(resp)
}

// ReviewQuestion handles GET /api/quiz/review/:index, where :index is the
// original question-bank index reported in the results.
func (h *QuizHandler) ReviewQuestion(c *fiber.Ctx) error {
	raw := c.Params("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("index", raw)}
	}

	resp, err := h.service.ReviewQuestion(index)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResetQuiz handles POST /api/quiz/reset, aborting the current attempt.
func (h *QuizHandler) ResetQuiz(c *fiber.Ctx) error {
	if err := h.service.Reset(c.Context(), currentUserID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
