package http

import (
	"errors"
	"log"
	"net/http"

	domain "github.com/AashmanShukla3223/Financial-Golf/internal/domain/quiz"
	"github.com/AashmanShukla3223/Financial-Golf/internal/usecase/quiz"

	"github.com/labstack/echo/v4"
)

type QuizHandler struct{ uc *quiz.Usecase }

func NewQuizHandler(uc *quiz.Usecase) *QuizHandler { return &QuizHandler{uc: uc} }

type answerPath struct {
	QuestionID string `json:"question_id" validate:"len=32,hexadecimal"`
}

type answerReq struct {
	Selected *int `json:"selected" validate:"required,gte=0"`
}

func (h *QuizHandler) ListQuestions(c echo.Context) error {
	qs, err := h.uc.List(c.Request().Context())
	if err != nil {
		log.Printf("quiz: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "quiz unavailable"})
	}
	return c.JSON(http.StatusOK, qs)
}

func (h *QuizHandler) AnswerQuestion(c echo.Context) error {
	questionID := c.Param("question_id")
	if questionID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing question_id path param"})
	}
	if err := c.Validate(&answerPath{QuestionID: questionID}); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	var req answerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Answer(c.Request().Context(), questionID, *req.Selected)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrOptionOutOfRange):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: domain.ErrOptionOutOfRange.Error()})
	case err != nil:
		log.Printf("quiz: answer %s failed: %v", questionID, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "quiz unavailable"})
	}
	return c.JSON(http.StatusOK, dto)
}
