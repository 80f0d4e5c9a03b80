package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/api/metrics"
	"github.com/gymtech/dashboard/internal/api/view"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type ChatHandler struct {
	chat    ports.ChatAPI
	history ports.ChatHistoryStore
	log     zerolog.Logger
}

func NewChatHandler(chat ports.ChatAPI, history ports.ChatHistoryStore, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, history: history, log: log}
}

type chatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
}

type chatResponse struct {
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answer_html"`
}

// Send forwards one message to the upstream assistant and records both sides
// of the exchange in the transcript.
//
// @Summary      Send a chat message to the assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Message and conversation id"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	in := ports.ChatInput{
		Message:   req.Message,
		UserID:    sess.ID,
		Role:      string(sess.Role),
		SessionID: req.SessionID,
	}
	answer, err := h.chat.Send(c.Request().Context(), in)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": detailOf(err)})
	}
	metrics.ChatMessagesTotal.WithLabelValues(strings.ToLower(string(sess.Role))).Inc()

	now := time.Now().Unix()
	msgs := []domain.ChatMessage{
		{ID: uuid.NewString(), Role: domain.ChatRoleUser, Content: req.Message, Timestamp: now},
		{ID: uuid.NewString(), Role: domain.ChatRoleAssistant, Content: answer, Timestamp: now},
	}
	if err := h.history.Append(c.Request().Context(), sess.Role, sess.ID, msgs...); err != nil {
		// The answer is already in hand; losing one transcript entry is not
		// worth failing the exchange.
		h.log.Warn().Err(err).Int("user_id", sess.ID).Msg("chat transcript append failed")
	}

	return c.JSON(http.StatusOK, chatResponse{
		Answer:     answer,
		AnswerHTML: string(view.Markdown(answer)),
	})
}

// History returns the signed-in user's transcript, oldest first.
//
// @Summary      Chat transcript for the signed-in user
// @Tags         chat
// @Produce      json
// @Success      200  {object}  map[string][]domain.ChatMessage
// @Failure      401  {object}  map[string]string
// @Router       /api/chat/history [get]
func (h *ChatHandler) History(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	msgs, err := h.history.List(c.Request().Context(), sess.Role, sess.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "transcript unavailable"})
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return c.JSON(http.StatusOK, map[string][]domain.ChatMessage{"messages": msgs})
}
