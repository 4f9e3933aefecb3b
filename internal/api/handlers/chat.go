package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ChatHandler struct {
	chatService service.ChatService
	validator   *validator.Validate
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService, validator: validator.New()}
}

// Chat godoc
//
//	@Summary		Ask the shop assistant
//	@Description	Sends the conversation with the store policy and catalog as context. Product links in the reply come back as chips.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			chat	body		models.ChatRequest		true	"Conversation"
//	@Success		200		{object}	models.ChatResponse		"Formatted reply"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		502		{object}	response.ErrorResponse	"Assistant unavailable"
//	@Router			/chat [post]
func (h *ChatHandler) Chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.ChatRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid chat input")
			return
		}

		res, err := h.chatService.Chat(r.Context(), &req)
		if err != nil {
			logger.Error("Chat failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, res)
	}
}

// BackendChat godoc
//
//	@Summary		Chat backend contract
//	@Description	Answers {messages, context, locale} with {reply}. Only served when the assistant runs on the language model provider.
//	@Tags			Backend
//	@Accept			json
//	@Produce		json
//	@Param			chat	body		models.BackendChatRequest	true	"Conversation and context"
//	@Success		200		{object}	models.BackendChatReply		"Reply"
//	@Failure		502		{object}	response.ErrorResponse		"Assistant unavailable"
//	@Router			/backend/chat [post]
func (h *ChatHandler) BackendChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.BackendChatRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid backend chat input")
			return
		}

		res, err := h.chatService.BackendReply(r.Context(), &req)
		if err != nil {
			logger.Error("Backend chat failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		_ = response.WriteJson(w, http.StatusOK, res)
	}
}
