package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/chat"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

type ChatService interface {
	Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)
	// BackendReply answers the raw backend contract with the caller's own context.
	BackendReply(ctx context.Context, req *models.BackendChatRequest) (*models.BackendChatReply, error)
}

type ChatConfig struct {
	Policy        chat.Policy
	DefaultLocale string
	MaxProducts   int
	Timeout       time.Duration
}

type chatService struct {
	backend   chat.Backend
	catalog   CatalogService
	formatter *chat.Formatter
	cfg       ChatConfig
}

func NewChatService(backend chat.Backend, catalog CatalogService, formatter *chat.Formatter, cfg ChatConfig) ChatService {
	return &chatService{backend: backend, catalog: catalog, formatter: formatter, cfg: cfg}
}

// Chat implements ChatService.
func (s *chatService) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	locale := req.Locale
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}

	products := s.catalog.AllProducts(ctx)

	reply, err := s.reply(ctx, &models.BackendChatRequest{
		Messages: req.Messages,
		Context:  chat.BuildContext(s.cfg.Policy, products, locale, s.cfg.DefaultLocale, s.cfg.MaxProducts),
		Locale:   locale,
	})
	if err != nil {
		return nil, err
	}

	return s.formatter.Format(reply), nil
}

// BackendReply implements ChatService.
func (s *chatService) BackendReply(ctx context.Context, req *models.BackendChatRequest) (*models.BackendChatReply, error) {
	reply, err := s.reply(ctx, req)
	if err != nil {
		return nil, err
	}

	return &models.BackendChatReply{Reply: reply}, nil
}

func (s *chatService) reply(ctx context.Context, req *models.BackendChatRequest) (string, error) {
	if s.backend == nil {
		return "", errors.NotFoundError("The assistant is not available")
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)

		defer cancel()
	}

	reply, err := s.backend.Reply(ctx, req)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Chat backend failed", slog.String("error", err.Error()))
		return "", errors.ThirdPartyError("The assistant could not answer right now").WithError(err).WithDetail(err.Error())
	}

	return reply, nil
}
