package service

import (
	"log"
	"time"

	"github.com/S-Borna/Intelliplan/internal/config"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/go-resty/resty/v2"
)

type WebhookServiceInterface interface {
	Deliver(notification *model.Notification)
}

// WebhookService mirrors persisted notifications to an external endpoint.
// Delivery is best-effort: failures are logged and never surfaced to the
// operation that produced the notification.
type WebhookService struct {
	client *resty.Client
	url    string
	secret string
}

func NewWebhookService() *WebhookService {
	cfg := config.LoadWebhookConfig()
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &WebhookService{
		client: client,
		url:    cfg.URL,
		secret: cfg.Secret,
	}
}

func (s *WebhookService) Deliver(notification *model.Notification) {
	if s.url == "" {
		return
	}

	req := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(notification)
	if s.secret != "" {
		req.SetHeader("X-Webhook-Secret", s.secret)
	}

	resp, err := req.Post(s.url)
	if err != nil {
		log.Printf("notification webhook delivery failed: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("notification webhook returned %d", resp.StatusCode())
	}
}
