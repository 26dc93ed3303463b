package config

import (
	"os"
	"sync"
)

// WebhookConfig drives the outbound notification mirror. An empty URL
// disables delivery entirely.
type WebhookConfig struct {
	URL    string
	Secret string
}

var (
	webhookConfig *WebhookConfig
	webhookOnce   sync.Once
)

func LoadWebhookConfig() *WebhookConfig {
	webhookOnce.Do(func() {
		webhookConfig = &WebhookConfig{
			URL:    os.Getenv("NOTIFY_WEBHOOK_URL"),
			Secret: os.Getenv("NOTIFY_WEBHOOK_SECRET"),
		}
	})
	return webhookConfig
}
