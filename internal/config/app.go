package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string

	// AutoPipelineStrict makes request creation fail when the automatic
	// assessment or action-plan trigger fails. Default is fail-open: the
	// request is kept and the error only logged.
	AutoPipelineStrict bool
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:               os.Getenv("APP_NAME"),
			Env:                env,
			Port:               os.Getenv("APP_PORT"),
			BaseURL:            os.Getenv("APP_URL"),
			AutoPipelineStrict: os.Getenv("AUTO_PIPELINE_STRICT") == "true",
		}
	})
	return appConfig
}
