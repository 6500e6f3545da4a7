// Package configuration carries the serve-mode settings and the HTTP API
// that exposes conversion as a service.
package configuration

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the serve-mode settings, populated from the environment.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS,default=:8080"`

	Title        string `env:"DOC_TITLE"`
	Version      string `env:"DOC_VERSION"`
	ServerURL    string `env:"DOC_SERVER_URL"`
	BearerAuth   bool   `env:"DOC_BEARER_AUTH"`
	APIKeyHeader string `env:"DOC_API_KEY_HEADER"`
}

func NewFromEnv() (Config, error) {
	ctx := context.Background()

	var config Config
	err := envconfig.Process(ctx, &config)
	if err != nil {
		return config, errors.Wrap(err, "process env config")
	}
	return config, nil
}
