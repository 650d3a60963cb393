package boot

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env     string `env:"ENV,default=dev"`
	BaseURL string `env:"FRONTEND_BASE_URL,required"`
	DataDir string `env:"DATA_DIR,default=./data"`
	Server  struct {
		Port        string `env:"PORT,default=5000"`
		MetricsPort string `env:"METRICS_PORT,default=8081"`
		Origins     string `env:"ALLOWED_ORIGINS,default=*"`
	}
	Mongo struct {
		URL    string `env:"DB_URL,required"`
		DBName string `env:"DB_NAME,default=docnest"`
	}
	Auth struct {
		SessionSecret string `env:"SESSION_SECRET,required"`
		ActionSecret  string `env:"ACTION_SECRET,required"`
	}
	Email struct {
		Provider string `env:"EMAIL_PROVIDER,default=smtp"`
		From     string `env:"EMAIL_FROM"`
		SMTP     struct {
			Host     string `env:"SMTP_HOST"`
			Port     string `env:"SMTP_PORT,default=587"`
			Username string `env:"EMAIL_USER"`
			Password string `env:"EMAIL_PASS"`
		}
		Mailgun struct {
			Domain string `env:"MAILGUN_DOMAIN"`
			APIKey string `env:"MAILGUN_API_KEY"`
		}
		TemplateDir string `env:"EMAIL_TEMPLATE_DIR"`
	}
}

func Load() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process(context.Background(), config); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev"
}

func (c *Config) DataDirectory() string {
	return c.DataDir
}
