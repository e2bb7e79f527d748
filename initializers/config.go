package initializers

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full gateway configuration, loaded from the environment
// after LoadEnv has run.
type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	BackendBaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	RedisAddr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string        `envconfig:"REDIS_PASSWORD" default:""`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"48h"`
	AllowOrigins   []string      `envconfig:"ALLOW_ORIGINS" default:"http://localhost:5173"`
	RateLimitRPS   float64       `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int           `envconfig:"RATE_LIMIT_BURST" default:"40"`
	CookieSecure   bool          `envconfig:"COOKIE_SECURE" default:"false"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
