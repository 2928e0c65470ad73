package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jellydator/validation"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	apiPortEnvKey         = "API_PORT"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	logLevelEnvKey        = "LOG_LEVEL"
	bcryptCostEnvKey      = "BCRYPT_COST"
	rateLimitEnvKey       = "RATE_LIMIT_RPS"
	rateBurstEnvKey       = "RATE_LIMIT_BURST"
	shutdownTimeoutEnvKey = "SHUTDOWN_TIMEOUT"
)

type App struct {
	Port            string        `mapstructure:"API_PORT"`
	DBConnectionURL string        `mapstructure:"DB_CONNECTION_URL"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	BcryptCost      int           `mapstructure:"BCRYPT_COST"`
	RateLimit       float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateBurst       int           `mapstructure:"RATE_LIMIT_BURST"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// NewApp reads the application config from the environment.
func NewApp() (App, error) {
	v := viper.New()

	v.SetDefault(apiPortEnvKey, "8000")
	v.SetDefault(dbConnEnvKey, "sqlite://sqlapp.db")
	v.SetDefault(logLevelEnvKey, "info")
	v.SetDefault(bcryptCostEnvKey, bcrypt.DefaultCost)
	v.SetDefault(rateLimitEnvKey, 0)
	v.SetDefault(rateBurstEnvKey, 20)
	v.SetDefault(shutdownTimeoutEnvKey, "10s")

	v.AutomaticEnv()

	var app App
	if err := v.Unmarshal(&app); err != nil {
		return App{}, fmt.Errorf("decode config: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.DBConnectionURL, validation.Required, validation.By(supportedDSN)),
		validation.Field(&a.BcryptCost, validation.Min(bcrypt.MinCost), validation.Max(bcrypt.MaxCost)),
		validation.Field(&a.RateLimit, validation.Min(0.0)),
		validation.Field(&a.RateBurst, validation.Min(1)),
		validation.Field(&a.ShutdownTimeout, validation.Min(time.Second)),
	)
}

func supportedDSN(value any) error {
	dsn, _ := value.(string)
	if strings.HasPrefix(dsn, "postgres") || strings.HasPrefix(dsn, "sqlite://") {
		return nil
	}
	return fmt.Errorf("unsupported database url %q", dsn)
}
