package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DotEnvFile        = ".env"
	MinJWTSecretBytes = 32
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL"    envDefault:"24h"`

	// RedisAddr пустой - один инстанс без redis: события через локальный hub, каталог без кеша.
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB"`
	RedisEventsChannel string        `env:"REDIS_EVENTS_CHANNEL" envDefault:"jalsa:events"`
	CatalogCacheTTL    time.Duration `env:"CATALOG_CACHE_TTL"    envDefault:"30s"`

	AllowedOrigins []string `env:"ALLOWED_ORIGIN" envSeparator:","`
	PhoneRegion    string   `env:"PHONE_REGION"   envDefault:"IN"`
	WhatsAppNumber string   `env:"WHATSAPP_NUMBER"`

	// AdminEmail и AdminPassword нужны только cmd/seed-admin.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	LogLevel string `env:"LOG_LEVEL"`
}

// LoadConfig читает .env (если есть), переменные окружения и флаги args. Переменные окружения
// приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	var flagsConfig Config
	envConfig, envParseErr := env.ParseAs[Config]()
	if envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if err := loadFlags(&flagsConfig, args); err != nil {
		return nil, err
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

// RequireJWTSecret проверяет секрет подписи токенов, без него сервер не запускается.
func (c *Config) RequireJWTSecret() error {
	if len(c.JWTSecret) < MinJWTSecretBytes {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretBytes)
	}
	return nil
}

// loadDotEnv не перезаписывает уже заданные переменные окружения.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %s", path, err.Error())
}

func loadFlags(flagConfig *Config, args []string) error {
	fset := flag.NewFlagSet("jalsa", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fset.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fset.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %s", err.Error())
	}
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	merged := *envConfig
	merged.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	merged.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	merged.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	return &merged
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
