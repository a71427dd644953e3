package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Configはアプリ全体の設定
type Config struct {
	Port     string `env:"PORT" envDefault:"5000"`
	GoEnv    string `env:"GO_ENV" envDefault:"dev"` // dev/prod
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// json/text
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	DB DBConfig

	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"12"`

	Storage StorageConfig

	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DBConfig struct {
	Driver   string `env:"DB_DRIVER" envDefault:"postgres"` // postgres/mysql/sqlite
	URL      string `env:"DATABASE_URL"`                    // あれば最優先
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"restaurant_db"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type StorageConfig struct {
	Driver     string `env:"STORAGE_DRIVER" envDefault:"local"` // local/s3
	UploadDir  string `env:"UPLOAD_DIR" envDefault:"uploads"`
	PublicPath string `env:"UPLOAD_PUBLIC_PATH" envDefault:"/uploads"`
	MaxBytes   int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`

	S3Bucket   string `env:"S3_BUCKET"`
	S3Region   string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint string `env:"S3_ENDPOINT"` // MinIOなど
	S3Key      string `env:"S3_KEY"`
	S3Secret   string `env:"S3_SECRET"`
	S3URL      string `env:"S3_URL"`
}

const minSecretLen = 32

// Loadは.env（任意）と環境変数から設定を読む
func Load() (Config, error) {
	// .envは無くてもよい
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	//必須チェック
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.GoEnv != "dev" && len(c.JWTSecret) < minSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes outside dev", minSecretLen)
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("BCRYPT_COST must be between 4 and 31")
	}

	switch c.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER %q is not supported", c.DB.Driver)
	}

	switch c.Storage.Driver {
	case "local":
		if c.Storage.UploadDir == "" {
			return errors.New("UPLOAD_DIR is required")
		}
	case "s3":
		if c.Storage.S3Bucket == "" {
			return errors.New("S3_BUCKET is required for STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER %q is not supported", c.Storage.Driver)
	}
	if c.Storage.MaxBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
