package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DBDriver      string // postgres / mysql
	DatabaseURL   string // あれば最優先（DSNそのまま）
	DBHost        string
	DBPort        int
	DBUser        string
	DBPassword    string // 空でもよい（trust認証など）
	DBName        string
	DBSSLMode     string // postgresのみ
	DBMaintenance string // DB作成時に接続するDB（postgresのみ）

	BcryptCost int

	LogLevel   string // debug/info/warn/error
	LogFormat  string // json / console
	DBLogLevel string // gormのログ（silent/error/warn/info）
}

var keys = []string{
	"PORT",
	"DB_DRIVER",
	"DATABASE_URL",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSLMODE",
	"DB_MAINTENANCE_NAME",
	"BCRYPT_COST",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"DB_LOG_LEVEL",
}

// 既定値つきのviperを作る（cobraのflagもここにbindする）
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAINTENANCE_NAME", "postgres")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DB_LOG_LEVEL", "warn")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return v
}

// Loadは.env（任意）と環境変数から読む
func Load(envFiles ...string) (Config, error) {
	if err := LoadEnvFiles(envFiles...); err != nil {
		return Config{}, err
	}
	return FromViper(NewViper())
}

// .envが無いのはエラーにしない
func LoadEnvFiles(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port: v.GetString("PORT"),

		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		DBHost:        v.GetString("DB_HOST"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		DBSSLMode:     v.GetString("DB_SSLMODE"),
		DBMaintenance: v.GetString("DB_MAINTENANCE_NAME"),

		BcryptCost: v.GetInt("BCRYPT_COST"),

		LogLevel:   v.GetString("LOG_LEVEL"),
		LogFormat:  v.GetString("LOG_FORMAT"),
		DBLogLevel: v.GetString("DB_LOG_LEVEL"),
	}

	//ポートはドライバで既定値が変わる
	switch cfg.DBDriver {
	case DriverPostgres:
		cfg.DBPort = 5432
	case DriverMySQL:
		cfg.DBPort = 3306
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMySQL, cfg.DBDriver)
	}
	if s := v.GetString("DB_PORT"); s != "" {
		p := v.GetInt("DB_PORT")
		if p <= 0 {
			return Config{}, fmt.Errorf("DB_PORT must be number: %q", s)
		}
		cfg.DBPort = p
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DBHost == "" {
			return Config{}, fmt.Errorf("DB_HOST is required")
		}
		if cfg.DBUser == "" {
			return Config{}, fmt.Errorf("DB_USER is required")
		}
		if cfg.DBName == "" {
			return Config{}, fmt.Errorf("DB_NAME is required")
		}
	}

	return cfg, nil
}

// ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
