package db

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"minishop/internal/config"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		// 一意制約/外部キー/CHECK違反をgormのエラーに揃える
		TranslateError: true,
		Logger:         newGormLogger(cfg, log),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	return gormDB, nil
}

// 接続を閉じる
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func Dialector(cfg config.Config) (gorm.Dialector, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return postgres.Open(dsn), nil
	}
}

// DSN は対象DBへの接続文字列。DATABASE_URL があれば最優先で使う
func DSN(cfg config.Config) (string, error) {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL, nil
	}

	switch cfg.DBDriver {
	case config.DriverMySQL:
		mc := mysqldrv.NewConfig()
		mc.User = cfg.DBUser
		mc.Passwd = cfg.DBPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort))
		mc.DBName = cfg.DBName
		mc.ParseTime = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN(), nil
	case config.DriverPostgres:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			quote(cfg.DBHost), cfg.DBPort, quote(cfg.DBUser), quote(cfg.DBPassword), quote(cfg.DBName), quote(cfg.DBSSLMode),
		), nil
	default:
		return "", fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}
}

// key=value形式の値をクォートする
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// gormのログもzerologへ流す
func newGormLogger(cfg config.Config, log zerolog.Logger) logger.Interface {
	level := gormLogLevel(cfg.DBLogLevel)
	w := &gormWriter{
		log:   log.With().Str("component", "gorm").Logger(),
		level: zerologLevel(level),
	}
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// zerologのPrintfはdebug固定なので、レベルを合わせて書く
type gormWriter struct {
	log   zerolog.Logger
	level zerolog.Level
}

func (w *gormWriter) Printf(format string, args ...interface{}) {
	w.log.WithLevel(w.level).Msgf(format, args...)
}

func gormLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func zerologLevel(l logger.LogLevel) zerolog.Level {
	switch l {
	case logger.Error:
		return zerolog.ErrorLevel
	case logger.Info:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}
