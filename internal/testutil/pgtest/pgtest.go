//go:build integration

// Package pgtest はintegrationテスト用のPostgreSQLコンテナを立てる。
package pgtest

import (
	"context"
	"strconv"
	"testing"
	"time"

	"minishop/internal/config"
	"minishop/internal/infra/db"
	"minishop/internal/provision"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const (
	user     = "shop"
	password = "shop-pass"
	bootDB   = "postgres"
)

// コンテナを起動して、接続先のConfigを返す。
// DB_NAMEはまだ存在しない（provision.Runで作られる）
func Start(t *testing.T, dbName string) config.Config {
	t.Helper()
	ctx := context.Background()

	c, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(bootDB),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	p, err := strconv.Atoi(port.Port())
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	return config.Config{
		DBDriver:      config.DriverPostgres,
		DBHost:        host,
		DBPort:        p,
		DBUser:        user,
		DBPassword:    password,
		DBName:        dbName,
		DBSSLMode:     "disable",
		DBMaintenance: bootDB,
		DBLogLevel:    "silent",
	}
}

// コンテナ起動 → provision → 接続済みの*gorm.DB
func Provisioned(t *testing.T) (*gorm.DB, config.Config) {
	t.Helper()

	cfg := Start(t, "minishop_test")
	if _, err := provision.Run(context.Background(), cfg, zerolog.Nop()); err != nil {
		t.Fatalf("provision: %v", err)
	}

	gormDB, err := db.Connect(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gormDB) })
	return gormDB, cfg
}
