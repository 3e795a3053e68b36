package db

import (
	"context"
	"fmt"
	"strings"

	"minishop/internal/config"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EnsureDatabase はDB名を指定せずにサーバーへ接続し、対象DBが無ければ作る。
// 作成した場合はtrue。
func EnsureDatabase(ctx context.Context, cfg config.Config, log zerolog.Logger) (bool, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return false, err
	}

	switch cfg.DBDriver {
	case config.DriverMySQL:
		return ensureMySQL(ctx, dsn, log)
	default:
		return ensurePostgres(ctx, dsn, cfg.DBMaintenance, log)
	}
}

func ensurePostgres(ctx context.Context, dsn string, maintenance string, log zerolog.Logger) (bool, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return false, fmt.Errorf("parse dsn: %w", err)
	}
	name := connCfg.Database
	if name == "" {
		return false, fmt.Errorf("database name is empty")
	}

	//管理用DBへ接続
	if maintenance == "" {
		maintenance = "postgres"
	}
	connCfg.Database = maintenance

	log.Info().Str("host", connCfg.Host).Str("user", connCfg.User).Msg("connecting to server")
	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return false, fmt.Errorf("connect %s: %w", maintenance, err)
	}
	defer func() { _ = conn.Close(ctx) }()

	var exists bool
	if err := conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("lookup database: %w", err)
	}
	if exists {
		log.Info().Str("database", name).Msg("database already exists")
		return false, nil
	}

	// CREATE DATABASEはトランザクション外・パラメータ不可
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return false, fmt.Errorf("create database %s: %w", name, err)
	}
	log.Info().Str("database", name).Msg("database created")
	return true, nil
}

func ensureMySQL(ctx context.Context, dsn string, log zerolog.Logger) (bool, error) {
	mc, err := mysqldrv.ParseDSN(dsn)
	if err != nil {
		return false, fmt.Errorf("parse dsn: %w", err)
	}
	name := mc.DBName
	if name == "" {
		return false, fmt.Errorf("database name is empty")
	}
	mc.DBName = ""

	log.Info().Str("addr", mc.Addr).Str("user", mc.User).Msg("connecting to server")
	serverDB, err := gorm.Open(mysql.Open(mc.FormatDSN()), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return false, fmt.Errorf("connect server: %w", err)
	}
	defer func() { _ = Close(serverDB) }()

	var count int64
	if err := serverDB.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM information_schema.schemata WHERE schema_name = ?", name).
		Scan(&count).Error; err != nil {
		return false, fmt.Errorf("lookup database: %w", err)
	}

	ident := "`" + strings.ReplaceAll(name, "`", "``") + "`"
	if err := serverDB.WithContext(ctx).
		Exec("CREATE DATABASE IF NOT EXISTS " + ident + " CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci").
		Error; err != nil {
		return false, fmt.Errorf("create database %s: %w", name, err)
	}

	if count > 0 {
		log.Info().Str("database", name).Msg("database already exists")
		return false, nil
	}
	log.Info().Str("database", name).Msg("database created")
	return true, nil
}
