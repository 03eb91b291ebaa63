package db

import (
	"fmt"
	"net"
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func GetDbConn(dbname, host, port, user, pas string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(postgresURL(dbname, host, port, user, pas)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetMigrateURL golang-migrate 使用的連線字串
func GetMigrateURL(dbname, host, port, user, pas string) string {
	return postgresURL(dbname, host, port, user, pas)
}

// postgresURL 帳密由 url.UserPassword 編碼, 可含 @ : / 等字元
func postgresURL(dbname, host, port, user, pas string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pas),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + dbname,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// GetSqliteConn 本機開發與測試用, 只開一條連線避免 in-memory 資料庫被拆開
func GetSqliteConn(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// InMemorySqliteDSN 每個名稱對應一個獨立的記憶體資料庫
func InMemorySqliteDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}
