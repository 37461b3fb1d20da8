package database

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rsvp.link/configs/configslog"
)

// Connect opens the Postgres connection for the relational backend. The
// caller owns the handle: open once at startup, close through CloseDB at
// shutdown.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Error("database connection failed", zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		configslog.Log.Error("database ping failed", zap.Error(err))
		return nil, err
	}

	configslog.SLog.Info("Database connection established")
	return db, nil
}

// CloseDB closes the underlying connection pool.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("database close failed", zap.Error(err))
	}
}
