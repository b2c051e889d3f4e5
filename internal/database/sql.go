package database

import (
	"embed"
	"fmt"

	"api/internal/models"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

// InitDB opens the configured database and applies pending migrations.
func InitDB(config models.DatabaseConfiguration) *gorm.DB {
	var dialector gorm.Dialector
	gooseDialect := "postgres"

	switch config.Type {
	case "sqlite":
		dialector = sqlite.Open(config.Path)
		gooseDialect = "sqlite3"
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			config.Host, config.User, config.Password, config.Name, config.Port, config.SSLMode,
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		zap.L().Fatal("Failed to connect to database",
			zap.String("type", config.Type), zap.Error(err))
	}

	migrate(db, gooseDialect)

	return db
}

func migrate(db *gorm.DB, dialect string) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Fatal("Failed to get database handle", zap.Error(err))
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		zap.L().Fatal("Failed to set migration dialect", zap.String("dialect", dialect), zap.Error(err))
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}

	zap.L().Info("Database migrations applied")
}
