package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"bookstore-api/confs"
	"bookstore-api/db/migrations"
	"bookstore-api/entities"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres connection, configures the pool and brings the
// schema up to date before returning the handle.
func Connect(cfg *confs.Config) (Database, error) {
	var dsn string

	// Check if DB_URL is provided (connection string)
	dbURL := os.Getenv("DB_URL")
	if dbURL != "" {
		dsn = dbURL

		// Hosted databases usually require SSL; add it when absent
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}

		log.Println("Connecting to database using DB_URL...")
	} else {
		// Build DSN from individual parameters
		dbHost := os.Getenv("DB_HOST")
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		if dbHost == "" || dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
			return nil, fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}

		sslMode := "require"
		if dbHost == "localhost" || dbHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			dbHost, dbUser, dbPassword, dbName, dbPort, sslMode)
		log.Printf("Connecting to database using individual parameters (sslmode=%s)...", sslMode)
	}

	gormLogLevel := logger.Warn
	if cfg.IsDev() {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(gormLogLevel),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	log.Println("Database connection established successfully!")

	if err := migrate(sqlDB, db, cfg); err != nil {
		return nil, err
	}

	return &GormDatabase{DB: db}, nil
}

// migrate runs the embedded goose migrations. Outside production a failure
// falls back to a direct schema sync via AutoMigrate, mirroring how
// development environments are expected to self-heal.
func migrate(sqlDB *sql.DB, db *gorm.DB, cfg *confs.Config) error {
	log.Println("Running database migrations...")

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "."); err != nil {
		if cfg.Env == confs.EnvProduction {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		log.Printf("Migrations failed (%v), falling back to direct schema sync...", err)
		if err := db.AutoMigrate(&entities.User{}, &entities.Book{}); err != nil {
			return fmt.Errorf("schema sync fallback failed: %w", err)
		}
		log.Println("Database synced directly (fallback mode)")
		return nil
	}

	log.Println("Database migrations completed successfully!")
	return nil
}
