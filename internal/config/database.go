package config

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"participant_admin/internal/models"
)

// InitDB opens the database connection, bounds the connection pool and
// ensures the schema exists. Any failure here is fatal: the service must
// not start without its tables.
func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Bounded pool: at most MaxOpenConns in-flight connections, each borrowed
	// for the duration of one operation.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Idempotent schema bootstrap for the four tables.
	err = db.AutoMigrate(&models.AdminUser{}, &models.Participant{}, &models.WorkDetail{}, &models.HomeDetail{})
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	return db
}

// SeedAdmin creates or refreshes the single bootstrap admin credential from
// configuration. Missing credentials abort startup before any traffic is
// served.
func SeedAdmin(db *gorm.DB, cfg *Config) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := models.AdminUser{Username: cfg.AdminUsername, Password: string(hash)}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password"}),
	}).Create(&admin).Error
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
}
