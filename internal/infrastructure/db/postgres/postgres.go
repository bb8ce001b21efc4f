package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// Config captures the settings for establishing a Postgres connection.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens a gorm handle, tunes the underlying pool and verifies
// connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = 30 * time.Minute
	}
	sqlDB.SetConnMaxLifetime(lifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the relational schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.Company{},
		&domain.TalentProfile{},
		&domain.ManagerProfile{},
		&domain.Offer{},
		&domain.Application{},
		&domain.Notification{},
	)
}

// SeedRoles inserts the fixed role rows when absent. The authentication gate
// treats a missing default role as fatal, so seeding runs at every startup.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	roles := []domain.Role{
		{Name: domain.RoleAdmin, Description: "Platform administrator"},
		{Name: domain.RoleManager, Description: "Employer recruiter"},
		{Name: domain.RoleTalent, Description: "Job candidate"},
	}
	for _, role := range roles {
		err := db.WithContext(ctx).
			Where(domain.Role{Name: role.Name}).
			FirstOrCreate(&role).Error
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
