package db

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/model"
)

// Migration is one ordered, idempotent schema step. Applied versions are
// recorded in schema_migrations so each step runs at most once.
type Migration struct {
	Version uint
	Name    string
	Run     func(tx *gorm.DB) error
}

// SchemaMigration records an applied migration version.
type SchemaMigration struct {
	Version   uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	AppliedAt time.Time
}

// Migrations is the single ordered migration list for the whole schema.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "core tables",
		Run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&model.User{},
				&model.Plan{},
				&model.Review{},
				&model.Contact{},
			)
		},
	},
	{
		Version: 2,
		Name:    "commerce and demo tables",
		Run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&model.Purchase{},
				&model.DemoSession{},
				&model.EmailConfig{},
			)
		},
	},
	{
		Version: 3,
		Name:    "password reset tokens",
		Run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&model.PasswordResetToken{})
		},
	},
	{
		Version: 4,
		Name:    "seed platform admin",
		Run:     seedPlatformAdmin,
	},
}

// Migrate applies every pending migration in order.
func Migrate(db *gorm.DB, migrations []Migration) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("migrate schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied int64
		if err := db.Model(&SchemaMigration{}).Where("version = ?", m.Version).Count(&applied).Error; err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if applied > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		slog.Info("migration applied", "version", m.Version, "name", m.Name)
	}
	return nil
}

func seedPlatformAdmin(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&model.User{}).Where("email = ?", "admin@netdash.com").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return tx.Create(&model.User{
		Email:        "admin@netdash.com",
		PasswordHash: string(hash),
		FirstName:    "NetDash",
		LastName:     "Admin",
		Name:         "NetDash Admin",
		Role:         model.RolePlatformAdmin,
	}).Error
}
