package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/model"
)

// ResetTokenRepository persists pending password resets. Tokens live in the
// same database as users so restarts and horizontal scaling do not silently
// invalidate or duplicate them.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error)
	Delete(ctx context.Context, token string) error
	// Consume atomically claims an unexpired token, returning whether this
	// caller won the claim. Of any number of concurrent attempts exactly one
	// observes true.
	Consume(ctx context.Context, token string, now time.Time) (bool, error)
}

type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository builds a GORM-backed repository.
func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Create(ctx context.Context, token *model.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	var row model.PasswordResetToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *resetTokenRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.PasswordResetToken{}).Error
}

func (r *resetTokenRepository) Consume(ctx context.Context, token string, now time.Time) (bool, error) {
	// The conditional delete is the single point of consumption: the row
	// check and removal happen in one statement, so concurrent redeemers
	// cannot both see RowsAffected == 1.
	res := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		Delete(&model.PasswordResetToken{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
