package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/mail"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
)

// PurchaseService exposes purchase operations.
type PurchaseService interface {
	// CreatePurchase records a pending purchase. The notification email is
	// best-effort: a send failure is logged and never affects the already
	// committed purchase.
	CreatePurchase(ctx context.Context, userID uint, userEmail string, planID uint, amount float64) (*model.Purchase, error)
	ListPurchases(ctx context.Context) ([]model.PurchaseDetail, error)
	// UpdateStatus moves a purchase to a new status. A transition into
	// completed sends the buyer a confirmation email, best-effort.
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	users     repository.UserRepository
	plans     repository.PlanRepository
	mailer    mail.Dispatcher
}

// NewPurchaseService builds a PurchaseService.
func NewPurchaseService(purchases repository.PurchaseRepository, users repository.UserRepository, plans repository.PlanRepository, mailer mail.Dispatcher) PurchaseService {
	return &purchaseService{purchases: purchases, users: users, plans: plans, mailer: mailer}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, userID uint, userEmail string, planID uint, amount float64) (*model.Purchase, error) {
	purchase := &model.Purchase{
		UserID: userID,
		PlanID: planID,
		Amount: amount,
		Status: model.PurchaseStatusPending,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	if !s.mailer.SendPurchaseNotification(userEmail, purchase.ID) {
		slog.Warn("purchase notification email not sent", "user_id", userID, "purchase_id", purchase.ID)
	}

	return purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]model.PurchaseDetail, error) {
	return s.purchases.ListDetailed(ctx)
}

func (s *purchaseService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !model.ValidPurchaseStatus(status) {
		return apperrors.ErrInvalidStatus
	}

	purchase, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPurchaseNotFound
		}
		return fmt.Errorf("find purchase: %w", err)
	}

	if err := s.purchases.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if status == model.PurchaseStatusCompleted && purchase.Status != model.PurchaseStatusCompleted {
		s.sendConfirmation(ctx, purchase)
	}
	return nil
}

// sendConfirmation emails the buyer after a purchase completes. Like the
// pending notification, failures are logged and never surfaced.
func (s *purchaseService) sendConfirmation(ctx context.Context, purchase *model.Purchase) {
	user, err := s.users.FindByID(ctx, purchase.UserID)
	if err != nil {
		slog.Warn("purchase confirmation skipped, buyer lookup failed", "purchase_id", purchase.ID, "error", err)
		return
	}
	plan, err := s.plans.FindByID(ctx, purchase.PlanID)
	if err != nil {
		slog.Warn("purchase confirmation skipped, plan lookup failed", "purchase_id", purchase.ID, "error", err)
		return
	}
	if !s.mailer.SendPurchaseConfirmation(user.Email, user.Name, plan.Name) {
		slog.Warn("purchase confirmation email not sent", "purchase_id", purchase.ID, "user_id", user.ID)
	}
}
