package redemptionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/service/ledgerservice"
	"github.com/GlebRadaev/minipoints/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=redemptionservice.go -destination=mock_redemptionservice.go -package=redemptionservice

type OrderRepo interface {
	Append(ctx context.Context, order *domain.Order) error
	FindByAccountID(ctx context.Context, accountID int64) ([]domain.Order, error)
}

type Ledger interface {
	Spend(ctx context.Context, userID, amount int64, effect ledgerservice.Effect) (*domain.Account, error)
}

type Catalog interface {
	Find(id string) (domain.CatalogItem, bool)
}

const orderIDPrefix = "ORD-"

type Service struct {
	repo    OrderRepo
	ledger  Ledger
	catalog Catalog
	newID   func() (string, error)
	now     func() time.Time
}

func New(repo OrderRepo, ledger Ledger, catalog Catalog) *Service {
	return &Service{
		repo:    repo,
		ledger:  ledger,
		catalog: catalog,
		newID:   newOrderID,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func newOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return orderIDPrefix + id.String(), nil
}

// Redeem spends item.Points from the account and records the order in one unit.
// On any error neither the balance nor the order log change.
func (s *Service) Redeem(ctx context.Context, userID int64, itemID string) (*domain.Order, *domain.Account, error) {
	if userID <= 0 || itemID == "" {
		return nil, nil, fmt.Errorf("%w: user id and item id are required", domain.ErrInvalidInput)
	}

	item, ok := s.catalog.Find(itemID)
	if !ok {
		zap.L().Info("unknown catalog item", zap.String("item_id", itemID))
		metrics.RecordRedemption(resultOf(domain.ErrItemNotFound), 0)
		return nil, nil, domain.ErrItemNotFound
	}

	var order domain.Order
	account, err := s.ledger.Spend(ctx, userID, item.Points, func(ctx context.Context, account domain.Account) error {
		id, err := s.newID()
		if err != nil {
			return fmt.Errorf("generate order id: %w", err)
		}
		order = domain.Order{
			ID:             id,
			AccountID:      account.ID,
			ItemID:         item.ID,
			ItemName:       item.Name,
			ConsumedPoints: item.Points,
			CreatedAt:      s.now(),
		}
		return s.repo.Append(ctx, &order)
	})
	if err != nil {
		metrics.RecordRedemption(resultOf(err), 0)
		return nil, nil, err
	}

	metrics.RecordRedemption(resultOf(nil), item.Points)
	zap.L().Info("order created",
		zap.String("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.String("item_id", item.ID),
		zap.Int64("points", item.Points),
	)
	return &order, account, nil
}

// ListOrders returns the account's orders, newest first.
func (s *Service) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.repo.FindByAccountID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.StorageError(err)
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return orders, nil
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}
