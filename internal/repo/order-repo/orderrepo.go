package orderrepo

import (
	"context"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Append adds the order to the log. Orders are never updated or deleted.
func (r *Repository) Append(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, account_id, item_id, item_name, consumed_points, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.ID, order.AccountID, order.ItemID, order.ItemName, order.ConsumedPoints, order.CreatedAt)
		if err != nil {
			zap.L().Error("can't append order", zap.String("order_id", order.ID), zap.Error(err))
			return err
		}
		return nil
	})
}

// FindByAccountID returns the account's orders, newest first.
func (r *Repository) FindByAccountID(ctx context.Context, accountID int64) ([]domain.Order, error) {
	query := `
        SELECT id, account_id, item_id, item_name, consumed_points, created_at
        FROM orders
        WHERE account_id = $1
        ORDER BY seq DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.AccountID, &order.ItemID, &order.ItemName, &order.ConsumedPoints, &order.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
