package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/pg"
	"go.uber.org/zap"
)

const selectAccount = `
        SELECT id, points, referred_by, referrals, username, first_name, last_name,
               language_code, is_premium, allows_write_to_pm, created_at, updated_at
        FROM accounts
        WHERE id = $1
    `

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

// FindByID returns nil, nil when the account does not exist.
func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.find(ctx, selectAccount, id)
}

// FindByIDForUpdate row-locks the account until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	return r.find(ctx, selectAccount+"FOR UPDATE", id)
}

func (r *Repository) find(ctx context.Context, query string, id int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, query, id)

	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.Points,
		&account.ReferredBy,
		&account.Referrals,
		&account.Profile.Username,
		&account.Profile.FirstName,
		&account.Profile.LastName,
		&account.Profile.LanguageCode,
		&account.Profile.IsPremium,
		&account.Profile.AllowsWriteToPM,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Int64("account_id", id), zap.Error(err))
		return nil, err
	}
	if account.Referrals == nil {
		account.Referrals = []int64{}
	}
	return &account, nil
}

// Create inserts a fresh account and reports whether this call created it. An existing row
// is left untouched, so concurrent first launches never overwrite each other.
func (r *Repository) Create(ctx context.Context, account *domain.Account) (bool, error) {
	query := `
        INSERT INTO accounts (id, points, referred_by, referrals, username, first_name, last_name,
                              language_code, is_premium, allows_write_to_pm, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (id) DO NOTHING
    `
	var created bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			account.ID,
			account.Points,
			account.ReferredBy,
			referralsOf(account),
			account.Profile.Username,
			account.Profile.FirstName,
			account.Profile.LastName,
			account.Profile.LanguageCode,
			account.Profile.IsPremium,
			account.Profile.AllowsWriteToPM,
			account.CreatedAt,
			account.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("failed to create account", zap.Int64("account_id", account.ID), zap.Error(err))
			return err
		}
		created = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// Save overwrites an existing account, normally one locked by FindByIDForUpdate.
// referred_by is never replaced once set.
func (r *Repository) Save(ctx context.Context, account *domain.Account) error {
	query := `
        UPDATE accounts
        SET points = $2,
            referred_by = COALESCE(referred_by, $3),
            referrals = $4,
            username = $5,
            first_name = $6,
            last_name = $7,
            language_code = $8,
            is_premium = $9,
            allows_write_to_pm = $10,
            updated_at = $11
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			account.ID,
			account.Points,
			account.ReferredBy,
			referralsOf(account),
			account.Profile.Username,
			account.Profile.FirstName,
			account.Profile.LastName,
			account.Profile.LanguageCode,
			account.Profile.IsPremium,
			account.Profile.AllowsWriteToPM,
			account.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("failed to save account", zap.Int64("account_id", account.ID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("save account %d: %w", account.ID, pgx.ErrNoRows)
		}
		return nil
	})
}

func referralsOf(account *domain.Account) []int64 {
	if account.Referrals == nil {
		return []int64{}
	}
	return account.Referrals
}
