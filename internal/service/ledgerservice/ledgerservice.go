package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/pg"
	"github.com/GlebRadaev/minipoints/pkg/keylock"
	"github.com/GlebRadaev/minipoints/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

// AccountRepo returns nil, nil from the Find methods when the account does not exist.
// Create never overwrites an existing account.
type AccountRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (bool, error)
	Save(ctx context.Context, account *domain.Account) error
}

// Effect runs inside a debit's lock and transaction and sees the post-debit account.
// A non-nil error rolls the debit back.
type Effect func(ctx context.Context, account domain.Account) error

const DefaultReferralBonus int64 = 50

type Service struct {
	repo          AccountRepo
	txManager     pg.TXManager
	locks         *keylock.KeyLock[int64]
	referralBonus int64
	now           func() time.Time
}

func New(repo AccountRepo, txManager pg.TXManager, referralBonus int64) *Service {
	if referralBonus <= 0 {
		referralBonus = DefaultReferralBonus
	}
	return &Service{
		repo:          repo,
		txManager:     txManager,
		locks:         keylock.New[int64](),
		referralBonus: referralBonus,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.StorageError(err)
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// UpsertProfile creates the account on first sight and always replaces its profile.
func (s *Service) UpsertProfile(ctx context.Context, userID int64, profile domain.Profile) (*domain.Account, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", domain.ErrInvalidInput)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	var result *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		now := s.now()
		if account == nil {
			// Another process may create the row first; lock whatever ends up stored.
			created, err := s.repo.Create(ctx, domain.NewAccount(userID, now))
			if err != nil {
				return err
			}
			if created {
				zap.L().Info("account created", zap.Int64("user_id", userID))
			}
			if account, err = s.repo.FindByIDForUpdate(ctx, userID); err != nil {
				return err
			}
			if account == nil {
				return fmt.Errorf("account %d missing after create", userID)
			}
		}
		account.Profile = profile
		account.UpdatedAt = now

		if err := s.repo.Save(ctx, account); err != nil {
			return err
		}
		result = account
		return nil
	})
	if err != nil {
		zap.L().Error("failed to upsert profile", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return result, nil
}

// AttributeReferral links newUserID to referrerID and credits the referrer once.
// It reports false without changing anything when the link is not allowed.
func (s *Service) AttributeReferral(ctx context.Context, newUserID, referrerID int64) (bool, error) {
	if newUserID == referrerID {
		return false, nil
	}

	unlock := s.locks.Lock(newUserID, referrerID)
	defer unlock()

	attributed := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Row locks are taken in id order, matching the keylock order.
		first, second := newUserID, referrerID
		if first > second {
			first, second = second, first
		}
		accounts := make(map[int64]*domain.Account, 2)
		for _, id := range []int64{first, second} {
			account, err := s.repo.FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			accounts[id] = account
		}

		referred, referrer := accounts[newUserID], accounts[referrerID]
		switch {
		case referred == nil, referrer == nil:
			return nil
		case referred.ReferredBy != nil:
			return nil
		case referrer.HasReferral(newUserID):
			return nil
		case referrer.Points > math.MaxInt64-s.referralBonus:
			zap.L().Warn("referral bonus would overflow referrer balance",
				zap.Int64("referrer_id", referrerID),
				zap.Int64("points", referrer.Points),
			)
			return nil
		}

		now := s.now()
		referred.ReferredBy = &referrerID
		referred.UpdatedAt = now
		referrer.Referrals = append(referrer.Referrals, newUserID)
		referrer.Points += s.referralBonus
		referrer.UpdatedAt = now

		if err := s.repo.Save(ctx, referred); err != nil {
			return err
		}
		if err := s.repo.Save(ctx, referrer); err != nil {
			return err
		}
		attributed = true
		return nil
	})
	if err != nil {
		zap.L().Error("failed to attribute referral",
			zap.Int64("user_id", newUserID),
			zap.Int64("referrer_id", referrerID),
			zap.Error(err),
		)
		return false, domain.StorageError(err)
	}

	if attributed {
		metrics.RecordReferral()
		zap.L().Info("referral attributed",
			zap.Int64("user_id", newUserID),
			zap.Int64("referrer_id", referrerID),
			zap.Int64("bonus", s.referralBonus),
		)
	}
	return attributed, nil
}

func (s *Service) Credit(ctx context.Context, userID, amount int64) (*domain.Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	return s.apply(ctx, userID, amount, nil)
}

func (s *Service) Debit(ctx context.Context, userID, amount int64) (*domain.Account, error) {
	return s.Spend(ctx, userID, amount, nil)
}

// Spend debits amount and runs effect in the same critical section, so the balance check,
// the debit and whatever effect records happen all-or-nothing.
func (s *Service) Spend(ctx context.Context, userID, amount int64, effect Effect) (*domain.Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	return s.apply(ctx, userID, -amount, effect)
}

func (s *Service) apply(ctx context.Context, userID, delta int64, effect Effect) (*domain.Account, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	var result *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}
		switch {
		case delta > 0 && account.Points > math.MaxInt64-delta:
			return fmt.Errorf("%w: credit would overflow the balance", domain.ErrInvalidInput)
		case account.Points+delta < 0:
			return domain.ErrInsufficientBalance
		}

		account.Points += delta
		account.UpdatedAt = s.now()
		if err := s.repo.Save(ctx, account); err != nil {
			return err
		}
		if effect != nil {
			if err := effect(ctx, *account.Clone()); err != nil {
				return err
			}
		}
		result = account
		return nil
	})
	if err != nil {
		err = domain.StorageError(err)
		log := zap.L().Info
		if errors.Is(err, domain.ErrStorage) {
			log = zap.L().Error
		}
		log("balance change rejected",
			zap.Int64("user_id", userID),
			zap.Int64("delta", delta),
			zap.Error(err),
		)
		return nil, err
	}

	zap.L().Debug("balance changed",
		zap.Int64("user_id", userID),
		zap.Int64("delta", delta),
		zap.Int64("points", result.Points),
	)
	return result, nil
}
