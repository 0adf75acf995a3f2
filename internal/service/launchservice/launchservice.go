package launchservice

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=launchservice.go -destination=mock_launchservice.go -package=launchservice

type Ledger interface {
	UpsertProfile(ctx context.Context, userID int64, profile domain.Profile) (*domain.Account, error)
	AttributeReferral(ctx context.Context, newUserID, referrerID int64) (bool, error)
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
}

const DefaultReferralLinkBase = "https://t.me/your_bot_username/app"

type LaunchResult struct {
	Account      *domain.Account
	ReferralLink string
}

type Service struct {
	ledger   Ledger
	linkBase string
}

func New(ledger Ledger, linkBase string) *Service {
	if linkBase == "" {
		linkBase = DefaultReferralLinkBase
	}
	return &Service{
		ledger:   ledger,
		linkBase: linkBase,
	}
}

// Launch records a mini-app open: it refreshes the profile, attributes the referral carried
// in startParam when possible and returns the user's own referral link. Replays are harmless.
func (s *Service) Launch(ctx context.Context, userID int64, profile domain.Profile, startParam string) (*LaunchResult, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", domain.ErrInvalidInput)
	}

	account, err := s.ledger.UpsertProfile(ctx, userID, profile)
	if err != nil {
		return nil, err
	}
	metrics.RecordLaunch()

	if referrerID, ok := parseReferrer(startParam); ok && account.ReferredBy == nil {
		attributed, err := s.ledger.AttributeReferral(ctx, userID, referrerID)
		if err != nil {
			return nil, err
		}
		if attributed {
			if account, err = s.ledger.GetAccount(ctx, userID); err != nil {
				return nil, err
			}
		}
	}

	return &LaunchResult{
		Account:      account,
		ReferralLink: ReferralLink(s.linkBase, userID),
	}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.Account, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", domain.ErrInvalidInput)
	}
	return s.ledger.GetAccount(ctx, userID)
}

// parseReferrer accepts only positive decimal ids; anything else is ignored.
func parseReferrer(startParam string) (int64, bool) {
	startParam = strings.TrimSpace(startParam)
	if startParam == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(startParam, 10, 64)
	if err != nil || id <= 0 {
		zap.L().Debug("ignoring start param", zap.String("start_param", startParam))
		return 0, false
	}
	return id, true
}

// ReferralLink returns base with startapp set to userID, keeping any query base already has.
func ReferralLink(base string, userID int64) string {
	id := strconv.FormatInt(userID, 10)
	u, err := url.Parse(base)
	if err != nil {
		return base + "?startapp=" + id
	}
	q := u.Query()
	q.Set("startapp", id)
	u.RawQuery = q.Encode()
	return u.String()
}

