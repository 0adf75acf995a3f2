package memstore

import (
	"slices"
	"strconv"
	"time"

	"github.com/GlebRadaev/minipoints/internal/domain"
)

type snapshot struct {
	Accounts map[string]accountRecord `json:"accounts"`
	Orders   []orderRecord            `json:"orders"`
}

type accountRecord struct {
	ID              int64     `json:"telegramId"`
	Points          int64     `json:"points"`
	ReferredBy      *int64    `json:"referredBy"`
	Referrals       []int64   `json:"referrals"`
	Username        string    `json:"username"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	LanguageCode    string    `json:"languageCode"`
	IsPremium       bool      `json:"isPremium"`
	AllowsWriteToPM bool      `json:"allowsWriteToPm"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type orderRecord struct {
	ID             string    `json:"id"`
	AccountID      int64     `json:"telegramId"`
	ItemID         string    `json:"itemId"`
	ItemName       string    `json:"itemName"`
	ConsumedPoints int64     `json:"consumedPoints"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newSnapshot(accounts map[int64]*domain.Account, orders []domain.Order) snapshot {
	snap := snapshot{
		Accounts: make(map[string]accountRecord, len(accounts)),
		Orders:   make([]orderRecord, 0, len(orders)),
	}
	for id, acc := range accounts {
		snap.Accounts[strconv.FormatInt(id, 10)] = accountRecord{
			ID:              acc.ID,
			Points:          acc.Points,
			ReferredBy:      acc.ReferredBy,
			Referrals:       acc.Referrals,
			Username:        acc.Profile.Username,
			FirstName:       acc.Profile.FirstName,
			LastName:        acc.Profile.LastName,
			LanguageCode:    acc.Profile.LanguageCode,
			IsPremium:       acc.Profile.IsPremium,
			AllowsWriteToPM: acc.Profile.AllowsWriteToPM,
			CreatedAt:       acc.CreatedAt,
			UpdatedAt:       acc.UpdatedAt,
		}
	}
	for _, o := range orders {
		snap.Orders = append(snap.Orders, orderRecord(o))
	}
	return snap
}

func (r accountRecord) toDomain() *domain.Account {
	referrals := slices.Clone(r.Referrals)
	if referrals == nil {
		referrals = []int64{}
	}
	return &domain.Account{
		ID:         r.ID,
		Points:     r.Points,
		ReferredBy: r.ReferredBy,
		Referrals:  referrals,
		Profile: domain.Profile{
			Username:        r.Username,
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			LanguageCode:    r.LanguageCode,
			IsPremium:       r.IsPremium,
			AllowsWriteToPM: r.AllowsWriteToPM,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r orderRecord) toDomain() domain.Order {
	return domain.Order(r)
}
