package domain

import (
	"slices"
	"time"
)

type Profile struct {
	Username        string `db:"username"`
	FirstName       string `db:"first_name"`
	LastName        string `db:"last_name"`
	LanguageCode    string `db:"language_code"`
	IsPremium       bool   `db:"is_premium"`
	AllowsWriteToPM bool   `db:"allows_write_to_pm"`
}

type Account struct {
	ID         int64     `db:"id"`
	Points     int64     `db:"points"`
	ReferredBy *int64    `db:"referred_by"`
	Referrals  []int64   `db:"referrals"`
	Profile    Profile   `db:"-"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// NewAccount returns a fresh account with an empty balance and no referral links.
func NewAccount(id int64, now time.Time) *Account {
	return &Account{
		ID:        id,
		Points:    0,
		Referrals: []int64{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (a *Account) HasReferral(id int64) bool {
	return slices.Contains(a.Referrals, id)
}

// Clone returns a deep copy so callers can't alias the referral slice or referrer pointer.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.Referrals = append(make([]int64, 0, len(a.Referrals)), a.Referrals...)
	if a.ReferredBy != nil {
		referrer := *a.ReferredBy
		c.ReferredBy = &referrer
	}
	return &c
}

type Order struct {
	ID             string    `db:"id"`
	AccountID      int64     `db:"account_id"`
	ItemID         string    `db:"item_id"`
	ItemName       string    `db:"item_name"`
	ConsumedPoints int64     `db:"consumed_points"`
	CreatedAt      time.Time `db:"created_at"`
}

type CatalogItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Points      int64  `yaml:"points"`
	Description string `yaml:"description"`
}
