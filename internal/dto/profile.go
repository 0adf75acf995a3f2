package dto

import (
	"time"

	"github.com/GlebRadaev/minipoints/internal/domain"
)

type ProfileDTO struct {
	TelegramID      int64     `json:"telegramId" example:"2"`
	Points          int64     `json:"points" example:"50"`
	Referrals       []int64   `json:"referrals"`
	ReferredBy      *int64    `json:"referredBy" example:"1"`
	Username        string    `json:"username" example:"bob"`
	FirstName       string    `json:"firstName" example:"Bob"`
	LastName        string    `json:"lastName" example:""`
	LanguageCode    string    `json:"languageCode" example:"tr"`
	IsPremium       bool      `json:"isPremium" example:"false"`
	AllowsWriteToPM bool      `json:"allowsWriteToPm" example:"true"`
	CreatedAt       time.Time `json:"createdAt" example:"2024-05-01T10:00:00Z"`
	UpdatedAt       time.Time `json:"updatedAt" example:"2024-05-01T10:00:00Z"`
}

func NewProfileDTO(account *domain.Account) ProfileDTO {
	referrals := account.Referrals
	if referrals == nil {
		referrals = []int64{}
	}
	return ProfileDTO{
		TelegramID:      account.ID,
		Points:          account.Points,
		Referrals:       referrals,
		ReferredBy:      account.ReferredBy,
		Username:        account.Profile.Username,
		FirstName:       account.Profile.FirstName,
		LastName:        account.Profile.LastName,
		LanguageCode:    account.Profile.LanguageCode,
		IsPremium:       account.Profile.IsPremium,
		AllowsWriteToPM: account.Profile.AllowsWriteToPM,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}
