package dto

import "github.com/GlebRadaev/minipoints/internal/domain"

type TelegramUserDTO struct {
	ID              ID     `json:"id" swaggertype:"integer" example:"2"`
	Username        string `json:"username" example:"bob"`
	FirstName       string `json:"first_name" example:"Bob"`
	LastName        string `json:"last_name" example:""`
	LanguageCode    string `json:"language_code" example:"tr"`
	IsPremium       bool   `json:"is_premium" example:"false"`
	AllowsWriteToPM bool   `json:"allows_write_to_pm" example:"true"`
}

func (u TelegramUserDTO) Profile() domain.Profile {
	return domain.Profile{
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		LanguageCode:    u.LanguageCode,
		IsPremium:       u.IsPremium,
		AllowsWriteToPM: u.AllowsWriteToPM,
	}
}

type LaunchRequestDTO struct {
	User       *TelegramUserDTO `json:"user"`
	StartParam StartParam       `json:"startParam" swaggertype:"string" example:"1"`
}

type LaunchResponseDTO struct {
	Profile      ProfileDTO      `json:"profile"`
	ReferralLink string          `json:"referralLink" example:"https://t.me/your_bot_username/app?startapp=2"`
	MarketItems  []MarketItemDTO `json:"marketItems"`
}
