package dto

import (
	"time"

	"github.com/GlebRadaev/minipoints/internal/domain"
)

type OrderRequestDTO struct {
	TelegramID ID     `json:"telegramId" swaggertype:"integer" example:"2"`
	ItemID     string `json:"itemId" example:"basic-prompt"`
}

type OrderDTO struct {
	ID             string    `json:"id" example:"ORD-01912f3a-7b4e-7c1d-9a0e-3f5b2c6d8e90"`
	TelegramID     int64     `json:"telegramId" example:"2"`
	ItemID         string    `json:"itemId" example:"basic-prompt"`
	ItemName       string    `json:"itemName" example:"Basic İstem Paketi"`
	ConsumedPoints int64     `json:"consumedPoints" example:"100"`
	CreatedAt      time.Time `json:"createdAt" example:"2024-05-01T10:00:00Z"`
}

func NewOrderDTO(order *domain.Order) OrderDTO {
	return OrderDTO{
		ID:             order.ID,
		TelegramID:     order.AccountID,
		ItemID:         order.ItemID,
		ItemName:       order.ItemName,
		ConsumedPoints: order.ConsumedPoints,
		CreatedAt:      order.CreatedAt,
	}
}

type OrderResponseDTO struct {
	Success bool       `json:"success" example:"true"`
	Order   OrderDTO   `json:"order"`
	Profile ProfileDTO `json:"profile"`
}
