package dto

import "github.com/GlebRadaev/minipoints/internal/domain"

type MarketItemDTO struct {
	ID          string `json:"id" example:"basic-prompt"`
	Name        string `json:"name" example:"Basic İstem Paketi"`
	Points      int64  `json:"points" example:"100"`
	Description string `json:"description" example:"1 adet kısa istem şablonu"`
}

func NewMarketItemsDTO(items []domain.CatalogItem) []MarketItemDTO {
	response := make([]MarketItemDTO, 0, len(items))
	for _, item := range items {
		response = append(response, MarketItemDTO(item))
	}
	return response
}
