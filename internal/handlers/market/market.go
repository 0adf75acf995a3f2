package market

import (
	"net/http"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/dto"
	"github.com/GlebRadaev/minipoints/pkg/utils"
)

type Catalog interface {
	Items() []domain.CatalogItem
}

type MarketHandler struct {
	catalog Catalog
}

func New(catalog Catalog) *MarketHandler {
	return &MarketHandler{
		catalog: catalog,
	}
}

// GetItems godoc
//
//	@Summary	List redeemable items
//	@Tags		Market
//	@Produce	json
//	@Success	200	{array}	dto.MarketItemDTO
//	@Router		/api/market-items [get]
func (h *MarketHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMarketItemsDTO(h.catalog.Items()))
}
