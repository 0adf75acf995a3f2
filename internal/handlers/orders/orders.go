package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/dto"
	"github.com/GlebRadaev/minipoints/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Redeem(ctx context.Context, userID int64, itemID string) (*domain.Order, *domain.Account, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Redeem points for a catalog item
//	@Description	Atomically debit the item's price from the user's balance and record an order.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OrderRequestDTO	true	"User id and catalog item id"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed body, missing fields or insufficient points"
//	@Failure		404		{object}	utils.Response	"Unknown user or item"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/order [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if req.TelegramID <= 0 || req.ItemID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing order data")
		return
	}

	order, account, err := h.orderService.Redeem(r.Context(), int64(req.TelegramID), req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, "Insufficient points")
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.OrderResponseDTO{
		Success: true,
		Order:   dto.NewOrderDTO(order),
		Profile: dto.NewProfileDTO(account),
	})
}

// GetOrders godoc
//
//	@Summary		Get a user's orders
//	@Description	Retrieve the user's orders, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Param			telegramId	path		int	true	"Chat user id"
//	@Success		200			{array}		dto.OrderDTO
//	@Success		204			{object}	utils.Response	"No data available"
//	@Failure		400			{object}	utils.Response	"Invalid user id"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{telegramId} [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "telegramId"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		response = append(response, dto.NewOrderDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
