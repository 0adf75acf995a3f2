package launch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/GlebRadaev/minipoints/internal/dto"
	launchservice "github.com/GlebRadaev/minipoints/internal/service/launchservice"
	"github.com/GlebRadaev/minipoints/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Launch(ctx context.Context, userID int64, profile domain.Profile, startParam string) (*launchservice.LaunchResult, error)
	GetProfile(ctx context.Context, userID int64) (*domain.Account, error)
}

type Catalog interface {
	Items() []domain.CatalogItem
}

type LaunchHandler struct {
	launchService Service
	catalog       Catalog
}

func New(launchService Service, catalog Catalog) *LaunchHandler {
	return &LaunchHandler{
		launchService: launchService,
		catalog:       catalog,
	}
}

// Launch godoc
//
//	@Summary		Register a mini-app launch
//	@Description	Create or refresh the user's profile, attribute the referral carried in startParam and return the user's referral link.
//	@Tags			Launch
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LaunchRequestDTO	true	"Chat user and optional start parameter"
//	@Success		200		{object}	dto.LaunchResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed body or missing user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/launch [post]
func (h *LaunchHandler) Launch(w http.ResponseWriter, r *http.Request) {
	var req dto.LaunchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if req.User == nil || req.User.ID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Valid user information is required")
		return
	}

	result, err := h.launchService.Launch(r.Context(), int64(req.User.ID), req.User.Profile(), string(req.StartParam))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LaunchResponseDTO{
		Profile:      dto.NewProfileDTO(result.Account),
		ReferralLink: result.ReferralLink,
		MarketItems:  dto.NewMarketItemsDTO(h.catalog.Items()),
	})
}

// GetProfile godoc
//
//	@Summary		Get a user's profile
//	@Tags			Launch
//	@Produce		json
//	@Param			telegramId	path		int	true	"Chat user id"
//	@Success		200			{object}	dto.ProfileDTO
//	@Failure		400			{object}	utils.Response	"Invalid user id"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/profile/{telegramId} [get]
func (h *LaunchHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "telegramId"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	account, err := h.launchService.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileDTO(account))
}
