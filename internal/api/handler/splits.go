package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scoracle-splits/internal/api/respond"
	"github.com/albapepper/scoracle-splits/internal/predict"
	"github.com/albapepper/scoracle-splits/internal/splits"
)

// GetPlayerSplits returns a player's normalized splits.
// @Summary Get player splits
// @Description Fetches the player's ESPN splits and returns Overall, RoadVsHome, Month and Opponent stat groups. Month and Opponent keys keep ESPN's order.
// @Tags splits
// @Produce json
// @Param playerID path string true "ESPN athlete ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /players/{playerID}/splits [get]
func (h *Handler) GetPlayerSplits(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	ns, err := h.splits.FetchAndNormalize(r.Context(), playerID)
	if err != nil {
		h.writeSplitsError(w, playerID, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, ns)
}

// GetPlayerPrediction returns a games-played-weighted projection.
// @Summary Get player prediction
// @Description Weights Overall, the venue split, the month split and (when found) the opponent split by games played. An unknown opponent is ignored and reported via opponent_included=false.
// @Tags splits
// @Produce json
// @Param playerID path string true "ESPN athlete ID"
// @Param venue query string true "Venue" Enums(Home, Road)
// @Param month query string true "Month display name, e.g. January"
// @Param opponent query string false "Opponent display name"
// @Success 200 {object} predict.Prediction
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /players/{playerID}/prediction [get]
func (h *Handler) GetPlayerPrediction(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	q := r.URL.Query()
	sel := predict.Selection{
		Venue:    strings.TrimSpace(q.Get("venue")),
		Opponent: strings.TrimSpace(q.Get("opponent")),
		Month:    strings.TrimSpace(q.Get("month")),
	}
	if sel.Venue == "" || sel.Month == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_SELECTOR", "venue and month query parameters are required")
		return
	}

	ns, err := h.splits.FetchAndNormalize(r.Context(), playerID)
	if err != nil {
		h.writeSplitsError(w, playerID, err)
		return
	}

	p, err := h.predictor.Predict(ns, sel)
	if err != nil {
		if errors.Is(err, predict.ErrInvalidArgument) {
			respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid selection", err.Error())
			return
		}
		h.logger.Error("prediction failed", "player_id", playerID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Prediction failed")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, p)
}

func (h *Handler) writeSplitsError(w http.ResponseWriter, playerID string, err error) {
	switch {
	case errors.Is(err, splits.ErrMissingPlayerID):
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "player ID is required")
	case errors.Is(err, splits.ErrFetchFailed):
		respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Could not fetch splits from ESPN", err.Error())
	case errors.Is(err, splits.ErrMalformedResponse):
		h.logger.Error("malformed splits response", "player_id", playerID, "error", err)
		respond.WriteErrorDetail(w, http.StatusBadGateway, "MALFORMED_UPSTREAM", "ESPN returned splits in an unexpected shape", err.Error())
	default:
		h.logger.Error("splits failed", "player_id", playerID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to load splits")
	}
}
