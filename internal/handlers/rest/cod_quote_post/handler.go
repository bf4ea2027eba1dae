package cod_quote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"containerhub/internal/generated/dto"
	"containerhub/internal/service/codfee"
	"containerhub/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var quoteRequestDTO dto.CodQuoteRequest
	err := json.NewDecoder(r.Body).Decode(&quoteRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quote, err := h.service.QuoteByDepots(r.Context(), quoteRequestDTO.OriginDepotID, quoteRequestDTO.DestinationDepotID)
	if err != nil {
		switch {
		case errors.Is(err, codfee.ErrInvalidDepotID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, codfee.ErrSameDepot):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, codfee.ErrFeeNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CodQuoteResponse{
		OriginDepotID:      quote.OriginDepotID,
		DestinationDepotID: quote.DestinationDepotID,
		Fee:                quote.Fee,
		DistanceKm:         quote.DistanceKm,
		ReverseLookup:      quote.ReverseLookup,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
