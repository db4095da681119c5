package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBooking handles GET /booking (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.GetBooking(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseOK(w, booking)
}

// CreateBooking handles POST /booking (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req, ok := h.decodeBookingRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.CreateBooking(r.Context(), *req.RoomID, userID)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	h.writeResult(w, result)
}

// UpdateBooking handles PUT /booking/{bookingId} (protected)
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID, err := utils.ParseID(chi.URLParam(r, "bookingId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	req, ok := h.decodeBookingRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.UpdateBooking(r.Context(), *req.RoomID, userID, bookingID)
	if err != nil {
		h.handleServiceError(w, err, "update booking")
		return
	}

	h.writeResult(w, result)
}

func (h *BookingHandler) decodeBookingRequest(w http.ResponseWriter, r *http.Request) (*request.BookingRequest, bool) {
	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Booking request validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	return &req, true
}

func (h *BookingHandler) writeResult(w http.ResponseWriter, result usecase.BookingResult) {
	switch result.Kind {
	case usecase.ResultForbidden:
		utils.ResponseForbidden(w, string(result.Reason))
	case usecase.ResultCreated, usecase.ResultUpdated:
		utils.ResponseOK(w, response.BookingIDResponse{BookingID: result.BookingID})
	default:
		h.log.Error("Unknown booking result", zap.Stringer("kind", result.Kind))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
