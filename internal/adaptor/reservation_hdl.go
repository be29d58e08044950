package adaptor

import (
	"net/http"

	"concert-venue/internal/dto/request"
	"concert-venue/internal/dto/response"
	"concert-venue/internal/usecase"
	"concert-venue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// Create handles POST /reservations and POST /reservations/{reservationId}
// (protected). Ids are always assigned by the store; a client-supplied path
// id is only logged.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if pathID := chi.URLParam(r, "reservationId"); pathID != "" {
		h.log.Debug("Ignoring client reservation id", zap.String("reservation_id", pathID))
	}

	var req request.CreateReservationRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	h.create(w, r, &req)
}

// CreateForUser handles POST /users/{userId}/reservations (protected). The
// path user wins over any userId in the body.
func (h *ReservationHandler) CreateForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	var req request.CreateReservationRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if req.UserID != nil && *req.UserID != userID {
		h.log.Debug("Body userId overridden by path",
			zap.Int64("body_user_id", *req.UserID),
			zap.Int64("path_user_id", userID))
	}
	req.UserID = &userID

	h.create(w, r, &req)
}

func (h *ReservationHandler) create(w http.ResponseWriter, r *http.Request, req *request.CreateReservationRequest) {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, response.ReservationEnvelope{Reservation: *reservation})
}

// GetReservation handles GET /reservations/{reservationId}
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "reservationId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, response.ReservationEnvelope{Reservation: *reservation})
}

// GetUserReservations handles GET /users/{userId}/reservations
func (h *ReservationHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	reservations, err := h.service.GetUserReservations(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user reservations")
		return
	}

	utils.ResponseSuccess(w, reservations)
}
