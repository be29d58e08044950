package adaptor

import (
	"net"
	"net/http"

	"concert-venue/internal/auth"
	"concert-venue/internal/dto/request"
	"concert-venue/internal/dto/response"
	"concert-venue/internal/usecase"
	"concert-venue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// SignIn handles POST /users
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.SignIn(r.Context(), &req, clientMeta(r))
	if err != nil {
		handleServiceError(w, h.log, err, "sign in")
		return
	}

	utils.ResponseSuccess(w, response.UserEnvelope{User: *user})
}

// SignUp handles PUT /users
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.SignUp(r.Context(), &req, clientMeta(r))
	if err != nil {
		handleServiceError(w, h.log, err, "sign up")
		return
	}

	utils.ResponseCreated(w, response.UserEnvelope{User: *user})
}

// GetUser handles GET /users/{userId}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, response.UserEnvelope{User: *user})
}

// SignOut handles POST /users/signout (protected)
func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.SignOut(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "sign out")
		return
	}

	utils.ResponseSuccess(w, response.MessageResponse{Status: true, Message: "Signed out"})
}

func clientMeta(r *http.Request) auth.ClientMeta {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return auth.ClientMeta{
		UserAgent: r.UserAgent(),
		IPAddress: ip,
	}
}
