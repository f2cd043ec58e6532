package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vikramsomai/portfolio-skills-manager/internal/api/middleware"
	"github.com/vikramsomai/portfolio-skills-manager/internal/services"
	"github.com/vikramsomai/portfolio-skills-manager/internal/utils"
	"github.com/vikramsomai/portfolio-skills-manager/internal/validation"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input validation.RegisterInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.auth.Register(r.Context(), input)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "User registered successfully",
		Data:    result,
	})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input validation.LoginInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.auth.Login(r.Context(), input)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

// GET /api/v1/auth/profile (authenticated)
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.MustUserFromContext(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Data:    map[string]any{"user": user},
	})
}
