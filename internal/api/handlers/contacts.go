package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vikramsomai/portfolio-skills-manager/internal/services"
	"github.com/vikramsomai/portfolio-skills-manager/internal/utils"
	"github.com/vikramsomai/portfolio-skills-manager/internal/validation"
)

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// POST /api/v1/contacts (public)
// CreateContact godoc
// @Summary Submit a contact message
// @Tags Contacts
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload "Message sent successfully"
// @Failure 400 {object} utils.Payload "Validation errors"
// @Router /api/v1/contacts [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.ContactInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	contact, err := h.contacts.Create(r.Context(), input)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Message sent successfully",
		Data: map[string]any{
			"id":        contact.ID,
			"createdAt": contact.CreatedAt,
		},
	})
}

// GET /api/v1/contacts
// ListContacts godoc
// @Summary List contact messages, newest first
// @Tags Contacts
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/v1/contacts [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	count := len(contacts)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Count:   &count,
		Data:    contacts,
	})
}
