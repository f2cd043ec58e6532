package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/vikramsomai/portfolio-skills-manager/internal/api/middleware"
	"github.com/vikramsomai/portfolio-skills-manager/internal/repositories"
	"github.com/vikramsomai/portfolio-skills-manager/internal/services"
	"github.com/vikramsomai/portfolio-skills-manager/internal/utils"
	"github.com/vikramsomai/portfolio-skills-manager/internal/validation"
)

type SkillHandler struct {
	skills *services.SkillService
}

func NewSkillHandler(skills *services.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

// GET /api/v1/skills
// ListSkills godoc
// @Summary List skills
// @Description Returns all skills, optionally filtered by category and level and sorted by name, level, or category. Unknown sort values fall back to newest-first.
// @Tags Skills
// @Produce json
// @Param category query string false "Filter by category"
// @Param level query string false "Filter by level"
// @Param sort query string false "Sort order: name, level, or category"
// @Success 200 {object} utils.Payload "Skills retrieved successfully"
// @Router /api/v1/skills [get]
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.SkillFilter{
		Category: r.URL.Query().Get("category"),
		Level:    r.URL.Query().Get("level"),
	}
	sort := r.URL.Query().Get("sort")

	skills, err := h.skills.List(r.Context(), filter, sort)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	count := len(skills)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Count:   &count,
		Data:    skills,
	})
}

// GET /api/v1/skills/{id}
// GetSkill godoc
// @Summary Get a single skill
// @Tags Skills
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload "Skill not found"
// @Router /api/v1/skills/{id} [get]
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	skill, err := h.skills.Get(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Data:    skill,
	})
}

// POST /api/v1/skills (admin only)
// CreateSkill godoc
// @Summary Create a skill
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} utils.Payload "Skill created successfully"
// @Failure 400 {object} utils.Payload "Validation errors"
// @Failure 409 {object} utils.Payload "Skill with this name already exists"
// @Router /api/v1/skills [post]
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.MustUserFromContext(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var input validation.SkillInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	skill, err := h.skills.Create(r.Context(), input, actor.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Skill created successfully",
		Data:    skill,
	})
}

// PUT /api/v1/skills/{id} (admin only)
// UpdateSkill godoc
// @Summary Update a skill
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Success 200 {object} utils.Payload "Skill updated successfully"
// @Failure 404 {object} utils.Payload "Skill not found"
// @Router /api/v1/skills/{id} [put]
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.MustUserFromContext(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input validation.SkillInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	skill, err := h.skills.Update(r.Context(), id, input, actor.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill updated successfully",
		Data:    skill,
	})
}

// DELETE /api/v1/skills/{id} (admin only)
// DeleteSkill godoc
// @Summary Delete a skill
// @Tags Skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Success 200 {object} utils.Payload "Skill deleted successfully"
// @Failure 404 {object} utils.Payload "Skill not found"
// @Router /api/v1/skills/{id} [delete]
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.skills.Delete(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill deleted successfully",
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid skill id",
		})
		return uuid.Nil, false
	}
	return id, true
}
