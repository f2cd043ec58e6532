// Package validation holds the tagged input structs for every write operation
// and a validator that reports all violated fields at once.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vikramsomai/portfolio-skills-manager/internal/apperror"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
)

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SkillInput struct {
	Name              string `json:"name" validate:"required,max=50"`
	Level             string `json:"level" validate:"required,skill_level"`
	Category          string `json:"category" validate:"required,skill_category"`
	Description       string `json:"description" validate:"omitempty,max=200"`
	YearsOfExperience *int   `json:"yearsOfExperience" validate:"omitempty,min=0,max=50"`
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// Normalize trims surrounding whitespace so length checks run against what
// the user actually typed. Passwords are kept verbatim.
func (in *RegisterInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
}

func (in *LoginInput) Normalize() {
	in.Email = strings.TrimSpace(in.Email)
}

func (in *SkillInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

func (in *ContactInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field errors are reported under the wire names, not the Go names.
	v.RegisterTagNameFunc(jsonTagName)

	// Registration cannot fail for a func with a non-empty tag name.
	_ = v.RegisterValidation("skill_level", func(fl validator.FieldLevel) bool {
		return models.ValidSkillLevel(fl.Field().String())
	})
	_ = v.RegisterValidation("skill_category", func(fl validator.FieldLevel) bool {
		return models.ValidSkillCategory(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates v and returns an apperror.Validation error listing every
// violated field, or nil if the input is valid.
func (val *Validator) Struct(v any) error {
	err := val.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewInternal("Validation failed", err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperror.NewValidation(fields)
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("cannot exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("cannot exceed %s", fe.Param())
	case "skill_level":
		return fmt.Sprintf("must be %s, %s, or %s",
			models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced)
	case "skill_category":
		return fmt.Sprintf("must be %s, %s, %s, %s, or %s",
			models.CategoryFrontend, models.CategoryBackend, models.CategoryDatabase,
			models.CategoryCloud, models.CategoryDevOps)
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
