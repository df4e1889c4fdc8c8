package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-hobbies-api/internal/dto"
	apierrors "github.com/yukikurage/user-hobbies-api/internal/errors"
	"github.com/yukikurage/user-hobbies-api/internal/response"
	"github.com/yukikurage/user-hobbies-api/internal/services"
	"github.com/yukikurage/user-hobbies-api/internal/validation"
	"go.uber.org/zap"
)

// HobbyHandler serves the /hobbies endpoints.
type HobbyHandler struct {
	hobbyService *services.HobbyService
	log          *zap.Logger
}

// NewHobbyHandler creates a new HobbyHandler.
func NewHobbyHandler(hobbyService *services.HobbyService, log *zap.Logger) *HobbyHandler {
	return &HobbyHandler{
		hobbyService: hobbyService,
		log:          log,
	}
}

// CreateHobby adds a hobby to an existing user.
func (h *HobbyHandler) CreateHobby(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}
	if errs := validation.CreateHobby.Validate(body); errs != nil {
		apierrors.Respond(c, h.log, errs)
		return
	}

	hobby, err := h.hobbyService.CreateHobby(c.Request.Context(), services.CreateHobbyInput{
		UserID:  validation.Uint(body, "user_id"),
		Hobbies: validation.TrimmedString(body, "hobbies"),
	})
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	response.Success(c, http.StatusCreated, dto.ToHobbyDTO(*hobby), "Hobby created successfully")
}

// DeleteHobby removes the hobby whose text matches the path segment exactly.
func (h *HobbyHandler) DeleteHobby(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	hobby, err := pathText(c, "hobby")
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}
	if hobby == "" {
		apierrors.Respond(c, h.log, validation.Errors{{Field: "hobby", Message: "Hobby is required"}})
		return
	}

	if err := h.hobbyService.DeleteHobby(c.Request.Context(), userID, hobby); err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, dto.DeletedHobbyDTO{UserID: userID, Hobby: hobby}, "Hobby deleted successfully")
}

// ListHobbiesForUser returns a user's hobbies in creation order.
func (h *HobbyHandler) ListHobbiesForUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	hobbies, err := h.hobbyService.ListHobbiesForUser(c.Request.Context(), userID)
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, dto.ToHobbyDTOs(hobbies), "Hobbies retrieved successfully")
}
