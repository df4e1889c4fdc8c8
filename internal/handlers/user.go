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

// UserHandler serves the /users endpoints.
type UserHandler struct {
	userService *services.UserService
	log         *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// ListUsers returns every user ordered by id.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, dto.ToUserDTOs(users), "Users retrieved successfully")
}

// GetUser returns a single user.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, dto.ToUserDTO(*user), "User retrieved successfully")
}

// CreateUser validates the body and inserts a user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}
	if errs := validation.CreateUser.Validate(body); errs != nil {
		apierrors.Respond(c, h.log, errs)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		FirstName:   validation.TrimmedString(body, "first_name"),
		LastName:    validation.TrimmedString(body, "last_name"),
		Address:     validation.TrimmedString(body, "address"),
		PhoneNumber: validation.TrimmedString(body, "phone_number"),
	})
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	response.Success(c, http.StatusCreated, dto.ToUserDTO(*user), "User created successfully")
}

// DeleteUser removes a user and, through the foreign key, their hobbies.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, dto.DeletedUserDTO{ID: userID}, "User deleted successfully")
}

// ListUsersWithHobbies returns the left-joined listing.
func (h *UserHandler) ListUsersWithHobbies(c *gin.Context) {
	rows, err := h.userService.ListUsersWithHobbies(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, dto.ToUserWithHobbiesDTOs(rows), "Users with hobbies retrieved successfully")
}
