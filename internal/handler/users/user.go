package users

import (
	"net/http"
	"strconv"
	"strings"

	"agenda-api/internal/api"
	"agenda-api/internal/apperr"
	"agenda-api/internal/database"
	"agenda-api/internal/middleware"
	"agenda-api/internal/model"
	"agenda-api/internal/service"
	"agenda-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	authorize         = service.Authorize
	hashPassword      = service.HashPassword
	validateNewUser   = service.ValidateNewUser
	validateUserPatch = service.ValidateUserPatch
	createUser        = store.CreateUser
	getUserByID       = store.GetUserByID
	listUsers         = store.ListUsers
	updateUser        = store.UpdateUser
	deleteUser        = store.DeleteUser
)

// principal returns the authenticated claims set by middleware.RequireAuth,
// or nil when absent.
func principal(c echo.Context) *service.Claims {
	claims, _ := c.Get(middleware.ContextUserKey).(*service.Claims)
	return claims
}

func toResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    api.Avatar{URL: u.Avatar},
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func fail(c echo.Context, err error) error {
	status, body := apperr.MapToHTTP(err)
	return c.JSON(status, body)
}

// targetID parses the :id path param. Authorization runs before the result
// is inspected, so a non-admin probing a malformed id still gets 401.
func targetID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.ErrUserNotFound
	}
	return id, nil
}

// @Summary     List all users
// @Description Returns every user in creation order
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     401 {object} apperr.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/index [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authorize(principal(c), service.OpListUsers, 0); err != nil {
			return fail(c, err)
		}
		all, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return fail(c, err)
		}
		resp := make([]api.UserResponse, 0, len(all))
		for i := range all {
			resp = append(resp, toResponse(&all[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     int true "User ID"
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} apperr.ErrorResponse
// @Failure     404 {object} apperr.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authorize(principal(c), service.OpGetUser, 0); err != nil {
			return fail(c, err)
		}
		id, err := targetID(c)
		if err != nil {
			return fail(c, err)
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(user))
	}
}

// @Summary     Create a new user
// @Description Creates a regular active user; is_admin is never taken from the payload
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "New user"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} apperr.ErrorResponse
// @Failure     401  {object} apperr.ErrorResponse
// @Failure     422  {object} apperr.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authorize(principal(c), service.OpCreateUser, 0); err != nil {
			return fail(c, err)
		}

		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request payload"})
		}
		if err := validateNewUser(c.Request().Context(), db, req); err != nil {
			return fail(c, err)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return fail(c, err)
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Avatar:       req.Avatar,
			IsAdmin:      false,
			IsActive:     true,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusCreated, toResponse(user))
	}
}

// @Summary     Update a user by ID
// @Description Partial update; admins may update anyone, users only themselves.
// @Description avatar is only applied when update_avatar is true. is_admin is immutable here.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "User ID"
// @Param       body body     api.UpdateUserRequest true "Fields to change"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} apperr.ErrorResponse
// @Failure     401  {object} apperr.ErrorResponse
// @Failure     404  {object} apperr.ErrorResponse
// @Failure     422  {object} apperr.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/{id} [patch]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, idErr := targetID(c)
		if err := authorize(principal(c), service.OpUpdateUser, id); err != nil {
			return fail(c, err)
		}
		if idErr != nil {
			return fail(c, idErr)
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request payload"})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return fail(c, err)
		}
		if err := validateUserPatch(c.Request().Context(), db, req, id); err != nil {
			return fail(c, err)
		}

		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = strings.ToLower(*req.Email)
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if req.UpdateAvatar {
			user.Avatar = req.Avatar.URL
		}
		if req.Password != nil {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return fail(c, err)
			}
			user.PasswordHash = hash
		}

		if err := updateUser(c.Request().Context(), db, user); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description Hard delete; the id becomes permanently invalid
// @Tags        users
// @Param       id path int true "User ID"
// @Success     204 "No Content"
// @Failure     401 {object} apperr.ErrorResponse
// @Failure     404 {object} apperr.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authorize(principal(c), service.OpDeleteUser, 0); err != nil {
			return fail(c, err)
		}
		id, err := targetID(c)
		if err != nil {
			return fail(c, err)
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return fail(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
