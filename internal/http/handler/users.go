package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"recipeshare/internal/service"
)

// CreateUser registers an account.
//
//	@Summary	Register a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.RegisterInput	true	"new user"
//	@Success	201		{object}	model.User
//	@Failure	400		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Router		/user [post]
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if br := bindBody(c, &in); br != nil {
			return br.write(c)
		}
		u, err := svc.Register(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// Login checks an email/password pair.
//
//	@Summary	Log in with email and password
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.LoginInput	true	"credentials"
//	@Success	200		{object}	map[string]any
//	@Failure	401		{object}	map[string]string
//	@Failure	404		{object}	errorPayload
//	@Router		/login [post]
func Login(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.LoginInput
		if br := bindBody(c, &in); br != nil {
			return br.write(c)
		}
		u, err := svc.Login(c.UserContext(), in)
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid"})
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Login Successful", "id": u.ID})
	}
}

// ListUsers returns every user.
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	model.User
//	@Router		/user [get]
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(users)
	}
}

// GetUser returns one user.
//
//	@Summary	Get a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"user id"
//	@Success	200	{object}	model.User
//	@Failure	404	{object}	errorPayload
//	@Router		/user/{id} [get]
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		u, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateUser replaces a user's profile. An empty password keeps the current one.
//
//	@Summary	Update a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"user id"
//	@Param		body	body		service.UpdateUserInput	true	"profile"
//	@Success	200		{object}	model.User
//	@Failure	404		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Router		/user/{id} [put]
func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in service.UpdateUserInput
		if br := bindBody(c, &in); br != nil {
			return br.write(c)
		}
		u, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// DeleteUser removes a user and their follow edges.
//
//	@Summary	Delete a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"user id"
//	@Success	200	{object}	map[string]string
//	@Failure	404	{object}	errorPayload
//	@Router		/user/{id} [delete]
func DeleteUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("User with ID %d deleted successfully.", id)})
	}
}

// UploadProfilePicture stores a new profile picture for the user.
//
//	@Summary	Upload a profile picture
//	@Tags		users
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		int		true	"user id"
//	@Param		file	formData	file	true	"image"
//	@Success	200		{object}	model.User
//	@Failure	415		{object}	errorPayload
//	@Router		/user/{id}/uploadProfilePicture [post]
func UploadProfilePicture(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		return withUpload(c, func(r io.Reader, filename, contentType string, size int64) error {
			u, err := svc.UploadProfilePicture(c.UserContext(), id, r, filename, contentType, size)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.JSON(u)
		})
	}
}
