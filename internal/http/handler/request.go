package handler

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names, not Go ones
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// paramID reads a positive integer path parameter.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// badRequest is a 400 not yet written to the response.
type badRequest struct {
	code    string
	message string
}

func (b *badRequest) write(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, b.code, b.message)
}

// bindBody parses the request body into dst and validates it.
func bindBody(c *fiber.Ctx, dst any) *badRequest {
	if err := c.BodyParser(dst); err != nil {
		return &badRequest{"INVALID_BODY", "invalid request body"}
	}
	if err := validate.Struct(dst); err != nil {
		return &badRequest{"VALIDATION_ERROR", validationMessage(err)}
	}
	return nil
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// uploadFunc receives the opened multipart file.
type uploadFunc func(r io.Reader, filename, contentType string, size int64) error

// withUpload opens the multipart "file" field and hands it to fn.
func withUpload(c *fiber.Ctx, fn uploadFunc) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	defer f.Close()

	return fn(f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
}
