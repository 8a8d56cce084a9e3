package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"recipeshare/docs"
)

// SwaggerUI serves the API docs with host and scheme taken from the request.
// fallbackHost is advertised when the request carries no Host header.
func SwaggerUI(fallbackHost string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = swaggerHost(c.Get(fiber.HeaderHost), fallbackHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}

func swaggerHost(header, fallback string) string {
	if header != "" {
		return header
	}
	return fallback
}
