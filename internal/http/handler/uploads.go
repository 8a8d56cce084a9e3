package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"recipeshare/internal/service"
)

// ServeUpload streams a stored file. When folder is empty it is taken from
// the :folder path parameter.
//
//	@Summary	Serve an uploaded image
//	@Tags		media
//	@Produce	octet-stream
//	@Param		folder		path	string	true	"profiles, recipes or plans"
//	@Param		filename	path	string	true	"stored filename"
//	@Success	200
//	@Failure	404	{object}	errorPayload
//	@Router		/uploads/{folder}/{filename} [get]
func ServeUpload(media service.MediaService, folder string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := folder
		if f == "" {
			f = c.Params("folder")
		}
		rc, info, err := media.Open(c.UserContext(), f, c.Params("filename"))
		if err != nil {
			return writeServiceError(c, err)
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
		}
		size := int(info.Size)
		if info.Size <= 0 {
			size = -1
		}
		// fasthttp closes rc once the body is written
		return c.SendStream(rc, size)
	}
}
