package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"recipeshare/internal/service"
)

// CreateRecipe stores a new recipe.
//
//	@Summary	Create a recipe
//	@Tags		recipes
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.RecipeInput	true	"recipe"
//	@Success	201		{object}	model.Recipe
//	@Failure	400		{object}	errorPayload
//	@Router		/recipes [post]
func CreateRecipe(svc service.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RecipeInput
		if br := bindBody(c, &in); br != nil {
			return br.write(c)
		}
		r, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

// UploadImage returns a handler that stores a multipart image under folder
// and answers {filename, url}.
//
//	@Summary	Upload an image
//	@Tags		media
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"image"
//	@Success	200		{object}	model.StoredFile
//	@Failure	415		{object}	errorPayload
//	@Router		/recipes/uploadImages [post]
//	@Router		/cookingPlans/planImg [post]
func UploadImage(media service.MediaService, folder string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return withUpload(c, func(r io.Reader, filename, contentType string, size int64) error {
			f, err := media.Save(c.UserContext(), folder, r, filename, contentType, size)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.JSON(f)
		})
	}
}

// ListRecipes returns every recipe, newest first.
//
//	@Summary	List recipes
//	@Tags		recipes
//	@Produce	json
//	@Success	200	{array}	model.Recipe
//	@Router		/recipes [get]
func ListRecipes(svc service.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipes, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(recipes)
	}
}

// GetRecipe returns one recipe.
//
//	@Summary	Get a recipe
//	@Tags		recipes
//	@Produce	json
//	@Param		id	path		int	true	"recipe id"
//	@Success	200	{object}	model.Recipe
//	@Failure	404	{object}	errorPayload
//	@Router		/recipes/{id} [get]
func GetRecipe(svc service.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		r, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

// UpdateRecipe replaces a recipe's editable fields.
//
//	@Summary	Update a recipe
//	@Tags		recipes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"recipe id"
//	@Param		body	body		service.RecipeInput	true	"recipe"
//	@Success	200		{object}	model.Recipe
//	@Failure	404		{object}	errorPayload
//	@Router		/recipes/{id} [put]
func UpdateRecipe(svc service.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in service.RecipeInput
		if br := bindBody(c, &in); br != nil {
			return br.write(c)
		}
		r, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

// DeleteRecipe removes a recipe.
//
//	@Summary	Delete a recipe
//	@Tags		recipes
//	@Param		id	path	int	true	"recipe id"
//	@Success	204
//	@Failure	404	{object}	errorPayload
//	@Router		/recipes/{id} [delete]
func DeleteRecipe(svc service.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
