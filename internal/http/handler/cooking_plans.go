package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"recipeshare/internal/service"
)

// CreateCookingPlan stores a new plan.
//
//	@Summary	Create a cooking plan
//	@Tags		cookingPlans
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CookingPlanInput	true	"plan"
//	@Success	201		{object}	model.CookingPlan
//	@Failure	400		{object}	errorPayload
//	@Router		/cookingPlans [post]
func CreateCookingPlan(svc service.CookingPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CookingPlanInput
		if br := bindBody(c, &in); br != nil {
			return br.write(c)
		}
		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// ListCookingPlans returns every plan.
//
//	@Summary	List cooking plans
//	@Tags		cookingPlans
//	@Produce	json
//	@Success	200	{array}	model.CookingPlan
//	@Router		/cookingPlans [get]
func ListCookingPlans(svc service.CookingPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plans, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(plans)
	}
}

// GetCookingPlan returns one plan.
//
//	@Summary	Get a cooking plan
//	@Tags		cookingPlans
//	@Produce	json
//	@Param		id	path		int	true	"plan id"
//	@Success	200	{object}	model.CookingPlan
//	@Failure	404	{object}	errorPayload
//	@Router		/cookingPlans/{id} [get]
func GetCookingPlan(svc service.CookingPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateCookingPlan replaces a plan's editable fields.
//
//	@Summary	Update a cooking plan
//	@Tags		cookingPlans
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"plan id"
//	@Param		body	body		service.CookingPlanInput	true	"plan"
//	@Success	200		{object}	model.CookingPlan
//	@Failure	404		{object}	errorPayload
//	@Router		/cookingPlans/{id} [put]
func UpdateCookingPlan(svc service.CookingPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in service.CookingPlanInput
		if br := bindBody(c, &in); br != nil {
			return br.write(c)
		}
		p, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// DeleteCookingPlan removes a plan.
//
//	@Summary	Delete a cooking plan
//	@Tags		cookingPlans
//	@Param		id	path	int	true	"plan id"
//	@Success	204
//	@Failure	404	{object}	errorPayload
//	@Router		/cookingPlans/{id} [delete]
func DeleteCookingPlan(svc service.CookingPlanService) fiber.Handler {
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

// ReplaceCookingPlanImage uploads a new image and points the plan at it.
//
//	@Summary	Replace a cooking plan image
//	@Tags		cookingPlans
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		int		true	"plan id"
//	@Param		file	formData	file	true	"image"
//	@Success	200		{object}	model.StoredFile
//	@Failure	404		{object}	errorPayload
//	@Router		/cookingPlans/{id}/image [put]
func ReplaceCookingPlanImage(svc service.CookingPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		return withUpload(c, func(r io.Reader, filename, contentType string, size int64) error {
			f, err := svc.ReplaceImage(c.UserContext(), id, r, filename, contentType, size)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.JSON(f)
		})
	}
}
