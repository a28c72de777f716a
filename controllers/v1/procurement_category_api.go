package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"store-ops-backend/controllers"
	procurementcategoryprovider "store-ops-backend/lib/procurement-category"
	"store-ops-backend/middleware"
	apimodels "store-ops-backend/models/api"
	procurementapimodels "store-ops-backend/models/api/procurement"
	"store-ops-backend/models/apperrors"
)

type procurementCategoryApiController struct {
	controllers.BaseAPIController
}

func InitProcurementCategoryApiRouters(app *fiber.App) {
	controller := procurementCategoryApiController{}
	app.Route("procurement-categories", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("/", controller.list)
		router.Get(":id", controller.get)
		router.Post("/", middleware.AdminRequired(), controller.create)
		router.Patch(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Create a spend category
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	procurementapimodels.CategoryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.CategoryView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/procurement-categories [post]
func (c *procurementCategoryApiController) create(ctx *fiber.Ctx) error {
	var payload procurementapimodels.CategoryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := procurementcategoryprovider.Instance.Create(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List spend categories
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]procurementapimodels.CategoryView}
// @router /api/v1/procurement-categories [get]
func (c *procurementCategoryApiController) list(ctx *fiber.Ctx) error {
	resp, err := procurementcategoryprovider.Instance.List()
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a spend category
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"category id"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.CategoryView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/procurement-categories/{id} [get]
func (c *procurementCategoryApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := procurementcategoryprovider.Instance.Get(id)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a spend category
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"category id"
// @Param	body	body	procurementapimodels.CategoryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.CategoryView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/procurement-categories/{id} [patch]
func (c *procurementCategoryApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	var payload procurementapimodels.CategoryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := procurementcategoryprovider.Instance.Update(id, payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a spend category
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"category id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/procurement-categories/{id} [delete]
func (c *procurementCategoryApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err = procurementcategoryprovider.Instance.Delete(id); err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
