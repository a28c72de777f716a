package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"store-ops-backend/controllers"
	procurementprovider "store-ops-backend/lib/procurement"
	"store-ops-backend/middleware"
	apimodels "store-ops-backend/models/api"
	procurementapimodels "store-ops-backend/models/api/procurement"
	"store-ops-backend/models/apperrors"
)

type procurementApiController struct {
	controllers.BaseAPIController
}

func InitProcurementApiRouters(app *fiber.App) {
	controller := procurementApiController{}
	app.Route("procurements", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("/", controller.create)
		router.Get("/", controller.list)
		router.Post("by-month", controller.byMonth)
		router.Post("statistics", controller.statistics)
		router.Post("upload", controller.uploadScreenshot)
		router.Get(":id", controller.get)
		router.Patch(":id", controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Record a purchase
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	procurementapimodels.ProcurementData	true	"request body"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.ProcurementView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/procurements [post]
func (c *procurementApiController) create(ctx *fiber.Ctx) error {
	var payload procurementapimodels.ProcurementData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := procurementprovider.Instance.Create(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List purchases, newest first
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]procurementapimodels.ProcurementView}
// @router /api/v1/procurements [get]
func (c *procurementApiController) list(ctx *fiber.Ctx) error {
	resp, err := procurementprovider.Instance.List()
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Purchases for a month, optionally by category
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	procurementapimodels.MonthQuery	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]procurementapimodels.ProcurementView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/procurements/by-month [post]
func (c *procurementApiController) byMonth(ctx *fiber.Ctx) error {
	var payload procurementapimodels.MonthQuery
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := procurementprovider.Instance.FindByMonth(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Monthly spend grouped by category, largest first
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	procurementapimodels.MonthQuery	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]procurementapimodels.StatisticsItem}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/procurements/statistics [post]
func (c *procurementApiController) statistics(ctx *fiber.Ctx) error {
	var payload procurementapimodels.MonthQuery
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := procurementprovider.Instance.Statistics(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Upload a payment screenshot
// @Tags Procurements
// @Accept multipart/form-data
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	file	formData	file	true	"screenshot image, at most 5MB"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.UploadResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/procurements/upload [post]
func (c *procurementApiController) uploadScreenshot(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, "screenshot file is required"))
	}
	ext, err := checkImage(fileHeader, photoSizeLimit, true)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	key := fmt.Sprintf("procurements/%s.%s", uuid.NewString(), ext)
	fileURL, err := uploadImage(ctx.Context(), fileHeader, key)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(procurementapimodels.UploadResponse{URL: fileURL}))
}

// @Summary Get a purchase
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"procurement id"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.ProcurementView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/procurements/{id} [get]
func (c *procurementApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := procurementprovider.Instance.Get(id)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a purchase
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"procurement id"
// @Param	body	body	procurementapimodels.ProcurementUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.ProcurementView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/procurements/{id} [patch]
func (c *procurementApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	var payload procurementapimodels.ProcurementUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := procurementprovider.Instance.Update(id, payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a purchase
// @Tags Procurements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"procurement id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/procurements/{id} [delete]
func (c *procurementApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err = procurementprovider.Instance.Delete(id); err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
