package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"store-ops-backend/controllers"
	taskmoduleprovider "store-ops-backend/lib/task-module"
	"store-ops-backend/middleware"
	apimodels "store-ops-backend/models/api"
	tasksapimodels "store-ops-backend/models/api/tasks"
	"store-ops-backend/models/apperrors"
)

type taskModuleApiController struct {
	controllers.BaseAPIController
}

func InitTaskModuleApiRouters(app *fiber.App) {
	controller := taskModuleApiController{}
	app.Route("task-modules", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("/", controller.list)
		router.Post("by-time", controller.findByTime)
		router.Get(":id", controller.get)
		router.Post("/", middleware.AdminRequired(), controller.create)
		router.Patch(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Create a task module
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	tasksapimodels.TaskModuleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.TaskModuleView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/task-modules [post]
func (c *taskModuleApiController) create(ctx *fiber.Ctx) error {
	var payload tasksapimodels.TaskModuleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskmoduleprovider.Instance.Create(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List task modules
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]tasksapimodels.TaskModuleView}
// @router /api/v1/task-modules [get]
func (c *taskModuleApiController) list(ctx *fiber.Ctx) error {
	resp, err := taskmoduleprovider.Instance.List()
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Active task modules whose time window covers the given moment
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	tasksapimodels.ModulesByTimeQuery	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]tasksapimodels.TaskModuleView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/task-modules/by-time [post]
func (c *taskModuleApiController) findByTime(ctx *fiber.Ctx) error {
	var payload tasksapimodels.ModulesByTimeQuery
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskmoduleprovider.Instance.FindByTime(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a task module with its templates
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"module id"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.TaskModuleView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/task-modules/{id} [get]
func (c *taskModuleApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskmoduleprovider.Instance.Get(id)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a task module
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"module id"
// @Param	body	body	tasksapimodels.TaskModuleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.TaskModuleView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/task-modules/{id} [patch]
func (c *taskModuleApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	var payload tasksapimodels.TaskModuleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskmoduleprovider.Instance.Update(id, payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a task module
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"module id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/task-modules/{id} [delete]
func (c *taskModuleApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err = taskmoduleprovider.Instance.Delete(id); err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
