package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"store-ops-backend/controllers"
	taskprovider "store-ops-backend/lib/task"
	"store-ops-backend/middleware"
	apimodels "store-ops-backend/models/api"
	tasksapimodels "store-ops-backend/models/api/tasks"
	"store-ops-backend/models/apperrors"
)

type taskApiController struct {
	controllers.BaseAPIController
}

func InitTaskApiRouters(app *fiber.App) {
	controller := taskApiController{}
	app.Route("tasks", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("/", controller.list)
		router.Get(":id", controller.get)
		router.Post("/", middleware.AdminRequired(), controller.create)
		router.Patch(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Create a task template
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	tasksapimodels.TaskData	true	"request body"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks [post]
func (c *taskApiController) create(ctx *fiber.Ctx) error {
	var payload tasksapimodels.TaskData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskprovider.Instance.Create(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List task templates, optionally by module
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	module_id	query	string	false	"filter by module"
// @Success 200 {object} apimodels.Response{data=[]tasksapimodels.TaskView}
// @router /api/v1/tasks [get]
func (c *taskApiController) list(ctx *fiber.Ctx) error {
	resp, err := taskprovider.Instance.Find(ctx.Query("module_id"))
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a task template
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"task id"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.TaskView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id} [get]
func (c *taskApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskprovider.Instance.Get(id)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a task template
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"task id"
// @Param	body	body	tasksapimodels.TaskUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.TaskView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id} [patch]
func (c *taskApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	var payload tasksapimodels.TaskUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskprovider.Instance.Update(id, payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a task template
// @Tags Task catalog
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"task id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id} [delete]
func (c *taskApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err = taskprovider.Instance.Delete(id); err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
