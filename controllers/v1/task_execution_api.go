package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"store-ops-backend/controllers"
	taskexecutionprovider "store-ops-backend/lib/task-execution"
	"store-ops-backend/lib/utils/dateutils"
	"store-ops-backend/middleware"
	"store-ops-backend/models"
	apimodels "store-ops-backend/models/api"
	tasksapimodels "store-ops-backend/models/api/tasks"
	"store-ops-backend/models/apperrors"
)

type taskExecutionApiController struct {
	controllers.BaseAPIController
}

func InitTaskExecutionApiRouters(app *fiber.App) {
	controller := taskExecutionApiController{}
	app.Route("task-executions", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("generate-daily", controller.generateDaily)
		router.Post("daily-modules", controller.dailyModules)
		router.Post("query", controller.query)
		router.Get("daily-completion", controller.dailyCompletion)
		router.Post("upload", controller.uploadPhotos)
		router.Post("/", controller.create)
		router.Get(":id", controller.get)
		router.Post(":id/submit", controller.submit)
	})
}

// @Summary Generate the day's executions from active modules
// @Tags Task executions
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	date	query	string	false	"day, YYYY-MM-DD, defaults to today"
// @Success 200 {object} apimodels.Response{data=[]tasksapimodels.ExecutionView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/task-executions/generate-daily [post]
func (c *taskExecutionApiController) generateDaily(ctx *fiber.Ctx) error {
	day := ctx.Query("date")
	if day == "" {
		day = dateutils.TodayStr()
	}
	resp, err := taskexecutionprovider.Instance.GenerateDaily(day)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Day's checklist grouped by module
// @Tags Task executions
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	tasksapimodels.DailyModulesQuery	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]tasksapimodels.DailyModuleView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/task-executions/daily-modules [post]
func (c *taskExecutionApiController) dailyModules(ctx *fiber.Ctx) error {
	var payload tasksapimodels.DailyModulesQuery
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskexecutionprovider.Instance.DailyModules(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Filtered, paginated execution listing
// @Tags Task executions
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	tasksapimodels.ExecutionsQuery	true	"request body"
// @Success 200 {object} apimodels.Response{data=apimodels.PagedData}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/task-executions/query [post]
func (c *taskExecutionApiController) query(ctx *fiber.Ctx) error {
	var payload tasksapimodels.ExecutionsQuery
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskexecutionprovider.Instance.Find(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Day's completion statistics
// @Tags Task executions
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	date	query	string	false	"day, YYYY-MM-DD, defaults to today"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.DailyCompletionView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/task-executions/daily-completion [get]
func (c *taskExecutionApiController) dailyCompletion(ctx *fiber.Ctx) error {
	resp, err := taskexecutionprovider.Instance.DailyCompletion(ctx.Query("date"))
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Upload evidence photos
// @Tags Task executions
// @Accept multipart/form-data
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	photos	formData	file	true	"up to 10 images, at most 5MB each"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.UploadResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/task-executions/upload [post]
func (c *taskExecutionApiController) uploadPhotos(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, "photo files are required"))
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, "photo files are required"))
	}
	if len(files) > models.MaxTaskPhotoCount {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("at most %d photos are allowed", models.MaxTaskPhotoCount)))
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		ext, err := checkImage(fileHeader, photoSizeLimit, false)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
		}
		key := fmt.Sprintf("tasks/%s.%s", uuid.NewString(), ext)
		fileURL, err := uploadImage(ctx.Context(), fileHeader, key)
		if err != nil {
			code, message := apperrors.StatusOf(err)
			return ctx.Status(code).JSON(apimodels.NewError(code, message))
		}
		urls = append(urls, fileURL)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tasksapimodels.UploadResponse{Files: urls}))
}

// @Summary Create an execution for a specific task and day
// @Tags Task executions
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	tasksapimodels.CreateExecutionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.ExecutionView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/task-executions [post]
func (c *taskExecutionApiController) create(ctx *fiber.Ctx) error {
	var payload tasksapimodels.CreateExecutionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskexecutionprovider.Instance.Create(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a single execution
// @Tags Task executions
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"execution id"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.ExecutionView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/task-executions/{id} [get]
func (c *taskExecutionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskexecutionprovider.Instance.Get(id)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submit an execution result with evidence
// @Tags Task executions
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"execution id"
// @Param	body	body	tasksapimodels.SubmitExecutionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=tasksapimodels.ExecutionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/task-executions/{id}/submit [post]
func (c *taskExecutionApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	var payload tasksapimodels.SubmitExecutionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := taskexecutionprovider.Instance.Submit(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
