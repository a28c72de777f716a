package apiv1

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"store-ops-backend/controllers"
	attendanceprovider "store-ops-backend/lib/attendance"
	"store-ops-backend/middleware"
	apimodels "store-ops-backend/models/api"
	attendanceapimodels "store-ops-backend/models/api/attendance"
	"store-ops-backend/models/apperrors"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendances", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("clock-in", controller.clockIn)
		router.Post("clock-out", controller.clockOut)
		router.Get("status", controller.status)
		router.Get("my", controller.my)
		router.Get("my/by-date", controller.myByDate)
		router.Get("/", middleware.AdminRequired(), controller.all)
		router.Get("by-date", middleware.AdminRequired(), controller.allByDate)
		router.Get("report", middleware.AdminRequired(), controller.report)
	})
}

// @Summary Clock in at the store
// @Tags Attendance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	attendanceapimodels.ClockRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.ClockResultView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/attendances/clock-in [post]
func (c *attendanceApiController) clockIn(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.ClockRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := attendanceprovider.Instance.ClockIn(middleware.GetUserID(ctx), payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Clock out of the store
// @Tags Attendance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	attendanceapimodels.ClockRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.ClockResultView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/attendances/clock-out [post]
func (c *attendanceApiController) clockOut(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.ClockRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := attendanceprovider.Instance.ClockOut(middleware.GetUserID(ctx), payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current clock eligibility, optionally with distance check
// @Tags Attendance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	latitude	query	number	false	"current latitude"
// @Param	longitude	query	number	false	"current longitude"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.ClockStatusView}
// @router /api/v1/attendances/status [get]
func (c *attendanceApiController) status(ctx *fiber.Ctx) error {
	var lat, lon *float64
	if raw := ctx.Query("latitude"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, "invalid latitude"))
		}
		lat = &value
	}
	if raw := ctx.Query("longitude"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, "invalid longitude"))
		}
		lon = &value
	}
	resp, err := attendanceprovider.Instance.Status(middleware.GetUserID(ctx), lat, lon)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Own monthly attendance, one record per day
// @Tags Attendance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	year	query	int	true	"year"
// @Param	month	query	int	true	"month 1-12"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.DailyRecord}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/attendances/my [get]
func (c *attendanceApiController) my(ctx *fiber.Ctx) error {
	query, err := parseMonthQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := attendanceprovider.Instance.MonthlyRecords(middleware.GetUserID(ctx), query)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Own attendance for a single day
// @Tags Attendance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	date	query	string	true	"day, YYYY-MM-DD"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.DailyRecord}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/attendances/my/by-date [get]
func (c *attendanceApiController) myByDate(ctx *fiber.Ctx) error {
	resp, err := attendanceprovider.Instance.DailyRecords(middleware.GetUserID(ctx), ctx.Query("date"))
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary All users' monthly attendance
// @Tags Attendance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	year	query	int	true	"year"
// @Param	month	query	int	true	"month 1-12"
// @Param	user_id	query	string	false	"filter by user"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.AdminDailyRecord}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/attendances [get]
func (c *attendanceApiController) all(ctx *fiber.Ctx) error {
	query, err := parseMonthQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := attendanceprovider.Instance.MonthlyRecordsAll(query)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary All users' attendance for a single day
// @Tags Attendance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	date	query	string	true	"day, YYYY-MM-DD"
// @Param	user_id	query	string	false	"filter by user"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.AdminDailyRecord}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/attendances/by-date [get]
func (c *attendanceApiController) allByDate(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.DateQuery
	if err := ctx.QueryParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := attendanceprovider.Instance.DailyRecordsAll(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Monthly attendance report as an XLSX or PDF download
// @Tags Attendance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	year	query	int	true	"year"
// @Param	month	query	int	true	"month 1-12"
// @Param	format	query	string	false	"xlsx (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @router /api/v1/attendances/report [get]
func (c *attendanceApiController) report(ctx *fiber.Ctx) error {
	query, err := parseMonthQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	var content []byte
	var filename, contentType string
	switch ctx.Query("format", "xlsx") {
	case "xlsx":
		content, filename, err = attendanceprovider.Instance.MonthlyReportXLSX(query)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		content, filename, err = attendanceprovider.Instance.MonthlyReportPDF(query)
		contentType = "application/pdf"
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, "unsupported report format"))
	}
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Status(fiber.StatusOK).Send(content)
}

func parseMonthQuery(ctx *fiber.Ctx) (attendanceapimodels.MonthQuery, error) {
	var query attendanceapimodels.MonthQuery
	if err := ctx.QueryParser(&query); err != nil {
		return query, err
	}
	if err := query.Validate(); err != nil {
		return query, err
	}
	return query, nil
}
