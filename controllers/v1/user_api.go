package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"store-ops-backend/controllers"
	usershandler "store-ops-backend/lib/users"
	"store-ops-backend/lib/utils/dateutils"
	"store-ops-backend/middleware"
	apimodels "store-ops-backend/models/api"
	usersapimodels "store-ops-backend/models/api/users"
	"store-ops-backend/models/apperrors"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Post("/", controller.register)
		router.Post("login", controller.login)
		router.Use(middleware.AuthorizationRequired())
		router.Get("profile/me", controller.me)
		router.Patch("profile/me", controller.updateMe)
		router.Post("profile/avatar", controller.uploadAvatar)
		router.Get("/", middleware.AdminRequired(), controller.list)
		router.Get(":id", middleware.AdminRequired(), controller.get)
		router.Patch(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Register a new staff account
// @Tags Users
// @Param	body	body	usersapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *userApiController) register(ctx *fiber.Ctx) error {
	var payload usersapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := usershandler.Instance.Register(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Log in with phone and password
// @Tags Users
// @Param	body	body	usersapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.LoginResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/users/login [post]
func (c *userApiController) login(ctx *fiber.Ctx) error {
	var payload usersapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := usershandler.Instance.Login(payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current user's profile
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/users/profile/me [get]
func (c *userApiController) me(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.Get(middleware.GetUserID(ctx))
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update current user's profile
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	usersapimodels.UpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/users/profile/me [patch]
func (c *userApiController) updateMe(ctx *fiber.Ctx) error {
	var payload usersapimodels.UpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	// Privilege changes go through the admin endpoint.
	payload.IsAdmin = nil
	resp, err := usershandler.Instance.Update(middleware.GetUserID(ctx), payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Upload current user's avatar
// @Tags Users
// @Accept multipart/form-data
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	avatar	formData	file	true	"avatar image, at most 2MB"
// @Success 200 {object} apimodels.Response{data=usersapimodels.AvatarResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/users/profile/avatar [post]
func (c *userApiController) uploadAvatar(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, "avatar file is required"))
	}
	ext, err := checkImage(fileHeader, avatarSizeLimit, true)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	key := fmt.Sprintf("avatars/%s_%d.%s", userID, dateutils.Now().UnixMilli(), ext)
	fileURL, err := uploadImage(ctx.Context(), fileHeader, key)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	user, err := usershandler.Instance.SetAvatar(userID, fileURL)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(usersapimodels.AvatarResponse{
		Avatar: fileURL,
		User:   user,
	}))
}

// @Summary List staff accounts
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.UserView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.List()
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a staff account
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := usershandler.Instance.Get(id)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a staff account
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"user id"
// @Param	body	body	usersapimodels.UpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [patch]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	var payload usersapimodels.UpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := usershandler.Instance.Update(id, payload)
	if err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a staff account
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [delete]
func (c *userApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err = usershandler.Instance.Delete(id); err != nil {
		code, message := apperrors.StatusOf(err)
		return ctx.Status(code).JSON(apimodels.NewError(code, message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
