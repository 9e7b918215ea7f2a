package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vocacional-ai-backend/controllers"
	handler "vocacional-ai-backend/lib/admin-panel"
	adminpanelauthhandler "vocacional-ai-backend/lib/admin-panel/auth"
	adminpanelstore "vocacional-ai-backend/lib/admin-panel/store"
	"vocacional-ai-backend/middleware"
	apimodels "vocacional-ai-backend/models/api"
	adminpanelapimodels "vocacional-ai-backend/models/api/admin-panel"
	authapimodels "vocacional-ai-backend/models/api/auth"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Post("login", controller.login)

	// acesso restrito ao administrador autenticado
	courses := fiber.New()
	app.Mount("/courses", courses)
	courses.Use(middleware.AuthorizationRequired())
	courses.Use(middleware.AdminRole())
	courses.Get("/", controller.courseList)
	courses.Get("/export", controller.courseExport)
	courses.Get("/:courseID", controller.courseGet)
	courses.Post("/", controller.courseCreate)
	courses.Post("/import", controller.courseImport)
	courses.Put("/:courseID", controller.courseUpdate)
	courses.Delete("/:courseID", controller.courseDelete)

	app.Get("stats", middleware.AuthorizationRequired(), middleware.AdminRole(), controller.stats)
	app.Get("config", middleware.AuthorizationRequired(), middleware.AdminRole(), controller.configGet)
	app.Put("config/whatsapp", middleware.AuthorizationRequired(), middleware.AdminRole(), controller.configWhatsApp)
}

// @Summary Autenticação do painel administrativo
// @Tags Painel administrativo
// @Description Autentica pela senha única do painel e emite o JWT
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/admin/login [post]
func (a *adminApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := adminpanelauthhandler.Instance.Login(payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Listar cursos
// @Tags Painel administrativo
// @Description Lista todos os cursos cadastrados
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]adminpanelapimodels.CourseRecord}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/courses [get]
func (a *adminApiController) courseList(ctx *fiber.Ctx) error {
	list, err := adminpanelstore.CourseInstance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Buscar curso
// @Tags Painel administrativo
// @Description Busca um curso pelo identificador
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   courseID			path		string	true	"ID do curso"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.CourseRecord}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/admin/courses/{courseID} [get]
func (a *adminApiController) courseGet(ctx *fiber.Ctx) error {
	courseID := ctx.Params("courseID")
	rec, err := adminpanelstore.CourseInstance.GetByID(courseID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("curso não encontrado"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Cadastrar curso
// @Tags Painel administrativo
// @Description Cadastra um novo curso no catálogo administrativo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		adminpanelapimodels.CourseData	true	"request body"
// @Success 201 {object} apimodels.Response{data=adminpanelapimodels.CourseRecord}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/admin/courses [post]
func (a *adminApiController) courseCreate(ctx *fiber.Ctx) error {
	var payload adminpanelapimodels.CourseData
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := adminpanelstore.CourseInstance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Atualizar curso
// @Tags Painel administrativo
// @Description Atualiza um curso existente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   courseID			path		string	true	"ID do curso"
// @Param	body				body		adminpanelapimodels.CourseData	true	"request body"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.CourseRecord}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/admin/courses/{courseID} [put]
func (a *adminApiController) courseUpdate(ctx *fiber.Ctx) error {
	courseID := ctx.Params("courseID")
	var payload adminpanelapimodels.CourseData
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := adminpanelstore.CourseInstance.Update(courseID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("curso não encontrado"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Remover curso
// @Tags Painel administrativo
// @Description Remove um curso do catálogo administrativo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   courseID			path		string	true	"ID do curso"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.CourseRecord}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/admin/courses/{courseID} [delete]
func (a *adminApiController) courseDelete(ctx *fiber.Ctx) error {
	courseID := ctx.Params("courseID")
	rec, err := adminpanelstore.CourseInstance.Delete(courseID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("curso não encontrado"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Importar cursos
// @Tags Painel administrativo
// @Description Importa cursos em lote, com opção de substituir o cadastro
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		adminpanelapimodels.ImportRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.ImportResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/admin/courses/import [post]
func (a *adminApiController) courseImport(ctx *fiber.Ctx) error {
	var payload adminpanelapimodels.ImportRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := handler.Instance.ImportCourses(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Exportar cursos
// @Tags Painel administrativo
// @Description Exporta o cadastro de cursos; format=xlsx gera planilha
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   format				query		string	false	"json (padrão) ou xlsx"
// @Success 200 {object} apimodels.Response{data=[]adminpanelapimodels.CourseRecord}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/courses/export [get]
func (a *adminApiController) courseExport(ctx *fiber.Ctx) error {
	if ctx.Query("format") == "xlsx" {
		buf, err := handler.Instance.ExportCoursesXlsx()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="cursos.xlsx"`)
		return ctx.Send(buf.Bytes())
	}
	list, err := adminpanelstore.CourseInstance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Estatísticas do cadastro
// @Tags Painel administrativo
// @Description Totais de cursos por área, nível e modalidade
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.CourseStats}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/stats [get]
func (a *adminApiController) stats(ctx *fiber.Ctx) error {
	stats, err := handler.Instance.Stats()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stats))
}

// @Summary Configuração institucional
// @Tags Painel administrativo
// @Description Dados de contato e de WhatsApp usados nas análises
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.Config}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/config [get]
func (a *adminApiController) configGet(ctx *fiber.Ctx) error {
	cfg, err := adminpanelstore.ConfigInstance.Get()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(cfg))
}

// @Summary Atualizar configuração de WhatsApp
// @Tags Painel administrativo
// @Description Atualiza o número institucional e habilita ou não o envio
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		adminpanelapimodels.WhatsAppConfigRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.WhatsAppConfig}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/admin/config/whatsapp [put]
func (a *adminApiController) configWhatsApp(ctx *fiber.Ctx) error {
	var payload adminpanelapimodels.WhatsAppConfigRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	cfg, err := adminpanelstore.ConfigInstance.SetWhatsApp(payload.Number, payload.IsEnabled())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(cfg))
}
