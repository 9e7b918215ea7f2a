package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vocacional-ai-backend/controllers"
	orchestratoragent "vocacional-ai-backend/lib/agents/orchestrator"
	whatsappagent "vocacional-ai-backend/lib/agents/whatsapp"
	apimodels "vocacional-ai-backend/models/api"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

type agentApiController struct {
	controllers.BaseAPIController
}

func InitAgentApiRouters(app *fiber.App) {
	controller := agentApiController{}
	app.Route("agents", func(agentsRoute fiber.Router) {
		agentsRoute.Get("health", controller.health)
		agentsRoute.Post("questions", controller.questions)
		agentsRoute.Post("analysis", controller.analysis)
		agentsRoute.Post("courses", controller.courses)
		agentsRoute.Post("whatsapp", controller.whatsapp)
		agentsRoute.Post("workflow", controller.workflow)
	})
}

// @Summary Capacidades dos agentes
// @Tags Agentes
// @Description Relatório estático das capacidades de cada agente
// @Success 200 {object} apimodels.Response
// @router /api/v1/agents/health [get]
func (c *agentApiController) health(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{
		"status": "operational",
		"agents": fiber.Map{
			"questions": "geração de perguntas vocacionais personalizadas",
			"analysis":  "análise de perfil vocacional com recomendação de cursos",
			"courses":   "recomendação de trilhas de cursos do catálogo oficial",
			"narrative": "redação personalizada do resultado",
			"whatsapp":  "formatação de mensagens para WhatsApp",
		},
	}))
}

func (c *agentApiController) parseProfile(ctx *fiber.Ctx) (vocationalapimodels.TestRequest, error) {
	var payload vocationalapimodels.TestRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return payload, err
	}
	return payload, payload.Validate()
}

// @Summary Gerar perguntas vocacionais
// @Tags Agentes
// @Description Gera o conjunto de perguntas personalizadas para o perfil
// @Param	body				body		vocationalapimodels.TestRequest	true	"request body"
// @Success 200 {object} vocationalapimodels.AgentResponse
// @Failure 400 {object} apimodels.Response
// @router /api/v1/agents/questions [post]
func (c *agentApiController) questions(ctx *fiber.Ctx) error {
	payload, err := c.parseProfile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response := orchestratoragent.Instance.GenerateQuestions(ctx.UserContext(), payload, 0)
	return c.sendAgentResponse(ctx, response)
}

// @Summary Analisar perfil vocacional
// @Tags Agentes
// @Description Executa somente o agente de análise
// @Param	body				body		vocationalapimodels.TestRequest	true	"request body"
// @Success 200 {object} vocationalapimodels.AgentResponse
// @Failure 400 {object} apimodels.Response
// @router /api/v1/agents/analysis [post]
func (c *agentApiController) analysis(ctx *fiber.Ctx) error {
	payload, err := c.parseProfile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response := orchestratoragent.Instance.ExecuteAnalysisOnly(ctx.UserContext(), payload)
	return c.sendAgentResponse(ctx, response)
}

// @Summary Recomendar cursos
// @Tags Agentes
// @Description Executa somente o agente de cursos
// @Param	body				body		vocationalapimodels.TestRequest	true	"request body"
// @Success 200 {object} vocationalapimodels.AgentResponse
// @Failure 400 {object} apimodels.Response
// @router /api/v1/agents/courses [post]
func (c *agentApiController) courses(ctx *fiber.Ctx) error {
	payload, err := c.parseProfile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response := orchestratoragent.Instance.ExecuteCoursesOnly(ctx.UserContext(), payload)
	return c.sendAgentResponse(ctx, response)
}

// @Summary Formatar mensagem WhatsApp
// @Tags Agentes
// @Description Gera e valida a mensagem de resultado para WhatsApp
// @Param	body				body		vocationalapimodels.TestRequest	true	"request body"
// @Success 200 {object} vocationalapimodels.AgentResponse
// @Failure 400 {object} apimodels.Response
// @router /api/v1/agents/whatsapp [post]
func (c *agentApiController) whatsapp(ctx *fiber.Ctx) error {
	payload, err := c.parseProfile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response := orchestratoragent.Instance.FormatForWhatsApp(ctx.UserContext(), payload, "", vocationalapimodels.RecommendationSet{})
	if message, ok := response.Data.(vocationalapimodels.WhatsAppMessage); ok {
		response.Data = fiber.Map{
			"message":    message,
			"validation": whatsappagent.ValidateMessage(message.Mensagem),
		}
	}
	return c.sendAgentResponse(ctx, response)
}

// @Summary Executar o workflow completo
// @Tags Agentes
// @Description Análise, cursos, narrativa e mensagem WhatsApp em sequência
// @Param	body				body		vocationalapimodels.TestRequest	true	"request body"
// @Success 200 {object} vocationalapimodels.AgentResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} vocationalapimodels.AgentResponse
// @router /api/v1/agents/workflow [post]
func (c *agentApiController) workflow(ctx *fiber.Ctx) error {
	payload, err := c.parseProfile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	workflow, err := orchestratoragent.Instance.ExecuteFullWorkflow(ctx.UserContext(), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(workflow))
}

func (c *agentApiController) sendAgentResponse(ctx *fiber.Ctx, response vocationalapimodels.AgentResponse) error {
	status := fiber.StatusOK
	if !response.Success {
		status = fiber.StatusInternalServerError
	}
	return ctx.Status(status).JSON(response)
}
