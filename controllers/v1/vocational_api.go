package apiv1

import (
	"bufio"
	"context"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"vocacional-ai-backend/controllers"
	adminpanelstore "vocacional-ai-backend/lib/admin-panel/store"
	analysisagent "vocacional-ai-backend/lib/agents/analysis"
	orchestratoragent "vocacional-ai-backend/lib/agents/orchestrator"
	pdfexport "vocacional-ai-backend/lib/export/pdf"
	"vocacional-ai-backend/lib/streamer"
	apimodels "vocacional-ai-backend/models/api"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

type vocationalApiController struct {
	controllers.BaseAPIController
	schema *gojsonschema.Schema
}

// testRequestSchema - contrato de entrada do teste vocacional
const testRequestSchema = `{
	"type": "object",
	"required": ["nome", "idade", "escolaridade", "area_interesse", "habilidades", "personalidade", "disponibilidade"],
	"properties": {
		"nome": {"type": "string", "minLength": 2},
		"idade": {"type": "integer", "minimum": 1},
		"escolaridade": {"enum": ["fundamental", "medio", "superior", "pos_graduacao"]},
		"area_interesse": {"type": "string", "minLength": 1},
		"habilidades": {"type": "array", "items": {"type": "string"}, "minItems": 1},
		"personalidade": {"enum": ["analitico", "criativo", "comunicativo", "lider", "detalhista", "inovador", "colaborativo", "empreendedor"]},
		"experiencia": {"type": "string"},
		"objetivos": {"type": "string"},
		"disponibilidade": {"enum": ["integral", "matutino", "vespertino", "noturno", "fins_de_semana"]},
		"respostas_teste": {"type": "object"},
		"whatsapp": {"type": "string"}
	}
}`

func InitVocationalApiRouters(app *fiber.App) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(testRequestSchema))
	if err != nil {
		log.WithError(err).Fatal("esquema do teste vocacional inválido")
	}
	controller := vocationalApiController{schema: schema}
	app.Post("vocational-test", controller.runTest)
	app.Post("vocational-test/pdf", controller.exportTestPdf)
}

// validateBody confere o corpo bruto contra o contrato antes de qualquer
// chamada ao modelo
func (c *vocationalApiController) validateBody(ctx *fiber.Ctx) (vocationalapimodels.TestRequest, error) {
	var payload vocationalapimodels.TestRequest
	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(ctx.Body()))
	if err != nil {
		return payload, fiber.NewError(fiber.StatusBadRequest, "não foi possível obter os dados da requisição")
	}
	if !result.Valid() {
		return payload, fiber.NewError(fiber.StatusBadRequest, result.Errors()[0].String())
	}
	if err := c.BodyParser(ctx, &payload); err != nil {
		return payload, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return payload, nil
}

// @Summary Executar o teste vocacional
// @Tags Teste vocacional
// @Description Executa o workflow completo e transmite o resultado em blocos
// @Param	body				body		vocationalapimodels.TestRequest	true	"request body"
// @Success 200 {string} string "fluxo de texto com a análise em markdown"
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vocational-test [post]
func (c *vocationalApiController) runTest(ctx *fiber.Ctx) error {
	payload, err := c.validateBody(ctx)
	if err != nil {
		ferr := err.(*fiber.Error)
		return ctx.Status(ferr.Code).JSON(apimodels.NewError(ferr.Message))
	}

	document := c.resolveDocument(ctx.UserContext(), payload)

	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		if err := streamer.Deliver(context.Background(), w, document, streamer.MarkdownChunkSize, streamer.DefaultDelay); err != nil {
			log.WithError(err).Warn("entrega do stream interrompida")
			_, _ = w.WriteString("\nevent: error\n")
			_ = w.Flush()
		}
	})
	return nil
}

// resolveDocument tenta o workflow completo; qualquer falha cai no documento
// determinístico montado só com o catálogo
func (c *vocationalApiController) resolveDocument(ctx context.Context, payload vocationalapimodels.TestRequest) string {
	workflow, err := orchestratoragent.Instance.ExecuteFullWorkflow(ctx, payload)
	if err != nil {
		log.WithError(err).Warn("workflow vocacional falhou, usando documento de reserva")
		return analysisagent.FallbackDocument(payload, adminpanelstore.ConfigInstance)
	}
	if workflow.Data.Narrative != "" {
		return workflow.Data.Analysis + "\n\n" + workflow.Data.Narrative
	}
	return workflow.Data.Analysis
}

// @Summary Exportar o resultado do teste em PDF
// @Tags Teste vocacional
// @Description Gera a análise vocacional e devolve o documento em PDF
// @Param	body				body		vocationalapimodels.TestRequest	true	"request body"
// @Success 200 {file} file "application/pdf"
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vocational-test/pdf [post]
func (c *vocationalApiController) exportTestPdf(ctx *fiber.Ctx) error {
	payload, err := c.validateBody(ctx)
	if err != nil {
		ferr := err.(*fiber.Error)
		return ctx.Status(ferr.Code).JSON(apimodels.NewError(ferr.Message))
	}

	document := c.resolveDocument(ctx.UserContext(), payload)
	pdfFile, err := pdfexport.GenerateAnalysisReport(document)
	if err != nil {
		log.WithError(err).Error("erro ao gerar PDF da análise")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("erro ao gerar o PDF"))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="analise-vocacional.pdf"`)
	return ctx.Send(pdfFile)
}
