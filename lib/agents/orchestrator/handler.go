package orchestratoragent

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	adminpanelstore "vocacional-ai-backend/lib/admin-panel/store"
	analysisagent "vocacional-ai-backend/lib/agents/analysis"
	courseagent "vocacional-ai-backend/lib/agents/course"
	narrativeagent "vocacional-ai-backend/lib/agents/narrative"
	questionagent "vocacional-ai-backend/lib/agents/question"
	whatsappagent "vocacional-ai-backend/lib/agents/whatsapp"
	whatsappclient "vocacional-ai-backend/lib/whatsup/client"
	"vocacional-ai-backend/models"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

// Nomes dos agentes usados nos metadados das respostas
const (
	AgentAnalysis     = "analysis"
	AgentCourses      = "courses"
	AgentQuestions    = "questions"
	AgentWhatsApp     = "whatsapp"
	AgentOrchestrator = "orchestrator"
)

type Provider interface {
	// ExecuteFullWorkflow executa o fluxo completo: análise, cursos,
	// narrativa e mensagem WhatsApp. Qualquer etapa com falha aborta o fluxo.
	ExecuteFullWorkflow(ctx context.Context, req vocationalapimodels.TestRequest) (vocationalapimodels.Workflow, error)
	ExecuteAnalysisOnly(ctx context.Context, req vocationalapimodels.TestRequest) vocationalapimodels.AgentResponse
	GenerateQuestions(ctx context.Context, req vocationalapimodels.TestRequest, numberOfQuestions int) vocationalapimodels.AgentResponse
	ExecuteCoursesOnly(ctx context.Context, req vocationalapimodels.TestRequest) vocationalapimodels.AgentResponse
	FormatForWhatsApp(ctx context.Context, req vocationalapimodels.TestRequest, analysis string, courses vocationalapimodels.RecommendationSet) vocationalapimodels.AgentResponse
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		analysisagent.Instance,
		courseagent.Instance,
		narrativeagent.Instance,
		whatsappagent.Instance,
		questionagent.Instance,
		whatsappclient.Instance,
		adminpanelstore.ConfigInstance,
	)
}

func NewInstance(
	analysis analysisagent.Provider,
	courses courseagent.Provider,
	narrative narrativeagent.Provider,
	whatsapp whatsappagent.Provider,
	questions questionagent.Provider,
	sender whatsappclient.Provider,
	configStore adminpanelstore.ConfigProvider,
) Provider {
	return impl{
		analysis:    analysis,
		courses:     courses,
		narrative:   narrative,
		whatsapp:    whatsapp,
		questions:   questions,
		sender:      sender,
		configStore: configStore,
	}
}

type impl struct {
	analysis    analysisagent.Provider
	courses     courseagent.Provider
	narrative   narrativeagent.Provider
	whatsapp    whatsappagent.Provider
	questions   questionagent.Provider
	sender      whatsappclient.Provider
	configStore adminpanelstore.ConfigProvider
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("agent", AgentOrchestrator)
}

func (i impl) ExecuteFullWorkflow(ctx context.Context, req vocationalapimodels.TestRequest) (vocationalapimodels.Workflow, error) {
	now := time.Now()
	workflow := vocationalapimodels.Workflow{
		UserID:      req.Nome,
		SessionID:   uuid.NewString(),
		CurrentStep: vocationalapimodels.StepAnalysis,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	logger := i.getLogger().WithField("session_id", workflow.SessionID)

	analysis, err := i.analysis.AnalyzeVocationalProfile(ctx, req)
	if err != nil {
		return workflow, models.NewWorkflowStageError(vocationalapimodels.StepAnalysis, err)
	}
	workflow.Data.Analysis = analysis
	workflow.CurrentStep = vocationalapimodels.StepCourses
	workflow.UpdatedAt = time.Now()

	courses, err := i.courses.RecommendCourses(ctx, analysis, req)
	if err != nil {
		return workflow, models.NewWorkflowStageError(vocationalapimodels.StepCourses, err)
	}
	workflow.Data.Courses = courses
	workflow.CurrentStep = vocationalapimodels.StepNarrative
	workflow.UpdatedAt = time.Now()

	bullets := narrativeagent.BuildCourseBullets(courses)
	narrative, err := i.narrative.GeneratePersonalizedNarrative(ctx, req, bullets)
	if err != nil {
		return workflow, models.NewWorkflowStageError(vocationalapimodels.StepNarrative, err)
	}
	workflow.Data.Narrative = narrative
	workflow.CurrentStep = vocationalapimodels.StepWhatsApp
	workflow.UpdatedAt = time.Now()

	message, err := i.whatsapp.FormatVocationalResult(ctx, req, analysis, courses)
	if err != nil {
		return workflow, models.NewWorkflowStageError(vocationalapimodels.StepWhatsApp, err)
	}
	workflow.Data.WhatsAppMessage = message
	workflow.CurrentStep = vocationalapimodels.StepCompleted
	workflow.UpdatedAt = time.Now()

	i.deliverWhatsApp(ctx, logger, req, message)

	logger.
		WithField("duration_sec", time.Since(now).Seconds()).
		Info("workflow vocacional concluído")
	return workflow, nil
}

// deliverWhatsApp envia a mensagem final quando o envio está habilitado e o
// usuário informou contato. Falha de entrega não invalida o workflow.
func (i impl) deliverWhatsApp(ctx context.Context, logger *log.Entry, req vocationalapimodels.TestRequest, message vocationalapimodels.WhatsAppMessage) {
	if i.sender == nil || i.configStore == nil || req.WhatsApp == "" {
		return
	}
	conf, err := i.configStore.Get()
	if err != nil {
		logger.WithError(err).Error("erro ao carregar configuração de WhatsApp")
		return
	}
	if !conf.WhatsApp.Enabled {
		return
	}
	if err = i.sender.SendTextMessage(ctx, req.WhatsApp, message.Mensagem); err != nil {
		logger.WithError(err).Error("erro ao entregar mensagem WhatsApp")
	}
}

func (i impl) ExecuteAnalysisOnly(ctx context.Context, req vocationalapimodels.TestRequest) vocationalapimodels.AgentResponse {
	start := time.Now()
	analysis, err := i.analysis.AnalyzeVocationalProfile(ctx, req)
	if err != nil {
		return errorResponse(AgentAnalysis, start, err)
	}
	return successResponse(AgentAnalysis, start, analysis)
}

func (i impl) GenerateQuestions(ctx context.Context, req vocationalapimodels.TestRequest, numberOfQuestions int) vocationalapimodels.AgentResponse {
	start := time.Now()
	set, err := i.questions.GenerateQuestionSet(ctx, req, numberOfQuestions)
	if err != nil {
		return errorResponse(AgentQuestions, start, err)
	}
	return successResponse(AgentQuestions, start, set)
}

// ExecuteCoursesOnly gera primeiro a análise do perfil para que a
// recomendação de cursos nunca parta de um perfil vazio
func (i impl) ExecuteCoursesOnly(ctx context.Context, req vocationalapimodels.TestRequest) vocationalapimodels.AgentResponse {
	start := time.Now()
	analysis, err := i.analysis.AnalyzeVocationalProfile(ctx, req)
	if err != nil {
		return errorResponse(AgentCourses, start, err)
	}
	courses, err := i.courses.RecommendCourses(ctx, analysis, req)
	if err != nil {
		return errorResponse(AgentCourses, start, err)
	}
	return successResponse(AgentCourses, start, courses)
}

// FormatForWhatsApp completa análise e cursos ausentes antes de formatar,
// para que a mensagem sempre carregue cursos validados contra o catálogo
func (i impl) FormatForWhatsApp(ctx context.Context, req vocationalapimodels.TestRequest, analysis string, courses vocationalapimodels.RecommendationSet) vocationalapimodels.AgentResponse {
	start := time.Now()
	var err error
	if analysis == "" {
		analysis, err = i.analysis.AnalyzeVocationalProfile(ctx, req)
		if err != nil {
			return errorResponse(AgentWhatsApp, start, err)
		}
	}
	if len(courses.TrilhasRecomendadas) == 0 {
		courses, err = i.courses.RecommendCourses(ctx, analysis, req)
		if err != nil {
			return errorResponse(AgentWhatsApp, start, err)
		}
	}
	message, err := i.whatsapp.FormatVocationalResult(ctx, req, analysis, courses)
	if err != nil {
		return errorResponse(AgentWhatsApp, start, err)
	}
	return successResponse(AgentWhatsApp, start, message)
}

func successResponse(agent string, start time.Time, data interface{}) vocationalapimodels.AgentResponse {
	return vocationalapimodels.AgentResponse{
		Success:  true,
		Data:     data,
		Metadata: buildMetadata(agent, start),
	}
}

func errorResponse(agent string, start time.Time, err error) vocationalapimodels.AgentResponse {
	return vocationalapimodels.AgentResponse{
		Success:  false,
		Error:    err.Error(),
		Metadata: buildMetadata(agent, start),
	}
}

func buildMetadata(agent string, start time.Time) vocationalapimodels.AgentMetadata {
	return vocationalapimodels.AgentMetadata{
		Timestamp:        time.Now(),
		Agent:            agent,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}
