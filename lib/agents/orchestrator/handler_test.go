package orchestratoragent

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"vocacional-ai-backend/models"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

type fakeAnalysis struct {
	md    string
	err   error
	calls int
}

func (f *fakeAnalysis) AnalyzeVocationalProfile(ctx context.Context, req vocationalapimodels.TestRequest) (string, error) {
	f.calls++
	return f.md, f.err
}

func (f *fakeAnalysis) AnalyzeProfileStructured(ctx context.Context, req vocationalapimodels.TestRequest) (vocationalapimodels.ProfileAnalysis, error) {
	return vocationalapimodels.ProfileAnalysis{}, f.err
}

type fakeCourses struct {
	set         vocationalapimodels.RecommendationSet
	err         error
	calls       int
	lastProfile interface{}
}

func (f *fakeCourses) RecommendCourses(ctx context.Context, vocationalProfile interface{}, req vocationalapimodels.TestRequest) (vocationalapimodels.RecommendationSet, error) {
	f.calls++
	f.lastProfile = vocationalProfile
	return f.set, f.err
}

func (f *fakeCourses) RecommendForTrack(ctx context.Context, area string, req vocationalapimodels.TestRequest, maxCourses int) (vocationalapimodels.RecommendationSet, error) {
	return f.set, f.err
}

func (f *fakeCourses) RecommendByAvailability(ctx context.Context, availability string, req vocationalapimodels.TestRequest) (vocationalapimodels.RecommendationSet, error) {
	return f.set, f.err
}

type fakeNarrative struct {
	text string
	err  error
}

func (f fakeNarrative) GeneratePersonalizedNarrative(ctx context.Context, req vocationalapimodels.TestRequest, courseBullets []string) (string, error) {
	return f.text, f.err
}

type fakeWhatsApp struct {
	msg vocationalapimodels.WhatsAppMessage
	err error
}

func (f fakeWhatsApp) FormatVocationalResult(ctx context.Context, req vocationalapimodels.TestRequest, analysis interface{}, courses vocationalapimodels.RecommendationSet) (vocationalapimodels.WhatsAppMessage, error) {
	return f.msg, f.err
}

func (f fakeWhatsApp) FormatQuickSummary(ctx context.Context, userName, topArea, topCourse string) (vocationalapimodels.WhatsAppMessage, error) {
	return f.msg, f.err
}

func (f fakeWhatsApp) FormatEnrollmentInvite(ctx context.Context, userName, courseName string, courseDetails interface{}) (vocationalapimodels.WhatsAppMessage, error) {
	return f.msg, f.err
}

func (f fakeWhatsApp) FormatFollowUpReminder(ctx context.Context, userName string, daysSinceTest int, recommendedCourses []string) (vocationalapimodels.WhatsAppMessage, error) {
	return f.msg, f.err
}

type fakeQuestions struct {
	set []vocationalapimodels.Question
	err error
}

func (f fakeQuestions) GenerateQuestion(ctx context.Context, profile vocationalapimodels.TestRequest, questionNumber int) (vocationalapimodels.Question, error) {
	if f.err != nil {
		return vocationalapimodels.Question{}, f.err
	}
	return f.set[0], nil
}

func (f fakeQuestions) GenerateQuestionSet(ctx context.Context, profile vocationalapimodels.TestRequest, numberOfQuestions int) ([]vocationalapimodels.Question, error) {
	return f.set, f.err
}

func testProfile() vocationalapimodels.TestRequest {
	return vocationalapimodels.TestRequest{
		Nome:            "Ana",
		Idade:           22,
		Escolaridade:    "medio",
		AreaInteresse:   "tecnologia",
		Habilidades:     []string{"excel"},
		Personalidade:   "colaborativo",
		Disponibilidade: "noturno",
	}
}

func testRecommendations() vocationalapimodels.RecommendationSet {
	return vocationalapimodels.RecommendationSet{
		TrilhasRecomendadas: []vocationalapimodels.RecommendationTrack{
			{
				Area: "tecnologia da informação",
				Cursos: []vocationalapimodels.RecommendedCourse{
					{Nome: "Excel Avançado", ProgramacaoAtual: true},
				},
			},
		},
	}
}

func TestOrchestrator(t *testing.T) {
	t.Run(`workflow completo percorre todas as etapas`, func(t *testing.T) {
		provider := NewInstance(
			&fakeAnalysis{md: "# Análise"},
			&fakeCourses{set: testRecommendations()},
			fakeNarrative{text: "Seus Resultados Estão Prontos!"},
			fakeWhatsApp{msg: vocationalapimodels.WhatsAppMessage{Mensagem: "🎓 resultado"}},
			fakeQuestions{},
			nil,
			nil,
		)
		workflow, err := provider.ExecuteFullWorkflow(context.Background(), testProfile())
		require.Nil(t, err)
		require.Equal(t, vocationalapimodels.StepCompleted, workflow.CurrentStep)
		require.NotEmpty(t, workflow.SessionID)
		require.Equal(t, "# Análise", workflow.Data.Analysis)
		require.Equal(t, "Seus Resultados Estão Prontos!", workflow.Data.Narrative)
		require.Equal(t, "🎓 resultado", workflow.Data.WhatsAppMessage.Mensagem)
		require.Len(t, workflow.Data.Courses.TrilhasRecomendadas, 1)
	})

	t.Run(`falha na análise aborta o workflow com a etapa identificada`, func(t *testing.T) {
		provider := NewInstance(
			&fakeAnalysis{err: errors.New("serviço indisponível")},
			&fakeCourses{set: testRecommendations()},
			fakeNarrative{text: "texto"},
			fakeWhatsApp{},
			fakeQuestions{},
			nil,
			nil,
		)
		workflow, err := provider.ExecuteFullWorkflow(context.Background(), testProfile())
		require.NotNil(t, err)
		var stageErr *models.WorkflowStageError
		require.Equal(t, true, errors.As(err, &stageErr))
		require.Equal(t, vocationalapimodels.StepAnalysis, stageErr.Stage)
		require.Equal(t, vocationalapimodels.StepAnalysis, workflow.CurrentStep)
	})

	t.Run(`falha na formatação WhatsApp aborta na última etapa`, func(t *testing.T) {
		provider := NewInstance(
			&fakeAnalysis{md: "# Análise"},
			&fakeCourses{set: testRecommendations()},
			fakeNarrative{text: "texto"},
			fakeWhatsApp{err: errors.New("serviço indisponível")},
			fakeQuestions{},
			nil,
			nil,
		)
		_, err := provider.ExecuteFullWorkflow(context.Background(), testProfile())
		require.NotNil(t, err)
		var stageErr *models.WorkflowStageError
		require.Equal(t, true, errors.As(err, &stageErr))
		require.Equal(t, vocationalapimodels.StepWhatsApp, stageErr.Stage)
	})

	t.Run(`falha na narrativa aponta a etapa de narrativa`, func(t *testing.T) {
		provider := NewInstance(
			&fakeAnalysis{md: "# Análise"},
			&fakeCourses{set: testRecommendations()},
			fakeNarrative{err: errors.New("serviço indisponível")},
			fakeWhatsApp{},
			fakeQuestions{},
			nil,
			nil,
		)
		workflow, err := provider.ExecuteFullWorkflow(context.Background(), testProfile())
		require.NotNil(t, err)
		var stageErr *models.WorkflowStageError
		require.Equal(t, true, errors.As(err, &stageErr))
		require.Equal(t, vocationalapimodels.StepNarrative, stageErr.Stage)
		require.Equal(t, vocationalapimodels.StepNarrative, workflow.CurrentStep)
	})

	t.Run(`execução parcial devolve o envelope de sucesso com metadados`, func(t *testing.T) {
		provider := NewInstance(
			&fakeAnalysis{md: "# Análise"},
			&fakeCourses{set: testRecommendations()},
			fakeNarrative{},
			fakeWhatsApp{},
			fakeQuestions{},
			nil,
			nil,
		)
		response := provider.ExecuteAnalysisOnly(context.Background(), testProfile())
		require.Equal(t, true, response.Success)
		require.Equal(t, AgentAnalysis, response.Metadata.Agent)
		require.Equal(t, "# Análise", response.Data)
	})

	t.Run(`execução parcial devolve o envelope de erro`, func(t *testing.T) {
		provider := NewInstance(
			&fakeAnalysis{md: "# Análise"},
			&fakeCourses{err: errors.New("serviço indisponível")},
			fakeNarrative{},
			fakeWhatsApp{},
			fakeQuestions{},
			nil,
			nil,
		)
		response := provider.ExecuteCoursesOnly(context.Background(), testProfile())
		require.Equal(t, false, response.Success)
		require.Equal(t, AgentCourses, response.Metadata.Agent)
		require.NotEmpty(t, response.Error)
	})

	t.Run(`recomendação isolada gera a análise do perfil antes dos cursos`, func(t *testing.T) {
		analysis := &fakeAnalysis{md: "# Análise"}
		courses := &fakeCourses{set: testRecommendations()}
		provider := NewInstance(
			analysis,
			courses,
			fakeNarrative{},
			fakeWhatsApp{},
			fakeQuestions{},
			nil,
			nil,
		)
		response := provider.ExecuteCoursesOnly(context.Background(), testProfile())
		require.Equal(t, true, response.Success)
		require.Equal(t, 1, analysis.calls)
		require.Equal(t, 1, courses.calls)
		require.Equal(t, "# Análise", courses.lastProfile)
	})

	t.Run(`formatação WhatsApp completa análise e cursos ausentes`, func(t *testing.T) {
		analysis := &fakeAnalysis{md: "# Análise"}
		courses := &fakeCourses{set: testRecommendations()}
		provider := NewInstance(
			analysis,
			courses,
			fakeNarrative{},
			fakeWhatsApp{msg: vocationalapimodels.WhatsAppMessage{Mensagem: "🎓 resultado"}},
			fakeQuestions{},
			nil,
			nil,
		)
		response := provider.FormatForWhatsApp(context.Background(), testProfile(), "", vocationalapimodels.RecommendationSet{})
		require.Equal(t, true, response.Success)
		require.Equal(t, 1, analysis.calls)
		require.Equal(t, 1, courses.calls)
		require.Equal(t, "# Análise", courses.lastProfile)
	})

	t.Run(`formatação WhatsApp preserva análise e cursos já fornecidos`, func(t *testing.T) {
		analysis := &fakeAnalysis{md: "# Análise"}
		courses := &fakeCourses{set: testRecommendations()}
		provider := NewInstance(
			analysis,
			courses,
			fakeNarrative{},
			fakeWhatsApp{msg: vocationalapimodels.WhatsAppMessage{Mensagem: "🎓 resultado"}},
			fakeQuestions{},
			nil,
			nil,
		)
		response := provider.FormatForWhatsApp(context.Background(), testProfile(), "# Pronta", testRecommendations())
		require.Equal(t, true, response.Success)
		require.Equal(t, 0, analysis.calls)
		require.Equal(t, 0, courses.calls)
	})

	t.Run(`geração de perguntas devolve o conjunto no envelope`, func(t *testing.T) {
		questions := []vocationalapimodels.Question{
			{Pergunta: "O que mais te motiva?", Categoria: "motivacao"},
		}
		provider := NewInstance(
			&fakeAnalysis{},
			&fakeCourses{},
			fakeNarrative{},
			fakeWhatsApp{},
			fakeQuestions{set: questions},
			nil,
			nil,
		)
		response := provider.GenerateQuestions(context.Background(), testProfile(), 1)
		require.Equal(t, true, response.Success)
		require.Equal(t, AgentQuestions, response.Metadata.Agent)
	})
}
