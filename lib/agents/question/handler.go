package questionagent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vocacional-ai-backend/lib/catalog"
	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
	"vocacional-ai-backend/lib/utils/aiparse"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

// Rotação fixa de categorias para o conjunto de perguntas
var categories = []string{
	"interesses", "habilidades", "valores", "personalidade",
	"ambiente_trabalho", "motivacao", "objetivos", "estilo_trabalho",
}

type Provider interface {
	GenerateQuestion(ctx context.Context, profile vocationalapimodels.TestRequest, questionNumber int) (vocationalapimodels.Question, error)
	GenerateQuestionSet(ctx context.Context, profile vocationalapimodels.TestRequest, numberOfQuestions int) ([]vocationalapimodels.Question, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(openaiclient.Instance)
}

func NewInstance(client openaiclient.Provider) Provider {
	return impl{client: client}
}

type impl struct {
	client openaiclient.Provider
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("agent", "questions")
}

func (i impl) GenerateQuestion(ctx context.Context, profile vocationalapimodels.TestRequest, questionNumber int) (question vocationalapimodels.Question, err error) {
	if questionNumber < 1 {
		questionNumber = 1
	}
	category := categories[(questionNumber-1)%len(categories)]
	userPrompt := buildUserPrompt(profile, questionNumber, category)

	response, err := i.client.Complete(ctx, systemPrompt, userPrompt, openaiclient.Options{
		Temperature: 0.8,
		MaxTokens:   500,
	})
	if err != nil {
		return question, errors.Wrap(err, "falha ao gerar pergunta")
	}

	if err = aiparse.UnmarshalLenient(response, &question); err != nil {
		i.getLogger().
			WithField("answer", response).
			WithError(err).
			Error("resposta inválida do agente de perguntas")
		return question, err
	}
	if question.Pergunta == "" || len(question.Opcoes) < 4 {
		return question, errors.New("pergunta gerada sem texto ou com menos de 4 opções")
	}
	if question.Categoria == "" {
		question.Categoria = category
	}
	return question, nil
}

// GenerateQuestionSet gera N perguntas, uma chamada por pergunta, seguindo a rotação de categorias
func (i impl) GenerateQuestionSet(ctx context.Context, profile vocationalapimodels.TestRequest, numberOfQuestions int) ([]vocationalapimodels.Question, error) {
	if numberOfQuestions <= 0 {
		numberOfQuestions = 10
	}
	questions := make([]vocationalapimodels.Question, 0, numberOfQuestions)
	for n := 1; n <= numberOfQuestions; n++ {
		question, err := i.GenerateQuestion(ctx, profile, n)
		if err != nil {
			return nil, errors.Wrapf(err, "falha na pergunta %d de %d", n, numberOfQuestions)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func orDefault(value string) string {
	if strings.TrimSpace(value) == "" {
		return "não informado"
	}
	return value
}

func buildUserPrompt(profile vocationalapimodels.TestRequest, questionNumber int, category string) string {
	idade := "não informado"
	if profile.Idade > 0 {
		idade = strconv.Itoa(profile.Idade)
	}

	var coursesList strings.Builder
	for _, course := range catalog.CurrentProgram() {
		coursesList.WriteString(fmt.Sprintf("- %s (%dh) - Eixo: %s\n", course.Name, course.Hours, course.Track))
	}

	return fmt.Sprintf(userPromptPattern,
		questionNumber,
		idade,
		orDefault(profile.Escolaridade),
		orDefault(profile.AreaInteresse),
		orDefault(profile.Disponibilidade),
		category,
		coursesList.String(),
	)
}
