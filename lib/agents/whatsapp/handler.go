package whatsappagent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
	"vocacional-ai-backend/lib/utils/aiparse"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

// Limites do WhatsApp
const (
	maxMessageLength = 4096
	maxLineBreaks    = 20
)

// Tipos de mensagem suportados
const (
	MessageTypeFullResult       = "resultado_completo"
	MessageTypeQuickSummary     = "resumo_rapido"
	MessageTypeEnrollmentInvite = "convite_matricula"
	MessageTypeFollowUpReminder = "lembrete_followup"
)

type Provider interface {
	FormatVocationalResult(ctx context.Context, req vocationalapimodels.TestRequest, analysis interface{}, courses vocationalapimodels.RecommendationSet) (vocationalapimodels.WhatsAppMessage, error)
	FormatQuickSummary(ctx context.Context, userName, topArea, topCourse string) (vocationalapimodels.WhatsAppMessage, error)
	FormatEnrollmentInvite(ctx context.Context, userName, courseName string, courseDetails interface{}) (vocationalapimodels.WhatsAppMessage, error)
	FormatFollowUpReminder(ctx context.Context, userName string, daysSinceTest int, recommendedCourses []string) (vocationalapimodels.WhatsAppMessage, error)
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
	return log.WithField("agent", "whatsapp")
}

func (i impl) FormatVocationalResult(ctx context.Context, req vocationalapimodels.TestRequest, analysis interface{}, courses vocationalapimodels.RecommendationSet) (vocationalapimodels.WhatsAppMessage, error) {
	analysisJSON, _ := json.Marshal(analysis)
	coursesJSON, _ := json.Marshal(courses)
	prompt := fmt.Sprintf(`Formate o resultado completo do teste vocacional para WhatsApp:

DADOS DO USUÁRIO:
- Nome: %s
- Idade: %d
- Área de interesse: %s

ANÁLISE VOCACIONAL:
%s

CURSOS RECOMENDADOS:
%s

Use o modelo da mensagem de resultado alterando APENAS o nome e os itens de cursos.
Inclua call-to-action para matrícula.`,
		req.Nome, req.Idade, req.AreaInteresse, string(analysisJSON), string(coursesJSON))

	return i.generateMessage(ctx, prompt, MessageTypeFullResult)
}

func (i impl) FormatQuickSummary(ctx context.Context, userName, topArea, topCourse string) (vocationalapimodels.WhatsAppMessage, error) {
	prompt := fmt.Sprintf(`Crie um resumo rápido para WhatsApp:

- Nome: %s
- Área principal: %s
- Curso recomendado: %s

Mensagem deve ser concisa (máximo 500 caracteres) mas impactante.
Foque no resultado principal e convite para saber mais.`,
		userName, topArea, topCourse)

	return i.generateMessage(ctx, prompt, MessageTypeQuickSummary)
}

func (i impl) FormatEnrollmentInvite(ctx context.Context, userName, courseName string, courseDetails interface{}) (vocationalapimodels.WhatsAppMessage, error) {
	detailsJSON, _ := json.Marshal(courseDetails)
	prompt := fmt.Sprintf(`Crie convite para matrícula no curso:

- Nome: %s
- Curso: %s
- Detalhes: %s

Mensagem deve ser persuasiva e incluir:
- Benefícios do curso
- Próximas turmas
- Como se inscrever
- Contato para dúvidas`,
		userName, courseName, string(detailsJSON))

	return i.generateMessage(ctx, prompt, MessageTypeEnrollmentInvite)
}

func (i impl) FormatFollowUpReminder(ctx context.Context, userName string, daysSinceTest int, recommendedCourses []string) (vocationalapimodels.WhatsAppMessage, error) {
	prompt := fmt.Sprintf(`Crie lembrete de acompanhamento:

- Nome: %s
- Dias desde o teste: %d
- Cursos recomendados: %s

Mensagem deve ser amigável e motivacional.
Pergunte sobre interesse nos cursos e ofereça ajuda.`,
		userName, daysSinceTest, strings.Join(recommendedCourses, ", "))

	return i.generateMessage(ctx, prompt, MessageTypeFollowUpReminder)
}

func (i impl) generateMessage(ctx context.Context, prompt, messageType string) (msg vocationalapimodels.WhatsAppMessage, err error) {
	system := systemPrompt + "\n\nTipo de mensagem: " + messageType
	response, err := i.client.Complete(ctx, system, prompt, openaiclient.Options{
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		return msg, errors.Wrap(err, "falha ao gerar mensagem WhatsApp")
	}
	if err = aiparse.UnmarshalLenient(response, &msg); err != nil {
		i.getLogger().
			WithField("answer", response).
			WithError(err).
			Error("resposta inválida do agente WhatsApp")
		return msg, err
	}
	if msg.Mensagem == "" {
		return msg, errors.New("mensagem WhatsApp vazia")
	}
	msg.Caracteres = len([]rune(msg.Mensagem))
	if msg.Preview == "" {
		runes := []rune(msg.Mensagem)
		if len(runes) > 100 {
			runes = runes[:100]
		}
		msg.Preview = string(runes)
	}
	msg.QuebrasDeLinha = strings.Count(msg.Mensagem, "\n")
	return msg, nil
}

var emojiRegex = regexp.MustCompile(`[\x{1F600}-\x{1F64F}]|[\x{1F300}-\x{1F5FF}]|[\x{1F680}-\x{1F6FF}]|[\x{1F1E0}-\x{1F1FF}]`)

// ValidateMessage verifica os limites do WhatsApp. Excesso de caracteres
// invalida a mensagem; quebras de linha demais são um problema; ausência de
// emojis gera apenas uma sugestão.
func ValidateMessage(message string) vocationalapimodels.MessageValidation {
	issues := make([]string, 0)
	suggestions := make([]string, 0)

	if len([]rune(message)) > maxMessageLength {
		issues = append(issues, "Mensagem excede limite de 4096 caracteres")
		suggestions = append(suggestions, "Reduza o conteúdo ou divida em múltiplas mensagens")
	}

	if strings.Count(message, "\n") > maxLineBreaks {
		issues = append(issues, "Muitas quebras de linha")
		suggestions = append(suggestions, "Reduza quebras de linha para melhor legibilidade")
	}

	if !emojiRegex.MatchString(message) {
		suggestions = append(suggestions, "Considere adicionar emojis para tornar a mensagem mais atrativa")
	}

	return vocationalapimodels.MessageValidation{
		Valid:       len(issues) == 0,
		Issues:      issues,
		Suggestions: suggestions,
	}
}
