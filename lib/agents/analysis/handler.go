package analysisagent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vocacional-ai-backend/config"
	adminpanelstore "vocacional-ai-backend/lib/admin-panel/store"
	"vocacional-ai-backend/lib/catalog"
	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
	"vocacional-ai-backend/lib/utils/aiparse"
	"vocacional-ai-backend/models"
	adminpanelapimodels "vocacional-ai-backend/models/api/admin-panel"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

type Provider interface {
	// AnalyzeVocationalProfile gera o documento markdown da análise,
	// no modo determinístico ou no modo IA conforme a configuração
	AnalyzeVocationalProfile(ctx context.Context, req vocationalapimodels.TestRequest) (string, error)
	// AnalyzeProfileStructured gera a avaliação estruturada do perfil
	AnalyzeProfileStructured(ctx context.Context, req vocationalapimodels.TestRequest) (vocationalapimodels.ProfileAnalysis, error)
}

var Instance Provider

func NewHandler(configStore adminpanelstore.ConfigProvider) {
	Instance = NewInstance(openaiclient.Instance, configStore, config.Conf.IsDeterministicAnalysis())
}

func NewInstance(client openaiclient.Provider, configStore adminpanelstore.ConfigProvider, deterministic bool) Provider {
	return impl{
		client:        client,
		configStore:   configStore,
		deterministic: deterministic,
	}
}

type impl struct {
	client        openaiclient.Provider
	configStore   adminpanelstore.ConfigProvider
	deterministic bool
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("agent", "analysis")
}

func (i impl) AnalyzeVocationalProfile(ctx context.Context, req vocationalapimodels.TestRequest) (string, error) {
	var (
		md  string
		err error
	)
	if i.deterministic {
		md, err = i.analyzeDeterministic(ctx, req)
	} else {
		md, err = i.analyzeAI(ctx, req)
	}
	if err != nil {
		return "", err
	}
	if invalid := catalog.ValidateMarkdownCourses(md); len(invalid) > 0 {
		i.getLogger().
			WithField("invalid_courses", invalid).
			Error("a análise mencionou cursos fora do cadastro oficial")
		return "", models.NewCatalogViolation(invalid)
	}
	return md, nil
}

// analyzeAI - o modelo escreve o documento inteiro a partir do catálogo completo
func (i impl) analyzeAI(ctx context.Context, req vocationalapimodels.TestRequest) (string, error) {
	userPrompt := i.buildAnalysisPrompt(req)
	md, err := i.client.Complete(ctx, systemPrompt, userPrompt, openaiclient.Options{
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", errors.Wrap(err, "falha ao gerar análise vocacional")
	}
	return strings.TrimSpace(aiparse.StripFormatTags(md)), nil
}

// analyzeDeterministic - o código seleciona os cursos do catálogo; o modelo
// escreve apenas um parágrafo motivacional, com texto fixo de reserva
func (i impl) analyzeDeterministic(ctx context.Context, req vocationalapimodels.TestRequest) (string, error) {
	return assembleDocument(req, i.motivationalParagraph(ctx, req), i.contactBlock()), nil
}

// FallbackDocument monta a análise determinística sem nenhuma chamada ao
// modelo, para quando o pipeline de IA falha por completo
func FallbackDocument(req vocationalapimodels.TestRequest, configStore adminpanelstore.ConfigProvider) string {
	return assembleDocument(req, staticParagraph(req), contactBlockFrom(configStore))
}

func assembleDocument(req vocationalapimodels.TestRequest, paragraph, contact string) string {
	track := catalog.Normalize(req.AreaInteresse)
	trackCourses := catalog.CoursesByTrack(track)

	principais := trackCourses
	if len(principais) > 3 {
		principais = principais[:3]
	}

	opcionais := make([]catalog.Course, 0, 3)
	for _, course := range catalog.CurrentProgram() {
		if course.Track == track {
			continue
		}
		opcionais = append(opcionais, course)
		if len(opcionais) == 3 {
			break
		}
	}

	var md strings.Builder
	fmt.Fprintf(&md, "# Análise Vocacional de %s\n\n", req.Nome)
	fmt.Fprintf(&md, "Olá, %s! É um prazer ajudá-lo na sua jornada de descoberta profissional. %s\n\n", req.Nome, paragraph)

	md.WriteString("## Perfil Vocacional\n")
	fmt.Fprintf(&md, "**Escolaridade**: %s\n", req.Escolaridade)
	fmt.Fprintf(&md, "**Área de Interesse Principal**: %s\n", req.AreaInteresse)
	fmt.Fprintf(&md, "**Habilidades Destacadas**: %s\n", strings.Join(req.Habilidades, ", "))
	fmt.Fprintf(&md, "**Personalidade Profissional**: %s\n", req.Personalidade)
	fmt.Fprintf(&md, "**Experiência Prévia**: %s\n", req.Experiencia)
	fmt.Fprintf(&md, "**Objetivos Profissionais**: %s\n", req.Objetivos)
	fmt.Fprintf(&md, "**Disponibilidade para Estudos**: %s\n\n", req.Disponibilidade)

	md.WriteString("## Áreas de Afinidade\n")
	md.WriteString("Com base nas suas respostas, suas principais áreas de afinidade incluem:\n\n")
	fmt.Fprintf(&md, "%s\n", catalog.TrackDescription(req.AreaInteresse))
	personalidade := strings.ToLower(req.Personalidade)
	if strings.Contains(personalidade, "comunicativ") || strings.Contains(personalidade, "colaborativ") {
		fmt.Fprintf(&md, "Comunicação e Relacionamento: sua personalidade %s é ideal para trabalho em equipe.\n", personalidade)
	}
	for _, habilidade := range req.Habilidades {
		h := strings.ToLower(habilidade)
		if strings.Contains(h, "criativ") || strings.Contains(h, "inova") {
			md.WriteString("Criatividade e Inovação: suas habilidades criativas abrem portas para soluções inovadoras.\n")
			break
		}
	}

	md.WriteString("\n## Recomendações de Cursos do Senac Maranhão\n\n")
	if len(principais) > 0 {
		fmt.Fprintf(&md, "### Cursos Principais (Área: %s)\n", req.AreaInteresse)
		for _, course := range principais {
			fmt.Fprintf(&md, "- %s (%dh)\n", course.Name, course.Hours)
		}
		md.WriteString("\n")
	} else {
		md.WriteString("### Cursos Recomendados\n")
		fmt.Fprintf(&md, "Não encontramos cursos específicos para \"%s\", mas temos excelentes opções em áreas relacionadas:\n\n", req.AreaInteresse)
	}
	if len(opcionais) > 0 {
		md.WriteString("### Cursos Complementares\n")
		for _, course := range opcionais {
			fmt.Fprintf(&md, "- %s (%dh)\n", course.Name, course.Hours)
		}
		md.WriteString("\n")
	}

	md.WriteString("## Próximos Passos\n")
	md.WriteString("1. **Escolha**: Selecione um ou mais cursos que despertam seu interesse\n")
	md.WriteString("2. **Contato**: Entre em contato com o Senac Maranhão para informações sobre inscrições\n")
	md.WriteString("3. **Networking**: Participe de eventos e workshops na sua área de interesse\n")
	md.WriteString("4. **Prática**: Busque oportunidades de aplicar seus conhecimentos em projetos reais\n\n")

	md.WriteString("## Contato Senac Maranhão\n")
	md.WriteString("Para mais informações sobre os cursos e processo de inscrição:\n\n")
	md.WriteString(contact)
	fmt.Fprintf(&md, "\n%s, acredite no seu potencial! O Senac Maranhão está aqui para apoiar sua jornada profissional. Boa sorte!", req.Nome)

	return md.String()
}

func staticParagraph(req vocationalapimodels.TestRequest) string {
	return fmt.Sprintf("Seu perfil demonstra grande potencial na área de %s. Com suas habilidades em %s, você tem tudo para se destacar profissionalmente.",
		req.AreaInteresse, strings.Join(req.Habilidades, " e "))
}

// motivationalParagraph pede o parágrafo ao modelo; em caso de falha usa o texto fixo
func (i impl) motivationalParagraph(ctx context.Context, req vocationalapimodels.TestRequest) string {
	prompt := fmt.Sprintf(motivationalPromptPattern,
		req.Nome,
		req.AreaInteresse,
		strings.Join(req.Habilidades, ", "),
		req.Personalidade,
		req.Objetivos,
	)
	paragraph, err := i.client.Complete(ctx, "", prompt, openaiclient.Options{
		Temperature: 0.3,
		MaxTokens:   150,
	})
	if err != nil {
		i.getLogger().WithError(err).Warn("falha no parágrafo motivacional, usando texto padrão")
		return staticParagraph(req)
	}
	return strings.TrimSpace(paragraph)
}

func (i impl) contactBlock() string {
	return contactBlockFrom(i.configStore)
}

func contactBlockFrom(configStore adminpanelstore.ConfigProvider) string {
	cfg := adminpanelapimodels.DefaultConfig()
	if configStore != nil {
		loaded, err := configStore.Get()
		if err != nil {
			log.WithField("agent", "analysis").
				WithError(err).
				Warn("falha ao carregar a configuração institucional, usando padrão")
		} else {
			cfg = loaded
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Telefone**: %s\n", cfg.Senac.Phone)
	fmt.Fprintf(&b, "**WhatsApp**: %s\n", cfg.WhatsApp.Number)
	fmt.Fprintf(&b, "**Site**: %s\n", cfg.Senac.Website)
	fmt.Fprintf(&b, "**E-mail**: %s\n", cfg.Senac.Email)
	return b.String()
}

func (i impl) buildAnalysisPrompt(req vocationalapimodels.TestRequest) string {
	trackCourses := catalog.CoursesByTrack(req.AreaInteresse)
	respostas, _ := json.Marshal(req.RespostasTeste)
	return fmt.Sprintf(analysisPromptPattern,
		req.Nome,
		req.Escolaridade,
		req.AreaInteresse,
		req.Disponibilidade,
		strings.Join(req.Habilidades, ", "),
		req.Personalidade,
		req.Experiencia,
		req.Objetivos,
		string(respostas),
		courseLines(trackCourses),
		courseLines(catalog.CurrentProgram()),
		i.contactBlock(),
	)
}

func courseLines(courses []catalog.Course) string {
	var b strings.Builder
	for _, course := range courses {
		fmt.Fprintf(&b, "- %s (%dh) - Eixo: %s\n", course.Name, course.Hours, course.Track)
	}
	return b.String()
}

func (i impl) AnalyzeProfileStructured(ctx context.Context, req vocationalapimodels.TestRequest) (analysis vocationalapimodels.ProfileAnalysis, err error) {
	respostas, _ := json.Marshal(req.RespostasTeste)
	prompt := fmt.Sprintf(structuredPromptPattern,
		req.Nome,
		req.Idade,
		req.Escolaridade,
		req.AreaInteresse,
		strings.Join(req.Habilidades, ", "),
		req.Personalidade,
		req.Experiencia,
		req.Objetivos,
		req.Disponibilidade,
		string(respostas),
	)
	response, err := i.client.Complete(ctx, structuredSystemPrompt, prompt, openaiclient.Options{
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return analysis, errors.Wrap(err, "falha na análise estruturada do perfil")
	}
	if err = aiparse.UnmarshalLenient(response, &analysis); err != nil {
		i.getLogger().
			WithField("answer", response).
			WithError(err).
			Error("resposta inválida do agente de análise")
		return analysis, err
	}
	return analysis, nil
}
