package courseagent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	adminpanelstore "vocacional-ai-backend/lib/admin-panel/store"
	"vocacional-ai-backend/lib/catalog"
	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
	"vocacional-ai-backend/lib/utils/aiparse"
	"vocacional-ai-backend/models"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

const defaultMaxCourses = 5

type Provider interface {
	// RecommendCourses recomenda trilhas a partir da análise vocacional
	RecommendCourses(ctx context.Context, vocationalProfile interface{}, req vocationalapimodels.TestRequest) (vocationalapimodels.RecommendationSet, error)
	// RecommendForTrack recomenda cursos de uma área específica
	RecommendForTrack(ctx context.Context, area string, req vocationalapimodels.TestRequest, maxCourses int) (vocationalapimodels.RecommendationSet, error)
	// RecommendByAvailability recomenda cursos adequados à disponibilidade de tempo
	RecommendByAvailability(ctx context.Context, availability string, req vocationalapimodels.TestRequest) (vocationalapimodels.RecommendationSet, error)
}

var Instance Provider

func NewHandler(courseStore adminpanelstore.CourseProvider) {
	Instance = NewInstance(openaiclient.Instance, courseStore)
}

func NewInstance(client openaiclient.Provider, courseStore adminpanelstore.CourseProvider) Provider {
	return impl{
		client:      client,
		courseStore: courseStore,
	}
}

type impl struct {
	client      openaiclient.Provider
	courseStore adminpanelstore.CourseProvider
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("agent", "courses")
}

// mergedCatalog - programação atual (prioritária) mais catálogo administrativo ativo
type mergedCatalog struct {
	current []catalog.Course
	generic map[string][]string // área → nomes de cursos do catálogo geral
	names   map[string]bool     // nomes válidos em minúsculas
}

func (i impl) loadCatalog() mergedCatalog {
	merged := mergedCatalog{
		current: catalog.CurrentProgram(),
		generic: map[string][]string{},
		names:   map[string]bool{},
	}
	for _, course := range merged.current {
		merged.names[strings.ToLower(course.Name)] = true
	}
	if i.courseStore == nil {
		return merged
	}
	records, err := i.courseStore.ListActive()
	if err != nil {
		i.getLogger().WithError(err).Warn("falha ao carregar o catálogo administrativo, usando apenas a programação atual")
		return merged
	}
	for _, rec := range records {
		track := catalog.Normalize(rec.Area)
		merged.generic[track] = append(merged.generic[track], describeCourse(rec.Nome, rec.Nivel, rec.Duracao))
		merged.names[strings.ToLower(rec.Nome)] = true
	}
	return merged
}

func describeCourse(nome, nivel, duracao string) string {
	desc := nome
	if nivel != "" && nivel != "basico" {
		desc += fmt.Sprintf(" (%s)", nivel)
	}
	if duracao != "" {
		desc += " - " + duracao
	}
	return desc
}

func (m mergedCatalog) isCurrentProgram(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, course := range m.current {
		if strings.ToLower(course.Name) == needle {
			return true
		}
	}
	return false
}

// coursesContext monta o bloco de cursos do system prompt, agrupado por eixo
func (m mergedCatalog) coursesContext() string {
	var b strings.Builder
	b.WriteString("CURSOS DA PROGRAMAÇÃO ATUAL (PRIORIDADE MÁXIMA):\n\n")
	byTrack := map[string][]catalog.Course{}
	for _, course := range m.current {
		byTrack[course.Track] = append(byTrack[course.Track], course)
	}
	for track, courses := range byTrack {
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(track))
		for _, course := range courses {
			fmt.Fprintf(&b, "- %s (%dh)\n", course.Name, course.Hours)
		}
		b.WriteString("\n")
	}
	if len(m.generic) > 0 {
		b.WriteString("CATÁLOGO GERAL (usar quando o eixo não tiver cursos na programação atual):\n\n")
		for track, courses := range m.generic {
			fmt.Fprintf(&b, "%s:\n", strings.ToUpper(track))
			for _, desc := range courses {
				fmt.Fprintf(&b, "- %s\n", desc)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (i impl) RecommendCourses(ctx context.Context, vocationalProfile interface{}, req vocationalapimodels.TestRequest) (vocationalapimodels.RecommendationSet, error) {
	merged := i.loadCatalog()
	profileJSON, _ := json.Marshal(vocationalProfile)
	prompt := fmt.Sprintf(recommendationPromptPattern,
		string(profileJSON),
		req.Nome,
		req.Idade,
		req.Escolaridade,
		req.AreaInteresse,
		req.Disponibilidade,
		strings.Join(req.Habilidades, ", "),
		req.Personalidade,
		req.Objetivos,
	)
	return i.recommend(ctx, merged, prompt, req, openaiclient.Options{Temperature: 0.4, MaxTokens: 2500})
}

func (i impl) RecommendForTrack(ctx context.Context, area string, req vocationalapimodels.TestRequest, maxCourses int) (vocationalapimodels.RecommendationSet, error) {
	if maxCourses <= 0 {
		maxCourses = defaultMaxCourses
	}
	merged := i.loadCatalog()
	prompt := fmt.Sprintf(trackPromptPattern, maxCourses, area, buildUserSummary(req), area)
	set, err := i.recommend(ctx, merged, prompt, req, openaiclient.Options{Temperature: 0.3, MaxTokens: 1000})
	if err != nil {
		return set, err
	}
	// Limita o total de cursos ao máximo
	for t := range set.TrilhasRecomendadas {
		if len(set.TrilhasRecomendadas[t].Cursos) > maxCourses {
			set.TrilhasRecomendadas[t].Cursos = set.TrilhasRecomendadas[t].Cursos[:maxCourses]
		}
	}
	return set, nil
}

func (i impl) RecommendByAvailability(ctx context.Context, availability string, req vocationalapimodels.TestRequest) (vocationalapimodels.RecommendationSet, error) {
	merged := i.loadCatalog()
	prompt := fmt.Sprintf(availabilityPromptPattern, availability, buildUserSummary(req))
	return i.recommend(ctx, merged, prompt, req, openaiclient.Options{Temperature: 0.4, MaxTokens: 1200})
}

func (i impl) recommend(ctx context.Context, merged mergedCatalog, prompt string, req vocationalapimodels.TestRequest, opts openaiclient.Options) (set vocationalapimodels.RecommendationSet, err error) {
	systemPrompt := fmt.Sprintf(systemPromptPattern, merged.coursesContext())

	response, err := i.client.Complete(ctx, systemPrompt, prompt, opts)
	if err != nil {
		return set, errors.Wrap(err, "falha ao gerar recomendações de cursos")
	}

	if err = aiparse.UnmarshalLenient(response, &set); err != nil {
		i.getLogger().
			WithField("answer", response).
			WithError(err).
			Error("resposta inválida do agente de cursos")
		return set, err
	}

	// Nunca zero recomendações: preenche a partir do catálogo quando o modelo falha
	if len(set.CourseNames()) == 0 {
		i.getLogger().Warn("o modelo não recomendou cursos, usando seleção do catálogo")
		set = fallbackSet(req)
	}

	if err = i.validate(merged, &set); err != nil {
		return vocationalapimodels.RecommendationSet{}, err
	}
	return set, nil
}

// validate confere cada nome contra o catálogo combinado e corrige a marcação
// de programação atual
func (i impl) validate(merged mergedCatalog, set *vocationalapimodels.RecommendationSet) error {
	invalid := make([]string, 0)
	for t := range set.TrilhasRecomendadas {
		for c := range set.TrilhasRecomendadas[t].Cursos {
			curso := &set.TrilhasRecomendadas[t].Cursos[c]
			if !merged.names[strings.ToLower(strings.TrimSpace(curso.Nome))] {
				invalid = append(invalid, curso.Nome)
				continue
			}
			curso.ProgramacaoAtual = merged.isCurrentProgram(curso.Nome)
		}
	}
	if len(invalid) > 0 {
		i.getLogger().
			WithField("invalid_courses", invalid).
			Error("a recomendação mencionou cursos fora do cadastro oficial")
		return models.NewCatalogViolation(invalid)
	}
	return nil
}

// fallbackSet - seleção determinística com no mínimo 2-3 cursos
func fallbackSet(req vocationalapimodels.TestRequest) vocationalapimodels.RecommendationSet {
	track := catalog.Normalize(req.AreaInteresse)
	courses := catalog.CoursesByTrack(track)
	if len(courses) < 2 {
		for _, course := range catalog.CurrentProgram() {
			if course.Track == track {
				continue
			}
			courses = append(courses, course)
			if len(courses) >= 3 {
				break
			}
		}
	}
	if len(courses) > defaultMaxCourses {
		courses = courses[:defaultMaxCourses]
	}
	recomendados := make([]vocationalapimodels.RecommendedCourse, 0, len(courses))
	for _, course := range courses {
		recomendados = append(recomendados, vocationalapimodels.RecommendedCourse{
			Nome:             course.Name,
			Tipo:             "qualificacao",
			Duracao:          fmt.Sprintf("%dh", course.Hours),
			Nivel:            "basico",
			Justificativa:    fmt.Sprintf("Curso do eixo %s alinhado ao seu interesse em %s.", course.Track, req.AreaInteresse),
			ProgramacaoAtual: true,
		})
	}
	return vocationalapimodels.RecommendationSet{
		TrilhasRecomendadas: []vocationalapimodels.RecommendationTrack{
			{
				Area:            track,
				Compatibilidade: 80,
				Cursos:          recomendados,
			},
		},
		Observacoes: "Seleção feita diretamente a partir da programação atual.",
	}
}

func buildUserSummary(req vocationalapimodels.TestRequest) string {
	return fmt.Sprintf(`%s, %d anos
Escolaridade: %s
Interesse: %s
Habilidades: %s
Personalidade: %s
Disponibilidade: %s
Objetivos: %s`,
		req.Nome,
		req.Idade,
		req.Escolaridade,
		req.AreaInteresse,
		strings.Join(req.Habilidades, ", "),
		req.Personalidade,
		req.Disponibilidade,
		req.Objetivos,
	)
}
