package vocationalapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	Escolaridades    = []string{"fundamental", "medio", "superior", "pos_graduacao"}
	AreasInteresse   = []string{"tecnologia", "saude", "educacao", "negocios", "arte_design", "gastronomia", "beleza_estetica", "turismo_hospitalidade", "industria", "servicos"}
	Personalidades   = []string{"analitico", "criativo", "comunicativo", "lider", "detalhista", "inovador", "colaborativo", "empreendedor"}
	Disponibilidades = []string{"integral", "matutino", "vespertino", "noturno", "fins_de_semana"}
)

// TestRequest - perfil informado pelo usuário no teste vocacional
type TestRequest struct {
	Nome            string                 `json:"nome"`               // Nome completo
	Idade           int                    `json:"idade"`              // Idade em anos
	Escolaridade    string                 `json:"escolaridade"`       // fundamental/medio/superior/pos_graduacao
	AreaInteresse   string                 `json:"area_interesse"`     // Área de interesse principal
	Habilidades     []string               `json:"habilidades"`        // Lista de habilidades
	Personalidade   string                 `json:"personalidade"`      // Tipo de personalidade profissional
	Experiencia     string                 `json:"experiencia"`        // Experiência prévia
	Objetivos       string                 `json:"objetivos"`          // Objetivos profissionais
	Disponibilidade string                 `json:"disponibilidade"`    // Disponibilidade para estudos
	RespostasTeste  map[string]interface{} `json:"respostas_teste"`    // Respostas brutas do teste
	WhatsApp        string                 `json:"whatsapp,omitempty"` // Contato WhatsApp (opcional)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func (r TestRequest) Validate() error {
	if len(strings.TrimSpace(r.Nome)) < 2 {
		return errors.New("o campo nome deve ter pelo menos 2 caracteres")
	}
	if r.Idade <= 0 {
		return errors.New("o campo idade deve ser um número positivo")
	}
	if !contains(Escolaridades, r.Escolaridade) {
		return errors.New("escolaridade inválida")
	}
	if !contains(AreasInteresse, r.AreaInteresse) {
		return errors.New("área de interesse inválida")
	}
	if len(r.Habilidades) == 0 {
		return errors.New("informe pelo menos uma habilidade")
	}
	if !contains(Personalidades, r.Personalidade) {
		return errors.New("personalidade inválida")
	}
	if !contains(Disponibilidades, r.Disponibilidade) {
		return errors.New("disponibilidade inválida")
	}
	return nil
}

// QuestionOption - opção de resposta de uma pergunta vocacional
type QuestionOption struct {
	Valor string `json:"valor"`
	Texto string `json:"texto"`
}

// Question - pergunta vocacional de múltipla escolha gerada pelo agente
type Question struct {
	Pergunta  string           `json:"pergunta"`
	Opcoes    []QuestionOption `json:"opcoes"`
	Categoria string           `json:"categoria"`
	Peso      int              `json:"peso"`
}

// AreaAffinity - afinidade identificada com uma área profissional
type AreaAffinity struct {
	Area            string `json:"area"`
	Compatibilidade int    `json:"compatibilidade"` // 0-100
	Justificativa   string `json:"justificativa"`
}

// ProfileAnalysis - análise vocacional estruturada
type ProfileAnalysis struct {
	PersonalidadeProfissional string         `json:"personalidade_profissional"`
	AreasAfinidade            []AreaAffinity `json:"areas_afinidade"`
	RecomendacoesCarreira     []string       `json:"recomendacoes_carreira"`
	PontosFortes              []string       `json:"pontos_fortes"`
	AreasDesenvolvimento      []string       `json:"areas_desenvolvimento"`
	Confianca                 int            `json:"confianca"` // 0-100
}

// RecommendedCourse - curso recomendado dentro de uma trilha
type RecommendedCourse struct {
	Nome             string   `json:"nome"`
	Tipo             string   `json:"tipo"`    // tecnico/livre/qualificacao
	Duracao          string   `json:"duracao"` // tempo estimado
	Nivel            string   `json:"nivel"`   // basico/intermediario/avancado
	Justificativa    string   `json:"justificativa"`
	Beneficios       []string `json:"beneficios"`
	Oportunidades    []string `json:"oportunidades"`
	ProgramacaoAtual bool     `json:"programacao_atual"` // curso da programação vigente
}

// RecommendationTrack - trilha de cursos de uma área
type RecommendationTrack struct {
	Area            string              `json:"area"`
	Compatibilidade int                 `json:"compatibilidade"` // 0-100
	Cursos          []RecommendedCourse `json:"cursos"`
}

// RecommendationSet - conjunto de trilhas recomendadas pelo agente de cursos
type RecommendationSet struct {
	TrilhasRecomendadas []RecommendationTrack `json:"trilhas_recomendadas"`
	Observacoes         string                `json:"observacoes,omitempty"`
}

// CourseNames - todos os nomes de cursos presentes no conjunto
func (s RecommendationSet) CourseNames() []string {
	names := make([]string, 0)
	for _, trilha := range s.TrilhasRecomendadas {
		for _, curso := range trilha.Cursos {
			names = append(names, curso.Nome)
		}
	}
	return names
}

// WhatsAppMessage - mensagem formatada para envio via WhatsApp
type WhatsAppMessage struct {
	Mensagem       string   `json:"mensagem"`
	Caracteres     int      `json:"caracteres"`
	Preview        string   `json:"preview"`
	CallToAction   string   `json:"call_to_action,omitempty"`
	EmojisUsados   []string `json:"emojis_usados,omitempty"`
	QuebrasDeLinha int      `json:"quebras_linha,omitempty"`
}

// MessageValidation - resultado da verificação de limites do WhatsApp
type MessageValidation struct {
	Valid       bool     `json:"valid"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// WorkflowData - dados acumulados durante a execução do workflow
type WorkflowData struct {
	Analysis        string            `json:"analysis,omitempty"`
	Courses         RecommendationSet `json:"courses,omitempty"`
	Narrative       string            `json:"narrative,omitempty"`
	WhatsAppMessage WhatsAppMessage   `json:"whatsapp_message,omitempty"`
}

// Workflow - registro de uma execução completa do teste vocacional
type Workflow struct {
	UserID      string       `json:"user_id"`
	SessionID   string       `json:"session_id"`
	CurrentStep string       `json:"current_step"` // questions/analysis/courses/narrative/whatsapp/completed
	Data        WorkflowData `json:"data"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Etapas do workflow
const (
	StepQuestions = "questions"
	StepAnalysis  = "analysis"
	StepCourses   = "courses"
	StepNarrative = "narrative"
	StepWhatsApp  = "whatsapp"
	StepCompleted = "completed"
)

// AgentMetadata - metadados de execução de um agente
type AgentMetadata struct {
	Timestamp        time.Time `json:"timestamp"`
	Agent            string    `json:"agent"`
	ProcessingTimeMs int64     `json:"processingTime"`
}

// AgentResponse - envelope uniforme das rotas de agentes
type AgentResponse struct {
	Success  bool          `json:"success"`
	Data     interface{}   `json:"data,omitempty"`
	Error    string        `json:"error,omitempty"`
	Metadata AgentMetadata `json:"metadata"`
}
