package adminpanelapimodels

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var courseLevels = []string{"basico", "intermediario", "avancado"}
var courseModalities = []string{"presencial", "online", "hibrido"}

// CourseRecord - curso mantido pelo painel administrativo
type CourseRecord struct {
	ID         string    `json:"id"`
	Nome       string    `json:"nome"`
	Area       string    `json:"area"`
	Descricao  string    `json:"descricao"`
	Nivel      string    `json:"nivel"`      // basico/intermediario/avancado
	Modalidade string    `json:"modalidade"` // presencial/online/hibrido
	Duracao    string    `json:"duracao"`
	Ativo      bool      `json:"ativo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CourseData - dados de criação/atualização de curso
type CourseData struct {
	Nome       string `json:"nome"`
	Area       string `json:"area"`
	Descricao  string `json:"descricao"`
	Nivel      string `json:"nivel"`
	Modalidade string `json:"modalidade"`
	Duracao    string `json:"duracao"`
	Ativo      *bool  `json:"ativo"`
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func (r *CourseData) Validate() error {
	if strings.TrimSpace(r.Nome) == "" {
		return errors.New("o nome do curso é obrigatório")
	}
	if strings.TrimSpace(r.Area) == "" {
		return errors.New("a área do curso é obrigatória")
	}
	if r.Nivel == "" {
		r.Nivel = "basico"
	}
	if !contains(courseLevels, r.Nivel) {
		return errors.New("nível inválido, use: basico, intermediario ou avancado")
	}
	if r.Modalidade == "" {
		r.Modalidade = "presencial"
	}
	if !contains(courseModalities, r.Modalidade) {
		return errors.New("modalidade inválida, use: presencial, online ou hibrido")
	}
	return nil
}

// IsActive - valor efetivo do campo ativo (padrão: true)
func (r CourseData) IsActive() bool {
	if r.Ativo == nil {
		return true
	}
	return *r.Ativo
}

// ImportRequest - importação em lote de cursos
type ImportRequest struct {
	Courses   []CourseData `json:"courses"`
	Overwrite bool         `json:"overwrite"`
}

func (r *ImportRequest) Validate() error {
	if len(r.Courses) == 0 {
		return errors.New("a lista de cursos para importação está vazia")
	}
	for i := range r.Courses {
		if err := r.Courses[i].Validate(); err != nil {
			return errors.Wrapf(err, "curso %d inválido", i+1)
		}
	}
	return nil
}

// ImportResult - resumo da importação
type ImportResult struct {
	Imported int            `json:"imported"`
	Total    int            `json:"total"`
	Courses  []CourseRecord `json:"courses"`
}

// CourseStats - estatísticas do catálogo administrativo
type CourseStats struct {
	Total         int            `json:"total"`
	Ativos        int            `json:"ativos"`
	Inativos      int            `json:"inativos"`
	PorArea       map[string]int `json:"por_area"`
	PorNivel      map[string]int `json:"por_nivel"`
	PorModalidade map[string]int `json:"por_modalidade"`
}

// WhatsAppConfig - configuração do contato WhatsApp institucional
type WhatsAppConfig struct {
	Number      string    `json:"number"`
	Enabled     bool      `json:"enabled"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// SenacConfig - dados institucionais exibidos nos resultados
type SenacConfig struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Config - documento de configuração persistido
type Config struct {
	WhatsApp WhatsAppConfig `json:"whatsapp"`
	Senac    SenacConfig    `json:"senac"`
}

// DefaultConfig - configuração criada quando o arquivo ainda não existe
func DefaultConfig() Config {
	return Config{
		WhatsApp: WhatsAppConfig{
			Number:      "(98) 98765-4321",
			Enabled:     true,
			LastUpdated: time.Now(),
		},
		Senac: SenacConfig{
			Name:    "Senac Maranhão",
			Phone:   "(98) 3216-4000",
			Website: "www.ma.senac.br",
			Email:   "atendimento@ma.senac.br",
			Address: "Rua do Egito, 251 - Centro, São Luís - MA",
		},
	}
}

var phoneRegex = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)

// WhatsAppConfigRequest - atualização do contato WhatsApp
type WhatsAppConfigRequest struct {
	Number  string `json:"number"`
	Enabled *bool  `json:"enabled"`
}

func (r WhatsAppConfigRequest) Validate() error {
	if !phoneRegex.MatchString(r.Number) {
		return errors.New("formato de número inválido. Use o formato: (XX) XXXXX-XXXX ou (XX) XXXX-XXXX")
	}
	return nil
}

// IsEnabled - valor efetivo do campo enabled (padrão: true)
func (r WhatsAppConfigRequest) IsEnabled() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}
