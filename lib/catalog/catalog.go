package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Course - curso da programação vigente do Senac Maranhão
type Course struct {
	Name  string // Nome como aparece no campo "Turma"
	Hours int    // Carga horária
	Track string // Eixo do curso
}

// Eixos canônicos
const (
	TrackTecnologia  = "tecnologia da informação"
	TrackGestao      = "gestão"
	TrackSaude       = "saúde"
	TrackBeleza      = "beleza"
	TrackModas       = "modas"
	TrackComunicacao = "comunicação"
	TrackDesign      = "design"
	TrackGastronomia = "gastronomia"
	TrackArtes       = "artes"
)

// Programação vigente (out-nov-dez)
var currentProgram = []Course{
	{Name: "Assistente Administrativo", Hours: 160, Track: TrackGestao},
	{Name: "Assistente Financeiro", Hours: 160, Track: TrackGestao},
	{Name: "Atendimento humanizado em serviços de saúde", Hours: 24, Track: TrackSaude},
	{Name: "Barbeiro", Hours: 172, Track: TrackBeleza},
	{Name: "Básico de Depilação", Hours: 40, Track: TrackBeleza},
	{Name: "Costureiro", Hours: 212, Track: TrackModas},
	{Name: "Cuidador de Idoso", Hours: 160, Track: TrackSaude},
	{Name: "Instrumentação Cirurgica", Hours: 40, Track: TrackSaude},
	{Name: "Introdução à Fotografia Digital", Hours: 30, Track: TrackArtes},
	{Name: "Modelagem e Costura Para Iniciantes", Hours: 60, Track: TrackModas},
	{Name: "Oratória: comunicação e técnicas de apresentação", Hours: 20, Track: TrackComunicacao},
	{Name: "Oratória Avançada", Hours: 30, Track: TrackComunicacao},
	{Name: "Penteados Estilizados", Hours: 20, Track: TrackBeleza},
	{Name: "Tendências em Automaquiagem", Hours: 15, Track: TrackBeleza},
	{Name: "Administrador de Banco de Dados", Hours: 200, Track: TrackTecnologia},
	{Name: "Assistente de Tecnologias da Informação", Hours: 200, Track: TrackTecnologia},
	{Name: "Autocad: Projetos 2d", Hours: 60, Track: TrackDesign},
	{Name: "Autodesk Revit", Hours: 40, Track: TrackDesign},
	{Name: "Business Intelligence com Power bi", Hours: 40, Track: TrackTecnologia},
	{Name: "Criação de Conteúdo para Redes Sociais com Inteligência Artificial: Fotografia, Vídeo e Texto", Hours: 20, Track: TrackComunicacao},
	{Name: "Excel Avançado", Hours: 60, Track: TrackTecnologia},
	{Name: "Ferramentas Adobe para Design", Hours: 144, Track: TrackDesign},
	{Name: "Formação - Programação em Python", Hours: 156, Track: TrackTecnologia},
	{Name: "Introdução à Informática Windows e Office", Hours: 80, Track: TrackTecnologia},
	{Name: "Produtividade com Chatgpt", Hours: 20, Track: TrackTecnologia},
	{Name: "Hambúrguer Artesanal", Hours: 15, Track: TrackGastronomia},
	{Name: "Métodos de preparo de cafés", Hours: 36, Track: TrackGastronomia},
}

// Tabela de sinônimos área → eixo, avaliada por busca exata após normalização
var trackSynonyms = map[string]string{
	"tecnologia":               TrackTecnologia,
	"tecnologia da informação": TrackTecnologia,
	"design":                   TrackDesign,
	"arte_design":              TrackDesign,
	"gestao":                   TrackGestao,
	"gestão":                   TrackGestao,
	"administracao":            TrackGestao,
	"negocios":                 TrackGestao,
	"saude":                    TrackSaude,
	"saúde":                    TrackSaude,
	"beleza":                   TrackBeleza,
	"beleza_estetica":          TrackBeleza,
	"gastronomia":              TrackGastronomia,
	"moda":                     TrackModas,
	"modas":                    TrackModas,
	"comunicacao":              TrackComunicacao,
	"comunicação":              TrackComunicacao,
	"artes":                    TrackArtes,
}

// Descrição das áreas de afinidade usada no documento determinístico
var trackDescriptions = map[string]string{
	TrackTecnologia:  "Tecnologia da Informação: Desenvolvimento de soluções, análise de dados, administração de sistemas.",
	TrackGestao:      "Gestão e Administração: Organização, planejamento, coordenação de equipes e processos.",
	TrackSaude:       "Saúde e Bem-estar: Cuidado com pessoas, procedimentos médicos, atendimento humanizado.",
	TrackBeleza:      "Beleza e Estética: Cuidados pessoais, técnicas de embelezamento, tendências estéticas.",
	TrackComunicacao: "Comunicação: Expressão, apresentação, criação de conteúdo, relacionamento interpessoal.",
	TrackDesign:      "Design e Criação: Projetos visuais, criatividade, ferramentas digitais de design.",
	TrackGastronomia: "Gastronomia: Preparo de alimentos, técnicas culinárias, inovação gastronômica.",
	TrackModas:       "Moda e Vestuário: Criação, modelagem, tendências de moda, técnicas de costura.",
	TrackArtes:       "Artes Visuais: Expressão artística, técnicas fotográficas, criação visual.",
}

// CurrentProgram - cópia da lista de cursos da programação vigente
func CurrentProgram() []Course {
	out := make([]Course, len(currentProgram))
	copy(out, currentProgram)
	return out
}

// Normalize converte uma área informada livremente para o eixo canônico.
// Entradas desconhecidas passam adiante em minúsculas, o que resulta em
// "nenhum curso para este eixo" e não em erro.
func Normalize(area string) string {
	key := strings.ToLower(strings.TrimSpace(area))
	if track, ok := trackSynonyms[key]; ok {
		return track
	}
	return key
}

// Cursos em destaque aparecem primeiro nas seleções determinísticas
var featuredOrder = map[string]int{
	"Formação - Programação em Python":        0,
	"Assistente de Tecnologias da Informação": 1,
}

func featuredRank(name string) int {
	if rank, ok := featuredOrder[name]; ok {
		return rank
	}
	return len(featuredOrder)
}

// CoursesByTrack - cursos da programação vigente com eixo exatamente igual à
// área normalizada, com os cursos em destaque na frente
func CoursesByTrack(area string) []Course {
	normalized := Normalize(area)
	out := make([]Course, 0)
	for _, c := range currentProgram {
		if c.Track == normalized {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return featuredRank(out[i].Name) < featuredRank(out[j].Name)
	})
	return out
}

// IsValidCourseName - verifica se o nome existe na lista oficial (sem diferenciar maiúsculas)
func IsValidCourseName(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, c := range currentProgram {
		if strings.ToLower(c.Name) == needle {
			return true
		}
	}
	return false
}

// TrackDescription - descrição da área de afinidade para o eixo informado
func TrackDescription(area string) string {
	normalized := Normalize(area)
	if desc, ok := trackDescriptions[normalized]; ok {
		return desc
	}
	return fmt.Sprintf("%s: Área de grande potencial para desenvolvimento profissional.", area)
}

// ValidateMarkdownCourses extrai as linhas "- " do markdown e devolve os nomes
// que não existem no cadastro oficial. Linhas começando com "nenhum curso"
// estão isentas.
func ValidateMarkdownCourses(md string) []string {
	invalid := make([]string, 0)
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		name := strings.TrimPrefix(line, "- ")
		if idx := strings.Index(name, "("); idx >= 0 {
			if end := strings.LastIndex(name, ")"); end > idx {
				name = name[:idx] + name[end+1:]
			}
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if strings.HasPrefix(name, "nenhum curso") {
			continue
		}
		if !IsValidCourseName(name) {
			invalid = append(invalid, name)
		}
	}
	return invalid
}
