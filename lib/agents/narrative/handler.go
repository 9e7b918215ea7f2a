package narrativeagent

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

type Provider interface {
	// GeneratePersonalizedNarrative escreve o texto final da análise.
	// Os itens de cursos são montados pelo chamador, nunca pelo modelo.
	GeneratePersonalizedNarrative(ctx context.Context, req vocationalapimodels.TestRequest, courseBullets []string) (string, error)
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
	return log.WithField("agent", "narrative")
}

// BuildCourseBullets monta os itens de cursos apenas com os cursos da
// programação atual; se nenhum qualificar, usa todos os recomendados
func BuildCourseBullets(set vocationalapimodels.RecommendationSet) []string {
	bullets := make([]string, 0)
	for _, trilha := range set.TrilhasRecomendadas {
		for _, curso := range trilha.Cursos {
			if curso.Nome != "" && curso.ProgramacaoAtual {
				bullets = append(bullets, "- "+curso.Nome)
			}
		}
	}
	if len(bullets) > 0 {
		return bullets
	}
	for _, trilha := range set.TrilhasRecomendadas {
		for _, curso := range trilha.Cursos {
			if curso.Nome != "" {
				bullets = append(bullets, "- "+curso.Nome)
			}
		}
	}
	return bullets
}

func (i impl) GeneratePersonalizedNarrative(ctx context.Context, req vocationalapimodels.TestRequest, courseBullets []string) (string, error) {
	prompt := buildNarrativePrompt(req, courseBullets)
	narrative, err := i.client.Complete(ctx, systemPrompt, prompt, openaiclient.Options{
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", errors.Wrap(err, "falha ao gerar narrativa personalizada")
	}
	i.getLogger().Debug("narrativa gerada")
	return strings.TrimSpace(narrative), nil
}

// Valores exibidos no texto, mais legíveis que os códigos do formulário
func displayEscolaridade(value string) string {
	switch value {
	case "fundamental":
		return "Ensino Fundamental"
	case "medio":
		return "Ensino Médio"
	case "superior":
		return "Ensino Superior"
	case "pos_graduacao":
		return "Pós-graduação"
	}
	return value
}

func displayArea(value string) string {
	if value == "tecnologia" {
		return "Tecnologia da Informação"
	}
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

func buildNarrativePrompt(req vocationalapimodels.TestRequest, courseBullets []string) string {
	return fmt.Sprintf(`Crie uma análise vocacional personalizada para:

DADOS DO USUÁRIO:
- Nome: %s
- Idade: %d anos
- Escolaridade: %s
- Área de Interesse: %s
- Habilidades: %s
- Personalidade: %s
- Experiência: %s
- Objetivos: %s
- Disponibilidade: %s

CURSOS RECOMENDADOS (use EXATAMENTE estes):
%s

INSTRUÇÕES ESPECÍFICAS:
1. Use EXATAMENTE o formato fornecido no prompt do sistema
2. Substitua [Nome] pelo nome real: %s
3. Substitua [escolaridade] por: %s
4. Substitua [área] por: %s
5. Liste os cursos exatamente como fornecidos acima
6. Mantenha tom motivacional e personalizado`,
		req.Nome,
		req.Idade,
		displayEscolaridade(req.Escolaridade),
		displayArea(req.AreaInteresse),
		strings.Join(req.Habilidades, ", "),
		req.Personalidade,
		req.Experiencia,
		req.Objetivos,
		req.Disponibilidade,
		strings.Join(courseBullets, "\n"),
		req.Nome,
		displayEscolaridade(req.Escolaridade),
		displayArea(req.AreaInteresse),
	)
}
