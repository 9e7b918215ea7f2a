package narrativeagent

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

type fakeClient struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeClient) Complete(ctx context.Context, system, user string, opts openaiclient.Options) (string, error) {
	f.lastPrompt = user
	return f.response, f.err
}

func (f *fakeClient) Stream(ctx context.Context, system, user string, opts openaiclient.Options) (<-chan string, error) {
	return nil, errors.New("não implementado")
}

func TestNarrativeAgent(t *testing.T) {
	req := vocationalapimodels.TestRequest{
		Nome:            "Ana",
		Idade:           22,
		Escolaridade:    "medio",
		AreaInteresse:   "tecnologia",
		Habilidades:     []string{"excel", "comunicação"},
		Personalidade:   "colaborativo",
		Disponibilidade: "noturno",
	}

	t.Run(`narrativa devolvida sem espaços nas bordas`, func(t *testing.T) {
		client := &fakeClient{response: "\n🎯 Seus Resultados Estão Prontos!\n\n"}
		narrative, err := NewInstance(client).GeneratePersonalizedNarrative(context.Background(), req, []string{"- Excel Avançado"})
		require.Nil(t, err)
		require.Equal(t, "🎯 Seus Resultados Estão Prontos!", narrative)
	})

	t.Run(`prompt carrega os cursos e os dados legíveis do perfil`, func(t *testing.T) {
		client := &fakeClient{response: "texto"}
		_, err := NewInstance(client).GeneratePersonalizedNarrative(context.Background(), req, []string{"- Excel Avançado", "- Power BI"})
		require.Nil(t, err)
		require.Contains(t, client.lastPrompt, "- Excel Avançado\n- Power BI")
		require.Contains(t, client.lastPrompt, "Ensino Médio")
		require.Contains(t, client.lastPrompt, "Tecnologia da Informação")
	})

	t.Run(`falha do modelo é propagada`, func(t *testing.T) {
		client := &fakeClient{err: errors.New("serviço indisponível")}
		_, err := NewInstance(client).GeneratePersonalizedNarrative(context.Background(), req, nil)
		require.NotNil(t, err)
	})

	t.Run(`itens usam apenas cursos da programação atual quando existem`, func(t *testing.T) {
		set := vocationalapimodels.RecommendationSet{
			TrilhasRecomendadas: []vocationalapimodels.RecommendationTrack{
				{
					Area: "tecnologia da informação",
					Cursos: []vocationalapimodels.RecommendedCourse{
						{Nome: "Excel Avançado", ProgramacaoAtual: true},
						{Nome: "Curso Antigo", ProgramacaoAtual: false},
					},
				},
			},
		}
		bullets := BuildCourseBullets(set)
		require.Equal(t, []string{"- Excel Avançado"}, bullets)
	})

	t.Run(`sem cursos da programação atual todos os recomendados entram`, func(t *testing.T) {
		set := vocationalapimodels.RecommendationSet{
			TrilhasRecomendadas: []vocationalapimodels.RecommendationTrack{
				{
					Area: "gastronomia",
					Cursos: []vocationalapimodels.RecommendedCourse{
						{Nome: "Cozinha Básica"},
						{Nome: "Confeitaria"},
					},
				},
			},
		}
		bullets := BuildCourseBullets(set)
		require.Len(t, bullets, 2)
		require.Equal(t, true, strings.HasPrefix(bullets[0], "- "))
	})

	t.Run(`conjunto vazio produz lista vazia de itens`, func(t *testing.T) {
		require.Empty(t, BuildCourseBullets(vocationalapimodels.RecommendationSet{}))
	})
}
