package analysisagent

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"vocacional-ai-backend/lib/catalog"
	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
	"vocacional-ai-backend/models"
	vocationalapimodels "vocacional-ai-backend/models/api/vocational"
)

type fakeClient struct {
	answer string
	err    error
	calls  int
}

func (f *fakeClient) Complete(ctx context.Context, system, user string, opts openaiclient.Options) (string, error) {
	f.calls++
	return f.answer, f.err
}

func (f *fakeClient) Stream(ctx context.Context, system, user string, opts openaiclient.Options) (<-chan string, error) {
	ch := make(chan string)
	close(ch)
	return ch, f.err
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

func TestAnalysisAgent(t *testing.T) {
	t.Run(`modo determinístico monta documento com cursos do eixo`, func(t *testing.T) {
		client := &fakeClient{answer: "Você tem um grande futuro pela frente."}
		provider := NewInstance(client, nil, true)
		md, err := provider.AnalyzeVocationalProfile(context.Background(), testProfile())
		require.Nil(t, err)
		require.Contains(t, md, "# Análise Vocacional de Ana")
		require.Contains(t, md, "Formação - Programação em Python (156h)")
		require.Contains(t, md, "Você tem um grande futuro pela frente.")
	})

	t.Run(`modo determinístico sobrevive à falha do modelo`, func(t *testing.T) {
		client := &fakeClient{err: errors.New("serviço indisponível")}
		provider := NewInstance(client, nil, true)
		md, err := provider.AnalyzeVocationalProfile(context.Background(), testProfile())
		require.Nil(t, err)
		require.Contains(t, md, "Seu perfil demonstra grande potencial na área de tecnologia")
		require.Contains(t, md, "Assistente de Tecnologias da Informação")
	})

	t.Run(`documento determinístico usa os contatos padrão sem configuração`, func(t *testing.T) {
		client := &fakeClient{err: errors.New("serviço indisponível")}
		provider := NewInstance(client, nil, true)
		md, err := provider.AnalyzeVocationalProfile(context.Background(), testProfile())
		require.Nil(t, err)
		require.Contains(t, md, "(98) 3216-4000")
		require.Contains(t, md, "www.ma.senac.br")
	})

	t.Run(`modo IA rejeita documento com curso inventado`, func(t *testing.T) {
		client := &fakeClient{answer: "## Cursos\n- Curso de Redes de Computadores (100h)\n"}
		provider := NewInstance(client, nil, false)
		_, err := provider.AnalyzeVocationalProfile(context.Background(), testProfile())
		require.NotNil(t, err)
		require.Equal(t, true, models.IsCatalogViolation(err))
	})

	t.Run(`modo IA aceita documento com cursos do cadastro`, func(t *testing.T) {
		client := &fakeClient{answer: "```json```# Análise\n- Excel Avançado (60h)\n"}
		provider := NewInstance(client, nil, false)
		md, err := provider.AnalyzeVocationalProfile(context.Background(), testProfile())
		require.Nil(t, err)
		require.Contains(t, md, "Excel Avançado")
	})

	t.Run(`modo IA propaga falha do modelo`, func(t *testing.T) {
		client := &fakeClient{err: errors.New("serviço indisponível")}
		provider := NewInstance(client, nil, false)
		_, err := provider.AnalyzeVocationalProfile(context.Background(), testProfile())
		require.NotNil(t, err)
	})

	t.Run(`FallbackDocument não chama o modelo e passa na validação de catálogo`, func(t *testing.T) {
		md := FallbackDocument(testProfile(), nil)
		require.NotEmpty(t, md)
		require.Empty(t, catalog.ValidateMarkdownCourses(md))
		require.Contains(t, md, "Formação - Programação em Python")
	})

	t.Run(`AnalyzeProfileStructured interpreta o JSON do modelo`, func(t *testing.T) {
		client := &fakeClient{answer: `{"personalidade_profissional":"colaborativa","confianca":85}`}
		provider := NewInstance(client, nil, true)
		analysis, err := provider.AnalyzeProfileStructured(context.Background(), testProfile())
		require.Nil(t, err)
		require.Equal(t, "colaborativa", analysis.PersonalidadeProfissional)
		require.Equal(t, 85, analysis.Confianca)
	})
}
