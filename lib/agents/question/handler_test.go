package questionagent

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
	responses []string
	err       error
	calls     int
}

func (f *fakeClient) Complete(ctx context.Context, system, user string, opts openaiclient.Options) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	response := f.responses[(f.calls-1)%len(f.responses)]
	return response, nil
}

func (f *fakeClient) Stream(ctx context.Context, system, user string, opts openaiclient.Options) (<-chan string, error) {
	return nil, errors.New("não implementado")
}

const validQuestionJSON = `{
	"pergunta": "O que mais desperta seu interesse no dia a dia?",
	"opcoes": [
		{"valor": "a", "texto": "Resolver problemas com tecnologia"},
		{"valor": "b", "texto": "Cuidar da saúde das pessoas"},
		{"valor": "c", "texto": "Preparar e servir alimentos"},
		{"valor": "d", "texto": "Cuidar da aparência e bem-estar"}
	],
	"categoria": "interesses",
	"peso": 3
}`

func profile() vocationalapimodels.TestRequest {
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

func TestQuestionAgent(t *testing.T) {
	t.Run(`pergunta válida é devolvida com categoria e opções`, func(t *testing.T) {
		client := &fakeClient{responses: []string{validQuestionJSON}}
		question, err := NewInstance(client).GenerateQuestion(context.Background(), profile(), 1)
		require.Nil(t, err)
		require.Equal(t, "O que mais desperta seu interesse no dia a dia?", question.Pergunta)
		require.Len(t, question.Opcoes, 4)
		require.Equal(t, "interesses", question.Categoria)
	})

	t.Run(`categoria ausente é preenchida pela rotação`, func(t *testing.T) {
		response := strings.Replace(validQuestionJSON, `"categoria": "interesses",`, "", 1)
		client := &fakeClient{responses: []string{response}}
		question, err := NewInstance(client).GenerateQuestion(context.Background(), profile(), 6)
		require.Nil(t, err)
		require.Equal(t, "motivacao", question.Categoria)
	})

	t.Run(`número de pergunta menor que 1 usa a primeira categoria`, func(t *testing.T) {
		response := strings.Replace(validQuestionJSON, `"categoria": "interesses",`, "", 1)
		client := &fakeClient{responses: []string{response}}
		provider := NewInstance(client)
		for _, n := range []int{0, -1} {
			question, err := provider.GenerateQuestion(context.Background(), profile(), n)
			require.Nil(t, err)
			require.Equal(t, "interesses", question.Categoria)
		}
	})

	t.Run(`pergunta sem texto é rejeitada`, func(t *testing.T) {
		client := &fakeClient{responses: []string{`{"pergunta": "", "opcoes": [], "categoria": "interesses"}`}}
		_, err := NewInstance(client).GenerateQuestion(context.Background(), profile(), 1)
		require.NotNil(t, err)
	})

	t.Run(`pergunta com menos de 4 opções é rejeitada`, func(t *testing.T) {
		response := `{
			"pergunta": "O que mais desperta seu interesse?",
			"opcoes": [
				{"valor": "a", "texto": "Tecnologia"},
				{"valor": "b", "texto": "Saúde"}
			],
			"categoria": "interesses"
		}`
		client := &fakeClient{responses: []string{response}}
		_, err := NewInstance(client).GenerateQuestion(context.Background(), profile(), 1)
		require.NotNil(t, err)
	})

	t.Run(`conjunto gera uma chamada por pergunta`, func(t *testing.T) {
		client := &fakeClient{responses: []string{validQuestionJSON}}
		questions, err := NewInstance(client).GenerateQuestionSet(context.Background(), profile(), 3)
		require.Nil(t, err)
		require.Len(t, questions, 3)
		require.Equal(t, 3, client.calls)
	})

	t.Run(`quantidade não informada assume 10 perguntas`, func(t *testing.T) {
		client := &fakeClient{responses: []string{validQuestionJSON}}
		questions, err := NewInstance(client).GenerateQuestionSet(context.Background(), profile(), 0)
		require.Nil(t, err)
		require.Len(t, questions, 10)
	})

	t.Run(`falha do modelo interrompe o conjunto`, func(t *testing.T) {
		client := &fakeClient{err: errors.New("serviço indisponível")}
		_, err := NewInstance(client).GenerateQuestionSet(context.Background(), profile(), 3)
		require.NotNil(t, err)
	})
}
