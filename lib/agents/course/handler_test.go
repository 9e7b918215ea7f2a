package courseagent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
	"vocacional-ai-backend/models"
	adminpanelapimodels "vocacional-ai-backend/models/api/admin-panel"
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

type fakeCourseStore struct {
	records []adminpanelapimodels.CourseRecord
}

func (f *fakeCourseStore) List() ([]adminpanelapimodels.CourseRecord, error)       { return f.records, nil }
func (f *fakeCourseStore) ListActive() ([]adminpanelapimodels.CourseRecord, error) { return f.records, nil }
func (f *fakeCourseStore) GetByID(id string) (*adminpanelapimodels.CourseRecord, error) {
	return nil, nil
}
func (f *fakeCourseStore) Create(data adminpanelapimodels.CourseData) (adminpanelapimodels.CourseRecord, error) {
	return adminpanelapimodels.CourseRecord{}, nil
}
func (f *fakeCourseStore) Update(id string, data adminpanelapimodels.CourseData) (*adminpanelapimodels.CourseRecord, error) {
	return nil, nil
}
func (f *fakeCourseStore) Delete(id string) (*adminpanelapimodels.CourseRecord, error) {
	return nil, nil
}
func (f *fakeCourseStore) Import(courses []adminpanelapimodels.CourseData, overwrite bool) ([]adminpanelapimodels.CourseRecord, int, error) {
	return nil, 0, nil
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

func TestCourseAgent(t *testing.T) {
	t.Run(`recomendação válida tem a marcação de programação atual corrigida`, func(t *testing.T) {
		client := &fakeClient{answer: `{"trilhas_recomendadas":[{"area":"tecnologia da informação","compatibilidade":90,"cursos":[{"nome":"Excel Avançado","tipo":"qualificacao","programacao_atual":false}]}]}`}
		provider := NewInstance(client, nil)
		set, err := provider.RecommendCourses(context.Background(), nil, testProfile())
		require.Nil(t, err)
		require.Len(t, set.TrilhasRecomendadas, 1)
		require.Equal(t, true, set.TrilhasRecomendadas[0].Cursos[0].ProgramacaoAtual)
	})

	t.Run(`curso inventado gera violação de catálogo`, func(t *testing.T) {
		client := &fakeClient{answer: `{"trilhas_recomendadas":[{"area":"tecnologia da informação","cursos":[{"nome":"Curso de Redes de Computadores"}]}]}`}
		provider := NewInstance(client, nil)
		_, err := provider.RecommendCourses(context.Background(), nil, testProfile())
		require.NotNil(t, err)
		require.Equal(t, true, models.IsCatalogViolation(err))
	})

	t.Run(`resposta sem cursos cai na seleção do catálogo`, func(t *testing.T) {
		client := &fakeClient{answer: `{"trilhas_recomendadas":[]}`}
		provider := NewInstance(client, nil)
		set, err := provider.RecommendCourses(context.Background(), nil, testProfile())
		require.Nil(t, err)
		names := set.CourseNames()
		require.NotEmpty(t, names)
		require.LessOrEqual(t, len(names), 5)
		require.Contains(t, names, "Formação - Programação em Python")
	})

	t.Run(`cursos do catálogo administrativo são aceitos sem marcação de programação atual`, func(t *testing.T) {
		store := &fakeCourseStore{records: []adminpanelapimodels.CourseRecord{
			{Nome: "Inglês Instrumental", Area: "educacao", Nivel: "basico", Ativo: true},
		}}
		client := &fakeClient{answer: `{"trilhas_recomendadas":[{"area":"educacao","cursos":[{"nome":"Inglês Instrumental","programacao_atual":true}]}]}`}
		provider := NewInstance(client, store)
		set, err := provider.RecommendCourses(context.Background(), nil, testProfile())
		require.Nil(t, err)
		require.Equal(t, false, set.TrilhasRecomendadas[0].Cursos[0].ProgramacaoAtual)
	})

	t.Run(`RecommendForTrack limita a quantidade de cursos`, func(t *testing.T) {
		client := &fakeClient{answer: `{"trilhas_recomendadas":[{"area":"beleza","cursos":[{"nome":"Barbeiro"},{"nome":"Básico de Depilação"},{"nome":"Penteados Estilizados"}]}]}`}
		provider := NewInstance(client, nil)
		set, err := provider.RecommendForTrack(context.Background(), "beleza", testProfile(), 2)
		require.Nil(t, err)
		require.Len(t, set.TrilhasRecomendadas[0].Cursos, 2)
	})

	t.Run(`falha do modelo é propagada`, func(t *testing.T) {
		client := &fakeClient{err: models.ErrCompletionFailed}
		provider := NewInstance(client, nil)
		_, err := provider.RecommendCourses(context.Background(), nil, testProfile())
		require.NotNil(t, err)
	})
}
