package adminpanelstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	adminpanelapimodels "vocacional-ai-backend/models/api/admin-panel"
)

// CourseProvider - catálogo administrativo de cursos persistido em data/courses.json
type CourseProvider interface {
	List() ([]adminpanelapimodels.CourseRecord, error)
	ListActive() ([]adminpanelapimodels.CourseRecord, error)
	GetByID(id string) (*adminpanelapimodels.CourseRecord, error)
	Create(data adminpanelapimodels.CourseData) (adminpanelapimodels.CourseRecord, error)
	Update(id string, data adminpanelapimodels.CourseData) (*adminpanelapimodels.CourseRecord, error)
	Delete(id string) (*adminpanelapimodels.CourseRecord, error)
	Import(courses []adminpanelapimodels.CourseData, overwrite bool) ([]adminpanelapimodels.CourseRecord, int, error)
}

var CourseInstance CourseProvider

func NewCourseHandler(filePath string) {
	CourseInstance = NewCourseInstance(filePath)
}

func NewCourseInstance(filePath string) CourseProvider {
	return &courseImpl{filePath: filePath}
}

type courseImpl struct {
	filePath string
	mu       sync.Mutex
}

// load lê o arquivo; arquivo inexistente ou vazio equivale a lista vazia
func (i *courseImpl) load() ([]adminpanelapimodels.CourseRecord, error) {
	data, err := os.ReadFile(i.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []adminpanelapimodels.CourseRecord{}, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o arquivo de cursos")
	}
	if len(data) == 0 {
		return []adminpanelapimodels.CourseRecord{}, nil
	}
	var records []adminpanelapimodels.CourseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "arquivo de cursos corrompido")
	}
	return records, nil
}

func (i *courseImpl) save(records []adminpanelapimodels.CourseRecord) error {
	if err := os.MkdirAll(filepath.Dir(i.filePath), 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar o diretório de dados")
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar cursos")
	}
	if err := os.WriteFile(i.filePath, data, 0o644); err != nil {
		return errors.Wrap(err, "erro ao gravar o arquivo de cursos")
	}
	return nil
}

func (i *courseImpl) List() ([]adminpanelapimodels.CourseRecord, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.load()
}

func (i *courseImpl) ListActive() ([]adminpanelapimodels.CourseRecord, error) {
	records, err := i.List()
	if err != nil {
		return nil, err
	}
	active := make([]adminpanelapimodels.CourseRecord, 0, len(records))
	for _, rec := range records {
		if rec.Ativo {
			active = append(active, rec)
		}
	}
	return active, nil
}

func (i *courseImpl) GetByID(id string) (*adminpanelapimodels.CourseRecord, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	records, err := i.load()
	if err != nil {
		return nil, err
	}
	for idx := range records {
		if records[idx].ID == id {
			return &records[idx], nil
		}
	}
	return nil, nil
}

func newRecord(data adminpanelapimodels.CourseData) adminpanelapimodels.CourseRecord {
	now := time.Now()
	return adminpanelapimodels.CourseRecord{
		ID:         uuid.NewString(),
		Nome:       data.Nome,
		Area:       data.Area,
		Descricao:  data.Descricao,
		Nivel:      data.Nivel,
		Modalidade: data.Modalidade,
		Duracao:    data.Duracao,
		Ativo:      data.IsActive(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (i *courseImpl) Create(data adminpanelapimodels.CourseData) (adminpanelapimodels.CourseRecord, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	records, err := i.load()
	if err != nil {
		return adminpanelapimodels.CourseRecord{}, err
	}
	rec := newRecord(data)
	records = append(records, rec)
	if err := i.save(records); err != nil {
		return adminpanelapimodels.CourseRecord{}, err
	}
	return rec, nil
}

func (i *courseImpl) Update(id string, data adminpanelapimodels.CourseData) (*adminpanelapimodels.CourseRecord, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	records, err := i.load()
	if err != nil {
		return nil, err
	}
	for idx := range records {
		if records[idx].ID != id {
			continue
		}
		records[idx].Nome = data.Nome
		records[idx].Area = data.Area
		records[idx].Descricao = data.Descricao
		records[idx].Nivel = data.Nivel
		records[idx].Modalidade = data.Modalidade
		records[idx].Duracao = data.Duracao
		records[idx].Ativo = data.IsActive()
		records[idx].UpdatedAt = time.Now()
		if err := i.save(records); err != nil {
			return nil, err
		}
		return &records[idx], nil
	}
	return nil, nil
}

func (i *courseImpl) Delete(id string) (*adminpanelapimodels.CourseRecord, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	records, err := i.load()
	if err != nil {
		return nil, err
	}
	for idx := range records {
		if records[idx].ID != id {
			continue
		}
		deleted := records[idx]
		records = append(records[:idx], records[idx+1:]...)
		if err := i.save(records); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}

func (i *courseImpl) Import(courses []adminpanelapimodels.CourseData, overwrite bool) ([]adminpanelapimodels.CourseRecord, int, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	existing := []adminpanelapimodels.CourseRecord{}
	if !overwrite {
		var err error
		existing, err = i.load()
		if err != nil {
			return nil, 0, err
		}
	}
	imported := make([]adminpanelapimodels.CourseRecord, 0, len(courses))
	for _, data := range courses {
		imported = append(imported, newRecord(data))
	}
	all := append(existing, imported...)
	if err := i.save(all); err != nil {
		return nil, 0, err
	}
	return imported, len(all), nil
}
