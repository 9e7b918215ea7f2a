package adminpanelhandler

import (
	"bytes"

	log "github.com/sirupsen/logrus"

	adminpanelstore "vocacional-ai-backend/lib/admin-panel/store"
	xlsexport "vocacional-ai-backend/lib/export/xls"
	adminpanelapimodels "vocacional-ai-backend/models/api/admin-panel"
)

type Provider interface {
	Stats() (adminpanelapimodels.CourseStats, error)
	ImportCourses(request adminpanelapimodels.ImportRequest) (adminpanelapimodels.ImportResult, error)
	ExportCoursesXlsx() (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    adminpanelstore.CourseInstance,
		exporter: xlsexport.Instance,
	}
}

type impl struct {
	store    adminpanelstore.CourseProvider
	exporter xlsexport.Provider
}

// Stats consolida o cadastro de cursos por área, nível e modalidade
func (i impl) Stats() (adminpanelapimodels.CourseStats, error) {
	records, err := i.store.List()
	if err != nil {
		log.
			WithError(err).
			Error("erro ao listar cursos para estatísticas")
		return adminpanelapimodels.CourseStats{}, err
	}
	stats := adminpanelapimodels.CourseStats{
		Total:         len(records),
		PorArea:       map[string]int{},
		PorNivel:      map[string]int{},
		PorModalidade: map[string]int{},
	}
	for _, rec := range records {
		if rec.Ativo {
			stats.Ativos++
		} else {
			stats.Inativos++
		}
		stats.PorArea[rec.Area]++
		stats.PorNivel[rec.Nivel]++
		stats.PorModalidade[rec.Modalidade]++
	}
	return stats, nil
}

func (i impl) ImportCourses(request adminpanelapimodels.ImportRequest) (adminpanelapimodels.ImportResult, error) {
	imported, total, err := i.store.Import(request.Courses, request.Overwrite)
	if err != nil {
		log.
			WithError(err).
			Error("erro ao importar cursos")
		return adminpanelapimodels.ImportResult{}, err
	}
	log.
		WithField("imported", len(imported)).
		WithField("total", total).
		Info("cursos importados")
	return adminpanelapimodels.ImportResult{
		Imported: len(imported),
		Total:    total,
		Courses:  imported,
	}, nil
}

func (i impl) ExportCoursesXlsx() (*bytes.Buffer, error) {
	records, err := i.store.List()
	if err != nil {
		log.
			WithError(err).
			Error("erro ao listar cursos para exportação")
		return nil, err
	}
	return i.exporter.ExportCourseList(records)
}
