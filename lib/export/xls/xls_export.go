package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	adminpanelapimodels "vocacional-ai-backend/models/api/admin-panel"
)

type Provider interface {
	ExportCourseList(list []adminpanelapimodels.CourseRecord) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var courseHeaders = []string{"Nome", "Área", "Descrição", "Nível", "Modalidade", "Duração", "Ativo", "Criado em", "Atualizado em"}

func (i impl) ExportCourseList(list []adminpanelapimodels.CourseRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("erro ao fechar o arquivo")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, courseHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o cabeçalho do xlsx")
	}
	if len(list) != 0 {
		row, err = writeCourseData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao montar a tabela de dados do xlsx")
		}
	}
	f.SetSheetName(sheet, "Cursos")
	return f.WriteToBuffer()
}

func writeCourseData(f *excelize.File, sheet string, list []adminpanelapimodels.CourseRecord, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(courseHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Nome"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Nome); err != nil {
			return row, err
		}

		// "Área"
		col++
		if err := writeColumn(f, sheet, col, row, item.Area); err != nil {
			return row, err
		}

		// "Descrição"
		col++
		if err := writeColumn(f, sheet, col, row, item.Descricao); err != nil {
			return row, err
		}

		// "Nível"
		col++
		if err := writeColumn(f, sheet, col, row, item.Nivel); err != nil {
			return row, err
		}

		// "Modalidade"
		col++
		if err := writeColumn(f, sheet, col, row, item.Modalidade); err != nil {
			return row, err
		}

		// "Duração"
		col++
		if err := writeColumn(f, sheet, col, row, item.Duracao); err != nil {
			return row, err
		}

		// "Ativo"
		col++
		ativo := "Não"
		if item.Ativo {
			ativo = "Sim"
		}
		if err := writeColumn(f, sheet, col, row, ativo); err != nil {
			return row, err
		}

		// "Criado em"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02/01/2006")); err != nil {
				return row, err
			}
		}

		// "Atualizado em"
		col++
		if !item.UpdatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.UpdatedAt.Format("02/01/2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
