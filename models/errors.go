package models

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrCompletionFailed - serviço de geração indisponível ou resposta vazia
	ErrCompletionFailed = errors.New("falha ao obter resposta do serviço de geração")
	// ErrInvalidAgentResponse - resposta do modelo não corresponde à estrutura esperada
	ErrInvalidAgentResponse = errors.New("resposta inválida do agente")
)

// CatalogViolationError - a geração mencionou cursos inexistentes no catálogo oficial
type CatalogViolationError struct {
	Courses []string
}

func (e *CatalogViolationError) Error() string {
	return fmt.Sprintf("a geração tentou incluir cursos que não existem no cadastro oficial: %s", strings.Join(e.Courses, ", "))
}

func NewCatalogViolation(courses []string) error {
	return &CatalogViolationError{Courses: courses}
}

func IsCatalogViolation(err error) bool {
	var target *CatalogViolationError
	return errors.As(err, &target)
}

// WorkflowStageError - erro de uma etapa do workflow vocacional, com o nome da etapa
type WorkflowStageError struct {
	Stage string
	Err   error
}

func (e *WorkflowStageError) Error() string {
	return fmt.Sprintf("falha na etapa %q do workflow vocacional: %v", e.Stage, e.Err)
}

func (e *WorkflowStageError) Unwrap() error {
	return e.Err
}

func NewWorkflowStageError(stage string, err error) error {
	return &WorkflowStageError{Stage: stage, Err: err}
}
