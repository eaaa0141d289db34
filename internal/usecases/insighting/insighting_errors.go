package insighting

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

var (
	ErrEmptyQuery        = errors.New("termo de busca não informado")
	ErrUnsupportedExport = errors.New("entidade não suportada para exportação")
	ErrDatabaseOperation = errors.New("erro ao consultar dados de relatório")
)

// ReportError carrega o código da API para os erros de relatório
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func databaseError(err error) *ReportError {
	return NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
}
