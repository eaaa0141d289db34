package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/crm-api/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// códigos de erro do PostgreSQL tratados como erro de validação
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scope restringe a consulta à organização e ignora registros removidos
func scope(alias, organizationID string) squirrel.Eq {
	return squirrel.Eq{
		alias + ".organization_id": organizationID,
		alias + ".deleted_at":      nil,
	}
}

func mapPQError(err error, entity domain.EntityType) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqForeignKeyViolation:
		return domain.NewRecordError(domain.ErrInvalidReference, entity, pqErr.Constraint)
	case pqUniqueViolation:
		return domain.NewRecordError(domain.ErrDuplicate, entity, pqErr.Constraint)
	case pqCheckViolation:
		return domain.NewRecordError(domain.ErrInvalidInput, entity, pqErr.Constraint)
	}
	return err
}

func tagsValue(tags []string) interface{} {
	if tags == nil {
		tags = []string{}
	}
	return pq.Array(tags)
}

func likePattern(search string) string {
	search = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(search))
	return "%" + search + "%"
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
