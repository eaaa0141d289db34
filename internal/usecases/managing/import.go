package managing

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/validation"
)

// MaxImportRows limita as linhas de dados de um arquivo importado
const MaxImportRows = 1000

//go:generate mockgen -source=import.go -destination=mocks/import.go -package=mocks

type Importer interface {
	Import(ctx context.Context, organizationID, userID string, entity domain.EntityType, r io.Reader) (*domain.ImportResult, error)
}

type ImportService struct {
	companies CompanyManager
	contacts  ContactManager
}

func NewImportService(companies CompanyManager, contacts ContactManager) Importer {
	return &ImportService{
		companies: companies,
		contacts:  contacts,
	}
}

// ImportableEntity informa se a entidade aceita importação
func ImportableEntity(entity domain.EntityType) bool {
	return entity == domain.EntityContact || entity == domain.EntityCompany
}

// csvRow dá acesso às colunas da linha pelo nome normalizado do cabeçalho
type csvRow struct {
	index  map[string]int
	values []string
}

func (r csvRow) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

func (r csvRow) optional(column string) *string {
	v := r.get(column)
	if v == "" {
		return nil
	}
	return &v
}

func (r csvRow) tags() []string {
	raw := r.get("tags")
	if raw == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(raw, ";") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// headerKey aceita tanto "first_name" quanto o cabeçalho da exportação ("First Name")
func headerKey(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	return strings.ReplaceAll(h, " ", "_")
}

func (s *ImportService) Import(ctx context.Context, organizationID, userID string, entity domain.EntityType, r io.Reader) (*domain.ImportResult, error) {
	if !ImportableEntity(entity) {
		return nil, NewCRMError(ErrInvalidImport, apiErrors.ErrValidationFailed, "entidade não suportada: "+string(entity))
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, NewCRMError(ErrInvalidImport, apiErrors.ErrInvalidFormat, err.Error())
	}
	if len(records) < 2 {
		return nil, NewCRMError(ErrInvalidImport, apiErrors.ErrMissingRequiredData, "arquivo sem linhas de dados")
	}
	if len(records)-1 > MaxImportRows {
		return nil, NewCRMError(ErrInvalidImport, apiErrors.ErrValidationFailed,
			"máximo de "+strconv.Itoa(MaxImportRows)+" linhas por arquivo")
	}

	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		index[headerKey(h)] = i
	}
	if err := checkImportHeader(entity, index); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{Errors: []domain.ImportRowError{}}
	for i, values := range records[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row := csvRow{index: index, values: values}
		if err := s.importRow(ctx, organizationID, userID, entity, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, domain.ImportRowError{Row: i + 2, Error: importError(err)})
			continue
		}
		result.Imported++
	}

	logrus.WithFields(logrus.Fields{
		"entity":   entity,
		"imported": result.Imported,
		"failed":   result.Failed,
	}).Info("Importação concluída")

	return result, nil
}

func checkImportHeader(entity domain.EntityType, index map[string]int) error {
	required := []string{"name"}
	if entity == domain.EntityContact {
		required = append(required, "first_name")
	}

	for _, column := range required {
		if _, ok := index[column]; ok {
			return nil
		}
	}
	return NewCRMError(ErrInvalidImport, apiErrors.ErrMissingRequiredData,
		"coluna obrigatória ausente: "+strings.Join(required, " ou "))
}

func (s *ImportService) importRow(ctx context.Context, organizationID, userID string, entity domain.EntityType, row csvRow) error {
	switch entity {
	case domain.EntityCompany:
		req, err := companyFromRow(row)
		if err != nil {
			return err
		}
		if err := validation.Struct(req); err != nil {
			return err
		}
		_, err = s.companies.Create(ctx, organizationID, userID, req)
		return err
	default:
		req, err := contactFromRow(row)
		if err != nil {
			return err
		}
		if err := validation.Struct(req); err != nil {
			return err
		}
		_, err = s.contacts.Create(ctx, organizationID, userID, req)
		return err
	}
}

func companyFromRow(row csvRow) (domain.CreateCompanyRequest, error) {
	req := domain.CreateCompanyRequest{
		Name:     row.get("name"),
		Domain:   row.optional("domain"),
		Industry: row.optional("industry"),
		Size:     row.optional("size"),
		Website:  row.optional("website"),
		Phone:    row.optional("phone"),
		Address:  row.optional("address"),
		OwnerID:  row.optional("owner_id"),
		Tags:     row.tags(),
		Notes:    row.optional("notes"),
	}
	if status := row.get("status"); status != "" {
		s := domain.CompanyStatus(strings.ToLower(status))
		req.Status = &s
	}
	if revenue := row.get("annual_revenue"); revenue != "" {
		d, err := decimal.NewFromString(revenue)
		if err != nil {
			return req, validation.Field("annual_revenue", "deve ser um número")
		}
		req.AnnualRevenue = &d
	}
	return req, nil
}

func contactFromRow(row csvRow) (domain.CreateContactRequest, error) {
	first, last := row.get("first_name"), row.get("last_name")
	if first == "" && last == "" {
		// cabeçalho da exportação traz o nome completo
		first, last, _ = strings.Cut(row.get("name"), " ")
	}

	req := domain.CreateContactRequest{
		CompanyID:  row.optional("company_id"),
		FirstName:  first,
		LastName:   strings.TrimSpace(last),
		Email:      row.optional("email"),
		Phone:      row.optional("phone"),
		Title:      row.optional("title"),
		LeadSource: row.optional("lead_source"),
		OwnerID:    row.optional("owner_id"),
		Tags:       row.tags(),
		Notes:      row.optional("notes"),
	}
	if status := row.get("status"); status != "" {
		s := domain.ContactStatus(strings.ToLower(status))
		req.Status = &s
	}
	if score := row.get("lead_score"); score != "" {
		n, err := strconv.Atoi(score)
		if err != nil {
			return req, validation.Field("lead_score", "deve ser um número inteiro")
		}
		req.LeadScore = &n
	}
	return req, nil
}

// importError devolve a mensagem de erro de uma linha sem expor detalhes internos
func importError(err error) string {
	var crmErr *CRMError
	if errors.As(err, &crmErr) && crmErr.Code == apiErrors.ErrDatabaseOperation {
		return ErrDatabaseOperation.Error()
	}
	return err.Error()
}
