package insighting

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

// MaxExportRows limita o tamanho de um arquivo exportado
const MaxExportRows = 10000

var exportHeaders = map[domain.EntityType][]string{
	domain.EntityContact:  {"Name", "Email", "Phone", "Company", "Title", "Status", "Lead Score", "Lead Grade", "Tags", "Created At"},
	domain.EntityCompany:  {"Name", "Domain", "Industry", "Size", "Website", "Phone", "Address", "Status", "Created At"},
	domain.EntityDeal:     {"Title", "Value", "Currency", "Stage", "Probability", "Expected Close Date", "Company", "Contact", "Created At"},
	domain.EntityActivity: {"Title", "Type", "Description", "Due Date", "Completed", "Created At"},
}

// ExportableEntity informa se a entidade pode ser exportada
func ExportableEntity(entity domain.EntityType) bool {
	_, ok := exportHeaders[entity]
	return ok
}

func (s *Service) Export(ctx context.Context, organizationID string, entity domain.EntityType, w io.Writer) (int, error) {
	headers, ok := exportHeaders[entity]
	if !ok {
		return 0, NewReportError(ErrUnsupportedExport, apiErrors.ErrValidationFailed, string(entity))
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return 0, err
	}

	rows := 0
	for page := 1; ; page++ {
		params := domain.PageParams{Page: page, Limit: domain.MaxPageLimit, SortBy: "created_at", SortOrder: domain.SortAsc}

		records, total, err := s.exportPage(ctx, organizationID, entity, params)
		if err != nil {
			logrus.WithError(err).WithField("entity", entity).Error("Erro ao exportar registros")
			return rows, databaseError(err)
		}

		for _, record := range records {
			if rows >= MaxExportRows {
				writer.Flush()
				logrus.WithFields(logrus.Fields{"entity": entity, "total": total}).Warn("Exportação truncada")
				return rows, writer.Error()
			}
			if err := writer.Write(record); err != nil {
				return rows, err
			}
			rows++
		}

		if len(records) == 0 || int64(page*params.Limit) >= total {
			break
		}
	}

	writer.Flush()
	return rows, writer.Error()
}

func (s *Service) exportPage(ctx context.Context, organizationID string, entity domain.EntityType, params domain.PageParams) ([][]string, int64, error) {
	switch entity {
	case domain.EntityContact:
		contacts, total, err := s.contactRepo.List(ctx, organizationID, domain.ContactFilter{PageParams: params})
		if err != nil {
			return nil, 0, err
		}
		records := make([][]string, 0, len(contacts))
		for _, c := range contacts {
			records = append(records, []string{
				c.FullName(), str(c.Email), str(c.Phone), str(c.CompanyName), str(c.Title), string(c.Status),
				strconv.Itoa(c.LeadScore), c.LeadGrade, strings.Join(c.Tags, "; "), date(&c.CreatedAt),
			})
		}
		return records, total, nil

	case domain.EntityCompany:
		companies, total, err := s.companyRepo.List(ctx, organizationID, domain.CompanyFilter{PageParams: params})
		if err != nil {
			return nil, 0, err
		}
		records := make([][]string, 0, len(companies))
		for _, c := range companies {
			records = append(records, []string{
				c.Name, str(c.Domain), str(c.Industry), str(c.Size), str(c.Website), str(c.Phone), str(c.Address),
				string(c.Status), date(&c.CreatedAt),
			})
		}
		return records, total, nil

	case domain.EntityDeal:
		deals, total, err := s.dealRepo.List(ctx, organizationID, domain.DealFilter{PageParams: params})
		if err != nil {
			return nil, 0, err
		}
		records := make([][]string, 0, len(deals))
		for _, d := range deals {
			records = append(records, []string{
				d.Title, d.Value.StringFixed(2), d.Currency, string(d.Stage), strconv.Itoa(d.Probability),
				date(d.ExpectedCloseDate), str(d.CompanyName), str(d.ContactName), date(&d.CreatedAt),
			})
		}
		return records, total, nil

	case domain.EntityActivity:
		activities, total, err := s.activityRepo.List(ctx, organizationID, domain.ActivityFilter{PageParams: params})
		if err != nil {
			return nil, 0, err
		}
		records := make([][]string, 0, len(activities))
		for _, a := range activities {
			records = append(records, []string{
				a.Title, string(a.Type), str(a.Description), date(a.DueDate), strconv.FormatBool(a.Completed), date(&a.CreatedAt),
			})
		}
		return records, total, nil
	}

	return nil, 0, ErrUnsupportedExport
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
