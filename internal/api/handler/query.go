package handler

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/utils"
	"github.com/vfg2006/crm-api/pkg/validation"
)

// queryParser lê os parâmetros de listagem acumulando os campos inválidos
type queryParser struct {
	values url.Values
	errs   validation.Errors
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) invalid(name, msg string) {
	p.errs = append(p.errs, validation.FieldError{Field: name, Message: msg})
}

func (p *queryParser) string(name string) string {
	return strings.TrimSpace(p.values.Get(name))
}

func (p *queryParser) int(name string) *int {
	raw := p.string(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.invalid(name, "deve ser um número inteiro")
		return nil
	}
	return &v
}

func (p *queryParser) bool(name string) *bool {
	raw := p.string(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.invalid(name, "deve ser true ou false")
		return nil
	}
	return &v
}

func (p *queryParser) decimal(name string) *decimal.Decimal {
	raw := p.string(name)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		p.invalid(name, "deve ser um número")
		return nil
	}
	return &v
}

func (p *queryParser) date(name string) *time.Time {
	v, err := utils.ParseDate(p.string(name))
	if err != nil {
		p.invalid(name, "data inválida, use YYYY-MM-DD ou RFC3339")
		return nil
	}
	return v
}

// list aceita valores separados por vírgula e parâmetros repetidos
func (p *queryParser) list(name string) []string {
	var out []string
	for _, raw := range p.values[name] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func (p *queryParser) uuid(name string) string {
	raw := p.string(name)
	if raw != "" && validation.Var(raw, "uuid") != nil {
		p.invalid(name, "UUID inválido")
		return ""
	}
	return raw
}

func (p *queryParser) oneOf(name string, allowed ...string) string {
	raw := p.string(name)
	if raw == "" {
		return ""
	}
	for _, a := range allowed {
		if raw == a {
			return raw
		}
	}
	p.invalid(name, "deve ser um de: "+strings.Join(allowed, " "))
	return ""
}

// page lê page, limit, sort_by e sort_order
func (p *queryParser) page() domain.PageParams {
	params := domain.PageParams{
		SortBy:    p.string("sort_by"),
		SortOrder: domain.SortOrder(p.oneOf("sort_order", string(domain.SortAsc), string(domain.SortDesc))),
	}
	if page := p.int("page"); page != nil {
		params.Page = *page
	}
	if limit := p.int("limit"); limit != nil {
		params.Limit = *limit
	}
	return params.Normalize()
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs
}
