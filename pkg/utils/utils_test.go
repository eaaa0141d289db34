package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{name: "vazio", input: ""},
		{name: "data simples", input: "2026-10-17", want: ptr(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))},
		{name: "RFC3339", input: "2026-10-17T10:30:00Z", want: ptr(time.Date(2026, 10, 17, 10, 30, 0, 0, time.UTC))},
		{name: "inválida", input: "17/10/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func TestSlug(t *testing.T) {
	slug, err := Slug("  Acme Indústria & Cia  ")
	require.NoError(t, err)
	assert.Regexp(t, `^acme-ind-stria-cia-[a-z0-9]{6}$`, slug)

	slug, err = Slug("!!!")
	require.NoError(t, err)
	assert.Len(t, slug, 6)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		total int64
		want  float64
	}{
		{name: "sem total", part: 3, total: 0, want: 0},
		{name: "dízima", part: 1, total: 3, want: 33.33},
		{name: "arredonda para cima", part: 2, total: 3, want: 66.67},
		{name: "integral", part: 5, total: 5, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.part, tt.total))
		})
	}
}

func TestWritePage(t *testing.T) {
	rec := httptest.NewRecorder()

	WritePage(rec, domain.Page[string]{
		Pagination: domain.NewPagination(domain.PageParams{Page: 2, Limit: 20}, 41),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"data":[],"pagination":{"page":2,"limit":20,"total":41,"total_pages":3}}`,
		rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Acme"}`))
	require.NoError(t, DecodeJSON(req, &body))
	assert.Equal(t, "Acme", body.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.Error(t, DecodeJSON(req, &body))
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
	assert.Equal(t, "{\n  \"b\": \"x\"\n}", PrettyJson(map[string]string{"b": "x"}))
}

func ptr(t time.Time) *time.Time { return &t }
