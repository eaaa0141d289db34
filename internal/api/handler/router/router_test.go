package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagging(tag string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Trace", tag)
			next.ServeHTTP(w, r)
		})
	}
}

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestGroup_Routes(t *testing.T) {
	group := Group{Prefix: "/api/v1/a-crm/deals", Middlewares: []Middleware{tagging("grupo")}}

	routes := group.Routes(
		Route{Path: "", Method: http.MethodGet, Handler: ok},
		Route{Path: "/:id/stage", Method: http.MethodPatch, Handler: ok, Middlewares: []Middleware{tagging("rota")}},
	)

	assert.Equal(t, "/api/v1/a-crm/deals", routes[0].Path)
	assert.Len(t, routes[0].Middlewares, 1)
	assert.Equal(t, "/api/v1/a-crm/deals/:id/stage", routes[1].Path)
	assert.Len(t, routes[1].Middlewares, 2)
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	group := Group{Prefix: "/x", Middlewares: []Middleware{tagging("grupo")}}
	rt := New(WithRoutes(group.Routes(
		Route{Path: "/y", Method: http.MethodGet, Handler: ok, Middlewares: []Middleware{tagging("rota")}},
	)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x/y", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"grupo", "rota"}, rec.Header().Values("X-Trace"))
}

func TestRouter_Fallbacks(t *testing.T) {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	rt := New(
		WithNotFound(notFound),
		WithMethodNotAllowed(notAllowed),
		WithRoutes(Route{Path: "/deals", Method: http.MethodGet, Handler: ok}),
	)

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{name: "rota registrada", method: http.MethodGet, target: "/deals", want: http.StatusOK},
		{name: "rota desconhecida", method: http.MethodGet, target: "/nada", want: http.StatusTeapot},
		{name: "método não registrado", method: http.MethodDelete, target: "/deals", want: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_Describe(t *testing.T) {
	rt := New(WithRoutes(
		Route{Path: "/b", Method: http.MethodPost, Handler: ok},
		Route{Path: "/a", Method: http.MethodGet, Handler: ok},
		Route{Path: "/b", Method: http.MethodGet, Handler: ok},
	))

	assert.Equal(t, "GET /a,GET /b,POST /b", strings.Join(rt.Describe(), ","))
}
