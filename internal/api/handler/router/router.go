package router

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
)

type Middleware = func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // aplicados na ordem da lista, antes do handler
}

// Group prefixa os caminhos e antepõe middlewares comuns a um conjunto de rotas
type Group struct {
	Prefix      string
	Middlewares []Middleware
}

func (g Group) Routes(routes ...Route) []Route {
	grouped := make([]Route, 0, len(routes))
	for _, route := range routes {
		mws := make([]Middleware, 0, len(g.Middlewares)+len(route.Middlewares))
		mws = append(mws, g.Middlewares...)
		mws = append(mws, route.Middlewares...)

		route.Path = g.Prefix + route.Path
		route.Middlewares = mws
		grouped = append(grouped, route)
	}
	return grouped
}

type Router struct {
	router *httprouter.Router
	routes []Route
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithNotFound define a resposta para rotas desconhecidas
func WithNotFound(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.router.NotFound = handler
	}
}

// WithMethodNotAllowed define a resposta para caminho conhecido com método não registrado
func WithMethodNotAllowed(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.router.MethodNotAllowed = handler
	}
}

func New(configs ...ConfigRouter) *Router {
	router := &Router{router: httprouter.New()}

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.routes = append(r.routes, route)
	}
}

// Describe lista "MÉTODO caminho" das rotas registradas, ordenado por caminho
func (r *Router) Describe() []string {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	out := make([]string, 0, len(routes))
	for _, route := range routes {
		out = append(out, route.Method+" "+route.Path)
	}
	return out
}
