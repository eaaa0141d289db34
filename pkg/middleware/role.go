package middleware

import (
	"net/http"

	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/log"
)

type roleSet map[int]bool

func newRoleSet(roles ...int) roleSet {
	set := make(roleSet, len(roles))
	for _, role := range roles {
		set[role] = true
	}
	return set
}

// RequireRoles libera a rota apenas para os papéis informados
func RequireRoles(roles ...int) func(http.Handler) http.Handler {
	allowed := newRoleSet(roles...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !allowed[claims.UserRoleID] {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_role": claims.UserRoleID,
					"path":      r.URL.Path,
				}).Warn("Acesso negado por papel")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin)
}

func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleManager, domain.RoleMember)
}
