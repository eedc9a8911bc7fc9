package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireDashboardRole restricts the insight endpoints to the roles that
// see the dashboards upstream: admins and managers.
func RequireDashboardRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Dashboard access requires admin or manager role")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != "admin" && role != "manager") {
			response.Forbidden(w, "Dashboard access requires admin or manager role")
			return
		}

		next.ServeHTTP(w, r)
	})
}
