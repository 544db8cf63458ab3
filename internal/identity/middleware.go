package identity

import (
	"net/http"
	"strings"

	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
	commonhttp "github.com/LEEEUNCHEOL96/sbb-board/internal/common/http"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
)

// ResolveMiddleware attaches the principal to the request context when a valid
// bearer token is present. Requests without a token pass through anonymous;
// gating is done per route by RequireAuth.
func ResolveMiddleware(secret string, log *logger.Logger) func(next http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := ParseToken(strings.TrimPrefix(raw, "Bearer "), secretBytes)
			if err != nil {
				log.Warnf("token rejected path=%s: %v", r.URL.Path, err)
				writeDomainError(w, commonerrors.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireAuth rejects anonymous requests on routes marked authenticated-only.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			writeDomainError(w, commonerrors.ErrAuthenticationRequired)
			return
		}
		next(w, r)
	}
}

func writeDomainError(w http.ResponseWriter, err commonerrors.DomainError) {
	commonhttp.WriteErrorEnvelope(w, err.HTTPStatus(), err.Code(), err.Message(), nil)
}
