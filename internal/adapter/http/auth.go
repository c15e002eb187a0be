package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims accepted by the API. The subject carries the
// user id.
type Claims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin,omitempty"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID uuid.UUID
	Admin  bool
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller stored by the auth middleware.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// JWTValidator verifies HS256 tokens signed with a shared secret.
type JWTValidator struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTValidator returns nil for an empty secret; a nil validator rejects
// every request.
func NewJWTValidator(secret string) *JWTValidator {
	if secret == "" {
		return nil
	}
	return &JWTValidator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}
}

// Validate parses tokenStr and resolves its principal.
func (v *JWTValidator) Validate(tokenStr string) (Principal, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid {
		return Principal{}, errors.New("invalid token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("token subject: %w", err)
	}
	return Principal{UserID: userID, Admin: claims.Admin}, nil
}

// Sign issues a token for p valid for the registered claims given. It is
// used by tooling and tests.
func (v *JWTValidator) Sign(p Principal, registered jwt.RegisteredClaims) (string, error) {
	registered.Subject = p.UserID.String()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: registered, Admin: p.Admin}).SignedString(v.secret)
}

// bearerToken reads the token from the Access-Token header or from an
// Authorization bearer header.
func bearerToken(r *http.Request) string {
	if t := strings.TrimSpace(r.Header.Get("Access-Token")); t != "" {
		return t
	}
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "missing access token")
			return
		}
		if h.validator == nil {
			writeError(w, http.StatusUnauthorized, "authentication not configured")
			return
		}
		p, err := h.validator.Validate(tokenStr)
		if err != nil {
			h.logger.Debug("rejected token", "error", err)
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := PrincipalFrom(r.Context()); !ok || !p.Admin {
			writeError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
