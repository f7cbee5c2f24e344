package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/phoopyae1/OSS/pkg/auth"
	"github.com/phoopyae1/OSS/pkg/types"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// requestClaims returns the authenticated user's claims from the request
// context, or nil for unauthenticated requests.
func requestClaims(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsContextKey).(*auth.Claims)
	return claims
}

func (s *Server) authenticate(r *http.Request) (*auth.Claims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "Missing authorization header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "Authorization header must be a bearer token"
	}

	claims, err := s.tokens.Parse(parts[1])
	if err != nil {
		return nil, "Invalid or expired token"
	}
	return claims, ""
}

// requireAuth rejects requests without a valid token and attaches the claims
// to the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, message := s.authenticate(r)
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, message)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin additionally rejects authenticated users without the admin
// role.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return s.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims.Role != types.RoleAdmin {
			respondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}
