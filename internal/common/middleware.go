package common

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"google.golang.org/grpc"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// WithClaims stores the authenticated identity on ctx.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ViewerID returns the authenticated user id, or "" for anonymous requests.
func ViewerID(ctx context.Context) string {
	if c, ok := ctx.Value(claimsKey).(*Claims); ok {
		return c.UserID
	}
	return ""
}

func IsAdmin(ctx context.Context) bool {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return ok && c.Role == RoleAdmin
}

// Authenticate parses "Authorization: Bearer <token>". With required=false a missing header
// lets the request through anonymously, but a malformed or invalid token is still rejected.
func Authenticate(tm *TokenManager, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				if required {
					WriteError(w, &Error{Kind: KindForbidden, Message: "authorization required"})
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, &Error{Kind: KindForbidden, Message: "invalid auth header"})
				return
			}

			claims, err := tm.ValidToken(parts[1])
			if err != nil {
				WriteError(w, &Error{Kind: KindForbidden, Message: "invalid or expired token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			WriteError(w, Forbidden("admin role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireViewer rejects anonymous requests on routes mounted behind optional authentication.
func RequireViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ViewerID(r.Context()) == "" {
			WriteError(w, Forbidden("authorization required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code := HTTPStatus(err)
	kind := KindOf(err)
	if kind == "" {
		kind = "INTERNAL"
	}
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		msg = "internal error"
	}
	WriteJSON(w, code, map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"kind":    string(kind),
			"message": msg,
		},
	})
}

func LoggingUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	log.Printf("→ %s", info.FullMethod)

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	if err != nil {
		log.Printf("✗ %s failed (%v): %v", info.FullMethod, duration, err)
	} else {
		log.Printf("✓ %s completed (%v)", info.FullMethod, duration)
	}

	return resp, err
}

// ErrorUnaryInterceptor converts domain errors into gRPC status errors.
func ErrorUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		return nil, GRPCStatus(err)
	}
	return resp, nil
}
