package middleware

import (
	"context"

	"github.com/tripforge/backend/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	// TenantKey is the context key for the resolved tenant record
	TenantKey contextKey = "tenant"

	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
)

// GetTenantFromContext retrieves the resolved tenant from context
func GetTenantFromContext(ctx context.Context) *models.Tenant {
	if val := ctx.Value(TenantKey); val != nil {
		if tenant, ok := val.(*models.Tenant); ok {
			return tenant
		}
	}
	return nil
}

// WithTenant adds a resolved tenant to the context
func WithTenant(ctx context.Context, tenant *models.Tenant) context.Context {
	return context.WithValue(ctx, TenantKey, tenant)
}

// GetRequestIDFromContext retrieves the request ID from context
func GetRequestIDFromContext(ctx context.Context) string {
	if val := ctx.Value(RequestIDKey); val != nil {
		if requestID, ok := val.(string); ok {
			return requestID
		}
	}
	return ""
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
