package auth

import "context"

type claimsKey struct{}

// WithClaims attaches verified token claims to ctx.
func WithClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFrom returns the claims stored by WithClaims.
func ClaimsFrom(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(UserClaims)
	return claims, ok && claims != nil
}

// MayWrite reports whether the caller may modify resources. Requests that
// carry no claims were not authenticated at all and are allowed.
func MayWrite(ctx context.Context) bool {
	claims, ok := ClaimsFrom(ctx)
	return !ok || claims.CanWrite()
}
