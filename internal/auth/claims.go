package auth

import "context"

// CrewClaims identifies the logged-in crew member for crew-facing routes.
type CrewClaims struct {
	SAP         int64
	Designation string
}

type contextKey string

const claimsKey contextKey = "crew_claims"

func SetCrewClaims(ctx context.Context, claims *CrewClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetCrewClaims returns the claims set by the auth middleware, or nil on
// unauthenticated requests.
func GetCrewClaims(ctx context.Context) *CrewClaims {
	claims, _ := ctx.Value(claimsKey).(*CrewClaims)
	return claims
}
