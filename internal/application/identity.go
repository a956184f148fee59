package application

import "context"

// Identity is what the authentication layer in front of this service tells us
// about the caller.
type Identity struct {
	AccessToken    string
	OrganisationID string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
