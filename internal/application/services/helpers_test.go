package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/persistence/memory"
)

const (
	primaryOrgID   = "org-primary"
	primaryOdsCode = "03F"
	relatedOrgID   = "org-related"
	relatedOdsCode = "RX1"
)

var testOrder = services.OrderRef{OdsCode: primaryOdsCode, OrderID: "C010000-01"}

func newTestSession() *session.Session {
	return session.New(memory.NewSessionStore(time.Hour), uuid.NewString())
}

func identityContext() context.Context {
	return application.WithIdentity(context.Background(), application.Identity{
		AccessToken:    "access-token",
		OrganisationID: primaryOrgID,
	})
}

func primaryOrganisation() *domain.Organisation {
	return &domain.Organisation{
		ID:      primaryOrgID,
		Name:    "Hampshire CCG",
		OdsCode: primaryOdsCode,
		Address: &domain.Address{Line1: "1 Some Street", Town: "Winchester", Postcode: "SO23 8UJ"},
	}
}

func relatedOrganisations() []domain.Organisation {
	return []domain.Organisation{{ID: relatedOrgID, Name: "Related Trust", OdsCode: relatedOdsCode}}
}

func seed[T any](t *testing.T, sess *session.Session, key session.Key[T], value T) {
	t.Helper()
	require.NoError(t, session.Set(context.Background(), sess, key, value))
}

func sessionValue[T any](t *testing.T, sess *session.Session, key session.Key[T]) (T, bool) {
	t.Helper()
	value, found, err := session.Get(context.Background(), sess, key)
	require.NoError(t, err)
	return value, found
}
