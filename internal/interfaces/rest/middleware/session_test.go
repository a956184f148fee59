package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/persistence/memory"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest/middleware"
)

const existingID = "0b7c7f6e-3f3a-4c1e-9d2a-1f5e8a4b6c10"

type touchRecorder struct {
	application.SessionStore
	touched  []string
	touchErr error
}

func (r *touchRecorder) Touch(ctx context.Context, sessionID string) error {
	r.touched = append(r.touched, sessionID)
	if r.touchErr != nil {
		return r.touchErr
	}
	return r.SessionStore.Touch(ctx, sessionID)
}

func TestSession(t *testing.T) {
	tests := []struct {
		name        string
		cookie      string
		touchErr    error
		wantStatus  int
		wantTouched []string
		wantSameID  bool
	}{
		{
			name:       "no cookie starts a session",
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed cookie starts a session",
			cookie:     "not-a-uuid",
			wantStatus: http.StatusOK,
		},
		{
			name:        "valid cookie touches the stored session",
			cookie:      existingID,
			wantStatus:  http.StatusOK,
			wantTouched: []string{existingID},
			wantSameID:  true,
		},
		{
			name:        "touch failure is a server error",
			cookie:      existingID,
			touchErr:    errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantTouched: []string{existingID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := rest.NewRenderer()
			require.NoError(t, err)
			errs := rest.NewErrorHandler(renderer, "/login", false, slog.New(slog.NewTextHandler(io.Discard, nil)))
			store := &touchRecorder{SessionStore: memory.NewSessionStore(time.Hour), touchErr: tt.touchErr}

			var seenID string
			handler := middleware.Session(store, middleware.SessionOptions{CookieName: "sid", TTL: time.Hour}, errs)(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					sess, ok := middleware.SessionFromContext(r.Context())
					require.True(t, ok)
					seenID = sess.ID()
				}))

			req := httptest.NewRequest(http.MethodGet, "/organisation/03F/order/C1", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantTouched, store.touched)
			if tt.wantStatus != http.StatusOK {
				assert.Empty(t, seenID)
				return
			}

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, seenID, cookies[0].Value)
			assert.Equal(t, int(time.Hour.Seconds()), cookies[0].MaxAge)
			_, err = uuid.Parse(seenID)
			assert.NoError(t, err)
			if tt.wantSameID {
				assert.Equal(t, existingID, seenID)
			} else {
				assert.NotEqual(t, tt.cookie, seenID)
			}
		})
	}
}
