package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
	"kwai-ads/internal/core/port/mocks"
)

const (
	testSecret      = "test-secret"
	testPassTimeout = time.Minute
)

type handlerFixture struct {
	svc       *mocks.MockAutomationUseCase
	validator *JWTValidator
	router    http.Handler
	userID    uuid.UUID
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	svc := mocks.NewMockAutomationUseCase(t)
	validator := NewJWTValidator(testSecret)
	h := NewHandler(svc, validator, testPassTimeout, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &handlerFixture{svc: svc, validator: validator, router: h.Router(), userID: uuid.New()}
}

func (f *handlerFixture) token(t *testing.T, admin bool) string {
	tok, err := f.validator.Sign(Principal{UserID: f.userID, Admin: admin}, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	return tok
}

func (f *handlerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Access-Token", token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	f := newHandlerFixture(t)
	rec := f.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMissingTokenIsRejected(t *testing.T) {
	f := newHandlerFixture(t)
	rec := f.do(http.MethodGet, "/api/v1/automations", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenWithWrongSecretIsRejected(t *testing.T) {
	f := newHandlerFixture(t)
	other := NewJWTValidator("other-secret")
	tok, err := other.Sign(Principal{UserID: f.userID}, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	rec := f.do(http.MethodGet, "/api/v1/automations", tok, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerHeaderIsAccepted(t *testing.T) {
	f := newHandlerFixture(t)
	f.svc.EXPECT().List(mock.Anything, f.userID).Return([]domain.AutomationRule{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/automations", nil)
	req.Header.Set("Authorization", "Bearer "+f.token(t, false))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAutomation(t *testing.T) {
	f := newHandlerFixture(t)
	created := &domain.AutomationRule{ID: uuid.New(), Title: "Pause expensive", UserID: f.userID}
	f.svc.EXPECT().
		Create(mock.Anything, f.userID, mock.MatchedBy(func(in port.CreateAutomation) bool {
			return in.Title == "Pause expensive" && in.Action.Kind == "pause" && in.Threshold == 25
		})).
		Return(created, nil)

	body := `{"title":"Pause expensive","accountId":1001,"campaignId":55,"event":"cpa",
		"condition":"greater-than","threshold":25,"action":{"kind":"pause"}}`
	rec := f.do(http.MethodPost, "/api/v1/automations", f.token(t, false), body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.AutomationRule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
}

func TestCreateAutomationErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &domain.ValidationError{Field: "title", Message: "too short"}, http.StatusBadRequest},
		{"unlinked account", domain.ErrAccountNotLinked, http.StatusBadRequest},
		{"store failure", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.svc.EXPECT().Create(mock.Anything, f.userID, mock.Anything).Return(nil, tt.err)

			rec := f.do(http.MethodPost, "/api/v1/automations", f.token(t, false), `{"title":"x"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCreateAutomationMalformedJSON(t *testing.T) {
	f := newHandlerFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/automations", f.token(t, false), `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAutomation(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.svc.EXPECT().Delete(mock.Anything, f.userID, id).Return(nil).Once()
	missing := uuid.New()
	f.svc.EXPECT().Delete(mock.Anything, f.userID, missing).Return(domain.ErrNotFound).Once()

	rec := f.do(http.MethodDelete, "/api/v1/automations/"+id.String(), f.token(t, false), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/automations/"+missing.String(), f.token(t, false), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/automations/not-a-uuid", f.token(t, false), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListExecutionsLimit(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.svc.EXPECT().Executions(mock.Anything, f.userID, id, 20).Return([]domain.Execution{{AutomationID: id, UnitID: 3}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/automations/"+id.String()+"/executions?limit=20", f.token(t, false), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/automations/"+id.String()+"/executions?limit=abc", f.token(t, false), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunPassRequiresAdmin(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/automations/run", f.token(t, false), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.svc.EXPECT().RunPass(mock.Anything).Return(&port.PassReport{Due: 2, Succeeded: 2}, nil).Once()
	rec = f.do(http.MethodPost, "/api/v1/automations/run", f.token(t, true), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report port.PassReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Succeeded)
}

func TestRunPassInProgress(t *testing.T) {
	f := newHandlerFixture(t)
	f.svc.EXPECT().RunPass(mock.Anything).Return(nil, domain.ErrPassInProgress)

	rec := f.do(http.MethodPost, "/api/v1/automations/run", f.token(t, true), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRunPassIsBoundedByPassTimeout(t *testing.T) {
	f := newHandlerFixture(t)
	f.svc.EXPECT().RunPass(mock.Anything).
		Run(func(ctx context.Context) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(testPassTimeout), deadline, 5*time.Second)
		}).
		Return(&port.PassReport{}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/automations/run", f.token(t, true), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
