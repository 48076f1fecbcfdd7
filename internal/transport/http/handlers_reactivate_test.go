package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"credlock/internal/lockout/models"
	"credlock/internal/transport/http/mocks"
	pkgerrors "credlock/pkg/errors"
)

func newReactivationRouter(t *testing.T) (http.Handler, *mocks.MockReactivationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := mocks.NewMockReactivationService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	NewReactivationHandler(service, logger).Register(r)
	return r, service
}

func postReactivate(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/accounts/reactivate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleReactivate_Success(t *testing.T) {
	router, service := newReactivationRouter(t)
	service.EXPECT().Reactivate(gomock.Any(), models.ReactivationRequest{Email: "a@x.com"}).
		Return(&models.ReactivationResult{Success: true}, nil)

	w := postReactivate(t, router, `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.ReactivationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandleReactivate_InvalidArgument(t *testing.T) {
	router, service := newReactivationRouter(t)
	service.EXPECT().Reactivate(gomock.Any(), models.ReactivationRequest{Email: ""}).
		Return(nil, pkgerrors.New(pkgerrors.CodeInvalidArgument, "email is required"))

	w := postReactivate(t, router, `{"email":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid_argument"}`, w.Body.String())
}

func TestHandleReactivate_NotFound(t *testing.T) {
	router, service := newReactivationRouter(t)
	service.EXPECT().Reactivate(gomock.Any(), gomock.Any()).
		Return(nil, pkgerrors.New(pkgerrors.CodeNotFound, "no directory account for email"))

	w := postReactivate(t, router, `{"email":"missing@x.com"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, w.Body.String())
}

func TestHandleReactivate_Unavailable(t *testing.T) {
	router, service := newReactivationRouter(t)
	service.EXPECT().Reactivate(gomock.Any(), gomock.Any()).
		Return(nil, pkgerrors.New(pkgerrors.CodeUnavailable, "directory unreachable"))

	w := postReactivate(t, router, `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleReactivate_MalformedBody(t *testing.T) {
	router, _ := newReactivationRouter(t)
	// No service EXPECT: a body that fails to decode never reaches the service.
	w := postReactivate(t, router, `{`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
