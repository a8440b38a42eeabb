package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spinwager/casino-backend/internal/domain/models"
	"github.com/spinwager/casino-backend/internal/service/auth"
	"github.com/spinwager/casino-backend/pkg/logger"
)

type fakeAuthService struct {
	registerResp *models.AuthResponse
	registerErr  error
	loginResp    *models.AuthResponse
	loginErr     error
}

func (f *fakeAuthService) Register(ctx context.Context, req *models.UserCreateRequest) (*models.AuthResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerResp, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func newAuthHandler(svc *fakeAuthService) *Auth {
	return NewAuth(svc, logger.InitLogger("test", logger.LevelError))
}

func TestRegisterHandler_Success(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&fakeAuthService{registerResp: &models.AuthResponse{
		ID:    1,
		Email: "u@x.com",
		Name:  "N",
		Token: "tok",
	}})

	body := `{"email":"u@x.com","password":"secret123","name":"N","mobile":"123"}`
	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"token": "tok"`)
}

func TestRegisterHandler_MalformedJSON(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&fakeAuthService{})

	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":`))
	w := httptest.NewRecorder()

	h.Register(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandler_ValidationFailure(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&fakeAuthService{})

	body := `{"email":"not-an-email","password":"","name":""}`
	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, r)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "email")
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&fakeAuthService{registerErr: auth.ErrEmailAlreadyRegistered})

	body := `{"email":"u@x.com","password":"secret123","name":"N"}`
	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "email already registered")
}

func TestLoginHandler_Success(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&fakeAuthService{loginResp: &models.AuthResponse{
		ID:    1,
		Email: "u@x.com",
		Token: "tok",
	}})

	body := `{"email":"u@x.com","password":"secret123"}`
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"token": "tok"`)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&fakeAuthService{loginErr: auth.ErrInvalidCredentials})

	body := `{"email":"u@x.com","password":"wrong"}`
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid email or password")
}

func TestLoginHandler_MissingFields(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&fakeAuthService{})

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	h.Login(w, r)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
