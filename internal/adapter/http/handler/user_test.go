package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spinwager/casino-backend/internal/domain/models"
	"github.com/spinwager/casino-backend/internal/domain/types"
	"github.com/spinwager/casino-backend/internal/service/auth"
	"github.com/spinwager/casino-backend/pkg/logger"
)

type fakeUserService struct {
	valid      bool
	profile    *models.AuthResponse
	profileErr error
}

func (f *fakeUserService) ValidateToken(ctx context.Context, authHeader string) bool {
	return f.valid
}

func (f *fakeUserService) GetProfile(ctx context.Context, authHeader string) (*models.AuthResponse, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func newUserHandler(svc *fakeUserService) *User {
	return NewUser(svc, logger.InitLogger("test", logger.LevelError))
}

func TestValidate_AlwaysRespondsOK(t *testing.T) {
	t.Parallel()

	for _, valid := range []bool{true, false} {
		h := newUserHandler(&fakeUserService{valid: valid})

		r := httptest.NewRequest(http.MethodGet, "/api/user/validate", nil)
		r.Header.Set("Authorization", "Bearer whatever")
		w := httptest.NewRecorder()

		h.Validate(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		body := strings.TrimSpace(w.Body.String())
		if valid {
			require.Equal(t, "true", body)
		} else {
			require.Equal(t, "false", body)
		}
	}
}

func TestValidate_MissingHeaderStillOK(t *testing.T) {
	t.Parallel()

	h := newUserHandler(&fakeUserService{valid: false})

	r := httptest.NewRequest(http.MethodGet, "/api/user/validate", nil)
	w := httptest.NewRecorder()

	h.Validate(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "false", strings.TrimSpace(w.Body.String()))
}

func TestProfile_Success(t *testing.T) {
	t.Parallel()

	h := newUserHandler(&fakeUserService{profile: &models.AuthResponse{
		ID:      7,
		Email:   "u@x.com",
		Name:    "N",
		Balance: 100,
		Token:   "presented-token",
	}})

	r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	r.Header.Set("Authorization", "Bearer presented-token")
	w := httptest.NewRecorder()

	h.Profile(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"token": "presented-token"`)
	require.Contains(t, w.Body.String(), `"email": "u@x.com"`)
}

func TestProfile_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code int
	}{
		{auth.ErrUnauthorized, http.StatusUnauthorized},
		{types.ErrUserNotFound, http.StatusNotFound},
		{auth.ErrUnexpected, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		h := newUserHandler(&fakeUserService{profileErr: tc.err})

		r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
		w := httptest.NewRecorder()

		h.Profile(w, r)

		require.Equal(t, tc.code, w.Code, "error %v", tc.err)
	}
}
