package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLogsTheNewUserIn(t *testing.T) {
	router, _ := newTestRouter(t)

	cookie := register(t, router, "alice", "secret")

	// the same session immediately resolves to the new user
	rec := get(t, router, "/my_projects", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterValidatesFields(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing username", url.Values{"email": {"a@b.com"}, "password": {"pw"}}},
		{"missing email", url.Values{"username": {"alice"}, "password": {"pw"}}},
		{"missing password", url.Values{"username": {"alice"}, "email": {"a@b.com"}}},
		{"bad email", url.Values{"username": {"alice"}, "email": {"not-an-email"}, "password": {"pw"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, router, "/on_register", tt.form, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRegisterAcceptsDuplicateUsernames(t *testing.T) {
	router, d := newTestRouter(t)

	register(t, router, "alice", "secret")
	register(t, router, "alice", "other")

	first, err := d.UserRepo().FindByUsername("alice")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)
	register(t, router, "alice", "secret")

	t.Run("unknown user", func(t *testing.T) {
		rec := postForm(t, router, "/on_login", url.Values{
			"username": {"nobody"}, "password": {"secret"},
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postForm(t, router, "/on_login", url.Values{
			"username": {"alice"}, "password": {"wrong"},
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		rec := postForm(t, router, "/on_login", url.Values{
			"username": {"alice"}, "password": {"secret"},
		}, nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)

		authed := get(t, router, "/my_projects", cookie)
		assert.Equal(t, http.StatusOK, authed.Code)
	})
}

func TestLogoutClearsSession(t *testing.T) {
	router, _ := newTestRouter(t)
	cookie := register(t, router, "alice", "secret")

	rec := get(t, router, "/on_logout", cookie)
	require.Equal(t, http.StatusFound, rec.Code)

	cleared := sessionCookie(t, rec)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
	assert.Empty(t, cleared.Value)

	// the cleared cookie no longer authenticates
	anon := get(t, router, "/my_projects", cleared)
	assert.Equal(t, http.StatusUnauthorized, anon.Code)
}
