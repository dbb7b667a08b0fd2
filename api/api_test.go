package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/justinwb/project-ideas-backend/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter builds the full router over a fresh sqlite database with a
// temp upload directory.
func newTestRouter(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	d := database.New(db)
	require.NoError(t, d.AutoMigrate())

	router, err := newRouter(d, withConfig(map[string]string{
		"UPLOAD_DIR":     t.TempDir(),
		"SESSION_SECRET": "test-secret",
	}))
	require.NoError(t, err)

	return router, d
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, router http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// register creates a user through the real endpoint and returns the session
// cookie it was issued.
func register(t *testing.T, router http.Handler, username, password string) *http.Cookie {
	t.Helper()

	rec := postForm(t, router, "/on_register", url.Values{
		"username": {username},
		"email":    {username + "@example.com"},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie, "register should set a session cookie")
	return cookie
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

// addProject uploads a project through the real multipart endpoint and
// returns nothing; callers read it back via a listing.
func addProject(t *testing.T, router http.Handler, cookie *http.Cookie, title, filename string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", title))
	require.NoError(t, mw.WriteField("description", "a description"))
	require.NoError(t, mw.WriteField("instructions", "step one"))
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/on_add_project", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
}
