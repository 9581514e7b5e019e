package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/devserver/auth"
	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
	"github.com/dmitrijs2005/portfolio/internal/devserver/store"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

var testSecret = []byte("test-secret")

type recordingNotifier struct {
	mu   sync.Mutex
	got  []models.Contact
	fail error
}

func (n *recordingNotifier) NotifyContact(_ context.Context, c models.Contact) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, c)
	return n.fail
}

func newTestServer(t *testing.T) (*Server, *store.Memory, *recordingNotifier) {
	t.Helper()
	mem := store.NewMemory()
	require.NoError(t, store.SeedAdmin(context.Background(), mem, "admin", "admin@example.com", "admin123"))
	n := &recordingNotifier{}
	s := NewServer(Options{
		SecretKey:      testSecret,
		TokenTTL:       time.Hour,
		AllowedOrigins: []string{"*"},
	}, mem, n, logging.Nop())
	return s, mem, n
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := auth.GenerateToken(1, "admin", testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

// do runs one request against the handler. body may be a string (sent
// verbatim) or any value to JSON-encode.
func do(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestPublicLists_EmptyIsArray(t *testing.T) {
	s, _, _ := newTestServer(t)

	for _, path := range []string{"/api/home", "/api/about", "/api/projects"} {
		rec := do(t, s, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()), path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestLogin(t *testing.T) {
	s, _, _ := newTestServer(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{"bad json", "{", http.StatusBadRequest, "Invalid data format"},
		{"unknown user", loginRequest{Username: "bob", Password: "x"}, http.StatusUnauthorized, "Invalid username or password"},
		{"wrong password", loginRequest{Username: "admin", Password: "nope"}, http.StatusUnauthorized, "Invalid username or password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/login", "", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody[errorResponse](t, rec).Error)
		})
	}

	t.Run("success", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/login", "", loginRequest{Username: "admin", Password: "admin123"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[loginResponse](t, rec)
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, "admin", resp.User.Username)
		assert.Equal(t, "admin@example.com", resp.User.Email)

		claims, err := auth.ParseToken(resp.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
	})
}

func TestBearerAuth(t *testing.T) {
	s, _, _ := newTestServer(t)
	expired, err := auth.GenerateToken(1, "admin", testSecret, -time.Minute)
	require.NoError(t, err)
	foreign, err := auth.GenerateToken(1, "admin", []byte("other"), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", "Authorization header required"},
		{"empty token", "Bearer ", "Token not found"},
		{"garbage", "Bearer abc", "Invalid or expired token"},
		{"expired", "Bearer " + expired, "Invalid or expired token"},
		{"wrong key", "Bearer " + foreign, "Invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/contact", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.want, decodeBody[errorResponse](t, rec).Error)
		})
	}
}

func TestHomeAdminFlow(t *testing.T) {
	s, _, _ := newTestServer(t)
	tok := validToken(t)

	rec := do(t, s, http.MethodPost, "/api/admin/home", tok, models.Home{Title: "T", Description: "D"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Home record added successfully", decodeBody[messageResponse](t, rec).Message)

	rec = do(t, s, http.MethodPut, "/api/admin/home", tok, models.Home{ID: 1, Title: "T2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Home ID 1 updated successfully", decodeBody[messageResponse](t, rec).Message)

	rec = do(t, s, http.MethodGet, "/api/home", "", nil)
	assert.Equal(t, []models.Home{{ID: 1, Title: "T2"}}, decodeBody[[]models.Home](t, rec))

	rec = do(t, s, http.MethodPut, "/api/admin/home", tok, models.Home{ID: 7})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Home not found", decodeBody[errorResponse](t, rec).Error)

	rec = do(t, s, http.MethodPut, "/api/admin/home", tok, models.Home{Title: "no id"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodDelete, "/api/admin/home/1", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Home ID 1 deleted successfully", decodeBody[messageResponse](t, rec).Message)
}

func TestAboutAdminFlow(t *testing.T) {
	s, _, _ := newTestServer(t)
	tok := validToken(t)

	rec := do(t, s, http.MethodPost, "/api/admin/about", tok, models.About{Content: "C"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "New About record added successfully", decodeBody[messageResponse](t, rec).Message)

	rec = do(t, s, http.MethodPut, "/api/admin/about", tok, models.About{ID: 1, Content: "C2"})
	assert.Equal(t, "About ID 1 updated successfully", decodeBody[messageResponse](t, rec).Message)

	rec = do(t, s, http.MethodDelete, "/api/admin/about/1", tok, nil)
	assert.Equal(t, "About record deleted.", decodeBody[messageResponse](t, rec).Message)

	rec = do(t, s, http.MethodDelete, "/api/admin/about/x", tok, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid ID", decodeBody[errorResponse](t, rec).Error)
}

func TestProjectAdminFlow(t *testing.T) {
	s, _, _ := newTestServer(t)
	tok := validToken(t)

	for _, name := range []string{"first", "second"} {
		rec := do(t, s, http.MethodPost, "/api/admin/projects", tok, models.Project{Name: name})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Project record added successfully", decodeBody[messageResponse](t, rec).Message)
	}

	rec := do(t, s, http.MethodGet, "/api/projects", "", nil)
	items := decodeBody[[]models.Project](t, rec)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Name)

	rec = do(t, s, http.MethodPut, "/api/admin/projects/1", tok, models.Project{ID: 99, Name: "renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project ID 1 updated successfully", decodeBody[messageResponse](t, rec).Message)

	rec = do(t, s, http.MethodPut, "/api/admin/projects/1", tok, "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid data", decodeBody[errorResponse](t, rec).Error)

	rec = do(t, s, http.MethodDelete, "/api/admin/projects/5", tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", decodeBody[errorResponse](t, rec).Error)

	rec = do(t, s, http.MethodDelete, "/api/admin/projects/2", tok, nil)
	assert.Equal(t, "Project ID 2 deleted successfully", decodeBody[messageResponse](t, rec).Message)

	rec = do(t, s, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, []models.Project{{ID: 1, Name: "renamed"}}, decodeBody[[]models.Project](t, rec))
}

func TestContact(t *testing.T) {
	s, mem, n := newTestServer(t)
	tok := validToken(t)

	rec := do(t, s, http.MethodPost, "/api/contact", "", models.Contact{
		Name: " Ann ", Email: "ann@example.com", Phone: "1", Message: "hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Contact record added successfully and email sent", decodeBody[messageResponse](t, rec).Message)
	require.Len(t, n.got, 1)
	assert.Equal(t, "Ann", n.got[0].Name)
	assert.Equal(t, 1, n.got[0].ID)

	rec = do(t, s, http.MethodPost, "/api/contact", "", models.Contact{Name: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/admin/contact", tok, nil)
	items := decodeBody[[]models.Contact](t, rec)
	require.Len(t, items, 1)
	assert.False(t, items[0].CreatedAt.IsZero())

	rec = do(t, s, http.MethodPut, "/api/admin/contact", tok, models.Contact{ID: 1, Name: "Ann B", Email: "a@b", Message: "m"})
	assert.Equal(t, "Contact ID 1 updated successfully", decodeBody[messageResponse](t, rec).Message)

	rec = do(t, s, http.MethodDelete, "/api/admin/contact/1", tok, nil)
	assert.Equal(t, "Contact ID 1 deleted successfully", decodeBody[messageResponse](t, rec).Message)

	left, _ := mem.ListContacts(context.Background())
	assert.Empty(t, left)
}

func TestContact_NotifierFailureStillCreated(t *testing.T) {
	s, mem, n := newTestServer(t)
	n.fail = errors.New("mail down")

	rec := do(t, s, http.MethodPost, "/api/contact", "", models.Contact{Name: "A", Email: "a@b", Message: "m"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	items, _ := mem.ListContacts(context.Background())
	assert.Len(t, items, 1)
}

func TestBodyTooLarge(t *testing.T) {
	s, _, _ := newTestServer(t)
	big := `{"name":"` + strings.Repeat("a", maxBodyBytes+10) + `"}`

	rec := do(t, s, http.MethodPost, "/api/contact", "", big)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/projects/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s, _, _ := newTestServer(t)
	ln, err := newLocalListener()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/home")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestCleanContact(t *testing.T) {
	got, err := cleanContact(models.Contact{ID: 9, Name: " A ", Email: " a@b ", Message: " m "})
	require.NoError(t, err)
	assert.Equal(t, models.Contact{Name: "A", Email: "a@b", Message: "m"}, got)

	_, err = cleanContact(models.Contact{Name: "A", Email: " ", Message: "m"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestAuthenticate(t *testing.T) {
	s, _, _ := newTestServer(t)
	ctx := context.Background()

	u, err := s.authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	_, err = s.authenticate(ctx, "admin", "bad")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.authenticate(ctx, "ghost", "admin123")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
