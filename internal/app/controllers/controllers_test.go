package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umid/rosterhub/internal/app/models"
	"github.com/umid/rosterhub/internal/app/controllers"
	"github.com/umid/rosterhub/internal/app/models/dto"
	"github.com/umid/rosterhub/internal/app/routes"
	"github.com/umid/rosterhub/internal/middleware"
	"github.com/umid/rosterhub/internal/pkg/apperrors"
	"github.com/umid/rosterhub/internal/pkg/auth"
)

// stubAuthService records calls and returns canned results
type stubAuthService struct {
	registerErr error
	loginToken  string
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, req *dto.RegisterRequest) (string, error) {
	if s.registerErr != nil {
		return "", s.registerErr
	}
	return "User added: " + req.Username + ", role: " + req.Role, nil
}

func (s *stubAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.TokenResponse{AccessToken: s.loginToken, TokenType: "bearer"}, nil
}

// stubRosterService records the caller it was invoked with
type stubRosterService struct {
	lastCaller string
	students   []*models.Student
	listErr    error
	deleteErr  error
}

func (s *stubRosterService) ListStudents(_ context.Context, caller string) ([]*models.Student, error) {
	s.lastCaller = caller
	return s.students, s.listErr
}

func (s *stubRosterService) AddStudent(_ context.Context, caller string, req *dto.AddStudentRequest) (*dto.AddStudentResponse, error) {
	s.lastCaller = caller
	return &dto.AddStudentResponse{Message: "New student added: " + req.Name, TeacherAssigned: "alice"}, nil
}

func (s *stubRosterService) DeleteStudent(_ context.Context, caller string, _ int64) error {
	s.lastCaller = caller
	return s.deleteErr
}

func (s *stubRosterService) AddAdmin(_ context.Context, caller string, req *dto.AddAdminRequest) (string, error) {
	s.lastCaller = caller
	return "New admin added: " + req.Username + ", branch: " + req.Branch, nil
}

func (s *stubRosterService) ListTeachers(_ context.Context, caller, _ string) ([]*models.User, error) {
	s.lastCaller = caller
	return nil, nil
}

type testEnv struct {
	router     *gin.Engine
	jwtService *auth.JWTService
	authSvc    *stubAuthService
	rosterSvc  *stubRosterService
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "rosterhub-test",
	})
	authSvc := &stubAuthService{loginToken: "unused"}
	rosterSvc := &stubRosterService{}

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(authSvc, zerolog.Nop()),
		controllers.NewRosterController(rosterSvc, zerolog.Nop()),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &testEnv{router: router, jwtService: jwtService, authSvc: authSvc, rosterSvc: rosterSvc}
}

func (e *testEnv) tokenFor(t *testing.T, username string, role models.Role) string {
	t.Helper()
	token, err := e.jwtService.Issue(&models.User{Username: username, Role: role})
	require.NoError(t, err)
	return token
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv()

	w := postForm(env.router, "/register", url.Values{
		"username": {"alice"}, "password": {"pw1"}, "role": {"teacher"},
		"branch": {"B1"}, "group": {"G1"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")

	// Missing required field fails binding
	w = postForm(env.router, "/register", url.Values{"username": {"alice"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.authSvc.registerErr = apperrors.ErrInvalidRole
	w = postForm(env.router, "/register", url.Values{
		"username": {"bob"}, "password": {"pw1"}, "role": {"student"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.authSvc.registerErr = apperrors.ErrUsernameTaken
	w = postForm(env.router, "/register", url.Values{
		"username": {"alice"}, "password": {"pw1"}, "role": {"teacher"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokenEndpoint(t *testing.T) {
	env := newTestEnv()
	env.authSvc.loginToken = "some-token"

	w := postForm(env.router, "/token", url.Values{"username": {"alice"}, "password": {"pw1"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"some-token"`)
	assert.Contains(t, w.Body.String(), `"token_type":"bearer"`)

	env.authSvc.loginErr = apperrors.ErrInvalidCredentials
	w = postForm(env.router, "/token", url.Values{"username": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentsEndpointAuth(t *testing.T) {
	env := newTestEnv()

	// No Authorization header
	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	req = httptest.NewRequest(http.MethodGet, "/students", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token: the subject reaches the service untouched
	env.rosterSvc.students = []*models.Student{{ID: 1, Name: "Bob", Branch: "B1", Group: "G1"}}
	req = httptest.NewRequest(http.MethodGet, "/students", nil)
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(t, "alice", models.RoleTeacher))
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", env.rosterSvc.lastCaller)
	assert.Contains(t, w.Body.String(), `"students"`)
	assert.Contains(t, w.Body.String(), "Bob")

	// Unknown role surfaces as 403
	env.rosterSvc.listErr = apperrors.ErrUnknownRole
	req = httptest.NewRequest(http.MethodGet, "/students", nil)
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(t, "alice", models.RoleTeacher))
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteStudentEndpoint(t *testing.T) {
	env := newTestEnv()
	token := env.tokenFor(t, "adm1", models.RoleAdmin)

	req := httptest.NewRequest(http.MethodDelete, "/delete_student/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/delete_student/5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "adm1", env.rosterSvc.lastCaller)

	env.rosterSvc.deleteErr = apperrors.ErrStudentNotFound
	req = httptest.NewRequest(http.MethodDelete, "/delete_student/999", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.rosterSvc.deleteErr = apperrors.NewForbiddenError("you cannot delete this student")
	req = httptest.NewRequest(http.MethodDelete, "/delete_student/5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddAdminEndpoint(t *testing.T) {
	env := newTestEnv()

	w := postForm(env.router, "/add_admin", url.Values{
		"username": {"adm2"}, "password": {"pw1"}, "branch": {"B2"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/add_admin",
		strings.NewReader(url.Values{"username": {"adm2"}, "password": {"pw1"}, "branch": {"B2"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(t, "root", models.RoleSuperadmin))
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", env.rosterSvc.lastCaller)
	assert.Contains(t, w.Body.String(), "adm2")
}
