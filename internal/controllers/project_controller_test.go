package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fibertrack/internal/controllers"
	"fibertrack/internal/repositories/memory"
	"fibertrack/internal/routes"
	"fibertrack/internal/services"
	"fibertrack/pkg/config"
	"fibertrack/pkg/eventbus"
	"fibertrack/pkg/filestorage"
	"fibertrack/pkg/service"
	"fibertrack/pkg/validation"
)

type envelope struct {
	Status  bool            `json:"status"`
	Body    json.RawMessage `json:"body"`
	Message string          `json:"message"`
}

type testServer struct {
	e     *echo.Echo
	bus   *eventbus.Bus
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := zap.NewNop()
	store := memory.NewStore()
	cache := memory.NewCache()
	bus := eventbus.New(log)

	storage, err := filestorage.NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	jwtService := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	authCfg := config.AuthConfig{MaxLoginAttempts: 5, LockoutDuration: time.Minute}

	projectService := services.NewProjectService(store.Projects(), store.StageHistory(), memory.NewTxManager(), bus, log)
	teamService := services.NewTeamMemberService(store.TeamMembers())
	taskService := services.NewTaskService(store.Tasks(), store.Projects())
	documentService := services.NewDocumentService(store.Documents(), store.Projects(), storage, bus, log)
	badgeService := services.NewBadgeService(store.Badges(), store.TeamMembers(), store.Projects())
	performanceService := services.NewPerformanceService(store.Performance(), store.TeamMembers())
	reportService := services.NewReportService(store.Performance())
	dashboardService := services.NewDashboardService(store.Dashboard())
	authService := services.NewAuthService(store.Users(), cache, jwtService, authCfg, log)

	e := echo.New()
	e.Validator = validation.New()

	ctrls := routes.Controllers{
		Auth:        controllers.NewAuthController(authService, log),
		Project:     controllers.NewProjectController(projectService, log),
		TeamMember:  controllers.NewTeamMemberController(teamService, log),
		Task:        controllers.NewTaskController(taskService, log),
		Document:    controllers.NewDocumentController(documentService, log),
		Badge:       controllers.NewBadgeController(badgeService, log),
		Performance: controllers.NewPerformanceController(performanceService, log),
		Dashboard:   controllers.NewDashboardController(dashboardService, log),
		Report:      controllers.NewReportController(reportService, log),
	}
	routes.InitRoutes(e, ctrls, jwtService, authService, log)

	ts := &testServer{e: e, bus: bus}

	register := `{"username":"admin","password":"long-password","name":"Admin","email":"admin@isp.example"}`
	rec := ts.do(http.MethodPost, "/api/auth/register", register, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"long-password"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var tokens struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &tokens))
	ts.token = tokens.AccessToken

	return ts
}

func (ts *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

const createProjectBody = `{
	"customerName": "Acme Corp",
	"contactPerson": "Jane Doe",
	"email": "jane@acme.example",
	"phone": "+1-555-0199",
	"address": "12 Fiber Lane",
	"serviceType": "fiber",
	"bandwidth": 500,
	"assignedTo": 1,
	"expectedCompletion": "2026-11-30"
}`

func (ts *testServer) createProject(t *testing.T) int64 {
	t.Helper()
	rec := ts.do(http.MethodPost, "/api/projects", createProjectBody, ts.token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var project struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &project))
	return project.ID
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createProject(t)

	// Advance one stage.
	rec := ts.do(http.MethodPost, fmt.Sprintf("/api/projects/%d/stage", id),
		`{"stage":2,"changedBy":1}`, ts.token)
	require.Equal(t, http.StatusOK, rec.Code)

	// Skipping two stages is a validation failure, not a missing resource.
	rec = ts.do(http.MethodPost, fmt.Sprintf("/api/projects/%d/stage", id),
		`{"stage":4,"changedBy":1}`, ts.token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown projects are a missing resource.
	rec = ts.do(http.MethodPost, "/api/projects/9999/stage",
		`{"stage":2,"changedBy":1}`, ts.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// History is newest first: Survey then the creation entry.
	rec = ts.do(http.MethodGet, fmt.Sprintf("/api/projects/%d/history", id), "", ts.token)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var history []struct {
		Stage int    `json:"stage"`
		Notes string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &history))
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].Stage)
	assert.Equal(t, "Advanced to Survey", history[0].Notes)
	assert.Equal(t, 1, history[1].Stage)
	assert.Equal(t, "Project created", history[1].Notes)

	ts.bus.Wait()
}

func TestProjectValidationOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/projects",
		`{"customerName":"Acme Corp","serviceType":"satellite"}`, ts.token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/api/projects/abc", "", ts.token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/api/projects/777", "", ts.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectEndpointsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/projects", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodGet, "/api/projects", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ts.createProject(t)

	rec := ts.do(http.MethodGet, "/api/dashboard/stats", "", ts.token)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var stats struct {
		StageStats     map[string]int `json:"stageStats"`
		ActiveCount    int            `json:"activeCount"`
		CompletedCount int            `json:"completedCount"`
		TotalCount     int            `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &stats))
	assert.Len(t, stats.StageStats, 5)
	assert.Equal(t, 1, stats.StageStats["1"])
	assert.Equal(t, 1, stats.ActiveCount)
	assert.Equal(t, 1, stats.TotalCount)

	ts.bus.Wait()
}

func TestDocumentUploadOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createProject(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "site-survey.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 stub"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("type", "application/pdf"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/projects/%d/documents", id), &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+ts.token)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var doc struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &doc))
	assert.Equal(t, "site-survey.pdf", doc.Name)
	assert.NotEmpty(t, doc.URL)

	// Missing file part.
	rec2 := ts.do(http.MethodPost, fmt.Sprintf("/api/projects/%d/documents", id), "", ts.token)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)

	ts.bus.Wait()
}

func TestPerformanceReportOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPut, "/api/performance/monthly/2026/3",
		`{"projectsCompleted":9,"avgCompletionTime":13.5,"avgCustomerSatisfaction":8.8}`, ts.token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/api/reports/performance/2026", "", ts.token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "team-performance-2026.xlsx")
	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, rec.Body.Bytes()[:2])
}
