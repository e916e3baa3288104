package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	"github.com/BruksfildServices01/escala-trocas/internal/auth"
	"github.com/BruksfildServices01/escala-trocas/internal/config"
	settingsdomain "github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/metrics"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
	"github.com/BruksfildServices01/escala-trocas/internal/testutil"
	"github.com/BruksfildServices01/escala-trocas/internal/timezone"
)

const tz = "America/Sao_Paulo"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// ==================== Harness ====================

type app struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	audit  *audit.Dispatcher

	adminToken      string
	supervisorToken string
	supervisorID    uint
}

func newApp(t *testing.T) *app {
	t.Helper()

	db := testutil.NewDB(t)
	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop(), 100)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dispatcher.Close(ctx)
	})

	r := gin.New()
	require.NoError(t, RegisterRoutes(r, Deps{
		DB:      db,
		Config:  &config.Config{Timezone: tz},
		Log:     zap.NewNop(),
		Tokens:  auth.NewTokenManager("test-secret", time.Hour),
		Audit:   dispatcher,
		Metrics: metrics.New(),
	}))

	a := &app{t: t, db: db, router: r, audit: dispatcher}

	a.seedUser("Administrador", "admin", "ADMINISTRADOR")
	sup := a.seedUser("Encarregado", "enc", "ENCARREGADO")
	a.supervisorID = sup.ID

	a.adminToken = a.login("admin", "segredo1")
	a.supervisorToken = a.login("enc", "segredo1")
	return a
}

func (a *app) seedUser(name, login, role string) *models.User {
	hash, err := auth.HashPassword("segredo1")
	require.NoError(a.t, err)
	u := &models.User{Name: name, LoginIdentifier: login, PasswordHash: hash, Role: role, Active: true}
	require.NoError(a.t, a.db.Create(u).Error)
	return u
}

func (a *app) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *app) login(login, password string) string {
	rec := a.do(http.MethodPost, "/api/auth/login", "", gin.H{"loginIdentifier": login, "password": password})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Token
}

// flushAudit waits for every queued audit entry to be written. Later
// dispatches are dropped.
func (a *app) flushAudit() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(a.t, a.audit.Close(ctx))
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// nextSaturday is a Saturday at least a week ahead of today.
func nextSaturday() time.Time {
	d := timezone.Today(tz).AddDate(0, 0, 7)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func ymd(t time.Time) string {
	return t.Format("2006-01-02")
}

func swapBody(swap, payback time.Time) gin.H {
	return gin.H{
		"employeeIdOut":    "1001",
		"employeeIdIn":     "2002",
		"swapDate":         ymd(swap),
		"paybackDate":      ymd(payback),
		"employeeFunction": "MOTORISTA",
		"groupOut":         "G1",
		"groupIn":          "G2",
	}
}

type requestResp struct {
	Request struct {
		ID               uint   `json:"id"`
		EventType        string `json:"eventType"`
		Status           string `json:"status"`
		SubmittedByID    uint   `json:"submittedById"`
		IsMirror         bool   `json:"isMirror"`
		RelatedRequestID *uint  `json:"relatedRequestId"`
		SwapDate         string `json:"swapDate"`
	} `json:"request"`
}

type errorResp struct {
	Code   string `json:"error_code"`
	Issues []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"issues"`
}

// ==================== Routing ====================

func TestCapabilitiesAreAllRegistered(t *testing.T) {
	a := newApp(t)

	registered := map[string]bool{}
	for _, rt := range a.router.Routes() {
		registered[rt.Method+" "+rt.Path] = true
	}
	for key := range Capabilities {
		assert.True(t, registered[key], key)
	}
}

func TestPublicEndpoints(t *testing.T) {
	a := newApp(t)

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/ready", "", nil).Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/schema", "", nil).Code)

	rec := a.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "escala_trocas_auth_logins_total")
}

// ==================== Auth ====================

func TestLoginAndMe(t *testing.T) {
	a := newApp(t)

	rec := a.do(http.MethodPost, "/api/auth/login", "", gin.H{"loginIdentifier": "admin", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", decode[errorResp](t, rec).Code)

	rec = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"loginIdentifier": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/api/auth/me", "", nil).Code)

	rec = a.do(http.MethodGet, "/api/auth/me", a.supervisorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"loginIdentifier":"enc"`)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestDeactivatedUserTokenRejected(t *testing.T) {
	a := newApp(t)

	require.NoError(t, a.db.Model(&models.User{}).Where("id = ?", a.supervisorID).Update("active", false).Error)

	rec := a.do(http.MethodGet, "/api/auth/me", a.supervisorToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sat := nextSaturday()
	rec = a.do(http.MethodPost, "/api/requests", a.supervisorToken, swapBody(sat, sat.AddDate(0, 0, 1)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_session", decode[errorResp](t, rec).Code)

	var count int64
	a.db.Model(&models.SwapRequest{}).Count(&count)
	assert.Zero(t, count)
}

func TestDemotedAdminTokenLosesAccess(t *testing.T) {
	a := newApp(t)

	require.NoError(t, a.db.Model(&models.User{}).Where("login_identifier = ?", "admin").Update("role", "ENCARREGADO").Error)

	rec := a.do(http.MethodGet, "/api/users", a.adminToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden_role", decode[errorResp](t, rec).Code)

	rec = a.do(http.MethodGet, "/api/auth/me", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"ENCARREGADO"`)
}

func TestDeactivatedThroughAPIRejectedImmediately(t *testing.T) {
	a := newApp(t)

	rec := a.do(http.MethodPatch, "/api/users/"+itoa(a.supervisorID), a.adminToken, gin.H{"active": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/requests", a.supervisorToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ==================== Swap requests ====================

func TestCreateRequest_RoleCheckedBeforeBody(t *testing.T) {
	a := newApp(t)

	sat := nextSaturday()
	body := swapBody(sat, sat.AddDate(0, 0, 1))
	body["groupIn"] = "G1"

	rec := a.do(http.MethodPost, "/api/requests", a.adminToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden_role", decode[errorResp](t, rec).Code)

	var count int64
	a.db.Model(&models.SwapRequest{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateRequest_SameGroupRejected(t *testing.T) {
	a := newApp(t)

	sat := nextSaturday()
	body := swapBody(sat, sat.AddDate(0, 0, 1))
	body["groupIn"] = "G1"

	rec := a.do(http.MethodPost, "/api/requests", a.supervisorToken, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[errorResp](t, rec)
	assert.Equal(t, "validation_error", resp.Code)
	require.NotEmpty(t, resp.Issues)
	assert.Equal(t, "groupIn", resp.Issues[0].Field)
	assert.Contains(t, resp.Issues[0].Message, "grupos")

	var count int64
	a.db.Model(&models.SwapRequest{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateRequest_WeekdayRejected(t *testing.T) {
	a := newApp(t)

	sat := nextSaturday()
	rec := a.do(http.MethodPost, "/api/requests", a.supervisorToken, swapBody(sat.AddDate(0, 0, 2), sat))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "swapDate", decode[errorResp](t, rec).Issues[0].Field)
}

func TestCreateRequest_TrocaWithMirror(t *testing.T) {
	a := newApp(t)

	sat := nextSaturday()
	body := swapBody(sat, sat.AddDate(0, 0, 1))
	body["status"] = "REALIZADO"
	body["submittedById"] = 999

	rec := a.do(http.MethodPost, "/api/requests", a.supervisorToken, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[requestResp](t, rec).Request
	assert.Equal(t, "TROCA", resp.EventType)
	assert.Equal(t, "AGENDADO", resp.Status)
	assert.Equal(t, a.supervisorID, resp.SubmittedByID)
	assert.Equal(t, ymd(sat), resp.SwapDate)
	require.NotNil(t, resp.RelatedRequestID)

	var mirror models.SwapRequest
	require.NoError(t, a.db.First(&mirror, *resp.RelatedRequestID).Error)
	assert.True(t, mirror.IsMirror)
	assert.Equal(t, resp.ID, *mirror.RelatedRequestID)
	assert.Equal(t, "2002", mirror.EmployeeIDOut)
}

func TestCreateRequest_Substituicao(t *testing.T) {
	a := newApp(t)

	sat := nextSaturday()
	rec := a.do(http.MethodPost, "/api/requests", a.supervisorToken, swapBody(sat, sat.AddDate(0, 0, 7)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[requestResp](t, rec).Request
	assert.Equal(t, "SUBSTITUICAO", resp.EventType)
	assert.Nil(t, resp.RelatedRequestID)
}

func TestCreateRequest_WindowClosed(t *testing.T) {
	a := newApp(t)

	tomorrow := settingsdomain.FromTime((timezone.NowIn(tz).Weekday() + 1) % 7)
	rec := a.do(http.MethodPut, "/api/settings", a.adminToken, gin.H{
		"submissionStartDay": tomorrow,
		"submissionEndDay":   tomorrow,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/settings/window", a.supervisorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"open":false`)

	sat := nextSaturday()
	rec = a.do(http.MethodPost, "/api/requests", a.supervisorToken, swapBody(sat, sat.AddDate(0, 0, 1)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "submission_window_closed", decode[errorResp](t, rec).Code)
}

func TestListAndGetRequests(t *testing.T) {
	a := newApp(t)
	other := a.seedUser("Outro", "outro", "ENCARREGADO")
	otherToken := a.login("outro", "segredo1")

	sat := nextSaturday()
	rec := a.do(http.MethodPost, "/api/requests", a.supervisorToken, swapBody(sat, sat.AddDate(0, 0, 1)))
	require.Equal(t, http.StatusCreated, rec.Code)
	mine := decode[requestResp](t, rec).Request

	rec = a.do(http.MethodPost, "/api/requests", otherToken, swapBody(sat, sat.AddDate(0, 0, 7)))
	require.Equal(t, http.StatusCreated, rec.Code)
	theirs := decode[requestResp](t, rec).Request
	assert.Equal(t, other.ID, theirs.SubmittedByID)

	type listResp struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalCount int64 `json:"totalCount"`
		Requests   []struct {
			ID uint `json:"id"`
		} `json:"requests"`
	}

	rec = a.do(http.MethodGet, "/api/requests", a.supervisorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[listResp](t, rec)
	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, 20, list.Limit)
	assert.Equal(t, mine.ID, list.Requests[0].ID)

	rec = a.do(http.MethodGet, "/api/requests?includeMirrors=true", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), decode[listResp](t, rec).TotalCount)

	rec = a.do(http.MethodGet, "/api/requests?eventType=SUBSTITUICAO", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[listResp](t, rec).TotalCount)

	rec = a.do(http.MethodGet, "/api/requests?status=FEITO", a.adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/api/requests/"+itoa(theirs.ID), a.supervisorToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, "/api/requests/"+itoa(theirs.ID), a.adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodGet, "/api/requests/abc", a.adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus(t *testing.T) {
	a := newApp(t)

	sat := nextSaturday()
	rec := a.do(http.MethodPost, "/api/requests", a.supervisorToken, swapBody(sat, sat.AddDate(0, 0, 1)))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[requestResp](t, rec).Request
	path := "/api/requests/" + itoa(created.ID) + "/status"

	rec = a.do(http.MethodPatch, path, a.supervisorToken, gin.H{"status": "REALIZADO"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodPatch, path, a.adminToken, gin.H{"status": "CANCELADO"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPatch, path, a.adminToken, gin.H{"status": "REALIZADO", "observation": "ok"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "REALIZADO", decode[requestResp](t, rec).Request.Status)

	var mirror models.SwapRequest
	require.NoError(t, a.db.First(&mirror, *created.RelatedRequestID).Error)
	assert.Equal(t, "REALIZADO", mirror.Status)

	rec = a.do(http.MethodPatch, path, a.adminToken, gin.H{"status": "NAO_REALIZADA"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodPatch, "/api/requests/9999/status", a.adminToken, gin.H{"status": "REALIZADO"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ==================== Settings ====================

func TestSettings_UpsertKeepsOneRow(t *testing.T) {
	a := newApp(t)

	rec := a.do(http.MethodGet, "/api/settings", a.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodPut, "/api/settings", a.supervisorToken, gin.H{"submissionStartDay": "SEGUNDA", "submissionEndDay": "SEXTA"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	for _, end := range []string{"QUARTA", "QUINTA", "SEXTA"} {
		rec = a.do(http.MethodPut, "/api/settings", a.adminToken, gin.H{"submissionStartDay": "SEGUNDA", "submissionEndDay": end})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	var count int64
	a.db.Model(&models.Settings{}).Count(&count)
	assert.Equal(t, int64(1), count)

	rec = a.do(http.MethodGet, "/api/settings", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"submissionEndDay":"SEXTA"`)

	rec = a.do(http.MethodPut, "/api/settings", a.adminToken, gin.H{"submissionStartDay": "MONDAY", "submissionEndDay": "SEXTA"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "submissionStartDay", decode[errorResp](t, rec).Issues[0].Field)
}

// ==================== Users ====================

func TestUsers(t *testing.T) {
	a := newApp(t)

	rec := a.do(http.MethodGet, "/api/users", a.supervisorToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodGet, "/api/users", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
	assert.NotContains(t, rec.Body.String(), "$2a$")

	newUser := gin.H{"name": "Novo", "loginIdentifier": "novo.enc", "password": "segredo1", "role": "ENCARREGADO"}
	rec = a.do(http.MethodPost, "/api/users", a.adminToken, newUser)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}](t, rec)

	rec = a.do(http.MethodPost, "/api/users", a.adminToken, newUser)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "login_already_exists", decode[errorResp](t, rec).Code)

	rec = a.do(http.MethodPost, "/api/users", a.adminToken, gin.H{"name": "X", "loginIdentifier": "x", "password": "1", "role": "CHEFE"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode[errorResp](t, rec).Issues, 3)

	rec = a.do(http.MethodPatch, "/api/users/"+itoa(created.User.ID), a.adminToken, gin.H{"active": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"active":false`)

	rec = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"loginIdentifier": "novo.enc", "password": "segredo1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodGet, "/api/users?role=ENCARREGADO&active=true", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

// ==================== Audit ====================

func TestAuditLog(t *testing.T) {
	a := newApp(t)

	sat := nextSaturday()
	rec := a.do(http.MethodPost, "/api/requests", a.supervisorToken, swapBody(sat, sat.AddDate(0, 0, 1)))
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = a.do(http.MethodPut, "/api/settings", a.adminToken, gin.H{"submissionStartDay": "DOMINGO", "submissionEndDay": "SABADO"})
	require.Equal(t, http.StatusOK, rec.Code)

	a.flushAudit()

	type auditResp struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalCount int64 `json:"totalCount"`
		Logs       []struct {
			Action              string  `json:"action"`
			UserLoginIdentifier string  `json:"userLoginIdentifier"`
			TargetResourceType  *string `json:"targetResourceType"`
			Details             *string `json:"details"`
		} `json:"logs"`
	}

	rec = a.do(http.MethodGet, "/api/audit", a.supervisorToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// two logins, one request, one settings update
	rec = a.do(http.MethodGet, "/api/audit", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[auditResp](t, rec)
	assert.Equal(t, int64(4), all.TotalCount)
	assert.Equal(t, 1, all.Page)
	assert.Equal(t, 50, all.Limit)

	rec = a.do(http.MethodGet, "/api/audit?action=swap_request_created", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[auditResp](t, rec)
	require.Equal(t, int64(1), created.TotalCount)
	assert.Equal(t, "enc", created.Logs[0].UserLoginIdentifier)
	require.NotNil(t, created.Logs[0].Details)
	assert.Contains(t, *created.Logs[0].Details, `"eventType":"TROCA"`)

	rec = a.do(http.MethodGet, "/api/audit?sortBy=action&order=asc&limit=1&page=2", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	paged := decode[auditResp](t, rec)
	assert.Equal(t, int64(4), paged.TotalCount)
	require.Len(t, paged.Logs, 1)
	assert.Equal(t, "swap_request_created", paged.Logs[0].Action)

	rec = a.do(http.MethodGet, "/api/audit?page=9223372036854775807&limit=200", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	far := decode[auditResp](t, rec)
	assert.Equal(t, math.MaxInt32/200+1, far.Page)
	assert.Equal(t, int64(4), far.TotalCount)
	assert.Empty(t, far.Logs)

	rec = a.do(http.MethodGet, "/api/audit?q=SABADO", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[auditResp](t, rec).TotalCount)

	rec = a.do(http.MethodGet, "/api/audit?targetResourceType=user", a.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), decode[auditResp](t, rec).TotalCount)

	rec = a.do(http.MethodGet, "/api/audit?sortBy=bogus&from=ontem", a.adminToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode[errorResp](t, rec).Issues, 2)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
