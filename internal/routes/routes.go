package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	"github.com/BruksfildServices01/escala-trocas/internal/auth"
	"github.com/BruksfildServices01/escala-trocas/internal/config"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/handlers"
	infraRepo "github.com/BruksfildServices01/escala-trocas/internal/infra/repository"
	"github.com/BruksfildServices01/escala-trocas/internal/metrics"
	"github.com/BruksfildServices01/escala-trocas/internal/middleware"
	ucSettings "github.com/BruksfildServices01/escala-trocas/internal/usecase/settings"
	ucSwap "github.com/BruksfildServices01/escala-trocas/internal/usecase/swaprequest"
	ucUser "github.com/BruksfildServices01/escala-trocas/internal/usecase/user"
	"github.com/BruksfildServices01/escala-trocas/internal/validators"
)

var (
	adminOnly      = []user.Role{user.RoleAdministrador}
	supervisorOnly = []user.Role{user.RoleEncarregado}
	staff          = []user.Role{user.RoleEncarregado, user.RoleAdministrador}
)

// Capabilities is the single place where route access is declared, keyed
// by "METHOD /path". Authenticated routes missing from it are open to any
// logged-in user.
var Capabilities = map[string][]user.Role{
	"POST /api/requests":             supervisorOnly,
	"GET /api/requests":              staff,
	"GET /api/requests/:id":          staff,
	"PATCH /api/requests/:id/status": adminOnly,

	"GET /api/settings": adminOnly,
	"PUT /api/settings": adminOnly,

	"GET /api/users":       adminOnly,
	"POST /api/users":      adminOnly,
	"PATCH /api/users/:id": adminOnly,
	"GET /api/audit":       adminOnly,
}

// Deps are the long-lived collaborators owned by main.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Tokens  *auth.TokenManager
	Audit   *audit.Dispatcher
	Metrics *metrics.Metrics
	// SettingsCache may be nil.
	SettingsCache ucSettings.Cache
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	if err := validators.Register(); err != nil {
		return err
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins),
	)
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// INFRA
	// ======================================================
	swapRepo := infraRepo.NewSwapRequestGormRepository(d.DB)
	settingsRepo := infraRepo.NewSettingsGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	getSettingsUC := ucSettings.NewGetSettings(settingsRepo, d.SettingsCache)
	upsertSettingsUC := ucSettings.NewUpsertSettings(settingsRepo, d.SettingsCache, d.Audit)
	windowUC := ucSettings.NewWindowStatus(getSettingsUC, d.Config.Timezone)

	createSwapUC := ucSwap.NewCreateSwapRequest(swapRepo, windowUC, d.Audit, d.Config.Timezone)
	listSwapUC := ucSwap.NewListSwapRequests(swapRepo)
	getSwapUC := ucSwap.NewGetSwapRequest(swapRepo)
	updateStatusUC := ucSwap.NewUpdateSwapRequestStatus(swapRepo, d.Audit)

	loginUC := ucUser.NewLogin(userRepo, d.Tokens, d.Audit)
	meUC := ucUser.NewGetCurrentUser(userRepo)
	listUsersUC := ucUser.NewListUsers(userRepo)
	createUserUC := ucUser.NewCreateUser(userRepo, d.Audit)
	updateUserUC := ucUser.NewUpdateUser(userRepo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.DB, d.Log)
	schemaHandler := handlers.NewSchemaHandler(d.Config.Timezone)
	authHandler := handlers.NewAuthHandler(loginUC, meUC, d.Metrics, d.Log)
	swapHandler := handlers.NewSwapRequestHandler(createSwapUC, listSwapUC, getSwapUC, updateStatusUC, d.Metrics, d.Log)
	settingsHandler := handlers.NewSettingsHandler(getSettingsUC, upsertSettingsUC, windowUC, d.Log)
	usersHandler := handlers.NewUsersHandler(listUsersUC, createUserUC, updateUserUC, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Log)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	api := r.Group("/api")
	api.GET("/schema", schemaHandler.Get)
	api.POST("/auth/login", authHandler.Login)

	// ======================================================
	// SECURED
	// ======================================================
	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(d.Tokens, userRepo))

	handle := func(method, path string, h gin.HandlerFunc) {
		chain := []gin.HandlerFunc{}
		if roles, ok := Capabilities[method+" /api"+path]; ok {
			chain = append(chain, middleware.RequireRole(roles...))
		}
		secured.Handle(method, path, append(chain, h)...)
	}

	handle(http.MethodGet, "/auth/me", authHandler.Me)

	handle(http.MethodPost, "/requests", swapHandler.Create)
	handle(http.MethodGet, "/requests", swapHandler.List)
	handle(http.MethodGet, "/requests/:id", swapHandler.Get)
	handle(http.MethodPatch, "/requests/:id/status", swapHandler.UpdateStatus)

	handle(http.MethodGet, "/settings", settingsHandler.Get)
	handle(http.MethodPut, "/settings", settingsHandler.Put)
	handle(http.MethodGet, "/settings/window", settingsHandler.Window)

	handle(http.MethodGet, "/users", usersHandler.List)
	handle(http.MethodPost, "/users", usersHandler.Create)
	handle(http.MethodPatch, "/users/:id", usersHandler.Update)

	handle(http.MethodGet, "/audit", auditLogsHandler.List)

	return nil
}
