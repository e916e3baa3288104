package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/escala-trocas/internal/dto"
	"github.com/BruksfildServices01/escala-trocas/internal/httpresp"
	"github.com/BruksfildServices01/escala-trocas/internal/metrics"
	ucUser "github.com/BruksfildServices01/escala-trocas/internal/usecase/user"
)

type AuthHandler struct {
	login   *ucUser.Login
	me      *ucUser.GetCurrentUser
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewAuthHandler(
	login *ucUser.Login,
	me *ucUser.GetCurrentUser,
	m *metrics.Metrics,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{login: login, me: me, metrics: m, log: log}
}

// --------- Requests ---------

type LoginRequest struct {
	LoginIdentifier string `json:"loginIdentifier" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucUser.LoginInput{
		LoginIdentifier: req.LoginIdentifier,
		Password:        req.Password,
	})
	if h.metrics != nil {
		h.metrics.Login(err == nil)
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"token": out.Token,
		"user":  dto.FromUser(out.User),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	u, err := h.me.Execute(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"user": dto.FromUser(u)})
}
