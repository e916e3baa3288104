package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/escala-trocas/internal/httpresp"
	ucSettings "github.com/BruksfildServices01/escala-trocas/internal/usecase/settings"
)

type SettingsHandler struct {
	getUC    *ucSettings.GetSettings
	upsertUC *ucSettings.UpsertSettings
	windowUC *ucSettings.WindowStatus
	log      *zap.Logger
}

func NewSettingsHandler(
	getUC *ucSettings.GetSettings,
	upsertUC *ucSettings.UpsertSettings,
	windowUC *ucSettings.WindowStatus,
	log *zap.Logger,
) *SettingsHandler {
	return &SettingsHandler{getUC: getUC, upsertUC: upsertUC, windowUC: windowUC, log: log}
}

type UpsertSettingsRequest struct {
	SubmissionStartDay string `json:"submissionStartDay" binding:"required,weekday"`
	SubmissionEndDay   string `json:"submissionEndDay" binding:"required,weekday"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"settings": s})
}

// Put replaces the singleton settings row; concurrent writers are
// last-write-wins.
func (h *SettingsHandler) Put(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req UpsertSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	s, err := h.upsertUC.Execute(c.Request.Context(), ucSettings.UpsertSettingsInput{
		Actor:              actor,
		SubmissionStartDay: req.SubmissionStartDay,
		SubmissionEndDay:   req.SubmissionEndDay,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"settings": s})
}

func (h *SettingsHandler) Window(c *gin.Context) {
	st, err := h.windowUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, st)
}
