package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/dto"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/httpresp"
	ucUser "github.com/BruksfildServices01/escala-trocas/internal/usecase/user"
)

type UsersHandler struct {
	listUC   *ucUser.ListUsers
	createUC *ucUser.CreateUser
	updateUC *ucUser.UpdateUser
	log      *zap.Logger
}

func NewUsersHandler(
	listUC *ucUser.ListUsers,
	createUC *ucUser.CreateUser,
	updateUC *ucUser.UpdateUser,
	log *zap.Logger,
) *UsersHandler {
	return &UsersHandler{listUC: listUC, createUC: createUC, updateUC: updateUC, log: log}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	LoginIdentifier string `json:"loginIdentifier" binding:"required,login_identifier"`
	Password        string `json:"password" binding:"required,min=6"`
	Role            string `json:"role" binding:"required,user_role"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Role     *string `json:"role" binding:"omitempty,user_role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// --------- Handlers ---------

func (h *UsersHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var f user.ListFilter
	ve := httperr.NewValidation()

	if v := c.Query("role"); v != "" {
		r := user.Role(strings.ToUpper(v))
		if r.Valid() {
			f.Role = &r
		} else {
			ve.Add("role", "Perfil inválido.")
		}
	}
	if v := c.Query("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			ve.Add("active", "Valor inválido.")
		}
		f.Active = &b
	}
	f.Query = c.Query("q")

	if ve.HasIssues() {
		httperr.Validation(c, ve)
		return
	}

	users, err := h.listUC.Execute(c.Request.Context(), actor, f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.List(c, dto.FromUsers(users))
}

func (h *UsersHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.createUC.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Actor:           actor,
		Name:            req.Name,
		LoginIdentifier: req.LoginIdentifier,
		Password:        req.Password,
		Role:            req.Role,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": dto.FromUser(u)})
}

func (h *UsersHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.updateUC.Execute(c.Request.Context(), ucUser.UpdateUserInput{
		Actor:    actor,
		ID:       id,
		Name:     req.Name,
		Role:     req.Role,
		Active:   req.Active,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"user": dto.FromUser(u)})
}
