package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/middleware"
	"github.com/BruksfildServices01/escala-trocas/internal/validators"
)

type businessMapping struct {
	status  int
	message string
}

var businessErrors = map[string]businessMapping{
	"forbidden_role":            {http.StatusForbidden, "Acesso não permitido para este perfil."},
	"invalid_credentials":       {http.StatusUnauthorized, "Login ou senha inválidos."},
	"invalid_session":           {http.StatusUnauthorized, "Sessão inválida. Entre novamente."},
	"submission_window_closed":  {http.StatusBadRequest, "Fora da janela semanal de envio de pedidos."},
	"invalid_status":            {http.StatusBadRequest, "Status inválido."},
	"invalid_status_transition": {http.StatusConflict, "O pedido já foi encerrado e não pode mudar de status."},
	"swap_request_not_found":    {http.StatusNotFound, "Pedido não encontrado."},
	"settings_not_found":        {http.StatusNotFound, "Configurações ainda não definidas."},
	"user_not_found":            {http.StatusNotFound, "Usuário não encontrado."},
	"login_already_exists":      {http.StatusConflict, "Já existe um usuário com este login."},
	"cannot_revoke_own_access":  {http.StatusBadRequest, "Você não pode desativar nem rebaixar o próprio usuário."},
}

// respondError writes the response for an error coming out of a use case.
// Anything not recognized is logged and answered with a generic 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve)
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		if m, known := businessErrors[code]; known {
			httperr.Write(c, m.status, code, m.message)
			return
		}
		httperr.BadRequest(c, code, "Operação não permitida.")
		return
	}

	_ = c.Error(err)
	log.Error("unexpected error",
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(middleware.ContextRequestID)),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Erro interno. Tente novamente mais tarde.")
}

func respondBindError(c *gin.Context, err error) {
	httperr.Validation(c, validators.FromBindError(err))
}

func currentActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Autenticação necessária.")
	}
	return actor, ok
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
