package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/escala-trocas/internal/dto"
)

// SchemaHandler publishes the enums and validation rules the server
// enforces, so client-side forms validate the same way.
type SchemaHandler struct {
	schema dto.SchemaDTO
}

func NewSchemaHandler(tz string) *SchemaHandler {
	return &SchemaHandler{schema: dto.NewSchema(tz)}
}

func (h *SchemaHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.schema)
}
