package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/middleware"
	"github.com/luzbrill/pos-terminal/pkg/utils"
)

// GetSession extracts the operator session from the Gin context
func GetSession(c *gin.Context) *entity.Session {
	return middleware.SessionFromContext(c)
}

// cartID parses the :id path parameter as a cart UUID
func cartID(c *gin.Context) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// lineIndex parses the :index path parameter
func lineIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// saleID parses a sale id path parameter
func saleID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
