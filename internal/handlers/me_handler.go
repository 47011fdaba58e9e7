package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaelsantos7520/dermalise-admin/internal/middleware"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	adminIDVal, exists := c.Get(middleware.ContextAdminID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin_not_in_context"})
		return
	}

	adminID, ok := adminIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_admin_id_type"})
		return
	}

	var admin models.Admin
	if err := h.db.First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "admin_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}
