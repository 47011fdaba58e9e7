package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaelsantos7520/dermalise-admin/internal/cache"
	"github.com/rafaelsantos7520/dermalise-admin/internal/dto"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
	"github.com/rafaelsantos7520/dermalise-admin/internal/timezone"
)

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.StatsCache
	tz    string
}

func NewDashboardHandler(db *gorm.DB, statsCache *cache.StatsCache, tz string) *DashboardHandler {
	return &DashboardHandler{
		db:    db,
		cache: statsCache,
		tz:    tz,
	}
}

// ======================================================
// STATS
// ======================================================

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	startOfDay, endOfDay := timezone.DayBounds(time.Now(), h.tz)

	var stats dto.DashboardStatsDTO

	if err := h.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date_time >= ? AND date_time < ?", startOfDay, endOfDay).
		Count(&stats.AppointmentsToday).Error; err != nil {

		httperr.Internal(c, "failed_to_load_stats", "Erro ao buscar estatísticas.")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&stats.TotalClients).Error; err != nil {

		httperr.Internal(c, "failed_to_load_stats", "Erro ao buscar estatísticas.")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("active = ?", true).
		Count(&stats.TotalProfessionals).Error; err != nil {

		httperr.Internal(c, "failed_to_load_stats", "Erro ao buscar estatísticas.")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&models.Procedure{}).
		Where("active = ?", true).
		Count(&stats.TotalProcedures).Error; err != nil {

		httperr.Internal(c, "failed_to_load_stats", "Erro ao buscar estatísticas.")
		return
	}

	h.cache.Set(ctx, &stats)

	c.JSON(http.StatusOK, stats)
}
