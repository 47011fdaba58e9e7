package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

type ProcedureHandler struct {
	db *gorm.DB
}

func NewProcedureHandler(db *gorm.DB) *ProcedureHandler {
	return &ProcedureHandler{db: db}
}

// --------- Requests ---------

type CreateProcedureRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      *bool   `json:"active"`
}

// ======================================================
// LIST
// ======================================================

func (h *ProcedureHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Order("created_at DESC")

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var procedures []models.Procedure
	if err := q.Find(&procedures).Error; err != nil {
		httperr.Internal(c, "failed_to_list_procedures", "Erro ao buscar procedimentos.")
		return
	}

	c.JSON(http.StatusOK, procedures)
}

// ======================================================
// CREATE
// ======================================================

func (h *ProcedureHandler) Create(c *gin.Context) {
	var req CreateProcedureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	name := strings.TrimSpace(req.Name)

	if name == "" || req.DurationMin == 0 || req.Price == 0 {
		httperr.BadRequest(c, "missing_required_fields", "Name, duration and price are required")
		return
	}

	if req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração deve ser maior que zero.")
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço deve ser maior ou igual a zero.")
		return
	}

	// Nome único entre todos os procedimentos, ativos ou não
	var count int64
	h.db.Model(&models.Procedure{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "duplicate_name", "Já existe um procedimento com este nome.")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	procedure := models.Procedure{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      active,
	}

	if err := h.db.Create(&procedure).Error; err != nil {
		httperr.Internal(c, "failed_to_create_procedure", "Erro ao criar procedimento.")
		return
	}

	c.JSON(http.StatusCreated, procedure)
}

// ======================================================
// GET
// ======================================================

func (h *ProcedureHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var procedure models.Procedure
	if err := h.db.First(&procedure, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "procedure_not_found", "Procedimento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_procedure", "Erro ao buscar procedimento.")
		return
	}

	c.JSON(http.StatusOK, procedure)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ProcedureHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var procedure models.Procedure
	if err := h.db.First(&procedure, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "procedure_not_found", "Procedimento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_procedure", "Erro ao buscar procedimento.")
		return
	}

	var req CreateProcedureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	name := strings.TrimSpace(req.Name)

	if name == "" {
		httperr.BadRequest(c, "missing_required_fields", "Nome é obrigatório.")
		return
	}

	if req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração deve ser maior que zero.")
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço deve ser maior ou igual a zero.")
		return
	}

	var count int64
	h.db.Model(&models.Procedure{}).
		Where("name = ? AND id <> ?", name, procedure.ID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "duplicate_name", "Já existe um procedimento com este nome.")
		return
	}

	procedure.Name = name
	procedure.Description = strings.TrimSpace(req.Description)
	procedure.DurationMin = req.DurationMin
	procedure.Price = req.Price
	procedure.Active = req.Active != nil && *req.Active

	if err := h.db.Save(&procedure).Error; err != nil {
		httperr.Internal(c, "failed_to_update_procedure", "Erro ao atualizar procedimento.")
		return
	}

	c.JSON(http.StatusOK, procedure)
}

// ======================================================
// DELETE
// ======================================================

func (h *ProcedureHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var procedure models.Procedure
	if err := h.db.First(&procedure, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "procedure_not_found", "Procedimento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_procedure", "Erro ao buscar procedimento.")
		return
	}

	// Bloqueado enquanto houver agendamentos vinculados
	var count int64
	if err := h.db.Model(&models.Appointment{}).
		Where("procedure_id = ?", procedure.ID).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_check_appointments", "Erro ao verificar agendamentos.")
		return
	}

	if count > 0 {
		httperr.BadRequest(c, "procedure_in_use", "Não é possível excluir procedimento com agendamentos vinculados.")
		return
	}

	if err := h.db.Delete(&procedure).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_procedure", "Erro ao excluir procedimento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Procedimento removido com sucesso"})
}
