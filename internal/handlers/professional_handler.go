package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Active    *bool  `json:"active"`
}

// ======================================================
// LIST
// ======================================================

func (h *ProfessionalHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Order("created_at DESC")

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var professionals []models.Professional
	if err := q.Find(&professionals).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao buscar profissionais.")
		return
	}

	c.JSON(http.StatusOK, professionals)
}

// ======================================================
// CREATE
// ======================================================

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		httperr.BadRequest(c, "missing_required_fields", "Name, email and phone are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Professional{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already registered")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	professional := models.Professional{
		Name:      req.Name,
		Email:     email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Active:    active,
	}

	if err := h.db.Create(&professional).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	c.JSON(http.StatusCreated, professional)
}

// ======================================================
// GET
// ======================================================

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var professional models.Professional
	if err := h.db.First(&professional, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional.")
		return
	}

	c.JSON(http.StatusOK, professional)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var professional models.Professional
	if err := h.db.First(&professional, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional.")
		return
	}

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Specialty == "" {
		httperr.BadRequest(c, "missing_required_fields", "Nome, email, telefone e especialidade são obrigatórios.")
		return
	}

	professional.Name = req.Name
	professional.Email = strings.ToLower(strings.TrimSpace(req.Email))
	professional.Phone = req.Phone
	professional.Specialty = req.Specialty
	professional.Active = true
	if req.Active != nil {
		professional.Active = *req.Active
	}

	if err := h.db.Save(&professional).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	c.JSON(http.StatusOK, professional)
}

// ======================================================
// DELETE
// ======================================================

// Sem guarda de agendamentos, igual à exclusão de cliente
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var professional models.Professional
	if err := h.db.First(&professional, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional.")
		return
	}

	if err := h.db.Delete(&professional).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao excluir profissional.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profissional excluído com sucesso"})
}
