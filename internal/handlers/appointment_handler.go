package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/middleware"
	ucAppointment "github.com/rafaelsantos7520/dermalise-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	changeStatusUC *ucAppointment.ChangeAppointmentStatus
	deleteUC       *ucAppointment.DeleteAppointment
	getUC          *ucAppointment.GetAppointment
	listUC         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	changeStatusUC *ucAppointment.ChangeAppointmentStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		changeStatusUC: changeStatusUC,
		deleteUC:       deleteUC,
		getUC:          getUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       uint      `json:"client_id"`
	ProfessionalID uint      `json:"professional_id"`
	ProcedureID    uint      `json:"procedure_id"`
	DateTime       time.Time `json:"date_time"`
	Notes          string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientID       uint      `json:"client_id"`
	ProfessionalID uint      `json:"professional_id"`
	ProcedureID    uint      `json:"procedure_id"`
	DateTime       time.Time `json:"date_time"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return 0, false
	}
	return uint(id), true
}

// mapeia os códigos de negócio do ciclo de vida para status + mensagem
func writeAppointmentError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	switch code {
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "missing_required_fields":
		httperr.BadRequest(c, code, "Cliente, profissional, procedimento e data/hora são obrigatórios.")
	case "invalid_client":
		httperr.BadRequest(c, code, "Cliente não encontrado.")
	case "invalid_professional":
		httperr.BadRequest(c, code, "Profissional não encontrado ou inativo.")
	case "invalid_procedure":
		httperr.BadRequest(c, code, "Procedimento não encontrado ou inativo.")
	case "scheduling_conflict":
		httperr.BadRequest(c, code, "Já existe um agendamento para este profissional neste horário.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Status inválido.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}

func adminID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextAdminID).(uint)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		AdminID:        adminID(c),
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ProcedureID:    req.ProcedureID,
		DateTime:       req.DateTime,
		Notes:          req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST  (?hoje=true → apenas os de hoje, em ordem crescente)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	hoje := c.Query("hoje") == "true"

	appointments, err := h.listUC.Execute(c.Request.Context(), hoje)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AdminID:        adminID(c),
		ID:             id,
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ProcedureID:    req.ProcedureID,
		DateTime:       req.DateTime,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CHANGE STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.changeStatusUC.Execute(c.Request.Context(), adminID(c), id, req.Status)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID(c), id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento removido com sucesso"})
}
