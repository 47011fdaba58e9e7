package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	DateTime         time.Time `json:"date_time"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	ProfessionalName string    `json:"professional_name"`
	ProcedureName    string    `json:"procedure_name"`
}

type AppointmentDetailDTO struct {
	ID               uint      `json:"id"`
	ClientID         uint      `json:"client_id"`
	ClientName       string    `json:"client_name"`
	ProfessionalID   uint      `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	ProcedureID      uint      `json:"procedure_id"`
	ProcedureName    string    `json:"procedure_name"`
	DateTime         time.Time `json:"date_time"`
	Status           string    `json:"status"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}
