package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint         `gorm:"index:idx_appointments_prof_time" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ProcedureID uint      `json:"procedure_id"`
	Procedure   Procedure `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"procedure"`

	// Horário único do atendimento; não existe hora de término
	DateTime time.Time `gorm:"index:idx_appointments_prof_time" json:"date_time"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	Notes *string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
