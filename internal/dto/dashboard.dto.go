package dto

type DashboardStatsDTO struct {
	AppointmentsToday  int64 `json:"appointmentsToday"`
	TotalClients       int64 `json:"totalClients"`
	TotalProfessionals int64 `json:"totalProfessionals"`
	TotalProcedures    int64 `json:"totalProcedures"`
}
