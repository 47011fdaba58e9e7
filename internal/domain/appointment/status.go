package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCanceled   Status = "CANCELED"
	StatusNoShow     Status = "NO_SHOW"
)

// ===============================
// Validations
// ===============================

var validStatuses = map[Status]struct{}{
	StatusScheduled:  {},
	StatusConfirmed:  {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusCanceled:   {},
	StatusNoShow:     {},
}

// IsValid aceita qualquer um dos seis status; não há grafo de transições,
// qualquer status pode virar qualquer outro.
func IsValid(s Status) bool {
	_, ok := validStatuses[s]
	return ok
}

func InitialStatus() Status {
	return StatusScheduled
}
