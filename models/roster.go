package models

// Field worker availability states shown on the workforce roster.
const (
	WorkerActive  = "active"
	WorkerOffline = "offline"
	WorkerOnBreak = "on-break"
)

// FieldWorker is one entry of the municipal workforce roster.
type FieldWorker struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Location string `json:"location"`
}
