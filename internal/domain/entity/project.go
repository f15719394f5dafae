package entity

import "time"

// Estados de un proyecto.
const (
	ProjectStatusPlanning   = "planificacion"
	ProjectStatusInProgress = "en_progreso"
	ProjectStatusCompleted  = "completado"
	ProjectStatusCancelled  = "cancelado"
)

// Project representa un proyecto de un cliente; agrupa los planos entregados.
type Project struct {
	ID          string
	ClientID    string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
}
