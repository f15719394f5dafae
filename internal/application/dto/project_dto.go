package dto

import "time"

// CreateProjectRequest alta de proyecto.
type CreateProjectRequest struct {
	ClientID    string     `json:"client_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"` // nil -> hoy
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// UpdateProjectRequest actualización parcial de proyecto.
type UpdateProjectRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"` // planificacion | en_progreso | completado | cancelado
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// ProjectResponse representación pública de un proyecto.
type ProjectResponse struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	ClientName  string     `json:"client_name,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
}

// ProjectListFilter filtros del listado de proyectos.
type ProjectListFilter struct {
	ClientID string `query:"client_id"`
	Status   string `query:"status"`
	PageRequest
}
