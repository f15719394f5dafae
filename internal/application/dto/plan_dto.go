package dto

import "time"

// CreatePlanRequest registro de un plano asociado a un proyecto.
// El archivo vive en almacenamiento externo; aquí solo la referencia.
type CreatePlanRequest struct {
	ProjectID string `json:"project_id"`
	TypeID    string `json:"type_id"`
	Name      string `json:"name"`
	FileName  string `json:"file_name,omitempty"`
}

// PlanResponse representación pública de un plano.
type PlanResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	TypeID     string    `json:"type_id"`
	TypeName   string    `json:"type_name,omitempty"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	Name       string    `json:"name"`
	FileName   string    `json:"file_name,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// PlanTypeResponse tipo de plano del catálogo.
type PlanTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
