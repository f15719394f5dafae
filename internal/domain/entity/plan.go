package entity

import "time"

// PlanType clasifica los planos (arquitectónico, estructural, eléctrico...).
type PlanType struct {
	ID          string
	Name        string
	Description string
}

// Plan representa los metadatos de un plano subido para un proyecto.
// El archivo en sí vive en el almacenamiento externo; aquí solo se guarda
// el nombre con que quedó registrado.
type Plan struct {
	ID         string
	ProjectID  string
	TypeID     string
	UploadedBy string // usuario que subió el plano
	Name       string
	FileName   string
	UploadedAt time.Time
}
