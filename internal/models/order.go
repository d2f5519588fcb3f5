package models

import "time"

// ServiceOrder is one "OS" (ordem de serviço): a unit of client work tracked
// by the user who created it. Column and table names keep the original
// Portuguese schema.
type ServiceOrder struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID      uint   `gorm:"column:user_id;not null;index"`
	Client      string `gorm:"column:cliente;size:255;not null"`
	Technician  string `gorm:"column:tecnico;size:255;not null"`
	Description string `gorm:"column:descricao;type:text;not null"`
	Value       string `gorm:"column:valor;size:50;not null"` // free text, not validated as numeric
	Status      string `gorm:"column:status;size:50"`         // free text as well, e.g. "aberto", "concluído"
}

func (ServiceOrder) TableName() string { return "os" }
