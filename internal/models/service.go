package models

import "time"

type Service struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BarberService liga um barbeiro a um serviço com preço e duração próprios.
// A chave composta garante um único par (barbeiro, serviço).
type BarberService struct {
	BarberID  uint     `gorm:"primaryKey;autoIncrement:false" json:"barber_id"`
	Barber    *Barber  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber,omitempty"`
	ServiceID uint     `gorm:"primaryKey;autoIncrement:false" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	Price       float64 `gorm:"not null" json:"price"`
	DurationMin int     `gorm:"default:20" json:"duration_min"`
}
