package models

import "time"

// Appointment é append-only. O índice único (barber_id, date, time_slot)
// é a garantia definitiva contra reserva dupla.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint    `gorm:"not null;uniqueIndex:idx_appointment_barber_date_slot,priority:1" json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber,omitempty"`

	ClientID uint    `gorm:"not null;index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	ServiceID uint     `gorm:"not null" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	ScheduleID uint            `gorm:"not null" json:"schedule_id"`
	Schedule   *BarberSchedule `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"schedule,omitempty"`

	// YYYY-MM-DD, sem fuso
	Date     string `gorm:"size:10;not null;uniqueIndex:idx_appointment_barber_date_slot,priority:2" json:"date"`
	TimeSlot string `gorm:"size:5;not null;uniqueIndex:idx_appointment_barber_date_slot,priority:3" json:"time_slot"`

	CreatedAt time.Time `json:"created_at"`
}
