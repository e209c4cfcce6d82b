package domain

import "time"

const (
	ReportPending   = "pending"
	DefaultPriority = "medium"
)

type Report struct {
	ID               int64     `json:"report_id" gorm:"column:report_id;primaryKey;autoIncrement"`
	ReporterUsername string    `json:"reporter_username" gorm:"column:reporter_username;size:255;index;not null"`
	ReportType       string    `json:"report_type" gorm:"column:report_type;size:50"`
	Subject          string    `json:"subject" gorm:"column:subject"`
	Description      string    `json:"description" gorm:"column:description;type:text"`
	EquipmentID      *int64    `json:"equipment_id,omitempty" gorm:"column:equipment_id"`
	ReservationID    *int64    `json:"reservation_id,omitempty" gorm:"column:reservation_id"`
	Status           string    `json:"status" gorm:"column:status;size:30;index"`
	Priority         string    `json:"priority" gorm:"column:priority;size:20"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Report) TableName() string { return "reports" }
