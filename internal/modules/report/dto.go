package report

type CreateReportRequest struct {
	ReportType    string  `json:"report_type" validate:"required,notblank,max=50"`
	Subject       string  `json:"subject" validate:"required,notblank"`
	Description   string  `json:"description" validate:"required"`
	EquipmentID   *int64  `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
	ReservationID *int64  `json:"reservation_id,omitempty" validate:"omitempty,gt=0"`
	Priority      *string `json:"priority,omitempty"`
}

type UpdateReportRequest struct {
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
}
