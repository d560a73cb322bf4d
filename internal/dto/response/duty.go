package response

import (
	"time"

	"resort-booking/internal/data/entity"
)

type DutyResponse struct {
	ID          string    `json:"id"`
	StaffID     string    `json:"staff_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"due_date"`
	Completed   bool      `json:"completed"`
	AssignedAt  time.Time `json:"assigned_at"`
}

func DutyToResponse(duty *entity.Duty) DutyResponse {
	return DutyResponse{
		ID:          duty.ID.String(),
		StaffID:     duty.StaffID.String(),
		Title:       duty.Title,
		Description: duty.Description,
		DueDate:     duty.DueDate.Format("2006-01-02"),
		Completed:   duty.Completed,
		AssignedAt:  duty.AssignedAt,
	}
}
