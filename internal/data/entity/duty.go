package entity

import (
	"time"

	"github.com/google/uuid"
)

// Duty is a task an admin assigns to one staff member.
type Duty struct {
	Base
	StaffID     uuid.UUID `db:"staff_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
	Completed   bool      `db:"completed"`
	AssignedAt  time.Time `db:"assigned_at"`
}
