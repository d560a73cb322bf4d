package request

type DutyRequest struct {
	StaffID     string `json:"staff_id" validate:"required,uuid4"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type DutyUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed,omitempty"`
}
