package leave

// CreateLeaveRequest carries no binding tags: the service collects every
// rule violation into one ordered list instead of failing on the first.
type CreateLeaveRequest struct {
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
}

// UpdateLeaveRequest deliberately re-checks only the dates and the status
// value; the edit form is always rendered from an existing valid record, so
// the remaining fields are trusted as-is.
type UpdateLeaveRequest struct {
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	Reason       string `json:"reason"`
	Status       string `json:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
}

type LeaveResponse struct {
	ID           uint   `json:"id"`
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}
