package models

// Fee statuses derived from paid vs total amount.
const (
	FeePaid    = "Paid"
	FeePartial = "Partial"
	FeePending = "Pending"
)

// Fee defines a row from the 'fees' table.
type Fee struct {
	ID          int64   `json:"id" db:"id"`
	StudentID   string  `json:"student_id" db:"student_id"`
	Semester    int     `json:"semester" db:"semester"`
	Amount      int     `json:"amount" db:"amount"`
	PaidAmount  int     `json:"paid_amount" db:"paid_amount"`
	DueDate     string  `json:"due_date" db:"due_date"`
	Status      string  `json:"status" db:"status"`
	PaymentDate *string `json:"payment_date" db:"payment_date"`
}

// FeeStatus derives the fee status from the paid and total amounts.
func FeeStatus(paid, total int) string {
	switch {
	case paid >= total:
		return FeePaid
	case paid > 0:
		return FeePartial
	default:
		return FeePending
	}
}
