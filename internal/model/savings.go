package model

// Savings log entry types.
const (
	SavingsDeposit    = "deposit"
	SavingsWithdrawal = "withdrawal"
)

// SavingsGoal is a target amount the user is saving toward.
type SavingsGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Currency      string  `json:"currency"`
	Deadline      string  `json:"deadline,omitempty"`
	CreatedAt     int64   `json:"createdAt"`
}

// SavingsLog records a single deposit or withdrawal against a goal.
type SavingsLog struct {
	ID     string  `json:"id"`
	GoalID string  `json:"goalId"`
	Amount float64 `json:"amount"`

	// Date is the local date of the movement in DateLayout form.
	Date string `json:"date"`

	Type string `json:"type"`
	Note string `json:"note,omitempty"`
}

// Apply returns the goal balance after the log entry.
func (l SavingsLog) Apply(current float64) float64 {
	if l.Type == SavingsWithdrawal {
		return current - l.Amount
	}
	return current + l.Amount
}
