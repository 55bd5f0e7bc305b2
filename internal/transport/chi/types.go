package chi

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Error codes returned in ErrorResponse.
const (
	ErrorResponseCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorResponseCodeValidationFailed ErrorResponseCode = "validation_failed"
	ErrorResponseCodeUnauthorized     ErrorResponseCode = "unauthorized"
	ErrorResponseCodeUserNotFound     ErrorResponseCode = "user_not_found"
	ErrorResponseCodeNotFound         ErrorResponseCode = "not_found"
	ErrorResponseCodeAlreadyExists    ErrorResponseCode = "already_exists"
	ErrorResponseCodeQuotaExceeded    ErrorResponseCode = "quota_exceeded"
	ErrorResponseCodeInternalError    ErrorResponseCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// SuccessResponse acknowledges a command without a payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// UsageStatusResponse is the body of GET /ai-usage.
type UsageStatusResponse struct {
	IsPremium      bool `json:"isPremium"`
	Used           int  `json:"used"`
	Limit          int  `json:"limit"`
	Remaining      int  `json:"remaining"`
	CanSendMessage bool `json:"canSendMessage"`
}

// ChatMessage is one turn of the conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// AnalyticsResponse mirrors analytics.Analytics with float amounts.
type AnalyticsResponse struct {
	TotalExpenses     float64            `json:"totalExpenses"`
	ThisMonthExpenses float64            `json:"thisMonthExpenses"`
	TransactionCount  int                `json:"transactionCount"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
	MonthlySpending   map[string]float64 `json:"monthlySpending"`
	SavingsGoals      int                `json:"savingsGoals"`
}

// ReportResponse is the body of POST /generate-report.
type ReportResponse struct {
	Report    string            `json:"report"`
	Analytics AnalyticsResponse `json:"analytics"`
}

// ExpenseRequest is the body of POST /expenses and PUT /expenses/{id}.
// Amounts accept JSON numbers or numeric strings.
type ExpenseRequest struct {
	Amount   *decimal.Decimal    `json:"amount"`
	Category string              `json:"category"`
	Date     *openapi_types.Date `json:"date"`
	Notes    *string             `json:"notes,omitempty"`
}

// Expense is the wire form of an expense.
type Expense struct {
	Id        openapi_types.UUID `json:"id"`
	UserId    string             `json:"userId"`
	Amount    float64            `json:"amount"`
	Category  string             `json:"category"`
	Date      openapi_types.Date `json:"date"`
	Notes     *string            `json:"notes,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// SavingsGoalRequest is the body of POST /savings-goals.
type SavingsGoalRequest struct {
	Title         string              `json:"title"`
	TargetAmount  *decimal.Decimal    `json:"targetAmount"`
	CurrentAmount *decimal.Decimal    `json:"currentAmount,omitempty"`
	TargetDate    *openapi_types.Date `json:"targetDate,omitempty"`
}

// SavingsGoal is the wire form of a savings goal.
type SavingsGoal struct {
	Id            openapi_types.UUID  `json:"id"`
	UserId        string              `json:"userId"`
	Title         string              `json:"title"`
	TargetAmount  float64             `json:"targetAmount"`
	CurrentAmount float64             `json:"currentAmount"`
	TargetDate    *openapi_types.Date `json:"targetDate,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
