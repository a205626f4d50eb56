package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID identifies the caller that owns an evaluation.
type UserID uuid.UUID

// EvaluationID uniquely identifies an evaluation.
type EvaluationID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id EvaluationID) String() string { return uuid.UUID(id).String() }

// Operation names the drill an evaluation runs.
type Operation string

const (
	// OperationHalving halves Value until it is at or below ten.
	OperationHalving Operation = "HALVING"
	// OperationExponentiation computes Base^(Exponent^Repeat).
	OperationExponentiation Operation = "EXPONENTIATION"
)

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	return o == OperationHalving || o == OperationExponentiation
}

// EvaluationStatus is the lifecycle state of an evaluation.
type EvaluationStatus string

const (
	// EvaluationStatusPending means the evaluation is queued for the worker.
	EvaluationStatusPending EvaluationStatus = "PENDING"
	// EvaluationStatusCompleted means Result holds the answer.
	EvaluationStatusCompleted EvaluationStatus = "COMPLETED"
	// EvaluationStatusFailed means the input could not be evaluated; see LastError.
	EvaluationStatusFailed EvaluationStatus = "FAILED"
)

// EvaluationInput holds the operands of a drill. Only the fields relevant to
// Operation are read.
type EvaluationInput struct {
	Operation Operation `json:"operation"`

	// Value is the halving operand.
	Value float64 `json:"value,omitempty"`

	// Base, Exponent and Repeat are the exponentiation operands.
	Base     float64 `json:"base,omitempty"`
	Exponent float64 `json:"exponent,omitempty"`
	Repeat   uint    `json:"repeat,omitempty"`
	// Exact requests an arbitrary precision result when Base and Exponent are integers.
	Exact bool `json:"exact,omitempty"`
}

// EvaluationResult is the answer to an evaluation.
type EvaluationResult struct {
	// Value is the float64 answer.
	Value float64 `json:"value"`
	// Exact is the decimal form of the exact integer answer, when requested and available.
	Exact string `json:"exact,omitempty"`
	// ValueOverflow is set when Value overflowed float64 and only Exact holds the answer.
	ValueOverflow bool `json:"valueOverflow,omitempty"`
	// Steps is the number of halvings applied; zero for exponentiation.
	Steps int `json:"steps,omitempty"`
}

// Evaluation is a single drill evaluation requested by a user.
type Evaluation struct {
	ID     EvaluationID `json:"id"`
	UserID UserID       `json:"userId"`

	Input  EvaluationInput  `json:"input"`
	Status EvaluationStatus `json:"status"`
	Result EvaluationResult `json:"result"`

	// Attempts counts how many times the worker processed this evaluation.
	Attempts  uint   `json:"attempts"`
	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// Valid reports whether s is a known status.
func (s EvaluationStatus) Valid() bool {
	switch s {
	case EvaluationStatusPending, EvaluationStatusCompleted, EvaluationStatusFailed:
		return true
	default:
		return false
	}
}
