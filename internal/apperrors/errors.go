package apperrors

import (
	"errors"
	"fmt"
)

// Generic sentinel errors shared by all services and repositories.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller lacks the capability for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates the operation is no longer valid given current state.
	ErrConflict = errors.New("state conflict")

	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = errors.New("internal error")
)

// Domain-specific errors. State-conflict errors wrap ErrConflict so handlers
// can map them in one place; authorization errors wrap ErrForbidden;
// invariant violations wrap ErrValidation when caused by input and stand
// alone when they indicate an upstream bug.
var (
	// ErrUnbalancedJournal indicates the debit and credit sums of a journal differ.
	ErrUnbalancedJournal = errors.New("journal entries do not balance: sum of debits must equal sum of credits")

	// ErrInvalidCOASpec indicates a new-COA specification is missing its name or category.
	ErrInvalidCOASpec = fmt.Errorf("%w: new COA requires name and category", ErrValidation)

	// ErrAlreadyFinalized indicates the transaction already left PENDING.
	ErrAlreadyFinalized = fmt.Errorf("%w: transaction is already finalized", ErrConflict)

	// ErrSelfApproval indicates the approver is the creator of the transaction.
	ErrSelfApproval = fmt.Errorf("%w: transactions cannot be approved by their creator", ErrConflict)

	// ErrUnauthorizedApprover indicates the role lacks the approval capability for the type.
	ErrUnauthorizedApprover = fmt.Errorf("%w: role is not allowed to approve this transaction type", ErrForbidden)

	// ErrPurchaseNotApproved indicates an unload references a transaction that is not an approved PURCHASE_BBM.
	ErrPurchaseNotApproved = fmt.Errorf("%w: referenced purchase transaction is not an approved PURCHASE_BBM", ErrConflict)

	// ErrProductMismatch indicates the receiving tank stores a different product than the purchase.
	ErrProductMismatch = fmt.Errorf("%w: tank product does not match purchase product", ErrValidation)

	// ErrOverDelivery indicates approving or requesting the unload would exceed the purchased volume.
	ErrOverDelivery = fmt.Errorf("%w: delivered volume would exceed purchased volume", ErrConflict)

	// ErrAlreadyClosed indicates the accounting period already has an approved closing.
	ErrAlreadyClosed = fmt.Errorf("%w: period is already closed", ErrConflict)

	// ErrImmutableCategory indicates an attempt to change the category of a COA that journal entries reference.
	ErrImmutableCategory = fmt.Errorf("%w: COA category is immutable once journal entries reference it", ErrConflict)
)

// AppError carries an HTTP-like status code alongside a message and the
// wrapped cause. Repositories use it for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}
