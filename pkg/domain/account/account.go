package account

import (
	"time"

	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Messages of the account creation rules.
const (
	MsgInitialBalance = "Initial balance needs to bigger than Zero"
	MsgStatusDeleted  = "Account status can not be Deleted"
	MsgBalanceScale   = "Initial balance can not have more than 2 decimal places"
)

// Type is the product type of an account.
type Type string

const (
	TypeCheckings Type = "CHECKINGS"
	TypeSavings   Type = "SAVINGS"
)

// Valid reports whether t is a known account type.
func (t Type) Valid() bool {
	return t == TypeCheckings || t == TypeSavings
}

// Status is the lifecycle status of an account.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

// Valid reports whether s is a known account status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusDeleted
}

// Account is a customer account holding a decimal balance.
//
// Invariants:
//   - The balance is strictly positive when the account is built through Builder.
//   - CreationDate is set once and never changed.
//   - Deletion is soft: Status becomes DELETED and the record stays.
type Account struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Balance       decimal.Decimal
	AccountType   Type
	AccountStatus Status
	OtpVerified   bool
	PhoneNumber   string
	CreationDate  time.Time
}

// Builder provides a fluent API for constructing new Account instances.
type Builder struct {
	id          uuid.UUID
	userID      uuid.UUID
	balance     *decimal.Decimal
	accountType Type
	status      Status
	phoneNumber string
	createdAt   time.Time
}

// New creates a new Builder with a fresh id, an ACTIVE CHECKINGS account and the current time.
func New() *Builder {
	return &Builder{
		id:          uuid.New(),
		accountType: TypeCheckings,
		status:      StatusActive,
		createdAt:   time.Now().UTC(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithUserID sets the owning user.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

// WithBalance sets the opening balance. A nil balance is rejected by Build.
func (b *Builder) WithBalance(balance *decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithType sets the account type; an empty type keeps the CHECKINGS default.
func (b *Builder) WithType(t Type) *Builder {
	if t != "" {
		b.accountType = t
	}
	return b
}

// WithStatus sets the requested status; an empty status keeps the ACTIVE default.
func (b *Builder) WithStatus(s Status) *Builder {
	if s != "" {
		b.status = s
	}
	return b
}

// WithPhoneNumber sets the OTP contact number.
func (b *Builder) WithPhoneNumber(phone string) *Builder {
	b.phoneNumber = phone
	return b
}

// WithCreatedAt overrides the creation timestamp.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the creation rules and returns an unverified account.
// The balance rule is checked before the status rule.
func (b *Builder) Build() (*Account, error) {
	if b.balance == nil || !b.balance.IsPositive() {
		return nil, domain.NewError(domain.ErrBalanceInsufficient, MsgInitialBalance)
	}
	if exceedsScale(*b.balance) {
		return nil, domain.NewError(domain.ErrBalanceInsufficient, MsgBalanceScale)
	}
	if b.status == StatusDeleted {
		return nil, domain.NewError(domain.ErrAccountStatusInvalid, MsgStatusDeleted)
	}
	if !b.status.Valid() {
		return nil, domain.NewError(domain.ErrAccountStatusInvalid, "Account status is not valid")
	}
	if !b.accountType.Valid() {
		return nil, domain.NewError(domain.ErrBadRequest, "Account type is not valid")
	}
	return &Account{
		ID:            b.id,
		UserID:        b.userID,
		Balance:       *b.balance,
		AccountType:   b.accountType,
		AccountStatus: b.status,
		OtpVerified:   false,
		PhoneNumber:   b.phoneNumber,
		CreationDate:  b.createdAt,
	}, nil
}

// NewAccountFromData hydrates an Account without running the creation rules.
// Use it for repository mapping and test fixtures only.
func NewAccountFromData(
	id, userID uuid.UUID,
	balance decimal.Decimal,
	accountType Type,
	status Status,
	otpVerified bool,
	phoneNumber string,
	created time.Time,
) *Account {
	return &Account{
		ID:            id,
		UserID:        userID,
		Balance:       balance,
		AccountType:   accountType,
		AccountStatus: status,
		OtpVerified:   otpVerified,
		PhoneNumber:   phoneNumber,
		CreationDate:  created,
	}
}

// IsDeleted reports whether the account was soft-deleted.
func (a *Account) IsDeleted() bool {
	return a.AccountStatus == StatusDeleted
}

// IsSavings reports whether the account is a SAVINGS account.
func (a *Account) IsSavings() bool {
	return a.AccountType == TypeSavings
}

// MarkDeleted soft-deletes the account.
func (a *Account) MarkDeleted() {
	a.AccountStatus = StatusDeleted
}

// MarkVerified records a successful OTP confirmation.
func (a *Account) MarkVerified() {
	a.OtpVerified = true
}
