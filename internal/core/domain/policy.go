package domain

// RoleSet is a set of roles holding a capability.
type RoleSet map[Role]struct{}

// Contains reports whether the role is in the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

func roles(rs ...Role) RoleSet {
	set := make(RoleSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

// TransactionPolicy describes who may create and who may approve one
// transaction type. A nil CanCreate set means the type is system-generated
// and never created through the API.
type TransactionPolicy struct {
	CanCreate   RoleSet
	CanApprove  RoleSet
	AutoApprove RoleSet // Creator roles whose transactions skip the approval step
}

// transactionPolicies is the single capability table for transaction
// creation and approval. Looked up once per operation instead of re-deriving
// role rules in each code path.
var transactionPolicies = map[TransactionType]TransactionPolicy{
	PurchaseBBM: {
		CanCreate:  roles(RoleOwner, RoleAdministrator),
		CanApprove: roles(RoleManager, RoleAdministrator),
	},
	Cash: {
		CanCreate:  roles(RoleFinance, RoleAdministrator),
		CanApprove: roles(RoleManager, RoleAdministrator),
	},
	Adjustment: {
		CanCreate:   roles(RoleManager, RoleFinance, RoleAdministrator),
		CanApprove:  roles(RoleManager, RoleAdministrator),
		AutoApprove: roles(RoleAdministrator),
	},
	Closing: {
		// System-generated by the closing engine, already APPROVED at birth.
	},
}

// PolicyFor returns the capability entry for a transaction type. The second
// return value is false for unknown types.
func PolicyFor(t TransactionType) (TransactionPolicy, bool) {
	p, ok := transactionPolicies[t]
	return p, ok
}

// CanCreateTransaction reports whether the role may create the given type.
func CanCreateTransaction(t TransactionType, r Role) bool {
	p, ok := transactionPolicies[t]
	if !ok {
		return false
	}
	return p.CanCreate.Contains(r)
}

// CanApproveTransaction reports whether the role may approve or reject the
// given type.
func CanApproveTransaction(t TransactionType, r Role) bool {
	p, ok := transactionPolicies[t]
	if !ok {
		return false
	}
	return p.CanApprove.Contains(r)
}

// IsAutoApproved reports whether a transaction of this type created by the
// given role skips the human approval step.
func IsAutoApproved(t TransactionType, r Role) bool {
	p, ok := transactionPolicies[t]
	if !ok {
		return false
	}
	return p.AutoApprove.Contains(r)
}
