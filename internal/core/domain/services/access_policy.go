package services

import (
	"orders/internal/core/domain/model/kernel"
)

// Elevated roles may act on orders they do not own, subject to
// per-operation policy. The role model is intentionally not unified across
// operations: the generic status update performs its own elevated-or-owner
// check, cancel consults this policy, and return requests are owner-only
// with no role bypass.
const (
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
	RoleStaff  = "STAFF"
)

// AccessPolicy is a pure domain service deciding whether a caller may
// access an order. It has no side effects and no dependencies.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanAccess reports whether the caller may access an order owned by
// ownerID: true when the caller is the owner, or when the caller holds at
// least one elevated role.
func (AccessPolicy) CanAccess(callerID, ownerID kernel.UUID, roles []string) bool {
	if callerID.IsEqual(ownerID) {
		return true
	}
	return HasElevatedRole(roles)
}

// HasElevatedRole reports whether the role set intersects
// {ADMIN, SELLER, STAFF}.
func HasElevatedRole(roles []string) bool {
	for _, role := range roles {
		switch role {
		case RoleAdmin, RoleSeller, RoleStaff:
			return true
		}
	}
	return false
}
