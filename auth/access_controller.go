package auth

import (
	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
)

var _ mvc.Authorizer = &AccessController{}

// AccessController enforces role-based capability checks for every
// configuration-mutating entry point. Roles are disjoint: the guardian
// can halt donations but cannot redirect funds, and the donation manager
// cannot toggle the kill-switch. Role membership is read once from
// external configuration; the controller does not manage its lifecycle.
type AccessController struct {
	members map[domain.Role]map[domain.Address]struct{}
}

// NewAccessController creates an access controller from the configured
// role membership lists.
func NewAccessController(donationManagers, guardians []string) *AccessController {
	members := map[domain.Role]map[domain.Address]struct{}{
		domain.RoleDonationManager: make(map[domain.Address]struct{}, len(donationManagers)),
		domain.RoleGuardian:        make(map[domain.Address]struct{}, len(guardians)),
	}

	for _, manager := range donationManagers {
		members[domain.RoleDonationManager][domain.Address(manager)] = struct{}{}
	}
	for _, guardian := range guardians {
		members[domain.RoleGuardian][domain.Address(guardian)] = struct{}{}
	}

	return &AccessController{
		members: members,
	}
}

// Authorize implements mvc.Authorizer. Pure membership check.
func (c *AccessController) Authorize(caller domain.Address, requiredRole domain.Role) bool {
	roleMembers, ok := c.members[requiredRole]
	if !ok {
		return false
	}

	_, ok = roleMembers[caller]
	return ok
}
