package auth_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/suite"

	"github.com/givepool/donation-interceptor/auth"
	"github.com/givepool/donation-interceptor/domain"
)

type AccessControllerTestSuite struct {
	suite.Suite
	controller *auth.AccessController
}

const (
	managerAddress  = domain.Address("manager1")
	guardianAddress = domain.Address("guardian1")
	randomAddress   = domain.Address("random1")
)

func TestAccessControllerTestSuite(t *testing.T) {
	suite.Run(t, new(AccessControllerTestSuite))
}

func (suite *AccessControllerTestSuite) SetupTest() {
	suite.controller = auth.NewAccessController(
		[]string{string(managerAddress)},
		[]string{string(guardianAddress)},
	)
}

func (suite *AccessControllerTestSuite) TestAuthorize() {
	tests := []struct {
		name         string
		caller       domain.Address
		requiredRole domain.Role
		expected     bool
	}{
		{
			name:         "manager holds donation-manager role",
			caller:       managerAddress,
			requiredRole: domain.RoleDonationManager,
			expected:     true,
		},
		{
			name:         "guardian holds guardian role",
			caller:       guardianAddress,
			requiredRole: domain.RoleGuardian,
			expected:     true,
		},
		{
			name:         "guardian does not hold donation-manager role",
			caller:       guardianAddress,
			requiredRole: domain.RoleDonationManager,
			expected:     false,
		},
		{
			name:         "manager does not hold guardian role",
			caller:       managerAddress,
			requiredRole: domain.RoleGuardian,
			expected:     false,
		},
		{
			name:         "unknown caller holds no role",
			caller:       randomAddress,
			requiredRole: domain.RoleDonationManager,
			expected:     false,
		},
		{
			name:         "unknown role is never authorized",
			caller:       managerAddress,
			requiredRole: domain.Role("auditor"),
			expected:     false,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			assert.Equal(suite.T(), tt.expected, suite.controller.Authorize(tt.caller, tt.requiredRole))
		})
	}
}
