package provisionbus

import (
	"net/mail"

	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/password"
	"github.com/studygate/studygate/business/types/weburl"
)

// NewTenant contains everything needed to stand up a tenant: the site, its
// first admin, and the theme.
type NewTenant struct {
	SiteName  name.Name
	Domain    string
	OwnerName name.Null
	Email     mail.Address
	Password  password.Password
	Theme     clientbus.Theme
	LogoURL   weburl.Null
}

// Tenant is the result of a provisioning run. DeployStatus reports the
// best effort deployment trigger; the database rows exist either way.
type Tenant struct {
	Client       clientbus.Client
	Admin        adminbus.Admin
	DeployStatus DeployStatus
}

// The set of deploy statuses a provisioning run can end with.
var (
	DeployStatusDeployed = DeployStatus{"DEPLOYED"}
	DeployStatusFailed   = DeployStatus{"FAILED"}
)

// DeployStatus reports how the post commit deployment trigger went.
type DeployStatus struct {
	value string
}

// String returns the name of the status.
func (s DeployStatus) String() string {
	return s.value
}

// Equal provides support for the go-cmp package and testing.
func (s DeployStatus) Equal(s2 DeployStatus) bool {
	return s.value == s2.value
}

// MarshalText provides support for logging and any marshal needs.
func (s DeployStatus) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}
