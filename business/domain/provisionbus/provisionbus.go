// Package provisionbus orchestrates standing up a new tenant: the client
// row, its default site settings, the first admin, and seeded contact info
// all commit in one database transaction, then the deployment provider is
// triggered best effort. A failed trigger never rolls the tenant back.
package provisionbus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
	"github.com/studygate/studygate/foundation/otel"
)

// Set of error variables for provisioning.
var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrDomainTaken  = errors.New("domain already registered")
	ErrDeployFailed = errors.New("deployment trigger failed")
)

// Deployer triggers the external hosting provider for a freshly committed
// tenant and reports the resulting deployment metadata.
type Deployer interface {
	Deploy(ctx context.Context, client clientbus.Client) (clientbus.Deployment, error)
}

// Core manages the tenant provisioning workflow.
type Core struct {
	log         *logger.Logger
	beginner    sqldb.Beginner
	clientBus   *clientbus.Core
	adminBus    *adminbus.Core
	settingsBus *settingsbus.Core
	contactBus  *contactbus.Core
	deployer    Deployer
}

// NewCore constructs a core for provisioning api access.
func NewCore(log *logger.Logger, beginner sqldb.Beginner, clientBus *clientbus.Core, adminBus *adminbus.Core, settingsBus *settingsbus.Core, contactBus *contactbus.Core, deployer Deployer) *Core {
	return &Core{
		log:         log,
		beginner:    beginner,
		clientBus:   clientBus,
		adminBus:    adminBus,
		settingsBus: settingsBus,
		contactBus:  contactBus,
		deployer:    deployer,
	}
}

// Provision stands up a tenant. The duplicate email pre check gives a clean
// error for the common case; the unique constraint on managers.email is the
// race safe backstop inside the transaction.
func (c *Core) Provision(ctx context.Context, nt NewTenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.provisionbus.provision")
	defer span.End()

	if _, err := c.adminBus.QueryByEmail(ctx, nt.Email); err == nil {
		return Tenant{}, fmt.Errorf("email[%s]: %w", nt.Email.Address, ErrEmailTaken)
	} else if !errors.Is(err, adminbus.ErrNotFound) {
		return Tenant{}, fmt.Errorf("querybyemail: %w", err)
	}

	tenant, err := c.createTenant(ctx, nt)
	if err != nil {
		return Tenant{}, err
	}

	deployment, err := c.deployer.Deploy(ctx, tenant.Client)
	if err != nil {
		c.log.Error(ctx, "provision: deploy trigger failed", "clientID", tenant.Client.ID, "err", err)
		tenant.DeployStatus = DeployStatusFailed
		return tenant, nil
	}

	uc := clientbus.UpdateClient{
		Deployment: &deployment,
	}

	client, err := c.clientBus.Update(ctx, tenant.Client, uc)
	if err != nil {
		c.log.Error(ctx, "provision: recording deployment failed", "clientID", tenant.Client.ID, "err", err)
		tenant.DeployStatus = DeployStatusFailed
		return tenant, nil
	}

	tenant.Client = client
	tenant.DeployStatus = DeployStatusDeployed

	return tenant, nil
}

// createTenant writes the four tenant rows under one transaction.
func (c *Core) createTenant(ctx context.Context, nt NewTenant) (Tenant, error) {
	tx, err := c.beginner.Begin()
	if err != nil {
		return Tenant{}, fmt.Errorf("begin: %w", err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil {
			if errors.Is(err, sql.ErrTxDone) {
				return
			}
			c.log.Error(ctx, "provision: unable to rollback tran", "err", err)
		}
	}()

	clientBus, err := c.clientBus.NewWithTx(tx)
	if err != nil {
		return Tenant{}, fmt.Errorf("clientbus withtx: %w", err)
	}

	adminBus, err := c.adminBus.NewWithTx(tx)
	if err != nil {
		return Tenant{}, fmt.Errorf("adminbus withtx: %w", err)
	}

	settingsBus, err := c.settingsBus.NewWithTx(tx)
	if err != nil {
		return Tenant{}, fmt.Errorf("settingsbus withtx: %w", err)
	}

	contactBus, err := c.contactBus.NewWithTx(tx)
	if err != nil {
		return Tenant{}, fmt.Errorf("contactbus withtx: %w", err)
	}

	nc := clientbus.NewClient{
		Name:    nt.SiteName,
		Domain:  nt.Domain,
		LogoURL: nt.LogoURL,
		Theme:   nt.Theme,
	}

	client, err := clientBus.Create(ctx, nc)
	if err != nil {
		if errors.Is(err, clientbus.ErrUniqueDomain) {
			return Tenant{}, fmt.Errorf("create client: %w", ErrDomainTaken)
		}
		return Tenant{}, fmt.Errorf("create client: %w", err)
	}

	ns := settingsbus.NewSettings{
		Theme: settingsbus.Theme(nt.Theme),
	}

	if _, err := settingsBus.Create(ctx, client.ID, ns); err != nil {
		return Tenant{}, fmt.Errorf("create settings: %w", err)
	}

	na := adminbus.NewAdmin{
		ClientID: client.ID,
		Email:    nt.Email,
		FullName: nt.OwnerName,
		Password: nt.Password,
	}

	admin, err := adminBus.Create(ctx, na)
	if err != nil {
		if errors.Is(err, adminbus.ErrUniqueEmail) {
			return Tenant{}, fmt.Errorf("create admin: %w", ErrEmailTaken)
		}
		return Tenant{}, fmt.Errorf("create admin: %w", err)
	}

	nci := contactbus.NewContactInfo{
		Emails: []string{nt.Email.Address},
	}

	if _, err := contactBus.Create(ctx, client.ID, nci); err != nil {
		return Tenant{}, fmt.Errorf("create contact info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Tenant{}, fmt.Errorf("commit: %w", err)
	}

	return Tenant{
		Client: client,
		Admin:  admin,
	}, nil
}
