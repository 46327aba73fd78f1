// This program performs administrative tasks for the service: schema
// migration, data seeding, creating the first platform owner, and
// provisioning tenants from the command line.
package main

import (
	"context"
	"fmt"
	"net/mail"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/domain/adminbus/stores/admindb"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/domain/clientbus/stores/clientdb"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/contactbus/stores/contactdb"
	"github.com/studygate/studygate/business/domain/provisionbus"
	"github.com/studygate/studygate/business/domain/provisionbus/stores/deployapi"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/domain/settingsbus/stores/settingsdb"
	"github.com/studygate/studygate/business/sdk/migrate"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/hexcolor"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/password"
	"github.com/studygate/studygate/business/types/weburl"
	"github.com/studygate/studygate/foundation/logger"
)

type Config struct {
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"studygate"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	Deploy struct {
		BaseURL string        `envconfig:"DEPLOY_BASE_URL" default:"https://api.deploy.internal"`
		APIKey  string        `envconfig:"DEPLOY_API_KEY" default:""`
		Timeout time.Duration `envconfig:"DEPLOY_TIMEOUT" default:"15s"`
	}
}

func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "ADMIN-TOOL", nil)

	if err := run(log); err != nil {
		log.Error(context.Background(), "startup", "err", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	openDB := func() (*sqlx.DB, error) {
		return sqldb.Open(sqldb.Config{
			User:         cfg.DB.User,
			Password:     cfg.DB.Password,
			Host:         cfg.DB.Host,
			Name:         cfg.DB.Name,
			MaxIdleConns: cfg.DB.MaxIdleConns,
			MaxOpenConns: cfg.DB.MaxOpenConns,
			DisableTLS:   cfg.DB.DisableTLS,
		})
	}

	root := &cobra.Command{
		Use:          "admin",
		Short:        "administrative tooling",
		SilenceUsage: true,
	}

	root.AddCommand(migrateCmd(openDB))
	root.AddCommand(seedCmd(openDB))
	root.AddCommand(createOwnerCmd(log, openDB))
	root.AddCommand(provisionCmd(log, openDB, cfg))

	return root.Execute()
}

func migrateCmd(openDB func() (*sqlx.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("connecting to db: %w", err)
			}
			defer db.Close()

			if err := migrate.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("migrating db: %w", err)
			}

			fmt.Println("migrations complete")
			return nil
		},
	}
}

func seedCmd(openDB func() (*sqlx.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "seed the database with starter data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("connecting to db: %w", err)
			}
			defer db.Close()

			if err := migrate.Seed(cmd.Context(), db); err != nil {
				return fmt.Errorf("seeding db: %w", err)
			}

			fmt.Println("seed complete")
			return nil
		},
	}
}

func createOwnerCmd(log *logger.Logger, openDB func() (*sqlx.DB, error)) *cobra.Command {
	var emailStr string
	var passStr string
	var nameStr string

	cmd := &cobra.Command{
		Use:   "create-owner",
		Short: "create a platform owner account",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("connecting to db: %w", err)
			}
			defer db.Close()

			addr, err := mail.ParseAddress(emailStr)
			if err != nil {
				return fmt.Errorf("parsing email: %w", err)
			}

			pass, err := password.Parse(passStr)
			if err != nil {
				return fmt.Errorf("parsing password: %w", err)
			}

			fullName, err := name.ParseNull(nameStr)
			if err != nil {
				return fmt.Errorf("parsing name: %w", err)
			}

			adminBus := adminbus.NewCore(admindb.NewStore(log, db))

			// A zero ClientID makes this account a platform owner.
			adm, err := adminBus.Create(cmd.Context(), adminbus.NewAdmin{
				Email:    *addr,
				FullName: fullName,
				Password: pass,
			})
			if err != nil {
				return fmt.Errorf("creating owner: %w", err)
			}

			fmt.Println("owner created:", adm.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&emailStr, "email", "", "owner email")
	cmd.Flags().StringVar(&passStr, "password", "", "owner password")
	cmd.Flags().StringVar(&nameStr, "name", "", "owner full name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func provisionCmd(log *logger.Logger, openDB func() (*sqlx.DB, error), cfg Config) *cobra.Command {
	var siteName string
	var domain string
	var ownerName string
	var emailStr string
	var passStr string
	var logoURL string
	var primary string
	var secondary string
	var accent string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "stand up a new tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("connecting to db: %w", err)
			}
			defer db.Close()

			nt, err := parseNewTenant(siteName, domain, ownerName, emailStr, passStr, logoURL, primary, secondary, accent)
			if err != nil {
				return err
			}

			clientBus := clientbus.NewCore(log, clientdb.NewStore(log, db))
			adminBus := adminbus.NewCore(admindb.NewStore(log, db))
			settingsBus := settingsbus.NewCore(settingsdb.NewStore(log, db))
			contactBus := contactbus.NewCore(contactdb.NewStore(log, db))

			deployer := deployapi.New(log, deployapi.Config{
				BaseURL: cfg.Deploy.BaseURL,
				APIKey:  cfg.Deploy.APIKey,
				Timeout: cfg.Deploy.Timeout,
			})

			provisionBus := provisionbus.NewCore(log, sqldb.NewBeginner(db), clientBus, adminBus, settingsBus, contactBus, deployer)

			tenant, err := provisionBus.Provision(cmd.Context(), nt)
			if err != nil {
				return fmt.Errorf("provisioning tenant: %w", err)
			}

			fmt.Println("client created:", tenant.Client.ID)
			fmt.Println("admin created:", tenant.Admin.ID)
			fmt.Println("deploy status:", tenant.DeployStatus)
			return nil
		},
	}

	cmd.Flags().StringVar(&siteName, "site-name", "", "tenant site name")
	cmd.Flags().StringVar(&domain, "domain", "", "tenant domain")
	cmd.Flags().StringVar(&ownerName, "owner-name", "", "first admin full name")
	cmd.Flags().StringVar(&emailStr, "email", "", "first admin email")
	cmd.Flags().StringVar(&passStr, "password", "", "first admin password")
	cmd.Flags().StringVar(&logoURL, "logo-url", "", "tenant logo url")
	cmd.Flags().StringVar(&primary, "primary", "#1d4ed8", "primary theme color")
	cmd.Flags().StringVar(&secondary, "secondary", "#0f172a", "secondary theme color")
	cmd.Flags().StringVar(&accent, "accent", "#f59e0b", "accent theme color")
	cmd.MarkFlagRequired("site-name")
	cmd.MarkFlagRequired("domain")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func parseNewTenant(siteName, domain, ownerName, emailStr, passStr, logoURL, primary, secondary, accent string) (provisionbus.NewTenant, error) {
	site, err := name.Parse(siteName)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parsing site name: %w", err)
	}

	owner, err := name.ParseNull(ownerName)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parsing owner name: %w", err)
	}

	addr, err := mail.ParseAddress(emailStr)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parsing email: %w", err)
	}

	pass, err := password.Parse(passStr)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parsing password: %w", err)
	}

	logo, err := weburl.ParseNull(logoURL)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parsing logo url: %w", err)
	}

	p, err := hexcolor.Parse(primary)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parsing primary color: %w", err)
	}

	s, err := hexcolor.Parse(secondary)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parsing secondary color: %w", err)
	}

	a, err := hexcolor.Parse(accent)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parsing accent color: %w", err)
	}

	nt := provisionbus.NewTenant{
		SiteName:  site,
		Domain:    domain,
		OwnerName: owner,
		Email:     *addr,
		Password:  pass,
		Theme: clientbus.Theme{
			Primary:   p,
			Secondary: s,
			Accent:    a,
		},
		LogoURL: logo,
	}

	return nt, nil
}
