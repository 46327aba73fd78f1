package main

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/studygate/studygate/api/cmd/build/all"
	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mux"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/domain/adminbus/stores/admindb"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/domain/articlebus/stores/articledb"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/domain/clientbus/stores/clientcache"
	"github.com/studygate/studygate/business/domain/clientbus/stores/clientdb"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/consultationbus/stores/consultationdb"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/contactbus/stores/contactdb"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/domain/countrybus/stores/countrydb"
	"github.com/studygate/studygate/business/domain/dashboardbus"
	"github.com/studygate/studygate/business/domain/dashboardbus/stores/dashboarddb"
	"github.com/studygate/studygate/business/domain/messagebus"
	"github.com/studygate/studygate/business/domain/messagebus/stores/messagedb"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/domain/programbus/stores/programdb"
	"github.com/studygate/studygate/business/domain/provisionbus"
	"github.com/studygate/studygate/business/domain/provisionbus/stores/deployapi"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/domain/settingsbus/stores/settingsdb"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/domain/testimonialbus/stores/testimonialdb"
	"github.com/studygate/studygate/business/domain/universitybus"
	"github.com/studygate/studygate/business/domain/universitybus/stores/universitydb"
	"github.com/studygate/studygate/business/sdk/session"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/keystore"
	"github.com/studygate/studygate/foundation/logger"
	"github.com/studygate/studygate/foundation/otel"
)

var build = "develop"

type Config struct {
	Version struct {
		Build string `json:"build"`
		Desc  string `json:"desc"`
	} `json:"version"`

	Web struct {
		ReadTimeout        time.Duration `envconfig:"WEB_READ_TIMEOUT" default:"5s"`
		WriteTimeout       time.Duration `envconfig:"WEB_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout        time.Duration `envconfig:"WEB_IDLE_TIMEOUT" default:"120s"`
		ShutdownTimeout    time.Duration `envconfig:"WEB_SHUTDOWN_TIMEOUT" default:"20s"`
		APIHost            string        `envconfig:"WEB_API_HOST" default:"0.0.0.0:3000"`
		DebugHost          string        `envconfig:"WEB_DEBUG_HOST" default:"0.0.0.0:3010"`
		CORSAllowedOrigins []string      `envconfig:"WEB_CORS_ALLOWED_ORIGINS" default:"*"`
	}
	Auth struct {
		KeysFolder string `envconfig:"AUTH_KEYS_FOLDER" default:"foundation/zarf/keys"`
		Issuer     string `envconfig:"AUTH_ISSUER" default:"https://studygate.io/auth/"`
	}
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"studygate"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	Redis struct {
		Host     string `envconfig:"REDIS_HOST" default:"localhost:6379"`
		Password string `envconfig:"REDIS_PASSWORD" default:""`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}
	Deploy struct {
		BaseURL string        `envconfig:"DEPLOY_BASE_URL" default:"https://api.deploy.internal"`
		APIKey  string        `envconfig:"DEPLOY_API_KEY" default:""`
		Timeout time.Duration `envconfig:"DEPLOY_TIMEOUT" default:"15s"`
	}
	Tempo struct {
		Host        string  `envconfig:"TEMPO_HOST" default:"tempo:4317"`
		ServiceName string  `envconfig:"TEMPO_SERVICE_NAME" default:"STUDYGATE"`
		Probability float64 `envconfig:"TEMPO_PROBABILITY" default:"0.05"`
		Enabled     bool    `envconfig:"TEMPO_ENABLED" default:"false"`
	}
}

func main() {
	var log *logger.Logger

	events := logger.Events{
		Error: func(ctx context.Context, r logger.Record) {
			log.Info(ctx, "******* SEND ALERT *******")
		},
	}

	log = logger.NewWithEvents(os.Stdout, logger.LevelInfo, "STUDYGATE", otel.GetTraceID, events)

	// -------------------------------------------------------------------------

	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {

	// -------------------------------------------------------------------------
	// GOMAXPROCS

	log.Info(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// -------------------------------------------------------------------------
	// Configuration

	godotenv.Load()

	var cfg Config

	cfg.Version.Build = build
	cfg.Version.Desc = "STUDYGATE"

	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	log.Info(ctx, "startup", "version", cfg.Version)
	log.Info(ctx, "startup", "config", sanitizeConfig(cfg))

	// -------------------------------------------------------------------------
	// App Starting

	log.Info(ctx, "starting service", "version", cfg.Version.Build)
	defer log.Info(ctx, "shutdown complete")

	log.BuildInfo(ctx)

	expvar.NewString("build").Set(cfg.Version.Build)

	// -------------------------------------------------------------------------
	// Database Support

	log.Info(ctx, "startup", "status", "initializing database support", "hostport", cfg.DB.Host)

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}

	defer db.Close()

	// -------------------------------------------------------------------------
	// Session Support

	log.Info(ctx, "startup", "status", "initializing session support", "hostport", cfg.Redis.Host)

	rdb := session.Open(session.Config{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	defer rdb.Close()

	sessions := session.NewStore(log, rdb)

	// -------------------------------------------------------------------------
	// Auth Support

	log.Info(ctx, "startup", "status", "initializing authentication support")

	ks := keystore.New()

	activeKID, err := ks.LoadByFileSystem(os.DirFS(cfg.Auth.KeysFolder))
	if err != nil {
		return fmt.Errorf("loading keys: %w", err)
	}

	// -------------------------------------------------------------------------
	// Start Tracing Support

	log.Info(ctx, "startup", "status", "initializing tracing support")

	traceProvider, teardown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.Tempo.ServiceName,
		Host:        cfg.Tempo.Host,
		ExcludedRoutes: map[string]struct{}{
			"/v1/liveness":  {},
			"/v1/readiness": {},
		},
		Probability: cfg.Tempo.Probability,
		Enabled:     cfg.Tempo.Enabled,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}

	defer teardown(context.Background())

	tracer := traceProvider.Tracer(cfg.Tempo.ServiceName)

	// -------------------------------------------------------------------------
	// Build Business Layer

	log.Info(ctx, "startup", "status", "initializing business support")

	clientBus := clientbus.NewCore(log, clientcache.NewStore(log, clientdb.NewStore(log, db), time.Minute*5))
	adminBus := adminbus.NewCore(admindb.NewStore(log, db))
	settingsBus := settingsbus.NewCore(settingsdb.NewStore(log, db))
	contactBus := contactbus.NewCore(contactdb.NewStore(log, db))
	countryBus := countrybus.NewCore(countrydb.NewStore(log, db))
	universityBus := universitybus.NewCore(universitydb.NewStore(log, db))
	programBus := programbus.NewCore(programdb.NewStore(log, db))
	articleBus := articlebus.NewCore(articledb.NewStore(log, db))
	testimonialBus := testimonialbus.NewCore(testimonialdb.NewStore(log, db))
	consultationBus := consultationbus.NewCore(consultationdb.NewStore(log, db))
	messageBus := messagebus.NewCore(messagedb.NewStore(log, db))
	dashboardBus := dashboardbus.NewCore(dashboarddb.NewStore(log, db))

	deployer := deployapi.New(log, deployapi.Config{
		BaseURL: cfg.Deploy.BaseURL,
		APIKey:  cfg.Deploy.APIKey,
		Timeout: cfg.Deploy.Timeout,
	})

	provisionBus := provisionbus.NewCore(log, sqldb.NewBeginner(db), clientBus, adminBus, settingsBus, contactBus, deployer)

	authClient := auth.New(auth.Config{
		Log:       log,
		AdminBus:  adminBus,
		Sessions:  sessions,
		KeyLookup: ks,
		ActiveKID: activeKID,
		Issuer:    cfg.Auth.Issuer,
	})

	// -------------------------------------------------------------------------
	// Start Debug Service

	go func() {
		log.Info(ctx, "startup", "status", "debug router started", "host", cfg.Web.DebugHost)

		if err := http.ListenAndServe(cfg.Web.DebugHost, debugMux()); err != nil {
			log.Error(ctx, "shutdown", "status", "debug router closed", "host", cfg.Web.DebugHost, "err", err)
		}
	}()

	// -------------------------------------------------------------------------
	// Start API Service

	log.Info(ctx, "startup", "status", "initializing V1 API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	cfgMux := mux.Config{
		Build:  cfg.Version.Build,
		Log:    log,
		DB:     db,
		RDB:    rdb,
		Tracer: tracer,
		BusConfig: mux.BusConfig{
			AdminBus:        adminBus,
			ArticleBus:      articleBus,
			ClientBus:       clientBus,
			ConsultationBus: consultationBus,
			ContactBus:      contactBus,
			CountryBus:      countryBus,
			DashboardBus:    dashboardBus,
			MessageBus:      messageBus,
			ProgramBus:      programBus,
			ProvisionBus:    provisionBus,
			SettingsBus:     settingsBus,
			TestimonialBus:  testimonialBus,
			UniversityBus:   universityBus,
		},
		AuthConfig: mux.AuthConfig{
			Auth: authClient,
		},
	}

	webAPI := mux.WebAPI(cfgMux,
		all.Routes(),
		mux.WithCORS(cfg.Web.CORSAllowedOrigins),
	)

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      webAPI,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     logger.NewStdLogger(log, logger.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info(ctx, "startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.Info(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// debugMux registers all the debug routes from the standard library into a
// new mux bypassing the use of the DefaultServerMux.
func debugMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/vars", expvar.Handler())

	return mux
}

func sanitizeConfig(cfg Config) string {
	cfg.DB.Password = "[MASKED]"
	cfg.Redis.Password = "[MASKED]"
	cfg.Deploy.APIKey = "[MASKED]"

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf("%+v", cfg)
	}
	return string(data)
}
