package container

import (
	"context"
	"os"

	"launchdash/adapters/excel"
	"launchdash/adapters/postgres"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/errors"
	"launchdash/internal/migration"
	"launchdash/internal/testkit"
	"launchdash/ports"
	"launchdash/ui"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB     *sqlx.DB
	Source ports.LaunchSource

	// Dashboard state, fixed after Init
	Dataset  *launch.Dataset
	Registry *dashboard.Registry

	// HTTP surfaces
	API    *ui.App
	Server *ui.Server

	log *internal.Logger
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.ConfigInvalid("config cannot be nil")
	}

	return &Container{
		Config: cfg,
		log:    internal.DefaultLogger.WithComponent("Container"),
	}, nil
}

// Init opens the configured launch source and builds the dashboard from it.
func (c *Container) Init(ctx context.Context) error {
	src, err := c.openSource(ctx)
	if err != nil {
		return err
	}
	return c.InitWithSource(ctx, src)
}

// InitWithSource loads the dataset from src and wires the registry, API and page server.
func (c *Container) InitWithSource(ctx context.Context, src ports.LaunchSource) error {
	if src == nil {
		return errors.ConfigInvalid("launch source cannot be nil")
	}
	c.Source = src

	records, err := src.Load(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to load launches from %s", src.Describe())
	}

	ds, err := launch.NewDataset(src.Describe(), records)
	if err != nil {
		return errors.Wrapf(err, "launch data from %s is unusable", src.Describe())
	}
	c.Dataset = ds
	c.log.Info("Loaded %d launches across %d sites from %s", ds.Len(), len(ds.Sites()), src.Describe())

	if err := c.initDashboard(); err != nil {
		return err
	}

	c.log.Info("Container initialized (dataset %s)", ds.ID())
	return nil
}

func (c *Container) initDashboard() error {
	reg, err := dashboard.NewRegistry(c.Dataset, dashboard.RegistryOptions{Colors: c.Config.Dashboard.Colors})
	if err != nil {
		return errors.Wrap(err, "failed to register dashboard callbacks")
	}
	c.Registry = reg

	api, err := ui.NewApp(ui.AppConfig{
		Dataset:   c.Dataset,
		Registry:  reg,
		Dashboard: c.Config.Dashboard,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create API")
	}
	c.API = api

	about, err := c.readAbout()
	if err != nil {
		return err
	}

	server, err := ui.NewServer(ui.ServerConfig{
		API:     api,
		GinMode: c.Config.Server.GinMode,
		About:   about,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create web server")
	}
	c.Server = server
	return nil
}

func (c *Container) readAbout() ([]byte, error) {
	path := c.Config.Dashboard.AboutFile
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigInvalid("cannot read about file " + path + ": " + err.Error())
	}
	return data, nil
}

// openSource picks the launch source named by DATA_SOURCE.
func (c *Container) openSource(ctx context.Context) (ports.LaunchSource, error) {
	switch c.Config.Data.Source {
	case config.SourceFile:
		return excel.NewLaunchLoader(c.Config.Data.File, ColumnMapping(c.Config.Data.Columns)), nil
	case config.SourcePostgres:
		return c.openPostgres(ctx)
	case config.SourceDemo:
		c.log.Warn("No DATA_FILE configured, serving built-in demo launches")
		return testkit.NewDemoSource(), nil
	default:
		return nil, errors.ConfigInvalid("unknown data source " + c.Config.Data.Source)
	}
}

// openPostgres connects, migrates, and seeds an empty table from DATA_FILE when one is set.
func (c *Container) openPostgres(ctx context.Context) (ports.LaunchSource, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", c.Config.Database.URL)
	if err != nil {
		return nil, errors.DatabaseError("connect", err)
	}
	c.DB = db

	if err := migration.NewRunner().Run(ctx, db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	repo := postgres.NewLaunchRepository(db)
	if c.Config.Data.File == "" {
		return repo, nil
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		c.log.Debug("launch_records already holds %d rows, not seeding", n)
		return repo, nil
	}

	loader := excel.NewLaunchLoader(c.Config.Data.File, ColumnMapping(c.Config.Data.Columns))
	records, err := loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read seed file")
	}
	if err := repo.ReplaceAllFrom(ctx, loader.Describe(), records); err != nil {
		return nil, errors.Wrap(err, "failed to seed launch_records")
	}
	c.log.Info("Seeded launch_records with %d rows from %s", len(records), loader.Describe())
	return repo, nil
}

// ColumnMapping converts the configured column names to a loader mapping.
func ColumnMapping(cols config.ColumnConfig) excel.ColumnMapping {
	return excel.ColumnMapping{
		LaunchSite:             cols.LaunchSite,
		PayloadMass:            cols.PayloadMass,
		Class:                  cols.Class,
		BoosterVersionCategory: cols.BoosterVersionCategory,
		FlightNumber:           cols.FlightNumber,
		BoosterVersion:         cols.BoosterVersion,
	}
}

// Shutdown releases held resources
func (c *Container) Shutdown(ctx context.Context) error {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return errors.DatabaseError("close", err)
		}
		c.DB = nil
	}
	c.log.Debug("Container shut down")
	return nil
}
