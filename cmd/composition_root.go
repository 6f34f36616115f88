package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"burritoops/internal/adapters/out/snapshot/customerrepo"
	"burritoops/internal/adapters/out/snapshot/driverrepo"
	"burritoops/internal/adapters/out/snapshot/menurepo"
	"burritoops/internal/adapters/out/snapshot/orderrepo"
	"burritoops/internal/core/application/usecases/commands"
	"burritoops/internal/core/application/usecases/queries"
	"burritoops/internal/core/ports"
	"burritoops/internal/jobs"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orders    ports.OrderStore
	drivers   ports.DriverStore
	customers ports.CustomerStore
	menuItems ports.MenuStore
}

// NewCompositionRoot builds every store once. When DataDir is empty the
// stores run memory-only; otherwise each store gets its own snapshot file
// under DataDir.
func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	var orderPath, driverPath, customerPath, menuPath string
	if config.DataDir != "" {
		orderPath = filepath.Join(config.DataDir, "orders.json")
		driverPath = filepath.Join(config.DataDir, "drivers.json")
		customerPath = filepath.Join(config.DataDir, "customers.json")
		menuPath = filepath.Join(config.DataDir, "menu_items.json")
	}

	return CompositionRoot{
		config:    config,
		logger:    logger,
		orders:    orderrepo.NewRepository(orderPath, logger),
		drivers:   driverrepo.NewRepository(driverPath, logger),
		customers: customerrepo.NewRepository(customerPath, logger),
		menuItems: menurepo.NewRepository(menuPath, logger),
	}
}

// LoadStores hydrates every store from its snapshot file. A corrupt
// snapshot is fatal unless SnapshotAllowEmpty is set, in which case the
// affected store starts empty and the corruption is already logged by the
// store itself.
func (c *CompositionRoot) LoadStores(ctx context.Context) error {
	loads := []struct {
		name string
		load func(context.Context) (int, error)
	}{
		{"orders", c.orders.Load},
		{"drivers", c.drivers.Load},
		{"customers", c.customers.Load},
		{"menu_items", c.menuItems.Load},
	}

	for _, l := range loads {
		count, err := l.load(ctx)
		if err != nil {
			if !c.config.SnapshotAllowEmpty {
				return fmt.Errorf("loading %s snapshot: %w", l.name, err)
			}
			c.logger.Warn("starting with empty store after snapshot load failure",
				"store", l.name, "error", err)
			continue
		}
		c.logger.Info("store loaded", "store", l.name, "count", count)
	}

	return nil
}

func (c *CompositionRoot) OrderStore() ports.OrderStore {
	return c.orders
}

func (c *CompositionRoot) DriverStore() ports.DriverStore {
	return c.drivers
}

func (c *CompositionRoot) CustomerStore() ports.CustomerStore {
	return c.customers
}

func (c *CompositionRoot) MenuStore() ports.MenuStore {
	return c.menuItems
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuItems, c.logger)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customers, c.logger)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.drivers, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.customers, c.menuItems, c.logger)
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	return commands.NewAssignOrdersCommandHandler(c.orders, c.drivers, c.logger)
}

func (c *CompositionRoot) CreateProgressOrdersCommandHandler() commands.ProgressOrdersCommandHandler {
	return commands.NewProgressOrdersCommandHandler(c.orders, c.drivers, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.drivers)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.orders,
		c.drivers,
		c.CreateAssignOrdersCommandHandler(),
		c.CreateProgressOrdersCommandHandler(),
		c.logger,
	)
}
