package cmd

import (
	"log/slog"
	"net/http"

	"printstream/internal/adapters/out/genai"
	"printstream/internal/adapters/out/postgres"
	"printstream/internal/core/application/usecases/commands"
	"printstream/internal/core/application/usecases/queries"
	"printstream/internal/core/domain/services"
	"printstream/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application use cases.
// Handlers are created per call so that each request gets a fresh unit of work.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	enhancer   ports.DesignEnhancer
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root from configuration and an
// open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	enhancer := genai.NewClient(config.EnhancerBaseURL, &http.Client{Timeout: config.EnhancerTimeout})

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		enhancer:   enhancer,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, services.NewSubcontractPolicy(), commands.IntakeDefaults{
		CustomerName: c.config.IntakeCustomerName,
		ProductName:  c.config.IntakeProductName,
		Quantity:     c.config.IntakeQuantity,
	})
}

func (c *CompositionRoot) CreateChangeWorkOrderStatusCommandHandler() commands.ChangeWorkOrderStatusCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeWorkOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateEnhanceDesignCommandHandler() commands.EnhanceDesignCommandHandler {
	return commands.NewEnhanceDesignCommandHandler(c.enhancer, c.logger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllWorkOrdersQueryHandler() queries.GetAllWorkOrdersQueryHandler {
	return queries.NewGetAllWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMaterialRequirementsQueryHandler() queries.GetMaterialRequirementsQueryHandler {
	return queries.NewGetMaterialRequirementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSubcontractWorklistQueryHandler() queries.GetSubcontractWorklistQueryHandler {
	return queries.NewGetSubcontractWorklistQueryHandler(c.gormDB)
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}
