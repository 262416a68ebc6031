package cmd

import (
	"packing/internal/adapters/out/postgres"
	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	orderSource ports.OrderSource
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, orderSource ports.OrderSource) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderSource: orderSource,
	}
}

func (c *CompositionRoot) packUoWFactory() commands.PackUoWFactory {
	return FuncPackUoWFactory(func() commands.PackUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) packOrderUoWFactory() commands.PackOrderUoWFactory {
	return FuncPackOrderUoWFactory(func() commands.PackOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartPackCommandHandler() commands.StartPackCommandHandler {
	return commands.NewStartPackCommandHandler(c.packOrderUoWFactory(), c.orderSource)
}

func (c *CompositionRoot) CreateAddBoxCommandHandler() commands.AddBoxCommandHandler {
	return commands.NewAddBoxCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateRemoveBoxCommandHandler() commands.RemoveBoxCommandHandler {
	return commands.NewRemoveBoxCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateDuplicateBoxCommandHandler() commands.DuplicateBoxCommandHandler {
	return commands.NewDuplicateBoxCommandHandler(c.packOrderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOneCommandHandler() commands.AssignOneCommandHandler {
	return commands.NewAssignOneCommandHandler(c.packOrderUoWFactory())
}

func (c *CompositionRoot) CreateAssignAllRemainingCommandHandler() commands.AssignAllRemainingCommandHandler {
	return commands.NewAssignAllRemainingCommandHandler(c.packOrderUoWFactory())
}

func (c *CompositionRoot) CreateSetQtyCommandHandler() commands.SetQtyCommandHandler {
	return commands.NewSetQtyCommandHandler(c.packOrderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateRemoveAllPackedCommandHandler() commands.RemoveAllPackedCommandHandler {
	return commands.NewRemoveAllPackedCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateSetBoxWeightCommandHandler() commands.SetBoxWeightCommandHandler {
	return commands.NewSetBoxWeightCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateCompletePackCommandHandler() commands.CompletePackCommandHandler {
	return commands.NewCompletePackCommandHandler(c.packOrderUoWFactory())
}

func (c *CompositionRoot) CreateReopenPackCommandHandler() commands.ReopenPackCommandHandler {
	return commands.NewReopenPackCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateGetPackSnapshotQueryHandler() queries.GetPackSnapshotQueryHandler {
	return queries.NewGetPackSnapshotQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartonsQueryHandler() queries.GetCartonsQueryHandler {
	return queries.NewGetCartonsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePacksQueryHandler() queries.GetStalePacksQueryHandler {
	return queries.NewGetStalePacksQueryHandler(c.gormDB)
}

type FuncPackUoWFactory func() commands.PackUoW

func (f FuncPackUoWFactory) Create() commands.PackUoW {
	return f()
}

type FuncPackOrderUoWFactory func() commands.PackOrderUoW

func (f FuncPackOrderUoWFactory) Create() commands.PackOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
