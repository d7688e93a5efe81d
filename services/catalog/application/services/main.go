package services

import (
	"github.com/matiscalella/lms/pkg/app"
	"github.com/matiscalella/lms/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the catalog bounded
// context. It wires domain services with their infrastructure implementations.
type Services struct {
	Books   *BookService
	Records *RecordService
	Catalog *CatalogService
}

// New wires the catalog services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	books := postgres.NewBookRepository()
	records := postgres.NewRecordRepository()
	return &Services{
		Books:   NewBookService(a.Db, books),
		Records: NewRecordService(a.Db, records),
		Catalog: NewCatalogService(a.Db, books, records, a.EventBus, a.Logger),
	}
}
