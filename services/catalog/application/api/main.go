package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/matiscalella/lms/pkg/app"
	"github.com/matiscalella/lms/services/catalog/application/handlers"
	appsvcs "github.com/matiscalella/lms/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	books := handlers.NewBooksHandler(svcs)
	records := handlers.NewRecordsHandler(svcs)
	catalog := handlers.NewCatalogHandler(svcs)

	r.Group(func(r chi.Router) {
		r.Route("/books", func(r chi.Router) {
			r.Post("/", books.Create)
			r.Get("/", books.List)
			r.Get("/{id}", books.Get)
			r.Put("/{id}", books.Update)
			r.Delete("/{id}", books.Delete)
		})
		r.Route("/records", func(r chi.Router) {
			r.Post("/", records.Create)
			r.Get("/", records.List)
			r.Get("/{id}", records.Get)
			r.Put("/{id}", records.Update)
			r.Delete("/{id}", records.Delete)
			r.Post("/{id}/move", catalog.MoveRecord)
		})
		r.Route("/catalog", func(r chi.Router) {
			r.Post("/books", catalog.CreateBookWithRecord)
			r.Delete("/books/{id}", catalog.DeleteBookCascade)
		})
	})
}
