package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// CatalogRepository CRUD genérico sobre las tablas de catálogo. El Catalog
// recibido proviene siempre de la allow-list de entity; los identificadores de
// tabla y columna jamás se construyen con entrada del caller.
type CatalogRepository interface {
	List(c entity.Catalog) ([]*entity.CatalogItem, error)
	// Create retorna domain.ErrDuplicate si el nombre ya existe.
	Create(c entity.Catalog, item *entity.CatalogItem) error
	Rename(c entity.Catalog, id, name string) error
	// Delete retorna domain.ErrConflict si alguna FK referencia el ítem.
	Delete(c entity.Catalog, id string) error
	Exists(c entity.Catalog, id string) (bool, error)
}
