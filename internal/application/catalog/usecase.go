// Package catalog CRUD de paso sobre las tablas de catálogo (bancos,
// universidades, profesiones, áreas de conocimiento). El descriptor tipado
// sale de la allow-list de entity; aquí no se arma SQL con entrada del caller.
package catalog

import (
	"github.com/google/uuid"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// CatalogUseCase operaciones sobre un catálogo resuelto por clave.
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalogRepo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo}
}

// resolve valida la clave contra la allow-list.
func resolve(key string) (entity.Catalog, error) {
	c, ok := entity.CatalogByKey(key)
	if !ok {
		return entity.Catalog{}, domain.ErrNotFound
	}
	return c, nil
}

// List ítems del catálogo ordenados por nombre.
func (uc *CatalogUseCase) List(key string) ([]dto.CatalogItemResponse, error) {
	c, err := resolve(key)
	if err != nil {
		return nil, err
	}
	items, err := uc.catalogRepo.List(c)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CatalogItemResponse{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

// Create agrega un ítem; nombre duplicado retorna ErrDuplicate.
func (uc *CatalogUseCase) Create(key, name string) (*dto.CatalogItemResponse, error) {
	c, err := resolve(key)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.CatalogItem{ID: uuid.New().String(), Name: name}
	if err := uc.catalogRepo.Create(c, item); err != nil {
		return nil, err
	}
	return &dto.CatalogItemResponse{ID: item.ID, Name: item.Name}, nil
}

// Rename cambia el nombre de un ítem existente.
func (uc *CatalogUseCase) Rename(key, id, name string) error {
	c, err := resolve(key)
	if err != nil {
		return err
	}
	if id == "" || name == "" {
		return domain.ErrInvalidInput
	}
	return uc.catalogRepo.Rename(c, id, name)
}

// Delete elimina un ítem; si alguna FK lo referencia retorna ErrConflict.
func (uc *CatalogUseCase) Delete(key, id string) error {
	c, err := resolve(key)
	if err != nil {
		return err
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.catalogRepo.Delete(c, id)
}
