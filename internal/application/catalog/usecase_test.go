package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiringgroup/talento-api/internal/application/catalog"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
)

// fakeCatalogRepo una tabla en memoria por catálogo, con nombre único.
type fakeCatalogRepo struct {
	items map[string]map[string]string // tabla -> id -> nombre
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: map[string]map[string]string{}}
}

func (f *fakeCatalogRepo) table(c entity.Catalog) map[string]string {
	if f.items[c.Table] == nil {
		f.items[c.Table] = map[string]string{}
	}
	return f.items[c.Table]
}

func (f *fakeCatalogRepo) List(c entity.Catalog) ([]*entity.CatalogItem, error) {
	var out []*entity.CatalogItem
	for id, name := range f.table(c) {
		out = append(out, &entity.CatalogItem{ID: id, Name: name})
	}
	return out, nil
}

func (f *fakeCatalogRepo) Create(c entity.Catalog, item *entity.CatalogItem) error {
	for _, name := range f.table(c) {
		if name == item.Name {
			return domain.ErrDuplicate
		}
	}
	f.table(c)[item.ID] = item.Name
	return nil
}

func (f *fakeCatalogRepo) Rename(c entity.Catalog, id, name string) error {
	if _, ok := f.table(c)[id]; !ok {
		return domain.ErrNotFound
	}
	f.table(c)[id] = name
	return nil
}

func (f *fakeCatalogRepo) Delete(c entity.Catalog, id string) error {
	if _, ok := f.table(c)[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.table(c), id)
	return nil
}

func (f *fakeCatalogRepo) Exists(c entity.Catalog, id string) (bool, error) {
	_, ok := f.table(c)[id]
	return ok, nil
}

func TestCatalog_ClaveDesconocida(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeCatalogRepo())

	_, err := uc.List("colores")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Create("colores", "Rojo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Las cuatro claves de la allow-list resuelven y operan de forma independiente.
func TestCatalog_ClavesSoportadas(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeCatalogRepo())

	for _, key := range []string{"banks", "universities", "professions", "knowledge_areas"} {
		created, err := uc.Create(key, "Ítem de "+key)
		require.NoError(t, err, "catálogo %s", key)
		items, err := uc.List(key)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, created.ID, items[0].ID)
	}
}

func TestCatalog_NombreDuplicado(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeCatalogRepo())

	_, err := uc.Create("banks", "Banco de Venezuela")
	require.NoError(t, err)
	_, err = uc.Create("banks", "Banco de Venezuela")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCatalog_RenameYDelete(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := catalog.NewCatalogUseCase(repo)

	created, err := uc.Create("professions", "Ingeniería en Sistemas")
	require.NoError(t, err)

	require.NoError(t, uc.Rename("professions", created.ID, "Ingeniería Informática"))
	assert.Equal(t, "Ingeniería Informática", repo.table(entity.CatalogProfessions)[created.ID])

	require.NoError(t, uc.Delete("professions", created.ID))
	assert.ErrorIs(t, uc.Delete("professions", created.ID), domain.ErrNotFound)
}

func TestCatalog_EntradaVacia(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeCatalogRepo())

	_, err := uc.Create("banks", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Rename("banks", "", "Nuevo"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Delete("banks", ""), domain.ErrInvalidInput)
}
