package postgres

import (
	"context"
	"fmt"

	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo CRUD genérico sobre las tablas de catálogo. Los nombres de tabla
// y columna del descriptor son constantes de compilación (allow-list de
// entity); jamás provienen de entrada del caller, por eso el Sprintf es seguro.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogos. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// List ítems del catálogo ordenados por nombre.
func (r *CatalogRepo) List(c entity.Catalog) ([]*entity.CatalogItem, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s`, c.IDColumn, c.NameColumn, c.Table, c.NameColumn)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.Table, err)
	}
	defer rows.Close()

	var out []*entity.CatalogItem
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.Table, err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// Create inserta un ítem. Nombre duplicado retorna ErrDuplicate.
func (r *CatalogRepo) Create(c entity.Catalog, item *entity.CatalogItem) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, c.Table, c.IDColumn, c.NameColumn)
	if _, err := r.q.Exec(context.Background(), query, item.ID, item.Name); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", c.Table, err)
	}
	return nil
}

// Rename cambia el nombre de un ítem existente.
func (r *CatalogRepo) Rename(c entity.Catalog, id, name string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, c.Table, c.NameColumn, c.IDColumn)
	cmd, err := r.q.Exec(context.Background(), query, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("rename %s: %w", c.Table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem; si alguna FK lo referencia retorna ErrConflict.
func (r *CatalogRepo) Delete(c entity.Catalog, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.Table, c.IDColumn)
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete %s: %w", c.Table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists indica si el ítem existe en el catálogo (validación de FKs de entrada).
func (r *CatalogRepo) Exists(c entity.Catalog, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, c.Table, c.IDColumn)
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists %s: %w", c.Table, err)
	}
	return exists, nil
}
