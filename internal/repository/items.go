package repository

import (
	"context"

	"github.com/deppfellow/acervo-api/internal/database"
	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// Dates are read back as text so they keep PostgreSQL's YYYY-MM-DD form.
const itemColumns = `id_item, nome_item, descricao, local_encontrado,
data_encontrado::text AS data_encontrado, status, nome_entregador,
contato_entregador, nome_retirante, data_retirada::text AS data_retirada`

const (
	listItemsSQL = `SELECT ` + itemColumns + `
FROM itens_achados_perdidos
ORDER BY id_item DESC`

	getItemSQL = `SELECT ` + itemColumns + `
FROM itens_achados_perdidos
WHERE id_item = $1`

	createItemSQL = `INSERT INTO itens_achados_perdidos (
nome_item, descricao, local_encontrado, data_encontrado, status,
nome_entregador, contato_entregador, nome_retirante, data_retirada
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + itemColumns

	updateItemSQL = `UPDATE itens_achados_perdidos
SET nome_item = $1, descricao = $2, local_encontrado = $3, data_encontrado = $4,
status = $5, nome_entregador = $6, contato_entregador = $7,
nome_retirante = $8, data_retirada = $9
WHERE id_item = $10
RETURNING ` + itemColumns

	deleteItemSQL = `DELETE FROM itens_achados_perdidos
WHERE id_item = $1
RETURNING ` + itemColumns
)

// ItemRepository reads and writes the itens_achados_perdidos table.
//
// Every mutation returns the affected row. Missing rows are reported as a
// wrapped pgx.ErrNoRows.
type ItemRepository struct {
	db database.Querier
}

// NewItemRepository returns a repository that runs its SQL on db.
func NewItemRepository(db database.Querier) *ItemRepository {
	return &ItemRepository{db: db}
}

func scanItem(row pgx.Row) (*model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.FoundAt,
		&item.FoundDate,
		&item.Status,
		&item.FinderName,
		&item.FinderContact,
		&item.ClaimantName,
		&item.ClaimedDate,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every item, newest first.
func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan item")
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate items")
	}

	return items, nil
}

// Get returns the item with the given id, or a wrapped pgx.ErrNoRows.
func (r *ItemRepository) Get(ctx context.Context, id int64) (*model.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, getItemSQL, id))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %d", id)
	}
	return item, nil
}

// Create inserts the item and returns the stored row.
func (r *ItemRepository) Create(ctx context.Context, item model.Item) (*model.Item, error) {
	created, err := scanItem(r.db.QueryRow(ctx, createItemSQL,
		item.Name,
		item.Description,
		item.FoundAt,
		item.FoundDate,
		item.Status,
		item.FinderName,
		item.FinderContact,
		item.ClaimantName,
		item.ClaimedDate,
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}
	return created, nil
}

// Update rewrites every column of the row identified by item.ID and
// returns the row as stored afterwards.
func (r *ItemRepository) Update(ctx context.Context, item model.Item) (*model.Item, error) {
	updated, err := scanItem(r.db.QueryRow(ctx, updateItemSQL,
		item.Name,
		item.Description,
		item.FoundAt,
		item.FoundDate,
		item.Status,
		item.FinderName,
		item.FinderContact,
		item.ClaimantName,
		item.ClaimedDate,
		item.ID,
	))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update item %d", item.ID)
	}
	return updated, nil
}

// Delete removes the item and returns the row as it was before deletion.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (*model.Item, error) {
	deleted, err := scanItem(r.db.QueryRow(ctx, deleteItemSQL, id))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete item %d", id)
	}
	return deleted, nil
}
