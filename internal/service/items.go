package service

import (
	"context"

	"github.com/deppfellow/acervo-api/internal/errs"
	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/rs/zerolog"
)

const (
	itemNotFoundMessage = "Item não encontrado"
	itemCreatedMessage  = "Item cadastrado com sucesso"
	itemUpdatedMessage  = "Item atualizado com sucesso"
	itemDeletedMessage  = "Item excluído com sucesso"
)

// ItemStore is the persistence the item service needs.
// repository.ItemRepository implements it.
type ItemStore interface {
	List(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	Create(ctx context.Context, item model.Item) (*model.Item, error)
	Update(ctx context.Context, item model.Item) (*model.Item, error)
	Delete(ctx context.Context, id int64) (*model.Item, error)
}

// ItemService implements the item operations on top of an ItemStore.
type ItemService struct {
	store ItemStore
}

// NewItemService returns a service that persists through store.
func NewItemService(store ItemStore) *ItemService {
	return &ItemService{store: store}
}

func itemNotFound() error {
	return errs.NewNotFoundError(itemNotFoundMessage, true, nil)
}

// List returns every item, newest first.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.store.List(ctx)
}

// Get returns the item, or the item not-found error for unknown and
// malformed ids.
func (s *ItemService) Get(ctx context.Context, rawID string) (*model.Item, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, itemNotFound()
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, itemNotFound)
	}

	return item, nil
}

// Create stores the item with its defaults applied and echoes the row.
func (s *ItemService) Create(ctx context.Context, req *model.CreateItemRequest) (*model.ItemResponse, error) {
	created, err := s.store.Create(ctx, req.ToItem())
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("item_id", created.ID).Msg("item created")

	return &model.ItemResponse{Message: itemCreatedMessage, Item: created}, nil
}

// Update merges the request onto the stored item and returns the row as
// written.
func (s *ItemService) Update(ctx context.Context, req *model.UpdateItemRequest) (*model.ItemResponse, error) {
	stored, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, stored.Merge(req))
	if err != nil {
		return nil, notFoundOr(err, itemNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("item_id", updated.ID).Msg("item updated")

	return &model.ItemResponse{Message: itemUpdatedMessage, Item: updated}, nil
}

// Delete removes the item and echoes the row as it was.
func (s *ItemService) Delete(ctx context.Context, rawID string) (*model.ItemResponse, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, itemNotFound()
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, itemNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("item_id", id).Msg("item deleted")

	return &model.ItemResponse{Message: itemDeletedMessage, Item: deleted}, nil
}
