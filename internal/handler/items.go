package handler

import (
	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/deppfellow/acervo-api/internal/server"
	"github.com/deppfellow/acervo-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves /itens. Unlike questions, a single item is returned
// as an object and every mutation echoes the affected row.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

// NewItemHandler returns the /itens handler backed by items.
func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func (h *ItemHandler) List(c echo.Context, _ *model.ListItemsRequest) ([]model.Item, error) {
	return h.items.List(c.Request().Context())
}

// Get answers the item as a single object.
func (h *ItemHandler) Get(c echo.Context, req *model.ItemIDRequest) (*model.Item, error) {
	return h.items.Get(c.Request().Context(), req.ID)
}

// Create stores a new item and answers 201 with the stored row.
func (h *ItemHandler) Create(c echo.Context, req *model.CreateItemRequest) (*model.ItemResponse, error) {
	return h.items.Create(c.Request().Context(), req)
}

// Update applies a partial update and answers the row as written.
func (h *ItemHandler) Update(c echo.Context, req *model.UpdateItemRequest) (*model.ItemResponse, error) {
	return h.items.Update(c.Request().Context(), req)
}

func (h *ItemHandler) Delete(c echo.Context, req *model.ItemIDRequest) (*model.ItemResponse, error) {
	return h.items.Delete(c.Request().Context(), req.ID)
}
