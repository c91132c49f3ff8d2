package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
)

var itemColumnNames = []string{
	"id_item", "nome_item", "descricao", "local_encontrado", "data_encontrado",
	"status", "nome_entregador", "contato_entregador", "nome_retirante", "data_retirada",
}

func str(s string) *string {
	return &s
}

var noText = (*string)(nil)

func TestItemRepositoryListOrdersNewestFirst(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id_item DESC")).
		WillReturnRows(pgxmock.NewRows(itemColumnNames).
			AddRow(int64(9), "Mochila", noText, noText, str("2026-03-01"), str("Achado"), noText, noText, noText, noText).
			AddRow(int64(4), "Chave", str("Chaveiro azul"), str("Cantina"), noText, str("Achado"), noText, noText, noText, noText))

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != 9 || items[1].ID != 4 {
		t.Fatalf("unexpected items %+v", items)
	}
	if items[0].Description != nil {
		t.Error("expected null description")
	}
	if items[0].FoundDate == nil || *items[0].FoundDate != "2026-03-01" {
		t.Errorf("unexpected date %v", items[0].FoundDate)
	}
}

func TestItemRepositoryCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	item := (&model.CreateItemRequest{Name: "Garrafa"}).ToItem()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO itens_achados_perdidos (")).
		WithArgs("Garrafa", noText, noText, noText, str("Achado"), noText, noText, noText, noText).
		WillReturnRows(pgxmock.NewRows(itemColumnNames).
			AddRow(int64(10), "Garrafa", noText, noText, noText, str("Achado"), noText, noText, noText, noText))

	created, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 10 || created.Status == nil || *created.Status != "Achado" {
		t.Errorf("unexpected created item %+v", created)
	}
}

func TestItemRepositoryUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	item := model.Item{ID: 4, Name: "Chave", Status: str("Devolvido")}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE itens_achados_perdidos")).
		WithArgs("Chave", noText, noText, noText, str("Devolvido"), noText, noText, noText, noText, int64(4)).
		WillReturnRows(pgxmock.NewRows(itemColumnNames).
			AddRow(int64(4), "Chave", noText, noText, noText, str("Devolvido"), noText, noText, noText, noText))

	updated, err := repo.Update(context.Background(), item)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if *updated.Status != "Devolvido" {
		t.Errorf("unexpected status %q", *updated.Status)
	}
}

func TestItemRepositoryUpdateMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	item := model.Item{ID: 999, Name: "Chave", Status: str("Retirado")}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE itens_achados_perdidos")).
		WithArgs("Chave", noText, noText, noText, str("Retirado"), noText, noText, noText, noText, int64(999)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.Update(context.Background(), item); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestItemRepositoryDeleteMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM itens_achados_perdidos")).
		WithArgs(int64(999999)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.Delete(context.Background(), 999999); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestItemRepositoryGet(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id_item = $1")).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows(itemColumnNames).
			AddRow(int64(4), "Chave", noText, str("Cantina"), noText, str("Achado"), noText, noText, noText, noText))

	item, err := repo.Get(context.Background(), 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.FoundAt == nil || *item.FoundAt != "Cantina" {
		t.Errorf("unexpected item %+v", item)
	}
}
