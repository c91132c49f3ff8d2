package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/acervo-api/internal/errs"
	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/jackc/pgx/v5"
)

func ptr(s string) *string {
	return &s
}

// fakeQuestions records calls and answers from a map.
type fakeQuestions struct {
	rows      map[int64]model.Question
	updated   []model.Question
	nextID    int64
	vanish    bool
	driverErr error
}

func (f *fakeQuestions) List(context.Context) ([]model.Question, error) {
	out := []model.Question{}
	for _, q := range f.rows {
		out = append(out, q)
	}
	return out, f.driverErr
}

func (f *fakeQuestions) Get(_ context.Context, id int64) (*model.Question, error) {
	if f.driverErr != nil {
		return nil, f.driverErr
	}
	q, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("get: %w", pgx.ErrNoRows)
	}
	return &q, nil
}

func (f *fakeQuestions) Create(_ context.Context, q model.Question) (int64, error) {
	f.nextID++
	q.ID = f.nextID
	f.rows[q.ID] = q
	return q.ID, nil
}

func (f *fakeQuestions) Update(_ context.Context, q model.Question) error {
	if f.vanish {
		return fmt.Errorf("update: %w", pgx.ErrNoRows)
	}
	f.updated = append(f.updated, q)
	f.rows[q.ID] = q
	return nil
}

func (f *fakeQuestions) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("delete: %w", pgx.ErrNoRows)
	}
	delete(f.rows, id)
	return nil
}

func assertNotFound(t *testing.T, err error, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusNotFound || httpErr.Message != message {
		t.Fatalf("expected 404 %q, got %d %q", message, httpErr.Status, httpErr.Message)
	}
}

func TestQuestionServiceGet(t *testing.T) {
	store := &fakeQuestions{rows: map[int64]model.Question{1: {ID: 1, Statement: "a"}}}
	svc := NewQuestionService(store)

	q, err := svc.Get(context.Background(), "1")
	if err != nil || q.Statement != "a" {
		t.Fatalf("unexpected result %+v, %v", q, err)
	}

	for _, id := range []string{"999999", "abc", "1.5", ""} {
		_, err := svc.Get(context.Background(), id)
		assertNotFound(t, err, questionNotFoundMessage)
	}
}

func TestQuestionServiceCreate(t *testing.T) {
	store := &fakeQuestions{rows: map[int64]model.Question{}, nextID: 41}
	svc := NewQuestionService(store)

	res, err := svc.Create(context.Background(), &model.CreateQuestionRequest{
		Statement: "2+2?", Subject: "Matemática", Topic: "Soma", Level: "Fácil",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.ID != 42 || res.Message != questionCreatedMessage {
		t.Errorf("unexpected response %+v", res)
	}
}

func TestQuestionServiceUpdateMerges(t *testing.T) {
	store := &fakeQuestions{rows: map[int64]model.Question{
		5: {ID: 5, Statement: "a", Subject: "b", Topic: "c", Level: "d"},
	}}
	svc := NewQuestionService(store)

	res, err := svc.Update(context.Background(), &model.UpdateQuestionRequest{ID: "5", Topic: ptr("novo")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.Message != questionUpdatedMessage {
		t.Errorf("unexpected message %q", res.Message)
	}

	want := model.Question{ID: 5, Statement: "a", Subject: "b", Topic: "novo", Level: "d"}
	if len(store.updated) != 1 || store.updated[0] != want {
		t.Errorf("expected %+v written, got %+v", want, store.updated)
	}
}

func TestQuestionServiceUpdateMissing(t *testing.T) {
	store := &fakeQuestions{rows: map[int64]model.Question{}}
	svc := NewQuestionService(store)

	_, err := svc.Update(context.Background(), &model.UpdateQuestionRequest{ID: "8", Topic: ptr("x")})
	assertNotFound(t, err, questionNotFoundMessage)
	if len(store.updated) != 0 {
		t.Error("nothing must be written for a missing question")
	}
}

func TestQuestionServiceUpdateRowVanished(t *testing.T) {
	store := &fakeQuestions{rows: map[int64]model.Question{5: {ID: 5}}, vanish: true}
	svc := NewQuestionService(store)

	_, err := svc.Update(context.Background(), &model.UpdateQuestionRequest{ID: "5"})
	assertNotFound(t, err, questionNotFoundMessage)
}

func TestQuestionServiceDelete(t *testing.T) {
	store := &fakeQuestions{rows: map[int64]model.Question{3: {ID: 3}}}
	svc := NewQuestionService(store)

	res, err := svc.Delete(context.Background(), "3")
	if err != nil || res.Message != questionDeletedMessage {
		t.Fatalf("unexpected result %+v, %v", res, err)
	}

	_, err = svc.Delete(context.Background(), "3")
	assertNotFound(t, err, questionNotFoundMessage)
}

func TestQuestionServicePassesDriverErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewQuestionService(&fakeQuestions{driverErr: boom})

	if _, err := svc.Get(context.Background(), "1"); !errors.Is(err, boom) {
		t.Fatalf("expected driver error to pass through, got %v", err)
	}
}

type fakeItems struct {
	rows    map[int64]model.Item
	written []model.Item
	vanish  bool
}

func (f *fakeItems) List(context.Context) ([]model.Item, error) {
	return []model.Item{}, nil
}

func (f *fakeItems) Get(_ context.Context, id int64) (*model.Item, error) {
	item, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &item, nil
}

func (f *fakeItems) Create(_ context.Context, item model.Item) (*model.Item, error) {
	item.ID = int64(len(f.rows) + 1)
	f.rows[item.ID] = item
	return &item, nil
}

func (f *fakeItems) Update(_ context.Context, item model.Item) (*model.Item, error) {
	if _, ok := f.rows[item.ID]; !ok || f.vanish {
		return nil, pgx.ErrNoRows
	}
	f.written = append(f.written, item)
	f.rows[item.ID] = item
	return &item, nil
}

func (f *fakeItems) Delete(_ context.Context, id int64) (*model.Item, error) {
	item, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(f.rows, id)
	return &item, nil
}

func TestItemServiceCreateAppliesDefaults(t *testing.T) {
	svc := NewItemService(&fakeItems{rows: map[int64]model.Item{}})

	res, err := svc.Create(context.Background(), &model.CreateItemRequest{Name: "Casaco", Description: ptr("")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Message != itemCreatedMessage {
		t.Errorf("unexpected message %q", res.Message)
	}
	if res.Item.Status == nil || *res.Item.Status != model.StatusFound {
		t.Errorf("expected default status, got %v", res.Item.Status)
	}
	if res.Item.Description != nil {
		t.Error("expected empty description stored as null")
	}
}

func TestItemServiceUpdateEchoesRow(t *testing.T) {
	store := &fakeItems{rows: map[int64]model.Item{
		2: {ID: 2, Name: "Chave", Status: ptr(model.StatusFound), FoundAt: ptr("Cantina")},
	}}
	svc := NewItemService(store)

	res, err := svc.Update(context.Background(), &model.UpdateItemRequest{ID: "2", Status: ptr("Devolvido")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.Message != itemUpdatedMessage || *res.Item.Status != "Devolvido" || *res.Item.FoundAt != "Cantina" {
		t.Errorf("unexpected response %+v", res.Item)
	}
}

func TestItemServiceUpdateMissing(t *testing.T) {
	store := &fakeItems{rows: map[int64]model.Item{}}
	svc := NewItemService(store)

	_, err := svc.Update(context.Background(), &model.UpdateItemRequest{ID: "999", Status: ptr("Retirado")})
	assertNotFound(t, err, itemNotFoundMessage)
	if len(store.written) != 0 {
		t.Error("nothing must be written for a missing item")
	}
}

func TestItemServiceUpdateRowVanished(t *testing.T) {
	store := &fakeItems{rows: map[int64]model.Item{2: {ID: 2, Name: "Chave"}}, vanish: true}
	svc := NewItemService(store)

	_, err := svc.Update(context.Background(), &model.UpdateItemRequest{ID: "2", Status: ptr("Retirado")})
	assertNotFound(t, err, itemNotFoundMessage)
}

func TestItemServiceDelete(t *testing.T) {
	store := &fakeItems{rows: map[int64]model.Item{2: {ID: 2, Name: "Chave"}}}
	svc := NewItemService(store)

	res, err := svc.Delete(context.Background(), "2")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if res.Message != itemDeletedMessage || res.Item.Name != "Chave" {
		t.Errorf("expected deleted row echoed, got %+v", res)
	}

	_, err = svc.Delete(context.Background(), "2")
	assertNotFound(t, err, itemNotFoundMessage)

	_, err = svc.Get(context.Background(), "x")
	assertNotFound(t, err, itemNotFoundMessage)
}
