package gormstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

func openTestDB(t *testing.T) *SweetRepository {
	t.Helper()
	db, err := Connect(Config{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSweetRepository(db)
}

func mustCreate(t *testing.T, repo *SweetRepository, sweet domain.Sweet) *domain.Sweet {
	t.Helper()
	created, err := repo.Create(context.Background(), &sweet)
	if err != nil {
		t.Fatalf("create sweet: %v", err)
	}
	return created
}

func TestSweetRepository_CreateAndGet(t *testing.T) {
	repo := openTestDB(t)

	created := mustCreate(t, repo, domain.Sweet{
		Name: "Gulab Jamun", Category: "Traditional", Price: 150, Quantity: 50,
		Description: "Milk solid balls in rose syrup",
	})
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
	if created.UpdatedAt != nil {
		t.Fatalf("new rows must have no updated_at")
	}

	got, err := repo.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Gulab Jamun" || got.Quantity != 50 {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestSweetRepository_Get_NotFound(t *testing.T) {
	repo := openTestDB(t)

	if _, err := repo.Get(context.Background(), 404); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestSweetRepository_List_Pagination(t *testing.T) {
	repo := openTestDB(t)
	for _, name := range []string{"A", "B", "C", "D"} {
		mustCreate(t, repo, domain.Sweet{Name: name, Category: "x", Price: 1, Quantity: 1})
	}

	page, err := repo.List(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 || page[0].Name != "B" || page[1].Name != "C" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestSweetRepository_Update_PartialFields(t *testing.T) {
	repo := openTestDB(t)
	created := mustCreate(t, repo, domain.Sweet{
		Name: "Jalebi", Category: "Traditional", Price: 100, Quantity: 60,
	})

	price := 110.0
	updated, err := repo.Update(context.Background(), created.ID, ports.SweetPatch{Price: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Price != 110 {
		t.Fatalf("expected price 110, got %v", updated.Price)
	}
	if updated.Name != "Jalebi" || updated.Category != "Traditional" || updated.Quantity != 60 {
		t.Fatalf("absent fields must keep prior values: %+v", updated)
	}
	if updated.UpdatedAt == nil {
		t.Fatalf("expected updated_at to be set")
	}
}

func TestSweetRepository_Update_EmptyPatch(t *testing.T) {
	repo := openTestDB(t)
	created := mustCreate(t, repo, domain.Sweet{Name: "Sandesh", Category: "Bengali", Price: 140, Quantity: 35})

	updated, err := repo.Update(context.Background(), created.ID, ports.SweetPatch{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Sandesh" || updated.UpdatedAt != nil {
		t.Fatalf("empty patch must be a no-op: %+v", updated)
	}
}

func TestSweetRepository_Update_NotFound(t *testing.T) {
	repo := openTestDB(t)

	name := "Ghost"
	if _, err := repo.Update(context.Background(), 404, ports.SweetPatch{Name: &name}); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestSweetRepository_Delete(t *testing.T) {
	repo := openTestDB(t)
	created := mustCreate(t, repo, domain.Sweet{Name: "Barfi", Category: "Traditional", Price: 110, Quantity: 45})

	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected row gone, got %v", err)
	}
	if err := repo.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound on second delete, got %v", err)
	}
}

func TestSweetRepository_Search(t *testing.T) {
	repo := openTestDB(t)
	mustCreate(t, repo, domain.Sweet{Name: "Gulab Jamun", Category: "Traditional", Price: 150, Quantity: 50})
	mustCreate(t, repo, domain.Sweet{Name: "Rasgulla", Category: "Bengali", Price: 120, Quantity: 40})
	mustCreate(t, repo, domain.Sweet{Name: "Gulab Sharbat", Category: "Beverage", Price: 60, Quantity: 20})

	// Case-insensitive substring on name.
	byName, err := repo.Search(context.Background(), ports.SearchFilter{Name: "gulab"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(byName))
	}

	// Name AND category narrow to the intersection.
	both, err := repo.Search(context.Background(), ports.SearchFilter{Name: "gulab", Category: "trad"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(both) != 1 || both[0].Name != "Gulab Jamun" {
		t.Fatalf("unexpected intersection: %+v", both)
	}

	// Inclusive price bounds.
	minP, maxP := 60.0, 120.0
	byPrice, err := repo.Search(context.Background(), ports.SearchFilter{MinPrice: &minP, MaxPrice: &maxP})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byPrice) != 2 {
		t.Fatalf("expected 2 matches within [60,120], got %d", len(byPrice))
	}
}

func TestSweetRepository_DecrementStock(t *testing.T) {
	repo := openTestDB(t)
	created := mustCreate(t, repo, domain.Sweet{Name: "Laddu", Category: "Traditional", Price: 80, Quantity: 70})

	updated, err := repo.DecrementStock(context.Background(), created.ID, 70)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if updated.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %d", updated.Quantity)
	}

	// Oversell is rejected entirely and the row stays untouched.
	if _, err := repo.DecrementStock(context.Background(), created.ID, 1); !errors.Is(err, domain.ErrSweetUnavailable) {
		t.Fatalf("expected ErrSweetUnavailable, got %v", err)
	}
	after, err := repo.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.Quantity != 0 {
		t.Fatalf("failed purchase must not mutate quantity, got %d", after.Quantity)
	}
}

func TestSweetRepository_DecrementStock_UnknownID(t *testing.T) {
	repo := openTestDB(t)

	if _, err := repo.DecrementStock(context.Background(), 404, 1); !errors.Is(err, domain.ErrSweetUnavailable) {
		t.Fatalf("expected ErrSweetUnavailable, got %v", err)
	}
}

func TestSweetRepository_IncrementStock(t *testing.T) {
	repo := openTestDB(t)
	created := mustCreate(t, repo, domain.Sweet{Name: "Mysore Pak", Category: "South Indian", Price: 130, Quantity: 25})

	updated, err := repo.IncrementStock(context.Background(), created.ID, 15)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if updated.Quantity != 40 {
		t.Fatalf("expected quantity 40, got %d", updated.Quantity)
	}

	if _, err := repo.IncrementStock(context.Background(), 404, 5); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}
