package repository

import (
	"context"
	"testing"

	"mortgage-simulator/domain"
)

func TestCalculationRepositoryMemory_ListNewestFirst(t *testing.T) {
	repo := NewCalculationRepositoryMemory()

	for _, value := range []float64{100000, 200000, 300000} {
		input := domain.MortgageInput{PropertyValue: value, TermYears: 10}
		if err := repo.Save(input, domain.MortgageResult{Principal: value}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	records := repo.List(2)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Input.PropertyValue != 300000 {
		t.Errorf("expected newest record first, got %v", records[0].Input.PropertyValue)
	}
	if records[0].ID == "" || records[0].ID == records[1].ID {
		t.Error("expected distinct non-empty record IDs")
	}

	if got := len(repo.List(100)); got != 3 {
		t.Errorf("expected 3 records without limit cap, got %d", got)
	}
}

func TestLRUCache_GetSet(t *testing.T) {
	cache, err := NewLRUCache(2)
	if err != nil {
		t.Fatalf("new lru cache: %v", err)
	}
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := cache.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if val, ok := cache.Get(ctx, "a"); !ok || val != "1" {
		t.Errorf("expected hit with value 1, got %q (%v)", val, ok)
	}

	// Filling past capacity evicts the oldest entry.
	_ = cache.Set(ctx, "b", "2")
	_ = cache.Set(ctx, "c", "3")
	if _, ok := cache.Get(ctx, "a"); ok {
		t.Error("expected oldest entry to be evicted")
	}
}
