package opentdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizo/internal/domain"
)

type countingLister struct {
	calls      int
	categories []domain.Category
	err        error
}

func (l *countingLister) Categories(_ context.Context) ([]domain.Category, error) {
	l.calls++
	return l.categories, l.err
}

func TestCategoryCacheServesFromCache(t *testing.T) {
	lister := &countingLister{categories: []domain.Category{{ID: 9, Name: "General Knowledge"}}}
	cache := NewCategoryCache(lister, time.Minute)

	for i := 0; i < 3; i++ {
		categories, err := cache.Categories(context.Background())
		if err != nil {
			t.Fatalf("categories failed: %v", err)
		}
		if len(categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(categories))
		}
	}
	if lister.calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", lister.calls)
	}
}

func TestCategoryCacheExpires(t *testing.T) {
	lister := &countingLister{categories: []domain.Category{{ID: 9, Name: "General Knowledge"}}}
	cache := NewCategoryCache(lister, time.Minute)

	now := time.Now()
	cache.clock = func() time.Time { return now }

	if _, err := cache.Categories(context.Background()); err != nil {
		t.Fatalf("categories failed: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := cache.Categories(context.Background()); err != nil {
		t.Fatalf("categories failed: %v", err)
	}
	if lister.calls != 2 {
		t.Fatalf("expected refresh after TTL, got %d calls", lister.calls)
	}
}

func TestCategoryCacheDoesNotCacheErrors(t *testing.T) {
	lister := &countingLister{err: errors.New("boom")}
	cache := NewCategoryCache(lister, time.Minute)

	if _, err := cache.Categories(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	lister.err = nil
	lister.categories = []domain.Category{{ID: 1, Name: "Animals"}}
	categories, err := cache.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories failed after recovery: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected recovered listing, got %+v", categories)
	}
}
