package services

import (
	"context"
	"errors"
	"testing"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	"github.com/dgraph-io/ristretto"
	ristrettoCache "github.com/eko/gocache/store/ristretto/v4"
	"github.com/samber/lo"
)

func TestCategories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	service := NewCategoryService(db, nil)

	tech, err := service.NewCategory(ctx, "tech", "Technology", "Talks and workshops")
	if err != nil {
		t.Fatalf("NewCategory: %v", err)
	}
	if _, err := service.NewCategory(ctx, "tech", "Again", ""); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
	if _, err := service.NewCategory(ctx, "music", "Music", ""); err != nil {
		t.Fatalf("NewCategory: %v", err)
	}

	found, err := service.GetCategoryWithID(ctx, tech.ID)
	if err != nil {
		t.Fatalf("GetCategoryWithID: %v", err)
	}
	if found.Alias != "tech" || found.Name != "Technology" {
		t.Fatalf("unexpected category: %#v", found)
	}
	if _, err := service.GetCategoryWithID(ctx, tech.ID+100); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	page, err := service.ListCategory(ctx, 1, 1)
	if err != nil {
		t.Fatalf("ListCategory: %v", err)
	}
	if len(page) != 1 || page[0].Alias != "music" {
		t.Fatalf("unexpected page: %#v", page)
	}
}

func TestCategoryListCacheKey(t *testing.T) {
	if key := GetCategoryListCacheKey(20, 40); key != "category-list#20#40" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestCategoryListCache(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		t.Fatalf("create cache: %v", err)
	}
	t.Cleanup(client.Close)
	service := NewCategoryService(db, ristrettoCache.NewRistretto(client))

	aliases := func(items []models.Category) []string {
		return lo.Map(items, func(item models.Category, _ int) string { return item.Alias })
	}

	if _, err := service.NewCategory(ctx, "tech", "Technology", ""); err != nil {
		t.Fatalf("NewCategory: %v", err)
	}
	first, err := service.ListCategory(ctx, 20, 0)
	if err != nil {
		t.Fatalf("ListCategory: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("unexpected categories: %v", aliases(first))
	}
	client.Wait()

	// Written behind the service's back, the cached page must not see it
	if err := db.Create(&models.Category{Alias: "music", Name: "Music"}).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	cached, err := service.ListCategory(ctx, 20, 0)
	if err != nil {
		t.Fatalf("ListCategory: %v", err)
	}
	if len(cached) != 1 || cached[0].ID != first[0].ID || cached[0].Alias != first[0].Alias {
		t.Fatalf("expected the cached page, got %v", aliases(cached))
	}

	if _, err := service.NewCategory(ctx, "food", "Food", ""); err != nil {
		t.Fatalf("NewCategory: %v", err)
	}
	fresh, err := service.ListCategory(ctx, 20, 0)
	if err != nil {
		t.Fatalf("ListCategory: %v", err)
	}
	if got := aliases(fresh); len(got) != 3 || got[0] != "tech" || got[1] != "music" || got[2] != "food" {
		t.Fatalf("creating a category must invalidate the list, got %v", got)
	}
}
