package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const categoryCacheTag = "category-list"

type CategoryService struct {
	db      *gorm.DB
	marshal *marshaler.Marshaler
}

// NewCategoryService builds the service, cacheStore may be nil to disable caching.
func NewCategoryService(db *gorm.DB, cacheStore store.StoreInterface) *CategoryService {
	service := &CategoryService{db: db}
	if cacheStore != nil {
		service.marshal = marshaler.New(cache.New[any](cacheStore))
	}
	return service
}

func GetCategoryListCacheKey(take, offset int) string {
	return fmt.Sprintf("category-list#%d#%d", take, offset)
}

func (v *CategoryService) ListCategory(ctx context.Context, take int, offset int) ([]models.Category, error) {
	key := GetCategoryListCacheKey(take, offset)
	if v.marshal != nil {
		if val, err := v.marshal.Get(ctx, key, new([]models.Category)); err == nil {
			return *(val.(*[]models.Category)), nil
		}
	}

	categories := make([]models.Category, 0)
	if err := v.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).Limit(take).
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("unable to list categories: %w", err)
	}

	if v.marshal != nil {
		if err := v.marshal.Set(
			ctx,
			key,
			categories,
			store.WithExpiration(5*time.Minute),
			store.WithTags([]string{categoryCacheTag}),
		); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("An error occurred when caching categories...")
		}
	}

	return categories, nil
}

func (v *CategoryService) GetCategoryWithID(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	if err := v.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category, ErrCategoryNotFound
		}
		return category, fmt.Errorf("unable to get category: %w", err)
	}
	return category, nil
}

func (v *CategoryService) NewCategory(ctx context.Context, alias, name, description string) (models.Category, error) {
	category := models.Category{
		Alias:       alias,
		Name:        name,
		Description: description,
	}

	var count int64
	if err := v.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("alias = ?", alias).
		Count(&count).Error; err != nil {
		return category, fmt.Errorf("unable to count existing category: %w", err)
	} else if count > 0 {
		return category, ErrCategoryExists
	}

	if err := v.db.WithContext(ctx).Create(&category).Error; err != nil {
		return category, fmt.Errorf("unable to create category: %w", err)
	}

	if v.marshal != nil {
		if err := v.marshal.Invalidate(ctx, store.WithInvalidateTags([]string{categoryCacheTag})); err != nil {
			log.Warn().Err(err).Msg("An error occurred when invalidating category cache...")
		}
	}

	return category, nil
}
