package contentsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "ecojourney/internal/api/base/service"
	contentdto "ecojourney/internal/api/content/dto"
	models "ecojourney/internal/api/content/models"
	"ecojourney/internal/common"
	"ecojourney/internal/global"
)

// CategoryService quản lý danh mục nội dung
type CategoryService struct {
	basesvc.BaseServiceMongo[models.ContentCategory]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ContentCategories)
	if !exist {
		return nil, fmt.Errorf("failed to get content_categories collection: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.ContentCategory](collection),
	}, nil
}

// Create tạo danh mục mới, tên danh mục là duy nhất.
// Slug bỏ trống sẽ được sinh từ tên.
func (s *CategoryService) Create(ctx context.Context, input *contentdto.CategoryCreateInput) (*models.ContentCategory, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicate
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Name)
	}

	category, err := s.InsertOne(ctx, models.ContentCategory{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Slugify chuyển tên danh mục thành slug: chữ thường, thay khoảng trắng bằng gạch ngang
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
