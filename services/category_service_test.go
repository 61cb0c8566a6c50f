package services_test

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

type mockCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Category) error {
	for _, existing := range m.categories {
		if existing.Slug == c.Slug {
			return errDuplicateKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (m *mockCategoryRepo) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (m *mockCategoryRepo) FindAll(_ context.Context, activeOnly bool) ([]models.Category, error) {
	var result []models.Category
	for _, c := range m.categories {
		if activeOnly && !c.Active {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder < result[j].DisplayOrder
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *mockCategoryRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	c, ok := m.categories[id]
	if !ok {
		return errNotFound
	}
	c.Active = false
	return nil
}

func newCategoryService(repo *mockCategoryRepo) services.CategoryService {
	logger, _ := zap.NewDevelopment()
	return services.NewCategoryService(repo, logger)
}

func TestCreateCategory_LowercasesSlug(t *testing.T) {
	svc := newCategoryService(newMockCategoryRepo())

	category, svcErr := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{
		Name: "Handmade Gifts",
		Slug: "Handmade-Gifts",
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "handmade-gifts", category.Slug)
	assert.True(t, category.Active)
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := newCategoryService(repo)

	_, svcErr := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{
		Name: "Handmade Gifts", Slug: "handmade-gifts",
	})
	assert.Nil(t, svcErr)

	_, svcErr = svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{
		Name: "Gifts Again", Slug: "handmade-gifts",
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
}

func TestGetCategory_ByIDAndBySlug(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := newCategoryService(repo)

	created, svcErr := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{
		Name: "Paintings", Slug: "paintings",
	})
	assert.Nil(t, svcErr)

	byID, svcErr := svc.GetCategory(context.Background(), created.ID.String())
	assert.Nil(t, svcErr)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, svcErr := svc.GetCategory(context.Background(), "paintings")
	assert.Nil(t, svcErr)
	assert.Equal(t, created.ID, bySlug.ID)

	_, svcErr = svc.GetCategory(context.Background(), "no-such-category")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestListCategories_ActiveOnlyHidesDeactivated(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := newCategoryService(repo)

	first, _ := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{
		Name: "Paintings", Slug: "paintings", DisplayOrder: 2,
	})
	svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{
		Name: "Printed T-Shirts", Slug: "printed-t-shirts", DisplayOrder: 1,
	})

	assert.Nil(t, svc.DeactivateCategory(context.Background(), first.ID))

	active, svcErr := svc.ListCategories(context.Background(), true)
	assert.Nil(t, svcErr)
	assert.Len(t, active, 1)
	assert.Equal(t, "printed-t-shirts", active[0].Slug)

	all, svcErr := svc.ListCategories(context.Background(), false)
	assert.Nil(t, svcErr)
	assert.Len(t, all, 2)
	assert.Equal(t, "printed-t-shirts", all[0].Slug) // display order wins
}

func TestDeactivateCategory_NotFound(t *testing.T) {
	svc := newCategoryService(newMockCategoryRepo())

	svcErr := svc.DeactivateCategory(context.Background(), uuid.New())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
