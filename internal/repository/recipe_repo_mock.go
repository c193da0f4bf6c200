package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/plateful/recipebook/internal/models"
)

// MockRecipeRepository is an in-memory implementation of RecipeRepository for
// tests that do not need a real database.
type MockRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]models.Recipe
	order   []uuid.UUID
}

// NewMockRecipeRepository creates an empty in-memory repository.
func NewMockRecipeRepository() *MockRecipeRepository {
	return &MockRecipeRepository{recipes: make(map[uuid.UUID]models.Recipe)}
}

func (m *MockRecipeRepository) Create(_ context.Context, recipe *models.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].RecipeID = recipe.ID
	}
	m.recipes[recipe.ID] = *recipe
	m.order = append(m.order, recipe.ID)
	return nil
}

func (m *MockRecipeRepository) GetByTitle(_ context.Context, title string) (*models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.order {
		if r := m.recipes[id]; r.Title == title {
			out := r
			return &out, nil
		}
	}
	return nil, ErrRecipeNotFound
}

func (m *MockRecipeRepository) List(_ context.Context, page, perPage int, search string) ([]models.Recipe, *Pagination, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	var matched []models.Recipe
	needle := strings.ToLower(search)
	for _, id := range m.order {
		r := m.recipes[id]
		if search == "" || matches(&r, needle) {
			matched = append(matched, r)
		}
	}

	total := int64(len(matched))
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}
	items := append([]models.Recipe(nil), matched[start:end]...)
	return items, &Pagination{Page: page, Pages: pages, PerPage: perPage, Total: total}, nil
}

func matches(r *models.Recipe, needle string) bool {
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), needle) {
			return true
		}
	}
	return false
}

func (m *MockRecipeRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Recipe
	for _, id := range m.order {
		if r := m.recipes[id]; r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockRecipeRepository) Update(ctx context.Context, title string, updated *models.Recipe, requester uuid.UUID) (*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		r := m.recipes[id]
		if r.Title != title {
			continue
		}
		if !r.OwnedBy(requester) {
			return nil, ErrNotOwner
		}
		r.Title = updated.Title
		r.Description = updated.Description
		r.Instructions = updated.Instructions
		r.Ingredients = append([]models.Ingredient(nil), updated.Ingredients...)
		for i := range r.Ingredients {
			r.Ingredients[i].RecipeID = r.ID
		}
		m.recipes[id] = r
		out := r
		return &out, nil
	}
	return nil, ErrRecipeNotFound
}

func (m *MockRecipeRepository) Delete(_ context.Context, title string, requester uuid.UUID) (*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range m.order {
		r := m.recipes[id]
		if r.Title != title {
			continue
		}
		if !r.OwnedBy(requester) {
			return nil, ErrNotOwner
		}
		delete(m.recipes, id)
		m.order = append(m.order[:i], m.order[i+1:]...)
		out := r
		return &out, nil
	}
	return nil, ErrRecipeNotFound
}

func (m *MockRecipeRepository) SetImageURL(_ context.Context, title, imageURL string, requester uuid.UUID) (*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		r := m.recipes[id]
		if r.Title != title {
			continue
		}
		if !r.OwnedBy(requester) {
			return nil, ErrNotOwner
		}
		r.ImageURL = imageURL
		m.recipes[id] = r
		out := r
		return &out, nil
	}
	return nil, ErrRecipeNotFound
}
