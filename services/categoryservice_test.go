package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planboard/model"
)

var allCats = []model.Category{
	{CategoryID: "c1", Name: "Design"},
	{CategoryID: "c2", Name: "Development"},
	{CategoryID: "c3", Name: "Marketing"},
}

func TestAvailableCategoriesNoProject(t *testing.T) {
	assert.Equal(t, allCats, AvailableCategories(nil, allCats))

	personal := &model.Project{ProjectID: model.PersonalProject}
	assert.Equal(t, allCats, AvailableCategories(personal, allCats))
}

func TestAvailableCategoriesEmptyAllowListFailsOpen(t *testing.T) {
	// An explicitly configured empty allow-list behaves like an absent
	// one and permits everything.
	p := &model.Project{ProjectID: "p1", AvailableCategories: []string{}}
	assert.Equal(t, allCats, AvailableCategories(p, allCats))

	p.AvailableCategories = nil
	assert.Equal(t, allCats, AvailableCategories(p, allCats))
}

func TestAvailableCategoriesIntersection(t *testing.T) {
	p := &model.Project{ProjectID: "p1", AvailableCategories: []string{"c1"}}
	got := AvailableCategories(p, allCats)
	assert.Equal(t, []model.Category{allCats[0]}, got)
}

func TestAvailableCategoriesPreservesInputOrder(t *testing.T) {
	// Allow-list order does not matter; the catalog order wins.
	p := &model.Project{ProjectID: "p1", AvailableCategories: []string{"c3", "c1"}}
	got := AvailableCategories(p, allCats)
	assert.Equal(t, []model.Category{allCats[0], allCats[2]}, got)
}

func TestAvailableCategoriesUnknownIdsIgnored(t *testing.T) {
	p := &model.Project{ProjectID: "p1", AvailableCategories: []string{"nope"}}
	assert.Empty(t, AvailableCategories(p, allCats))
}

func TestCategoryAllowed(t *testing.T) {
	p := &model.Project{ProjectID: "p1", AvailableCategories: []string{"c1"}}

	assert.True(t, CategoryAllowed(p, "c1"))
	assert.False(t, CategoryAllowed(p, "c2"))
	// No category at all is always fine.
	assert.True(t, CategoryAllowed(p, ""))
	// Fail-open without an allow-list.
	assert.True(t, CategoryAllowed(&model.Project{ProjectID: "p2"}, "c2"))
	assert.True(t, CategoryAllowed(nil, "c2"))
}
