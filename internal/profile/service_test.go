package profile

import (
	"context"
	"reflect"
	"testing"
)

func seeded() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	repo.Seed(UserProfile{
		UserID:    "u1",
		Name:      "Asha",
		Age:       31,
		Gender:    "female",
		Email:     "asha@example.com",
		Allergies: []string{"peanut"},
		Plan:      "free",
	})
	return NewService(repo), repo
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	service, _ := seeded()

	err := service.Update(context.Background(), "u1", Update{Age: intPtr(32)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	p, _ := service.Get(context.Background(), "u1")
	if p.Age != 32 {
		t.Fatalf("age not updated: %d", p.Age)
	}
	if p.Name != "Asha" || p.Email != "asha@example.com" {
		t.Fatalf("unrelated fields changed: %+v", p)
	}
	if !reflect.DeepEqual(p.Allergies, []string{"peanut"}) {
		t.Fatalf("allergies changed without being set: %v", p.Allergies)
	}
}

func TestUpdate_RejectsEmptyName(t *testing.T) {
	service, _ := seeded()
	if err := service.Update(context.Background(), "u1", Update{Name: strPtr("  ")}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestReplaceAllergies_ReplacesWholeList(t *testing.T) {
	service, _ := seeded()

	err := service.ReplaceAllergies(context.Background(), "u1", []string{" soy ", "", "milk"})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	p, _ := service.Get(context.Background(), "u1")
	want := []string{"soy", "milk"}
	if !reflect.DeepEqual(p.Allergies, want) {
		t.Fatalf("expected %v, got %v", want, p.Allergies)
	}
}

func TestReplaceAllergies_EmptyListClears(t *testing.T) {
	service, _ := seeded()

	if err := service.ReplaceAllergies(context.Background(), "u1", nil); err != nil {
		t.Fatalf("replace: %v", err)
	}

	p, _ := service.Get(context.Background(), "u1")
	if len(p.Allergies) != 0 {
		t.Fatalf("expected cleared list, got %v", p.Allergies)
	}
}

func TestGet_Missing(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	if _, err := service.Get(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
