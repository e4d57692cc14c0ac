package repository

import (
	"errors"
	"testing"

	"github.com/forgo/volunteer/internal/model"
)

// ============================================================================
// Save Tests
// ============================================================================

func TestOpportunityRepository_Save_AssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	repo := NewOpportunityRepository()
	first := repo.Save(model.NewOpportunity().SetTitle("a"))
	second := repo.Save(model.NewOpportunity().SetTitle("b"))

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestOpportunityRepository_Save_ExistingIDUpdatesInPlace(t *testing.T) {
	t.Parallel()

	repo := NewOpportunityRepository()
	opp := repo.Save(model.NewOpportunity().SetTitle("a"))
	repo.Save(model.NewOpportunity().SetTitle("b"))

	replacement := model.NewOpportunity().SetID(opp.ID).SetTitle("a2")
	repo.Save(replacement)

	all := repo.GetAll()
	if len(all) != 2 {
		t.Fatalf("expected 2 opportunities, got %d", len(all))
	}
	if all[0] != replacement {
		t.Error("first slot should hold the replacement")
	}
}

func TestOpportunityRepository_Save_IDsNeverReused(t *testing.T) {
	t.Parallel()

	repo := NewOpportunityRepository()
	repo.Save(model.NewOpportunity())
	second := repo.Save(model.NewOpportunity())
	if err := repo.Delete(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	third := repo.Save(model.NewOpportunity())
	if third.ID != 3 {
		t.Errorf("expected id 3 after delete, got %d", third.ID)
	}
}

func TestOpportunityRepository_Save_AbsentIDIsAppended(t *testing.T) {
	t.Parallel()

	repo := NewOpportunityRepository()
	opp := repo.Save(model.NewOpportunity())
	_ = repo.Delete(opp)

	repo.Save(opp)

	all := repo.GetAll()
	if len(all) != 1 || all[0].ID != 1 {
		t.Errorf("expected re-saved opportunity with id 1, got %+v", all)
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestOpportunityRepository_Delete_MissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo := NewOpportunityRepository()
	err := repo.Delete(model.NewOpportunity().SetID(42))

	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestOpportunityRepository_Delete_RemovesOnlyMatch(t *testing.T) {
	t.Parallel()

	repo := NewOpportunityRepository()
	a := repo.Save(model.NewOpportunity().SetTitle("a"))
	b := repo.Save(model.NewOpportunity().SetTitle("b"))

	if err := repo.Delete(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := repo.GetAll()
	if len(all) != 1 || all[0] != b {
		t.Errorf("expected only b to remain, got %+v", all)
	}
	if repo.GetByID(a.ID) != nil {
		t.Error("deleted opportunity should not be found by id")
	}
}

// ============================================================================
// Query Tests
// ============================================================================

func TestOpportunityRepository_GetByOrganization(t *testing.T) {
	t.Parallel()

	repo := NewOpportunityRepository()
	green := model.NewOrganization().SetEmail("green@x.com")
	blue := model.NewOrganization().SetEmail("blue@x.com")
	repo.Save(green.CreateOpportunity().SetTitle("g1"))
	repo.Save(blue.CreateOpportunity().SetTitle("b1"))
	repo.Save(green.CreateOpportunity().SetTitle("g2"))
	repo.Save(model.NewOpportunity().SetTitle("orphan"))

	got := repo.GetByOrganization(green)
	if len(got) != 2 || got[0].Title != "g1" || got[1].Title != "g2" {
		t.Errorf("expected g1, g2 in order, got %+v", got)
	}
}

// ============================================================================
// GetAll Tests
// ============================================================================

func TestOpportunityRepository_GetAll_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	repo := NewOpportunityRepository()
	first := repo.Save(model.NewOpportunity().SetTitle("a"))
	second := repo.Save(model.NewOpportunity().SetTitle("b"))

	all := repo.GetAll()
	repo.Save(model.NewOpportunity().SetTitle("c"))
	if err := repo.Delete(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(all) != 2 || all[0] != first || all[1] != second {
		t.Errorf("snapshot should keep the original two entries, got %+v", all)
	}
	if got := len(repo.GetAll()); got != 2 {
		t.Errorf("expected 2 stored opportunities, got %d", got)
	}

	// Entities are shared with the repository
	all[1].SetTitle("renamed")
	if repo.GetByID(second.ID).Title != "renamed" {
		t.Error("snapshot entries should point at stored opportunities")
	}
}
