package contracts

import (
	"context"
	"errors"
	"testing"

	"petcare-api/internal/platform/patch"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID      map[int64]Contract
	seq       int64
	updateErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Contract{}}
}

func (r *testRepo) List(ctx context.Context) ([]Contract, error) {
	out := make([]Contract, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Contract, error) {
	c, ok := r.byID[id]
	if !ok {
		return Contract{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) Create(ctx context.Context, c Contract) (int64, error) {
	r.seq++
	c.ID = r.seq
	r.byID[c.ID] = c
	return c.ID, nil
}

func (r *testRepo) Update(ctx context.Context, c Contract) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AssignsID_LeavesReviewEmpty(t *testing.T) {
	svc := NewService(newTestRepo())

	c, err := svc.Create(context.Background(), CreateInput{PetID: 1, ServiceID: 2, Date: "2024-05-01", Price: 20})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected id 1, got %d", c.ID)
	}
	if c.Assessment != nil || c.Comments != nil {
		t.Fatalf("expected nil assessment/comments, got %#v", c)
	}
}

func TestService_Update_OnlyTouchesPresentFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, _ := svc.Create(context.Background(), CreateInput{PetID: 1, ServiceID: 2, Date: "2024-05-01", Price: 20})

	score := int64(4)
	updated, err := svc.Update(context.Background(), c.ID, UpdateInput{Assessment: patch.Field[int64]{Present: true, Value: &score}})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Assessment == nil || *updated.Assessment != 4 {
		t.Fatalf("expected assessment 4, got %#v", updated.Assessment)
	}
	if updated.Date != "2024-05-01" || updated.Price != 20 || updated.PetID != 1 {
		t.Fatalf("expected untouched fields to keep values, got %#v", updated)
	}

	// el input no debe quedar aliasado con lo persistido
	score = 1
	stored, _ := repo.GetByID(context.Background(), c.ID)
	if *stored.Assessment != 4 {
		t.Fatalf("expected stored assessment to stay 4, got %d", *stored.Assessment)
	}
}

func TestService_Update_NullClearsReview(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, _ := svc.Create(context.Background(), CreateInput{PetID: 1, ServiceID: 2, Date: "2024-05-01", Price: 20})
	if _, err := svc.Update(context.Background(), c.ID, UpdateInput{
		Assessment: patch.Set(int64(5)),
		Comments:   patch.Set("ok"),
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), c.ID, UpdateInput{
		Assessment: patch.Null[int64](),
		Comments:   patch.Null[string](),
		ServiceID:  patch.Null[int64](),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Assessment != nil || updated.Comments != nil {
		t.Fatalf("expected review cleared, got %#v", updated)
	}
	if updated.ServiceID != 0 || updated.PetID != 1 {
		t.Fatalf("expected service_id cleared and pet_id kept, got %#v", updated)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), 99, UpdateInput{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Update_PropagatesRepoError(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	c, _ := svc.Create(context.Background(), CreateInput{PetID: 1})

	repo.updateErr = errors.New("db down")
	if _, err := svc.Update(context.Background(), c.ID, UpdateInput{}); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
