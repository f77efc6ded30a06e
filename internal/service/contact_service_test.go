package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/techfolio/api/internal/model"
)

type fakeContactStore struct {
	rows []*model.ContactRequest
	err  error
}

func (f *fakeContactStore) Insert(ctx context.Context, c *model.ContactRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	id := fmt.Sprintf("CR-%03d", len(f.rows)+1)
	f.rows = append(f.rows, c)
	return id, nil
}

type fakeOutbox struct {
	topics   []string
	payloads [][]byte
	err      error
}

func (f *fakeOutbox) Add(ctx context.Context, topic string, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	return nil
}

func TestSubmit_RequiresNameAndEmail(t *testing.T) {
	repo := &fakeContactStore{}
	svc := &ContactService{Repo: repo, Outbox: &fakeOutbox{}}

	cases := []struct{ name, email string }{
		{"", "a@b.com"},
		{"Jane", ""},
		{"", ""},
	}
	for _, c := range cases {
		_, err := svc.Submit(context.Background(), c.name, c.email, "", "")
		if !errors.Is(err, model.ErrContactRequired) {
			t.Errorf("Submit(%q, %q) err = %v, want ErrContactRequired", c.name, c.email, err)
		}
	}
	if len(repo.rows) != 0 {
		t.Errorf("invalid input must not reach the store, got %d rows", len(repo.rows))
	}
}

func TestSubmit_RejectsInvalidEmail(t *testing.T) {
	repo := &fakeContactStore{}
	svc := &ContactService{Repo: repo, Outbox: &fakeOutbox{}}

	_, err := svc.Submit(context.Background(), "Jane", "not-an-email", "", "")
	if !errors.Is(err, model.ErrInvalidEmail) {
		t.Fatalf("err = %v, want ErrInvalidEmail", err)
	}
	if len(repo.rows) != 0 {
		t.Errorf("invalid input must not reach the store")
	}
}

func TestSubmit_IdenticalSubmissionsGetDistinctIDs(t *testing.T) {
	repo := &fakeContactStore{}
	svc := &ContactService{Repo: repo, Outbox: &fakeOutbox{}}

	id1, err := svc.Submit(context.Background(), "Jane", "jane@example.com", "555", "hi")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	id2, err := svc.Submit(context.Background(), "Jane", "jane@example.com", "555", "hi")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if id1 == "" || id2 == "" || id1 == id2 {
		t.Errorf("expected two distinct ids, got %q and %q", id1, id2)
	}
	if len(repo.rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(repo.rows))
	}
}

func TestSubmit_RecordsOutboxEvent(t *testing.T) {
	ob := &fakeOutbox{}
	svc := &ContactService{Repo: &fakeContactStore{}, Outbox: ob}

	id, err := svc.Submit(context.Background(), "Jane", "jane@example.com", "", "hello")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(ob.topics) != 1 || ob.topics[0] != "contact.submitted" {
		t.Fatalf("expected one contact.submitted event, got %v", ob.topics)
	}
	if !strings.Contains(string(ob.payloads[0]), id) {
		t.Errorf("payload %s does not reference id %s", ob.payloads[0], id)
	}
}

func TestSubmit_OutboxFailureStillSucceeds(t *testing.T) {
	svc := &ContactService{
		Repo:   &fakeContactStore{},
		Outbox: &fakeOutbox{err: errors.New("outbox down")},
	}

	id, err := svc.Submit(context.Background(), "Jane", "jane@example.com", "", "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id == "" {
		t.Fatal("expected an id even when the outbox write fails")
	}
}

func TestSubmit_StoreFailurePropagates(t *testing.T) {
	svc := &ContactService{
		Repo:   &fakeContactStore{err: errors.New("connection refused")},
		Outbox: &fakeOutbox{},
	}

	if _, err := svc.Submit(context.Background(), "Jane", "jane@example.com", "", ""); err == nil {
		t.Fatal("expected store failure to propagate")
	}
}
