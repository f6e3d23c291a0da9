// Package contracttest holds behavior suites shared by every implementation
// of an out-port. Adapter packages call the Run* functions from their own
// tests so alternative backends stay interchangeable.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	idempotencyport "github.com/triplinker/triplinker-api/internal/ports/out/idempotency"
	tokenstoreport "github.com/triplinker/triplinker-api/internal/ports/out/tokenstore"
)

type CleanupFunc = func()

type TokenStoreFactory func(t *testing.T) (tokenstoreport.Store, CleanupFunc)

func RunTokenStore(t *testing.T, newStore TokenStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Missing key.
	if _, err := store.GetItem(ctx, "authToken"); !errors.Is(err, tokenstoreport.ErrNotFound) {
		t.Fatalf("GetItem on empty store: err=%v, want ErrNotFound", err)
	}

	// Set and read back.
	if err := store.SetItem(ctx, "authToken", "tok-1"); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	got, err := store.GetItem(ctx, "authToken")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got != "tok-1" {
		t.Fatalf("GetItem=%q, want %q", got, "tok-1")
	}

	// Overwrite semantics.
	if err := store.SetItem(ctx, "authToken", "tok-2"); err != nil {
		t.Fatalf("SetItem overwrite: %v", err)
	}
	got, err = store.GetItem(ctx, "authToken")
	if err != nil {
		t.Fatalf("GetItem after overwrite: %v", err)
	}
	if got != "tok-2" {
		t.Fatalf("GetItem=%q, want %q", got, "tok-2")
	}

	// Keys are independent.
	if err := store.SetItem(ctx, "other", "x"); err != nil {
		t.Fatalf("SetItem other: %v", err)
	}

	// Delete is idempotent.
	if err := store.DeleteItem(ctx, "authToken"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if err := store.DeleteItem(ctx, "authToken"); err != nil {
		t.Fatalf("DeleteItem twice: %v", err)
	}
	if _, err := store.GetItem(ctx, "authToken"); !errors.Is(err, tokenstoreport.ErrNotFound) {
		t.Fatalf("GetItem after delete: err=%v, want ErrNotFound", err)
	}
	got, err = store.GetItem(ctx, "other")
	if err != nil || got != "x" {
		t.Fatalf("GetItem other: %q, %v", got, err)
	}
}

type IdempotencyStoreFactory func(t *testing.T) (idempotencyport.Store, CleanupFunc)

func RunIdempotencyStore(t *testing.T, newStore IdempotencyStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	fp := idempotencyport.Fingerprint{
		Key:      "key-1",
		UserID:   "u_1",
		Method:   "POST",
		Route:    "POST /v1/places/properties",
		BodyHash: "abc",
	}

	// Miss on empty store.
	if _, ok, err := store.Get(ctx, fp); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}

	rec := idempotencyport.Record{
		StatusCode:  201,
		ContentType: "application/json",
		Body:        []byte(`{"id":"prop_1"}`),
		CreatedAt:   time.Unix(100, 0).UTC(),
	}
	if err := store.Put(ctx, fp, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Get(ctx, fp)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.StatusCode != 201 || string(got.Body) != `{"id":"prop_1"}` {
		t.Fatalf("Get=%+v", got)
	}

	// Any fingerprint component change is a different record.
	other := fp
	other.BodyHash = "def"
	if _, ok, err := store.Get(ctx, other); err != nil || ok {
		t.Fatalf("Get with different body hash: ok=%v err=%v", ok, err)
	}
	other = fp
	other.UserID = "u_2"
	if _, ok, err := store.Get(ctx, other); err != nil || ok {
		t.Fatalf("Get with different user: ok=%v err=%v", ok, err)
	}
}
