package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/devcamper/internal/app/store/audit"
	"github.com/dalemusser/devcamper/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_LogAndQuery(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := primitive.NewObjectID()
	other := primitive.NewObjectID()
	base := time.Now().UTC().Add(-time.Hour)

	events := []audit.Event{
		{Timestamp: base, Category: audit.CategoryAdmin, EventType: audit.EventBootcampCreated, BootcampID: &id, Success: true},
		{Timestamp: base.Add(time.Minute), Category: audit.CategoryGeocode, EventType: audit.EventBootcampGeocoded, BootcampID: &id, Success: true,
			Details: map[string]string{"address": "233 Bay St, Toronto, ON"}},
		{Timestamp: base.Add(2 * time.Minute), Category: audit.CategoryGeocode, EventType: audit.EventBootcampGeocoded, BootcampID: &id, Success: true,
			Details: map[string]string{"address": "1 Yonge St, Toronto, ON"}},
		{Timestamp: base.Add(3 * time.Minute), Category: audit.CategoryAdmin, EventType: audit.EventBootcampCreated, BootcampID: &other, Success: true},
	}
	for _, e := range events {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	got, err := store.GetByBootcamp(ctx, id, 10)
	if err != nil {
		t.Fatalf("GetByBootcamp failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if !got[0].Timestamp.After(got[2].Timestamp) {
		t.Error("expected newest first")
	}

	n, err := store.CountByFilter(ctx, audit.QueryFilter{Category: audit.CategoryAdmin})
	if err != nil {
		t.Fatalf("CountByFilter failed: %v", err)
	}
	if n != 2 {
		t.Errorf("admin count: got %d, want 2", n)
	}

	addr, err := store.LastGeocodedAddress(ctx, id)
	if err != nil {
		t.Fatalf("LastGeocodedAddress failed: %v", err)
	}
	if addr != "1 Yonge St, Toronto, ON" {
		t.Errorf("LastGeocodedAddress: got %q", addr)
	}

	if _, err := store.LastGeocodedAddress(ctx, other); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}
