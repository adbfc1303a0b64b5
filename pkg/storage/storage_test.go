package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thatguydan86/rentradar/pkg/engine"
)

func intPtr(n int) *int { return &n }

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "rentradar.sqlite"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testLead(id, area string, profit70 int) engine.Lead {
	return engine.Lead{
		ID:          id,
		Area:        area,
		Address:     "Mere Lane",
		RentPCM:     1200,
		Bedrooms:    4,
		Bathrooms:   intPtr(2),
		Category:    "Detached",
		URL:         "https://www.rightmove.co.uk/properties/" + id,
		NightRate:   196,
		BillsTotal:  448,
		Profit50:    851,
		Profit70:    profit70,
		Profit100:   3350,
		Target:      1300,
		MeetsTarget: profit70 >= 1300,
		Band:        engine.BandFor(profit70, 1300),
		Score:       engine.Score10(profit70, 1300),
		Notable:     profit70-1300 >= 100,
	}
}

func TestRecordAndListRoundtrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.RecordLead(ctx, "run-1", testLead("A1", "Wirral", 1852)); err != nil {
		t.Fatalf("RecordLead: %v", err)
	}
	if err := db.RecordLead(ctx, "run-1", testLead("A2", "Lincoln", 940)); err != nil {
		t.Fatalf("RecordLead: %v", err)
	}

	got, err := db.ListRecent(ctx, 10, "")
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d leads; want 2", len(got))
	}

	for _, l := range got {
		if l.RunID != "run-1" {
			t.Errorf("RunID = %q; want run-1", l.RunID)
		}
		if l.EmittedAt.IsZero() {
			t.Error("EmittedAt not set")
		}
	}

	var wirral ArchivedLead
	for _, l := range got {
		if l.Area == "Wirral" {
			wirral = l
		}
	}
	if wirral.ID != "A1" || wirral.Profit70 != 1852 || !wirral.MeetsTarget {
		t.Errorf("roundtrip mismatch: %+v", wirral)
	}
	if wirral.Band != engine.BandTop {
		t.Errorf("Band = %q; want green", wirral.Band)
	}
	if wirral.Bathrooms == nil || *wirral.Bathrooms != 2 {
		t.Errorf("Bathrooms = %v; want 2", wirral.Bathrooms)
	}
}

func TestRecordLeadNullBathrooms(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	l := testLead("B1", "Wirral", 1400)
	l.Bathrooms = nil
	if err := db.RecordLead(ctx, "run-1", l); err != nil {
		t.Fatalf("RecordLead: %v", err)
	}

	got, err := db.ListRecent(ctx, 1, "")
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if got[0].Bathrooms != nil {
		t.Errorf("Bathrooms = %v; want nil", got[0].Bathrooms)
	}
}

func TestListRecentAreaFilter(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	db.RecordLead(ctx, "run-1", testLead("A1", "Wirral", 1852))
	db.RecordLead(ctx, "run-1", testLead("A2", "Lincoln", 940))
	db.RecordLead(ctx, "run-2", testLead("A3", "Wirral", 1500))

	got, err := db.ListRecent(ctx, 10, "Wirral")
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d Wirral leads; want 2", len(got))
	}
	for _, l := range got {
		if l.Area != "Wirral" {
			t.Errorf("filter leaked area %q", l.Area)
		}
	}
}

func TestGetAreaStats(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	db.RecordLead(ctx, "run-1", testLead("A1", "Wirral", 1852)) // notable
	db.RecordLead(ctx, "run-1", testLead("A2", "Wirral", 1348)) // not notable
	db.RecordLead(ctx, "run-1", testLead("A3", "Lincoln", 940))

	stats, err := db.GetAreaStats(ctx)
	if err != nil {
		t.Fatalf("GetAreaStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d areas; want 2", len(stats))
	}

	// Ordered by area name: Lincoln first.
	if stats[0].Area != "Lincoln" || stats[0].LeadCount != 1 {
		t.Errorf("Lincoln stats = %+v", stats[0])
	}
	w := stats[1]
	if w.Area != "Wirral" || w.LeadCount != 2 || w.NotableCount != 1 {
		t.Errorf("Wirral stats = %+v", w)
	}
	if w.BestProfit70 != 1852 {
		t.Errorf("BestProfit70 = %d; want 1852", w.BestProfit70)
	}
	if w.AvgProfit70 != 1600 {
		t.Errorf("AvgProfit70 = %v; want 1600", w.AvgProfit70)
	}
}
