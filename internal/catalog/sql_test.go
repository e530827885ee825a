package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openTestSQL(t *testing.T) *SQL {
	t.Helper()
	db, err := OpenSQL(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenSQL: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLRoundTripsSeed(t *testing.T) {
	ctx := context.Background()
	seed := DefaultSeed()
	db := openTestSQL(t)

	if err := db.Import(ctx, seed); err != nil {
		t.Fatalf("Import: %v", err)
	}

	want, _ := seed.Categories(ctx)
	got, err := db.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}

	for _, cat := range want {
		wantComps, _ := seed.ComponentsByCategory(ctx, cat.ID)
		gotComps, err := db.ComponentsByCategory(ctx, cat.ID)
		if err != nil {
			t.Fatalf("ComponentsByCategory(%s): %v", cat.Slug, err)
		}
		if len(wantComps) != len(gotComps) {
			t.Fatalf("%s: %d components, want %d", cat.Slug, len(gotComps), len(wantComps))
		}
		for i := range wantComps {
			if wantComps[i].Slug != gotComps[i].Slug {
				t.Errorf("%s[%d] = %s, want %s", cat.Slug, i, gotComps[i].Slug, wantComps[i].Slug)
			}
		}
	}
}

func TestSQLComponentBySlug(t *testing.T) {
	ctx := context.Background()
	db := openTestSQL(t)
	if err := db.Import(ctx, DefaultSeed()); err != nil {
		t.Fatal(err)
	}

	c, err := db.ComponentBySlug(ctx, "legacy-modal")
	if err != nil {
		t.Fatalf("ComponentBySlug: %v", err)
	}
	if c.Status != StatusDeprecated {
		t.Errorf("Status = %q", c.Status)
	}
	if len(c.Variants) != 1 || c.Variants[0].CodeExample != `<LegacyModal title="Confirm" onClose={close} />` {
		t.Errorf("Variants = %+v", c.Variants)
	}
	if len(c.Documentation) != 1 || c.Documentation[0].Title != "Migration" {
		t.Errorf("Documentation = %+v", c.Documentation)
	}

	w, err := db.ComponentBySlug(ctx, "widget-42")
	if err != nil {
		t.Fatal(err)
	}
	if w.Variants != nil || w.Documentation != nil {
		t.Errorf("empty relations should decode as nil: %+v", w)
	}

	if _, err := db.ComponentBySlug(ctx, "missing"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSQLImportReplaces(t *testing.T) {
	ctx := context.Background()
	db := openTestSQL(t)
	if err := db.Import(ctx, DefaultSeed()); err != nil {
		t.Fatal(err)
	}
	small := NewSeed([]Category{{Slug: "only", Name: "Only"}}, nil)
	if err := db.Import(ctx, small); err != nil {
		t.Fatal(err)
	}
	cats, _ := db.Categories(ctx)
	if len(cats) != 1 || cats[0].Slug != "only" {
		t.Errorf("cats = %+v", cats)
	}
}
