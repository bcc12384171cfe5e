package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"margincast/internal/model"
)

func openTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Open(filepath.Join(t.TempDir(), "scenarios.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func sampleParams() model.Parameters {
	return model.Parameters{
		SellingPrice:         decimal.RequireFromString("49.99"),
		UnitCost:             decimal.RequireFromString("17.25"),
		FixedMonthlyCost:     decimal.RequireFromString("20000"),
		HorizonMonths:        9,
		StartingUnits:        decimal.RequireFromString("150"),
		MonthlyGrowthPercent: decimal.RequireFromString("3.5"),
		PriceScenarioPercent: decimal.RequireFromString("-2"),
	}
}

func TestSaveGetRoundtrip(t *testing.T) {
	lib := openTestLibrary(t)

	if err := lib.Save("launch-plan", sampleParams()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := lib.Get("launch-plan")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := sampleParams()
	if !got.SellingPrice.Equal(want.SellingPrice) {
		t.Errorf("SellingPrice = %s, want %s", got.SellingPrice, want.SellingPrice)
	}
	if !got.MonthlyGrowthPercent.Equal(want.MonthlyGrowthPercent) {
		t.Errorf("MonthlyGrowthPercent = %s, want %s", got.MonthlyGrowthPercent, want.MonthlyGrowthPercent)
	}
	if !got.PriceScenarioPercent.Equal(want.PriceScenarioPercent) {
		t.Errorf("PriceScenarioPercent = %s, want %s", got.PriceScenarioPercent, want.PriceScenarioPercent)
	}
	if got.HorizonMonths != want.HorizonMonths {
		t.Errorf("HorizonMonths = %d, want %d", got.HorizonMonths, want.HorizonMonths)
	}
}

func TestSaveUpserts(t *testing.T) {
	lib := openTestLibrary(t)

	if err := lib.Save("plan", sampleParams()); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	updated := sampleParams()
	updated.SellingPrice = decimal.RequireFromString("59.99")
	if err := lib.Save("plan", updated); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := lib.Get("plan")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.SellingPrice.Equal(updated.SellingPrice) {
		t.Errorf("SellingPrice = %s, want 59.99 after upsert", got.SellingPrice)
	}

	count, err := lib.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1 after upsert", count)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	lib := openTestLibrary(t)
	if err := lib.Save("", sampleParams()); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("Save(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestGetMissing(t *testing.T) {
	lib := openTestLibrary(t)
	if _, err := lib.Get("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestListAndDelete(t *testing.T) {
	lib := openTestLibrary(t)

	for _, name := range []string{"conservative", "aggressive"} {
		if err := lib.Save(name, sampleParams()); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	scenarios, err := lib.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("List returned %d scenarios, want 2", len(scenarios))
	}
	for _, s := range scenarios {
		if s.Params.HorizonMonths != 9 {
			t.Errorf("scenario %q HorizonMonths = %d, want 9", s.Name, s.Params.HorizonMonths)
		}
	}

	if err := lib.Delete("aggressive"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := lib.Delete("aggressive"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}

	count, err := lib.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1 after delete", count)
	}
}
