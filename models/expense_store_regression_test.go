package models_test

import (
	"context"
	"os"
	"testing"

	"github.com/mmdatafocus/finance_bot/config"
	"github.com/mmdatafocus/finance_bot/models"
	"github.com/shopspring/decimal"
)

// Ledger aggregate regression harness.
//
// Runs against a real MySQL (same DB env vars as the bot):
//
//	INTEGRATION_TESTS=1 go test ./models -run ExpenseLedger -v
func TestExpenseLedgerAggregates(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run against a real database")
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		t.Fatal("database not initialized")
	}

	store := models.NewExpenseStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()

	// Start from a known-empty ledger.
	if err := db.WithContext(ctx).Exec("DELETE FROM expenses").Error; err != nil {
		t.Fatalf("clear expenses: %v", err)
	}

	seed := []models.NewExpense{
		{Amount: "100.00", Category: "Ads", CreatedBy: "tester#1"},
		{Amount: "50.25", Category: "Ads", CreatedBy: "tester#1"},
		{Amount: "10.00", Category: "Tools", CreatedBy: "tester#2"},
		{Amount: "5.50", CreatedBy: "tester#2"},
	}
	var last *models.Expense
	for _, input := range seed {
		expense, err := store.Create(ctx, input)
		if err != nil {
			t.Fatalf("create %+v: %v", input, err)
		}
		last = expense
	}

	total, err := store.Total(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("165.75")) {
		t.Fatalf("total = %s, want 165.75", total)
	}

	byCategory, err := store.TotalsByCategory(ctx)
	if err != nil {
		t.Fatalf("totals by category: %v", err)
	}
	if len(byCategory) != 3 {
		t.Fatalf("category groups = %d, want 3", len(byCategory))
	}
	// Largest first.
	if byCategory[0].Category != "Ads" || !byCategory[0].Total.Equal(decimal.RequireFromString("150.25")) {
		t.Fatalf("top group = %+v, want Ads 150.25", byCategory[0])
	}

	categories, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 || categories[0] != "Ads" || categories[1] != "Tools" {
		t.Fatalf("categories = %v, want [Ads Tools]", categories)
	}

	listed, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed = %d, want 2", len(listed))
	}

	todays, err := store.TotalForToday(ctx, config.TimezoneOffsetHours())
	if err != nil {
		t.Fatalf("total for today: %v", err)
	}
	if !todays.Equal(total) {
		t.Fatalf("today's total = %s, want %s (all rows just created)", todays, total)
	}

	deleted, err := store.Delete(ctx, last.ID)
	if err != nil || !deleted {
		t.Fatalf("delete #%d: deleted=%v err=%v", last.ID, deleted, err)
	}
	deleted, err = store.Delete(ctx, last.ID)
	if err != nil {
		t.Fatalf("re-delete: %v", err)
	}
	if deleted {
		t.Fatalf("delete of missing #%d reported success", last.ID)
	}
}
