// seed-expenses loads an initial batch of expenses into an empty ledger.
// Rows are inserted oldest first with a short delay between inserts so
// created_at ordering matches the list order.
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-expenses
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mmdatafocus/finance_bot/config"
	"github.com/mmdatafocus/finance_bot/models"
)

type seedExpense struct {
	amount   string
	category string
}

var seedExpenses = []seedExpense{
	{"20.00", "Dripfeed"},
	{"20.00", "Dripfeed"},
	{"40.00", "Tiktok Ads"},
	{"20.00", "Dripfeed"},
	{"20.00", "Dripfeed"},
	{"20.00", "Dripfeed"},
	{"20.00", "Dripfeed"},
	{"50.00", "Dripfeed"},
	{"50.00", "Dripfeed"},
	{"50.00", "Dripfeed"},
}

func main() {
	createdBy := flag.String("created-by", "System (Initial Import)", "created_by value for the seeded rows")
	dryRun := flag.Bool("dry-run", false, "Print the rows without inserting")
	flag.Parse()

	if *dryRun {
		for _, e := range seedExpenses {
			fmt.Printf("-$%s %s\n", e.amount, e.category)
		}
		return
	}

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	store := models.NewExpenseStore(db)
	if err := store.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	for i, e := range seedExpenses {
		if i > 0 {
			time.Sleep(100 * time.Millisecond)
		}
		expense, err := store.Create(ctx, models.NewExpense{
			Amount:    e.amount,
			Category:  e.category,
			CreatedBy: *createdBy,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert %s %s: %v\n", e.amount, e.category, err)
			os.Exit(1)
		}
		fmt.Printf("added -$%s %s (id #%d)\n", expense.Amount.StringFixed(2), expense.Category, expense.ID)
	}

	fmt.Printf("seeded %d expenses\n", len(seedExpenses))
}
