// export-expenses writes the expense ledger to an xlsx workbook: one row
// per expense plus a per-category totals sheet.
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/export-expenses --out expenses.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mmdatafocus/finance_bot/config"
	"github.com/mmdatafocus/finance_bot/models"
	"github.com/xuri/excelize/v2"
)

func main() {
	out := flag.String("out", "expenses.xlsx", "Output file path")
	limit := flag.Int("limit", 0, "Max rows to export (0 = all)")
	flag.Parse()

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	store := models.NewExpenseStore(db)
	expenses, err := store.List(ctx, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list expenses: %v\n", err)
		os.Exit(1)
	}
	totals, err := store.TotalsByCategory(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "totals by category: %v\n", err)
		os.Exit(1)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "ID")
	f.SetCellValue(sheet, "B1", "Amount")
	f.SetCellValue(sheet, "C1", "Category")
	f.SetCellValue(sheet, "D1", "CreatedBy")
	f.SetCellValue(sheet, "E1", "CreatedAt")
	for i, exp := range expenses {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), exp.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), exp.Amount.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), exp.Category)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), exp.CreatedBy)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), exp.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	const totalsSheet = "ByCategory"
	if _, err := f.NewSheet(totalsSheet); err != nil {
		fmt.Fprintf(os.Stderr, "create sheet: %v\n", err)
		os.Exit(1)
	}
	f.SetCellValue(totalsSheet, "A1", "Category")
	f.SetCellValue(totalsSheet, "B1", "Total")
	for i, cat := range totals {
		row := i + 2
		name := cat.Category
		if name == "" {
			name = "Uncategorized"
		}
		f.SetCellValue(totalsSheet, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(totalsSheet, fmt.Sprintf("B%d", row), cat.Total.StringFixed(2))
	}

	if err := f.SaveAs(*out); err != nil {
		fmt.Fprintf(os.Stderr, "save workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("exported %d expenses to %s\n", len(expenses), *out)
}
