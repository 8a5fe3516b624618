package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mmdatafocus/finance_bot/models"
)

// Invalid input must be rejected before the store ever touches the
// database; a nil handle proves these paths stay purely in validation.
func TestCreateRejectsBadAmounts(t *testing.T) {
	store := models.NewExpenseStore(nil)
	ctx := context.Background()

	bad := []string{
		"-50.00", // negative
		"0",      // not an outflow
		"0.00",
		"$50.00", // currency symbol is not part of the number
		"fifty",
		"",
	}
	for _, amount := range bad {
		_, err := store.Create(ctx, models.NewExpense{Amount: amount, Category: "Ads"})
		if err == nil {
			t.Fatalf("Create accepted amount %q", amount)
		}
		if amount != "" && !errors.Is(err, models.ErrInvalidAmount) {
			t.Fatalf("Create(%q) err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestCreateRejectsOversizedCategory(t *testing.T) {
	store := models.NewExpenseStore(nil)
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	_, err := store.Create(context.Background(), models.NewExpense{Amount: "10.00", Category: string(long)})
	if err == nil {
		t.Fatal("Create accepted a 101-char category")
	}
}
