package models

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mmdatafocus/finance_bot/stats"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is one manual business outflow. Amount is always a positive
// magnitude in dollars; the sign convention ("expenses subtract") lives in
// the revenue composition, not in the row.
type Expense struct {
	ID        int             `gorm:"primary_key" json:"id"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category  string          `gorm:"size:100;index" json:"category"`
	CreatedBy string          `gorm:"size:255" json:"created_by"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewExpense struct {
	Amount    string `json:"amount" validate:"required,max=20"`
	Category  string `json:"category" validate:"omitempty,max=100"`
	CreatedBy string `json:"created_by" validate:"omitempty,max=255"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

var (
	ErrInvalidAmount = errors.New("amount must be a positive number")

	validate = validator.New()
)

// ExpenseStore is the expense ledger. The *gorm.DB handle is constructed
// once at process start and injected; no global connection lookup here.
type ExpenseStore struct {
	db *gorm.DB
}

func NewExpenseStore(db *gorm.DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

// Migrate creates/updates the expenses table.
func (s *ExpenseStore) Migrate() error {
	return s.db.AutoMigrate(&Expense{})
}

// Create validates and inserts one expense. The amount string comes straight
// from user input; negative signs and currency symbols are rejected, not
// cleaned up silently.
func (s *ExpenseStore) Create(ctx context.Context, input NewExpense) (*Expense, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	expense := Expense{
		Amount:    amount,
		Category:  input.Category,
		CreatedBy: input.CreatedBy,
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// List returns expenses newest first. limit <= 0 means no limit.
func (s *ExpenseStore) List(ctx context.Context, limit int) ([]*Expense, error) {
	var expenses []*Expense
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *ExpenseStore) GetByID(ctx context.Context, id int) (*Expense, error) {
	var expense Expense
	err := s.db.WithContext(ctx).First(&expense, id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Delete removes one expense; false means the id did not exist.
func (s *ExpenseStore) Delete(ctx context.Context, id int) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&Expense{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Total is the summed amount over the whole ledger, a positive magnitude in
// dollars. Empty ledger totals zero, not an error.
func (s *ExpenseStore) Total(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := s.db.WithContext(ctx).Model(&Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// TotalsByCategory groups summed amounts per category, largest first. A
// row's empty category groups under "".
func (s *ExpenseStore) TotalsByCategory(ctx context.Context) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := s.db.WithContext(ctx).Model(&Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Categories lists the distinct non-empty categories, alphabetical.
func (s *ExpenseStore) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.WithContext(ctx).Model(&Expense{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// TotalForToday sums expenses created during the current local day. "Today"
// comes from the same windowing policy as the payment stats, so the expense
// and revenue sides of a daily view always agree on the day's boundaries.
func (s *ExpenseStore) TotalForToday(ctx context.Context, offsetHours int) (decimal.Decimal, error) {
	w := stats.DayWindow(time.Now(), offsetHours)
	var row struct {
		Total decimal.Decimal
	}
	err := s.db.WithContext(ctx).Model(&Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("created_at BETWEEN ? AND ?", time.Unix(w.Start, 0).UTC(), time.Unix(w.End, 0).UTC()).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
