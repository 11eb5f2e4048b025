package lifecast

import (
	"errors"
	"testing"
)

func TestLivingExpenses_Compute(t *testing.T) {
	tl := monthly(t, 2)
	living := &LivingExpenses{Categories: []ExpenseCategory{
		{Name: "groceries", Monthly: USD(400), Growth: Fixed(0)},
		{Name: "subscriptions", Monthly: USD(50), Growth: Fixed(0)},
	}}
	series, err := living.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := series.At("groceries", 0); !got.Equal(USD(-400)) {
		t.Errorf("groceries = %s, want -$400.00", got)
	}
	if got := series.At("subscriptions", 1); !got.Equal(USD(-50)) {
		t.Errorf("subscriptions = %s, want -$50.00", got)
	}
	if got := series.Net(0); !got.Equal(USD(-450)) {
		t.Errorf("net = %s, want -$450.00", got)
	}
}

func TestLivingExpenses_PerCategoryGrowth(t *testing.T) {
	tl := yearly(t, 2)
	living := &LivingExpenses{Categories: []ExpenseCategory{
		{Name: "groceries", Monthly: USD(100), Growth: Fixed(0.10)},
		{Name: "rent_storage", Monthly: USD(100), Growth: Fixed(0)},
	}}
	series, err := living.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := series.At("groceries", 1); !got.Equal(USD(-1320)) {
		t.Errorf("groceries year 1 = %s, want -$1,320.00", got)
	}
	if got := series.At("rent_storage", 1); !got.Equal(USD(-1200)) {
		t.Errorf("storage year 1 = %s, want -$1,200.00", got)
	}
}

func TestLivingExpenses_Validate(t *testing.T) {
	tests := []struct {
		name       string
		categories []ExpenseCategory
	}{
		{"no categories", nil},
		{"unnamed category", []ExpenseCategory{{Monthly: USD(10)}}},
		{"duplicate category", []ExpenseCategory{
			{Name: "groceries", Monthly: USD(10)},
			{Name: "groceries", Monthly: USD(20)},
		}},
		{"negative amount", []ExpenseCategory{{Name: "groceries", Monthly: USD(-10)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			living := &LivingExpenses{Categories: tt.categories}
			if err := living.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
