package lifecast

import (
	"errors"
	"testing"
)

func TestCar_Compute(t *testing.T) {
	tl := monthly(t, 3)
	car := &Car{
		PricePerGallon:    USD(3.50),
		MilesPerMonth:     1000,
		MilesPerGallon:    25,
		Insurance:         USD(120),
		Maintenance:       USD(50),
		FuelGrowth:        Fixed(0),
		InsuranceGrowth:   Fixed(0),
		MaintenanceGrowth: Fixed(0),
	}
	series, err := car.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for p := range tl.Periods() {
		if got := series.At("fuel", p); !got.Equal(USD(-140)) {
			t.Errorf("fuel at %d = %s, want -$140.00", p, got)
		}
		if got := series.Net(p); !got.Equal(USD(-310)) {
			t.Errorf("net at %d = %s, want -$310.00", p, got)
		}
	}
}

func TestCar_Loan(t *testing.T) {
	tl := monthly(t, 24)
	car := &Car{
		Insurance:         USD(100),
		InsuranceGrowth:   Fixed(0),
		FuelGrowth:        Fixed(0),
		MaintenanceGrowth: Fixed(0),
		Loan:              &CarLoan{Principal: USD(24000), AnnualRate: 0.04, TermMonths: 24},
	}
	series, err := car.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	var principal Money
	for p := range tl.Periods() {
		principal = principal.Add(series.At("loan_principal", p))
	}
	if !principal.Equal(USD(-24000)) {
		t.Errorf("sum of loan principal = %s, want -$24,000.00", principal)
	}
	if got := series.At("loan_interest", 0); !got.Equal(USD(-80)) {
		t.Errorf("first loan interest = %s, want -$80.00", got)
	}
}

func TestCar_Validate(t *testing.T) {
	tests := []struct {
		name string
		car  Car
	}{
		{"negative insurance", Car{Insurance: USD(-10)}},
		{"negative miles", Car{MilesPerMonth: -5}},
		{"mpg below one", Car{PricePerGallon: USD(3), MilesPerMonth: 500, MilesPerGallon: 0.5}},
		{"loan without principal", Car{Loan: &CarLoan{TermMonths: 60}}},
		{"loan without term", Car{Loan: &CarLoan{Principal: USD(10000)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.car.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestTransit_Compute(t *testing.T) {
	tl := monthly(t, 2)
	transit := &Transit{MonthlyPass: USD(100), FareGrowth: Fixed(0)}
	series, err := transit.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for p := range tl.Periods() {
		if got := series.At("transit_pass", p); !got.Equal(USD(-100)) {
			t.Errorf("transit pass at %d = %s, want -$100.00", p, got)
		}
	}

	if err := (&Transit{}).Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
	}
}
