package lifecast

import (
	"errors"
	"testing"
)

func TestRent_Compute(t *testing.T) {
	tl := monthly(t, 3)
	rent := &Rent{
		MonthlyRent:      USD(2000),
		RoommateShare:    0.5,
		RentersInsurance: USD(30),
		Utilities:        USD(100),
		RentGrowth:       Fixed(0),
		InsuranceGrowth:  Fixed(0),
		UtilitiesGrowth:  Fixed(0),
	}
	series, err := rent.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for p := range tl.Periods() {
		if got := series.At("rent", p); !got.Equal(USD(-1000)) {
			t.Errorf("rent at %d = %s, want -$1,000.00 after the roommate share", p, got)
		}
		if got := series.Net(p); !got.Equal(USD(-1130)) {
			t.Errorf("net at %d = %s, want -$1,130.00", p, got)
		}
	}
}

func TestRent_Growth(t *testing.T) {
	// Yearly granularity: a 5% rent growth means the second year costs
	// twelve months at 1.05 times the base rent.
	tl := yearly(t, 2)
	rent := &Rent{MonthlyRent: USD(1000), RentGrowth: Fixed(0.05), InsuranceGrowth: Fixed(0), UtilitiesGrowth: Fixed(0)}
	series, err := rent.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := series.At("rent", 0); !got.Equal(USD(-12000)) {
		t.Errorf("rent year 0 = %s, want -$12,000.00", got)
	}
	if got := series.At("rent", 1); !got.Equal(USD(-12600)) {
		t.Errorf("rent year 1 = %s, want -$12,600.00", got)
	}
}

func TestRent_Validate(t *testing.T) {
	tests := []struct {
		name string
		rent Rent
	}{
		{"zero rent", Rent{}},
		{"negative rent", Rent{MonthlyRent: USD(-100)}},
		{"share above one", Rent{MonthlyRent: USD(1000), RoommateShare: 1.5}},
		{"negative share", Rent{MonthlyRent: USD(1000), RoommateShare: -0.1}},
		{"negative utilities", Rent{MonthlyRent: USD(1000), Utilities: USD(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.rent.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestMortgage_Compute(t *testing.T) {
	tl := monthly(t, 12)
	mortgage := &Mortgage{
		Principal:         USD(100000),
		AnnualRate:        0.06,
		TermMonths:        12,
		PropertyTax:       USD(250),
		HomeInsurance:     USD(80),
		PropertyTaxGrowth: Fixed(0),
		InsuranceGrowth:   Fixed(0),
	}
	series, err := mortgage.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// The whole loan is repaid within the horizon.
	var principal Money
	for p := range tl.Periods() {
		principal = principal.Add(series.At("principal", p))
	}
	if !principal.Equal(USD(-100000)) {
		t.Errorf("sum of principal outflow = %s, want -$100,000.00", principal)
	}

	if got := series.At("interest", 0); !got.Equal(USD(-500)) {
		t.Errorf("first interest = %s, want -$500.00", got)
	}
	for p := range tl.Periods() {
		if got := series.At("property_tax", p); !got.Equal(USD(-250)) {
			t.Errorf("property tax at %d = %s, want -$250.00", p, got)
		}
		if got := series.At("home_insurance", p); !got.Equal(USD(-80)) {
			t.Errorf("home insurance at %d = %s, want -$80.00", p, got)
		}
	}
}

func TestMortgage_PaidOffBeforeHorizonEnd(t *testing.T) {
	// After the last loan payment the financing components stay zero while
	// the escrow costs keep running.
	tl := monthly(t, 18)
	mortgage := &Mortgage{
		Principal:  USD(12000),
		AnnualRate: 0,
		TermMonths: 12,
		// escrow amounts left zero on purpose
		PropertyTaxGrowth: Fixed(0),
		InsuranceGrowth:   Fixed(0),
	}
	series, err := mortgage.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := series.At("principal", 11); !got.Equal(USD(-1000)) {
		t.Errorf("principal at 11 = %s, want -$1,000.00", got)
	}
	for p := Period(12); p < 18; p++ {
		if got := series.At("principal", p); !got.IsZero() {
			t.Errorf("principal at %d = %s, want zero after payoff", p, got)
		}
	}
}

func TestMortgage_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mortgage Mortgage
	}{
		{"zero principal", Mortgage{TermMonths: 360}},
		{"zero term", Mortgage{Principal: USD(100000)}},
		{"negative rate", Mortgage{Principal: USD(100000), TermMonths: 360, AnnualRate: -0.01}},
		{"negative escrow", Mortgage{Principal: USD(100000), TermMonths: 360, PropertyTax: USD(-10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mortgage.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
