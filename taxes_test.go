package lifecast

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestProgressiveTax(t *testing.T) {
	tests := []struct {
		name   string
		status FilingStatus
		income Money
		want   Money
	}{
		{"single zero income", Single, USD(0), USD(0)},
		{"single first bracket", Single, USD(10000), USD(1000)},
		{"single third bracket", Single, USD(50000), USD(6053)},
		{"single exactly on threshold", Single, USD(11600), USD(1160)},
		{"married second bracket", Married, USD(30000), USD(3136)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := progressiveTax(tt.income, DefaultBrackets(tt.status))
			if !got.Equal(tt.want) {
				t.Errorf("progressiveTax(%s) = %s, want %s", tt.income, got, tt.want)
			}
		})
	}
}

func TestIncomeTax_Compute(t *testing.T) {
	// Monthly: the annual liability on 60000 single is 8253, spread to
	// 687.75 per month; gross income flows in at 5000 per month.
	tl := monthly(t, 3)
	tax := &IncomeTax{GrossAnnualIncome: USD(60000), FilingStatus: Single, IncomeGrowth: Fixed(0)}
	series, err := tax.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for p := range tl.Periods() {
		if got := series.At("gross_income", p); !got.Equal(USD(5000)) {
			t.Errorf("gross income at %d = %s, want $5,000.00", p, got)
		}
		if got := series.At("income_tax", p); !got.Equal(USD(-687.75)) {
			t.Errorf("income tax at %d = %s, want -$687.75", p, got)
		}
	}
}

func TestIncomeTax_BracketCreep(t *testing.T) {
	// A growing income is re-annualized each period, so the liability moves
	// through the brackets as the simulation progresses.
	tl := yearly(t, 2)
	tax := &IncomeTax{GrossAnnualIncome: USD(46000), FilingStatus: Single, IncomeGrowth: Fixed(0.10)}
	series, err := tax.Compute(tl, NewResolver(tl))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	// Year 0: 46000 stays inside the 12% bracket.
	want0 := USD(11600).Mul(Q(0.10)).Add(USD(46000 - 11600).Mul(Q(0.12)))
	if got := series.At("income_tax", 0).Neg(); !got.Equal(want0) {
		t.Errorf("tax year 0 = %s, want %s", got, want0)
	}
	// Year 1: 50600 reaches into the 22% bracket.
	want1 := USD(11600).Mul(Q(0.10)).Add(USD(47150 - 11600).Mul(Q(0.12))).Add(USD(50600 - 47150).Mul(Q(0.22)))
	if got := series.At("income_tax", 1).Neg(); !got.Equal(want1) {
		t.Errorf("tax year 1 = %s, want %s", got, want1)
	}
}

func TestIncomeTax_Validate(t *testing.T) {
	tests := []struct {
		name string
		tax  IncomeTax
	}{
		{"zero income", IncomeTax{}},
		{"first bracket not at zero", IncomeTax{
			GrossAnnualIncome: USD(50000),
			Brackets:          []TaxBracket{{USD(100), 0.1}},
		}},
		{"non-increasing thresholds", IncomeTax{
			GrossAnnualIncome: USD(50000),
			Brackets:          []TaxBracket{{USD(0), 0.1}, {USD(5000), 0.2}, {USD(5000), 0.3}},
		}},
		{"rate above one", IncomeTax{
			GrossAnnualIncome: USD(50000),
			Brackets:          []TaxBracket{{USD(0), 1.5}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.tax.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestFilingStatus_JSON(t *testing.T) {
	data, err := json.Marshal(Married)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"married"` {
		t.Errorf("Marshal() = %s, want \"married\"", data)
	}
	var status FilingStatus
	if err := json.Unmarshal([]byte(`"single"`), &status); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if status != Single {
		t.Errorf("Unmarshal() = %v, want Single", status)
	}
	if err := json.Unmarshal([]byte(`"household"`), &status); err == nil {
		t.Error("Unmarshal(unknown status) error = nil, want error")
	}
}
