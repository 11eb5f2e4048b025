package lifecast

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lifecast/lifecast/date"
)

func testProfile() *Profile {
	p := &Profile{ID: "alice", FilingStatus: Single, GrossAnnualIncome: 65000}
	birth := date.New(2000, time.May, 12)
	p.BirthDate = &birth
	p.Housing.Kind = HousingRent
	p.Housing.MonthlyRent = 1800
	p.Housing.RoommateShare = 0.5
	p.Health.Payer = HealthSelfPay
	p.Health.Plan = PlanSilver
	p.Car.Status = CarMonthlyPayment
	p.Car.PricePerGallon = 3.50
	p.Car.MilesPerMonth = 800
	p.Car.MilesPerGallon = 28
	p.Car.Insurance = 130
	p.Car.LoanPrincipal = 18000
	p.Car.LoanAnnualRate = 0.055
	p.Car.LoanTermMonths = 60
	p.StudentLoan.Principal = 25000
	p.StudentLoan.AnnualRate = 0.05
	p.StudentLoan.TermMonths = 120
	p.Expenses = map[string]float64{"groceries": 420, "subscriptions": 60}
	return p
}

func TestProfile_Scenario(t *testing.T) {
	p := testProfile()
	from := date.New(2030, time.January, 1)
	to := date.New(2032, time.December, 31)
	s, err := p.Scenario(from, to)
	if err != nil {
		t.Fatalf("Scenario() error = %v", err)
	}

	want := map[string]bool{"housing": true, "insurance": true, "transport": true, "debt": true, "taxes": true, "living": true}
	got := make(map[string]bool)
	for _, m := range s.Modules {
		got[m.Name()] = true
	}
	for name := range want {
		if !got[name] {
			t.Errorf("Scenario() has no %q module", name)
		}
	}
	if len(s.Modules) != len(want) {
		t.Errorf("Scenario() has %d modules, want %d", len(s.Modules), len(want))
	}

	// The whole translated scenario runs end to end.
	ledger, err := s.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ledger.Len() != 36 {
		t.Errorf("Len() = %d, want 36 monthly periods", ledger.Len())
	}
}

func TestProfile_Scenario_MinimalProfile(t *testing.T) {
	p := &Profile{ID: "bob", Expenses: map[string]float64{"groceries": 300}}
	s, err := p.Scenario(date.New(2030, time.January, 1), date.New(2030, time.December, 31))
	if err != nil {
		t.Fatalf("Scenario() error = %v", err)
	}
	if len(s.Modules) != 1 {
		t.Fatalf("Scenario() has %d modules, want only living expenses", len(s.Modules))
	}
	if s.Modules[0].Name() != "living" {
		t.Errorf("module = %q, want living", s.Modules[0].Name())
	}
}

func TestProfile_Scenario_UnknownKind(t *testing.T) {
	p := &Profile{ID: "carol"}
	p.Housing.Kind = "houseboat"
	if _, err := p.Scenario(date.New(2030, time.January, 1), date.New(2030, time.December, 31)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Scenario() error = %v, want ErrInvalidInput", err)
	}
}

func TestProfile_HorizonTo(t *testing.T) {
	p := testProfile()
	to, err := p.HorizonTo(RetirementAge)
	if err != nil {
		t.Fatalf("HorizonTo() error = %v", err)
	}
	if want := date.New(2067, time.May, 12); to != want {
		t.Errorf("HorizonTo(RetirementAge) = %s, want %s", to, want)
	}

	orphan := &Profile{ID: "no-birth-date"}
	if _, err := orphan.HorizonTo(LifespanAge); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("HorizonTo() without birth date error = %v, want ErrInvalidInput", err)
	}
}

func TestProfile_JSONRoundTrip(t *testing.T) {
	p := testProfile()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got Profile
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.ID != "alice" || got.Housing.MonthlyRent != 1800 || got.Car.LoanTermMonths != 60 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.FilingStatus != Single {
		t.Errorf("FilingStatus = %v, want Single", got.FilingStatus)
	}
}
