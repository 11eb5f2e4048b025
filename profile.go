package lifecast

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lifecast/lifecast/date"
)

// sortedKeys keeps map-driven module construction deterministic.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// Horizon end presets, in years of age.
const (
	RetirementAge = 67
	LifespanAge   = 80
)

// HousingKind is how the profile owner pays for housing.
type HousingKind string

const (
	HousingNone     HousingKind = "none"
	HousingRent     HousingKind = "rent"
	HousingMortgage HousingKind = "mortgage"
)

// HealthPayer is who pays the profile owner's health insurance.
type HealthPayer string

const (
	HealthNone    HealthPayer = "none"
	HealthSelfPay HealthPayer = "self_pay"
	HealthParents HealthPayer = "parents"
)

// CarStatus is the profile owner's car payment situation.
type CarStatus string

const (
	CarNone           CarStatus = "none"
	CarPaidOff        CarStatus = "paid_off"
	CarParentsPaying  CarStatus = "parents_paying"
	CarMonthlyPayment CarStatus = "monthly_payment"
)

// Profile stores a person's simple financial facts: how they pay for
// housing, whether they carry loans, their recurring spending. It holds no
// growth rates; those belong to scenarios. A profile translates into a
// runnable Scenario with the engine's documented defaults.
type Profile struct {
	ID           string       `json:"id"`
	BirthDate    *date.Date   `json:"birth_date,omitempty"`
	FilingStatus FilingStatus `json:"filing_status"`
	State        string       `json:"state,omitempty"`

	// Housing: rent amount or mortgage terms depending on Kind.
	Housing struct {
		Kind               HousingKind `json:"kind"`
		MonthlyRent        float64     `json:"monthly_rent,omitempty"`
		RoommateShare      float64     `json:"roommate_share,omitempty"`
		RentersInsurance   float64     `json:"renters_insurance,omitempty"`
		Utilities          float64     `json:"utilities,omitempty"`
		MortgagePrincipal  float64     `json:"mortgage_principal,omitempty"`
		MortgageAnnualRate float64     `json:"mortgage_annual_rate,omitempty"`
		MortgageTermMonths int         `json:"mortgage_term_months,omitempty"`
		PropertyTax        float64     `json:"property_tax,omitempty"`
		HomeInsurance      float64     `json:"home_insurance,omitempty"`
	} `json:"housing"`

	Health struct {
		Payer HealthPayer `json:"payer"`
		Plan  HealthPlan  `json:"plan,omitempty"`
	} `json:"health"`

	Car struct {
		Status         CarStatus `json:"status"`
		PricePerGallon float64   `json:"price_per_gallon,omitempty"`
		MilesPerMonth  float64   `json:"miles_per_month,omitempty"`
		MilesPerGallon float64   `json:"miles_per_gallon,omitempty"`
		Insurance      float64   `json:"insurance,omitempty"`
		Maintenance    float64   `json:"maintenance,omitempty"`
		LoanPrincipal  float64   `json:"loan_principal,omitempty"`
		LoanAnnualRate float64   `json:"loan_annual_rate,omitempty"`
		LoanTermMonths int       `json:"loan_term_months,omitempty"`
	} `json:"car"`

	StudentLoan struct {
		Principal    float64 `json:"principal,omitempty"`
		AnnualRate   float64 `json:"annual_rate,omitempty"`
		TermMonths   int     `json:"term_months,omitempty"`
		ExtraPayment float64 `json:"extra_payment,omitempty"`
	} `json:"student_loan"`

	GrossAnnualIncome float64            `json:"gross_annual_income,omitempty"`
	Expenses          map[string]float64 `json:"expenses,omitempty"`
}

// HorizonTo returns the date the profile owner reaches the given age, for
// the retirement/lifespan horizon presets. It requires a birth date.
func (p *Profile) HorizonTo(age int) (date.Date, error) {
	if p.BirthDate == nil {
		return date.Date{}, fmt.Errorf("%w: profile %q has no birth date", ErrInvalidInput, p.ID)
	}
	return p.BirthDate.AddMonth(12 * age), nil
}

// Scenario translates the profile into a runnable scenario over the given
// horizon, using the engine's default growth rates and tables. Domains the
// profile does not carry (no car, insurance paid by parents) contribute no
// module.
func (p *Profile) Scenario(from, to date.Date) (*Scenario, error) {
	s := &Scenario{Name: p.ID, From: from, To: to, Granularity: date.Monthly}

	switch p.Housing.Kind {
	case HousingRent:
		s.Modules = append(s.Modules, &Rent{
			MonthlyRent:      USD(p.Housing.MonthlyRent),
			RoommateShare:    p.Housing.RoommateShare,
			RentersInsurance: USD(p.Housing.RentersInsurance),
			Utilities:        USD(p.Housing.Utilities),
		})
	case HousingMortgage:
		s.Modules = append(s.Modules, &Mortgage{
			Principal:     USD(p.Housing.MortgagePrincipal),
			AnnualRate:    p.Housing.MortgageAnnualRate,
			TermMonths:    p.Housing.MortgageTermMonths,
			PropertyTax:   USD(p.Housing.PropertyTax),
			HomeInsurance: USD(p.Housing.HomeInsurance),
		})
	case HousingNone, "":
		// no housing module
	default:
		return nil, fmt.Errorf("%w: unknown housing kind %q", ErrInvalidInput, p.Housing.Kind)
	}

	if p.Health.Payer == HealthSelfPay {
		plan := p.Health.Plan
		if plan == "" {
			plan = PlanBronze
		}
		s.Modules = append(s.Modules, &HealthInsurance{Plan: plan})
	}

	switch p.Car.Status {
	case CarPaidOff, CarMonthlyPayment:
		car := &Car{
			PricePerGallon: USD(p.Car.PricePerGallon),
			MilesPerMonth:  p.Car.MilesPerMonth,
			MilesPerGallon: p.Car.MilesPerGallon,
			Insurance:      USD(p.Car.Insurance),
			Maintenance:    USD(p.Car.Maintenance),
		}
		if p.Car.Status == CarMonthlyPayment {
			car.Loan = &CarLoan{
				Principal:  USD(p.Car.LoanPrincipal),
				AnnualRate: p.Car.LoanAnnualRate,
				TermMonths: p.Car.LoanTermMonths,
			}
		}
		s.Modules = append(s.Modules, car)
	case CarNone, CarParentsPaying, "":
		// no transport module
	default:
		return nil, fmt.Errorf("%w: unknown car status %q", ErrInvalidInput, p.Car.Status)
	}

	if p.StudentLoan.Principal > 0 {
		s.Modules = append(s.Modules, &StudentLoan{
			Principal:    USD(p.StudentLoan.Principal),
			AnnualRate:   p.StudentLoan.AnnualRate,
			TermMonths:   p.StudentLoan.TermMonths,
			ExtraPayment: USD(p.StudentLoan.ExtraPayment),
		})
	}

	if p.GrossAnnualIncome > 0 {
		s.Modules = append(s.Modules, &IncomeTax{
			GrossAnnualIncome: USD(p.GrossAnnualIncome),
			FilingStatus:      p.FilingStatus,
		})
	}

	if len(p.Expenses) > 0 {
		living := &LivingExpenses{}
		for _, name := range sortedKeys(p.Expenses) {
			living.Categories = append(living.Categories, ExpenseCategory{
				Name:    name,
				Monthly: USD(p.Expenses[name]),
			})
		}
		s.Modules = append(s.Modules, living)
	}

	return s, nil
}
