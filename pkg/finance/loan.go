// Package finance provides the stateless calculation functions behind the
// planning calculators: loan amortization, ROI and NPV, break-even analysis,
// multi-year revenue projection, and operating-cost aggregation. Functions in
// this package never panic and never surface NaN or Inf in a result field;
// mathematically undefined outcomes are reported through explicit sentinels.
package finance

import (
	"math"

	"github.com/agrifin/agriplan/pkg/constants"
)

// LoanRequest holds the inputs for a loan amortization calculation.
type LoanRequest struct {
	Principal      float64 // amount borrowed
	AnnualRatePct  float64 // nominal annual interest rate, percent
	TermYears      int
	ScheduleMonths int // months of schedule to produce; 0 means the full term
}

// LoanPayment is one month's principal/interest split.
type LoanPayment struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// AmortizationResult describes a fully amortized loan.
type AmortizationResult struct {
	MonthlyRate    float64       `json:"monthlyRate"`
	MonthlyPayment float64       `json:"monthlyPayment"`
	TermMonths     int           `json:"termMonths"`
	TotalPayment   float64       `json:"totalPayment"`
	TotalInterest  float64       `json:"totalInterest"`
	Schedule       []LoanPayment `json:"schedule"`
}

// CalculateLoan computes the monthly payment and amortization schedule for a
// loan. It returns nil when the inputs are incomplete (non-positive
// principal, rate, or term); callers treat nil as "prompt for inputs" rather
// than rendering a degenerate schedule.
func CalculateLoan(req LoanRequest) *AmortizationResult {
	termMonths := req.TermYears * constants.MonthsPerYear
	monthlyRate := req.AnnualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)

	if req.Principal <= 0 || monthlyRate <= 0 || termMonths <= 0 {
		return nil
	}

	power := math.Pow(1+monthlyRate, float64(termMonths))
	monthlyPayment := req.Principal * monthlyRate * power / (power - 1)

	scheduleMonths := req.ScheduleMonths
	if scheduleMonths <= 0 || scheduleMonths > termMonths {
		scheduleMonths = termMonths
	}

	result := &AmortizationResult{
		MonthlyRate:    monthlyRate,
		MonthlyPayment: monthlyPayment,
		TermMonths:     termMonths,
		TotalPayment:   monthlyPayment * float64(termMonths),
		TotalInterest:  monthlyPayment*float64(termMonths) - req.Principal,
		Schedule:       make([]LoanPayment, 0, scheduleMonths),
	}

	balance := req.Principal
	for month := 1; month <= scheduleMonths; month++ {
		interest := balance * monthlyRate
		principal := monthlyPayment - interest
		balance -= principal
		if balance < 0 {
			// Absorb floating-point residue at the final payment.
			balance = 0
		}
		result.Schedule = append(result.Schedule, LoanPayment{
			Month:            month,
			Payment:          monthlyPayment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	return result
}
