package models

import "time"

// CostData is the trip's cost-ledger aggregate. TotalBudget is a pointer so
// that "no budget set" is representable and clearable through a delta.
type CostData struct {
	ID               string           `json:"id"`
	Currency         string           `json:"currency"`
	HomeCurrency     string           `json:"homeCurrency"`
	TotalBudget      *float64         `json:"totalBudget,omitempty"`
	Expenses         []Expense        `json:"expenses"`
	CountryBudgets   []CountryBudget  `json:"countryBudgets"`
	CustomCategories []CustomCategory `json:"customCategories"`
}

// Expense is a single ledger entry.
type Expense struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Country     string     `json:"country,omitempty"`
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date,omitempty"`
}

// CountryBudget caps spending for one country of the trip.
type CountryBudget struct {
	ID      string  `json:"id"`
	Country string  `json:"country"`
	Amount  float64 `json:"amount"`
}

// CustomCategory is a user-defined expense category.
type CustomCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// RecordID implements delta.Record.
func (e Expense) RecordID() string { return e.ID }

// RecordID implements delta.Record.
func (b CountryBudget) RecordID() string { return b.ID }

// RecordID implements delta.Record.
func (c CustomCategory) RecordID() string { return c.ID }

// Clone returns a deep copy of the expense.
func (e Expense) Clone() Expense {
	e.Date = cloneTime(e.Date)
	return e
}

// Clone returns a copy of the budget. The struct has no reference fields, so
// a value copy is already deep.
func (b CountryBudget) Clone() CountryBudget { return b }

// Clone returns a copy of the category.
func (c CustomCategory) Clone() CustomCategory { return c }

// Clone returns a deep copy of the whole ledger, including its collections.
func (c CostData) Clone() CostData {
	out := c
	if c.TotalBudget != nil {
		v := *c.TotalBudget
		out.TotalBudget = &v
	}
	if c.Expenses != nil {
		out.Expenses = make([]Expense, len(c.Expenses))
		for i, e := range c.Expenses {
			out.Expenses[i] = e.Clone()
		}
	}
	if c.CountryBudgets != nil {
		out.CountryBudgets = make([]CountryBudget, len(c.CountryBudgets))
		copy(out.CountryBudgets, c.CountryBudgets)
	}
	if c.CustomCategories != nil {
		out.CustomCategories = make([]CustomCategory, len(c.CustomCategories))
		copy(out.CustomCategories, c.CustomCategories)
	}
	return out
}
