package delta

import (
	"encoding/json"
	"fmt"

	"github.com/waylight/waylight/models"
)

// CostDataDelta is the minimal difference between two cost-ledger snapshots.
// TotalBudget may be present as null, which clears the budget; an absent key
// leaves it untouched.
type CostDataDelta struct {
	Currency         Opt[string]
	HomeCurrency     Opt[string]
	TotalBudget      Opt[float64]
	Expenses         *CollectionDelta[models.Expense]
	CountryBudgets   *CollectionDelta[models.CountryBudget]
	CustomCategories *CollectionDelta[models.CustomCategory]
}

// CreateCostDataDelta compares two cost-ledger snapshots and returns the
// minimal delta transforming previous into current, or nil when the
// snapshots are canonically identical.
func CreateCostDataDelta(previous, current models.CostData) (*CostDataDelta, error) {
	d := &CostDataDelta{
		Currency:     diffValue(previous.Currency, current.Currency),
		HomeCurrency: diffValue(previous.HomeCurrency, current.HomeCurrency),
	}

	var err error
	if d.TotalBudget, err = diffPointer(previous.TotalBudget, current.TotalBudget); err != nil {
		return nil, fmt.Errorf("diff total budget: %w", err)
	}
	if d.Expenses, err = CreateCollectionDelta(previous.Expenses, current.Expenses); err != nil {
		return nil, fmt.Errorf("diff expenses: %w", err)
	}
	if d.CountryBudgets, err = CreateCollectionDelta(previous.CountryBudgets, current.CountryBudgets); err != nil {
		return nil, fmt.Errorf("diff country budgets: %w", err)
	}
	if d.CustomCategories, err = CreateCollectionDelta(previous.CustomCategories, current.CustomCategories); err != nil {
		return nil, fmt.Errorf("diff custom categories: %w", err)
	}

	if d.IsEmpty() {
		return nil, nil
	}
	return d, nil
}

// ApplyCostDataDelta merges d into a deep clone of base. A nil delta returns
// the clone unchanged.
func ApplyCostDataDelta(base models.CostData, d *CostDataDelta) (models.CostData, error) {
	out := base.Clone()
	if d == nil {
		return out, nil
	}

	applyValue(&out.Currency, d.Currency)
	applyValue(&out.HomeCurrency, d.HomeCurrency)
	applyPointer(&out.TotalBudget, d.TotalBudget)

	var err error
	if out.Expenses, err = ApplyCollectionDelta(out.Expenses, d.Expenses); err != nil {
		return models.CostData{}, fmt.Errorf("apply expenses: %w", err)
	}
	if out.CountryBudgets, err = ApplyCollectionDelta(out.CountryBudgets, d.CountryBudgets); err != nil {
		return models.CostData{}, fmt.Errorf("apply country budgets: %w", err)
	}
	if out.CustomCategories, err = ApplyCollectionDelta(out.CustomCategories, d.CustomCategories); err != nil {
		return models.CostData{}, fmt.Errorf("apply custom categories: %w", err)
	}
	return out, nil
}

// IsEmpty reports whether the delta carries no change at all. A nil delta is
// empty.
func (d *CostDataDelta) IsEmpty() bool {
	if d == nil {
		return true
	}
	return !d.Currency.Defined() && !d.HomeCurrency.Defined() && !d.TotalBudget.Defined() &&
		d.Expenses.IsEmpty() && d.CountryBudgets.IsEmpty() && d.CustomCategories.IsEmpty()
}

// MarshalJSON emits only the defined scalar keys and non-empty collection
// deltas.
func (d CostDataDelta) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 6)
	if d.Currency.Defined() {
		out["currency"] = d.Currency
	}
	if d.HomeCurrency.Defined() {
		out["homeCurrency"] = d.HomeCurrency
	}
	if d.TotalBudget.Defined() {
		out["totalBudget"] = d.TotalBudget
	}
	if !d.Expenses.IsEmpty() {
		out["expenses"] = d.Expenses
	}
	if !d.CountryBudgets.IsEmpty() {
		out["countryBudgets"] = d.CountryBudgets
	}
	if !d.CustomCategories.IsEmpty() {
		out["customCategories"] = d.CustomCategories
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores explicit key presence from the wire form.
func (d *CostDataDelta) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = CostDataDelta{}
	if v, present := raw["currency"]; present {
		if err := d.Currency.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("currency: %w", err)
		}
	}
	if v, present := raw["homeCurrency"]; present {
		if err := d.HomeCurrency.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("homeCurrency: %w", err)
		}
	}
	if v, present := raw["totalBudget"]; present {
		if err := d.TotalBudget.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("totalBudget: %w", err)
		}
	}
	if v, present := raw["expenses"]; present {
		d.Expenses = &CollectionDelta[models.Expense]{}
		if err := json.Unmarshal(v, d.Expenses); err != nil {
			return fmt.Errorf("expenses: %w", err)
		}
	}
	if v, present := raw["countryBudgets"]; present {
		d.CountryBudgets = &CollectionDelta[models.CountryBudget]{}
		if err := json.Unmarshal(v, d.CountryBudgets); err != nil {
			return fmt.Errorf("countryBudgets: %w", err)
		}
	}
	if v, present := raw["customCategories"]; present {
		d.CustomCategories = &CollectionDelta[models.CustomCategory]{}
		if err := json.Unmarshal(v, d.CustomCategories); err != nil {
			return fmt.Errorf("customCategories: %w", err)
		}
	}
	return nil
}
