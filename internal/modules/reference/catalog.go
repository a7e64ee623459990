// Package reference holds the fixed catalogs the generators draw from:
// expense templates, tags, rules, accounts, tradable symbols and the salary
// and trading parameters.
package reference

import "github.com/aristath/ledger-seeder/internal/domain"

// Account names referenced by the generators
const (
	AccountChecking   = "Primary Checking"
	AccountSavings    = "Savings Account"
	AccountCreditCard = "Credit Card"
	AccountBrokerage  = "Brokerage Account"
	AccountRetirement = "Roth IRA"
)

// Template is a (description, min, max) triple for a plausible transaction
type Template struct {
	Description string
	MinCents    int64
	MaxCents    int64
}

// CategoryWeight is the relative draw frequency of a category
type CategoryWeight struct {
	Category string
	Weight   int
}

// IncomeTemplate is a template for a miscellaneous inflow
type IncomeTemplate struct {
	Description string
	Payer       string
	MinCents    int64
	MaxCents    int64
}

// TagDef declares a tag to seed
type TagDef struct {
	Name  string
	Color string
	Style domain.TagStyle
}

// RuleDef declares a rule to seed. Target is a category or tag name.
type RuleDef struct {
	Name    string
	Pattern string
	Action  domain.RuleAction
	Target  string
}

// AccountDef declares an account to seed
type AccountDef struct {
	Name string
	Type domain.AccountType
}

// Symbol is a tradable instrument with a present-day base price
type Symbol struct {
	Ticker        string
	Name          string
	BasePriceCent int64
	VolatilityPct float64
}

// TagHeuristic gives a tag to expenses in any of the listed categories
type TagHeuristic struct {
	Tag        string
	Categories []string
}

// Catalog bundles every fixed table. Build it with Default and treat it as
// read-only.
type Catalog struct {
	ExpenseTemplates     map[string][]Template
	CategoryWeights      []CategoryWeight
	FixedCostCategories  []string
	NoteTemplates        []string
	OtherIncome          []IncomeTemplate
	Tags                 []TagDef
	Rules                []RuleDef
	Accounts             []AccountDef
	Symbols              []Symbol
	RetirementSymbols    []string
	DividendSymbols      []string
	TagHeuristics        []TagHeuristic
	SubscriptionKeywords []string
	Salary               SalaryConfig
	Trading              TradingConfig
	Expenses             ExpenseConfig
}

// Default returns the built-in catalog
func Default() Catalog {
	return Catalog{
		ExpenseTemplates:     expenseTemplates(),
		CategoryWeights:      categoryWeights(),
		FixedCostCategories:  []string{"Rent/Mortgage", "Utilities", "Insurance"},
		NoteTemplates:        noteTemplates(),
		OtherIncome:          otherIncome(),
		Tags:                 tags(),
		Rules:                rules(),
		Accounts:             accounts(),
		Symbols:              symbols(),
		RetirementSymbols:    []string{"VTI", "VOO", "BND", "SCHD", "QQQ"},
		DividendSymbols:      []string{"AAPL", "MSFT", "SCHD", "VTI", "VOO"},
		TagHeuristics:        tagHeuristics(),
		SubscriptionKeywords: []string{"netflix", "spotify", "disney", "hbo", "subscription"},
		Salary:               DefaultSalaryConfig(),
		Trading:              DefaultTradingConfig(),
		Expenses:             DefaultExpenseConfig(),
	}
}

// WeightedCategories flattens the category weights into a multiset so a
// uniform draw over it is a weighted draw over categories.
func (c Catalog) WeightedCategories() []string {
	var out []string
	for _, cw := range c.CategoryWeights {
		for i := 0; i < cw.Weight; i++ {
			out = append(out, cw.Category)
		}
	}
	return out
}

// IsFixedCost reports whether category is always paid from checking
func (c Catalog) IsFixedCost(category string) bool {
	for _, name := range c.FixedCostCategories {
		if name == category {
			return true
		}
	}
	return false
}

// SymbolPool returns the symbols tradable in the retirement account, or all
// symbols when retirement is false.
func (c Catalog) SymbolPool(retirement bool) []Symbol {
	if !retirement {
		return c.Symbols
	}
	allowed := make(map[string]bool, len(c.RetirementSymbols))
	for _, s := range c.RetirementSymbols {
		allowed[s] = true
	}
	var pool []Symbol
	for _, s := range c.Symbols {
		if allowed[s.Ticker] {
			pool = append(pool, s)
		}
	}
	return pool
}

func categoryWeights() []CategoryWeight {
	return []CategoryWeight{
		{"Groceries", 15},
		{"Restaurants", 12},
		{"Coffee & Snacks", 20},
		{"Gas", 8},
		{"Public Transit", 10},
		{"Parking", 5},
		{"Rent/Mortgage", 1},
		{"Maintenance", 2},
		{"Insurance", 1},
		{"Utilities", 2},
		{"Entertainment", 8},
		{"Shopping", 10},
		{"Healthcare", 3},
		{"Other", 5},
	}
}

func noteTemplates() []string {
	return []string{
		"Paid with credit card",
		"Split with roommate",
		"Business expense - need to submit",
		"Birthday celebration",
		"Weekly shopping",
		"Emergency purchase",
		"Sale item",
		"Used coupon",
	}
}

func otherIncome() []IncomeTemplate {
	return []IncomeTemplate{
		{"Tax Refund", "IRS", 30000, 150000},
		{"Cashback Reward", "Credit Card Co", 1000, 5000},
		{"Reimbursement", "Company ABC", 2000, 10000},
		{"Gift Received", "Family Member", 2500, 10000},
		{"Sold Item", "eBay Buyer", 1500, 8000},
		{"Freelance Payment", "Client LLC", 20000, 80000},
	}
}

func tags() []TagDef {
	return []TagDef{
		{"recurring", "#8b5cf6", domain.TagStyleSolid},
		{"essential", "#ef4444", domain.TagStyleSolid},
		{"discretionary", "#10b981", domain.TagStyleOutline},
		{"tax-deductible", "#3b82f6", domain.TagStyleSolid},
		{"reimbursable", "#f59e0b", domain.TagStyleOutline},
		{"subscription", "#ec4899", domain.TagStyleStriped},
		{"one-time", "#6b7280", domain.TagStyleOutline},
		{"emergency", "#dc2626", domain.TagStyleSolid},
		{"planned", "#059669", domain.TagStyleSolid},
		{"impulse", "#f97316", domain.TagStyleStriped},
		{"gift", "#d946ef", domain.TagStyleSolid},
		{"work-related", "#0891b2", domain.TagStyleSolid},
	}
}

func rules() []RuleDef {
	return []RuleDef{
		{"Starbucks to Coffee", "(?i)starbucks", domain.RuleActionAssignCategory, "Coffee & Snacks"},
		{"Gas Stations", "(?i)(shell|chevron|exxon|bp|76).*gas", domain.RuleActionAssignCategory, "Gas"},
		{"Uber/Lyft Rides", "(?i)(uber|lyft)", domain.RuleActionAssignCategory, "Public Transit"},
		{"Streaming Services", "(?i)(netflix|spotify|disney|hbo|hulu)", domain.RuleActionAssignTag, "subscription"},
		{"Amazon Orders", "(?i)amazon", domain.RuleActionAssignCategory, "Shopping"},
		{"Grocery Stores", "(?i)(whole foods|trader joe|safeway|kroger|aldi)", domain.RuleActionAssignCategory, "Groceries"},
		{"Pharmacy", "(?i)(cvs|walgreens|rite aid)", domain.RuleActionAssignCategory, "Healthcare"},
		{"Fast Food", "(?i)(mcdonald|taco bell|wendy|burger king)", domain.RuleActionAssignCategory, "Restaurants"},
	}
}

func accounts() []AccountDef {
	return []AccountDef{
		{AccountChecking, domain.AccountTypeCash},
		{AccountSavings, domain.AccountTypeCash},
		{AccountCreditCard, domain.AccountTypeCash},
		{AccountBrokerage, domain.AccountTypeSecurities},
		{AccountRetirement, domain.AccountTypeSecurities},
	}
}

func symbols() []Symbol {
	return []Symbol{
		{"AAPL", "Apple Inc.", 17500, 15},
		{"MSFT", "Microsoft Corporation", 38000, 12},
		{"GOOGL", "Alphabet Inc.", 14000, 18},
		{"AMZN", "Amazon.com Inc.", 18500, 20},
		{"NVDA", "NVIDIA Corporation", 50000, 30},
		{"VTI", "Vanguard Total Stock Market ETF", 24000, 10},
		{"VOO", "Vanguard S&P 500 ETF", 45000, 10},
		{"BND", "Vanguard Total Bond Market ETF", 7500, 3},
		{"SCHD", "Schwab US Dividend Equity ETF", 7800, 8},
		{"QQQ", "Invesco QQQ Trust", 40000, 15},
	}
}

func tagHeuristics() []TagHeuristic {
	return []TagHeuristic{
		{"recurring", []string{"Rent/Mortgage", "Insurance", "Utilities"}},
		{"essential", []string{"Groceries", "Gas", "Healthcare", "Rent/Mortgage", "Utilities"}},
		{"discretionary", []string{"Entertainment", "Shopping", "Restaurants", "Coffee & Snacks"}},
	}
}
