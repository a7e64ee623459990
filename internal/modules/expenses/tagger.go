package expenses

import (
	"slices"
	"strings"

	"github.com/aristath/ledger-seeder/internal/domain"
	"github.com/aristath/ledger-seeder/internal/modules/catalog"
	"github.com/aristath/ledger-seeder/internal/modules/reference"
	"github.com/aristath/ledger-seeder/pkg/random"
)

// Tag names assigned by fixed rules rather than category heuristics
const (
	TagSubscription  = "subscription"
	TagRecurring     = "recurring"
	TagGift          = "gift"
	TagTaxDeductible = "tax-deductible"
	TagReimbursable  = "reimbursable"
	TagImpulse       = "impulse"
)

// Tagger derives expense-tag associations from category and description
type Tagger struct {
	rnd     *random.Source
	catalog reference.Catalog
}

// NewTagger creates a tagger over cat
func NewTagger(cat reference.Catalog, rnd *random.Source) *Tagger {
	return &Tagger{catalog: cat, rnd: rnd}
}

// Assign returns the associations for records, which must carry store ids.
// categoryNames maps category ids back to names. Tags missing from tags are
// dropped and counted.
func (t *Tagger) Assign(records []domain.Expense, categoryNames map[int64]string, tags catalog.NameIndex) (pairs []domain.ExpenseTag, dropped int) {
	for _, rec := range records {
		var category string
		if rec.CategoryID != nil {
			category = categoryNames[*rec.CategoryID]
		}

		for _, name := range t.tagsFor(category, rec.Description) {
			tagID, ok := tags.Lookup(name)
			if !ok {
				dropped++
				continue
			}
			pairs = append(pairs, domain.ExpenseTag{ExpenseID: rec.ID, TagID: tagID})
		}
	}
	return pairs, dropped
}

func (t *Tagger) tagsFor(category, description string) []string {
	cfg := t.catalog.Expenses
	set := newOrderedSet()

	for _, h := range t.catalog.TagHeuristics {
		if slices.Contains(h.Categories, category) && t.rnd.Chance(cfg.CategoryTagChance) {
			set.add(h.Tag)
		}
	}

	lower := strings.ToLower(description)
	for _, kw := range t.catalog.SubscriptionKeywords {
		if strings.Contains(lower, kw) {
			set.add(TagSubscription)
			set.add(TagRecurring)
			break
		}
	}
	if strings.Contains(lower, TagGift) {
		set.add(TagGift)
	}

	if t.rnd.Chance(cfg.TaxDeductibleChance) {
		set.add(TagTaxDeductible)
	}
	if t.rnd.Chance(cfg.ReimbursableChance) {
		set.add(TagReimbursable)
	}
	if t.rnd.Chance(cfg.ImpulseChance) {
		set.add(TagImpulse)
	}

	return set.items
}

type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]bool{}}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}
