package ability

import "github.com/GeovaneMT/LavaCar/internal/db/models"

// Ability is a compiled rule set bound to one user. It is built fresh per
// authorization check, never mutated afterwards, and safe for concurrent
// reads.
type Ability struct {
	role  models.Role
	rules []Rule
}

// Role returns the role the ability was compiled for.
func (a *Ability) Role() models.Role {
	return a.role
}

// Can reports whether the action is allowed on the subject.
//
// Rules scoped to another subject type are skipped, rules scoped to
// SubjectAll always apply. The remaining rules are walked in declaration
// order: every rule whose actions cover the queried action and whose
// conditions subset-match the subject flips the running result to
// !Inverted. The last matching rule therefore wins, and with no matching
// rule at all the answer is a deny.
func (a *Ability) Can(action Action, subject Subject) bool {
	allowed := false

	for _, rule := range a.rules {
		if rule.Subject != subject.Type && rule.Subject != SubjectAll {
			continue
		}

		if !rule.matchesAction(action) || !rule.matchesConditions(subject) {
			continue
		}

		allowed = !rule.Inverted
	}

	return allowed
}
