package ability

// Conditions are field-equality constraints a subject must satisfy for a
// rule to match. Every named field must be present on the subject with
// exactly the given value; a missing field never matches.
type Conditions map[string]string

// Rule is an atomic grant or revoke statement. Rules are immutable once
// built and evaluated strictly in declaration order.
type Rule struct {
	// Actions the rule covers. ActionManage covers every action.
	Actions []Action
	// Subject is the subject type the rule is scoped to, or SubjectAll.
	Subject SubjectType
	// Conditions optionally narrow the rule to matching subjects.
	Conditions Conditions
	// Inverted marks a revoke ("cannot") rule.
	Inverted bool
}

// matchesAction reports whether the rule covers the queried action.
func (r Rule) matchesAction(action Action) bool {
	for _, a := range r.Actions {
		if a == action || a == ActionManage {
			return true
		}
	}

	return false
}

// matchesConditions reports whether every rule condition holds on the
// subject. Strict equality only: a condition on a field the subject does
// not carry never matches.
func (r Rule) matchesConditions(subject Subject) bool {
	for field, want := range r.Conditions {
		got, ok := subject.Fields[field]
		if !ok || got != want {
			return false
		}
	}

	return true
}

// Builder collects rules for one role in declaration order. A role's
// definition appends grants with Can and revokes with Cannot; the builder
// itself holds no evaluation logic.
type Builder struct {
	rules []Rule
}

// Can appends a grant rule. At most one conditions map is expected; if
// several are passed they are merged.
func (b *Builder) Can(actions []Action, subject SubjectType, conditions ...Conditions) {
	b.append(actions, subject, false, conditions)
}

// Cannot appends a revoke rule, overriding any broader earlier grant for
// overlapping actions on the same subject type.
func (b *Builder) Cannot(actions []Action, subject SubjectType, conditions ...Conditions) {
	b.append(actions, subject, true, conditions)
}

func (b *Builder) append(actions []Action, subject SubjectType, inverted bool, conditions []Conditions) {
	var merged Conditions

	for _, c := range conditions {
		if merged == nil {
			merged = make(Conditions, len(c))
		}
		for field, value := range c {
			merged[field] = value
		}
	}

	b.rules = append(b.rules, Rule{
		Actions:    actions,
		Subject:    subject,
		Conditions: merged,
		Inverted:   inverted,
	})
}
