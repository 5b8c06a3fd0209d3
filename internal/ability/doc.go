// Package ability implements the attribute-based authorization engine.
//
// Permissions are expressed as an ordered list of grant/revoke rules per
// role. A rule names a set of actions, a subject type and optional
// field-equality conditions. Evaluation walks the rules in declaration
// order and the last matching rule wins, so a broad "can manage all" can
// be narrowed with "cannot manage PHONE" and re-opened with a scoped
// "can manage PHONE{userId: ...}".
//
// Domain entities never reach the evaluator directly; they are projected
// onto flat Subject records carrying a type discriminator and the scalar
// fields the rule conditions compare against.
package ability
