package goquery

import (
	"strings"

	foodrun "github.com/morrisxelijah/food-run"
)

var _ foodrun.RuleRegistry = (*Registry)(nil)

// Registry manages site-tuned extraction rules. It is populated once at
// process start and looked up read-only per request, so unsynchronized
// concurrent lookups are safe.
type Registry struct {
	rules []foodrun.DomainRule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry creates a Registry with every built-in site rule
// registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewBudgetBytesRule())
	r.Register(NewSkinnytasteRule())
	r.Register(NewSeriousEatsRule())
	r.Register(NewPioneerWomanRule())
	return r
}

// Register adds a rule. Later registrations don't shadow earlier ones;
// Lookup returns the first match in registration order.
func (r *Registry) Register(rule foodrun.DomainRule) {
	r.rules = append(r.rules, rule)
}

// Lookup returns the first rule matching the hostname, or nil.
// The hostname is lowercased before matching.
func (r *Registry) Lookup(host string) foodrun.DomainRule {
	host = strings.ToLower(host)
	for _, rule := range r.rules {
		if rule.Match(host) {
			return rule
		}
	}
	return nil
}

// List returns all registered rules in registration order.
func (r *Registry) List() []foodrun.DomainRule {
	return append([]foodrun.DomainRule(nil), r.rules...)
}
