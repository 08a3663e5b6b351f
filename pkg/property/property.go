// Package property stores per-item configuration: named groups of attributes
// ("data" for validation constraints, "display" for presentation hints) whose
// values are either constants or resolved lazily against a record instance.
package property

import "fmt"

// Resolver produces an attribute value for one record instance. owner is the
// item the attribute belongs to, instance the record being inspected.
// Resolvers must be reentrant and side-effect free: the same attribute may be
// resolved several times within a single validation pass.
type Resolver func(owner, instance any) (any, error)

// Value is the constant-or-resolver variant behind every dynamic property.
// Callers always go through Resolve and never branch on the variant.
type Value struct {
	constant any
	resolver Resolver
}

// Static wraps a constant.
func Static(v any) Value { return Value{constant: v} }

// Dynamic wraps a per-instance resolver.
func Dynamic(fn Resolver) Value { return Value{resolver: fn} }

// IsDynamic reports whether resolution requires a record instance.
func (v Value) IsDynamic() bool { return v.resolver != nil }

// Constant returns the static payload, or nil for dynamic values. It exists
// for callers that must answer without an instance (declaration-time default
// resolution, static validation).
func (v Value) Constant() any {
	if v.resolver != nil {
		return nil
	}
	return v.constant
}

// Resolve yields the attribute value for the given owner/instance pair.
// Constants resolve to themselves regardless of the instance.
func (v Value) Resolve(owner, instance any) (any, error) {
	if v.resolver == nil {
		return v.constant, nil
	}
	out, err := v.resolver(owner, instance)
	if err != nil {
		return nil, fmt.Errorf("property: resolve: %w", err)
	}
	return out, nil
}

// Groups maps a group name to its named attributes. The zero value is ready
// to use. Groups is not safe for concurrent mutation; items enforce a
// configure-then-freeze discipline so all mutation happens before sharing.
type Groups struct {
	groups map[string]map[string]Value
}

// Set stores an attribute, replacing any previous value under the same
// group/key pair.
func (g *Groups) Set(group, key string, v Value) {
	if g.groups == nil {
		g.groups = make(map[string]map[string]Value)
	}
	attrs := g.groups[group]
	if attrs == nil {
		attrs = make(map[string]Value)
		g.groups[group] = attrs
	}
	attrs[key] = v
}

// Get returns the raw attribute value. The second result is false when the
// group/key pair was never set.
func (g *Groups) Get(group, key string) (Value, bool) {
	if g.groups == nil {
		return Value{}, false
	}
	v, ok := g.groups[group][key]
	return v, ok
}

// Constant returns the static payload of an attribute, or nil when the
// attribute is missing or dynamic.
func (g *Groups) Constant(group, key string) any {
	v, ok := g.Get(group, key)
	if !ok {
		return nil
	}
	return v.Constant()
}

// Resolve resolves an attribute against a record instance. Missing attributes
// resolve to nil without error.
func (g *Groups) Resolve(group, key string, owner, instance any) (any, error) {
	v, ok := g.Get(group, key)
	if !ok {
		return nil, nil
	}
	return v.Resolve(owner, instance)
}
