// File: config.go
// Role: Config, the three optional attribute functions plus a
// scheme-specific parameter bag (spec.md §4.E), configured the way every
// other constructor in this module is: functional options.
package scheme

import "github.com/marco-caputo/multilevel-graphs/decgraph"

// SupernodeAttrFunc computes a supernode's attribute bag from its interior
// DecGraph when the supernode is (re)computed.
type SupernodeAttrFunc func(*decgraph.DecGraph) map[string]interface{}

// SuperedgeAttrFunc computes a superedge's attribute bag from its current
// aggregation when the superedge is (re)computed.
type SuperedgeAttrFunc func([]*decgraph.Superedge) map[string]interface{}

// CSetAttrFunc computes a ComponentSet's attribute bag from its member
// supernodes when the set is (re)computed.
type CSetAttrFunc func([]*decgraph.Supernode) map[string]interface{}

// Config holds a ContractionScheme's attribute functions and arbitrary
// scheme-specific parameters (e.g. Cliques' "reciprocal" flag).
type Config struct {
	SupernodeAttr SupernodeAttrFunc
	SuperedgeAttr SuperedgeAttrFunc
	CSetAttr      CSetAttrFunc
	Params        map[string]interface{}
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithSupernodeAttrFunc installs the supernode attribute function.
func WithSupernodeAttrFunc(f SupernodeAttrFunc) Option {
	return func(c *Config) { c.SupernodeAttr = f }
}

// WithSuperedgeAttrFunc installs the superedge attribute function.
func WithSuperedgeAttrFunc(f SuperedgeAttrFunc) Option {
	return func(c *Config) { c.SuperedgeAttr = f }
}

// WithCSetAttrFunc installs the component-set attribute function.
func WithCSetAttrFunc(f CSetAttrFunc) Option {
	return func(c *Config) { c.CSetAttr = f }
}

// WithParam sets a single scheme-specific parameter (e.g. "reciprocal").
func WithParam(key string, value interface{}) Option {
	return func(c *Config) { c.Params[key] = value }
}

// NewConfig builds a Config with no-op attribute functions (returning empty
// maps) unless overridden, matching spec.md §4.E's "optional" attribute
// functions.
func NewConfig(opts ...Option) Config {
	c := Config{
		SupernodeAttr: func(*decgraph.DecGraph) map[string]interface{} { return map[string]interface{}{} },
		SuperedgeAttr: func([]*decgraph.Superedge) map[string]interface{} { return map[string]interface{}{} },
		CSetAttr:      func([]*decgraph.Supernode) map[string]interface{} { return map[string]interface{}{} },
		Params:        map[string]interface{}{},
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Param returns a scheme-specific parameter, and whether it was set.
func (c Config) Param(key string) (interface{}, bool) {
	v, ok := c.Params[key]

	return v, ok
}
