package validity_test

import "github.com/dmitrymomot/formkit/pkg/validity"

// control is an in-memory validity.Control used across the tests.
type control struct {
	node    validity.NodeType
	name    string
	attrs   map[string]string
	value   *string
	options []validity.Option
}

func (c *control) NodeType() validity.NodeType { return c.node }
func (c *control) LocalName() string           { return c.name }

func (c *control) Attribute(name string) (string, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

func (c *control) ValueForValidation() (string, bool) {
	if c.value == nil {
		return "", false
	}
	return *c.value, true
}

func (c *control) Options() []validity.Option { return c.options }

func element(name string, attrs ...string) *control {
	c := &control{node: validity.ElementNode, name: name, attrs: map[string]string{}}
	for i := 0; i+1 < len(attrs); i += 2 {
		c.attrs[attrs[i]] = attrs[i+1]
	}
	return c
}

func (c *control) withValue(v string) *control {
	c.value = &v
	return c
}

func (c *control) withOptions(opts ...validity.Option) *control {
	c.options = opts
	return c
}

func textInput(attrs ...string) *control {
	return element("input", append([]string{"type", "text"}, attrs...)...)
}

func numberInput(attrs ...string) *control {
	return element("input", append([]string{"type", "number"}, attrs...)...)
}
