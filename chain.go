package cape

import (
	"github.com/avila-r/cape/tags"
)

// ErrorChain amends the descriptive fields of a copy of an error.
type ErrorChain struct {
	err *Error
}

func (e *Error) Chain() *ErrorChain {
	copy := *e
	return &ErrorChain{err: &copy}
}

func (c *ErrorChain) Done() *Error {
	return c.err
}

func (c *ErrorChain) Name(name string) *ErrorChain {
	c.err.user.name = name
	return c
}

// Interface sets the interface name unless one is already recorded.
func (c *ErrorChain) Interface(name string) *ErrorChain {
	if c.err.user.iface == "" {
		c.err.user.iface = name
	}
	return c
}

// Operation sets the operation name unless one is already recorded.
func (c *ErrorChain) Operation(operation string) *ErrorChain {
	if c.err.user.operation == "" {
		c.err.user.operation = operation
	}
	return c
}

func (c *ErrorChain) Scope(scope string) *ErrorChain {
	c.err.user.scope = scope
	return c
}

func (c *ErrorChain) MoreInfo(link string) *ErrorChain {
	c.err.user.moreInfo = link
	return c
}

// Tags merges t into the error's tags; existing keys win.
func (c *ErrorChain) Tags(t tags.Tags) *ErrorChain {
	merged := tags.Tags{}
	tags.Merge(c.err.tags, &merged)
	tags.Merge(t, &merged)
	c.err.tags = merged
	return c
}
