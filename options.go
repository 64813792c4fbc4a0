package xconv

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/xconv/conv"
)

// Option represents converter option
type Option func(c *Converter)

// Options represents converter options
type Options []Option

// Apply applies options
func (o Options) Apply(c *Converter) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(c)
	}
}

// WithOptions sets conversion options of a new registry
func WithOptions(options conv.Options) Option {
	return func(c *Converter) {
		c.options = &options
	}
}

// WithRegistry sets converter registry, registry options take precedence over WithOptions
func WithRegistry(registry *conv.Registry) Option {
	return func(c *Converter) {
		c.registry = registry
	}
}

// WithLogger sets logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithObserver sets conversion observer
func WithObserver(observer Observer) Option {
	return func(c *Converter) {
		c.observer = observer
	}
}
