package model

// Decorator enriches a module schema after the module declared it, e.g. to
// localize labels or apply preset defaults.
type Decorator interface {
	Decorate(*ModuleSchema) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*ModuleSchema) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(schema *ModuleSchema) error {
	return fn(schema)
}
