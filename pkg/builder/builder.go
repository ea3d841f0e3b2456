package builder

import "github.com/nikmy/freeslots/pkg/errors"

func New[T any]() *Builder[T] {
	return &Builder[T]{
		obj: new(T),
	}
}

// Builder applies setters to a fresh T and keeps every error they return,
// so a single Get reports all problems at once.
type Builder[T any] struct {
	obj  *T
	errs []error
}

func (b *Builder[T]) Use(setter func(obj *T)) *Builder[T] {
	setter(b.obj)
	return b
}

func (b *Builder[T]) MaybeUse(setter func(obj *T) error) *Builder[T] {
	if err := setter(b.obj); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

func (b *Builder[T]) Get() (*T, error) {
	if len(b.errs) > 0 {
		return nil, errors.Collapse(b.errs)
	}
	return b.obj, nil
}
