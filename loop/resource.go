package loop

import "reflect"

// Resources holds one shared value per type. Systems reach them through
// Resource fields rather than package globals.
type Resources struct {
	values  map[reflect.Type]any
	version uint64
}

// NewResources returns an empty resource set.
func NewResources() *Resources {
	return &Resources{
		values: make(map[reflect.Type]any),
	}
}

// Provide stores value as the resource of type T, replacing any previous one.
func Provide[T any](r *Resources, value *T) {
	r.values[reflect.TypeFor[T]()] = value
	r.version++
}

// Lookup returns the resource of type T, or nil if none was provided.
func Lookup[T any](r *Resources) *T {
	v, ok := r.values[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return v.(*T)
}

// Len returns the number of provided resources.
func (r *Resources) Len() int {
	return len(r.values)
}

// Types returns the type names of all provided resources.
func (r *Resources) Types() []string {
	names := make([]string, 0, len(r.values))
	for t := range r.values {
		names = append(names, t.String())
	}
	return names
}

// resourceField is implemented by *Resource[T] for every T.
type resourceField interface {
	Init(r *Resources)
}

// Resource gives a system cached access to the shared value of type T.
// Declare it as a struct field; Scheduler.Register initializes it.
type Resource[T any] struct {
	resources *Resources
	ptr       *T
	version   uint64
}

// NewResource returns an accessor bound to r, for use outside a scheduler.
func NewResource[T any](r *Resources) *Resource[T] {
	res := &Resource[T]{}
	res.Init(r)
	return res
}

// Init binds the accessor to a resource set.
// This is called automatically by the Scheduler during system registration.
func (s *Resource[T]) Init(r *Resources) {
	s.resources = r
	s.ptr = nil
	s.version = 0
}

// Get returns the current value, or nil if none has been provided.
// The cached pointer is refreshed whenever a resource is re-provided.
func (s *Resource[T]) Get() *T {
	if s.resources == nil {
		return nil
	}
	if s.ptr == nil || s.version != s.resources.version {
		s.ptr = Lookup[T](s.resources)
		s.version = s.resources.version
	}
	return s.ptr
}

// Exists reports whether a value of type T has been provided.
func (s *Resource[T]) Exists() bool {
	return s.Get() != nil
}
