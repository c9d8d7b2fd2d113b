package phases

import (
	"fmt"
	"reflect"
)

// InsertResource adds a resource to the world. An existing resource of the same
// type is replaced. Resources must be inserted by value.
func (w *World) InsertResource(res any) {
	value := reflect.ValueOf(res)
	if !value.IsValid() {
		panic("resource must not be nil")
	}

	if value.Kind() == reflect.Pointer {
		panic(fmt.Sprintf("resource must be inserted by value, got %T", res))
	}

	ptr := reflect.New(value.Type())
	ptr.Elem().Set(value)

	w.resources[value.Type()] = ptr.Interface()
}

// ResourceOf returns a pointer to the resource of type T, if it exists.
func ResourceOf[T any](w *World) (*T, bool) {
	value, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}

	return value.(*T), true
}

// MustResourceOf returns a pointer to the resource of type T and panics
// if the resource does not exist.
func MustResourceOf[T any](w *World) *T {
	res, ok := ResourceOf[T](w)
	if !ok {
		panic(fmt.Sprintf("resource of type %s does not exist in world", reflect.TypeFor[T]()))
	}

	return res
}

// RemoveResource removes the resource of type T from the world.
func RemoveResource[T any](w *World) {
	delete(w.resources, reflect.TypeFor[T]())
}

// ResourceExists returns a predicate that is true while a resource of type T exists.
func ResourceExists[T any](w *World) bool {
	_, ok := ResourceOf[T](w)
	return ok
}
