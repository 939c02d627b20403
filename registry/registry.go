// Package registry keeps a name-sorted table of typed variables bound to
// storage owned by their subsystems. The console, the config loader and every
// subsystem with runtime tunables read and write through it.
package registry

import (
	"slices"
	"sync"

	"github.com/lixenwraith/sx3/vmath"
)

type variable struct {
	name     string
	ref      Ref
	readOnly bool
	onUpdate func()
}

// Registry is a set of variables ordered by case-insensitive name.
// The zero value is ready to use. Writers are serialized; update callbacks
// run after the lock is released, so they may call back into the registry.
type Registry struct {
	mu   sync.RWMutex
	vars []variable
}

// New returns an empty registry
func New() *Registry {
	r := &Registry{}
	r.Init()
	return r
}

// Init allocates the table; it is a no-op on an initialized registry
func (r *Registry) Init() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vars == nil {
		r.vars = make([]variable, 0, 32)
	}
}

// Release drops every variable. The registry may be reused afterwards.
func (r *Registry) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vars = nil
}

// Len returns the number of registered variables
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vars)
}

var defaultRegistry = New()

// Default returns the process-wide registry
func Default() *Registry {
	return defaultRegistry
}

// AddVar registers name bound to ref. onUpdate, if not nil, runs after every
// successful write.
func (r *Registry) AddVar(name string, ref Ref, readOnly bool, onUpdate func()) error {
	if name == "" || !ref.valid() {
		return ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, found := r.search(name)
	if found {
		return ErrAlreadyExists
	}
	r.vars = slices.Insert(r.vars, i, variable{
		name:     name,
		ref:      ref,
		readOnly: readOnly,
		onUpdate: onUpdate,
	})
	return nil
}

// Type returns the data type of name
func (r *Registry) Type(name string) (Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v := r.find(name)
	if v == nil {
		return 0, ErrNotFound
	}
	return v.ref.typ, nil
}

// IsReadOnly reports whether name rejects non-forced writes
func (r *Registry) IsReadOnly(name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v := r.find(name)
	if v == nil {
		return false, ErrNotFound
	}
	return v.readOnly, nil
}

// snapshot copies the names in table order
func (r *Registry) snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.vars))
	for i := range r.vars {
		names[i] = r.vars[i].name
	}
	return names
}

// search returns the insertion index of name and whether it is present
func (r *Registry) search(name string) (int, bool) {
	return slices.BinarySearchFunc(r.vars, name, func(v variable, n string) int {
		return compareFold(v.name, n)
	})
}

func (r *Registry) find(name string) *variable {
	if i, ok := r.search(name); ok {
		return &r.vars[i]
	}
	return nil
}

// compareFold orders strings ignoring ASCII case
func compareFold(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := lower(a[i]), lower(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// hasPrefixFold reports whether s starts with prefix, ignoring ASCII case
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && compareFold(s[:len(prefix)], prefix) == 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// get runs read under the read lock after the existence and type checks
func (r *Registry) get(name string, typ Type, read func(v *variable) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v := r.find(name)
	if v == nil {
		return ErrNotFound
	}
	if v.ref.typ != typ {
		return ErrWrongType
	}
	return read(v)
}

// set checks existence, type, string capacity and read-only status in that
// order, writes, then runs the update callback unlocked
func (r *Registry) set(name string, typ Type, force bool, size int, write func(v *variable)) error {
	r.mu.Lock()
	v := r.find(name)
	if v == nil {
		r.mu.Unlock()
		return ErrNotFound
	}
	if v.ref.typ != typ {
		r.mu.Unlock()
		return ErrWrongType
	}
	if typ == TypeString && size+1 > v.ref.maxSize {
		r.mu.Unlock()
		return ErrStringTooShort
	}
	if v.readOnly && !force {
		r.mu.Unlock()
		return ErrReadOnly
	}
	write(v)
	cb := v.onUpdate
	r.mu.Unlock()

	if cb != nil {
		cb()
	}
	return nil
}

// GetInt returns the value of an int variable, 0 on error
func (r *Registry) GetInt(name string) (int, error) {
	var out int
	err := r.get(name, TypeInt, func(v *variable) error {
		out = *v.ref.ptr.(*int)
		return nil
	})
	return out, err
}

func (r *Registry) GetBool(name string) (bool, error) {
	var out bool
	err := r.get(name, TypeBool, func(v *variable) error {
		out = *v.ref.ptr.(*bool)
		return nil
	})
	return out, err
}

func (r *Registry) GetFloat(name string) (float32, error) {
	var out float32
	err := r.get(name, TypeFloat, func(v *variable) error {
		out = *v.ref.ptr.(*float32)
		return nil
	})
	return out, err
}

func (r *Registry) GetDouble(name string) (float64, error) {
	var out float64
	err := r.get(name, TypeDouble, func(v *variable) error {
		out = *v.ref.ptr.(*float64)
		return nil
	})
	return out, err
}

func (r *Registry) GetChar(name string) (byte, error) {
	var out byte
	err := r.get(name, TypeChar, func(v *variable) error {
		out = *v.ref.ptr.(*byte)
		return nil
	})
	return out, err
}

func (r *Registry) GetPointer(name string) (any, error) {
	var out any
	err := r.get(name, TypePointer, func(v *variable) error {
		out = *v.ref.ptr.(*any)
		return nil
	})
	return out, err
}

func (r *Registry) GetVector(name string) (vmath.Vector, error) {
	var out vmath.Vector
	err := r.get(name, TypeVector, func(v *variable) error {
		out = *v.ref.ptr.(*vmath.Vector)
		return nil
	})
	return out, err
}

// GetString returns a string variable. capacity is the caller's buffer size
// including a terminator; values that do not fit yield ErrBufferTooSmall.
func (r *Registry) GetString(name string, capacity int) (string, error) {
	var out string
	err := r.get(name, TypeString, func(v *variable) error {
		s := *v.ref.ptr.(*string)
		if len(s)+1 > capacity {
			return ErrBufferTooSmall
		}
		out = s
		return nil
	})
	return out, err
}

func (r *Registry) SetInt(name string, value int) error      { return r.setInt(name, value, false) }
func (r *Registry) ForceSetInt(name string, value int) error { return r.setInt(name, value, true) }

func (r *Registry) setInt(name string, value int, force bool) error {
	return r.set(name, TypeInt, force, 0, func(v *variable) { *v.ref.ptr.(*int) = value })
}

func (r *Registry) SetBool(name string, value bool) error      { return r.setBool(name, value, false) }
func (r *Registry) ForceSetBool(name string, value bool) error { return r.setBool(name, value, true) }

func (r *Registry) setBool(name string, value bool, force bool) error {
	return r.set(name, TypeBool, force, 0, func(v *variable) { *v.ref.ptr.(*bool) = value })
}

func (r *Registry) SetFloat(name string, value float32) error      { return r.setFloat(name, value, false) }
func (r *Registry) ForceSetFloat(name string, value float32) error { return r.setFloat(name, value, true) }

func (r *Registry) setFloat(name string, value float32, force bool) error {
	return r.set(name, TypeFloat, force, 0, func(v *variable) { *v.ref.ptr.(*float32) = value })
}

func (r *Registry) SetDouble(name string, value float64) error      { return r.setDouble(name, value, false) }
func (r *Registry) ForceSetDouble(name string, value float64) error { return r.setDouble(name, value, true) }

func (r *Registry) setDouble(name string, value float64, force bool) error {
	return r.set(name, TypeDouble, force, 0, func(v *variable) { *v.ref.ptr.(*float64) = value })
}

func (r *Registry) SetChar(name string, value byte) error      { return r.setChar(name, value, false) }
func (r *Registry) ForceSetChar(name string, value byte) error { return r.setChar(name, value, true) }

func (r *Registry) setChar(name string, value byte, force bool) error {
	return r.set(name, TypeChar, force, 0, func(v *variable) { *v.ref.ptr.(*byte) = value })
}

func (r *Registry) SetVector(name string, value vmath.Vector) error {
	return r.setVector(name, value, false)
}

func (r *Registry) ForceSetVector(name string, value vmath.Vector) error {
	return r.setVector(name, value, true)
}

func (r *Registry) setVector(name string, value vmath.Vector, force bool) error {
	return r.set(name, TypeVector, force, 0, func(v *variable) { *v.ref.ptr.(*vmath.Vector) = value })
}

// SetString fails with ErrStringTooShort when value and its terminator do not
// fit the registered size; the stored value is left untouched
func (r *Registry) SetString(name, value string) error { return r.setString(name, value, false) }

func (r *Registry) ForceSetString(name, value string) error { return r.setString(name, value, true) }

func (r *Registry) setString(name, value string, force bool) error {
	return r.set(name, TypeString, force, len(value), func(v *variable) { *v.ref.ptr.(*string) = value })
}
