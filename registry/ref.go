package registry

import "github.com/lixenwraith/sx3/vmath"

// Type is the data type of a registered variable
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeBool
	TypeFloat
	TypeDouble
	TypeChar
	TypePointer
	TypeVector
)

var typeNames = [...]string{"string", "int", "bool", "float", "double", "char", "pointer", "vector"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "invalid"
	}
	return typeNames[t]
}

// Ref binds a variable to storage owned by the caller
type Ref struct {
	typ     Type
	ptr     any
	maxSize int
}

// Type reports the bound data type
func (r Ref) Type() Type { return r.typ }

// String binds a string holding at most maxSize-1 bytes
func String(p *string, maxSize int) Ref { return Ref{typ: TypeString, ptr: p, maxSize: maxSize} }

func Int(p *int) Ref { return Ref{typ: TypeInt, ptr: p} }
func Bool(p *bool) Ref { return Ref{typ: TypeBool, ptr: p} }
func Float(p *float32) Ref { return Ref{typ: TypeFloat, ptr: p} }
func Double(p *float64) Ref { return Ref{typ: TypeDouble, ptr: p} }
func Char(p *byte) Ref { return Ref{typ: TypeChar, ptr: p} }
func Pointer(p *any) Ref { return Ref{typ: TypePointer, ptr: p} }
func Vector(p *vmath.Vector) Ref { return Ref{typ: TypeVector, ptr: p} }

// valid reports whether r points at storage of its declared type
func (r Ref) valid() bool {
	switch p := r.ptr.(type) {
	case *string:
		return p != nil && r.typ == TypeString
	case *int:
		return p != nil && r.typ == TypeInt
	case *bool:
		return p != nil && r.typ == TypeBool
	case *float32:
		return p != nil && r.typ == TypeFloat
	case *float64:
		return p != nil && r.typ == TypeDouble
	case *byte:
		return p != nil && r.typ == TypeChar
	case *any:
		return p != nil && r.typ == TypePointer
	case *vmath.Vector:
		return p != nil && r.typ == TypeVector
	}
	return false
}
