package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/sx3/vmath"
)

// SetValue parses value according to the type of name and stores it.
// Numbers are read from the leading numeric prefix, garbage parses as 0.
// Booleans accept true/on/false/off in any case, otherwise any non-zero
// integer is true. Chars take the first byte. Vectors read up to four
// space-separated numbers. Pointer variables cannot be set from text.
func (r *Registry) SetValue(name, value string) error {
	return r.setValue(name, value, false)
}

// ForceSetValue is SetValue ignoring the read-only flag
func (r *Registry) ForceSetValue(name, value string) error {
	return r.setValue(name, value, true)
}

func (r *Registry) setValue(name, value string, force bool) error {
	typ, err := r.Type(name)
	if err != nil {
		return err
	}

	switch typ {
	case TypeString:
		return r.setString(name, value, force)
	case TypeInt:
		return r.setInt(name, Atoi(value), force)
	case TypeBool:
		return r.setBool(name, ParseBool(value), force)
	case TypeFloat:
		return r.setFloat(name, float32(Atof(value)), force)
	case TypeDouble:
		return r.setDouble(name, Atof(value), force)
	case TypeChar:
		var c byte
		if len(value) > 0 {
			c = value[0]
		}
		return r.setChar(name, c, force)
	case TypeVector:
		return r.setVector(name, parseVector(value), force)
	default:
		return ErrBadDataType
	}
}

// Print formats a variable for display. capacity is the caller's buffer size
// including a terminator, and output that would not fit yields ErrBufferTooSmall.
func (r *Registry) Print(name string, capacity int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v := r.find(name)
	if v == nil {
		return "", ErrNotFound
	}

	var s string
	switch p := v.ref.ptr.(type) {
	case *string:
		s = *p
	case *int:
		s = strconv.Itoa(*p)
	case *bool:
		if len("false")+1 > capacity {
			return "", ErrBufferTooSmall
		}
		if *p {
			return "True", nil
		}
		return "False", nil
	case *float32:
		s = fmt.Sprintf("%f", *p)
	case *float64:
		s = fmt.Sprintf("%f", *p)
	case *byte:
		if capacity < 1 {
			return "", ErrBufferTooSmall
		}
		return string([]byte{*p}), nil
	case *vmath.Vector:
		s = fmt.Sprintf("%f %f %f %f", p[0], p[1], p[2], p[3])
	default:
		return "", ErrBadDataType
	}

	if len(s)+1 > capacity {
		return "", ErrBufferTooSmall
	}
	return s, nil
}

// ParseBool reads true/on and false/off in any case, falling back to Atoi != 0
func ParseBool(s string) bool {
	switch {
	case strings.EqualFold(s, "true"), strings.EqualFold(s, "on"):
		return true
	case strings.EqualFold(s, "false"), strings.EqualFold(s, "off"):
		return false
	}
	return Atoi(s) != 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Atoi parses the leading decimal integer of s after optional whitespace and
// sign. Text without one yields 0; out of range values saturate.
func Atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digits {
		return 0
	}
	n, _ := strconv.ParseInt(s[start:i], 10, strconv.IntSize)
	return int(n)
}

// Atof parses the leading decimal floating point number of s, including an
// optional exponent, or inf/infinity/nan. Text without one yields 0.
func Atof(s string) float64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	rest := strings.ToLower(s[i:])
	for _, word := range []string{"infinity", "inf", "nan"} {
		if strings.HasPrefix(rest, word) {
			f, _ := strconv.ParseFloat(s[start:i+len(word)], 64)
			return f
		}
	}

	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}

	// Exponent only counts when digits follow
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	f, _ := strconv.ParseFloat(s[start:i], 64)
	return f
}

// parseVector reads up to four numbers; missing components are zero
func parseVector(s string) vmath.Vector {
	var v vmath.Vector
	for i, field := range strings.Fields(s) {
		if i >= len(v) {
			break
		}
		v[i] = float32(Atof(field))
	}
	return v
}
