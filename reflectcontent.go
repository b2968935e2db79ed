package mustache

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// ReflectValue implements Content over an arbitrary Go value via
// reflection, building a field table once per struct type (cached in a
// package-level sync.Map) rather than walking struct tags on every lookup.
// This is design option (b): it trades the single-digit-
// nanosecond field lookup a compile-time derive macro gives you for the
// ergonomics of not hand-writing Content for every record type.
//
// A struct field's dispatch name is its Go name unless overridden with a
// `mustache:"name"` tag; `mustache:"-"` excludes a field entirely. Maps are
// looked up by string key. ReflectValue still only satisfies the typed
// Content protocol — it is not a bridge to rendering bare
// map[string]interface{} trees without going through Content.
type ReflectValue struct {
	v reflect.Value
}

// Reflect wraps x for rendering. x is typically a pointer to or value of a
// struct, but maps and slices are also accepted as section contexts.
func Reflect(x interface{}) ReflectValue {
	return ReflectValue{v: reflect.ValueOf(x)}
}

// NewReflectValue wraps an already-obtained reflect.Value, used internally
// when recursing into nested fields/elements.
func NewReflectValue(v reflect.Value) ReflectValue {
	return ReflectValue{v: v}
}

type fieldInfo struct {
	index int
	name  string
}

type fieldTable struct {
	byHash map[uint64][]fieldInfo
}

var fieldTables sync.Map // map[reflect.Type]*fieldTable

func getFieldTable(t reflect.Type) *fieldTable {
	if cached, ok := fieldTables.Load(t); ok {
		return cached.(*fieldTable)
	}
	ft := buildFieldTable(t)
	actual, _ := fieldTables.LoadOrStore(t, ft)
	return actual.(*fieldTable)
}

func buildFieldTable(t reflect.Type) *fieldTable {
	ft := &fieldTable{byHash: make(map[uint64][]fieldInfo)}
	if t.Kind() != reflect.Struct {
		return ft
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("mustache"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		h := hashName(name)
		ft.byHash[h] = append(ft.byHash[h], fieldInfo{index: i, name: name})
	}
	return ft
}

// indirect follows pointers and interfaces down to the concrete value,
// reporting an invalid Value for a nil pointer/interface along the way.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// lookup resolves a (possibly dotted) name against v, indirecting through
// pointers/interfaces at every hop except the last — the final segment is
// returned raw so callers can distinguish "field is a nil pointer" from
// "field does not exist".
func lookup(v reflect.Value, name string) (reflect.Value, bool) {
	cur := v
	rest := name
	for {
		head := rest
		if idx := strings.IndexByte(rest, '.'); idx >= 0 {
			head = rest[:idx]
			rest = rest[idx+1:]
		} else {
			rest = ""
		}

		ind := indirect(cur)
		if !ind.IsValid() {
			return reflect.Value{}, false
		}

		next, ok := resolveSegment(ind, head)
		if !ok {
			return reflect.Value{}, false
		}
		cur = next

		if rest == "" {
			return cur, true
		}
	}
}

func resolveSegment(v reflect.Value, seg string) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Struct:
		ft := getFieldTable(v.Type())
		h := hashName(seg)
		for _, fi := range ft.byHash[h] {
			if fi.name == seg {
				return v.Field(fi.index), true
			}
		}
		return reflect.Value{}, false
	case reflect.Map:
		mv := v.MapIndex(reflect.ValueOf(seg))
		if !mv.IsValid() {
			return reflect.Value{}, false
		}
		return mv, true
	default:
		return reflect.Value{}, false
	}
}

func isTruthy(v reflect.Value) bool {
	v = indirect(v)
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() > 0
	default:
		return true
	}
}

func stringify(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.String {
		return v.String()
	}
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(v.Interface())
	}
	return ""
}

func capacityHint(v reflect.Value) int {
	v = indirect(v)
	if !v.IsValid() {
		return 0
	}
	switch v.Kind() {
	case reflect.String:
		return v.Len()
	case reflect.Slice, reflect.Array:
		n := v.Len()
		if n == 0 {
			return 0
		}
		return n * capacityHint(v.Index(0))
	case reflect.Struct:
		total := 0
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue
			}
			total += capacityHint(v.Field(i))
		}
		return total
	case reflect.Map:
		return v.Len() * 16
	default:
		return 8
	}
}

// IsTruthy implements Content.
func (r ReflectValue) IsTruthy() bool { return isTruthy(r.v) }

// CapacityHint implements Content.
func (r ReflectValue) CapacityHint(*Template) int { return capacityHint(r.v) }

// RenderEscaped implements Content.
func (r ReflectValue) RenderEscaped(enc Encoder) error {
	return enc.WriteEscaped(stringify(r.v))
}

// RenderUnescaped implements Content.
func (r ReflectValue) RenderUnescaped(enc Encoder) error {
	return enc.WriteUnescaped(stringify(r.v))
}

// RenderFieldEscaped implements Content.
func (r ReflectValue) RenderFieldEscaped(_ uint64, name string, enc Encoder) (bool, error) {
	fv, ok := lookup(r.v, name)
	if !ok {
		return false, nil
	}
	return true, enc.WriteEscaped(stringify(fv))
}

// RenderFieldUnescaped implements Content.
func (r ReflectValue) RenderFieldUnescaped(_ uint64, name string, enc Encoder) (bool, error) {
	fv, ok := lookup(r.v, name)
	if !ok {
		return false, nil
	}
	return true, enc.WriteUnescaped(stringify(fv))
}

// RenderFieldSection implements Content. A sequence field iterates its
// elements (empty == falsy). A boolean true field keeps the parent context
// (Mustache's "keep context" rule); false is falsy. Any other truthy,
// non-iterable field renders the body once with that field's own value as
// the new context. The renderer never calls this with an implicit ("" or
// ".") name — it short-circuits to Section.Render directly in that case —
// so name is always a real field name here.
func (r ReflectValue) RenderFieldSection(_ uint64, name string, section Section, enc Encoder) (bool, error) {
	raw, ok := lookup(r.v, name)
	if !ok {
		return false, nil
	}

	if raw.Kind() == reflect.Ptr || raw.Kind() == reflect.Interface {
		if raw.IsNil() {
			return true, nil
		}
		raw = raw.Elem()
	}

	switch raw.Kind() {
	case reflect.Bool:
		if !raw.Bool() {
			return true, nil
		}
		return true, section.Render(r, enc)
	case reflect.Slice, reflect.Array:
		n := raw.Len()
		if n == 0 {
			return true, nil
		}
		for i := 0; i < n; i++ {
			if err := section.Render(NewReflectValue(raw.Index(i)), enc); err != nil {
				return true, err
			}
		}
		return true, nil
	case reflect.String:
		if raw.Len() == 0 {
			return true, nil
		}
		return true, section.Render(NewReflectValue(raw), enc)
	case reflect.Map:
		if raw.Len() == 0 {
			return true, nil
		}
		return true, section.Render(NewReflectValue(raw), enc)
	case reflect.Invalid:
		return true, nil
	default:
		return true, section.Render(NewReflectValue(raw), enc)
	}
}

// RenderFieldInverse implements Content: renders the body once with the
// current (parent) value when the field is falsy, skips it when truthy.
// The renderer never calls this with an implicit name (see
// RenderFieldSection); name is always a real field name here.
func (r ReflectValue) RenderFieldInverse(_ uint64, name string, section Section, enc Encoder) (bool, error) {
	raw, ok := lookup(r.v, name)
	if !ok {
		return false, nil
	}
	if isTruthy(raw) {
		return true, nil
	}
	return true, section.Render(r, enc)
}

// RenderFieldNotNone implements Content for optional fields: a nil
// pointer/interface is falsy, anything else renders the body once with the
// dereferenced value as the new context.
func (r ReflectValue) RenderFieldNotNone(_ uint64, name string, section Section, enc Encoder) (bool, error) {
	raw, ok := lookup(r.v, name)
	if !ok {
		return false, nil
	}
	if raw.Kind() == reflect.Ptr || raw.Kind() == reflect.Interface {
		if raw.IsNil() {
			return true, nil
		}
		raw = raw.Elem()
	}
	if !raw.IsValid() {
		return true, nil
	}
	return true, section.Render(NewReflectValue(raw), enc)
}

var _ Content = ReflectValue{}
