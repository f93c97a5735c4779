package extract

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/selmap/selmap"
)

var valueType = reflect.TypeOf(selmap.Value{})

// targetSink dispatches final values onto a caller-supplied target via
// one method call per name.
type targetSink struct {
	methods map[string]reflect.Value
}

// newTargetSink resolves the receiving method for every name up front, so
// extraction never starts against a target that cannot receive all
// results.
func newTargetSink(target any, names []string) (*targetSink, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil, selmap.Errorf(selmap.EINVALID, "extraction target required")
	}

	methods := make(map[string]reflect.Value, len(names))
	for _, name := range names {
		m := v.MethodByName(MethodName(name))
		if !m.IsValid() {
			return nil, selmap.Errorf(selmap.ENOTIMPLEMENTED, "target has no method %q for name %q", MethodName(name), name)
		}
		t := m.Type()
		if t.NumIn() != 1 || !valueType.AssignableTo(t.In(0)) {
			return nil, selmap.Errorf(selmap.ENOTIMPLEMENTED, "target method %q must take a single selmap.Value", MethodName(name))
		}
		methods[name] = m
	}
	return &targetSink{methods: methods}, nil
}

// push invokes one method per name with its final value. Resolution and
// signature checks happened in newTargetSink, so the calls cannot fail.
func (s *targetSink) push(results selmap.Results) {
	for name, m := range s.methods {
		m.Call([]reflect.Value{reflect.ValueOf(results[name])})
	}
}

// MethodName maps a selector name to the exported method it dispatches
// to: the first rune is upper-cased and snake_case segments are
// camel-cased, so "author_name" becomes "AuthorName".
func MethodName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
