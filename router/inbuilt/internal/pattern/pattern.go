package pattern

import (
	"fmt"
	"iter"
	"strings"

	"github.com/indigo-web/miniweb/http"
)

// Segment is a single part of a template between slashes. Wildcard segments hold the
// name of the parameter they bind the matched value to.
type Segment struct {
	Payload    string
	IsWildcard bool
}

// Template is a parsed route pattern, e.g. /items/:id. Leading, trailing and repeated
// slashes carry no meaning, so /items/:id, items/:id/ and //items//:id are the same template.
type Template struct {
	segments  []Segment
	wildcards int
}

func Parse(tmpl string) (Template, error) {
	var template Template

	for segment := range Segments(tmpl) {
		if segment[0] != ':' {
			template.segments = append(template.segments, Segment{Payload: segment})
			continue
		}

		name := segment[1:]
		if template.has(name) {
			return template, fmt.Errorf(`"%s": duplicate parameter name "%s"`, tmpl, name)
		}

		template.segments = append(template.segments, Segment{
			Payload:    name,
			IsWildcard: true,
		})
		template.wildcards++
	}

	return template, nil
}

func MustParse(tmpl string) Template {
	template, err := Parse(tmpl)
	if err != nil {
		panic(err.Error())
	}

	return template
}

// Match matches the path against the template. On success, the returned params hold
// exactly one entry per wildcard segment. Static segments are compared case-sensitively.
// The params map is allocated only once a wildcard segment is reached.
func (t Template) Match(path string) (http.Params, bool) {
	var params http.Params
	i := 0

	for segment := range Segments(path) {
		if i >= len(t.segments) {
			return nil, false
		}

		switch tmpl := t.segments[i]; {
		case tmpl.IsWildcard:
			if params == nil {
				params = make(http.Params, t.wildcards)
			}

			params[tmpl.Payload] = segment
		case tmpl.Payload != segment:
			return nil, false
		}

		i++
	}

	if i != len(t.segments) {
		return nil, false
	}

	if t.IsStatic() {
		return http.Params{}, true
	}

	return params, true
}

// IsStatic tells whether the template contains any of wildcards
func (t Template) IsStatic() bool {
	return t.wildcards == 0
}

func (t Template) has(name string) bool {
	for _, segment := range t.segments {
		if segment.IsWildcard && segment.Payload == name {
			return true
		}
	}

	return false
}

// Segments iterates over non-empty slash-separated parts of the path.
func Segments(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(path) > 0 {
			var segment string
			segment, path, _ = strings.Cut(path, "/")
			if len(segment) > 0 && !yield(segment) {
				return
			}
		}
	}
}
