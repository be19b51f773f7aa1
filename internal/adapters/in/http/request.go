package http

import (
	"freightgate/internal/core/domain/model/parcel"
	"freightgate/internal/core/ports"
)

// actionRequest is one decoded gateway call: the resolved action name, the
// JSON body as a loose map, and the caller identity established up front.
type actionRequest struct {
	action  string
	data    map[string]any
	staffID int64
	ip      string
}

func (r *actionRequest) str(key string) string {
	s, _ := r.data[key].(string)
	return s
}

// i64 reads a numeric field. JSON numbers decode as float64; string digits
// are not accepted.
func (r *actionRequest) i64(key string) int64 {
	switch v := r.data[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}

func (r *actionRequest) payload() ports.Payload {
	m, ok := r.data["payload"].(map[string]any)
	if !ok {
		return ports.Payload{}
	}
	return ports.Payload(m)
}

func (r *actionRequest) strSlice(key string) []string {
	raw, ok := r.data[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// packages sanitizes the wire package list. Malformed entries are clamped to
// the minimum viable package rather than rejected.
func (r *actionRequest) packages() []parcel.Package {
	raw, ok := r.data["packages"].([]any)
	if !ok {
		return nil
	}

	out := make([]parcel.Package, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, parcel.NewPackage(
			int(num(m, "l")),
			int(num(m, "w")),
			int(num(m, "h")),
			num(m, "kg"),
			int(num(m, "items")),
		))
	}
	return out
}

func (r *actionRequest) options() parcel.Options {
	m, _ := r.data["options"].(map[string]any)
	return parcel.Options{
		Signature:        flag(m, "sig"),
		AuthorityToLeave: flag(m, "atl"),
		AgeRestricted:    flag(m, "age"),
	}
}

func (r *actionRequest) sendContext() parcel.Context {
	m, _ := r.data["context"].(map[string]any)
	from, _ := m["from"].(string)
	to, _ := m["to"].(string)
	return parcel.NewContext(from, to, num(m, "declared"), flag(m, "rural"), flag(m, "saturday"))
}

func num(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func flag(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}
