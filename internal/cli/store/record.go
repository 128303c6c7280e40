package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is a typed, identified document in the remote store.
// Field values are plain Go values: string, bool, float64, int64,
// time.Time, Reference, []Reference and Asset. The store does not
// enforce integrity of Reference fields.
type Record struct {
	ID     string
	Type   string
	Fields map[string]any
}

// Reference is a typed pointer field from one record to another.
type Reference struct {
	RecordID string
}

// Asset is a large binary payload attached to a record. After a fetch
// the store client resolves it to a local file and fills Path; callers
// must copy the file out if they need path stability.
type Asset struct {
	ID   string
	Name string
	Path string
}

// unset is the explicit "clear this field" marker. Emitting Unset for a
// key removes the stored value on save; omitting the key preserves it.
type unset struct{}

// Unset marks a field for deletion in a Save call.
var Unset = unset{}

// Field accessors. Each returns the stored value when present and of
// the right type, else the supplied default. A record fetched from the
// wire never fails to map: bad data degrades to defaults.

func (r Record) String(key, def string) string {
	if v, ok := r.Fields[key].(string); ok {
		return v
	}
	return def
}

func (r Record) Bool(key string, def bool) bool {
	if v, ok := r.Fields[key].(bool); ok {
		return v
	}
	return def
}

func (r Record) Float(key string, def float64) float64 {
	switch v := r.Fields[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return def
}

func (r Record) Int(key string, def int64) int64 {
	switch v := r.Fields[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return def
}

func (r Record) Time(key string) (time.Time, bool) {
	v, ok := r.Fields[key].(time.Time)
	return v, ok
}

func (r Record) Reference(key string) (Reference, bool) {
	v, ok := r.Fields[key].(Reference)
	return v, ok
}

func (r Record) ReferenceList(key string) []Reference {
	if v, ok := r.Fields[key].([]Reference); ok {
		return v
	}
	return nil
}

func (r Record) Asset(key string) (Asset, bool) {
	v, ok := r.Fields[key].(Asset)
	return v, ok
}

// Wire codec. The HTTP client and the record store server share this
// encoding; tests' fake stores use it too so they see the same shapes.
//
//	time.Time   -> {"__time": "<RFC3339Nano>"}
//	Reference   -> {"__ref": "<record id>"}
//	[]Reference -> {"__reflist": ["<id>", ...]}
//	Asset       -> {"__asset": "<asset id>", "__name": "<file name>"}
//	Unset       -> null
//
// Scalars pass through unchanged.

// EncodeFields converts in-memory field values to their wire form.
func EncodeFields(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case unset:
			out[k] = nil
		case time.Time:
			out[k] = map[string]any{"__time": val.UTC().Format(time.RFC3339Nano)}
		case Reference:
			out[k] = map[string]any{"__ref": val.RecordID}
		case []Reference:
			ids := make([]string, 0, len(val))
			for _, ref := range val {
				ids = append(ids, ref.RecordID)
			}
			out[k] = map[string]any{"__reflist": ids}
		case Asset:
			if val.ID == "" {
				return nil, fmt.Errorf("asset field %q has no uploaded asset id", k)
			}
			out[k] = map[string]any{"__asset": val.ID, "__name": val.Name}
		case string, bool, float64, int64, int:
			out[k] = val
		case nil:
			out[k] = nil
		default:
			return nil, fmt.Errorf("unsupported field value %T for %q", v, k)
		}
	}
	return out, nil
}

// DecodeFields converts wire field values back to in-memory form.
// Unknown shapes are kept as-is so accessors fall back to defaults.
func DecodeFields(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			if f, isNum := v.(json.Number); isNum {
				if n, err := f.Float64(); err == nil {
					out[k] = n
					continue
				}
			}
			out[k] = v
			continue
		}
		switch {
		case m["__time"] != nil:
			if s, ok := m["__time"].(string); ok {
				if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
					out[k] = t
					continue
				}
			}
			out[k] = v
		case m["__ref"] != nil:
			if s, ok := m["__ref"].(string); ok {
				out[k] = Reference{RecordID: s}
				continue
			}
			out[k] = v
		case m["__reflist"] != nil:
			if list, ok := m["__reflist"].([]any); ok {
				refs := make([]Reference, 0, len(list))
				for _, it := range list {
					if s, ok := it.(string); ok {
						refs = append(refs, Reference{RecordID: s})
					}
				}
				out[k] = refs
				continue
			}
			out[k] = v
		case m["__asset"] != nil:
			id, _ := m["__asset"].(string)
			name, _ := m["__name"].(string)
			out[k] = Asset{ID: id, Name: name}
		default:
			out[k] = v
		}
	}
	return out
}
