package magento

import (
	"encoding/json"
	"maps"
	"reflect"
	"strings"
	"sync"
)

// Record is a free-form JSON object.
type Record map[string]any

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out, _ := cloneValue(map[string]any(r)).(map[string]any)
	return Record(out)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case Record:
		return map[string]any(t.Clone())
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}

// Merge returns a new record holding dst overlaid with src. Nested objects
// are merged key by key; any other value in src, arrays included, replaces
// the value in dst.
func Merge(dst, src Record) Record {
	out := dst.Clone()
	if out == nil {
		out = Record{}
	}
	for k, sv := range src {
		sm, srcIsObj := asObject(sv)
		dm, dstIsObj := asObject(out[k])
		if srcIsObj && dstIsObj {
			out[k] = map[string]any(Merge(dm, sm))
			continue
		}
		out[k] = cloneValue(sv)
	}
	return out
}

func asObject(v any) (Record, bool) {
	switch t := v.(type) {
	case map[string]any:
		return Record(t), true
	case Record:
		return t, true
	}
	return nil, false
}

// ToRecord converts any JSON-encodable value into a Record.
func ToRecord(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// FromRecord decodes r into out through its JSON representation.
func FromRecord(r Record, out any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// knownFields caches the json field names declared by struct types.
var knownFields sync.Map // reflect.Type -> map[string]bool

func jsonFieldNames(t reflect.Type) map[string]bool {
	if cached, ok := knownFields.Load(t); ok {
		return cached.(map[string]bool)
	}
	names := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		names[name] = true
	}
	knownFields.Store(t, names)
	return names
}

// marshalWithExtra encodes known (a struct value, not a pointer) and lays its
// fields over extra, so declared fields always win.
func marshalWithExtra(known any, extra Record) ([]byte, error) {
	fields, err := ToRecord(known)
	if err != nil {
		return nil, err
	}
	out := make(Record, len(extra)+len(fields))
	maps.Copy(out, extra)
	maps.Copy(out, fields)
	return json.Marshal(out)
}

// unmarshalWithExtra decodes data into known (a pointer to a struct) and
// returns every key the struct does not declare.
func unmarshalWithExtra(data []byte, known any) (Record, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}
	var all Record
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	declared := jsonFieldNames(reflect.TypeOf(known).Elem())
	var extra Record
	for k, v := range all {
		if declared[k] {
			continue
		}
		if extra == nil {
			extra = Record{}
		}
		extra[k] = v
	}
	return extra, nil
}
