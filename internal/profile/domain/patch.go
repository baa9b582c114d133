package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Patch is a partial profile document. Only the top-level fields it carries
// are written by a merge; nested maps (links) merge key by key.
type Patch map[string]any

// Fields lists the top-level document keys a patch may carry.
var Fields = []string{
	"name", "email", "phone", "location",
	"experience", "education", "projects",
	"skills", "achievements", "links",
}

func knownField(key string) bool {
	for _, f := range Fields {
		if f == key {
			return true
		}
	}
	return false
}

// ParsePatch decodes a JSON object into a Patch. Values are type checked
// against Profile so a merge never stores a malformed field.
func ParsePatch(body []byte) (Patch, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidProfile)
	}
	for k := range keys {
		if !knownField(k) {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidProfile, k)
		}
	}

	var p Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	doc, err := p.Document()
	if err != nil {
		return nil, err
	}

	patch := make(Patch, len(keys))
	for k := range keys {
		v := doc[k]
		// A links object only writes the keys it names.
		if k == "links" {
			if m, ok := v.(map[string]any); ok {
				var sent map[string]json.RawMessage
				if err := json.Unmarshal(keys[k], &sent); err == nil {
					v = pick(m, sent)
				}
			}
		}
		patch[k] = v
	}
	return patch, nil
}

// Keys returns the patch keys in sorted order.
func (p Patch) Keys() []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func pick(m map[string]any, sent map[string]json.RawMessage) map[string]any {
	out := make(map[string]any, len(sent))
	for k := range sent {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// MergeDocument applies patch onto doc the way a Firestore MergeAll write
// does: maps merge recursively, every other value replaces the old one.
// doc is modified in place and returned; a nil doc starts empty.
func MergeDocument(doc map[string]any, patch map[string]any) map[string]any {
	if doc == nil {
		doc = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		src, srcIsMap := v.(map[string]any)
		dst, dstIsMap := doc[k].(map[string]any)
		if srcIsMap && dstIsMap {
			doc[k] = MergeDocument(dst, src)
			continue
		}
		if srcIsMap {
			doc[k] = MergeDocument(nil, src)
			continue
		}
		doc[k] = v
	}
	return doc
}
