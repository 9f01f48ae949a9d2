package loader

// Merge returns a new map with the layers applied in order. Later layers
// win; tables present in several layers merge key by key. Nil layers are
// skipped and no input is modified.
func Merge(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		mergeInto(out, layer)
	}
	return out
}

// mergeInto copies src into dst. Every table already in dst is owned by
// dst, so it can be updated in place.
func mergeInto(dst, src map[string]any) {
	for key, val := range src {
		table, isTable := val.(map[string]any)
		existing, hasTable := dst[key].(map[string]any)
		if isTable && hasTable && existing != nil {
			mergeInto(existing, table)
			continue
		}
		dst[key] = cloneValue(val)
	}
}

// Clone returns a deep copy of m.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for key, val := range m {
		out[key] = cloneValue(val)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return Clone(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
