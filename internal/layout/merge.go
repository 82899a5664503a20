package layout

// MergeProps builds the effective props for rendering from three layers:
//
//	defaults - type-specific runtime defaults for fields never persisted
//	stored   - the instance's persisted props
//	runtime  - uniform runtime-injected fields (e.g. shop id)
//
// Later layers win on key collision: defaults < stored < runtime. The merge
// is per top-level key; a stored object value replaces a default object
// value wholesale rather than merging into it.
//
// The result is a fresh map holding deep copies, so rendering can never
// mutate persisted props through the merged view.
func MergeProps(defaults, stored, runtime Props) Props {
	out := make(Props, len(defaults)+len(stored)+len(runtime))
	for _, layer := range []Props{defaults, stored, runtime} {
		for k, v := range layer {
			out[k] = cloneValue(v)
		}
	}
	return out
}
