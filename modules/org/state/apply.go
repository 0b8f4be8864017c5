package state

// Apply is the pure transition function: it never performs I/O and never
// fails. Requests addressing an unknown id leave the snapshot unchanged.
// The reducers are chained; each handles its own group's transitions and
// passes everything else through, so composition order does not matter.
func Apply(s Snapshot, tr Transition) Snapshot {
	for _, reduce := range groupReducers {
		s = reduce(s, tr)
	}
	return s
}

var groupReducers = []func(Snapshot, Transition) Snapshot{
	reduceDepartment,
	reduceFunction,
	reduceStaff,
	reduceResponsibility,
	reduceTeam,
	reduceWorkflow,
	reduceAdmin,
}

// withAppended copies the collection and appends; the input slice is never
// grown in place, so older snapshots stay valid.
func withAppended[T any](items []T, add ...T) []T {
	out := make([]T, 0, len(items)+len(add))
	out = append(out, items...)
	return append(out, add...)
}

// replaceByID swaps the record whose id matches. If nothing matches the
// original slice is returned untouched.
func replaceByID[T any](items []T, id string, idOf func(T) string, repl T) []T {
	for i := range items {
		if idOf(items[i]) == id {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = repl
			return out
		}
	}
	return items
}

// updateByID applies f to the record whose id matches. If nothing matches
// the original slice is returned untouched.
func updateByID[T any](items []T, id string, idOf func(T) string, f func(T) T) []T {
	for i := range items {
		if idOf(items[i]) == id {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = f(out[i])
			return out
		}
	}
	return items
}

// removeWhere drops all matching records. If nothing matches the original
// slice is returned untouched.
func removeWhere[T any](items []T, match func(T) bool) []T {
	removed := false
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			removed = true
			continue
		}
		out = append(out, item)
	}
	if !removed {
		return items
	}
	return out
}
