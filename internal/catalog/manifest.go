package catalog

// OrderManifest is an ordered list of event IDs controlling how a service
// category presents its events on the landing page. The manifest may
// reference events that no longer exist; consumers skip unknown IDs.
type OrderManifest []string

// Normalize removes empty entries and duplicates while preserving the
// first occurrence order.
func (m OrderManifest) Normalize() OrderManifest {
	seen := make(map[string]bool, len(m))
	out := make(OrderManifest, 0, len(m))
	for _, id := range m {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Without returns a copy of the manifest with the given IDs removed.
func (m OrderManifest) Without(ids ...string) OrderManifest {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make(OrderManifest, 0, len(m))
	for _, id := range m {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}

// Contains reports whether the manifest references id.
func (m OrderManifest) Contains(id string) bool {
	for _, v := range m {
		if v == id {
			return true
		}
	}
	return false
}

// SortByManifest reorders items so that those referenced by the manifest come
// first in manifest order, followed by the rest in their original order.
// idOf extracts the comparable ID from an item.
func SortByManifest[T any](items []T, manifest OrderManifest, idOf func(T) string) []T {
	if len(manifest) == 0 {
		return items
	}

	byID := make(map[string]int, len(items))
	for i, it := range items {
		byID[idOf(it)] = i
	}

	used := make(map[int]bool, len(items))
	out := make([]T, 0, len(items))
	for _, id := range manifest {
		if i, ok := byID[id]; ok && !used[i] {
			out = append(out, items[i])
			used[i] = true
		}
	}
	for i, it := range items {
		if !used[i] {
			out = append(out, it)
		}
	}
	return out
}
