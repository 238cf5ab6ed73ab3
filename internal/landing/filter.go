package landing

import (
	"sort"
	"strings"
)

// FilterMap translates the short filter labels the landing page sends
// ("ẢNH EVENT") into the service names stored in the catalog
// ("Chụp Ảnh Sự Kiện"). Lookup is case-insensitive on the label.
type FilterMap map[string]string

// DefaultFilterMap mirrors the filters the frontend ships with.
func DefaultFilterMap() FilterMap {
	return FilterMap{
		"ẢNH EVENT": "Chụp Ảnh Sự Kiện",
	}
}

// NewFilterMap returns the default map with overrides applied on top.
// Overrides come from configuration and may add or replace entries.
func NewFilterMap(overrides map[string]string) FilterMap {
	m := DefaultFilterMap()
	for k, v := range overrides {
		m[k] = v
	}
	return m
}

// Resolve maps a filter label to its service name.
func (m FilterMap) Resolve(filter string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(filter))
	for label, service := range m {
		if strings.ToLower(label) == needle {
			return service, true
		}
	}
	return "", false
}

// Available lists the known filter labels in stable order, for error payloads.
func (m FilterMap) Available() []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
