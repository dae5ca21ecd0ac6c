package mlc

import (
	"fmt"
	"strconv"

	"crosswalk/internal/registry"
)

// parseWork maps a raw MLC work entry to the shared composition model. Share
// percentages, IPI numbers, and PRO affiliations are only populated when the
// payload carries them; absent stays absent.
func parseWork(raw map[string]any) registry.Composition {
	comp := registry.Composition{
		ID:       firstString(raw, "property_id", "propertyId", "id", "work_id", "workId"),
		Title:    firstString(raw, "title", "workTitle"),
		Provider: ProviderName,
		ISWC:     firstString(raw, "iswc"),
		Raw:      raw,
	}

	for _, entry := range entryList(raw, "writers", "authors") {
		contrib := registry.Contributor{
			Name:         firstString(entry, "writerName", "name"),
			Type:         registry.ContributorWriter,
			Role:         firstString(entry, "writerRole", "role"),
			SharePercent: optionalPercent(entry, "writerShare", "sharePercentage", "share"),
			IPI:          firstString(entry, "writerIPI", "ipiNumber", "ipi"),
			PRO:          firstString(entry, "societyAffiliation", "pro"),
		}
		if contrib.Name == "" {
			continue
		}
		comp.Contributors = append(comp.Contributors, contrib)
	}

	for _, entry := range entryList(raw, "originalPublishers", "publishers") {
		contrib := registry.Contributor{
			Name:         firstString(entry, "publisherName", "name"),
			Type:         registry.ContributorPublisher,
			Role:         firstString(entry, "publisherRole", "role"),
			SharePercent: optionalPercent(entry, "publisherShare", "sharePercentage", "share"),
			IPI:          firstString(entry, "publisherIPI", "ipiNumber", "ipi"),
			PRO:          firstString(entry, "societyAffiliation", "pro"),
		}
		if contrib.Name == "" {
			continue
		}
		comp.Contributors = append(comp.Contributors, contrib)
	}

	return comp
}

// entryList collects the object entries under the first present key. String
// entries are promoted to name-only objects since older payloads returned
// bare name lists.
func entryList(raw map[string]any, keys ...string) []map[string]any {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok {
			continue
		}
		list, ok := value.([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			switch v := item.(type) {
			case map[string]any:
				out = append(out, v)
			case string:
				out = append(out, map[string]any{"name": v})
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func optionalPercent(raw map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			return &v
		case string:
			if v == "" {
				continue
			}
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return &parsed
			}
		default:
			if parsed, err := strconv.ParseFloat(fmt.Sprint(v), 64); err == nil {
				return &parsed
			}
		}
	}
	return nil
}
