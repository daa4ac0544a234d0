package ingest

import "strings"

type Row map[string]string

type Plan struct {
	Insert           []Row
	DroppedNullKey   int
	DuplicateInBatch int
	SkippedExisting  int
}

func NormalizeKey(value string) string {
	return strings.TrimSpace(value)
}

func KeySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		normalized := NormalizeKey(key)
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}

// Reconcile walks rows in order and decides each one exactly once: rows
// without a usable key are dropped, repeated keys keep their first
// occurrence, keys already in the store are skipped. Keys compare as exact
// normalized strings, so "7" and "7.0" are distinct. The first occurrence of
// a key claims it even when that occurrence itself is skipped as existing.
func Reconcile(rows []Row, keyColumn string, existing map[string]struct{}) Plan {
	var plan Plan
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		key := NormalizeKey(row[keyColumn])
		if key == "" {
			plan.DroppedNullKey++
			continue
		}
		if _, dup := seen[key]; dup {
			plan.DuplicateInBatch++
			continue
		}
		seen[key] = struct{}{}

		if _, ok := existing[key]; ok {
			plan.SkippedExisting++
			continue
		}
		plan.Insert = append(plan.Insert, row)
	}
	return plan
}
