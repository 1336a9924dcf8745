package leadlist

import (
	"strings"

	"github.com/davidleathers/dialprep/internal/domain/values"
)

// FilterDNC returns the records whose scrub field does not contain "dnc",
// case-insensitively. Substring match is deliberate: "Active DNC flag" is
// flagged. An empty or missing scrub field passes through.
func FilterDNC(records []Record) []Record {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.DNC), "dnc") {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// Stack flattens each record's phone slots into the long (number, type) form.
// Slots whose number is empty after whitespace trimming emit nothing.
// Ordering is stable: row order, then slot order within a row, so output is
// bounded by PhoneSlots entries per record.
func Stack(records []Record) []StackedEntry {
	entries := make([]StackedEntry, 0, len(records))
	for _, r := range records {
		for _, slot := range r.Slots {
			number := strings.TrimSpace(slot.Number)
			if number == "" {
				continue
			}
			entries = append(entries, StackedEntry{Number: number, Type: slot.Type})
		}
	}
	return entries
}

// FilterMobile keeps only entries whose type, trimmed and case-folded,
// equals exactly "mobile". This intentionally uses a different matching
// strategy than FilterDNC: exact equality, never substring.
func FilterMobile(entries []StackedEntry) []StackedEntry {
	kept := make([]StackedEntry, 0, len(entries))
	for _, e := range entries {
		if !values.NewPhoneType(e.Type).IsMobile() {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// Normalize strips every entry's number down to bare digits. Entries with no
// digits are dropped rather than failing the batch.
func Normalize(entries []StackedEntry) []values.CleanNumber {
	numbers := make([]values.CleanNumber, 0, len(entries))
	for _, e := range entries {
		n, err := values.NewCleanNumber(e.Number)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// Deduplicate removes repeated numbers, keeping the first occurrence and
// preserving the relative order of survivors.
func Deduplicate(numbers []values.CleanNumber) []values.CleanNumber {
	seen := make(map[string]struct{}, len(numbers))
	unique := make([]values.CleanNumber, 0, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n.String()]; ok {
			continue
		}
		seen[n.String()] = struct{}{}
		unique = append(unique, n)
	}
	return unique
}
