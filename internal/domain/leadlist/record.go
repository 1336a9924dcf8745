package leadlist

import "github.com/google/uuid"

// PhoneSlots is the number of phone slots carried by an enrichment export row.
const PhoneSlots = 3

// PhoneSlot holds one raw (number, type) pair from an input row.
type PhoneSlot struct {
	Number string
	Type   string
}

// Record is one validated input row projected down to the fields the
// pipeline consumes: the DNC/Litigator scrub text and the three phone slots.
// All other source columns are dropped at projection.
type Record struct {
	DNC   string
	Slots [PhoneSlots]PhoneSlot
}

// StackedEntry is one (number, type) pair produced by flattening a record's
// phone slots into the long form. Number and Type are still raw vendor text.
type StackedEntry struct {
	Number string
	Type   string
}

// Stats counts rows at each stage boundary of a single pipeline run.
// Purely observational: no field feeds back into processing.
type Stats struct {
	RunID        uuid.UUID `json:"run_id"`
	InputRows    int       `json:"input_rows"`
	AfterDNC     int       `json:"after_dnc"`
	Stacked      int       `json:"stacked"`
	MobileOnly   int       `json:"mobile_only"`
	Cleaned      int       `json:"cleaned"`
	Deduplicated int       `json:"deduplicated"`
	Final        int       `json:"final"`
}

// DNCRemoved returns the number of rows dropped by the DNC filter.
func (s Stats) DNCRemoved() int {
	return s.InputRows - s.AfterDNC
}

// NonMobileRemoved returns the number of stacked entries dropped by the
// mobile type filter.
func (s Stats) NonMobileRemoved() int {
	return s.Stacked - s.MobileOnly
}

// ConversionRate returns final output count as a percentage of input rows.
func (s Stats) ConversionRate() float64 {
	if s.InputRows == 0 {
		return 0
	}
	return float64(s.Final) / float64(s.InputRows) * 100
}
