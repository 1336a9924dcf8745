package extraction

import (
	"context"

	"github.com/davidleathers/dialprep/internal/domain/leadlist"
	"github.com/davidleathers/dialprep/internal/domain/values"
	"github.com/davidleathers/dialprep/internal/infrastructure/tabular"
)

// Service runs the phone extraction pipeline over one input table.
// Each invocation is independent: the service holds no mutable state across
// calls and the returned Result is freshly owned by the caller.
type Service interface {
	Extract(ctx context.Context, table *tabular.Table) (*Result, error)
}

// PhoneColumns names one phone slot's number and type columns.
type PhoneColumns struct {
	Number string
	Type   string
}

// Columns names the required input columns. Matching against the input
// header is case-insensitive.
type Columns struct {
	DNC    string
	Phones [leadlist.PhoneSlots]PhoneColumns
}

// DefaultColumns returns the column names used by the phone enrichment
// vendor's export format.
func DefaultColumns() Columns {
	return Columns{
		DNC: "DNC/Litigator Scrub",
		Phones: [leadlist.PhoneSlots]PhoneColumns{
			{Number: "Phone1", Type: "Phone1 Type"},
			{Number: "Phone2", Type: "Phone2 Type"},
			{Number: "Phone3", Type: "Phone3 Type"},
		},
	}
}

// All returns every required column name in a stable order.
func (c Columns) All() []string {
	names := []string{c.DNC}
	for _, p := range c.Phones {
		names = append(names, p.Number, p.Type)
	}
	return names
}

// Config controls pipeline policy for a service instance.
type Config struct {
	Columns Columns
	// Deduplicate drops repeated numbers from the final list, first
	// occurrence winning. Defaults on: the dialing system treats the list
	// as a set of targets.
	Deduplicate bool
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() *Config {
	return &Config{
		Columns:     DefaultColumns(),
		Deduplicate: true,
	}
}

// Warning is a non-fatal pipeline outcome the caller decides how to surface.
type Warning string

// WarningNoMobileNumbers means the pipeline completed but produced an empty
// list. Not an error: the caller chooses the severity.
const WarningNoMobileNumbers Warning = "no_mobile_numbers_found"

// Result is the output of one pipeline run.
type Result struct {
	Numbers []values.CleanNumber
	Stats   leadlist.Stats
	Warning Warning
}
