package extraction

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davidleathers/dialprep/internal/domain/errors"
	"github.com/davidleathers/dialprep/internal/domain/leadlist"
	"github.com/davidleathers/dialprep/internal/infrastructure/tabular"
)

// Ensure service implements the interface
var _ Service = (*service)(nil)

// service implements the extraction pipeline orchestration. Stages run in a
// fixed order with no branching; only validation can fail, every later stage
// is total over its input.
type service struct {
	logger *zap.Logger
	config *Config
}

// NewService creates a new extraction service
func NewService(logger *zap.Logger, config *Config) (Service, error) {
	if logger == nil {
		return nil, errors.NewValidationError("INVALID_LOGGER", "logger cannot be nil")
	}
	if config == nil {
		return nil, errors.NewValidationError("INVALID_CONFIG", "config cannot be nil")
	}

	return &service{logger: logger, config: config}, nil
}

func (s *service) Extract(ctx context.Context, table *tabular.Table) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, errors.NewMalformedInputError(nil)
	}

	if err := s.validate(table); err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := s.logger.With(zap.String("run_id", runID.String()))

	stats := leadlist.Stats{RunID: runID, InputRows: table.RowCount()}
	logger.Info("starting extraction", zap.Int("input_rows", stats.InputRows))

	records := s.project(table)

	surviving := leadlist.FilterDNC(records)
	stats.AfterDNC = len(surviving)
	logger.Info("dnc filter complete",
		zap.Int("removed", stats.DNCRemoved()),
		zap.Int("remaining", stats.AfterDNC))

	stacked := leadlist.Stack(surviving)
	stats.Stacked = len(stacked)
	logger.Info("phone slots stacked", zap.Int("entries", stats.Stacked))

	mobile := leadlist.FilterMobile(stacked)
	stats.MobileOnly = len(mobile)
	logger.Info("mobile filter complete",
		zap.Int("removed", stats.NonMobileRemoved()),
		zap.Int("remaining", stats.MobileOnly))

	numbers := leadlist.Normalize(mobile)
	stats.Cleaned = len(numbers)

	if s.config.Deduplicate {
		numbers = leadlist.Deduplicate(numbers)
		stats.Deduplicated = stats.Cleaned - len(numbers)
	}
	stats.Final = len(numbers)
	logger.Info("normalization complete",
		zap.Int("cleaned", stats.Cleaned),
		zap.Int("duplicates_removed", stats.Deduplicated),
		zap.Int("final", stats.Final))

	result := &Result{Numbers: numbers, Stats: stats}
	if stats.Final == 0 {
		result.Warning = WarningNoMobileNumbers
		logger.Warn("no mobile numbers found in input")
	}

	return result, nil
}

// validate checks every required column is present and that the table has at
// least one data row. All fatal conditions are reported before any stage runs.
func (s *service) validate(table *tabular.Table) error {
	var missing []string
	for _, name := range s.config.Columns.All() {
		if !table.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingColumnError(missing)
	}

	if table.RowCount() == 0 {
		return errors.NewEmptyInputError()
	}

	return nil
}

// project maps table rows onto domain records, dropping every column the
// pipeline does not consume.
func (s *service) project(table *tabular.Table) []leadlist.Record {
	cols := s.config.Columns
	records := make([]leadlist.Record, 0, table.RowCount())
	for row := 0; row < table.RowCount(); row++ {
		r := leadlist.Record{DNC: table.Cell(row, cols.DNC)}
		for i, p := range cols.Phones {
			r.Slots[i] = leadlist.PhoneSlot{
				Number: table.Cell(row, p.Number),
				Type:   table.Cell(row, p.Type),
			}
		}
		records = append(records, r)
	}
	return records
}
