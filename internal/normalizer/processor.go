package normalizer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"csvnorm/internal/config"
	"csvnorm/internal/formatter"
	"csvnorm/internal/logger"
	"csvnorm/internal/models"
	"csvnorm/internal/validator"
)

// ErrMissingHeader is returned when the input stream ends before a header row.
var ErrMissingHeader = errors.New("input stream has no header row")

// Stats summarizes a processing run.
type Stats struct {
	Rows    int
	Written int
	Skipped int
}

// Processor reads records from an input stream, normalizes them one at a
// time, and writes the survivors to an output stream. Rows that fail
// validation are skipped and reported on the diagnostic writer; structural
// stream errors abort the run.
type Processor struct {
	log  *logger.Logger
	diag io.Writer
	cfg  *config.Config
}

// NewProcessor creates a new processor instance. The diagnostic writer
// receives the per-row and fatal failure blocks; it is separate from the
// output stream and from structured logging.
func NewProcessor(log *logger.Logger, diag io.Writer, cfg *config.Config) *Processor {
	return &Processor{
		log:  log,
		diag: diag,
		cfg:  cfg,
	}
}

// Run processes the whole input stream. Invalid UTF-8 byte sequences in the
// input are replaced with U+FFFD rather than aborting. Row-level validation
// failures are skipped and logged; any other error is stream-level and is
// returned after flushing the rows already written.
func (p *Processor) Run(input io.Reader, output io.Writer) (Stats, error) {
	var stats Stats

	reader := csv.NewReader(transform.NewReader(input, unicode.UTF8.NewDecoder()))

	writer := csv.NewWriter(output)
	defer writer.Flush()

	header, err := reader.Read()
	if err == io.EOF {
		return stats, ErrMissingHeader
	}

	if err != nil {
		return stats, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := validator.MapHeader(header)
	if err != nil {
		return stats, fmt.Errorf("invalid header: %w", err)
	}

	if err := writer.Write(models.OutputFields); err != nil {
		return stats, fmt.Errorf("failed to write header: %w", err)
	}

	var preview [][]string

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return stats, fmt.Errorf("failed to read row: %w", err)
		}

		stats.Rows++

		// 1-based line number counting the header as line 1.
		line := stats.Rows + 1

		record := models.NewRecord(row, columns)

		normalized, err := p.normalizeRecord(record)
		if err != nil {
			stats.Skipped++
			fmt.Fprintf(p.diag, "Unparseable row at line number: %d\nError: %v\n", line, err)
			p.log.Debug("row skipped", "line", line, "error", err)

			continue
		}

		if err := writer.Write(normalized.Strings()); err != nil {
			return stats, fmt.Errorf("failed to write row: %w", err)
		}

		stats.Written++

		if p.cfg.Features.NormalizationPreview && len(preview) < p.cfg.Logging.SampleRows {
			preview = append(preview, normalized.Strings())
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}

	if len(preview) > 0 {
		p.log.Debug("normalization preview\n" + formatter.RenderTable(models.OutputFields, preview))
	}

	return stats, nil
}

// normalizeRecord applies the field normalizers to one record. The first
// failure aborts the row; the caller turns it into a diagnostic.
func (p *Processor) normalizeRecord(record *models.Record) (*models.NormalizedRecord, error) {
	foo, err := ParseDuration(record.FooDuration)
	if err != nil {
		return nil, err
	}

	bar, err := ParseDuration(record.BarDuration)
	if err != nil {
		return nil, err
	}

	total := SumDurations(foo, bar)

	timestamp, err := NormalizeTimestamp(record.Timestamp)
	if err != nil {
		return nil, err
	}

	zip, err := NormalizeZip(record.ZIP)
	if err != nil {
		return nil, err
	}

	return &models.NormalizedRecord{
		Timestamp:     timestamp,
		Address:       record.Address,
		ZIP:           zip,
		FullName:      NormalizeName(record.FullName),
		FooDuration:   FormatDuration(foo.RoundBank(outputScale)),
		BarDuration:   FormatDuration(bar.RoundBank(outputScale)),
		TotalDuration: FormatDuration(total),
		Notes:         record.Notes,
	}, nil
}
