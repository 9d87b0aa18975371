package out

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"botanist/internal/modules/garden/domain"
	gardenout "botanist/internal/modules/garden/port/out"
)

type CSVExporter struct{}

func NewCSVExporter() gardenout.SessionExporter {
	return CSVExporter{}
}

func (CSVExporter) Export(w io.Writer, sessions []domain.Session) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "start_time", "end_time", "duration_minutes", "description"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range sessions {
		row := []string{
			s.Date,
			s.StartTime.Format(domain.TimeLayout),
			s.EndTime.Format(domain.TimeLayout),
			strconv.Itoa(int(math.Round(s.Duration / 60))),
			s.Description,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
