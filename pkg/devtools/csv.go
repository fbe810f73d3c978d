package devtools

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "type", "timestamp", "duration_ms", "model", "provider",
	"stream", "total_tokens", "total_cost", "error",
}

// WriteCSV writes one row per entry under a header row. Timestamps are
// RFC 3339 in UTC.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		var errMsg string
		if e.Error != nil {
			errMsg = e.Error.Message
		}
		row := []string{
			e.ID,
			string(e.Type),
			time.UnixMilli(e.Timestamp).UTC().Format(time.RFC3339Nano),
			strconv.FormatInt(e.DurationMs, 10),
			e.Metadata.Model,
			e.Metadata.Provider,
			strconv.FormatBool(e.Metadata.Stream),
			strconv.FormatInt(e.Tokens(), 10),
			strconv.FormatFloat(e.Cost(), 'f', -1, 64),
			errMsg,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
