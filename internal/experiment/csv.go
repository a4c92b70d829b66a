package experiment

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the growth report layout: one row per observed prefix
var csvHeader = []string{"stream_size", "percent", "real", "estimate", "error"}

// WriteCSV renders growth rows as CSV. The estimate column is truncated
// to a whole count; the error column is a percentage.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.StreamSize),
			strconv.Itoa(r.Percent),
			strconv.Itoa(r.Real),
			strconv.Itoa(int(r.Estimate)),
			strconv.FormatFloat(r.ErrorPercent, 'f', 4, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
