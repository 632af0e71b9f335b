package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pyhub-apps/plotrecon-golang/pkg/plotset"
	"github.com/pyhub-apps/plotrecon-golang/pkg/units"
)

// WriteCSV exports one population as CSV: a header row followed by one row per
// member, in population order.
func WriteCSV(w io.Writer, set plotset.PlotSet, scale units.Scale) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"index", "plot_number", "area_sq_m", "perimeter_m", "kind", "layer"}); err != nil {
		return err
	}

	for i, m := range set.Members {
		record := []string{
			fmt.Sprintf("%d", i+1),
			m.Identifier.Text,
			fmt.Sprintf("%.2f", scale.Area(m.Area)),
			fmt.Sprintf("%.2f", scale.Length(m.Perimeter)),
			string(m.Kind),
			m.Layer,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
