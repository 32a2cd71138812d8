package printer

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
)

// ColumnMapping defines a mapping between original field names and display names
type ColumnMapping [][]string

// PrintTable renders rows (any slice of structs or maps) as a terminal
// table, ordering and renaming columns per the mapping. With an empty
// mapping, columns fall back to alphabetical field order.
func PrintTable(rows any, mapping ColumnMapping) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}
	return jsonToTableWithMapping(string(data), mapping)
}

// jsonToTableWithMapping converts a JSON array string to a table with custom column mapping
func jsonToTableWithMapping(jsonStr string, mapping ColumnMapping) error {
	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &rows); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	var header []string
	if len(mapping) > 0 {
		for _, m := range mapping {
			if len(m) >= 2 {
				header = append(header, m[1])
			}
		}
	} else {
		for k := range rows[0] {
			header = append(header, k)
		}
		sort.Strings(header)
		for _, k := range header {
			mapping = append(mapping, []string{k, k})
		}
	}

	table := pterm.TableData{header} // first row = header

	for _, r := range rows {
		row := make([]string, len(header))
		for i, m := range mapping {
			if len(m) < 2 {
				continue
			}
			val, ok := r[m[0]]
			if !ok || val == nil {
				row[i] = "-"
				continue
			}
			row[i] = fmt.Sprintf("%v", val)
		}
		table = append(table, row)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		log.Error().Err(err).Msg("failed to render table")
		return err
	}
	return nil
}
