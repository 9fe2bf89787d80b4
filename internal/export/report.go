package export

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table は端末に出す表1つ分
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
	// 行が無いときに出す文言
	Empty string
}

// RenderTables は見出し付きで表を順に書く。
func RenderTables(w io.Writer, tables ...Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n", t.Title); err != nil {
			return err
		}
		if len(t.Rows) == 0 {
			if _, err := fmt.Fprintln(w, t.Empty); err != nil {
				return err
			}
			continue
		}

		tbl := tablewriter.NewWriter(w)
		tbl.Header(t.Header)
		for _, row := range t.Rows {
			if err := tbl.Append(row); err != nil {
				return err
			}
		}
		if err := tbl.Render(); err != nil {
			return err
		}
	}
	return nil
}
