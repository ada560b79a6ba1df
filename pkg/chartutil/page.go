package chartutil

import (
	"bytes"
	"io"
	"regexp"

	"github.com/coscms/tables"
	"github.com/go-echarts/go-echarts/v2/components"
)

var bodyAndLastDiv = regexp.MustCompile(`</div>\s*</body>\s*</html>\s*$`)

var TableStyle = `<style>
table {border-collapse: collapse;background-color: #f2f2f2;width: 100%;margin: auto;box-shadow: 1px 1px 5px rgba(0,0,0,0.3);}
table caption{color: #516b91; font-weight: bold}
th, td {border: 1px solid #ccc;text-align: left;padding: 8px;}
th {background-color: #516b91;color: white;}
tr:nth-child(odd) {background-color: #f2f2f2;}
tr:nth-child(even) {background-color: #fff;}
</style>`

// NewTable creates a table with a caption and a single header row.
func NewTable(caption string, headers ...string) *tables.Table {
	table := tables.New()
	table.SetCaptionContent(caption)
	row := new(tables.Row)
	for _, header := range headers {
		row.AddCell(tables.NewCell(header))
	}
	table.Head.AddRow(row)
	return table
}

// AddTableRow appends one body row.
func AddTableRow(table *tables.Table, values ...interface{}) {
	row := new(tables.Row)
	for _, value := range values {
		row.AddCell(tables.NewCell(value))
	}
	table.Body.AddRow(row)
}

// RenderPage renders all charts on one flex page. When table is not nil it
// is appended below the charts.
func RenderPage(w io.Writer, table *tables.Table, charters ...Charter) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	for _, c := range charters {
		page.AddCharts(c)
	}
	if table == nil {
		return page.Render(w)
	}
	buf := bytes.NewBuffer(nil)
	if err := page.Render(buf); err != nil {
		return err
	}
	_, err := w.Write(bodyAndLastDiv.ReplaceAll(buf.Bytes(), []byte(TableStyle+`<div class="container"><div class="item" style="width:900px">`+string(table.Render())+`</div></div> </div></body></html>`)))
	return err
}

// Charter is a go-echarts chart that can render itself.
type Charter interface {
	components.Charter
	Render(w io.Writer) error
}
