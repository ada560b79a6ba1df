package chartutil

import (
	"bytes"
	"testing"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexLabels(t *testing.T) {
	assert.Equal(t, []string{`0`, `1`, `2`}, IndexLabels(3))
	assert.Empty(t, IndexLabels(0))
}

func TestRenderPage(t *testing.T) {
	line := NewLine(nil, []charts.GlobalOpts{Title(`Load`, ``), Initialization(``, ``)}, IndexLabels(2), func(l *charts.Line) {
		l.AddSeries(`cpu`, []opts.LineData{{Value: 1}, {Value: 2}})
	})
	scatter := NewScatter(nil, []charts.GlobalOpts{Title(`Points`, ``)}, func(s *charts.Scatter) {
		s.AddSeries(`p`, []opts.ScatterData{{Value: []float64{1, 2}}})
	})
	table := NewTable(`Summary`, `Name`, `Count`)
	AddTableRow(table, `cpu`, 2)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, RenderPage(buf, table, line, scatter))
	html := buf.String()
	assert.Contains(t, html, `Load`)
	assert.Contains(t, html, `Points`)
	assert.Contains(t, html, `Summary`)

	buf.Reset()
	require.NoError(t, RenderPage(buf, nil, line))
	assert.NotContains(t, buf.String(), `Summary`)
}
