package chartutil

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
)

func NewLine(w io.Writer, options []charts.GlobalOpts, headTitles []string, addSeries func(*charts.Line)) *charts.Line {
	// create a new line instance
	line := charts.NewLine()
	// set some global options like Title/Legend/ToolTip or anything else
	line.SetGlobalOptions(options...)

	// Put data into instance
	line.SetXAxis(headTitles)

	if addSeries != nil {
		addSeries(line)
	}

	if w != nil {
		line.Render(w)
	}
	return line
}

// IndexLabels returns the category labels "0" to "n-1".
func IndexLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}
