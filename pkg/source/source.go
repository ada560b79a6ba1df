// Package source loads chart input from files: numeric series stored one
// value per line and cluster requests stored as JSON5 documents.
package source

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/admpub/json5"
	"github.com/admpub/log"
	"github.com/admpub/tail"

	"github.com/admpub/charting/pkg/charting"
)

// ReadSeries reads one number per line. Blank lines and lines starting
// with # are skipped, lines that do not hold a number are logged and
// skipped. When lastLines > 0 only the tail of the file is read.
func ReadSeries(path string, lastLines int) ([]float64, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	tcfg := tail.Config{
		LastLines: lastLines,
	}
	ti, err := tail.TailFile(path, tcfg)
	if err != nil {
		return nil, err
	}
	defer ti.Cleanup()
	var values []float64
	var i int
	for line := range ti.Lines {
		i++
		if line.Err != nil {
			return nil, fmt.Errorf(`%s: line %d: %w`, path, i, line.Err)
		}
		text := strings.TrimSpace(line.Text)
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			log.Warnf("%s: no number on line %d: %q", path, i, line.Text)
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

// LoadDualRequest builds a request from two series files.
func LoadDualRequest(title string, names [2]string, paths [2]string, lastLines int) (charting.ChartRequest, error) {
	req := charting.ChartRequest{
		Title:            title,
		FirstSeriesName:  names[0],
		SecondSeriesName: names[1],
	}
	var err error
	req.FirstSeriesValues, err = ReadSeries(paths[0], lastLines)
	if err != nil {
		return req, err
	}
	req.SecondSeriesValues, err = ReadSeries(paths[1], lastLines)
	return req, err
}

func LoadClusterRequest(path string) (charting.ClusterRequest, error) {
	var req charting.ClusterRequest
	b, err := os.ReadFile(path)
	if err != nil {
		return req, err
	}
	err = json5.Unmarshal(b, &req)
	return req, err
}
