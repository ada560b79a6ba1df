package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/admpub/log"

	"github.com/admpub/charting/internal/server"
	"github.com/admpub/charting/pkg/charting"
	"github.com/admpub/charting/pkg/chartutil"
	"github.com/admpub/charting/pkg/config"
	"github.com/admpub/charting/pkg/source"

	_ "github.com/admpub/charting/pkg/storage/duckdb"
)

// go run . -t "Prediction" -n predicted,actual -o chart.html ./predicted.txt ./actual.txt
// go run . -k ./kmeans.json5 -o clusters.html
// go run . -c ./config.json5 --serve

const usage = `usage:
  charting [-c config] [-t title] [-n name1,name2] [-o output.html] <series1> <series2>
  charting [-c config] -k <clusters.json5> [-o output.html]
  charting [-c config] -s`

type args struct {
	seriesPaths []string
	configPath  string
	output      string
	title       string
	names       [2]string
	clusterPath string
	serve       bool
}

func main() {
	a, err := getCommandLineArgs(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		fmt.Println(usage)
		return
	}

	cfg := config.New()
	if len(a.configPath) > 0 {
		cfg, err = config.LoadConfig(a.configPath)
		if err != nil {
			log.Fatalf("failed to load config from %s: %v", a.configPath, err)
		}
	}
	defer cfg.Close()

	if a.serve {
		if err := server.Start(cfg); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
		return
	}

	var chart *charting.Chart
	if len(a.clusterPath) > 0 {
		req, err := source.LoadClusterRequest(a.clusterPath)
		if err != nil {
			log.Fatalf("unable to load clusters: %v", err)
		}
		chart, err = req.Build(charting.WithPalette(cfg.ChartPalette()))
		if err != nil {
			log.Fatalf("unable to build cluster chart: %v", err)
		}
	} else {
		req, err := source.LoadDualRequest(a.title, a.names, [2]string{a.seriesPaths[0], a.seriesPaths[1]}, cfg.LastLines)
		if err != nil {
			log.Fatalf("unable to read series: %v", err)
		}
		chart = charting.BuildDualSeries(req)
	}

	w := os.Stdout
	if len(a.output) > 0 {
		f, err := os.Create(a.output)
		if err != nil {
			log.Fatalf("unable to create %s: %v", a.output, err)
		}
		defer f.Close()
		w = f
	}
	err = chart.Render(w, chart.Initialization(cfg.Theme, chartutil.Size(cfg.Width, cfg.Height)))
	if err != nil {
		log.Errorf("unable to render chart: %v", err)
	}
}

func getCommandLineArgs(argv []string) (a args, err error) {
	a.names = [2]string{`series 1`, `series 2`}
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case `-s`, `--serve`:
			a.serve = true
			continue
		case `-c`, `--config`, `-o`, `--output`, `-t`, `--title`, `-n`, `--names`, `-k`, `--cluster`:
			if i+1 >= len(argv) {
				return a, fmt.Errorf("missing value for %s", arg)
			}
			i++
			value := argv[i]
			switch arg {
			case `-c`, `--config`:
				a.configPath = value
			case `-o`, `--output`:
				a.output = value
			case `-t`, `--title`:
				a.title = value
			case `-n`, `--names`:
				parts := strings.SplitN(value, `,`, 2)
				a.names[0] = parts[0]
				if len(parts) > 1 {
					a.names[1] = parts[1]
				}
			case `-k`, `--cluster`:
				a.clusterPath = value
			}
			continue
		}
		a.seriesPaths = append(a.seriesPaths, arg)
	}
	if !a.serve && len(a.clusterPath) == 0 && len(a.seriesPaths) != 2 {
		return a, fmt.Errorf("expected 2 series files, got %d", len(a.seriesPaths))
	}
	return a, nil
}
