package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/plot"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var defaultPad = plot.Padding{
	Top:    40,
	Right:  40,
	Bottom: 40,
	Left:   40,
}

func main() {
	var (
		title  = flag.String("title", "", "chart title")
		kind   = flag.String("type", "line", "chart type (line, scatter, both, bar)")
		xcol   = flag.Int("xcol", 0, "index of x column")
		ycol   = flag.Int("ycol", 1, "index of y column")
		xtics  = flag.Int("xtics", 0, "ticks on x axis (0: from pixel budget)")
		ytics  = flag.Int("ytics", 0, "ticks on y axis (0: from pixel budget)")
		xdom   = flag.String("xdom", "", "domain for x values (min:max)")
		ydom   = flag.String("ydom", "", "domain for y values (min:max)")
		xlabel = flag.String("xlabel", "", "x axis label")
		ylabel = flag.String("ylabel", "", "y axis label")
		width  = flag.Float64("width", defaultWidth, "chart width")
		height = flag.Float64("height", defaultHeight, "chart height")
		legend = flag.Bool("legend", false, "draw legend in upper right corner")
		result = flag.String("file", "", "combine all inputs into one chart file")
	)
	flag.Parse()

	cfg := config{
		Title:  *title,
		Kind:   *kind,
		XCol:   *xcol,
		YCol:   *ycol,
		Width:  *width,
		Height: *height,
		Legend: *legend,
	}
	var err error
	if cfg.X, err = makeAxis(*xlabel, *xdom, *xtics); err == nil {
		cfg.Y, err = makeAxis(*ylabel, *ydom, *ytics)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *result != "" {
		err = renderCombined(cfg, *result, flag.Args())
	} else {
		err = renderEach(cfg, flag.Args())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

type config struct {
	Title  string
	Kind   string
	XCol   int
	YCol   int
	Width  float64
	Height float64
	Legend bool
	X      plot.AxisOption
	Y      plot.AxisOption
}

func (c config) makePlot() *plot.Plot {
	p := plot.Plot{
		Title:   c.Title,
		Width:   c.Width,
		Height:  c.Height,
		Padding: defaultPad,
		X:       c.X,
		Y:       c.Y,
	}
	if c.Legend {
		p.Legend = plot.LegendPolicy{
			Orient: plot.OrientTop | plot.OrientRight,
			Sort:   plot.SortDescending,
		}
	}
	return &p
}

func (c config) makeDataset(file string) (plot.Dataset, error) {
	points, err := loadPoints(file, c.XCol, c.YCol)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	switch c.Kind {
	case "line", "":
		return plot.Line{Title: name, Color: "blue", Points: points}, nil
	case "scatter":
		return plot.Scatter{Title: name, Color: "blue", Points: points}, nil
	case "both":
		return plot.NewLinePoints(name, "blue", points), nil
	case "bar":
		return plot.Bars{Title: name, Fill: plot.Tableau10, Points: points}, nil
	default:
		return nil, fmt.Errorf("%s: unrecognized chart type", c.Kind)
	}
}

// renderEach writes one SVG next to each input file. Plots are independent
// so they render concurrently.
func renderEach(cfg config, files []string) error {
	var grp errgroup.Group
	for _, f := range files {
		file := f
		grp.Go(func() error {
			dat, err := cfg.makeDataset(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			p := cfg.makePlot()
			p.Datasets = append(p.Datasets, dat)
			out := strings.TrimSuffix(file, filepath.Ext(file)) + ".svg"
			return renderTo(p, out)
		})
	}
	return grp.Wait()
}

func renderCombined(cfg config, out string, files []string) error {
	p := cfg.makePlot()
	for _, f := range files {
		dat, err := cfg.makeDataset(f)
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		p.Datasets = append(p.Datasets, dat)
	}
	return renderTo(p, out)
}

func renderTo(p *plot.Plot, file string) error {
	var w io.Writer = os.Stdout
	if file != "" && file != "-" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return p.Render(w)
}

func loadPoints(file string, xcol, ycol int) ([]plot.Point, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var (
		rs     = csv.NewReader(r)
		points []plot.Point
	)
	rs.Comment = '#'
	for {
		row, err := rs.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if xcol >= len(row) || ycol >= len(row) {
			return nil, fmt.Errorf("column out of range for %s", file)
		}
		x, err0 := strconv.ParseFloat(row[xcol], 64)
		y, err1 := strconv.ParseFloat(row[ycol], 64)
		if err0 != nil || err1 != nil {
			continue
		}
		points = append(points, plot.NewPoint(x, y))
	}
	return points, nil
}

func makeAxis(label, dom string, ticks int) (plot.AxisOption, error) {
	opt := plot.AxisOption{
		Label:          label,
		Ticks:          ticks,
		WithOuterTicks: true,
	}
	if dom == "" {
		return opt, nil
	}
	vs := strings.Split(dom, ":")
	if len(vs) != 2 {
		return opt, fmt.Errorf("invalid number of values given for domain")
	}
	if vs[0] != "" {
		min, err := strconv.ParseFloat(vs[0], 64)
		if err != nil {
			return opt, err
		}
		opt.Min = &min
	}
	if vs[1] != "" {
		max, err := strconv.ParseFloat(vs[1], 64)
		if err != nil {
			return opt, err
		}
		opt.Max = &max
	}
	return opt, nil
}
