package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ChicagoDave/solaris/internal/server"
	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/mapview"
	"github.com/ChicagoDave/solaris/pkg/render"
	"github.com/ChicagoDave/solaris/pkg/spec"
	"github.com/ChicagoDave/solaris/pkg/validation"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

var errInvalidCatalog = errors.New("catalog has validation errors")

// createOutput opens the file a render is written to.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// loadAndBuild loads the catalog and generates the atlas. The atlas is nil
// when the report carries errors.
func loadAndBuild(projectPath string) (*atlas.Atlas, *validation.Report, error) {
	cat, err := spec.LoadOrDefault(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	a, report := atlas.Build(cat)
	return a, report, nil
}

func runValidate(w io.Writer, projectPath string) error {
	a, report, err := loadAndBuild(projectPath)
	if err != nil {
		return err
	}
	if a != nil {
		report.Merge(mapview.CheckFrames(a))
	}
	printValidationReport(w, report)
	if !report.Valid {
		return errInvalidCatalog
	}
	return nil
}

func runRegions(w io.Writer, projectPath string) error {
	a, report, err := loadAndBuild(projectPath)
	if err != nil {
		return err
	}
	if a == nil {
		printValidationReport(w, report)
		return errInvalidCatalog
	}
	printRegionTable(w, a)
	return nil
}

type renderOptions struct {
	format   string
	selected string
	out      string
	width    int
	height   int
}

func runRender(stdout io.Writer, projectPath string, opts renderOptions) (err error) {
	a, report, err := loadAndBuild(projectPath)
	if err != nil {
		return err
	}
	if a == nil {
		printValidationReport(os.Stderr, report)
		return errInvalidCatalog
	}

	sel := viewport.ParseSelection(opts.selected)
	if id, ok := sel.RegionID(); ok {
		if _, known := a.Region(id); !known {
			return fmt.Errorf("unknown region %q (have %v)", id, a.Catalog().RegionIDs())
		}
	}

	w := stdout
	if opts.out != "" {
		f, cerr := createOutput(opts.out)
		if cerr != nil {
			return fmt.Errorf("creating output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", cerr)
			}
		}()
		w = f
	}

	switch opts.format {
	case "svg":
		g := mapview.Snapshot(a, sel)
		err = render.SVG(w, g, render.SVGOptions{Title: a.Catalog().Name})
	case "png":
		width, height := opts.width, opts.height
		if width <= 0 {
			width = int(a.Canvas().Width())
		}
		if height <= 0 {
			height = int(a.Canvas().Height())
		}
		err = render.PNG(w, mapview.Snapshot(a, sel), width, height)
	case "geojson":
		var data []byte
		data, err = render.GeoJSON(a)
		if err == nil {
			_, err = w.Write(data)
		}
	default:
		return fmt.Errorf("unknown format %q (want svg, png or geojson)", opts.format)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", opts.format, err)
	}
	return nil
}

func runServe(ctx context.Context, projectPath string, port int, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	a, report, err := loadAndBuild(projectPath)
	if err != nil {
		return err
	}
	if a == nil {
		printValidationReport(os.Stderr, report)
		return errInvalidCatalog
	}
	for _, warn := range report.Warnings {
		log.Warnw(warn.Message, "level", warn.Level, "path", warn.ConfigPath)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	project := projectPath
	if project == "" {
		project = "(embedded)"
	}
	log.Infow("catalog loaded", "project", project, "regions", len(a.Regions()), "summary", report.Summary)
	return server.New(a, report, port, log).Run(ctx)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}
