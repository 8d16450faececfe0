// Sheetpack optimizes rectangular cutlists onto stock sheets.
//
// It imports a cutlist (CSV, Excel, DXF or a saved job file), searches piece
// rotations and subsets for dense packings, and reports the resulting sheet
// layouts. Results can be written as JSON, as a printable layout PDF and as
// QR-coded piece labels.
//
// Build:
//   go build -o sheetpack ./cmd/sheetpack

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nhansendev/RectanglePack/internal/engine"
	"github.com/nhansendev/RectanglePack/internal/export"
	"github.com/nhansendev/RectanglePack/internal/importer"
	"github.com/nhansendev/RectanglePack/internal/model"
	"github.com/nhansendev/RectanglePack/internal/place"
	"github.com/nhansendev/RectanglePack/internal/project"
)

type options struct {
	in             string
	job            string
	width          int
	height         int
	preset         string
	heuristic      string
	coverage       float64
	coverageSet    bool
	workers        int
	single         bool
	compare        bool
	out            string
	pdf            string
	labels         string
	save           string
	listPresets    bool
	exportSettings string
	importSettings string
}

func main() {
	var opts options
	flag.StringVar(&opts.in, "in", "", "cutlist to import (.csv, .txt, .xlsx, .dxf or .json job)")
	flag.StringVar(&opts.job, "job", "", "saved job file to run")
	flag.IntVar(&opts.width, "width", 0, "sheet width in units")
	flag.IntVar(&opts.height, "height", 0, "sheet height in units")
	flag.StringVar(&opts.preset, "preset", "", "sheet preset name (see -presets)")
	flag.StringVar(&opts.heuristic, "heuristic", "", "placement heuristic (default from app config)")
	flag.Float64Var(&opts.coverage, "coverage", 0, "minimum sheet coverage for -single, in [0,1] (default from app config)")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "concurrent rotation search workers")
	flag.BoolVar(&opts.single, "single", false, "pack a single sheet only")
	flag.BoolVar(&opts.compare, "compare", false, "pack once per placement heuristic and report the best")
	flag.StringVar(&opts.out, "out", "", "write the result as JSON")
	flag.StringVar(&opts.pdf, "pdf", "", "write sheet layouts as PDF")
	flag.StringVar(&opts.labels, "labels", "", "write QR piece labels as PDF")
	flag.StringVar(&opts.save, "save", "", "save the run as a job file")
	flag.BoolVar(&opts.listPresets, "presets", false, "list sheet presets and exit")
	flag.StringVar(&opts.exportSettings, "export-settings", "", "write config and presets to a backup file and exit")
	flag.StringVar(&opts.importSettings, "import-settings", "", "restore config and presets from a backup file and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -in <cutlist> -width <W> -height <H> [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -job <job.json> [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "coverage" {
			opts.coverageSet = true
		}
	})

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "sheetpack: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.listPresets {
		return listPresets()
	}
	if opts.exportSettings != "" {
		return backupSettings(opts.exportSettings)
	}
	if opts.importSettings != "" {
		return restoreSettings(opts.importSettings)
	}
	if opts.in != "" && opts.job != "" {
		return errors.New("-in and -job are mutually exclusive")
	}
	if opts.in == "" && opts.job == "" {
		flag.Usage()
		return errors.New("an input is required: -in <cutlist> or -job <job.json>")
	}

	config := loadConfig()

	var (
		rects     []model.Rect
		job       model.Job
		jobLoaded bool
	)
	if opts.job != "" {
		var err error
		job, err = project.LoadJob(opts.job)
		if err != nil {
			return err
		}
		if err := job.Validate(); err != nil {
			return fmt.Errorf("job %s: %w", opts.job, err)
		}
		rects = job.Rects()
		if len(rects) == 0 {
			return fmt.Errorf("job %s has no items", opts.job)
		}
		jobLoaded = true
	} else {
		res := importer.ImportFile(opts.in)
		for _, w := range res.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		for _, e := range res.Errors {
			fmt.Fprintln(os.Stderr, "skipped:", e)
		}
		if len(res.Rects) == 0 {
			return fmt.Errorf("no usable pieces in %s", opts.in)
		}
		rects = res.Rects
	}

	width, height := 0, 0
	switch {
	case opts.preset != "":
		store, _, err := project.LoadOrCreatePresets()
		if err != nil {
			return err
		}
		p := store.FindByName(opts.preset)
		if p == nil {
			return fmt.Errorf("unknown preset %q (have: %s)", opts.preset, strings.Join(store.Names(), ", "))
		}
		width, height = p.Width, p.Height
	case jobLoaded:
		width, height = job.BinWidth, job.BinHeight
	}
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	if width <= 0 || height <= 0 {
		return errors.New("sheet size required: pass -width and -height, a -preset, or a job with a bin")
	}

	if opts.compare {
		return runComparison(rects, width, height)
	}

	heuristicName := opts.heuristic
	if heuristicName == "" {
		switch {
		case jobLoaded && job.Heuristic != "":
			heuristicName = job.Heuristic
		case config.DefaultHeuristic != "":
			heuristicName = config.DefaultHeuristic
		default:
			heuristicName = place.MaxRectsBSSF.String()
		}
	}
	h, err := place.ParseHeuristic(heuristicName)
	if err != nil {
		return err
	}

	coverage := opts.coverage
	if !opts.coverageSet {
		switch {
		case jobLoaded && job.Coverage > 0:
			coverage = job.Coverage
		case config.DefaultCoverage > 0:
			coverage = config.DefaultCoverage
		default:
			coverage = engine.DefaultCoverage
		}
	}

	searcher := engine.New(place.New(h))
	searcher.Workers = opts.workers

	var result model.Result
	if opts.single {
		packing, ok, err := searcher.MaxUsage(rects, width, height, coverage)
		if err != nil {
			return err
		}
		if ok {
			result.Sheets = []model.Sheet{{Width: width, Height: height, Packing: packing}}
			if leftover := engine.Leftover(rects, packing.Sizes); len(leftover) > 0 {
				result.Unplaced = leftover
			}
		} else {
			result.Unplaced = rects
		}
	} else {
		result, err = searcher.PackSheets(rects, width, height)
		if err != nil {
			return err
		}
	}

	printReport(result, opts.single, coverage)

	if opts.out != "" || opts.pdf != "" || opts.labels != "" || opts.save != "" {
		fmt.Println()
	}
	if opts.out != "" {
		if err := project.SaveResult(opts.out, result); err != nil {
			return err
		}
		fmt.Printf("Result written to %s\n", opts.out)
	}
	if opts.pdf != "" {
		if err := export.ExportPDF(opts.pdf, result); err != nil {
			return err
		}
		fmt.Printf("Layout PDF written to %s\n", opts.pdf)
	}
	if opts.labels != "" {
		if err := export.ExportLabels(opts.labels, result); err != nil {
			return err
		}
		fmt.Printf("Labels PDF written to %s\n", opts.labels)
	}
	if opts.save != "" {
		saved := buildJob(opts.save, rects, width, height, coverage, heuristicName)
		if err := project.SaveJob(opts.save, saved); err != nil {
			return err
		}
		fmt.Printf("Job saved to %s\n", opts.save)
	}

	var recent []string
	if opts.job != "" {
		recent = append(recent, opts.job)
	}
	if opts.save != "" {
		recent = append(recent, opts.save)
	}
	if len(recent) > 0 {
		recordRecent(config, recent)
	}
	return nil
}

// loadConfig falls back to built-in defaults when no config file exists or
// the platform has no config directory. A corrupt file warns and falls back
// rather than blocking the run.
func loadConfig() model.AppConfig {
	path, err := project.DefaultConfigPath()
	if err != nil {
		return model.DefaultAppConfig()
	}
	config, err := project.LoadAppConfig(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
		return model.DefaultAppConfig()
	}
	return config
}

// recordRecent stores job file paths in the recent list. A config write
// failure only warns, it never fails a completed run.
func recordRecent(config model.AppConfig, paths []string) {
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		config.AddRecentJob(p)
	}
	configPath, err := project.DefaultConfigPath()
	if err != nil {
		return
	}
	if err := project.SaveAppConfig(configPath, config); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
}

// buildJob condenses a run back into a reusable job file, one item line per
// canonical shape.
func buildJob(path string, rects []model.Rect, width, height int, coverage float64, heuristic string) model.Job {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	job := model.NewJob(name, width, height)
	job.Coverage = coverage
	job.Heuristic = heuristic
	for _, g := range model.GroupRects(rects) {
		job.AddItem(g.Shape.Width, g.Shape.Height, g.Count)
	}
	return job
}

// printReport writes the human-readable outcome to stdout.
func printReport(result model.Result, single bool, coverage float64) {
	total := result.PlacedCount() + len(result.Unplaced)

	if result.SheetCount() == 0 {
		switch {
		case single && coverage > 0:
			fmt.Printf("No single-sheet packing found for %d pieces with coverage >= %.0f%%\n", total, coverage*100)
		case single:
			fmt.Printf("No single-sheet packing found for %d pieces\n", total)
		default:
			fmt.Printf("No packing found for %d pieces\n", total)
		}
		printUnplaced(result.Unplaced)
		return
	}

	noun := "sheets"
	if result.SheetCount() == 1 {
		noun = "sheet"
	}
	fmt.Printf("Packed %d of %d pieces onto %d %s (%d x %d)\n\n",
		result.PlacedCount(), total, result.SheetCount(), noun,
		result.Sheets[0].Width, result.Sheets[0].Height)
	for i, sheet := range result.Sheets {
		fmt.Printf("  Sheet %d: %d pieces, coverage %.1f%%\n", i+1, sheet.Packing.Count(), sheet.Coverage()*100)
	}
	fmt.Printf("\nTotal coverage: %.1f%%\n", result.TotalCoverage()*100)

	if remnants := model.DetectAllRemnants(result); len(remnants) > 0 {
		fmt.Println("Usable remnants:")
		for _, r := range remnants {
			fmt.Printf("  Sheet %d: %s at (%d, %d)\n", r.SheetIndex+1, r.Size(), r.X, r.Y)
		}
	}
	printUnplaced(result.Unplaced)
}

func printUnplaced(unplaced []model.Rect) {
	if len(unplaced) == 0 {
		return
	}
	noun := "pieces"
	if len(unplaced) == 1 {
		noun = "piece"
	}
	fmt.Printf("\nWARNING: %d %s did not fit:\n", len(unplaced), noun)
	for _, r := range unplaced {
		fmt.Printf("  %s\n", r)
	}
}

// runComparison packs the same cutlist once per placement heuristic and
// reports which one did best.
func runComparison(rects []model.Rect, width, height int) error {
	heuristics := place.All()
	scenarios := make([]engine.ComparisonScenario, 0, len(heuristics))
	for _, h := range heuristics {
		scenarios = append(scenarios, engine.ComparisonScenario{Name: h.String(), Placer: place.New(h)})
	}
	results, err := engine.CompareScenarios(scenarios, rects, width, height)
	if err != nil {
		return err
	}

	fmt.Printf("%-20s %8s %8s %10s %8s\n", "Heuristic", "Sheets", "Placed", "Unplaced", "Waste")
	for _, r := range results {
		fmt.Printf("%-20s %8d %8d %10d %7.1f%%\n",
			r.Scenario.Name, r.SheetsUsed, r.PlacedCount, r.UnplacedCount, r.WastePercent)
	}
	if best := engine.BestScenario(results); best >= 0 {
		fmt.Printf("\nBest: %s\n", results[best].Scenario.Name)
	}
	return nil
}

// listPresets prints the stored sheet presets.
func listPresets() error {
	store, path, err := project.LoadOrCreatePresets()
	if err != nil {
		return err
	}
	fmt.Printf("Sheet presets (%s):\n", path)
	for _, p := range store.Presets {
		fmt.Printf("  %-24s %d x %d\n", p.Name, p.Width, p.Height)
	}
	return nil
}

// backupSettings bundles the live config and presets into one file.
func backupSettings(path string) error {
	config := loadConfig()
	store, _, err := project.LoadOrCreatePresets()
	if err != nil {
		return err
	}
	if err := project.ExportSettings(path, config, store); err != nil {
		return err
	}
	fmt.Printf("Settings exported to %s\n", path)
	return nil
}

// restoreSettings replaces the live config and presets with a backup's.
func restoreSettings(path string) error {
	backup, err := project.ImportSettings(path)
	if err != nil {
		return err
	}
	configPath, err := project.DefaultConfigPath()
	if err != nil {
		return err
	}
	if err := project.SaveAppConfig(configPath, backup.Config); err != nil {
		return err
	}
	presetsPath, err := project.DefaultPresetsPath()
	if err != nil {
		return err
	}
	if err := project.SavePresets(presetsPath, backup.Presets); err != nil {
		return err
	}
	fmt.Printf("Restored settings from %s (created %s)\n", path, backup.CreatedAt)
	return nil
}
