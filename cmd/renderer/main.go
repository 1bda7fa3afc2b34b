// renderer draws the built-in sphere room as a depth image: near surfaces are
// light, far ones dark, and rays that leave the room are white.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"depthtrace/depthbuffer"
	"depthtrace/framebuffer"
	"depthtrace/integrator"
	"depthtrace/output"
	"depthtrace/ppm"
	"depthtrace/render"
	"depthtrace/scene"

	"github.com/golang/glog"
	"golang.org/x/term"
)

var (
	outputFile = flag.String("output-file", "picture.ppm", "Output PPM image (local path or gs://bucket/object)")
	depthFile  = flag.String("depth-file", "", "If set, also write the raw depth buffer here (local path or gs://bucket/object)")
	outputCols = flag.Int("output-cols", 1024/2, "Output image columns")
	outputRows = flag.Int("output-rows", 768/2, "Output image rows")

	workers     = flag.Int("workers", 1, "Number of row chunks rendered concurrently")
	minDistance = flag.Float64("min-distance", integrator.DefaultMinDistance, "Distance shaded pure white; nearer hits are white too")
	maxDistance = flag.Float64("max-distance", integrator.DefaultMaxDistance, "Distance shaded pure black; farther hits are black too")

	monitoring           = flag.Bool("monitoring", false, "Export render metrics and traces to Google Cloud?")
	monitoringProject    = flag.String("monitoring-project", "", "Override project used for monitoring integration.  If not specified, the project associated with Application Default Credentials is used.")
	monitoringTraceRatio = flag.Float64("monitoring-trace-ratio", 1.0, "What ratio of traces should be exported?")

	cpuprofile = flag.String("cpu-profile", "", "write cpu profile to `file`")
	memprofile = flag.String("mem-profile", "", "write memory profile to `file`")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	glog.CopyStandardLogTo("INFO")

	glog.Infof("flags:")
	glog.Infof("output-file: %v", *outputFile)
	glog.Infof("depth-file: %v", *depthFile)
	glog.Infof("output-cols: %v", *outputCols)
	glog.Infof("output-rows: %v", *outputRows)
	glog.Infof("workers: %v", *workers)
	glog.Infof("min-distance: %v", *minDistance)
	glog.Infof("max-distance: %v", *maxDistance)
	glog.Infof("monitoring: %v", *monitoring)
	glog.Infof("monitoring-project: %v", *monitoringProject)
	glog.Infof("monitoring-trace-ratio: %v", *monitoringTraceRatio)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatalf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Println("Simple Raytracer")
	fmt.Println("row-major.net depthtrace")
	fmt.Println()
	fmt.Println("rendering...")

	if err := do(context.Background()); err != nil {
		glog.Fatalf("Error: %v", err)
	}

	fmt.Println("done")

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			glog.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			glog.Fatalf("could not write memory profile: %v", err)
		}
	}
}

func do(ctx context.Context) error {
	// Also rejects NaN.
	if !(*minDistance < *maxDistance) {
		return fmt.Errorf("min-distance %v must be less than max-distance %v", *minDistance, *maxDistance)
	}

	if *monitoring {
		flush, err := setupMonitoring(*monitoringProject, *monitoringTraceRatio)
		if err != nil {
			return fmt.Errorf("while setting up monitoring: %w", err)
		}
		defer flush()
	}

	s, err := scene.Default()
	if err != nil {
		return fmt.Errorf("while building scene: %w", err)
	}

	img := framebuffer.New(*outputCols, *outputRows, *depthFile != "")
	integ := integrator.NewDepth(s.Spheres, *minDistance, *maxDistance)
	options := &render.Options{
		Workers: *workers,
	}

	if err := render.RenderScene(ctx, s.Camera, integ, img, options, progressReporter()); err != nil {
		return err
	}

	if err := writeOutput(ctx, *outputFile, func(w io.Writer) error {
		return ppm.Write(w, img)
	}); err != nil {
		return fmt.Errorf("while writing image: %w", err)
	}
	glog.Infof("Wrote %dx%d image to %s", img.Width, img.Height, *outputFile)

	if *depthFile != "" {
		hdr := &depthbuffer.Header{
			Width:       img.Width,
			Height:      img.Height,
			MinDistance: *minDistance,
			MaxDistance: *maxDistance,
		}
		if err := writeOutput(ctx, *depthFile, func(w io.Writer) error {
			return depthbuffer.Write(w, hdr, img)
		}); err != nil {
			return fmt.Errorf("while writing depth buffer: %w", err)
		}
		glog.Infof("Wrote depth buffer to %s", *depthFile)
	}

	return nil
}

// writeOutput opens name, hands it to write, and reports any failure to
// finish the file, including one from Close.
func writeOutput(ctx context.Context, name string, write func(io.Writer) error) error {
	out, err := output.Create(ctx, name)
	if err != nil {
		return err
	}

	if err := write(out); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("while closing %s: %w", name, err)
	}
	return nil
}

// progressReporter draws a progress line on stderr when it is a terminal, and
// otherwise only logs at verbosity 1.
func progressReporter() render.ProgressFunction {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func(cur, tot int) {
			glog.V(1).Infof("rendered row %d/%d", cur, tot)
		}
	}

	return func(cur, tot int) {
		fmt.Fprintf(os.Stderr, "\r%d/%d %d%%", cur, tot, 100*cur/tot)
		if cur == tot {
			fmt.Fprintf(os.Stderr, "\n")
		}
	}
}
