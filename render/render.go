package render

import (
	"context"
	"fmt"
	"sync"

	"depthtrace/camera"
	"depthtrace/framebuffer"
	"depthtrace/integrator"

	"go.opencensus.io/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Workers is how many row chunks are rendered at once.  The result does
	// not depend on it.
	Workers int
}

func DefaultOptions() *Options {
	return &Options{
		Workers: 1,
	}
}

func (o *Options) Validate(im *framebuffer.Image) error {
	if o.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", o.Workers)
	}
	// ImageToRay divides by half of each dimension.
	if im.Width < 2 || im.Height < 2 {
		return fmt.Errorf("image must be at least 2x2, got %dx%d", im.Width, im.Height)
	}
	return nil
}

// ProgressFunction is called with the number of rows done and the total.
type ProgressFunction func(int, int)

type chunkWorker struct {
	img        *framebuffer.Image
	camera     camera.Camera
	integrator integrator.Integrator

	rowSrc int
	rowLim int

	progressFunction func()
}

// render fills rows [rowSrc, rowLim).  No other worker touches those rows.
func (w *chunkWorker) render(ctx context.Context) error {
	_, span := otel.Tracer("depthtrace/render").Start(ctx, "Render chunk",
		trace.WithAttributes(
			attribute.Int("row_src", w.rowSrc),
			attribute.Int("row_lim", w.rowLim),
		))
	defer span.End()

	for cr := w.rowSrc; cr < w.rowLim; cr++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for cc := 0; cc < w.img.Width; cc++ {
			r := w.camera.ImageToRay(cr, w.img.Height, cc, w.img.Width)
			s := w.integrator.Shade(r)
			w.img.Set(cr, cc, s.Color)
			w.img.SetDepth(cr, cc, s.T)
		}

		stats.Record(ctx, raysCast.M(int64(w.img.Width)), rowsRendered.M(1))
		w.progressFunction()
	}

	return nil
}

// RenderScene shades every pixel of img through cam and integ.  img must be
// allocated; its depth plane is filled if it has one.
func RenderScene(ctx context.Context, cam camera.Camera, integ integrator.Integrator, img *framebuffer.Image, options *Options, progressFunction ProgressFunction) error {
	if options == nil {
		options = DefaultOptions()
	}
	if err := options.Validate(img); err != nil {
		return err
	}

	ctx, span := otel.Tracer("depthtrace/render").Start(ctx, "RenderScene",
		trace.WithAttributes(
			attribute.Int("width", img.Width),
			attribute.Int("height", img.Height),
			attribute.Int("workers", options.Workers),
		))
	defer span.End()

	curProgress := 0
	progressMutex := sync.Mutex{}
	reportRow := func() {
		if progressFunction == nil {
			return
		}
		progressMutex.Lock()
		defer progressMutex.Unlock()
		curProgress++
		progressFunction(curProgress, img.Height)
	}

	workers := options.Workers
	if workers > img.Height {
		workers = img.Height
	}

	// We chunk work by rows, spreading the remainder over the first chunks.
	workUnit := img.Height / workers
	extra := img.Height % workers

	g, gctx := errgroup.WithContext(ctx)
	rowSrc := 0
	for i := 0; i < workers; i++ {
		rowLim := rowSrc + workUnit
		if i < extra {
			rowLim++
		}

		worker := &chunkWorker{
			img:              img,
			camera:           cam,
			integrator:       integ,
			rowSrc:           rowSrc,
			rowLim:           rowLim,
			progressFunction: reportRow,
		}
		g.Go(func() error {
			return worker.render(gctx)
		})

		rowSrc = rowLim
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("while rendering: %w", err)
	}

	return nil
}
