// Command rastdemo renders the built-in demo scenes, or a JavaScript
// scene script, to PPM files. It can additionally convert each render
// to PNG or BMP, optionally upscaled; conversion happens here in the
// driver, never in the core.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/raster"
	"github.com/gogpu/raster/scenes"
	"github.com/gogpu/raster/script"
)

func main() {
	var (
		size       = flag.Int("size", 512, "canvas size (square)")
		outDir     = flag.String("out", ".", "output directory")
		sceneName  = flag.String("scene", "all", "built-in scene to render, or \"all\"")
		scriptPath = flag.String("script", "", "render a JavaScript scene script instead of built-in scenes")
		convertTo  = flag.String("convert", "", "also convert output to this format (png or bmp)")
		scale      = flag.Int("scale", 1, "integer upscale factor for converted output")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *convertTo != "" && *convertTo != "png" && *convertTo != "bmp" {
		log.Fatalf("unknown conversion format %q (want png or bmp)", *convertTo)
	}

	if *scriptPath != "" {
		src, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		c, err := script.RunScene(context.Background(), string(src), *size)
		if err != nil {
			log.Fatalf("run script %s: %v", *scriptPath, err)
		}
		name := strings.TrimSuffix(filepath.Base(*scriptPath), filepath.Ext(*scriptPath))
		if err := writeOutputs(c, *outDir, name, *convertTo, *scale); err != nil {
			log.Fatal(err)
		}
		return
	}

	list := scenes.All()
	if *sceneName != "all" {
		s, ok := scenes.Lookup(*sceneName)
		if !ok {
			log.Fatalf("unknown scene %q", *sceneName)
		}
		list = []scenes.Scene{s}
	}

	for _, s := range list {
		c, err := scenes.Render(s, *size, raster.White)
		if err != nil {
			log.Fatalf("render %s: %v", s.Name, err)
		}
		if err := writeOutputs(c, *outDir, s.Name, *convertTo, *scale); err != nil {
			log.Fatal(err)
		}
	}
}

// writeOutputs always writes name.ppm, plus the converted form when
// requested.
func writeOutputs(c *raster.Canvas, dir, name, convertTo string, scale int) error {
	ppmPath := filepath.Join(dir, name+".ppm")
	if err := raster.SavePPM(c, ppmPath); err != nil {
		return fmt.Errorf("save %s: %w", ppmPath, err)
	}
	log.Printf("wrote %s (%dx%d)", ppmPath, c.Width(), c.Height())

	if convertTo == "" {
		return nil
	}

	img := prepare(c, scale)
	outPath := filepath.Join(dir, name+"."+convertTo)
	f, err := os.Create(outPath) //nolint:gosec // path derives from user flags
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer func() { _ = f.Close() }()

	switch convertTo {
	case "png":
		err = png.Encode(f, img)
	case "bmp":
		err = bmp.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	log.Printf("wrote %s", outPath)
	return nil
}

// prepare upscales the canvas for conversion. Nearest neighbor keeps
// the rasterized pixels crisp instead of smearing them.
func prepare(c *raster.Canvas, scale int) image.Image {
	if scale <= 1 {
		return c
	}
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width()*scale, c.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), c, c.Bounds(), xdraw.Src, nil)
	return dst
}
