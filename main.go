package main

import (
	"fmt"
	"os"

	"github.com/df07/go-weekend-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render sphere scenes using recursive path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Render a built-in scene or a JSON scene file and save the image. The output
format is picked from the file extension (ppm, png, bmp, tif/tiff). Use
--out - to write a plain PPM to stdout.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name or path to a .json scene file",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum number of bounces per path (0 = scene default)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "lens aperture for depth of field (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "focus-distance",
					Usage: "distance to the plane in focus (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = one per CPU, 1 = single-threaded)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "tile edge length in pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
				cli.BoolFlag{
					Name:  "no-jitter",
					Usage: "sample pixel centres instead of random positions",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory to scan for .json scene files",
				},
			},
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Description: `
Start an HTTP server exposing /api/health, /api/scenes, /api/scene-config,
/api/render and /api/inspect. Renders stop when the client disconnects.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory to scan for .json scene files",
				},
			},
			Action: cmd.Serve,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
