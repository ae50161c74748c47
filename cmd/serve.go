package cmd

import (
	"github.com/df07/go-weekend-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve renders scenes over HTTP.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	port := ctx.Int("port")
	logger.Noticef("visit http://localhost:%d/api/scenes to list the available scenes", port)
	return server.NewServer(port, ctx.String("dir")).Start()
}
