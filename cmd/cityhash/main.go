// Command cityhash prints the CityHash fingerprints of files, or of the
// standard input when no files are given.
//
// Examples:
//
//	cityhash file.bin
//	cityhash --algo 128 --format uuid a.bin b.bin
//	cityhash --algo 64 --seed 42 --decompress zstd data.zst
//	cat file.bin | cityhash --format json
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/segmentio/cityhash/compress/codecs"
	"github.com/segmentio/cityhash/internal/debug"
)

// version is set at build time with -ldflags "-X main.version=x.y.z".
var version = "devel"

func main() {
	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		perrorf("%s", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "cityhash"
	app.Usage = "Print CityHash fingerprints of files"
	app.ArgsUsage = "[file...]"
	app.Version = version
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "algo, a",
			Value: "64",
			Usage: "Hash algorithm: " + strings.Join(algorithmNames(), ", "),
		},
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "First seed, mixed into the 64 and 128 bit hashes",
		},
		cli.Uint64Flag{
			Name:  "seed1",
			Usage: "Second seed, the high half of 128 bit seeds",
		},
		cli.StringFlag{
			Name:  "decompress, d",
			Usage: "Decode inputs before hashing them, with one of: " + strings.Join(codecs.Names(), ", "),
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "text",
			Usage: "Output format: " + strings.Join(formatNames(), ", "),
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Display debugging logs",
		},
		cli.StringFlag{
			Name:  "cpu-profile",
			Usage: "Record a pprof CPU profile to the given file",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		return run(ctx, stdin, stdout)
	}
	return app
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprint(os.Stderr, color.RedString(format, args...))
}

func pdebugf(format string, args ...interface{}) {
	debug.Format(color.HiBlackString(format), args...)
}
