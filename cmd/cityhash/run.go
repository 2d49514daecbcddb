package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli"

	"github.com/segmentio/cityhash"
	"github.com/segmentio/cityhash/compress"
	"github.com/segmentio/cityhash/compress/codecs"
	"github.com/segmentio/cityhash/hashprobe"
	"github.com/segmentio/cityhash/internal/debug"
)

var errCRCUnsupported = errors.New("the crc algorithms require CRC32 instructions, which this CPU does not provide")

// stdinName designates the standard input in the list of files.
const stdinName = "-"

type config struct {
	algo   *algorithm
	seeds  seeds
	codec  compress.Codec
	format *format
}

func parseConfig(ctx *cli.Context) (*config, error) {
	algo, err := lookupAlgorithm(ctx.String("algo"))
	if err != nil {
		return nil, err
	}
	if algo.crc && !cityhash.CRCEnabled() {
		return nil, errCRCUnsupported
	}

	s := seeds{
		seed0: ctx.Uint64("seed"),
		seed1: ctx.Uint64("seed1"),
		set0:  ctx.IsSet("seed"),
		set1:  ctx.IsSet("seed1"),
	}
	if err := algo.checkSeeds(s); err != nil {
		return nil, err
	}

	f, err := lookupFormat(ctx.String("format"))
	if err != nil {
		return nil, err
	}
	if f.bits != 0 && f.bits != algo.bits {
		return nil, fmt.Errorf("format %q requires a %d bit algorithm, %q produces %d bits", f.name, f.bits, algo.name, algo.bits)
	}

	cfg := &config{algo: algo, seeds: s, format: f}
	if name := ctx.String("decompress"); name != "" {
		if cfg.codec, err = codecs.Lookup(name); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func run(ctx *cli.Context, stdin io.Reader, stdout io.Writer) error {
	debug.Toggle(ctx.Bool("debug"))
	debug.Do(func() {
		pdebugf("cityhash %s, crc32 instructions available: %t", version, cityhash.CRCEnabled())
	})

	cfg, err := parseConfig(ctx)
	if err != nil {
		return err
	}

	if path := ctx.String("cpu-profile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				perrorf("could not close CPU profile: %s", err)
			}
		}()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		pdebugf("started CPU profile to %s", path)
		defer pprof.StopCPUProfile()
	}

	names := []string(ctx.Args())
	if len(names) == 0 {
		names = []string{stdinName}
	}

	groups := hashprobe.NewTable(len(names), hashprobe.DefaultMaxLoad)
	results := make([]result, 0, len(names))
	// Decoded inputs share a buffer; only their fingerprints outlive an
	// iteration.
	var scratch []byte
	for _, name := range names {
		data, err := readInput(name, stdin, cfg.codec, scratch)
		if err != nil {
			return err
		}
		if cfg.codec != nil {
			scratch = data
		}
		sum := cfg.algo.sum(data, cfg.seeds)
		group := [1]int32{}
		groups.ProbeBytes([][]byte{data}, group[:])
		pdebugf("%s: %d bytes, %s=%s, group=%d", name, len(data), cfg.algo.name, sum, group[0])
		results = append(results, result{
			Name:      name,
			Algorithm: cfg.algo.name,
			Size:      len(data),
			Group:     group[0],
			Sum:       sum,
		})
	}

	return cfg.format.write(stdout, results)
}

// readInput loads the content of the named input. When a codec is set, the
// raw bytes are decoded into dst, which is reused if it has enough capacity.
func readInput(name string, stdin io.Reader, codec compress.Codec, dst []byte) ([]byte, error) {
	var r io.Reader = stdin

	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("could not open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: read error: %w", name, err)
	}
	if codec == nil {
		return raw, nil
	}

	data, err := codec.Decode(dst[:0], raw)
	if err != nil {
		return nil, fmt.Errorf("%s: could not decode %s input: %w", name, codec, err)
	}
	return data, nil
}
