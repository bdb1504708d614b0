package ragu

import (
	"fmt"

	"github.com/alxiong/ragu/accum"
)

// Compress reduces an uncompressed instance to its succinct form. The
// reduction is expensive; it is where the verification deferred by every
// Fuse along the way is actually paid. Compress fails only on an internal
// fault: a malformed instance compresses successfully into an instance
// that fails Verify.
func (app *Application) Compress(in Instance) (Instance, error) {
	if in.Mode() != accum.Uncompressed {
		return Instance{}, fmt.Errorf("%w: compress", ErrCompressedInstance)
	}
	acc := in.acc
	if acc == nil {
		acc = app.scheme.Trivial()
	}
	compressed, err := app.scheme.Compress(acc)
	if err != nil {
		return Instance{}, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	app.log.Debug().Uint64("suffix", uint64(in.suffix)).Msg("compressed")
	return Instance{suffix: in.suffix, output: in.Output(), acc: compressed}, nil
}

// Decompress reconstitutes accumulation-mode data from a compressed
// instance so that fusion can resume on top of it. Suffix and output are
// unchanged.
func (app *Application) Decompress(in Instance) (Instance, error) {
	if in.Mode() != accum.Compressed {
		return Instance{}, fmt.Errorf("%w: decompress", ErrUncompressedInstance)
	}
	acc, err := app.scheme.Decompress(in.acc)
	if err != nil {
		return Instance{}, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return Instance{suffix: in.suffix, output: in.Output(), acc: acc}, nil
}

// Rerandomize replaces an uncompressed instance's accumulator with one
// computationally indistinguishable from a freshly produced accumulator
// for the same state type and encoding, severing witness-derived
// correlations. Apply it before handing an uncompressed instance to a
// party that should learn nothing beyond the certified output.
func (app *Application) Rerandomize(in Instance) (Instance, error) {
	if in.Mode() != accum.Uncompressed {
		return Instance{}, fmt.Errorf("%w: rerandomize", ErrCompressedInstance)
	}
	acc := in.acc
	if acc == nil {
		acc = app.scheme.Trivial()
	}
	rerandomized, err := app.scheme.Rerandomize(acc)
	if err != nil {
		return Instance{}, fmt.Errorf("rerandomize: %v", err)
	}
	return Instance{suffix: in.suffix, output: in.Output(), acc: rerandomized}, nil
}
