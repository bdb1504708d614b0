package ragu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alxiong/ragu/accum"
)

func TestCompressVerifyAgreesWithUncompressed(t *testing.T) {
	app := newCounterApp(t)

	five, err := app.Seed(incrementStep{}, uint64(5))
	require.NoError(t, err)
	compressed, err := app.Compress(five)
	require.NoError(t, err)

	require.Equal(t, accum.Compressed, compressed.Mode())
	require.Equal(t, five.Suffix(), compressed.Suffix())
	require.Equal(t, five.Output(), compressed.Output())
	require.Equal(t, app.Verify(five), app.Verify(compressed))
}

func TestDecompressResumesFusion(t *testing.T) {
	app := newCounterApp(t)

	five, err := app.Seed(incrementStep{}, uint64(5))
	require.NoError(t, err)
	compressed, err := app.Compress(five)
	require.NoError(t, err)
	restored, err := app.Decompress(compressed)
	require.NoError(t, err)

	require.Equal(t, accum.Uncompressed, restored.Mode())
	require.Equal(t, five.Suffix(), restored.Suffix())
	require.Equal(t, five.Output(), restored.Output())
	require.True(t, app.Verify(restored))

	ten, err := app.Fuse(five, restored, addStep{}, nil)
	require.NoError(t, err)
	require.Equal(t, app.Field().FromInterface(uint64(10)), ten.Output()[0])

	final, err := app.Compress(ten)
	require.NoError(t, err)
	require.True(t, app.Verify(final))
}

func TestTransformModeChecks(t *testing.T) {
	app := newCounterApp(t)

	five, err := app.Seed(incrementStep{}, uint64(5))
	require.NoError(t, err)
	compressed, err := app.Compress(five)
	require.NoError(t, err)

	_, err = app.Compress(compressed)
	require.ErrorIs(t, err, ErrCompressedInstance)
	_, err = app.Rerandomize(compressed)
	require.ErrorIs(t, err, ErrCompressedInstance)
	_, err = app.Decompress(five)
	require.ErrorIs(t, err, ErrUncompressedInstance)
}

func TestRerandomizePreservesSemantics(t *testing.T) {
	app := newCounterApp(t)

	five, err := app.Seed(incrementStep{}, uint64(5))
	require.NoError(t, err)
	ten, err := app.Fuse(five, five, addStep{}, nil)
	require.NoError(t, err)

	blinded, err := app.Rerandomize(ten)
	require.NoError(t, err)
	require.Equal(t, ten.Suffix(), blinded.Suffix())
	require.Equal(t, ten.Output(), blinded.Output())
	require.Equal(t, accum.Uncompressed, blinded.Mode())
	require.True(t, app.Verify(blinded))

	// Rerandomized instances keep composing and compressing.
	twenty, err := app.Fuse(blinded, ten, addStep{}, nil)
	require.NoError(t, err)
	compressed, err := app.Compress(twenty)
	require.NoError(t, err)
	require.True(t, app.Verify(compressed))
}

func TestCompressTrivial(t *testing.T) {
	app := newCounterApp(t)

	compressed, err := app.Compress(app.Trivial())
	require.NoError(t, err)
	require.True(t, app.Verify(compressed))
}
