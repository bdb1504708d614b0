package ragu

import "errors"

var (
	// ErrTypeMismatch reports a predecessor whose state type does not match
	// the step's declared input type. This is a call-site bug; the fusion
	// is never attempted.
	ErrTypeMismatch = errors.New("predecessor state type does not match step declaration")

	// ErrInvalidWitness reports that the supplied witness does not justify
	// the claimed transition. Recoverable by supplying a corrected witness.
	ErrInvalidWitness = errors.New("witness does not justify the transition")

	// ErrCompression reports an internal fault of the compression or
	// decompression procedure. It never indicates a malformed input; those
	// surface as verification failures instead.
	ErrCompression = errors.New("compression fault")

	// ErrCompressedInstance reports a compressed instance passed to an
	// operation that requires accumulation mode (Fuse, Compress,
	// Rerandomize).
	ErrCompressedInstance = errors.New("operation requires an uncompressed instance")

	// ErrUncompressedInstance reports an uncompressed instance passed to
	// Decompress.
	ErrUncompressedInstance = errors.New("operation requires a compressed instance")

	// ErrUnknownStep reports a fusion naming a step that was never
	// registered with the application.
	ErrUnknownStep = errors.New("step is not registered")

	// Registration errors.
	ErrDuplicateStep   = errors.New("step index already registered")
	ErrDuplicateSuffix = errors.New("header suffix already registered")
	ErrReservedSuffix  = errors.New("header suffix is reserved")
)
