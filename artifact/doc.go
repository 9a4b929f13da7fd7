// Package artifact implements the binary container used to persist opaque Go values.
//
// An artifact file is a fixed six byte header followed by a msgpack payload
// (github.com/vmihailenco/msgpack/v5), optionally compressed with zstd
// (github.com/klauspost/compress/zstd):
//
//	+-------+---------+-------------+-----------------+
//	| magic | version | compression | payload ...     |
//	| HJFA  | 1 byte  | 1 byte      | msgpack (+zstd) |
//	+-------+---------+-------------+-----------------+
//
// Decoding rejects files without the magic, files written by a newer format
// version and files using an unknown compression. The format is not meant to
// be read by other serializers.
//
// Usage:
//
//	var buf bytes.Buffer
//	err := artifact.Encode(&buf, model, artifact.CompressionZstd)
//
//	var restored Model
//	err = artifact.Decode(&buf, &restored)
package artifact
