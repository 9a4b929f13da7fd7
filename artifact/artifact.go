package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// FormatVersion is the artifact format version written by Encode.
const FormatVersion byte = 1

const (
	magic      = "HJFA"
	headerSize = len(magic) + 2
)

// ErrTruncated is returned when the input ends before a complete header was read.
var ErrTruncated = errors.New("artifact header truncated")

// ErrBadMagic is returned when the input does not start with the artifact magic.
var ErrBadMagic = errors.New("not an artifact file")

// ErrUnsupportedVersion is returned for artifacts written by an incompatible format version.
var ErrUnsupportedVersion = errors.New("unsupported artifact format version")

// ErrUnknownCompression is returned for an unrecognised compression name or header byte.
var ErrUnknownCompression = errors.New("unknown artifact compression")

// Compression selects how the payload is compressed.
type Compression byte

const (
	// CompressionNone stores the msgpack payload as is.
	CompressionNone Compression = 0
	// CompressionZstd compresses the payload with zstd.
	CompressionZstd Compression = 1
)

// ParseCompression maps a configuration value to a Compression.
// An empty name means no compression.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return CompressionNone, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", byte(c))
	}
}

func (c Compression) valid() bool {
	return c == CompressionNone || c == CompressionZstd
}

// Encode serialises v and writes it to w as a complete artifact.
// Nothing is written when v cannot be serialised.
func Encode(w io.Writer, v any, compression Compression) error {
	if !compression.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCompression, compression)
	}

	payload, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	header := make([]byte, 0, headerSize)
	header = append(header, magic...)
	header = append(header, FormatVersion, byte(compression))

	_, err = w.Write(header)
	if err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if compression == CompressionNone {
		_, err = w.Write(payload)
		if err != nil {
			return fmt.Errorf("writing payload: %w", err)
		}

		return nil
	}

	return writeZstd(w, payload)
}

func writeZstd(w io.Writer, payload []byte) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	_, err = enc.Write(payload)
	if err != nil {
		_ = enc.Close()

		return fmt.Errorf("writing compressed payload: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("flushing compressed payload: %w", err)
	}

	return nil
}

// Decode reads an artifact from r and deserialises its payload into target,
// which must be a non-nil pointer.
func Decode(r io.Reader, target any) error {
	compression, err := readHeader(r)
	if err != nil {
		return err
	}

	src := r

	if compression == CompressionZstd {
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return fmt.Errorf("creating zstd reader: %w", err)
		}
		defer dec.Close()

		src = dec
	}

	err = msgpack.NewDecoder(src).Decode(target)
	if err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	return nil
}

func readHeader(r io.Reader) (Compression, error) {
	header := make([]byte, headerSize)

	_, err := io.ReadFull(r, header)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return CompressionNone, ErrTruncated
		}

		return CompressionNone, fmt.Errorf("reading header: %w", err)
	}

	if !bytes.Equal(header[:len(magic)], []byte(magic)) {
		return CompressionNone, ErrBadMagic
	}

	version := header[len(magic)]
	if version != FormatVersion {
		return CompressionNone, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	compression := Compression(header[len(magic)+1])
	if !compression.valid() {
		return CompressionNone, fmt.Errorf("%w: %s", ErrUnknownCompression, compression)
	}

	return compression, nil
}
