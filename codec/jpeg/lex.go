/*
NAME
  lex.go

DESCRIPTION
  lex.go provides a Scanner to extract separate JPEG images from a JPEG stream.
  This could either be a series of discrete JPEG images, or an MJPEG stream.

AUTHOR
  Dan Kortschak <dan@ausocean.org>
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package jpeg provides framing and decoding of JPEG image streams.
package jpeg

import (
	"bufio"
	"bytes"
	"image"
	"image/jpeg"
	"io"

	"github.com/pkg/errors"
)

// JPEG marker codes used for framing.
const (
	codeMarker = 0xff
	codeSOI    = 0xd8 // Start of image.
	codeEOI    = 0xd9 // End of image.
)

const maxJPEG = 16 << 20 // Frames larger than this are treated as corrupt.

// ErrTooLarge is returned by Next when a frame exceeds the size limit.
var ErrTooLarge = errors.New("jpeg: frame too large")

// Scanner reads successive JPEG images from a stream. Bytes between images,
// such as multipart boundaries, are skipped.
type Scanner struct {
	r   *bufio.Reader
	buf []byte
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 64<<10)}
}

// Next returns the next complete JPEG image in the stream. The returned slice
// is only valid until the following call to Next. Next returns io.EOF if the
// stream ends between images and io.ErrUnexpectedEOF if it ends inside one.
func (s *Scanner) Next() ([]byte, error) {
	err := s.seekSOI()
	if err != nil {
		return nil, err
	}

	s.buf = append(s.buf[:0], codeMarker, codeSOI)
	nImg := 1
	var last byte = codeSOI
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		s.buf = append(s.buf, b)
		if len(s.buf) > maxJPEG {
			return nil, ErrTooLarge
		}

		if last == codeMarker && b == codeSOI {
			nImg++
		}
		if last == codeMarker && b == codeEOI {
			nImg--
		}
		if nImg == 0 {
			return s.buf, nil
		}
		last = b
	}
}

// seekSOI discards input up to and including the next start of image marker.
func (s *Scanner) seekSOI() error {
	var last byte
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if last == codeMarker && b == codeSOI {
			return nil
		}
		last = b
	}
}

// Decode decodes a JPEG image held in b.
func Decode(b []byte) (image.Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode JPEG")
	}
	return img, nil
}
