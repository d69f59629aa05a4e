/*
NAME
  lex_test.go

DESCRIPTION
  lex_test.go provides testing for the Scanner in lex.go.

AUTHOR
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package jpeg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"reflect"
	"testing"
)

var jpegTests = []struct {
	name  string
	input []byte
	want  [][]byte
	err   error
}{
	{
		name: "empty",
		err:  io.EOF,
	},
	{
		name:  "null",
		input: []byte{0xff, 0xd8, 0xff, 0xd9},
		want:  [][]byte{{0xff, 0xd8, 0xff, 0xd9}},
		err:   io.EOF,
	},
	{
		name: "full",
		input: []byte{
			0xff, 0xd8, 'f', 'u', 'l', 'l', 0xff, 0xd9,
			0xff, 0xd8, 'f', 'r', 'a', 'm', 'e', 0xff, 0xd9,
			0xff, 0xd8, 'w', 'i', 't', 'h', 0xff, 0xd9,
			0xff, 0xd8, 'l', 'e', 'n', 'g', 't', 'h', 0xff, 0xd9,
			0xff, 0xd8, 's', 'p', 'r', 'e', 'a', 'd', 0xff, 0xd9,
		},
		want: [][]byte{
			{0xff, 0xd8, 'f', 'u', 'l', 'l', 0xff, 0xd9},
			{0xff, 0xd8, 'f', 'r', 'a', 'm', 'e', 0xff, 0xd9},
			{0xff, 0xd8, 'w', 'i', 't', 'h', 0xff, 0xd9},
			{0xff, 0xd8, 'l', 'e', 'n', 'g', 't', 'h', 0xff, 0xd9},
			{0xff, 0xd8, 's', 'p', 'r', 'e', 'a', 'd', 0xff, 0xd9},
		},
		err: io.EOF,
	},
	{
		name: "multipart",
		input: []byte{
			'-', '-', 'b', '\r', '\n', 0xff, 0xd8, 'a', 0xff, 0xd9, '\r', '\n',
			'-', '-', 'b', '\r', '\n', 0xff, 0xd8, 'b', 0xff, 0xd9, '\r', '\n',
		},
		want: [][]byte{
			{0xff, 0xd8, 'a', 0xff, 0xd9},
			{0xff, 0xd8, 'b', 0xff, 0xd9},
		},
		err: io.EOF,
	},
	{
		name: "nested thumbnail",
		input: []byte{
			0xff, 0xd8, 0xff, 0xd8, 't', 0xff, 0xd9, 'm', 0xff, 0xd9,
		},
		want: [][]byte{
			{0xff, 0xd8, 0xff, 0xd8, 't', 0xff, 0xd9, 'm', 0xff, 0xd9},
		},
		err: io.EOF,
	},
	{
		name: "truncated",
		input: []byte{
			0xff, 0xd8, 'o', 'k', 0xff, 0xd9,
			0xff, 0xd8, 'c', 'u', 't',
		},
		want: [][]byte{
			{0xff, 0xd8, 'o', 'k', 0xff, 0xd9},
		},
		err: io.ErrUnexpectedEOF,
	},
}

func TestScanner(t *testing.T) {
	for _, test := range jpegTests {
		s := NewScanner(bytes.NewReader(test.input))
		var got [][]byte
		var err error
		for {
			var b []byte
			b, err = s.Next()
			if err != nil {
				break
			}
			got = append(got, append([]byte(nil), b...))
		}
		if fmt.Sprint(err) != fmt.Sprint(test.err) {
			t.Errorf("unexpected error for %q: got:%v want:%v", test.name, err, test.err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("unexpected result for %q:\ngot :%#v\nwant:%#v", test.name, got, test.want)
		}
	}
}

func TestDecode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for i := range src.Pix {
		src.Pix[i] = 0x80
	}
	src.Set(0, 0, color.White)

	var buf bytes.Buffer
	for i := 0; i < 2; i++ {
		if err := jpeg.Encode(&buf, src, nil); err != nil {
			t.Fatalf("could not encode test image: %v", err)
		}
	}

	s := NewScanner(&buf)
	for i := 0; i < 2; i++ {
		b, err := s.Next()
		if err != nil {
			t.Fatalf("did not expect error for frame %d: %v", i, err)
		}
		img, err := Decode(b)
		if err != nil {
			t.Fatalf("could not decode frame %d: %v", i, err)
		}
		if img.Bounds() != src.Bounds() {
			t.Errorf("unexpected bounds for frame %d: %v", i, img.Bounds())
		}
	}
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last frame, got %v", err)
	}

	if _, err := Decode([]byte{0xff, 0xd8, 0xff, 0xd9}); err == nil {
		t.Error("expected error decoding empty image")
	}
}
