/*
DESCRIPTION
  headless.go provides Headless, a Sink that logs scene status and reads
  operator commands as lines of text.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package display

import (
	"bufio"
	"io"
	"strings"

	"github.com/ausocean/utils/logging"
)

// Size of the command buffer; further commands block the reader.
const cmdBufSize = 8

// Headless is a Sink without a window. Status changes are logged and commands
// are read from lines of r, e.g. stdin. A line is either a key such as "s" or
// a command name such as "lock".
type Headless struct {
	log    logging.Logger
	cmds   chan Command
	status string
	boxes  int
}

// NewHeadless returns a Headless sink reading commands from r. Reading stops
// at the end of r or on a read error.
func NewHeadless(r io.Reader, l logging.Logger) *Headless {
	h := &Headless{log: l, cmds: make(chan Command, cmdBufSize)}
	go h.read(r)
	return h
}

func (h *Headless) read(r io.Reader) {
	s := bufio.NewScanner(r)
	for s.Scan() {
		c := ParseLine(s.Text())
		if c == None {
			continue
		}
		h.cmds <- c
	}
	if err := s.Err(); err != nil {
		h.log.Warning(pkg+"stopped reading commands", "error", err)
	}
}

// ParseLine returns the command named by line, matching either a command
// name or a single key.
func ParseLine(line string) Command {
	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "":
		return None
	case Lock.String():
		return Lock
	case Reset.String():
		return Reset
	case Quit.String(), "exit":
		return Quit
	}
	if len(line) == 1 {
		return ParseKey(int(line[0]))
	}
	return None
}

// Show logs the scene status when it or the number of boxes changes.
func (h *Headless) Show(s Scene) error {
	if s.Status == h.status && len(s.Boxes) == h.boxes {
		return nil
	}
	h.status, h.boxes = s.Status, len(s.Boxes)
	h.log.Info(pkg+"status", "status", s.Status, "boxes", len(s.Boxes), "locked", s.Locked)
	return nil
}

// Poll implements Sink.
func (h *Headless) Poll() Command {
	select {
	case c := <-h.cmds:
		return c
	default:
		return None
	}
}

// Close implements Sink. The reader is not closed.
func (h *Headless) Close() error { return nil }
