//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces camcheck when built without OpenCV.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// camcheck requires OpenCV; build with -tags withcv.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "camcheck requires OpenCV, build with -tags withcv")
	os.Exit(1)
}
