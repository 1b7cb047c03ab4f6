// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/fallible/fallible"
	"github.com/urfave/cli/v2"
)

var (
	existingFileFlag = cli.StringFlag{
		Name:  "existing",
		Usage: "a readable text file expected to be read successfully",
		Value: "go.mod",
	}
	missingFileFlag = cli.StringFlag{
		Name:  "missing",
		Usage: "a path expected to fail to open",
		Value: "non-existent-file.txt",
	}
)

var Demo = cli.Command{
	Action: demo,
	Name:   "demo",
	Usage:  "runs sample divisions and file reads, checking their outcomes",
	Flags: []cli.Flag{
		&existingFileFlag,
		&missingFileFlag,
	},
}

func demo(context *cli.Context) error {
	out := context.App.Writer
	for _, operands := range [][2]float64{{9, 3}, {4, 0}, {0, 2}} {
		fmt.Fprintf(out, "%v / %v = %v\n", operands[0], operands[1],
			fallible.SafeDivision(operands[0], operands[1]))
	}

	existing := context.String(existingFileFlag.Name)
	missing := context.String(missingFileFlag.Name)
	return errors.Join(
		checkReadable(existing),
		checkOpenFails(missing),
	)
}

func checkReadable(path string) error {
	if _, err := fallible.ReadFileContents(path); err != nil {
		return fmt.Errorf("expected %s to be readable: %w", path, err)
	}
	return nil
}

func checkOpenFails(path string) error {
	_, err := fallible.ReadFileContents(path)
	if err == nil {
		return fmt.Errorf("expected reading %s to fail", path)
	}
	if !errors.Is(err, fallible.ErrOpenFailed) {
		return fmt.Errorf("expected open of %s to fail, got: %w", path, err)
	}
	return nil
}
