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
	"fmt"
	"io"

	"github.com/0xsoniclabs/fallible/fallible"
	"github.com/urfave/cli/v2"
)

var Read = cli.Command{
	Action:    read,
	Name:      "read",
	Usage:     "prints the text content of a file",
	ArgsUsage: "<file>",
}

func read(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing file to read")
	}
	path := context.Args().Get(0)

	content, err := fallible.ReadFileContents(path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(context.App.Writer, content)
	return err
}
