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
	"strconv"

	"github.com/0xsoniclabs/fallible/fallible"
	"github.com/urfave/cli/v2"
)

var Divide = cli.Command{
	Action:    divide,
	Name:      "divide",
	Usage:     "divides two numbers and prints the outcome",
	ArgsUsage: "<dividend> <divisor>",
}

func divide(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected a dividend and a divisor")
	}
	dividend, err := strconv.ParseFloat(context.Args().Get(0), 64)
	if err != nil {
		return fmt.Errorf("invalid dividend: %w", err)
	}
	divisor, err := strconv.ParseFloat(context.Args().Get(1), 64)
	if err != nil {
		return fmt.Errorf("invalid divisor: %w", err)
	}

	// a failed division is an outcome to be printed, not a failure of the command
	_, err = fmt.Fprintln(context.App.Writer, fallible.SafeDivision(dividend, divisor))
	return err
}
