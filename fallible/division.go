// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fallible

import (
	"github.com/0xsoniclabs/fallible/common"
	"github.com/0xsoniclabs/fallible/common/result"
)

// ErrDivisionByZero is returned by Divide if the divisor is zero.
const ErrDivisionByZero = common.ConstError("division by zero")

// Divide computes dividend / divisor. A divisor equal to 0.0, including -0.0,
// yields ErrDivisionByZero. Any other divisor produces the IEEE-754 quotient,
// which may be infinite for very small divisors.
func Divide(dividend, divisor float64) (float64, error) {
	if divisor == 0.0 {
		return 0, ErrDivisionByZero
	}
	return dividend / divisor, nil
}

// SafeDivision is Divide expressed as a Result.
func SafeDivision(dividend, divisor float64) result.Result[float64] {
	return result.From(Divide(dividend, divisor))
}
