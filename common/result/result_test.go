// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/0xsoniclabs/fallible/common"
	"github.com/stretchr/testify/require"
)

const errInjected = common.ConstError("injected error")

func TestResult_Ok_HoldsValueAndNoError(t *testing.T) {
	require := require.New(t)
	r := Ok(42)

	value, err := r.Get()
	require.NoError(err)
	require.Equal(42, value)
	require.True(r.IsOk())
	require.False(r.IsErr())
}

func TestResult_Err_HoldsErrorAndNoValue(t *testing.T) {
	require := require.New(t)
	r := Err[int](errInjected)

	value, err := r.Get()
	require.ErrorIs(err, errInjected)
	require.Zero(value)
	require.False(r.IsOk())
	require.True(r.IsErr())
}

func TestResult_Err_RejectsNilError(t *testing.T) {
	require.Panics(t, func() {
		Err[int](nil)
	})
}

func TestResult_From_DiscardsValueOnError(t *testing.T) {
	require := require.New(t)

	r := From(7, errInjected)
	value, err := r.Get()
	require.ErrorIs(err, errInjected)
	require.Zero(value)
	require.Equal(Err[int](errInjected), r)

	require.Equal(Ok(7), From(7, nil))
}

func TestResult_Unwrap_PanicsWithTheError(t *testing.T) {
	require := require.New(t)
	require.Equal("abc", Ok("abc").Unwrap())
	require.PanicsWithError(errInjected.Error(), func() {
		Err[string](errInjected).Unwrap()
	})
}

func TestResult_Expect_PrefixesMessage(t *testing.T) {
	require := require.New(t)
	require.Equal(1.5, Ok(1.5).Expect("unused"))
	require.PanicsWithError("loading config: injected error", func() {
		Err[float64](errInjected).Expect("loading config")
	})
}

func TestResult_Expect_KeepsErrorIdentity(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, errInjected))
	}()
	Err[int](errInjected).Expect("context")
}

func TestResult_UnwrapOr_ReturnsFallbackOnError(t *testing.T) {
	require := require.New(t)
	require.Equal(3, Ok(3).UnwrapOr(9))
	require.Equal(9, Err[int](errInjected).UnwrapOr(9))
}

func TestResult_String_ShowsVariant(t *testing.T) {
	require := require.New(t)
	require.Equal("Ok(3)", Ok(3.0).String())
	require.Equal("Err(injected error)", Err[float64](errInjected).String())
	require.Equal("Ok(hello)", fmt.Sprint(Ok("hello")))
}

func TestResult_CanBeTransportedThroughChannels(t *testing.T) {
	require := require.New(t)
	results := make(chan Result[int], 2)
	results <- Ok(1)
	results <- Err[int](errInjected)
	close(results)

	var values []int
	var errs []error
	for r := range results {
		value, err := r.Get()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, value)
	}
	require.Equal([]int{1}, values)
	require.Equal([]error{errInjected}, errs)
}
