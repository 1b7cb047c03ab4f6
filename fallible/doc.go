// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package fallible provides operations that report failure as ordinary
// values instead of aborting: a division that rejects a zero divisor and a
// whole-file read that distinguishes open failures from read failures.
//
// Each operation is offered in the conventional Go form returning a
// (value, error) pair and as a result.Result. No operation logs, retries, or
// recovers; failures are surfaced at the first step that produced them.
package fallible
