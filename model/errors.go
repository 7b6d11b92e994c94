// SPDX-License-Identifier: EPL-2.0

package model

import "errors"

var (
	ErrSampleAccessDisabled = errors.New("sample access is disabled")
	ErrSourceDestroyed      = errors.New("audio source destroyed")
	ErrChannelCountMismatch = errors.New("channel count mismatch")
	ErrPlaneLengthMismatch  = errors.New("sample planes must have equal length")
)
