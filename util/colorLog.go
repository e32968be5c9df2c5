// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import "github.com/bitmark-inc/logger"

// ANSI colour codes for highlighting log lines
const (
	CoReset  = "\x1b[0m"
	CoBright = "\x1b[1m"

	CoRed     = "\x1b[31m"
	CoGreen   = "\x1b[32m"
	CoYellow  = "\x1b[33m"
	CoBlue    = "\x1b[34m"
	CoMagenta = "\x1b[35m"
	CoCyan    = "\x1b[36m"
)

// colourise a message, a blank colour leaves it unchanged
func colour(color string, message string) string {
	if "" == color {
		return message
	}
	return color + message + CoReset
}

//LogDebug print message in Debug level with assigned color
func LogDebug(log *logger.L, color string, message string) {
	log.Debug(colour(color, message))
}

//LogInfo print message in Info level with assigned color
func LogInfo(log *logger.L, color string, message string) {
	log.Info(colour(color, message))
}

//LogWarn print message in Warn level with assigned color
func LogWarn(log *logger.L, color string, message string) {
	log.Warn(colour(color, message))
}

//LogError print message in Error level with assigned color
func LogError(log *logger.L, color string, message string) {
	log.Error(colour(color, message))
}
