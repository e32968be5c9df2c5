// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/avltree/version"
	"github.com/bitmark-inc/logger"
)

// setup command handler
//
// commands that do not need the configuration file, returns false if
// the command was not recognised
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version.Version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--progress] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")
		fmt.Printf("  run                                 - configured scripts followed by the random workload\n")
		fmt.Printf("                                        same as no arguments\n\n")
		fmt.Printf("  script FILE...             (s)      - only run the given scripts\n\n")
		fmt.Printf("  random                     (r)      - only run the random workload\n\n")

	default:
		return false
	}
	return true
}

// options that affect a run
type runOptions struct {
	verbose  bool
	progress bool
	out      io.Writer
}

// command handler for everything that needs the configuration
func processRunCommand(log *logger.L, arguments []string, options *Configuration, ro runOptions) (*statistics, error) {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	stats := &statistics{}
	observer := newRotationObserver(stats, options.Trace)

	scripts := options.Scripts
	random := true

	switch command {
	case "run":
	case "script", "s":
		scripts = make([]string, 0, len(arguments))
		for _, a := range arguments {
			scripts = append(scripts, util.EnsureAbsolute(options.DataDirectory, a))
		}
		random = false
	case "random", "r":
		scripts = nil
	default:
		return nil, fmt.Errorf("no such command: %q", command)
	}

	slog := logger.New("script")
	for _, fileName := range scripts {
		s, err := loadScript(fileName)
		if nil != err {
			return stats, err
		}
		for run := 1; run <= options.Repeat; run += 1 {
			tree := avl.New()
			tree.SetObserver(observer)
			err := runScript(slog, s, tree, stats, ro.out)
			if ro.verbose {
				util.LogInfo(slog, util.CoGreen, fmt.Sprintf("script: %s  run: %d  keys: %d", s.name, run, tree.Count()))
			}
			if options.Print {
				tree.Print(ro.out, true)
			}
			tree.Clear()
			if nil != err {
				util.LogError(slog, util.CoRed, fmt.Sprintf("script: %s  run: %d  failed", s.name, run))
				return stats, fmt.Errorf("script: %s  run: %d  error: %w", s.name, run, err)
			}
		}
	}

	if random {
		wlog := logger.New("workload")
		tree := avl.New()
		tree.SetObserver(observer)
		defer tree.Clear()

		var bar *progressbar.ProgressBar
		if ro.progress && 0 != options.Workload.Operations {
			bar = newProgressBar(options.Workload)
		}
		if err := runWorkload(wlog, options.Workload, tree, stats, bar); nil != err {
			return stats, err
		}
		if options.Print {
			tree.Print(ro.out, true)
		}
	}

	return stats, nil
}
