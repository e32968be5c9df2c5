// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultOperations    = 10000
	defaultKeySpace      = 1000
	defaultRemovePercent = 40
	defaultCheckEvery    = 100
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// WorkloadType - parameters of the random insert/remove run
type WorkloadType struct {
	Seed          int64 `gluamapper:"seed" json:"seed"`
	Operations    int   `gluamapper:"operations" json:"operations"`
	KeySpace      int   `gluamapper:"key_space" json:"key_space"`
	RemovePercent int   `gluamapper:"remove_percent" json:"remove_percent"`
	CheckEvery    int   `gluamapper:"check_every" json:"check_every"`
}

// Configuration - everything read from the Lua file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Workload      WorkloadType         `gluamapper:"workload" json:"workload"`
	Scripts       []string             `gluamapper:"scripts" json:"scripts"`
	Repeat        int                  `gluamapper:"repeat" json:"repeat"`
	Trace         bool                 `gluamapper:"trace" json:"trace"`
	Print         bool                 `gluamapper:"print" json:"print"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Repeat:        1,

		Workload: WorkloadType{
			Seed:          1,
			Operations:    defaultOperations,
			KeySpace:      defaultKeySpace,
			RemovePercent: defaultRemovePercent,
			CheckEvery:    defaultCheckEvery,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if err := options.Workload.validate(); nil != err {
		return nil, err
	}
	if options.Repeat < 1 {
		options.Repeat = 1
	}

	// scripts are relative to the data directory
	for i := range options.Scripts {
		options.Scripts[i] = util.EnsureAbsolute(options.DataDirectory, options.Scripts[i])
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// check the workload parameters are usable
func (w WorkloadType) validate() error {
	switch {
	case w.Operations < 0:
		return fmt.Errorf("%w: operations: %d", fault.ErrInvalidWorkload, w.Operations)
	case w.KeySpace < 1:
		return fmt.Errorf("%w: key_space: %d", fault.ErrInvalidWorkload, w.KeySpace)
	case w.RemovePercent < 0 || w.RemovePercent > 100:
		return fmt.Errorf("%w: remove_percent: %d", fault.ErrInvalidWorkload, w.RemovePercent)
	case w.CheckEvery < 0:
		return fmt.Errorf("%w: check_every: %d", fault.ErrInvalidWorkload, w.CheckEvery)
	}
	return nil
}
