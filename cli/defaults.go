// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli loads configuration structs from `default:` struct tags
// and TOML config files, for use by command line tools.
package cli

import (
	"cogentcore.org/chessboard/base/errors"
	"cogentcore.org/chessboard/base/reflectx"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// Options contains the options that control how config files are found.
type Options struct {

	// AppName is the internal name of the app (typically in kebab-case).
	AppName string

	// AppAbout is the description of the app.
	AppAbout string

	// IncludePaths is a list of directories to try for finding config files
	// specified on the command line or in the Includes field of a config
	// file. Includes are also looked up relative to the including file.
	IncludePaths []string
}

// DefaultOptions returns a new [Options] value with standard
// default values, based on the given app name and about text.
func DefaultOptions(appName, appAbout string) *Options {
	return &Options{
		AppName:      appName,
		AppAbout:     appAbout,
		IncludePaths: []string{".", "configs"},
	}
}

// Load sets the given config object from its `default:` struct tags
// and then, if file is non-empty, from that TOML config file and
// any files it includes (see [OpenWithIncludes]).
func Load(opts *Options, cfg any, file string) error {
	if err := SetFromDefaults(cfg); err != nil {
		return err
	}
	if file == "" {
		return nil
	}
	return OpenWithIncludes(opts, cfg, file)
}
