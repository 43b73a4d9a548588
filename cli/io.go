// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/chessboard/base/iox/tomlx"
	"github.com/mitchellh/go-homedir"
)

// includer is implemented by config structs that support
// including other config files.
type includer interface {
	IncludesPtr() *[]string
}

// includesOnly is used to read just the includes of a config file.
type includesOnly struct {
	Includes []string
}

// OpenWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// Is equivalent to opening the file directly if there are no Includes.
// It returns an error if any of the include files cannot be found.
// If the config struct implements IncludesPtr, its Includes are set
// to the resolved include file paths, in load order.
func OpenWithIncludes(opts *Options, cfg any, file string) error {
	files := FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("OpenWithIncludes: no files found for %q", file)
	}
	main := files[0]
	incs, err := includeStack(opts, main, map[string]bool{main: true})
	if err != nil {
		return err
	}
	for _, inc := range incs {
		if err := tomlx.Open(cfg, inc); err != nil {
			return fmt.Errorf("OpenWithIncludes: %s: %w", inc, err)
		}
	}
	if err := tomlx.Open(cfg, main); err != nil {
		return fmt.Errorf("OpenWithIncludes: %s: %w", main, err)
	}
	if incfg, ok := cfg.(includer); ok {
		*incfg.IncludesPtr() = incs
	}
	return nil
}

// includeStack returns the files included by the given file, directly
// or indirectly, ordered so that every file comes after the files it
// includes. Each file may only be included once.
func includeStack(opts *Options, file string, seen map[string]bool) ([]string, error) {
	var inc includesOnly
	if err := tomlx.Open(&inc, file); err != nil {
		return nil, fmt.Errorf("OpenWithIncludes: %s: %w", file, err)
	}
	paths := append([]string{filepath.Dir(file)}, opts.IncludePaths...)
	var stack []string
	for _, name := range inc.Includes {
		found := FindFilesOnPaths(paths, name)
		if len(found) == 0 {
			return nil, fmt.Errorf("OpenWithIncludes: include %q in %s not found", name, file)
		}
		f := found[0]
		if seen[f] {
			return nil, fmt.Errorf("OpenWithIncludes: %s is included more than once", f)
		}
		seen[f] = true
		sub, err := includeStack(opts, f, seen)
		if err != nil {
			return nil, err
		}
		stack = append(stack, sub...)
		stack = append(stack, f)
	}
	return stack, nil
}

// FindFilesOnPaths attempts to locate given file on given list of paths,
// returning a list of full paths where the file was found to exist.
// A leading ~ in the file name is expanded to the home directory, and
// absolute file names are returned as is if they exist.
func FindFilesOnPaths(paths []string, file string) []string {
	file, err := homedir.Expand(file)
	if err != nil {
		return nil
	}
	if filepath.IsAbs(file) {
		if fileExists(file) {
			return []string{filepath.Clean(file)}
		}
		return nil
	}
	var res []string
	for _, path := range paths {
		fp := filepath.Join(path, file)
		if fileExists(fp) {
			res = append(res, fp)
		}
	}
	return res
}

func fileExists(fp string) bool {
	info, err := os.Stat(fp)
	return err == nil && !info.IsDir()
}
