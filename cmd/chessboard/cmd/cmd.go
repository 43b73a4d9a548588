// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the chessboard tool.
package cmd

import (
	"log/slog"

	"cogentcore.org/chessboard/cli"
	"cogentcore.org/chessboard/config"
	"cogentcore.org/chessboard/generate"
	"cogentcore.org/chessboard/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	appName  = "chessboard"
	appAbout = "Chessboard generates the checkerboard demo scene document for the ray tracer."
)

// app holds the state shared by the commands of one invocation.
type app struct {

	// file is the TOML config file, if any.
	file string

	// flags receives the flag values as they are parsed. Only the
	// flags that were actually set are applied to the loaded config.
	flags config.Config
}

// NewRootCommand returns the chessboard command, which generates the
// scene once, with the watch command as a subcommand.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           appName,
		Short:         "Generate the checkerboard scene document",
		Long:          appAbout,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			return Generate(cmd, cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "config", "c", "", "TOML config file")
	addFlags(pf, &a.flags)

	root.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Regenerate the scene document whenever the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd)
		},
	})
	return root
}

// addFlags adds the flags for the config fields to the given flag set,
// bound to the given config.
func addFlags(fs *pflag.FlagSet, c *config.Config) {
	fs.StringVarP(&c.Output, "output", "o", "-", `destination: - for standard output, a file, or s3://bucket/key`)
	fs.StringVar((*string)(&c.Format), "format", "json", "document format: json or yaml")
	fs.Float32Var(&c.Board.OriginX, "origin-x", -8, "x of the minimum board corner")
	fs.Float32Var(&c.Board.OriginY, "origin-y", 0, "height of the board")
	fs.Float32Var(&c.Board.OriginZ, "origin-z", -8, "z of the minimum board corner")
	fs.Float32Var(&c.Board.Width, "width", 16, "extent of the board along x")
	fs.Float32Var(&c.Board.Length, "length", 16, "extent of the board along z")
	fs.Float32Var(&c.Board.TileSize, "tile-size", 0.5, "edge length of each tile")
	fs.StringVar(&c.S3.Region, "s3-region", "us-east-1", "AWS region for s3:// outputs")
	fs.StringVar(&c.S3.Endpoint, "s3-endpoint", "", "endpoint of an S3-compatible store")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "show info messages")
	fs.BoolVar(&c.VeryVerbose, "vv", false, "show debug messages")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "only show errors")
}

// load returns the config from the `default:` tags, then the config
// file, and then the flags that were set on the command line.
func (a *app) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if err := cli.Load(cli.DefaultOptions(appName, appAbout), cfg, a.file); err != nil {
		return nil, err
	}
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	addFlags(fs, cfg)
	var err error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if err != nil || fs.Lookup(f.Name) == nil {
			return
		}
		err = fs.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return nil, err
	}
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	slog.Debug("loaded config", "file", a.file, "output", cfg.Output, "format", cfg.Format)
	return cfg, nil
}

// Generate writes the scene document for the given config.
func Generate(cmd *cobra.Command, cfg *config.Config) error {
	return generate.Run(cmd.Context(), cfg)
}

func (a *app) watch(cmd *cobra.Command) error {
	if a.file == "" {
		return errNoConfig
	}
	if _, err := a.load(cmd); err != nil {
		return err
	}
	logx.PrintlnInfo("watching", a.file, "(interrupt to stop)")
	return generate.Watch(cmd.Context(), a.file, func() (*config.Config, error) {
		return a.load(cmd)
	})
}
