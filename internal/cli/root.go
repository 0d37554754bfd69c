// Copyright (c) 2026 Palantir Technologies. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the contract-describe command, which parses a declarations file and
// prints the resulting method metadata.
package cli

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/palantir/declarative-go-client/declarative-go-contract/codecs"
	"github.com/palantir/declarative-go-client/declarative-go-contract/declarations"
	"github.com/palantir/declarative-go-client/declarative-go-contract/metadata"
	"github.com/palantir/declarative-go-client/declarative-go-contract/parser"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/spf13/cobra"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

type flags struct {
	configPath string
	output     string
	interfaces []string
	verbose    bool
}

func NewRootCommand() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:          "contract-describe <declarations-file>",
		Short:        "Parse interface declarations and print their method metadata",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, args []string) error {
			level := wlog.WarnLevel
			if f.verbose {
				level = wlog.DebugLevel
			}
			ctx := svc1log.WithLogger(context.Background(), svc1log.New(command.ErrOrStderr(), level))
			return describe(ctx, command, args[0], f)
		},
	}
	root.Flags().StringVar(&f.configPath, "config", "", "path to a parser configuration file")
	root.Flags().StringVarP(&f.output, "output", "o", outputJSON, "output format: json or yaml")
	root.Flags().StringSliceVar(&f.interfaces, "interface", nil, "interfaces to describe (default all)")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log every parsed method to stderr")
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	wlog.SetDefaultLoggerProvider(wlog.NewJSONMarshalLoggerProvider())
	return NewRootCommand().Execute()
}

func describe(ctx context.Context, command *cobra.Command, path string, f flags) error {
	encoder, err := encoderFor(f.output)
	if err != nil {
		return err
	}
	p, err := newParser(f.configPath)
	if err != nil {
		return err
	}
	source, err := declarations.FromFile(path)
	if err != nil {
		return err
	}

	names := f.interfaces
	if len(names) == 0 {
		names = source.Names()
	}
	sort.Strings(names)

	var mds []*metadata.MethodMetadata
	for _, name := range names {
		parsed, err := p.Parse(ctx, source, name)
		if err != nil {
			return err
		}
		mds = append(mds, parsed...)
	}
	return metadata.Encode(command.OutOrStdout(), encoder, mds)
}

func newParser(configPath string) (*parser.Parser, error) {
	if configPath == "" {
		return parser.New()
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, werror.Wrap(err, "failed to read parser configuration", werror.SafeParam("path", configPath))
	}
	cfg, err := parser.LoadConfig(data)
	if err != nil {
		return nil, err
	}
	return parser.NewFromConfig(cfg)
}

func encoderFor(output string) (codecs.Encoder, error) {
	switch strings.ToLower(output) {
	case outputJSON:
		return codecs.JSON, nil
	case outputYAML:
		return codecs.YAML, nil
	default:
		return nil, werror.Error("unsupported output format",
			werror.SafeParam("output", output),
			werror.SafeParam("supported", []string{outputJSON, outputYAML}))
	}
}
