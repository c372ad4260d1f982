// Copyright 2025 go-highway Authors
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

// Command modeldraft rewrites the source of a real intrinsic implementation
// into a best-effort draft model over the abstraction layer.
//
// Usage:
//
//	modeldraft intrinsic.go                      # draft to stdout
//	modeldraft -o draft.go intrinsic.go          # draft to file
//	modeldraft --rules extra.yaml intrinsic.go   # extend the rewrite table
//
// The draft strips build constraints and tool directives, keeps doc
// comments, flattens pointer-reinterpretation through unsafe into plain
// conversion drafts, and rewrites recognized primitive calls to abstraction
// layer calls. The output is a starting point: lane types and vector shapes
// need manual refinement before the model compiles.
//
// If the input does not parse, modeldraft fails without writing any output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outPath   string
	rulesPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "modeldraft <file.go>",
	Short:        "Draft an abstraction-layer model from a real intrinsic's source",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rewrites, err := MergedRules(rulesPath)
		if err != nil {
			logger.Error("Failed to load rewrite rules", zap.String("rules", rulesPath), zap.Error(err))
			return err
		}

		src, err := os.ReadFile(args[0])
		if err != nil {
			logger.Error("Failed to read input", zap.String("file", args[0]), zap.Error(err))
			return err
		}

		out, err := Draft(args[0], src, rewrites)
		if err != nil {
			logger.Error("Translation failed, no output written", zap.String("file", args[0]), zap.Error(err))
			return err
		}

		if outPath == "" {
			fmt.Print(string(out))
			return nil
		}
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			logger.Error("Failed to write draft", zap.String("output", outPath), zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (default: stdout)")
	rootCmd.Flags().StringVar(&rulesPath, "rules", "", "YAML file of extra call rewrites (name: replacement)")
}

func main() {
	logger, _ = zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
