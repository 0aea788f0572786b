// Copyright (c) 2025 Visvasity LLC

// Command slotgen generates slots.ThreeValues implementations for types with
// three numeric slots.
//
// For example, given this snippet,
//
//	package shapes
//
//	type Celsius float64
//
//	type Vec3 [3]float32
//
//	type Reading struct {
//		Temp    Celsius       `slot:"second"`
//		Elapsed time.Duration `slot:"first"`
//		Count   uint16        `slot:"third"`
//	}
//
// running this command
//
//	slotgen --inpkg ./shapes Vec3 Reading
//
// will create files vec3.slotgen.go and reading.slotgen.go in the ./shapes
// directory, each declaring the following methods on the pointer type:
//
//	func (v *Reading) Get(s slots.Slot) float64
//	func (v *Reading) Set(s slots.Slot, x float64)
//	func (v *Reading) Reset()
//	func (v *Reading) Sum() float64
//	func (v *Reading) IsDefault() bool
//
// A struct type must have exactly three integer or float fields and an array
// type must have exactly three integer or float elements. Struct fields map to
// slots in declaration order unless every field carries a `slot` tag. Set
// narrows the float64 input to the field type with slotutil.Narrow, so integer
// and float32 slots do not round-trip every value.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	inPkg   string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slotgen [flags] types...",
	Short: "Generate three slot accessors for numeric struct and array types",
	Long: `slotgen generates Get, Set, Reset, Sum and IsDefault methods which make the
named types implement the slots.ThreeValues interface. Types must belong to a
single package; generated files are written into that package's directory.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.Named("slotgen")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&inPkg, "inpkg", ".", "package path/name for the type definitions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "slotgen:", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	pkg, err := loadPackage(inPkg)
	if err != nil {
		return err
	}

	g, err := newGenerator(logger, pkg)
	if err != nil {
		return err
	}
	for _, t := range args {
		if err := g.generate(t); err != nil {
			return err
		}
	}

	outDir, err := g.Dir()
	if err != nil {
		return err
	}
	for _, typ := range g.GetTypes() {
		src := g.GetSource(typ)

		outputName := filepath.Join(outDir, g.FileName(typ))
		if err := os.WriteFile(outputName, src, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		logger.Info("generated", zap.String("type", typ), zap.String("file", outputName))
	}
	return nil
}
