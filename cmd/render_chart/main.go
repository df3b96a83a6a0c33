// Package main provides the render_chart command, which draws a chart
// described by a YAML or TOML file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	format     string
	width      int
	height     int
	fontDirs   []string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "render_chart [config.yaml|config.toml]",
		Short:   "Render a chart from a config file",
		Long:    `render_chart lays out a chart's axes and data from a YAML or TOML config and writes it as PNG, JPEG or SVG.`,
		Args:    cobra.ExactArgs(1),
		Version: gochart.Version,
		RunE:    run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: config name with the format's extension)")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: png, jpeg or svg (default: from config)")
	rootCmd.Flags().IntVar(&width, "width", 0, "Override the output width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 0, "Override the output height in pixels")
	rootCmd.Flags().StringSliceVar(&fontDirs, "font-dir", nil, "Extra directory to search for fonts (repeatable)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log layout details to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	gochart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := gochart.LoadConfig(args[0])
	if err != nil {
		return err
	}
	if format != "" {
		cfg.Format = format
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}

	plot, err := cfg.BuildPlot()
	if err != nil {
		return err
	}

	if outputPath == "" {
		base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		ext := strings.ToLower(cfg.Format)
		if ext == "jpg" {
			ext = "jpeg"
		}
		outputPath = base + "." + ext
	}
	opts := cfg.RenderOptions()
	opts.FontDirs = fontDirs

	if strings.EqualFold(cfg.Format, "svg") {
		err = saveSVG(plot, outputPath, opts)
	} else {
		err = gochart.SaveImage(plot.RenderImage(opts), outputPath, opts)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Printf("Rendered %s\n", outputPath)
	return nil
}

// saveSVG writes SVG regardless of the output file's extension.
func saveSVG(plot *gochart.Plot, path string, opts *gochart.RenderOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return plot.WriteSVG(f, opts)
}
