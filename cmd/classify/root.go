package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sentiment-dashboard/internal/bootstrap"
	"sentiment-dashboard/internal/config"
	"sentiment-dashboard/internal/pkg/logger"
	"sentiment-dashboard/internal/service"
	"sentiment-dashboard/pkg/classifier"
	"sentiment-dashboard/pkg/dataset"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var verbose bool

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "classify",
		Short:        "Classify text with the sentiment dashboard's model",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log loading details to stderr")

	root.AddCommand(newTextCmd(), newDatasetCmd())
	return root
}

// loadService runs the same startup path as the server: config, then
// artifacts and dataset, then the service.
func loadService() (service.ISentimentService, error) {
	cfg := config.Load()
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsoleLogger(level)

	res, err := bootstrap.LoadResources(cfg, log)
	if err != nil {
		return nil, err
	}
	return service.NewSentimentService(res.Bundle, res.Dataset, cfg.Dashboard.ResultColumn, log), nil
}

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <text>",
		Short: "Predict the sentiment of one text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			res, err := svc.Predict(context.Background(), args[0])
			if err != nil {
				return err
			}

			paint := colorFor(res.Class)
			paint.Fprintln(cmd.OutOrStdout(), res.Display)
			if !res.Recognized {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: model returned unrecognized label %q\n", res.Label)
			}
			return nil
		},
	}
}

func newDatasetCmd() *cobra.Command {
	var (
		column string
		limit  int
		output string
	)
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Classify every row of a dataset column and emit the result as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			if column == "" {
				column = svc.Dataset().Columns()[0]
			}
			result, err := svc.PredictBulk(context.Background(), column)
			if err != nil {
				return err
			}
			if limit > 0 {
				result = result.Head(limit)
			}

			if output == "" {
				return dataset.Write(cmd.OutOrStdout(), result, ',')
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			comma := ','
			if strings.EqualFold(filepath.Ext(output), ".tsv") {
				comma = '\t'
			}
			if err := dataset.Write(f, result, comma); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✅ Sentiment analysis completed: %d rows written to %s\n", result.NumRows(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&column, "column", "c", "", "text column to classify (default: first column)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "write only the first n rows (0 = all)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func colorFor(class string) *color.Color {
	switch classifier.Class(class) {
	case classifier.ClassPositive:
		return color.New(color.FgGreen, color.Bold)
	case classifier.ClassNeutral:
		return color.New(color.FgBlue, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
