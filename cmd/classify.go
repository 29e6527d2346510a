package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgl-umons/rabbit/config"
	"github.com/sgl-umons/rabbit/internal/log"
	"github.com/sgl-umons/rabbit/internal/model"
	"github.com/sgl-umons/rabbit/internal/output"
	"github.com/sgl-umons/rabbit/internal/pipeline"
	"github.com/sgl-umons/rabbit/internal/predict"
	"github.com/sgl-umons/rabbit/internal/tui"
)

// addClassifyFlags adds the classification flags to the root command.
func addClassifyFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (csv, json, table)")
	cmd.Flags().StringVarP(&opts.Contributor, "contributor", "u", "", "Contributor login (default: inferred from the events)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file path")
	cmd.Flags().StringVar(&opts.ModelPath, "model", "", "Forest model file (default: bundled model)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	cmd.Flags().BoolVar(&opts.TUI, "tui", false, "Browse results interactively")
	cmd.Flags().StringVar(&opts.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	cmd.Flags().StringVar(&opts.MemProfile, "memprofile", "", "Write memory profile to file")
}

func runClassify(files []string, opts *Options) error {
	log.Initialize(opts.Verbosity, os.Stderr)

	profiler := NewProfiler(opts.CPUProfile, opts.MemProfile)
	if err := profiler.Start(); err != nil {
		return err
	}
	defer profiler.Stop()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.Contributor != "" && len(files) > 1 {
		return fmt.Errorf("--contributor only applies to a single events file")
	}

	labels, err := cfg.Labels()
	if err != nil {
		return err
	}
	predictor, err := loadPredictor(opts, cfg)
	if err != nil {
		return err
	}
	pipe, err := pipeline.New(pipeline.WithLabelMapping(labels))
	if err != nil {
		return err
	}

	results := make([]model.ContributorResult, 0, len(files))
	for _, file := range files {
		result, err := classifyFile(pipe, predictor, file, opts.Contributor, cfg.Excluded)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		log.Info("classified contributor", "contributor", result.Contributor, "user_type", result.UserType, "confidence", result.Confidence.String())
		results = append(results, result)
	}

	if opts.TUI {
		if tui.CanRun() {
			return tui.Run(results)
		}
		log.Warn("stdout is not a terminal; printing instead")
	}

	format := output.Format(opts.Format)
	if format == "" {
		format = output.Format(cfg.DefaultFormat)
	}
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(results, os.Stdout)
}

func loadConfig(opts *Options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.LoadFrom(opts.ConfigPath)
	}
	return config.Load()
}

// loadPredictor resolves the model in precedence order: --model flag,
// config model_path, bundled model.
func loadPredictor(opts *Options, cfg *config.Config) (predict.Predictor, error) {
	path := opts.ModelPath
	if path == "" {
		path = cfg.ModelPath
	}
	if path == "" {
		return predict.LoadDefaultForest()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}
	return predict.LoadForest(data)
}

// classifyFile reads one contributor's events file and classifies them.
// Event types matched by exclude are dropped before classification.
func classifyFile(pipe *pipeline.Pipeline, predictor predict.Predictor, path, contributor string, exclude func(string) bool) (model.ContributorResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ContributorResult{}, err
	}
	events, err := model.ParseEvents(data)
	if err != nil {
		return model.ContributorResult{}, err
	}
	if exclude != nil {
		kept := events[:0]
		for _, ev := range events {
			if !exclude(ev.Type) {
				kept = append(kept, ev)
			}
		}
		events = kept
	}
	if contributor == "" {
		contributor = inferContributor(events)
		if contributor == "" {
			return model.ContributorResult{}, fmt.Errorf("no actor login in events; pass --contributor")
		}
	}
	return pipe.Classify(contributor, events, predictor)
}

// inferContributor returns the first actor login found in the events.
// The pipeline itself rejects event sets that mix actors.
func inferContributor(events []model.Event) string {
	for _, ev := range events {
		if ev.Actor.Login != "" {
			return ev.Actor.Login
		}
	}
	return ""
}
