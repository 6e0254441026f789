// Package intellisense builds editor intellisense annotations from yuidoc output.
//
// # Pipeline
//
//  1. apidocs.Load reads data.json
//  2. Build registers every class (phase one), then attaches every class item
//     to its class (phase two), qualifying type names against the registry
//  3. Renderer executes the template with the Model as context
//
// Generate runs all three and writes the output file; Produce stops before
// writing and LoadModel stops before rendering.
package intellisense

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fdmota/breeze.js/apidocs"
	"github.com/fdmota/breeze.js/errors"
	"github.com/fdmota/breeze.js/logger"
)

// Options configures a generation run
type Options struct {
	// InputDir is the directory yuidoc wrote to; InputFile defaults to data.json
	InputDir     string
	InputFile    string
	TemplatePath string
	OutputPath   string

	Build BuildOptions
	// Engine renders the template; nil selects the TextEngine
	Engine Engine
	// Logger defaults to the global logger
	Logger *zap.SugaredLogger
}

// InputPath joins InputDir and InputFile
func (o Options) InputPath() string {
	file := o.InputFile
	if file == "" {
		file = "data.json"
	}
	return filepath.Join(o.InputDir, file)
}

// Result is the outcome of a run
type Result struct {
	RunID      string
	Model      *Model
	Output     string
	OutputPath string
}

// Generate produces the output and writes it to opts.OutputPath
func Generate(ctx context.Context, opts Options) (*Result, error) {
	result, err := Produce(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := writeOutput(opts.OutputPath, result.Output); err != nil {
		return nil, err
	}

	log := logger.LoggerFromContext(logger.WithRunID(ctx, result.RunID), opts.Logger)
	log.Infow("Wrote intellisense file",
		logger.FieldOutput, opts.OutputPath,
		logger.FieldSize, len(result.Output))
	return result, nil
}

// Produce reads the input, builds the model and renders it without writing anything.
//
// The input is checked before anything else (ErrInputMissing) and the
// template only once the model is built (ErrTemplateMissing).
func Produce(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.LoggerFromContext(ctx, opts.Logger)

	model, err := loadModel(ctx, opts, log)
	if err != nil {
		return nil, err
	}

	log.Infow("Formatting with template", logger.FieldTemplate, opts.TemplatePath)
	output, err := NewRenderer(opts.Engine).RenderFile(model, opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	log.Debugw("Generation finished", logger.FieldDurationMS, time.Since(start).Milliseconds())
	return &Result{
		RunID:      runID,
		Model:      model,
		Output:     output,
		OutputPath: opts.OutputPath,
	}, nil
}

// LoadModel reads the input and builds the model. No template is involved.
func LoadModel(ctx context.Context, opts Options) (*Model, error) {
	ctx = logger.WithRunID(ctx, uuid.NewString())
	return loadModel(ctx, opts, logger.LoggerFromContext(ctx, opts.Logger))
}

func loadModel(ctx context.Context, opts Options, log *zap.SugaredLogger) (*Model, error) {
	inputPath := opts.InputPath()
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputMissingError(inputPath)
		}
		return nil, errors.Wrapf(err, "failed to stat %s", inputPath)
	}

	log.Infow("Reading apidocs", logger.FieldFile, inputPath)
	doc, err := apidocs.Load(inputPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "generation cancelled after reading input")
	}

	buildOpts := opts.Build
	buildOpts.Logger = log
	model := Build(doc, buildOpts)
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "generation cancelled after building model")
	}
	return model, nil
}

func writeOutput(path, content string) error {
	if path == "" {
		return errors.New("output path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
