package assemble

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"csb/config"
	"csb/state"
	"csb/stylesheet"
)

// Run implements the build subcommand.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	if cmd.Args().Len() == 0 {
		return errors.New("no input sheet has been specified")
	}

	// command line overrides configuration
	formatName := cmd.String("format")
	if len(formatName) == 0 {
		formatName = env.Cfg.Output.Format
	}
	format, err := config.ParseOutputFmt(formatName)
	if err != nil {
		log.Warn("Unknown output format requested, switching to css", zap.Error(err))
		format = config.OutputFmtCSS
	}
	env.Format = format
	env.Overwrite = cmd.Bool("overwrite")

	dst := cmd.String("output")
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}

	log.Info("Processing starting", zap.Strings("sources", cmd.Args().Slice()), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	merged := &stylesheet.Stylesheet{Indent: env.Cfg.Output.Indent}

	var errs error
	for _, src := range cmd.Args().Slice() {
		if err := ctx.Err(); err != nil {
			return err
		}

		sheet, err := LoadSheet(src)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", src, err))
			continue
		}
		env.Rpt.Store("input/"+filepath.Base(src), src)

		compiled, err := sheet.Compile(env.Cfg.Output.Indent)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", src, err))
			continue
		}
		log.Debug("Sheet compiled", zap.String("source", src), zap.Int("rules", len(compiled.Rules)))

		for _, rule := range compiled.Rules {
			merged.Add(rule)
		}
	}
	if errs != nil {
		return errs
	}

	var text string
	switch env.Format {
	case config.OutputFmtList:
		text = strings.Join(merged.Selectors(), "\n") + "\n"
	default:
		text = merged.String()
	}
	env.Rpt.StoreData("output/result."+format.String(), []byte(text))

	return write(dst, text, env, log)
}

func write(dst, text string, env *state.LocalEnv, log *zap.Logger) error {
	if len(dst) == 0 {
		_, err := os.Stdout.WriteString(text)
		return err
	}

	if !env.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination '%s' already exists (use --overwrite)", dst)
		}
	}
	if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write destination '%s': %w", dst, err)
	}
	log.Info("Output written", zap.String("destination", dst))
	return nil
}
