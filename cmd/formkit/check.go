package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/report"
	"github.com/dmitrymomot/formkit/pkg/validity"
	"github.com/dmitrymomot/formkit/pkg/watch"
)

// errInvalidControls is returned by a strict check that found invalid
// controls.
var errInvalidControls = errors.New("invalid form controls found")

const stdinPath = "-"

type checkOptions struct {
	format      string
	inputFormat string
	strict      bool
	watch       bool
	debounce    time.Duration
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report the validity of every form control in HTML files or snapshots",
		Long: `Parse each file and report the validity state of its listed form controls
(input, button, object, select, textarea).

Files ending in .yaml, .yml or .json are read as control snapshots; anything
else is parsed as HTML. Use "-" to read from standard input.`,
		Example: `  formkit check signup.html
  formkit check --format json --strict form.yaml
  cat page.html | formkit check -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.Context(), opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", string(report.FormatText), "output format: text, json, yaml or html")
	f.StringVar(&opts.inputFormat, "input-format", "auto", "input format: auto, html, yaml or json")
	f.BoolVar(&opts.strict, "strict", false, "exit with status 2 when any control is invalid")
	f.BoolVarP(&opts.watch, "watch", "w", false, "re-check files whenever they change")
	f.DurationVar(&opts.debounce, "debounce", watch.DefaultDebounce, "quiet period before a change is re-checked")
	return cmd
}

func (a *app) runCheck(ctx context.Context, opts *checkOptions, paths []string) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.watch && slices.Contains(paths, stdinPath) {
		return errors.New("cannot watch standard input")
	}
	log, err := a.logger(slog.LevelWarn.String())
	if err != nil {
		return err
	}
	ev := validity.New(validity.WithLogger(log))

	invalid := 0
	for i, p := range paths {
		rep, err := a.check(p, opts.inputFormat, ev)
		if err != nil {
			return err
		}
		if err := a.write(rep, format, i > 0); err != nil {
			return err
		}
		if !rep.Valid {
			invalid++
		}
	}

	if opts.watch {
		return a.watch(ctx, opts, paths, format, ev, log)
	}
	if opts.strict && invalid > 0 {
		return fmt.Errorf("%w: %d of %d documents", errInvalidControls, invalid, len(paths))
	}
	return nil
}

func (a *app) check(path, inputFormat string, ev *validity.Evaluator) (report.Report, error) {
	doc, err := a.load(path, inputFormat)
	if err != nil {
		return report.Report{}, fmt.Errorf("%s: %w", path, err)
	}
	rep := report.Build(doc, ev)
	rep.Source = path
	if path == stdinPath {
		rep.Source = "stdin"
	}
	return rep, nil
}

func (a *app) load(path, inputFormat string) (*dom.Document, error) {
	var r io.Reader = a.stdin
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	switch strings.ToLower(inputFormat) {
	case "html":
		return dom.Parse(r)
	case "yaml", "yml":
		return dom.LoadSnapshot(r, dom.SnapshotYAML)
	case "json":
		return dom.LoadSnapshot(r, dom.SnapshotJSON)
	case "", "auto":
		if format, err := dom.SnapshotFormatFromPath(path); err == nil {
			return dom.LoadSnapshot(r, format)
		}
		return dom.Parse(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", inputFormat)
	}
}

// write prints one report, separating it from a previous one when needed.
func (a *app) write(rep report.Report, format report.Format, separate bool) error {
	if separate {
		sep := ""
		switch format {
		case report.FormatText:
			sep = "\n"
		case report.FormatYAML:
			sep = "---\n"
		}
		if _, err := io.WriteString(a.stdout, sep); err != nil {
			return err
		}
	}
	return rep.Write(a.stdout, format)
}

func (a *app) watch(ctx context.Context, opts *checkOptions, paths []string, format report.Format, ev *validity.Evaluator, log *slog.Logger) error {
	w, err := watch.New(paths, watch.WithDebounce(opts.debounce), watch.WithLogger(log))
	if err != nil {
		return err
	}
	defer w.Close()

	log.InfoContext(ctx, "watching for changes", slog.Int("files", len(paths)))
	return w.Run(ctx, func(path string) error {
		rep, err := a.check(path, opts.inputFormat, ev)
		if err != nil {
			log.ErrorContext(ctx, "check failed", logger.Error(err))
			return nil
		}
		return a.write(rep, format, true)
	})
}
