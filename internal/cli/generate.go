package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hoanghonghuy/clog-ai/internal/app"
	"github.com/hoanghonghuy/clog-ai/internal/config"
	"github.com/hoanghonghuy/clog-ai/internal/gitx"
	"github.com/hoanghonghuy/clog-ai/internal/i18n"

	"golang.org/x/term"
)

func runInit(out, errOut io.Writer) int {
	msgs := i18n.MustNew(i18n.Fallback)

	path, err := configPath()
	if err != nil {
		fmt.Fprintln(errOut, msgs.GetWithArgs("init_failed", err))
		return ExitRuntimeError
	}

	created, err := config.Init(path)
	if err != nil {
		fmt.Fprintln(errOut, msgs.GetWithArgs("init_failed", err))
		return ExitRuntimeError
	}
	if created {
		fmt.Fprintln(out, msgs.GetWithArgs("init_success", path))
	} else {
		fmt.Fprintln(out, msgs.GetWithArgs("init_exists", path))
	}
	return ExitSuccess
}

func runGenerate(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	msgs := i18n.MustNew(i18n.Fallback)

	path, err := configPath()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return ExitConfigError
	}
	cfg, err := config.Load(path)
	if err != nil {
		return reportConfigError(errOut, msgs, path, err)
	}
	msgs = i18n.MustNew(cfg.Language)
	if verbose {
		fmt.Fprintln(errOut, msgs.GetWithArgs("using_config", path))
	}

	// Checked here so nothing touches git or the network with a bad config.
	if err := cfg.Validate(); err != nil {
		return reportConfigError(errOut, msgs, path, err)
	}

	root, err := gitx.ResolveRepoRoot(ctx, "")
	if err != nil {
		fmt.Fprintln(errOut, err)
		return ExitRuntimeError
	}

	err = app.Generate(ctx, app.Options{
		Config:   cfg,
		Repo:     gitx.Repo{Root: root},
		Prompter: newPrompter(in, out),
		Messages: msgs,
		In:       in,
		Out:      out,
		Err:      errOut,
		Verbose:  verbose,
	})
	if err != nil {
		if config.IsConfigError(err) {
			return reportConfigError(errOut, msgs, path, err)
		}
		fmt.Fprintln(errOut, err)
		return ExitRuntimeError
	}
	return ExitSuccess
}

func reportConfigError(w io.Writer, msgs *i18n.Manager, path string, err error) int {
	switch {
	case errors.Is(err, config.ErrNotInitialized):
		fmt.Fprintln(w, msgs.Get("config_not_initialized"))
	case errors.Is(err, config.ErrInvalidDatasource):
		fmt.Fprintln(w, msgs.GetWithArgs("invalid_datasource", path))
	case errors.Is(err, config.ErrMissingOpenAI):
		fmt.Fprintln(w, msgs.GetWithArgs("openai_config_missing", path))
		fmt.Fprintln(w, err)
	case errors.Is(err, config.ErrMissingAzure):
		fmt.Fprintln(w, msgs.GetWithArgs("azure_config_missing", path))
		fmt.Fprintln(w, err)
	default:
		fmt.Fprintln(w, msgs.GetWithArgs("config_read_failed", path, err))
	}
	return ExitConfigError
}

// newPrompter uses a huh form when both ends are terminals, a plain line read otherwise.
func newPrompter(in io.Reader, out io.Writer) app.Prompter {
	if isTerminal(in) && isTerminal(out) {
		return app.FormPrompter{}
	}
	return app.LinePrompter{In: in, Out: out}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
