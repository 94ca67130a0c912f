package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hoanghonghuy/clog-ai/internal/ai"
	"github.com/hoanghonghuy/clog-ai/internal/azure"
	"github.com/hoanghonghuy/clog-ai/internal/config"
	"github.com/hoanghonghuy/clog-ai/internal/gitx"
	"github.com/hoanghonghuy/clog-ai/internal/i18n"
	"github.com/hoanghonghuy/clog-ai/internal/openai"
	"github.com/hoanghonghuy/clog-ai/internal/prompt"

	"github.com/briandowns/spinner"
)

// Repository is the part of git the pipeline needs. gitx.Repo implements it.
type Repository interface {
	Diff(ctx context.Context) (string, error)
	Commit(ctx context.Context, message string) error
}

type Options struct {
	Config config.FileConfig
	Repo   Repository

	// Provider is built from Config when nil.
	Provider ai.Provider
	// Prompter defaults to a LinePrompter on In/Out.
	Prompter Prompter
	// Messages defaults to the catalog for Config.Language.
	Messages *i18n.Manager

	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Verbose bool
}

func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Messages == nil {
		o.Messages = i18n.MustNew(o.Config.Language)
	}
	if o.Prompter == nil {
		o.Prompter = LinePrompter{In: o.In, Out: o.Out}
	}
	return o
}

// Generate asks the configured provider for a commit log of the working tree
// diff, shows it and commits it if the user answers yes.
//
// Config errors are returned before git or the network is touched. Any later
// failure marks the spinner failed and is returned unchanged.
func Generate(ctx context.Context, opts Options) error {
	if err := opts.Config.Validate(); err != nil {
		return err
	}
	opts = opts.withDefaults()
	msgs := opts.Messages

	provider := opts.Provider
	if provider == nil {
		p, err := NewProvider(opts.Config)
		if err != nil {
			return err
		}
		provider = p
	}
	if opts.Verbose {
		fmt.Fprintln(opts.Err, msgs.GetWithArgs("using_datasource", opts.Config.Datasource))
	}

	s := spinner.New(spinnerFrames, 100*time.Millisecond, spinner.WithWriter(opts.Out), spinner.WithColor("yellow"))
	s.Suffix = msgs.Get("generating")
	s.Start()

	commitLog, err := generateCommitLog(ctx, opts, provider)
	s.Stop()
	if err != nil {
		fmt.Fprintln(opts.Out, failStyle.Render("✖ "+msgs.Get("generate_fail")))
		return err
	}
	fmt.Fprintln(opts.Out, successStyle.Render("✔ "+msgs.Get("generate_success")))

	showCommitLog(opts.Out, commitLog)

	answer, err := opts.Prompter.Ask(msgs.Get("confirm_commit"))
	if err != nil {
		return err
	}
	if !IsYes(answer) {
		return nil
	}

	if err := opts.Repo.Commit(ctx, commitLog); err != nil {
		fmt.Fprintln(opts.Out, failStyle.Render("✖ "+msgs.Get("commit_fail")))
		return err
	}
	fmt.Fprintln(opts.Out, successStyle.Render("✔ "+msgs.Get("commit_success")))
	return nil
}

func generateCommitLog(ctx context.Context, opts Options, provider ai.Provider) (string, error) {
	diff, err := opts.Repo.Diff(ctx)
	if err != nil {
		return "", err
	}
	diff = gitx.Truncate(diff, gitx.MaxDiffLen)
	if opts.Verbose {
		fmt.Fprintln(opts.Err, opts.Messages.GetWithArgs("diff_length", len([]rune(diff))))
	}

	reply, err := provider.Complete(ctx, prompt.Render(diff, opts.Config.Language))
	if err != nil {
		return "", err
	}
	return prompt.ExtractCommitLog(reply)
}

// NewProvider picks the completion provider for cfg.Datasource.
func NewProvider(cfg config.FileConfig) (ai.Provider, error) {
	switch cfg.Datasource {
	case config.DatasourceOpenAI:
		return openai.New(openai.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}), nil
	case config.DatasourceAzure:
		return azure.New(azure.Config{
			BaseURL:      cfg.AzureBaseURL,
			DeploymentID: cfg.AzureDeploymentID,
			APIVersion:   cfg.AzureAPIVersion,
			APIKey:       cfg.AzureAPIKey,
			Model:        cfg.AzureModel,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: openai, azure)", config.ErrInvalidDatasource, cfg.Datasource)
	}
}
