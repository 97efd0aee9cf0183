package localiser

import (
	"context"
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"localiser/internal/constants"
	"localiser/internal/globalerrors"
	"localiser/internal/i18n"
	"localiser/internal/locales"
	"localiser/internal/logger"
	"localiser/internal/patch"
	"localiser/internal/perf"
	"localiser/internal/project"
	"localiser/internal/prompt"
	"localiser/internal/reconcile"
	"localiser/internal/settings"
	"localiser/internal/telemetry"
)

type runOptions struct {
	CommonKeys    bool
	UniqueKeys    bool
	PrintJS       bool
	MaxKeyLength  int
	UpdateProject bool
	Quiet         bool
	Debug         bool
}

func (opts runOptions) wantsAction() bool {
	return opts.CommonKeys || opts.UniqueKeys || opts.PrintJS || opts.UpdateProject
}

type projectPathStore interface {
	ProjectPath() (string, error)
	SetProjectPath(path string) error
}

type runDeps struct {
	fs        afero.Fs
	dir       string
	logger    *logger.Logger
	prompter  prompt.Prompter
	store     projectPathStore
	telemetry func(telemetry.CommandTelemetry)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	ctx, span := perf.StartSpan(cmd.Context(), "app.command.root")
	defer span.End()

	commonKeys, err := cmd.Flags().GetBool("common-keys")
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return err
	}
	uniqueKeys, err := cmd.Flags().GetBool("unique-keys")
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return err
	}
	printJS, err := cmd.Flags().GetBool("print-js")
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return err
	}
	maxKeyLength, err := cmd.Flags().GetInt("max-key-length")
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return err
	}
	updateProject, err := cmd.Flags().GetBool("update-project")
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return err
	}
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return err
	}

	opts := runOptions{
		CommonKeys:    commonKeys,
		UniqueKeys:    uniqueKeys,
		PrintJS:       printJS,
		MaxKeyLength:  maxKeyLength,
		UpdateProject: updateProject,
		Quiet:         quiet,
		Debug:         debug,
	}

	if !opts.wantsAction() {
		span.SetAttributes(attribute.Bool("success", true))
		return cmd.Help()
	}

	log := logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet, debug)
	fs := afero.NewOsFs()

	store, err := settings.NewStore(fs)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return err
	}

	deps := runDeps{
		fs:        fs,
		dir:       ".",
		logger:    log,
		prompter:  prompt.ForStreams(quiet, cmd.InOrStdin(), cmd.OutOrStdout()),
		store:     store,
		telemetry: telemetry.RecordCommand,
	}

	payload, err := run(ctx, opts, deps)
	span.SetAttributes(attribute.Bool("success", err == nil))

	if deps.telemetry != nil {
		deps.telemetry(payload)
	}
	return err
}

func run(_ context.Context, opts runOptions, deps runDeps) (telemetry.CommandTelemetry, error) {
	set, skipped, err := locales.Load(deps.fs, deps.dir)
	if err != nil {
		return failurePayload(opts, err), err
	}

	for _, skip := range skipped {
		deps.logger.Warn(i18n.T("msg.skipped_file", i18n.Tvars{
			Data: &i18n.TData{"file": skip.Name, "reason": skip.Err.Error()},
		}))
	}

	if set.Len() == 0 {
		deps.logger.Log((&globalerrors.NoLocaleFilesError{Dir: deps.dir}).Error(), false)
		return successPayload(opts), nil
	}

	common, err := reconcile.Common(set)
	if err != nil {
		return failurePayload(opts, err), err
	}

	if opts.CommonKeys {
		printCommonKeys(deps.logger, set, common)
	}

	if opts.UniqueKeys {
		printUniqueKeys(deps.logger, set)
	}

	if opts.PrintJS {
		printBlocks(deps.logger, set, common, opts.MaxKeyLength)
	}

	if opts.UpdateProject {
		if err := updateProject(opts, deps, set, common); err != nil {
			return failurePayload(opts, err), err
		}
	}

	return successPayload(opts), nil
}

func printCommonKeys(log *logger.Logger, set locales.Set, common []string) {
	log.Log(i18n.T("msg.common.header", i18n.Tvars{Count: set.Len()}), false)
	for _, key := range common {
		log.Log(key, false)
	}
}

func printUniqueKeys(log *logger.Logger, set locales.Set) {
	for _, code := range set.Codes() {
		unique := reconcile.Unique(set, code)
		if len(unique) == 0 {
			log.Log(i18n.T("msg.unique.none", i18n.Tvars{
				Data: &i18n.TData{"locale": constants.LocaleName(code)},
			}), false)
			continue
		}

		log.Log(i18n.T("msg.unique.header", i18n.Tvars{
			Data: &i18n.TData{"locale": constants.LocaleName(code)},
		}), false)
		for _, key := range unique {
			log.Log(key, false)
		}
	}
}

func printBlocks(log *logger.Logger, set locales.Set, common []string, maxKeyLength int) {
	members := patch.NewMembers(common)
	for _, code := range set.Codes() {
		table, _ := set.Table(code)
		log.Log("// "+code+".js", false)
		log.Log(patch.Block(table, members, maxKeyLength, constants.CommonBlockName), false)
	}
}

func updateProject(opts runOptions, deps runDeps, set locales.Set, common []string) error {
	path, err := resolveProjectPath(deps)
	if err != nil {
		return err
	}
	if path == "" {
		deps.logger.Warn(i18n.T("prompt.empty_path"))
		return nil
	}

	updater := project.NewUpdater(deps.fs, deps.logger)
	if err := updater.Update(path, set, common, opts.MaxKeyLength); err != nil {
		var pathErr *globalerrors.ProjectPathError
		if errors.As(err, &pathErr) {
			// Bad target directory aborts only the update flow.
			deps.logger.Warn(i18n.T("update.project_missing", i18n.Tvars{
				Data: &i18n.TData{"path": path},
			}))
			return nil
		}
		return err
	}

	deps.logger.Log(i18n.T("update.done"), false)
	return nil
}

func resolveProjectPath(deps runDeps) (string, error) {
	path, err := deps.store.ProjectPath()
	if err != nil {
		deps.logger.Warn(err.Error())
		path = ""
	}
	if path != "" {
		return path, nil
	}

	path, err = deps.prompter.ProjectPath()
	if err != nil {
		return "", err
	}
	if path != "" {
		if err := deps.store.SetProjectPath(path); err != nil {
			deps.logger.Warn(i18n.T("update.settings_save_failed", i18n.Tvars{
				Data: &i18n.TData{"reason": err.Error()},
			}))
		}
	}
	return path, nil
}

func successPayload(opts runOptions) telemetry.CommandTelemetry {
	return telemetry.CommandTelemetry{
		Command:   constants.CommandName,
		Success:   true,
		ExitCode:  0,
		Arguments: argumentsOf(opts),
	}
}

func failurePayload(opts runOptions, err error) telemetry.CommandTelemetry {
	return telemetry.CommandTelemetry{
		Command:   constants.CommandName,
		Success:   false,
		ExitCode:  1,
		Error:     err,
		Arguments: argumentsOf(opts),
	}
}

func argumentsOf(opts runOptions) map[string]interface{} {
	return map[string]interface{}{
		"commonKeys":    opts.CommonKeys,
		"uniqueKeys":    opts.UniqueKeys,
		"printJs":       opts.PrintJS,
		"maxKeyLength":  opts.MaxKeyLength,
		"updateProject": opts.UpdateProject,
	}
}
