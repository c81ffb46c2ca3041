package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/vtxpack"
	"github.com/gogpu/vtxpack/config"
)

// app carries state shared by subcommands once the root has loaded config.
type app struct {
	cfgFile     string
	forceScalar bool
	cfg         *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "vtxpack",
		Short:         "Transform and pack vertex streams into GPU records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML); VTXPACK_* env vars override it")
	root.PersistentFlags().BoolVar(&a.forceScalar, "force-scalar", false, "use the scalar backend regardless of config")

	root.AddCommand(newInfoCmd(a), newPackCmd(a), newDumpCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.forceScalar {
		cfg.ForceScalar = true
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	vtxpack.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func (a *app) pipeline() *vtxpack.Pipeline {
	return a.cfg.NewRegistry().Pipeline(a.cfg.PipelineOptions()...)
}
