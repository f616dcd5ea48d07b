package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olivier-w/stagger/internal/curve"
	"github.com/olivier-w/stagger/internal/export"
	"github.com/olivier-w/stagger/internal/items"
	"github.com/olivier-w/stagger/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stagger [items-file]",
		Short: "Assign staggered execution delays by editing a curve",
		Long: `stagger opens an ordered item list (account addresses, hosts, task ids)
in an interactive curve editor. Each marker is one item; drag it up or
down to set that item's delay, or apply a preset shape to the whole
list. Accepting writes the final YAML schedule to stdout or a file.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.Float64("max-delay", curve.DefaultMaxDelay, "max delay bound in seconds (clamped to [1,60])")
	flags.Float64("min-delay", 0, "floor in seconds applied to the written schedule")
	flags.StringP("output", "o", "", "write the accepted schedule to a file instead of stdout")
	flags.String("log", "", "write a debug log to a file")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("stagger")
	viper.AutomaticEnv()
	viper.SetConfigName("stagger")
	viper.AddConfigPath(".")
	if home, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(home)
	}

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if err := viper.ReadInConfig(); err != nil {
		// Config files are optional; anything else is a real problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	path, ok, err := resolveItemsPath(args)
	if err != nil {
		return err
	}
	if !ok {
		return nil // picker cancelled
	}

	list, err := items.Load(path)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("%s contains no items", path)
	}

	logger, closeLog, err := newLogger(viper.GetString("log"))
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := curve.DefaultConfig()
	cfg.MaxDelay = curve.ClampMaxDelay(viper.GetFloat64("max-delay"))

	sink := export.NewSink(list, viper.GetFloat64("min-delay"))
	editor := curve.NewEditor(cfg, sink.Receive)
	editor.SetItems(items.Keys(list))

	logger.Info().Int("items", len(list)).Str("path", path).Msg("editor started")

	program := tea.NewProgram(ui.New(editor, logger),
		tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if err != nil {
		return err
	}

	em, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	if !em.Accepted() {
		logger.Info().Msg("cancelled")
		return nil
	}

	logger.Info().Int("published", sink.Received()).Msg("schedule accepted")
	return writeSchedule(sink, viper.GetString("output"))
}

// resolveItemsPath returns the item list path from the command line, or
// runs the file picker when none was given. ok is false if the picker was
// cancelled.
func resolveItemsPath(args []string) (string, bool, error) {
	if len(args) > 0 {
		return args[0], true, nil
	}

	picker := ui.NewPicker()
	if picker.HasError() {
		return "", false, picker.Error()
	}
	final, err := tea.NewProgram(picker, tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, err
	}
	pm, ok := final.(ui.PickerModel)
	if !ok {
		return "", false, fmt.Errorf("unexpected model type %T", final)
	}
	result := pm.Result()
	if result.Cancelled {
		return "", false, nil
	}
	return result.Path, true, nil
}

// newLogger opens a debug log file, or returns a Nop logger when no path
// is configured. The TUI owns the terminal, so logs never go to stderr.
func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
	}
	logger := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}

func writeSchedule(sink *export.Sink, output string) error {
	if output == "" {
		return sink.WriteYAML(os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	return sink.WriteYAML(f)
}
