// Package main provides the CLI entrypoint for exceltools.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/exceltools/internal/config"
	"github.com/verte-zerg/exceltools/internal/editor"
	"github.com/verte-zerg/exceltools/internal/model"
	"github.com/verte-zerg/exceltools/internal/render"
	"github.com/verte-zerg/exceltools/internal/settings"
	"github.com/verte-zerg/exceltools/internal/store"
)

var outputFormat string

// legacyRowMode is the row-mode label older front-ends saved.
const legacyRowMode = "行模式"

func main() {
	_ = godotenv.Load()
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "exceltools",
		Short:         "Keyword and word-frequency statistics settings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(render.FormatTable), "output format: table, json or yaml")

	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a payload and print the resulting settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "keyword [JSON]",
		Short: "Decode a keyword statistics payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, source, err := decodeInputs(cmd, args)
			if err != nil {
				return err
			}
			cfg, err := model.NewKeyWordStatConfig(source)
			if err != nil {
				return err
			}
			warnKeyWord(cfg)
			return render.KeyWord(cmd.OutOrStdout(), format, cfg)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "wordfreq [JSON]",
		Short: "Decode a word-frequency statistics payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, source, err := decodeInputs(cmd, args)
			if err != nil {
				return err
			}
			cfg, err := model.NewWordFreqStatConfig(source)
			if err != nil {
				return err
			}
			return render.WordFreq(cmd.OutOrStdout(), format, cfg)
		},
	})
	return cmd
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change saved settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(outputFormat)
			if err != nil {
				return err
			}
			return withSettings(cmd.Context(), func(s *settings.Settings) error {
				return render.AppSetting(cmd.OutOrStdout(), format, s.AppSetting())
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSettings(cmd.Context(), func(s *settings.Settings) error {
				if err := s.Reset(cmd.Context()); err != nil {
					return err
				}
				logErrln("Settings restored to defaults")
				return nil
			})
		},
	})
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace a saved payload",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "keyword [JSON]",
		Short: "Replace the keyword statistics payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, source, err := decodeInputs(cmd, args)
			if err != nil {
				return err
			}
			cfg, err := model.NewKeyWordStatConfig(source)
			if err != nil {
				return err
			}
			warnKeyWord(cfg)
			return withSettings(cmd.Context(), func(s *settings.Settings) error {
				if err := s.UpdateKeyWordStatConfig(cmd.Context(), cfg); err != nil {
					return err
				}
				return render.KeyWord(cmd.OutOrStdout(), format, s.KeyWordStatConfig())
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "wordfreq [JSON]",
		Short: "Replace the word-frequency statistics payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, source, err := decodeInputs(cmd, args)
			if err != nil {
				return err
			}
			cfg, err := model.NewWordFreqStatConfig(source)
			if err != nil {
				return err
			}
			return withSettings(cmd.Context(), func(s *settings.Settings) error {
				if err := s.UpdateWordFreqStatConfig(cmd.Context(), cfg); err != nil {
					return err
				}
				return render.WordFreq(cmd.OutOrStdout(), format, s.WordFreqStatConfig())
			})
		},
	})
	return cmd
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "edit keyword|wordfreq",
		Short:     "Edit a saved payload in a form",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{editor.KindKeyWord.String(), editor.KindWordFreq.String()},
		RunE:      runEditCmd,
	}
}

func runEditCmd(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("edit needs an interactive terminal; use `exceltools settings set %s` instead", args[0])
	}
	return withSettings(cmd.Context(), func(s *settings.Settings) error {
		var form *editor.Model
		if args[0] == editor.KindKeyWord.String() {
			form = editor.NewKeyWordModel(s.KeyWordStatConfig())
		} else {
			form = editor.NewWordFreqModel(s.WordFreqStatConfig())
		}
		program := tea.NewProgram(form, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run editor: %w", err)
		}
		if !form.Submitted() {
			logErrln("Edit cancelled")
			return nil
		}
		switch form.Kind() {
		case editor.KindKeyWord:
			warnKeyWord(form.KeyWord())
			if err := s.UpdateKeyWordStatConfig(cmd.Context(), form.KeyWord()); err != nil {
				return err
			}
		case editor.KindWordFreq:
			if err := s.UpdateWordFreqStatConfig(cmd.Context(), form.WordFreq()); err != nil {
				return err
			}
		}
		logErrf("Saved %s settings\n", form.Kind())
		return nil
	})
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editorCmd := strings.TrimSpace(os.Getenv("EDITOR"))
	if editorCmd == "" {
		editorCmd = "vi"
	}
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// withSettings opens the store, loads settings over the configured defaults
// and closes the store once fn returns.
func withSettings(ctx context.Context, fn func(*settings.Settings) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	defaults := fileCfg.Apply(model.DefaultAppSetting())

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	s, err := settings.New(ctx, st, defaults)
	if err != nil {
		return err
	}
	for _, warning := range s.Warnings() {
		logErrf("warning: %v; using defaults\n", warning)
	}
	return fn(s)
}

// decodeInputs resolves the output format and the payload text. The payload
// comes from the argument, else from piped stdin; with neither, source is nil.
func decodeInputs(cmd *cobra.Command, args []string) (render.Format, any, error) {
	format, err := render.ParseFormat(outputFormat)
	if err != nil {
		return "", nil, err
	}
	if len(args) == 1 {
		return format, args[0], nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return format, nil, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return format, nil, nil
	}
	return format, data, nil
}

func warnKeyWord(cfg model.KeyWordStatConfig) {
	if cfg.StatMode != "" && !model.KnownStatMode(cfg.StatMode) {
		logErrf("warning: StatMode %q is not one of %q, %q\n", cfg.StatMode, model.RowMode, model.ColumnMode)
	}
	if cfg.SelectedColor != "" && !model.KnownColor(cfg.SelectedColor) {
		logErrf("warning: SelectedColor %q is not a known color label\n", cfg.SelectedColor)
	}
}

func defaultConfigTemplate() string {
	defaults := model.DefaultAppSetting()
	return fmt.Sprintf(`# exceltools configuration
# Uncomment a value to override the built-in default. Saved settings take precedence.

[keyword]
# input-dir = ""          # Directory scanned for keyword statistics
# output-dir = ""         # Directory receiving keyword results
# stat-mode = %q      # %q or %q; the old %q label is not recognized
# target-number = %d       # Target row or column
# forward-number = %d      # Cells to look back from the target
# selected-color = %q # Color label to match

[wordfreq]
# input-dir = ""          # Directory scanned for word-frequency statistics
# interval-number = %d     # Cells per bucket; 0 uses split-char instead
# split-char = ""         # Cell value that closes a bucket
`,
		defaults.StatMode, model.RowMode, model.ColumnMode, legacyRowMode,
		defaults.TargetNumber,
		defaults.ForwardNumber,
		defaults.SelectedColor,
		defaults.IntervalNumber,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
