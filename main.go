package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gripgear/designer/internal/configurator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	themeFlag       string
	catalogFlag     string
	journalFlag     string
	metricsAddrFlag string
	panelFlag       string
	verbose         bool
	copyIndex       int

	logger *zap.Logger
	config *uiConfig
	// path of ui.yaml, used when the theme is changed in the app
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "designer",
	Short: "GripGear sock designer",
	Long: `designer is an interactive sock customisation tool.

Pick a design, background and stripe colours, logos and a quantity from a
sidebar of facet panels. Run without arguments to start the designer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config, configPath = loadUIConfig()
		config.applyEnv()
		applyFlags(cmd, config)

		var err error
		logger, err = newLogger(config.LogPath, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDesigner(cmd.Context())
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the templates, palette and facet panels",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(config.CatalogPath)
		if err != nil {
			logger.Warn("catalog store unavailable, using built-in catalog", zap.Error(err))
		}
		return printCatalog(cmd.OutOrStdout(), catalog)
	},
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the preset colours, or copy one with --copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(config.CatalogPath)
		if err != nil {
			logger.Warn("catalog store unavailable, using built-in catalog", zap.Error(err))
		}
		palette := catalog.Palette()
		if !cmd.Flags().Changed("copy") {
			for i, c := range palette {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i, c)
			}
			return nil
		}
		if copyIndex < 0 || copyIndex >= len(palette) {
			return fmt.Errorf("palette index %d out of range 0-%d", copyIndex, len(palette)-1)
		}
		if err := writeClipboard(palette[copyIndex].String()); err != nil {
			return fmt.Errorf("copy colour: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "copied %s\n", palette[copyIndex])
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Markdown rendering theme: auto, light, or dark")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog database path (sqlite)")
	rootCmd.PersistentFlags().StringVar(&journalFlag, "journal", "", "Selection journal path (JSON lines)")
	rootCmd.PersistentFlags().StringVar(&metricsAddrFlag, "metrics-addr", "", "Serve Prometheus metrics on this address")
	rootCmd.Flags().StringVar(&panelFlag, "panel", "", "Panel to open at start: design, colour, logo or quantity")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	paletteCmd.Flags().IntVar(&copyIndex, "copy", 0, "Copy the colour at this palette index to the clipboard")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(paletteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags win over ui.yaml and the environment.
func applyFlags(cmd *cobra.Command, cfg *uiConfig) {
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = markdownThemeFromString(themeFlag).String()
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogFlag
	}
	if flags.Changed("journal") {
		cfg.JournalPath = journalFlag
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = metricsAddrFlag
	}
}

func runDesigner(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startPanel, err := configurator.ParsePanel(panelFlag)
	if err != nil {
		return fmt.Errorf("--panel %q: %w", panelFlag, err)
	}

	catalog, err := loadCatalog(config.CatalogPath)
	if err != nil {
		logger.Warn("catalog store unavailable, using built-in catalog",
			zap.String("path", config.CatalogPath), zap.Error(err))
	}

	var journal *selectionJournal
	sessionID := newSessionID()
	if config.journalEnabled() {
		journal = newSelectionJournal(config.JournalPath, sessionID, resolveJournalUserID())
	}

	metrics := newCommitMetrics()
	metrics.startSession(minQuantity)
	if addr := strings.TrimSpace(config.MetricsAddr); addr != "" {
		metrics.serveMetrics(ctx, addr, logger)
	}

	logger.Info("designer starting",
		zap.String("session", sessionID),
		zap.Int("templates", catalog.Len()),
		zap.Bool("journal", journal != nil),
	)

	m := newModel(modelOptions{
		catalog:      catalog,
		journal:      journal,
		metrics:      metrics,
		logger:       logger,
		uiConfig:     config,
		uiConfigPath: configPath,
		startPanel:   startPanel,
	})
	defer m.Close()

	if _, err := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run(); err != nil {
		return fmt.Errorf("run designer: %w", err)
	}
	return nil
}

func printCatalog(w io.Writer, catalog configurator.Catalog) error {
	fmt.Fprintln(w, "Templates")
	for _, t := range catalog.Templates() {
		kind := "striped"
		if t.Plain() {
			kind = "plain"
		}
		fmt.Fprintf(w, "  %d  %-14s %s\n", t.ID, t.PreviewAsset, kind)
	}
	fmt.Fprintln(w, "Palette")
	for i, c := range catalog.Palette() {
		fmt.Fprintf(w, "  %2d  %s\n", i, c)
	}
	fmt.Fprintln(w, "Panels")
	for i, p := range configurator.Panels {
		fmt.Fprintf(w, "  %d  %-9s %-20s %s\n", i+1, p.Label(), p.Icon(), p.Title())
	}
	_, err := fmt.Fprintln(w)
	return err
}
