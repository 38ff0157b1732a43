package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/kite"
	"github.com/iw2rmb/kite/editor"
	"github.com/iw2rmb/kite/internal/config"
	"github.com/iw2rmb/kite/internal/filestore"
	"github.com/iw2rmb/kite/syntax"
)

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

type options struct {
	configPath  string
	syntaxPath  string
	logPath     string
	tabStop     int
	softTab     int
	showVersion bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "kite [file]",
		Short:         "Small modal terminal text editor",
		Long:          `Kite edits one text file in the terminal with syntax highlighting, incremental search and Normal/Insert/Visual modes.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "kite %s\n", kite.VersionTag())
				return nil
			}
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (toml or yaml)")
	flags.StringVar(&opts.syntaxPath, "syntax", "", "syntax rule file (toml or yaml)")
	flags.StringVar(&opts.logPath, "log", "", "write debug log to this file")
	flags.IntVar(&opts.tabStop, "tab-stop", config.DefaultTabStop, "display width of a tab")
	flags.IntVar(&opts.softTab, "soft-tab", config.DefaultSoftTab, "spaces inserted by the tab key")
	flags.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	fsys := afero.NewOsFs()

	settings, _, err := config.Load(fsys, opts.configPath, config.Dir())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("tab-stop") {
		settings.TabStop = opts.tabStop
	}
	if flags.Changed("soft-tab") {
		settings.SoftTab = opts.softTab
	}
	if opts.syntaxPath != "" {
		settings.SyntaxFile = opts.syntaxPath
	}
	if opts.logPath != "" {
		settings.LogFile = opts.logPath
	}
	settings = config.Normalise(settings)

	if settings.LogFile != "" {
		f, err := tea.LogToFile(settings.LogFile, "kite")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	catalog, err := syntax.Load(fsys, settings.SyntaxFile)
	if err != nil {
		log.Printf("syntax rules: %v", err)
	}

	m := editor.New(editor.Config{
		TabStop:        settings.TabStop,
		SoftTab:        settings.SoftTab,
		QuitTimes:      settings.QuitTimes,
		MessageTimeout: settings.MessageTimeout(),
		Style:          editor.DefaultStyle(),
		Store:          filestore.New(fsys),
		Profiles:       catalog,
		Logf:           log.Printf,
	})
	if len(args) == 1 {
		m = m.Open(args[0])
	}

	p := tea.NewProgram(model{editor: m}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
