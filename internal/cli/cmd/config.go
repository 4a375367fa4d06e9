package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/quadchat/internal/cli/styles"
	"github.com/bnema/quadchat/internal/infrastructure/config"
)

var (
	configSchemaWrite bool
	configResetYes    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate the config file, print its JSON schema, or reset it to defaults.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON schema",
	Long: `Print the JSON schema of config.toml. With --write the schema is saved
next to the config file for editor completion instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the config file with defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configResetCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema file instead of printing it")
	configResetCmd.Flags().BoolVarP(&configResetYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()
	_, statErr := os.Stat(path)

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath(path, statErr == nil))
	if app.LoadErr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(app.LoadErr))
	}
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	if !configSchemaWrite {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path, err := app.Manager.WriteSchemaFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSchemaWritten(path))
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	if configResetYes {
		return executeReset(out, app.Manager, renderer)
	}

	m := newResetModel(app.Manager, renderer, app.Theme)
	p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	return nil
}

func executeReset(out io.Writer, mgr *config.Manager, renderer *styles.ConfigRenderer) error {
	path, err := mgr.ResetToDefaults()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(out, renderer.RenderReset(path))
	return nil
}

type resetState int

const (
	resetStateConfirm resetState = iota
	resetStateRunning
	resetStateDone
)

// resetModel is the bubbletea model for the reset confirmation.
type resetModel struct {
	spinner  spinner.Model
	confirm  styles.ConfirmModel
	renderer *styles.ConfigRenderer
	mgr      *config.Manager
	state    resetState

	result   string
	quitting bool
}

type resetResultMsg struct {
	path string
	err  error
}

func newResetModel(mgr *config.Manager, renderer *styles.ConfigRenderer, theme *styles.Theme) resetModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return resetModel{
		spinner:  s,
		confirm:  styles.NewConfirm(theme, "Overwrite "+mgr.GetConfigFile()+" with defaults?"),
		renderer: renderer,
		mgr:      mgr,
	}
}

func (m resetModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m resetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resetResultMsg:
		m.state = resetStateDone
		if msg.err != nil {
			m.result = m.renderer.RenderError(msg.err)
		} else {
			m.result = m.renderer.RenderReset(msg.path)
		}
		return m, tea.Quit
	}

	if m.state != resetStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = resetStateRunning
	return m, m.runReset()
}

func (m resetModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.state == resetStateDone:
		return m.result
	case m.state == resetStateRunning:
		return m.spinner.View() + " Resetting config..."
	default:
		return m.confirm.View()
	}
}

func (m resetModel) runReset() tea.Cmd {
	return func() tea.Msg {
		path, err := m.mgr.ResetToDefaults()
		return resetResultMsg{path: path, err: err}
	}
}
