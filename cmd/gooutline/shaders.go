package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/philipparndt/gooutline/internal/outline"
	"github.com/philipparndt/gooutline/internal/shader"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	codeStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475a")).
			Padding(0, 1)
)

var shadersCmd = &cobra.Command{
	Use:       "shaders [style...]",
	Short:     "Print the outline shader programs",
	Long:      "Print the GLSL sources, attributes and uniforms of the registered outline programs. Without arguments every style is shown.",
	ValidArgs: []string{"rim", "shell"},
	RunE:      runShaders,
}

func init() {
	rootCmd.AddCommand(shadersCmd)
}

func runShaders(cmd *cobra.Command, args []string) error {
	styles := outline.Styles
	if len(args) > 0 {
		styles = nil
		for _, a := range args {
			s, err := outline.ParseStyle(a)
			if err != nil {
				return err
			}
			styles = append(styles, s)
		}
	}

	reg := shader.NewRegistry(nil, nil)
	reg.RegisterDefaults()

	for _, s := range styles {
		vs, fs, ok := reg.Source(s)
		if !ok {
			return fmt.Errorf("%s: %w", s.ProgramName(), shader.ErrNotRegistered)
		}
		lo, hi := s.Range()

		fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%s)", s.ProgramName(), s)))
		fmt.Println(field("attributes", strings.Join(outline.Attributes(s), ", ")))
		fmt.Println(field("uniforms", strings.Join(outline.Uniforms(s), ", ")))
		fmt.Println(field("scale", fmt.Sprintf("[%g, %g] default %g", lo, hi, s.DefaultScale())))
		fmt.Println(labelStyle.Render("vertex"))
		fmt.Println(codeStyle.Render(strings.TrimRight(vs, "\n")))
		fmt.Println(labelStyle.Render("fragment"))
		fmt.Println(codeStyle.Render(strings.TrimRight(fs, "\n")))
		fmt.Println()
	}
	return nil
}

func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}
