package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Shokesu/chartify/pkg/options"
)

// logosCommand creates the logos command for inspecting the logo registry.
func (c *CLI) logosCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "logos",
		Short: "List the configured logo registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			globalOpts, err := c.loadOptions()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(globalOpts.Logos.Files))
			for name := range globalOpts.Logos.Files {
				names = append(names, name)
			}
			sort.Strings(names)

			if len(names) == 0 {
				printInfo("No logos configured")
				printDetail("Add a [logos] section to %s", c.configPathForDisplay())
				return nil
			}

			if pick {
				return runLogoPicker(names, globalOpts.Logos.Path, globalOpts.Logos.Files)
			}

			printInfo("Configured logos (%d)", len(names))
			for _, name := range names {
				path := filepath.Join(globalOpts.Logos.Path, globalOpts.Logos.Files[name])
				status := StyleSuccess.Render("*")
				if _, err := os.Stat(path); err != nil {
					status = StyleWarning.Render("!")
				}
				fmt.Printf("  %s %-20s %s\n", status, name, StyleDim.Render(path))
			}
			printDetail("%s on disk   %s missing file", StyleSuccess.Render("*"), StyleWarning.Render("!"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "interactively pick a logo and print its name")

	return cmd
}

// runLogoPicker launches the interactive logo list and prints the selection.
func runLogoPicker(names []string, dir string, files map[string]string) error {
	model := NewLogoListModel(names, dir, files)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	m, ok := final.(LogoListModel)
	if !ok || m.Selected == "" {
		printInfo("No logo selected")
		return nil
	}

	printSuccess("Selected %s", m.Selected)
	fmt.Println(m.Selected)
	return nil
}

// configPathForDisplay returns the config path the user should edit.
func (c *CLI) configPathForDisplay() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return options.DefaultConfigPath()
}
