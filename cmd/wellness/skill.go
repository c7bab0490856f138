// ABOUTME: Install the wellness skill for AI coding assistants.
// ABOUTME: Embeds the skill definition and writes it to ~/.claude/skills/wellness/.

package main

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install the wellness skill",
	Long: `Install the wellness skill definition to ~/.claude/skills/wellness/
so assistants know when and how to use the wellness MCP tools.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		_, err = installSkill(home, cmd.InOrStdin(), skillSkipConfirm)
		return err
	},
}

// skillPath returns where the skill file is installed under home.
func skillPath(home string) string {
	return filepath.Join(home, ".claude", "skills", "wellness", "SKILL.md")
}

// installSkill writes the embedded skill under home. It returns false
// when the user declines.
func installSkill(home string, in io.Reader, skipConfirm bool) (bool, error) {
	path := skillPath(home)

	fmt.Println("This will install the wellness skill, enabling your assistant to:")
	fmt.Println()
	fmt.Println("  • Log weight, meals, mood and activity")
	fmt.Println("  • Check progress toward your weight goal")
	fmt.Println("  • Generate the weekly report")
	fmt.Println()
	fmt.Println("Destination:")
	fmt.Printf("  %s\n", path)
	fmt.Println()

	if _, err := os.Stat(path); err == nil {
		fmt.Println("Note: A skill file already exists and will be overwritten.")
		fmt.Println()
	}

	if !skipConfirm && !confirm(in, "Install the wellness skill? [y/N] ") {
		fmt.Println("Installation canceled.")
		return false, nil
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return false, fmt.Errorf("failed to read embedded skill: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return false, fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return false, fmt.Errorf("failed to write skill file: %w", err)
	}

	color.Green("✓ Installed wellness skill")
	return true, nil
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}
