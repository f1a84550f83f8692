package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rebatedor/internal/registry"
)

const defaultVariant = "rebatedor"

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long: `Shows every registered variant. They differ in how collisions are debounced:
the standard variant shares one gate between walls, bricks and the paddle,
the split variant gives the paddle its own.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	variants := registry.List()
	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants registered.")
		return
	}

	width := len("ID")
	for _, v := range variants {
		width = max(width, len(v.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", width, "ID", "Title")
	for _, v := range variants {
		title := v.Title
		if v.ID == defaultVariant {
			title += " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s\n", width, v.ID, title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Start one with 'rebatedor play [id]'.")
}
