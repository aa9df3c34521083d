package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexcomb/hexcomb/pkg/hex"
)

// newVariantsCmd creates the variants command listing the hexagon
// orientation variants and their anchor conventions.
func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the available hexagon variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printTitle("Hexagon variants")
			printNewline()
			for _, v := range hex.Variants() {
				name := string(v)
				if v == hex.VariantCenter {
					name += " (default)"
				}
				fmt.Println("  " + styleHighlight.Render(fmt.Sprintf("%-20s", name)) + styleDim.Render(v.Description()))
			}
		},
	}
}
