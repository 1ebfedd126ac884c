package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/deskwm/internal/focus"
	"github.com/yourusername/deskwm/internal/types"
)

var focusWrap bool

var focusCmd = &cobra.Command{
	Use:   "focus <next|prev|left|right|up|down>",
	Short: "Move keyboard focus to another window",
	Long: `next and prev switch windows in most-recently-used order, restoring
minimized ones. Directions pick the nearest visible window from the
focused one's center.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := getDesktop(cmd)
		if err != nil {
			return err
		}

		c := newClient(cmd)
		defer c.Close()

		ctx := context.Background()
		var id uint32
		switch args[0] {
		case "next":
			id, err = focus.Cycle(ctx, c, d, true)
		case "prev":
			id, err = focus.Cycle(ctx, c, d, false)
		default:
			dir, ok := types.ParseDirection(args[0])
			if !ok {
				return fail("Invalid argument", fmt.Errorf("unknown direction %q", args[0]))
			}
			id, err = focus.Move(ctx, c, d, dir, focusWrap)
		}
		if err != nil {
			return fail("Focus failed", err)
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{"windowId": id})
		}
		successColor.Printf("✓ Focused window %d\n", id)
		return nil
	},
}

func init() {
	focusCmd.Flags().BoolVar(&focusWrap, "wrap", false, "Wrap to the opposite edge when nothing is in that direction")
}
