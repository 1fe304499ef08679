package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/godex/internal/handlers/godex/v1alpha1"
)

var (
	rosterName    string
	invertOffense bool
	invertDefense bool
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage roster sessions on the gym service",
}

var rosterCreateCmd = &cobra.Command{
	Use:   "create [name...]",
	Short: "Open a roster session seeded with creatures",
	RunE: func(cmd *cobra.Command, args []string) error {
		members := make([]any, 0, len(args))
		for _, a := range args {
			members = append(members, a)
		}
		return call(cmd, v1alpha1.NewGymServiceClient, v1alpha1.GymServiceCreateRoster, map[string]any{
			"name":    rosterName,
			"members": members,
		})
	},
}

var rosterAddCmd = &cobra.Command{
	Use:   "add [roster-id] [name]",
	Short: "Add one copy of a creature to a roster",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewGymServiceClient, v1alpha1.GymServiceAddMember, map[string]any{
			"roster_id": args[0],
			"search":    args[1],
		})
	},
}

var rosterRemoveCmd = &cobra.Command{
	Use:   "remove [roster-id] [name]",
	Short: "Remove one copy of a creature from a roster",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewGymServiceClient, v1alpha1.GymServiceRemoveMember, map[string]any{
			"roster_id": args[0],
			"search":    args[1],
		})
	},
}

var rosterReportCmd = &cobra.Command{
	Use:   "report [roster-id]",
	Short: "Get the coverage report of a roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewGymServiceClient, v1alpha1.GymServiceGetReport, map[string]any{
			"roster_id":      args[0],
			"invert_offense": invertOffense,
			"invert_defense": invertDefense,
		})
	},
}

var rosterDeleteCmd = &cobra.Command{
	Use:   "delete [roster-id]",
	Short: "Close a roster session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewGymServiceClient, v1alpha1.GymServiceDeleteRoster, map[string]any{
			"roster_id": args[0],
		})
	},
}

func init() {
	rosterCreateCmd.Flags().StringVar(&rosterName, "name", "", "roster display name")
	rosterReportCmd.Flags().BoolVar(&invertOffense, "invert-offense", false, "list offense scores weakest first")
	rosterReportCmd.Flags().BoolVar(&invertDefense, "invert-defense", false, "list defense scores weakest first")

	rosterCmd.AddCommand(rosterCreateCmd, rosterAddCmd, rosterRemoveCmd, rosterReportCmd, rosterDeleteCmd)
}
