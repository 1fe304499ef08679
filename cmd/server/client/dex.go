package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/godex/internal/handlers/godex/v1alpha1"
)

var (
	listType    string
	statsLevel  float64
	statsIVs    []int
	rollLevel   float64
	evolveCP    int
	evolveCandy int
)

var creatureCmd = &cobra.Command{
	Use:   "creature [name]",
	Short: "Get a creature with its derived figures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewDexServiceClient, v1alpha1.DexServiceGetCreature, map[string]any{
			"search": args[0],
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move [name]",
	Short: "Evaluate a move",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewDexServiceClient, v1alpha1.DexServiceEvaluateMove, map[string]any{
			"search": args[0],
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List creatures, optionally of one type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields := map[string]any{}
		if listType != "" {
			fields["type"] = listType
		}
		return call(cmd, v1alpha1.NewDexServiceClient, v1alpha1.DexServiceListCreatures, fields)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [name]",
	Short: "Calculate CP and HP at a level",
	Long: `Calculate CP, HP and power-up cost. Examples:

  stats bulbasaur --level 30.5 --ivs 10,5,3
  stats "mr. mime"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]any{
			"search": args[0],
			"level":  statsLevel,
		}
		if len(statsIVs) > 0 {
			ivs := map[string]any{}
			for i, stat := range []string{"attack", "defense", "stamina"} {
				if i < len(statsIVs) {
					ivs[stat] = statsIVs[i]
				}
			}
			fields["ivs"] = ivs
		}
		return call(cmd, v1alpha1.NewDexServiceClient, v1alpha1.DexServiceCalculateStats, fields)
	},
}

var rollCmd = &cobra.Command{
	Use:   "roll [name]",
	Short: "Roll a random IV spread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewDexServiceClient, v1alpha1.DexServiceRollIVs, map[string]any{
			"search": args[0],
			"level":  rollLevel,
		})
	},
}

var familyCmd = &cobra.Command{
	Use:   "family [name]",
	Short: "Get a creature's evolution family",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewDexServiceClient, v1alpha1.DexServiceGetFamilyTree, map[string]any{
			"search": args[0],
		})
	},
}

var evolveCmd = &cobra.Command{
	Use:   "evolve [name]",
	Short: "Project evolution CP and candy cost",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.NewDexServiceClient, v1alpha1.DexServiceCanEvolve, map[string]any{
			"search": args[0],
			"cp":     evolveCP,
			"candy":  evolveCandy,
		})
	},
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "only list creatures of this type")
	statsCmd.Flags().Float64Var(&statsLevel, "level", 20, "level, in half-level steps")
	statsCmd.Flags().IntSliceVar(&statsIVs, "ivs", nil, "attack,defense,stamina IVs")
	rollCmd.Flags().Float64Var(&rollLevel, "level", 20, "level, in half-level steps")
	evolveCmd.Flags().IntVar(&evolveCP, "cp", 0, "current CP")
	evolveCmd.Flags().IntVar(&evolveCandy, "candy", 0, "candy on hand")
}
