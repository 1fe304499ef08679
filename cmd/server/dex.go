package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/godex/internal/config"
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/orchestrators/dex"
	"github.com/KirkDiggler/godex/internal/orchestrators/gym"
)

func newDexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dex",
		Short: "Query the catalog locally",
		Long:  `Dex commands run the engine in-process over the configured catalog without a server.`,
	}

	cmd.AddCommand(
		newCreatureCmd(),
		newMoveCmd(),
		newListCmd(),
		newStatsCmd(),
		newRollCmd(),
		newFamilyCmd(),
		newEvolveCmd(),
		newGymCmd(),
	)
	return cmd
}

// localServices builds the orchestrators from the config file without
// starting a server.
func localServices() (*services, error) {
	cfg, err := config.Load(config.ResolvePath(configPath))
	if err != nil {
		return nil, err
	}
	return newServices(cfg)
}

func newCreatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "creature [name]",
		Short: "Show a creature with its effectiveness, moves and figures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := localServices()
			if err != nil {
				return err
			}
			out, err := svc.Dex.GetCreature(cmd.Context(), &dex.GetCreatureInput{Search: args[0]})
			if err != nil {
				return err
			}
			printCreature(cmd.OutOrStdout(), out.Creature)
			return nil
		},
	}
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [name]",
		Short: "Show the DPS figures of a move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := localServices()
			if err != nil {
				return err
			}
			out, err := svc.Dex.EvaluateMove(cmd.Context(), &dex.EvaluateMoveInput{Search: args[0]})
			if err != nil {
				return err
			}
			printMove(cmd.OutOrStdout(), out.Metrics)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var typeKey string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog creatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := localServices()
			if err != nil {
				return err
			}
			out, err := svc.Dex.ListCreatures(cmd.Context(), &dex.ListCreaturesInput{Type: typeKey})
			if err != nil {
				return err
			}
			printCreatureList(cmd.OutOrStdout(), out.Creatures)
			return nil
		},
	}
	cmd.Flags().StringVar(&typeKey, "type", "", "only list creatures of this type")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var (
		level float64
		ivs   string
	)
	cmd := &cobra.Command{
		Use:   "stats [name]",
		Short: "Calculate CP, HP and power-up cost at a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spread, err := parseIVs(ivs)
			if err != nil {
				return err
			}
			svc, err := localServices()
			if err != nil {
				return err
			}
			out, err := svc.Dex.CalculateStats(cmd.Context(), &dex.CalculateStatsInput{
				Search: args[0],
				Level:  level,
				IVs:    spread,
			})
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&level, "level", godex.ReferenceLevel, "level, in half-level steps")
	cmd.Flags().StringVar(&ivs, "ivs", "0/0/0", "attack/defense/stamina IVs")
	return cmd
}

func newRollCmd() *cobra.Command {
	var level float64
	cmd := &cobra.Command{
		Use:   "roll [name]",
		Short: "Roll a random IV spread and show the resulting CP and HP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := localServices()
			if err != nil {
				return err
			}
			out, err := svc.Dex.RollIVs(cmd.Context(), &dex.RollIVsInput{Search: args[0], Level: level})
			if err != nil {
				return err
			}
			printRoll(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&level, "level", godex.ReferenceLevel, "level, in half-level steps")
	return cmd
}

func newFamilyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "family [name]",
		Short: "Show a creature's evolution family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := localServices()
			if err != nil {
				return err
			}
			out, err := svc.Dex.GetFamilyTree(cmd.Context(), &dex.GetFamilyTreeInput{Search: args[0]})
			if err != nil {
				return err
			}
			printFamily(cmd.OutOrStdout(), out.Creature, out.Family)
			return nil
		},
	}
}

func newEvolveCmd() *cobra.Command {
	var cp, candy int
	cmd := &cobra.Command{
		Use:   "evolve [name]",
		Short: "Project the CP and candy cost of each evolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := localServices()
			if err != nil {
				return err
			}
			out, err := svc.Dex.CanEvolve(cmd.Context(), &dex.CanEvolveInput{
				Search: args[0],
				CP:     cp,
				Candy:  candy,
			})
			if err != nil {
				return err
			}
			printProjection(cmd.OutOrStdout(), out.Creature, out.Projection)
			return nil
		},
	}
	cmd.Flags().IntVar(&cp, "cp", 0, "current CP")
	cmd.Flags().IntVar(&candy, "candy", 0, "candy on hand")
	return cmd
}

func newGymCmd() *cobra.Command {
	var invertOffense, invertDefense bool
	cmd := &cobra.Command{
		Use:   "gym [name...]",
		Short: "Report type coverage for a roster of creatures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := localServices()
			if err != nil {
				return err
			}
			return runGymReport(cmd.Context(), cmd, svc.Gym, args, invertOffense, invertDefense)
		},
	}
	cmd.Flags().BoolVar(&invertOffense, "invert-offense", false, "list offense scores weakest first")
	cmd.Flags().BoolVar(&invertDefense, "invert-defense", false, "list defense scores weakest first")
	return cmd
}

func runGymReport(
	ctx context.Context,
	cmd *cobra.Command,
	gymService gym.Service,
	members []string,
	invertOffense, invertDefense bool,
) error {
	created, err := gymService.CreateRoster(ctx, &gym.CreateRosterInput{Members: members})
	if err != nil {
		return err
	}
	defer func() {
		_, _ = gymService.DeleteRoster(ctx, &gym.DeleteRosterInput{RosterID: created.Report.ID})
	}()

	report := created.Report
	if invertOffense || invertDefense {
		got, err := gymService.GetReport(ctx, &gym.GetReportInput{
			RosterID:      report.ID,
			InvertOffense: invertOffense,
			InvertDefense: invertDefense,
		})
		if err != nil {
			return err
		}
		report = got.Report
	}

	printReport(cmd.OutOrStdout(), report, created.Skipped)
	return nil
}

// parseIVs reads an "attack/defense/stamina" triple. Range checks are left
// to the engine.
func parseIVs(s string) (godex.IVs, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return godex.IVs{}, errors.InvalidArgumentf("ivs %q must be attack/defense/stamina", s)
	}

	values := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return godex.IVs{}, errors.InvalidArgumentf("ivs %q must be whole numbers", s)
		}
		values[i] = v
	}
	return godex.IVs{Attack: values[0], Defense: values[1], Stamina: values[2]}, nil
}
