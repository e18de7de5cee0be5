package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/ids"
	"github.com/dreamtides/dtengine/internal/logger"
)

// maxActionsPerGame bounds a simulated game's action count, matching the
// teacher's own simulation loop's implicit "a game that hasn't ended by now
// never will" escape hatch, since a random-action policy can in principle
// shuffle energy and priority back and forth without making progress.
const maxActionsPerGame = 2000

var (
	simulateGames int
	simulateSeed  int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run random-policy games against the built-in sample card pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := simulateSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		cat, err := catalog.Build(sampleCards())
		if err != nil {
			return fmt.Errorf("building catalog: %w", err)
		}

		wins := map[ids.PlayerName]int{ids.PlayerOne: 0, ids.PlayerTwo: 0}
		draws := 0

		logger.LogMeta("simulating %d games against the sample pool", simulateGames)
		for i := 0; i < simulateGames; i++ {
			s, err := newDemoBattle(cat, seed+int64(i))
			if err != nil {
				return fmt.Errorf("setting up game %d: %w", i, err)
			}
			rng := rand.New(rand.NewSource(seed + int64(i)))

			for action := 0; action < maxActionsPerGame && !s.Status.Over; action++ {
				player := s.NextToAct()
				legal := s.LegalActions(player)
				if len(legal) == 0 {
					break
				}
				if err := s.Execute(player, legal[rng.Intn(len(legal))]); err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}
			}

			switch {
			case !s.Status.Over:
				draws++
			case s.Status.Winner == nil:
				draws++
			default:
				wins[*s.Status.Winner]++
			}
		}

		fmt.Printf("games: %d\n", simulateGames)
		fmt.Printf("player one wins: %d\n", wins[ids.PlayerOne])
		fmt.Printf("player two wins: %d\n", wins[ids.PlayerTwo])
		fmt.Printf("draws/incomplete: %d\n", draws)
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simulateGames, "games", 1, "number of games to simulate")
	simulateCmd.Flags().Int64Var(&simulateSeed, "seed", 0, "rng seed (0 picks one from the current time)")
}
