package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/spelldesk/spelldesk/internal/game"
	"github.com/spelldesk/spelldesk/internal/log"
)

// spelldesk-sim plays a scripted local match and prints the action log.
// Both sides follow the same greedy policy: place as many cards as the
// rules allow, then end the turn. Useful for eyeballing catalog balance
// under different seeds and weight files.

func main() {
	seed := flag.Int64("seed", 1, "random seed for the draw distributor")
	maxRounds := flag.Int("rounds", 50, "round limit before the sim gives up")
	weightsFile := flag.String("weights", "", "optional draw weights YAML")
	flag.Parse()

	catalog := game.DefaultCatalog()
	weights := game.DefaultWeights(catalog)
	if *weightsFile != "" {
		var err error
		weights, err = game.LoadWeights(*weightsFile, catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	g := game.NewGame(game.Config{
		ID:      "sim",
		Catalog: catalog,
		Draw:    game.NewDistributor(weights, rand.New(rand.NewSource(*seed))),
	})
	g.AddPlayer("p1", game.PlayerProps{Name: "Player 1"})
	g.AddPlayer("p2", game.PlayerProps{Name: "Player 2"})

	events := log.NewTextLogger(os.Stdout)
	events.Log(log.NewMatchStartedEvent(g.ID, g.Turn.PlayerID))

	for round := 1; g.State != game.StatusComplete; round++ {
		if round > *maxRounds {
			fmt.Printf("\nNo winner after %d rounds.\n", *maxRounds)
			return
		}

		playTurn(g, events)
		playTurn(g, events)

		for g.State == game.StatusExecutionTurn {
			for _, a := range g.PerformExecutionTurn() {
				events.Log(log.NewActionAppliedEvent(g.ID, a))
			}
		}
		events.Log(log.NewRoundCompletedEvent(g.ID, g.Turn.PlayerID))
	}

	fmt.Println()
	for _, p := range g.Players {
		fmt.Printf("%s: %d health\n", p.Name, p.Health)
		if g.IsWinner(p.ID) {
			fmt.Printf("%s wins.\n", p.Name)
		}
	}
}

// playTurn drives one player turn: pull, place greedily, end.
func playTurn(g *game.Game, events log.EventLogger) {
	playerID := g.Turn.PlayerID
	g.PullCard(playerID)

	for handSlot := 0; handSlot < game.HandSize; handSlot++ {
		deskSlot := firstPlaceable(g, playerID, handSlot)
		if deskSlot < 0 {
			continue
		}
		g.MoveCardFromHandToDesk(playerID, handSlot, deskSlot)
		events.Log(log.NewCardMovedEvent(g.ID, playerID, "hand→desk", handSlot, deskSlot))
	}

	g.CompleteTurn(playerID)
	events.Log(log.NewTurnCompletedEvent(g.ID, playerID))
}

func firstPlaceable(g *game.Game, playerID string, handSlot int) int {
	for deskSlot := 0; deskSlot < game.DeskSize; deskSlot++ {
		if g.CanMoveCardFromHandToDesk(playerID, handSlot, deskSlot) {
			return deskSlot
		}
	}
	return -1
}
