package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Billy-Davies-2/pokedex-ui/internal/client/api"
	"github.com/Billy-Davies-2/pokedex-ui/internal/client/detail"
)

var (
	getNext int
	getPrev int
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one pokemon's details",
	Long: `Fetch one pokemon by numeric id, then optionally walk forward or
backward through its neighbors with --next / --prev, the way the web
client's detail arrows do.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().IntVar(&getNext, "next", 0, "After loading, step forward this many times")
	getCmd.Flags().IntVar(&getPrev, "prev", 0, "After loading, step backward this many times")
}

func runGet(cmd *cobra.Command, args []string) error {
	if err := requireToken(); err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id must be numeric: %q", args[0])
	}

	navigator := detail.NewNavigator(newClient())

	current, err := navigator.Load(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("pokemon %d not found", id)
		}
		return err
	}

	for i := 0; i < getNext; i++ {
		if current, err = navigator.Next(cmd.Context()); err != nil {
			return err
		}
	}
	for i := 0; i < getPrev; i++ {
		if current, err = navigator.Previous(cmd.Context()); err != nil {
			return err
		}
	}

	printDetail(current)
	return nil
}

func printDetail(p *api.PokemonDetail) {
	fmt.Printf("#%04d %s\n", p.Number, p.Name)
	fmt.Printf("Types:     %s\n", strings.Join(p.Types, ", "))
	fmt.Printf("Weight:    %.1f kg\n", p.Weight)
	fmt.Printf("Height:    %.1f m\n", p.Height)
	fmt.Printf("Abilities: %s\n", strings.Join(p.Abilities, ", "))

	keys := make([]string, 0, len(p.Stats))
	for k := range p.Stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-16s %d\n", k, p.Stats[k])
	}

	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
}
