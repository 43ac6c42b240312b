package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Billy-Davies-2/pokedex-ui/internal/client/list"
	"github.com/Billy-Davies-2/pokedex-ui/internal/client/session"
	"github.com/Billy-Davies-2/pokedex-ui/internal/client/signal"
)

var (
	listSearch string
	listSort   string
	listPages  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse or search the pokedex",
	Long: `Browse the paginated pokedex, loading successive pages the way the web
client does as you scroll, or run a single-shot search with --search.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Exact name or number to search for")
	listCmd.Flags().StringVar(&listSort, "sort", "number", "Presentation order: number or name")
	listCmd.Flags().IntVar(&listPages, "pages", 1, "Number of pages to load while browsing")
}

func runList(cmd *cobra.Command, args []string) error {
	if err := requireToken(); err != nil {
		return err
	}

	state := session.NewSearchState()
	state.SetSortOrder(listSort)

	controller := list.NewController(newClient())
	defer controller.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	if listSearch != "" {
		state.SetTerm(listSearch)
		// A flag value is already settled; skip the keystroke debounce.
		controller.ApplySearch(ctx, listSearch)
	} else {
		controller.Start(ctx)

		// Simulate the scroll sentinel for the requested number of pages.
		bus := signal.NewBus()
		unbind := controller.Bind(bus)
		defer unbind()
		for page := 2; page <= listPages; page++ {
			if !controller.Snapshot().HasMore {
				break
			}
			bus.Publish(signal.Event{Type: signal.SentinelVisible})
			waitForPage(ctx, controller, page)
		}
	}

	snapshot := controller.Snapshot()
	if len(snapshot.Items) == 0 {
		if snapshot.Mode == list.ModeSearching {
			fmt.Println("No pokemon found. Try another name or number.")
		} else {
			fmt.Println("No pokemon loaded.")
		}
		return nil
	}

	for _, p := range controller.Sorted(list.SortKey(state.SortOrder())) {
		fmt.Printf("#%04d  %s\n", p.Number, p.Name)
	}
	if !snapshot.HasMore && snapshot.Mode == list.ModeBrowsing {
		fmt.Println("-- end of list --")
	}
	return nil
}

// waitForPage polls until the sentinel-triggered load of the given page has
// settled. The bus delivers asynchronously, so plain loading checks would
// race the dispatch.
func waitForPage(ctx context.Context, controller *list.Controller, page int) {
	for {
		snap := controller.Snapshot()
		if (snap.Page >= page && !snap.Loading) || !snap.HasMore {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(20 * time.Millisecond):
		}
	}
}
