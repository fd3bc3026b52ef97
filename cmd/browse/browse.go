package browse

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dinerozz/planzo-web/config"
	"github.com/dinerozz/planzo-web/internal/apiclient"
	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/feed"
	"github.com/dinerozz/planzo-web/internal/scroll"
	"github.com/dinerozz/planzo-web/pkg/utils"
	"github.com/spf13/cobra"
)

func GetBrowseCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	var perPage int

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Scroll through upcoming events; press Enter to load more",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			api := apiclient.New(config.API.BaseURL, config.API.Timeout, apiclient.WithLogger(logger))
			return Run(ctx, api, cmd.InOrStdin(), cmd.OutOrStdout(), perPage)
		},
	}

	browseCmd.Flags().IntVarP(&perPage, "per-page", "n", 10, "Events per page")
	return browseCmd
}

// Run prints events page by page. Every line read from in scrolls the sentinel fully into
// view and back out.
func Run(ctx context.Context, lister feed.EventLister, in io.Reader, out io.Writer, perPage int) error {
	src := scroll.NewManualSource()
	pager := feed.NewPager(lister, src, perPage, func(page *entity.EventPage) {
		printPage(out, page)
	})
	defer pager.Stop()

	if err := pager.Start(ctx); err != nil {
		return fmt.Errorf("failed to load events: %s", apiclient.Message(err))
	}

	lines := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		if !pager.HasNextPage() {
			fmt.Fprintln(out, "-- end of events --")
			return nil
		}
		fmt.Fprintln(out, "-- press Enter for more --")

		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-lines:
			if !ok {
				return nil
			}
		}

		src.Show(feed.Sentinel, 1)
		src.Show(feed.Sentinel, 0)
		if err := pager.Err(); err != nil {
			fmt.Fprintf(out, "Error loading events: %s\n", apiclient.Message(err))
		}
	}
}

func printPage(out io.Writer, page *entity.EventPage) {
	for _, e := range page.Events {
		fmt.Fprintf(out, "%s  %-40s  %s  %s\n", utils.FormatEventTime(e.Date), e.Title, e.Location, e.TicketPrice.StringFixed(2))
	}
}
