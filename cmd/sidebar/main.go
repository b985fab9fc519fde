// Command sidebar mounts the contest feed widget once against a running
// aggregation endpoint and prints the rendered entries. Useful for eyeballing
// the feed without a browser.
package main

import (
	"context"
	"fmt"
	"os"

	"canonforces/internal/feed"
	"canonforces/internal/platform/config"
)

func main() {
	config.Load()

	widget := feed.NewWidget(config.AppConfig.FeedEndpointURL)
	state := widget.Load(context.Background())

	switch state {
	case feed.StateError:
		fmt.Fprintf(os.Stderr, "Failed to load: %v\n", widget.Err())
		os.Exit(1)
	case feed.StateReady:
		entries := widget.Entries()
		if len(entries) == 0 {
			fmt.Println("No upcoming contests")
			return
		}
		for _, entry := range entries {
			badge := ""
			if entry.Today {
				badge = " [Today]"
			}
			marker := ""
			if entry.LinkKind == feed.LinkExternal {
				marker = " ↗"
			}
			fmt.Printf("%-12s %s%s\n", entry.Platform, entry.ContestName, badge)
			fmt.Printf("             %s · %s · %s%s\n", entry.DisplayTime, entry.Duration, entry.ContestLink, marker)
		}
	}
}
