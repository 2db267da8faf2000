package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// logUrge records a reassurance urge, shows the adaptively assigned wait,
// and asks how the wait went.
func (a *App) logUrge(ctx context.Context) {
	trigger, err := GetSimpleText(a.reader, "What triggered the urge? (optional)", os.Stdout)
	if err != nil {
		return
	}

	urgency, err := GetBoundedInt(a.reader, "How strong is the urge?", 1, 10, os.Stdout)
	if err != nil {
		return
	}

	urge, err := a.urges.Create(ctx, trigger, urgency)
	if err != nil {
		log.Println(err.Error())
		return
	}

	wait := urge.WaitDurationSeconds
	fmt.Printf("Try waiting %d:%02d before seeking reassurance.\n", wait/60, wait%60)
	fmt.Println("Come back when the wait is over (or when you gave in).")

	answer, err := GetSimpleText(a.reader, "Did you resist for the full wait? (y/n)", os.Stdout)
	if err != nil {
		return
	}
	completed := strings.EqualFold(answer, "y")

	var tools []string
	if completed {
		line, _ := GetSimpleText(a.reader, "Which tools helped? (comma-separated, optional)", os.Stdout)
		for _, t := range strings.Split(line, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tools = append(tools, t)
			}
		}
	}

	if _, err := a.urges.Resolve(ctx, urge.ID, completed, tools); err != nil {
		log.Println(err.Error())
		return
	}

	if completed {
		fmt.Println("Well done. Future waits will adapt to your progress.")
	} else {
		fmt.Println("Logged. The next wait will be a little shorter.")
	}
}
