package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := string(a.Mode)
	if a.config.UserID != "" {
		s = a.config.UserID + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to Ancora (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	a.maybeOnboard(ctx)
	a.showDueCheckIns(ctx)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Printf("ancora %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands:")
			fmt.Println("  ladder            show the fear ladder")
			fmt.Println("  add               add a ladder rung")
			fmt.Println("  edit <n>          edit rung n")
			fmt.Println("  delete <n>        delete rung n")
			fmt.Println("  reorder           reorder the ladder")
			fmt.Println("  session <n>       run an exposure session on rung n")
			fmt.Println("  urge              log a reassurance urge")
			fmt.Println("  checkins          answer due outcome check-ins")
			fmt.Println("  stats             progress overview")
			fmt.Println("  export <file>     export all data as JSON")
			fmt.Println("  sync              push pending changes now")
			fmt.Println("  status            connection and sync state")
			fmt.Println("  exit")

		case "ladder", "l":
			a.ladder(ctx)
		case "add":
			a.addExposure(ctx)
		case "edit":
			a.editExposure(ctx, args)
		case "delete":
			a.deleteExposure(ctx, args)
		case "reorder":
			a.reorderLadder(ctx)
		case "session":
			a.runSession(ctx, args)
		case "urge":
			a.logUrge(ctx)
		case "checkins":
			a.answerCheckIns(ctx)
		case "stats":
			a.stats(ctx)
		case "export":
			a.exportData(ctx, args)
		case "sync":
			a.syncNow(ctx)
		case "status":
			a.status(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

func (a *App) maybeOnboard(ctx context.Context) {
	st, err := a.settings.Get(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if st.HasCompletedOnboarding {
		return
	}

	fmt.Println("Ancora helps you face feared situations in small, timed steps.")
	fmt.Println("Build a ladder of triggers, run delay sessions, and track how")
	fmt.Println("predictions compare with what actually happens.")

	if err := a.settings.SetOnboardingCompleted(ctx, true); err != nil {
		log.Println(err.Error())
	}
}

func (a *App) showDueCheckIns(ctx context.Context) {
	due, err := a.checkins.Pending(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if len(due) > 0 {
		fmt.Printf("You have %d outcome check-in(s) due. Type 'checkins' to answer.\n", len(due))
	}
}
