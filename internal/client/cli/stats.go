package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) stats(ctx context.Context) {
	weekly, err := a.sessions.WeeklyCount(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	reduction, err := a.sessions.AverageSudsReduction(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	streak, err := a.streaks.Get(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	urgeRate, err := a.urges.SuccessRate(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Sessions this week:     %d\n", weekly)
	fmt.Printf("Avg SUDS reduction:     %.1f\n", reduction)
	fmt.Printf("Current streak:         %d day(s)\n", streak.CurrentStreak)
	fmt.Printf("Longest streak:         %d day(s)\n", streak.LongestStreak)
	fmt.Printf("Urge waits completed:   %.0f%%\n", urgeRate*100)
}
