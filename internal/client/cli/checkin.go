package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avoganov/ancora/internal/client/models"
)

var checkInAnswers = map[string]models.CheckInResult{
	"y": models.ResultYes,
	"n": models.ResultNo,
	"p": models.ResultPartially,
	"u": models.ResultUnsure,
}

// answerCheckIns walks the user through every due outcome check-in.
func (a *App) answerCheckIns(ctx context.Context) {
	due, err := a.checkins.Pending(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if len(due) == 0 {
		fmt.Println("No check-ins due.")
		return
	}

	for _, c := range due {
		fmt.Printf("\nYou predicted: %q (%d%% likely)\n", c.FearedOutcome, c.PredictedProbability)

		answer := ""
		for checkInAnswers[answer] == "" {
			answer, err = GetSimpleText(a.reader,
				"Did it happen? (y)es / (n)o / (p)artially / (u)nsure, empty to skip", os.Stdout)
			if err != nil {
				return
			}
			if answer == "" {
				break
			}
		}
		if answer == "" {
			continue
		}

		notes, _ := GetSimpleText(a.reader, "Anything worth noting? (optional)", os.Stdout)

		if _, err := a.checkins.Complete(ctx, c.ID, checkInAnswers[answer], notes); err != nil {
			log.Println(err.Error())
			continue
		}
		fmt.Println("Recorded.")
	}
}
