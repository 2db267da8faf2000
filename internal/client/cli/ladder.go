package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/services"
)

func (a *App) ladder(ctx context.Context) {
	items, err := a.exposures.GetAll(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(items) == 0 {
		fmt.Println("The ladder is empty. Use 'add' to create the first rung.")
		return
	}

	for i, e := range items {
		pred := ""
		if e.HasPrediction() {
			pred = fmt.Sprintf("  [predicts: %s, %d%%]", e.FearedOutcome, *e.FearedProbability)
		}
		fmt.Printf("%2d. %s  (SUDS %d->%d, %d sessions)%s\n",
			i+1, e.TriggerDescription, e.SudsInitial, e.SudsCurrent, e.CompletedCount, pred)
	}
}

func (a *App) addExposure(ctx context.Context) {
	trigger, err := GetSimpleText(a.reader, "Describe the trigger", os.Stdout)
	if err != nil || trigger == "" {
		fmt.Println("Cancelled.")
		return
	}

	suds, err := GetBoundedInt(a.reader, "How distressing is it right now?", sudsMin, sudsMax, os.Stdout)
	if err != nil {
		return
	}

	var fearedOutcome string
	var fearedProbability *int

	answer, _ := GetSimpleText(a.reader, "Add a feared-outcome prediction? (y/N)", os.Stdout)
	if strings.EqualFold(answer, "y") {
		fearedOutcome, err = GetSimpleText(a.reader, "What do you fear will happen?", os.Stdout)
		if err != nil {
			return
		}
		p, err := GetBoundedInt(a.reader, "How likely does it feel? (percent)", 0, 100, os.Stdout)
		if err != nil {
			return
		}
		fearedProbability = &p
	}

	e, err := a.exposures.Create(ctx, trigger, suds, fearedOutcome, fearedProbability)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("Added: %s\n", e.TriggerDescription)
}

// pickExposure resolves a 1-based ladder position from args or a prompt.
func (a *App) pickExposure(ctx context.Context, args []string) (*models.Exposure, error) {
	items, err := a.exposures.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("the ladder is empty")
	}

	var n int
	if len(args) > 0 {
		n, err = strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("not a ladder position: %s", args[0])
		}
	} else {
		a.ladder(ctx)
		n, err = GetBoundedInt(a.reader, "Which rung?", 1, len(items), os.Stdout)
		if err != nil {
			return nil, err
		}
	}

	if n < 1 || n > len(items) {
		return nil, fmt.Errorf("no rung %d", n)
	}
	return &items[n-1], nil
}

func (a *App) editExposure(ctx context.Context, args []string) {
	e, err := a.pickExposure(ctx, args)
	if err != nil {
		log.Println(err.Error())
		return
	}

	var upd services.ExposureUpdate

	trigger, _ := GetSimpleText(a.reader,
		fmt.Sprintf("Trigger [%s] (empty keeps current)", e.TriggerDescription), os.Stdout)
	if trigger != "" {
		upd.TriggerDescription = &trigger
	}

	answer, _ := GetSimpleText(a.reader, "Update current SUDS? (y/N)", os.Stdout)
	if strings.EqualFold(answer, "y") {
		suds, err := GetBoundedInt(a.reader, "Current SUDS", sudsMin, sudsMax, os.Stdout)
		if err != nil {
			return
		}
		upd.SudsCurrent = &suds
	}

	if _, err := a.exposures.Update(ctx, e.ID, upd); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("Updated.")
}

func (a *App) deleteExposure(ctx context.Context, args []string) {
	e, err := a.pickExposure(ctx, args)
	if err != nil {
		log.Println(err.Error())
		return
	}

	answer, _ := GetSimpleText(a.reader,
		fmt.Sprintf("Delete '%s'? This cannot be undone. (y/N)", e.TriggerDescription), os.Stdout)
	if !strings.EqualFold(answer, "y") {
		fmt.Println("Cancelled.")
		return
	}

	if err := a.exposures.Delete(ctx, e.ID); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("Deleted.")
}

func (a *App) reorderLadder(ctx context.Context) {
	items, err := a.exposures.GetAll(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if len(items) < 2 {
		fmt.Println("Nothing to reorder.")
		return
	}

	a.ladder(ctx)
	line, err := GetSimpleText(a.reader,
		"Enter the new order as current positions, e.g. '3 1 2'", os.Stdout)
	if err != nil {
		return
	}

	fields := strings.Fields(line)
	if len(fields) != len(items) {
		fmt.Printf("Expected %d positions, got %d\n", len(items), len(fields))
		return
	}

	ids := make([]string, 0, len(items))
	seen := make(map[int]bool)
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(items) || seen[n] {
			fmt.Printf("Invalid position: %s\n", f)
			return
		}
		seen[n] = true
		ids = append(ids, items[n-1].ID)
	}

	if err := a.exposures.Reorder(ctx, ids); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("Reordered.")
}
