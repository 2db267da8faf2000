package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	stdsync "sync"
	"time"

	"github.com/avoganov/ancora/internal/client/session"
)

// SUDS readings use the 0-10 subjective distress scale.
const (
	sudsMin = 0
	sudsMax = 10
)

// parseSUDS validates a distress reading against the SUDS scale.
func parseSUDS(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < sudsMin || n > sudsMax {
		return 0, fmt.Errorf("SUDS must be a number between %d and %d", sudsMin, sudsMax)
	}
	return n, nil
}

// runSession drives one timed exposure attempt. The machine itself is
// single-goroutine; the wall-clock ticker and the input loop share it
// under a mutex.
func (a *App) runSession(ctx context.Context, args []string) {
	e, err := a.pickExposure(ctx, args)
	if err != nil {
		log.Println(err.Error())
		return
	}

	m := session.NewMachine(a.clock)
	if err := m.Send(session.StartSession{Exposure: e}); err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Session on '%s'. The delay timer runs %d minutes.\n",
		e.TriggerDescription, session.DefaultTargetSeconds/60)
	if _, err := GetSimpleText(a.reader, "Press Enter to begin the delay (or type 'cancel')", os.Stdout); err != nil {
		return
	}

	var mu stdsync.Mutex
	if err := m.Send(session.BeginDelay{}); err != nil {
		log.Println(err.Error())
		return
	}

	tickerCtx, stopTicker := context.WithCancel(ctx)
	defer stopTicker()

	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-tickerCtx.Done():
				return
			case <-t.C:
				mu.Lock()
				if m.State() != session.StateDelay {
					mu.Unlock()
					return
				}
				_ = m.Send(session.TimerTick{})
				snap := m.Snapshot()
				if snap.ElapsedSeconds >= snap.TargetSeconds {
					_ = m.Send(session.TimerComplete{})
					mu.Unlock()
					fmt.Println("\nDelay complete! Press Enter to continue.")
					return
				}
				mu.Unlock()
			}
		}
	}()

	fmt.Println("During the delay: 'suds <n>' log distress, 'extend <min>' lengthen,")
	fmt.Println("'left' time remaining, 'done' finish early, 'cancel' abandon")

delay:
	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			mu.Lock()
			_ = m.Send(session.Cancel{})
			mu.Unlock()
			return
		}

		mu.Lock()
		if m.State() == session.StateReflection {
			mu.Unlock()
			break delay
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			mu.Unlock()
			continue
		}

		switch parts[0] {
		case "suds":
			if len(parts) < 2 {
				fmt.Printf("Usage: suds <%d-%d>\n", sudsMin, sudsMax)
				break
			}
			n, err := parseSUDS(parts[1])
			if err != nil {
				fmt.Println(err.Error())
				break
			}
			_ = m.Send(session.LogSUDS{Value: n})
			fmt.Printf("Logged SUDS %d\n", n)
		case "extend":
			if len(parts) < 2 {
				fmt.Println("Usage: extend <minutes>")
				break
			}
			n, err := strconv.Atoi(parts[1])
			if err != nil || n < 1 {
				fmt.Println("Minutes must be a positive number")
				break
			}
			_ = m.Send(session.ExtendTimer{Seconds: n * 60})
			fmt.Printf("Extended by %d minute(s)\n", n)
		case "left":
			snap := m.Snapshot()
			remaining := snap.TargetSeconds - snap.ElapsedSeconds
			fmt.Printf("%d:%02d remaining\n", remaining/60, remaining%60)
		case "done":
			_ = m.Send(session.CompleteEarly{})
			mu.Unlock()
			break delay
		case "cancel":
			_ = m.Send(session.Cancel{})
			mu.Unlock()
			fmt.Println("Session abandoned. Nothing was recorded.")
			return
		default:
			fmt.Printf("Unknown command: %s\n", parts[0])
		}
		mu.Unlock()
	}
	stopTicker()

	// reflection phase; the timer is gone, the machine is ours alone now
	text, err := GetMultiline(a.reader, "How did it go? What did you notice?", os.Stdout)
	if err != nil {
		text = ""
	}

	audioPath, _ := GetSimpleText(a.reader, "Path to a voice memo file (empty to skip)", os.Stdout)
	audio := ""
	if audioPath != "" {
		audio, err = a.resolveAudio(ctx, audioPath)
		if err != nil {
			log.Println(err.Error())
			audio = ""
		}
	}

	if text == "" && audio == "" {
		_ = m.Send(session.SkipReflection{})
	} else {
		_ = m.Send(session.SubmitReflection{Text: text, Audio: audio})
	}

	sess, err := a.completer.Finalize(ctx, m)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Session recorded: %s, %d seconds", sess.Outcome, sess.DurationSeconds)
	if sess.SudsEnd != nil {
		fmt.Printf(", SUDS %d -> %d", sess.SudsStart, *sess.SudsEnd)
	}
	fmt.Println()

	if streak, err := a.streaks.Get(ctx); err == nil && streak.CurrentStreak > 0 {
		fmt.Printf("Streak: %d day(s)\n", streak.CurrentStreak)
	}
}
