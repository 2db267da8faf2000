package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) syncNow(ctx context.Context) {
	if !a.engine.Running() {
		fmt.Println("Sync is not active. Changes are kept locally and pushed when online.")
		return
	}

	if err := a.engine.PushPending(ctx); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("Pending changes pushed.")
}

func (a *App) status(ctx context.Context) {
	fmt.Printf("Mode:        %s\n", a.Mode)
	fmt.Printf("Server:      %s\n", a.config.ServerEndpointAddr)
	fmt.Printf("Sync engine: running=%v\n", a.engine.Running())

	if err := a.engine.LastPushError(); err != nil {
		fmt.Printf("Last push:   %s\n", err.Error())
	}
}
