package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

const defaultExportFile = "ancora_export.json"

// exportData writes the full local dataset as indented JSON.
func (a *App) exportData(ctx context.Context, args []string) {
	path := defaultExportFile
	if len(args) > 0 {
		path = args[0]
	}

	data, err := a.export.JSON(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Exported %d bytes to %s\n", len(data), path)
}
