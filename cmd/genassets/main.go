// genassets writes the placeholder sprites for the mining game into assets/.
// It takes no arguments; everything it draws is fixed in the embedded catalog.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/1siamBot/placeholder-assets/engine/assets"
)

func main() {
	log.SetFlags(0)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cat, err := assets.DefaultCatalog()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	g := assets.NewGenerator(assets.DefaultDir)
	g.Logger = logger
	g.Fonts.Logger = logger
	err = assets.Run(g, cat)
	g.Fonts.Close()
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
}
