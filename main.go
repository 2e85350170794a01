package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"limbo/artwork"
	"limbo/config"
	"limbo/gallery"
	"limbo/mask"
	"limbo/pages"
	"limbo/reveal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Load the catalog, falling back to the pieces shipped with the site
	catalog, err := artwork.Scan(cfg.ArtworkDir)
	if err != nil || len(catalog) == 0 {
		log.WithError(err).WithField("dir", cfg.ArtworkDir).Warn("no scanned artworks, using the built-in list")
		catalog = artwork.DefaultCatalog()
	}
	if cfg.Artist != "" {
		selected, ok := gallery.SelectOrAll(catalog, cfg.Artist)
		fields := logrus.Fields{
			"artist":  cfg.Artist,
			"artists": gallery.Artists(gallery.FromCatalog(catalog)),
			"pieces":  len(selected),
		}
		if ok {
			log.WithFields(fields).Info("artwork filtered")
		} else {
			log.WithFields(fields).Warn("no artwork by artist, showing every piece")
		}
		catalog = selected
	}

	game := &Game{
		cfg:     cfg,
		log:     log.WithField("component", "host"),
		ctx:     ctx,
		catalog: catalog,
		nav:     pages.NewNavigator(pages.Home),
		views:   make(map[string]*ebiten.Image),
		loads:   make(map[string]<-chan artwork.Result),
	}
	game.input.NoCursor = coarsePointerOnly()
	for i := range catalog {
		game.nav.Register(pages.ArtworkID(artworkKey(i)))
	}

	if coarsePointerOnly() && cfg.FinePointerOnly {
		log.Info("no precise pointer, reveal disabled")
	} else {
		builder, err := mask.NewBuilder(cfg.MaskText)
		if err != nil {
			log.Fatal(err)
		}
		game.masks = func(w, h int) (reveal.Protector, error) {
			return builder.Build(w, h)
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		piece, err := catalog.Pick(rng)
		if err != nil {
			log.Fatal(err)
		}
		log.WithField("artwork", piece.Path).Debug("loading artwork")
		game.pending = artwork.LoadAsync(piece)
	}

	// Optional soundtrack
	if cfg.Music != "" {
		player, err := loopMusic(audio.NewContext(sampleRate), cfg.Music)
		if err != nil {
			log.WithError(err).Warn("soundtrack disabled")
		} else {
			game.player = player
			player.Play()
		}
	}
	defer game.CloseAudio()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// coarsePointerOnly reports platforms where the only pointer is a finger.
func coarsePointerOnly() bool {
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}
