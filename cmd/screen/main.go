package main

import (
	"fmt"
	"log"

	"github.com/drakos74/free-screen/client"
	csv_source "github.com/drakos74/free-screen/client/csv"
	"github.com/drakos74/free-screen/client/local"
	"github.com/drakos74/free-screen/infra/config"
	"github.com/drakos74/free-screen/internal/fingerprint"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/screen"
	"github.com/drakos74/free-screen/internal/screen/learn"
	"github.com/drakos74/free-screen/internal/screen/query"
	json_storage "github.com/drakos74/free-screen/internal/storage/file/json"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Config gathers the experiment setup loaded from infra/config/screen.json.
type Config struct {
	Deck     string        `json:"deck"`
	Library  Library       `json:"library"`
	Print    Print         `json:"fingerprint"`
	Model    string        `json:"model"`
	Strategy string        `json:"strategy"`
	Screen   screen.Config `json:"screen"`
	Learn    learn.Config  `json:"learn"`
	Query    query.Config  `json:"query"`
}

// Library describes where the compound library comes from.
// File points to a csv library, if empty a synthetic one is generated.
type Library struct {
	File    string  `json:"file"`
	Size    int     `json:"size"`
	HitRate float64 `json:"hit_rate"`
}

// Print holds the fingerprint dimensions.
type Print struct {
	Width int `json:"width"`
	Size  int `json:"size"`
}

func main() {
	var cfg Config
	config.MustLoad("screen", &cfg)

	source := newSource(cfg)
	mm, err := source.Library()
	if err != nil {
		log.Fatalf("error loading library: %s", err.Error())
	}

	pool, err := fingerprint.Pool(mm, fingerprint.NewNGram(cfg.Print.Width, cfg.Print.Size))
	if err != nil {
		log.Fatalf("error building pool: %s", err.Error())
	}
	oracle := model.NewOracle(pool)

	learner, err := learn.Construct(cfg.Model, cfg.Learn)
	if err != nil {
		log.Fatalf("error creating model: %s", err.Error())
	}
	strategy, err := query.Construct(cfg.Strategy, cfg.Query)
	if err != nil {
		log.Fatalf("error creating strategy: %s", err.Error())
	}

	key := model.Key{
		Deck:     cfg.Deck,
		Model:    cfg.Model,
		Strategy: cfg.Strategy,
	}

	report, err := screen.NewExperiment(key, cfg.Screen, pool, oracle, learner, strategy).
		WithStorage(json_storage.BlobShard("screen")).
		WithRegistry(json_storage.EventRegistry("screen")).
		Run()
	if err != nil {
		log.Fatalf("error running experiment: %s", err.Error())
	}

	fmt.Println(report.Format())
}

func newSource(cfg Config) client.Source {
	if cfg.Library.File != "" {
		return csv_source.NewSource(cfg.Library.File)
	}
	return local.NewSource(cfg.Library.Size, cfg.Library.HitRate, cfg.Screen.Seed)
}
