package run

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"crosswalk/internal/catalog"
	"crosswalk/internal/catalog/spotify"
	"crosswalk/internal/config"
	"crosswalk/internal/logging"
	"crosswalk/internal/match"
	"crosswalk/internal/opportunity"
	"crosswalk/internal/reconcile"
	"crosswalk/internal/registry"
	"crosswalk/internal/registry/mlc"
	"crosswalk/internal/registry/songview"
	"crosswalk/internal/report"
	"crosswalk/internal/services"
	"crosswalk/internal/textutil"
)

// lockFileName guards the output tree against concurrent runs.
const lockFileName = ".crosswalk.lock"

// Source identifies where one run's catalog comes from. Exactly one field
// should be set; a local file takes precedence over the streaming API.
type Source struct {
	// ArtistInput is a streaming artist URL or bare artist ID.
	ArtistInput string
	// InputFile is a local catalog export consumed instead of the API.
	InputFile string
}

// Result is the complete outcome of one analysis run.
type Result struct {
	RunID      string
	OutputDir  string
	Batch      *catalog.Batch
	Outcomes   []match.Outcome
	Aggregate  reconcile.Result
	Summary    opportunity.Summary
	Artifacts  []string
	StartedAt  time.Time
	FinishedAt time.Time
}

// CatalogFetcher retrieves an artist's recordings from the streaming API.
type CatalogFetcher func(ctx context.Context, artistID string) (*catalog.Batch, error)

// Runner wires the full analysis flow together from validated configuration.
type Runner struct {
	cfg       *config.Config
	logger    *slog.Logger
	providers []registry.Provider
	fetch     CatalogFetcher
	now       func() time.Time
}

// Option customizes a Runner, mainly for tests.
type Option func(*Runner)

// WithProviders replaces the registry providers built from configuration.
func WithProviders(providers ...registry.Provider) Option {
	return func(r *Runner) {
		r.providers = providers
	}
}

// WithCatalogFetcher replaces the streaming-API catalog fetcher.
func WithCatalogFetcher(fetch CatalogFetcher) Option {
	return func(r *Runner) {
		r.fetch = fetch
	}
}

// WithClock fixes the runner's time source.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// New builds a runner from validated configuration. Policy and scoring
// mistakes surface here, before any network call.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "run", "new", "configuration is required", nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	r := &Runner{cfg: cfg, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	if err := PolicyFromConfig(cfg.Matching).Validate(); err != nil {
		return nil, err
	}
	if err := WeightsFromConfig(cfg.Opportunity).Validate(); err != nil {
		return nil, err
	}

	if r.providers == nil {
		providers, err := buildProviders(cfg)
		if err != nil {
			return nil, err
		}
		r.providers = providers
	}
	return r, nil
}

func buildProviders(cfg *config.Config) ([]registry.Provider, error) {
	client, err := mlc.New(cfg.MLC.BaseURL,
		mlc.WithPageSize(cfg.MLC.PageSize),
		mlc.WithRetry(cfg.MLC.MaxRetries, time.Second),
	)
	if err != nil {
		return nil, err
	}
	providers := []registry.Provider{client}
	if cfg.Songview.Enabled {
		providers = append(providers, songview.New())
	}
	return providers, nil
}

// Execute runs the full analysis for one source and writes every report
// artifact into a fresh timestamped directory under the configured output
// root.
func (r *Runner) Execute(ctx context.Context, source Source) (*Result, error) {
	started := r.now()
	runID := uuid.NewString()
	log := r.logger.With(logging.String("run_id", runID))

	batch, sourceURL, err := r.resolveBatch(ctx, source, log)
	if err != nil {
		return nil, err
	}
	log.Info("catalog resolved",
		logging.String("artist", batch.ArtistName),
		logging.Int("recordings", len(batch.Recordings)))

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure output root: %w", err)
	}
	lock := flock.New(filepath.Join(r.cfg.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrConfiguration, "run", "lock",
			"another analysis is writing to "+r.cfg.OutputDir, nil)
	}
	defer lock.Unlock()

	pipeline, err := match.NewPipeline(r.providers, PolicyFromConfig(r.cfg.Matching), log,
		match.WithConcurrency(r.cfg.Matching.Concurrency))
	if err != nil {
		return nil, err
	}
	outcomes := pipeline.MatchAll(ctx, batch.Recordings)

	agg := reconcile.Aggregate(outcomes)
	log.Info("reconciliation complete",
		logging.Int("works", len(agg.Works)),
		logging.Int("links", len(agg.Links)))

	analyzer, err := opportunity.NewAnalyzer(WeightsFromConfig(r.cfg.Opportunity), r.cfg.Opportunity.MajorPublishers)
	if err != nil {
		return nil, err
	}
	summary := analyzer.Analyze(outcomes, agg)
	log.Info("opportunity scored",
		logging.Int("score", summary.Score),
		logging.String("level", string(summary.Level)))

	outputDir := filepath.Join(r.cfg.OutputDir, runFolderName(batch.ArtistName, started))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}

	meta := report.Meta{
		ArtistName:  batch.ArtistName,
		ArtistID:    batch.ArtistID,
		SourceURL:   sourceURL,
		GeneratedAt: started,
	}
	artifacts, err := report.NewGenerator(outputDir, log).WriteAll(meta, outcomes, agg, summary)
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:      runID,
		OutputDir:  outputDir,
		Batch:      batch,
		Outcomes:   outcomes,
		Aggregate:  agg,
		Summary:    summary,
		Artifacts:  artifacts,
		StartedAt:  started,
		FinishedAt: r.now(),
	}, nil
}

func (r *Runner) resolveBatch(ctx context.Context, source Source, log *slog.Logger) (*catalog.Batch, string, error) {
	if source.InputFile != "" {
		batch, err := catalog.LoadFile(source.InputFile)
		if err != nil {
			return nil, "", err
		}
		if batch.ArtistName == "" {
			batch.ArtistName = strings.TrimSuffix(filepath.Base(source.InputFile), filepath.Ext(source.InputFile))
		}
		return batch, "", nil
	}

	artistID, err := spotify.ExtractArtistID(source.ArtistInput)
	if err != nil {
		return nil, "", err
	}
	fetch := r.fetch
	if fetch == nil {
		fetch, err = r.streamingFetcher(ctx)
		if err != nil {
			return nil, "", err
		}
	}
	log.Info("fetching catalog", logging.String("artist_id", artistID))
	batch, err := fetch(ctx, artistID)
	if err != nil {
		return nil, "", err
	}
	return batch, "https://open.spotify.com/artist/" + artistID, nil
}

func (r *Runner) streamingFetcher(ctx context.Context) (CatalogFetcher, error) {
	client, err := spotify.New(r.cfg.Spotify.ClientID, r.cfg.Spotify.ClientSecret)
	if err != nil {
		return nil, err
	}
	if err := client.Authenticate(ctx); err != nil {
		return nil, err
	}
	return client.FetchArtistCatalog, nil
}

// runFolderName builds ArtistName_YYYYMMDD_HHMMSS.
func runFolderName(artistName string, at time.Time) string {
	return textutil.ArtistFolder(artistName) + "_" + at.Format("20060102_150405")
}
