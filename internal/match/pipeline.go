package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"crosswalk/internal/catalog"
	"crosswalk/internal/logging"
	"crosswalk/internal/registry"
	"crosswalk/internal/services"
	"crosswalk/internal/textutil"
)

// Pipeline runs the ordered matching strategies for each recording against
// every configured provider and scores the resulting links.
type Pipeline struct {
	providers   []registry.Provider
	policy      Policy
	logger      *slog.Logger
	concurrency int
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithConcurrency bounds the per-recording fan-out in MatchAll.
func WithConcurrency(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewPipeline validates the policy and builds a pipeline over the providers.
func NewPipeline(providers []registry.Provider, policy Policy, logger *slog.Logger, opts ...PipelineOption) (*Pipeline, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return nil, services.Wrap(services.ErrConfiguration, "match", "pipeline", "at least one provider required", nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Pipeline{
		providers:   providers,
		policy:      policy,
		logger:      logger,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MatchRecording produces the full candidate link list for one recording.
// Provider failures degrade the recording to zero links with a diagnostic
// note; they never propagate. An empty link list is a valid terminal state.
func (p *Pipeline) MatchRecording(ctx context.Context, rec catalog.Recording) Outcome {
	normalized := Normalize(rec.Title)
	if normalized == "" {
		wrapped := services.Wrap(services.ErrMalformed, "match", "normalize",
			"recording "+rec.ID+": empty title", nil)
		p.logger.Warn("recording skipped for matching",
			logging.String("recording_id", rec.ID),
			logging.String("reason", "empty title after normalization"))
		return Outcome{Recording: rec, Note: wrapped.Error()}
	}

	var links []Link
	for _, provider := range p.providers {
		if rec.ISRC != "" {
			works, err := provider.LookupByCode(ctx, rec.ISRC)
			if err != nil {
				return p.degrade(rec, provider.Name(), "lookup_by_code", err)
			}
			for _, work := range works {
				links = append(links, Link{
					Recording:  rec,
					Work:       work,
					Strategy:   StrategyCodeMatch,
					Confidence: p.policy.CodeMatchConfidence,
					Notes:      "code match",
				})
			}
		}

		works, err := provider.SearchByTitle(ctx, normalized, rec.PrimaryArtist())
		if err != nil {
			return p.degrade(rec, provider.Name(), "search_by_title", err)
		}
		for _, work := range works {
			candidate := Normalize(work.Title)
			if candidate == "" {
				continue
			}
			similarity := textutil.SequenceSimilarity(normalized, candidate)
			p.logger.Debug("scoring text candidate",
				logging.String("recording_id", rec.ID),
				logging.String("provider", provider.Name()),
				logging.String("work_id", work.ID),
				logging.String("candidate_normalized", candidate),
				logging.Float64("similarity", similarity))
			if similarity < p.policy.SimilarityThreshold {
				continue
			}
			links = append(links, Link{
				Recording:  rec,
				Work:       work,
				Strategy:   StrategyTextSimilarity,
				Confidence: similarity * p.policy.TextMatchCap,
				Notes:      fmt.Sprintf("title similarity %.2f", similarity),
			})
		}
	}

	sortLinks(links)

	p.logger.Info("recording matched",
		logging.String("recording_id", rec.ID),
		logging.String("title", rec.Title),
		logging.String("title_normalized", normalized),
		logging.Int("links", len(links)))

	return Outcome{Recording: rec, Links: links}
}

// MatchAll matches the whole batch, fanning out across recordings. Matching
// is independent per recording; outcomes are returned in input order and a
// recording's links are complete before the outcome is visible.
func (p *Pipeline) MatchAll(ctx context.Context, recordings []catalog.Recording) []Outcome {
	outcomes := make([]Outcome, len(recordings))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.concurrency)
	for i, rec := range recordings {
		i, rec := i, rec
		group.Go(func() error {
			outcomes[i] = p.MatchRecording(groupCtx, rec)
			return nil
		})
	}
	// Workers never return errors; failures degrade individual outcomes.
	_ = group.Wait()

	return outcomes
}

func (p *Pipeline) degrade(rec catalog.Recording, provider, operation string, err error) Outcome {
	wrapped := services.Wrap(services.ErrProvider, provider, operation, "recording "+rec.ID, err)
	p.logger.Warn("recording degraded by provider failure",
		logging.String("recording_id", rec.ID),
		logging.String("provider", provider),
		logging.String("operation", operation),
		logging.Error(err))
	return Outcome{Recording: rec, Failed: true, Note: wrapped.Error()}
}

// sortLinks orders by confidence descending; ties keep provider fetch order.
func sortLinks(links []Link) {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Confidence > links[j].Confidence
	})
}

