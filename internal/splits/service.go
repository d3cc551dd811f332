package splits

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/albapepper/scoracle-splits/internal/provider/espn"
)

// ErrFetchFailed is returned when the splits request itself failed, as
// opposed to returning a payload that could not be transformed.
var ErrFetchFailed = errors.New("splits fetch failed")

// ErrMissingPlayerID is returned for a blank player ID.
var ErrMissingPlayerID = errors.New("player ID is required")

// Fetcher issues the splits request. *espn.Client implements it.
type Fetcher interface {
	FetchSplits(ctx context.Context, playerID string) espn.FetchResult
}

// Service fetches and normalizes a player's splits. It holds no per-call state.
type Service struct {
	fetcher     Fetcher
	transformer *Transformer
	logger      *slog.Logger
}

// NewService creates a Service. A nil transformer uses DefaultLayout.
func NewService(fetcher Fetcher, transformer *Transformer, logger *slog.Logger) *Service {
	if transformer == nil {
		transformer = NewTransformer(DefaultLayout)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetcher: fetcher, transformer: transformer, logger: logger}
}

// FetchAndNormalize performs one fetch and transforms the payload.
func (s *Service) FetchAndNormalize(ctx context.Context, playerID string) (*NormalizedSplits, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, ErrMissingPlayerID
	}

	res := s.fetcher.FetchSplits(ctx, playerID)
	if !res.OK() {
		return nil, fmt.Errorf("%w: player %s: %w", ErrFetchFailed, playerID, res.Err)
	}

	raw, err := res.Decode()
	if err != nil {
		return nil, fmt.Errorf("%w: player %s: %w", ErrMalformedResponse, playerID, err)
	}

	ns, err := s.transformer.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", playerID, err)
	}

	s.logger.Debug("Normalized splits",
		"player_id", playerID,
		"months", ns.Month.Len(),
		"opponents", ns.Opponent.Len())
	return ns, nil
}
