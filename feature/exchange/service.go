package exchange

import (
	"context"

	"go.uber.org/zap"
)

// Service exposes the two exchange queries. Scan failures degrade to an empty
// result; callers only ever see a (possibly empty) successful answer, the
// cause is reported through the logger.
type Service struct {
	finder *Finder
	logger *zap.Logger
}

// NewService creates an exchange service over the given read source.
func NewService(src Source, logger *zap.Logger) *Service {
	return &Service{
		finder: NewFinder(src),
		logger: logger,
	}
}

// FindGlobalExchanges returns every user the requester could exchange with,
// across all shared sets.
func (s *Service) FindGlobalExchanges(ctx context.Context, userID int) []Group {
	groups, err := s.finder.Global(ctx, userID)
	if err != nil {
		s.logger.Error("Global exchange scan failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil
	}
	return groups
}

// FindSetExchanges returns the exchange potential for one set between the
// requester and the set's other holders.
func (s *Service) FindSetExchanges(ctx context.Context, setID, userID int) []Group {
	groups, err := s.finder.ForSet(ctx, setID, userID)
	if err != nil {
		s.logger.Error("Set exchange scan failed",
			zap.Int("set_id", setID),
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil
	}
	return groups
}
