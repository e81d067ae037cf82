// Package memory is the transient record store backing. Data lives in
// process memory and is lost on restart.
package memory

import (
	"fmt"
	"slices"
	"time"

	"content_studio/internal/domain"
)

// Store owns one table per entity type.
type Store struct {
	now func() time.Time

	viralVideos       *table[domain.ViralVideo]
	affiliateProducts *table[domain.AffiliateProduct]
	scripts           *table[domain.Script]
	videos            *table[domain.Video]
	scheduledPosts    *table[domain.ScheduledPost]
	analytics         *table[domain.Analytics]
}

type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:               time.Now,
		viralVideos:       newTable(cloneViralVideo),
		affiliateProducts: newTable(cloneAffiliateProduct),
		scripts:           newTable(cloneScript),
		videos:            newTable(cloneVideo),
		scheduledPosts:    newTable(cloneScheduledPost),
		analytics:         newTable(cloneAnalytics),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Store) ViralVideos() *ViralVideoStore             { return &ViralVideoStore{s} }
func (s *Store) AffiliateProducts() *AffiliateProductStore { return &AffiliateProductStore{s} }
func (s *Store) Scripts() *ScriptStore                     { return &ScriptStore{s} }
func (s *Store) Videos() *VideoStore                       { return &VideoStore{s} }
func (s *Store) ScheduledPosts() *ScheduledPostStore       { return &ScheduledPostStore{s} }
func (s *Store) Analytics() *AnalyticsStore                { return &AnalyticsStore{s} }

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
}

// newestFirst orders by timestamp descending, then id descending.
func newestFirst(ta, tb time.Time, ia, ib int64) bool {
	if !ta.Equal(tb) {
		return ta.After(tb)
	}
	return ia > ib
}

func statusIn(statuses []string) func(string) bool {
	if len(statuses) == 0 {
		return func(string) bool { return true }
	}
	return func(status string) bool { return slices.Contains(statuses, status) }
}
