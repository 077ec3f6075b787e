package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"ai-marketplace-api/internal/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultConciergeDelay      = 2 * time.Second
	DefaultConciergeSessionTTL = 15 * time.Minute
	RecommendationLimit        = 3
	minKeywordLength           = 4
)

var (
	ErrEmptyQuery      = errors.New("query cannot be empty")
	ErrSessionClosed   = errors.New("concierge session closed")
	ErrSessionNotFound = errors.New("concierge session not found")
)

// Recommend matches query keywords longer than three characters against each
// product's title, description and tags. It returns the first matches in
// catalog order, or the head of the catalog when nothing matches.
func Recommend(products []models.Product, query string) []models.Product {
	keywords := make([]string, 0)
	for _, k := range strings.Split(strings.ToLower(query), " ") {
		if utf8.RuneCountInString(k) >= minKeywordLength {
			keywords = append(keywords, k)
		}
	}

	matches := make([]models.Product, 0, RecommendationLimit)
	for _, p := range products {
		if len(matches) == RecommendationLimit {
			break
		}
		text := strings.ToLower(p.Title + p.Description + strings.Join(p.Tags, " "))
		for _, k := range keywords {
			if strings.Contains(text, k) {
				matches = append(matches, p)
				break
			}
		}
	}

	if len(matches) > 0 {
		return matches
	}

	n := RecommendationLimit
	if len(products) < n {
		n = len(products)
	}
	fallback := make([]models.Product, n)
	copy(fallback, products[:n])
	return fallback
}

// Concierge hands out dialog sessions that share a product list and delay.
// Sessions left idle for longer than the idle TTL are closed and forgotten
// the next time a session is opened or looked up.
type Concierge struct {
	products []models.Product
	delay    time.Duration
	idleTTL  time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*ConciergeSession
}

// NewConcierge builds a concierge. A non-positive idleTTL disables reaping.
func NewConcierge(products []models.Product, delay, idleTTL time.Duration) *Concierge {
	if delay < 0 {
		delay = 0
	}
	return &Concierge{
		products: products,
		delay:    delay,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[string]*ConciergeSession),
	}
}

// ConciergeSession mirrors one open recommendation dialog. Closing it
// cancels any analysis still waiting out the delay.
type ConciergeSession struct {
	ID       string
	OpenedAt time.Time

	owner  *Concierge
	ctx    context.Context
	cancel context.CancelFunc

	// guarded by owner.mu
	lastSeen time.Time
	inflight int
}

func (c *Concierge) Open() *ConciergeSession {
	c.Reap()

	ctx, cancel := context.WithCancel(context.Background())
	now := c.now()
	s := &ConciergeSession{
		ID:       uuid.NewString(),
		OpenedAt: now,
		owner:    c,
		ctx:      ctx,
		cancel:   cancel,
		lastSeen: now,
	}

	c.mu.Lock()
	c.sessions[s.ID] = s
	c.mu.Unlock()

	log.Debugf("Concierge session opened: %s", s.ID)
	return s
}

func (c *Concierge) Get(id string) (*ConciergeSession, error) {
	c.Reap()

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.lastSeen = c.now()
	return s, nil
}

// Reap closes sessions idle for longer than the idle TTL. Sessions with an
// analysis in flight are never reaped. It returns the number closed.
func (c *Concierge) Reap() int {
	if c.idleTTL <= 0 {
		return 0
	}

	cutoff := c.now().Add(-c.idleTTL)
	c.mu.Lock()
	expired := make([]*ConciergeSession, 0)
	for _, s := range c.sessions {
		if s.inflight == 0 && s.lastSeen.Before(cutoff) {
			expired = append(expired, s)
		}
	}
	c.mu.Unlock()

	for _, s := range expired {
		s.Close()
		log.Debugf("Concierge session expired: %s", s.ID)
	}
	return len(expired)
}

// CloseSession closes and forgets the session with the given id.
func (c *Concierge) CloseSession(id string) error {
	s, err := c.Get(id)
	if err != nil {
		return err
	}
	s.Close()
	return nil
}

// CloseAll tears down every open session, used on shutdown.
func (c *Concierge) CloseAll() {
	c.mu.Lock()
	sessions := make([]*ConciergeSession, 0, len(c.sessions))
	for _, s := range c.sessions {
		sessions = append(sessions, s)
	}
	c.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (c *Concierge) OpenSessions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Analyze waits the concierge delay and then returns recommendations for
// query. It returns early if ctx is done or the session is closed.
func (s *ConciergeSession) Analyze(ctx context.Context, query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if err := s.ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionClosed, err)
	}

	s.touch(1)
	defer s.touch(-1)

	timer := time.NewTimer(s.owner.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-s.ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrSessionClosed, s.ctx.Err())
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	recommendations := Recommend(s.owner.products, query)
	log.Infof("Concierge session %s: %d recommendations for %q", s.ID, len(recommendations), query)
	return recommendations, nil
}

func (s *ConciergeSession) touch(delta int) {
	s.owner.mu.Lock()
	s.inflight += delta
	s.lastSeen = s.owner.now()
	s.owner.mu.Unlock()
}

// Close is safe to call more than once.
func (s *ConciergeSession) Close() {
	s.cancel()

	s.owner.mu.Lock()
	if _, ok := s.owner.sessions[s.ID]; ok {
		delete(s.owner.sessions, s.ID)
		log.Debugf("Concierge session closed: %s", s.ID)
	}
	s.owner.mu.Unlock()
}

func (s *ConciergeSession) Closed() bool {
	return s.ctx.Err() != nil
}
