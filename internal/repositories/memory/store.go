// Package memory provides in-process implementations of the repository
// interfaces. They back the service and handler tests and keep the same
// ordering and not-found semantics as the postgres repositories.
package memory

import (
	"context"
	"sync"
	"time"

	"fibertrack/internal/entities"
	apperrors "fibertrack/pkg/errors"
)

// Store holds all entity collections behind one mutex. Individual repository
// views share the same Store so cross-entity invariants hold in tests.
type Store struct {
	mu sync.Mutex

	projects    map[int64]entities.Project
	history     map[int64]entities.StageHistory
	teamMembers map[int64]entities.TeamMember
	tasks       map[int64]entities.Task
	documents   map[int64]entities.ProjectDocument
	badges      map[int64]entities.TeamMemberBadge
	metrics     map[int64]entities.PerformanceMetric
	monthly     map[[2]int]entities.MonthlyTeamPerformance
	users       map[int64]entities.User

	nextProjectID   int64
	nextHistoryID   int64
	nextMemberID    int64
	nextTaskID      int64
	nextDocumentID  int64
	nextBadgeID     int64
	nextUserID      int64
	nextProjectCode int64
}

func NewStore() *Store {
	return &Store{
		projects:    make(map[int64]entities.Project),
		history:     make(map[int64]entities.StageHistory),
		teamMembers: make(map[int64]entities.TeamMember),
		tasks:       make(map[int64]entities.Task),
		documents:   make(map[int64]entities.ProjectDocument),
		badges:      make(map[int64]entities.TeamMemberBadge),
		metrics:     make(map[int64]entities.PerformanceMetric),
		monthly:     make(map[[2]int]entities.MonthlyTeamPerformance),
		users:       make(map[int64]entities.User),
	}
}

func (s *Store) Projects() *ProjectStore          { return &ProjectStore{s} }
func (s *Store) StageHistory() *StageHistoryStore { return &StageHistoryStore{s} }
func (s *Store) TeamMembers() *TeamMemberStore    { return &TeamMemberStore{s} }
func (s *Store) Tasks() *TaskStore                { return &TaskStore{s} }
func (s *Store) Documents() *DocumentStore        { return &DocumentStore{s} }
func (s *Store) Badges() *BadgeStore              { return &BadgeStore{s} }
func (s *Store) Performance() *PerformanceStore   { return &PerformanceStore{s} }
func (s *Store) Users() *UserStore                { return &UserStore{s} }
func (s *Store) Dashboard() *DashboardStore       { return &DashboardStore{s} }

// TxManager satisfies the transaction interface without real transaction
// semantics; the single store mutex already serializes writers.
type TxManager struct{}

func NewTxManager() *TxManager { return &TxManager{} }

func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Cache is an expiring in-memory key-value store used in place of redis.
type Cache struct {
	mu     sync.Mutex
	values map[string]cacheEntry
}

type cacheEntry struct {
	value     string
	counter   int64
	expiresAt time.Time
}

func NewCache() *Cache {
	return &Cache{values: make(map[string]cacheEntry)}
}

func (c *Cache) lookup(key string) (cacheEntry, bool) {
	e, ok := c.values[key]
	if !ok {
		return cacheEntry{}, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.values, key)
		return cacheEntry{}, false
	}
	return e, true
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.lookup(key)
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return e.value, nil
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := cacheEntry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.values[key] = e
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func (c *Cache) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.lookup(key)
	if !ok {
		e = cacheEntry{}
		if ttl > 0 {
			e.expiresAt = time.Now().Add(ttl)
		}
	}
	e.counter++
	c.values[key] = e
	return e.counter, nil
}

func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.lookup(key)
	return ok, nil
}
