package counterService

import (
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"go-closures/internal/pkg/counter"
	"go-closures/internal/shared/logger"
	"go-closures/internal/shared/metrics"
	"go-closures/internal/utils"
)

// ErrCounterNotFound is returned when no live counter has the requested ID
var ErrCounterNotFound = errors.New("counter not found")

// idPrefix prefixes every counter ID handed out by the service
const idPrefix = "ctr"

// CounterService defines the interface for counter service operations
type CounterService interface {
	Create() *Instance
	Get(id string) (*Instance, error)
	Next(id string) (int, error)
	Release(id string)
	IDs() []string
}

var _ CounterService = (*DefaultCounterService)(nil)

// saturatingCounter is the part of the counter the service relies on
type saturatingCounter interface {
	counter.Incrementer
	Saturated() bool
}

// Instance is a counter handed out by the service. It is safe for
// concurrent use.
type Instance struct {
	id       string
	counter  saturatingCounter
	saturate sync.Once
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

// ID returns the instance ID
func (i *Instance) ID() string {
	return i.id
}

// Next adds one to the instance count and returns the new value
func (i *Instance) Next() int {
	n := i.counter.Next()
	i.metrics.RecordInvocation()

	if i.counter.Saturated() {
		i.saturate.Do(func() {
			i.metrics.RecordSaturated()
			i.logger.Warn("Counter reached its ceiling", zap.Int("value", n))
		})
	}

	return n
}

// DefaultCounterService is the default implementation of CounterService
type DefaultCounterService struct {
	mu        sync.RWMutex
	instances map[string]*Instance
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

// NewCounterService creates a new counter service. metrics may be nil.
func NewCounterService(log *logger.Logger, m *metrics.Metrics) *DefaultCounterService {
	return &DefaultCounterService{
		instances: make(map[string]*Instance),
		logger:    log.Named("counter-service"),
		metrics:   m,
	}
}

// Create returns a new, independent counter instance starting at zero
func (s *DefaultCounterService) Create() *Instance {
	return s.add(counter.NewSafe())
}

func (s *DefaultCounterService) add(c saturatingCounter) *Instance {
	id := utils.GenerateIDWithPrefix(idPrefix)
	inst := &Instance{
		id:      id,
		counter: c,
		logger:  s.logger.With(zap.String("counter_id", id)),
		metrics: s.metrics,
	}

	s.mu.Lock()
	s.instances[id] = inst
	s.mu.Unlock()

	s.metrics.RecordCreated()
	inst.logger.Debug("Counter created")

	return inst
}

// Get returns the live instance with the given ID
func (s *DefaultCounterService) Get(id string) (*Instance, error) {
	s.mu.RLock()
	inst, ok := s.instances[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrCounterNotFound
	}
	return inst, nil
}

// Next invokes the instance with the given ID
func (s *DefaultCounterService) Next(id string) (int, error) {
	inst, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	return inst.Next(), nil
}

// Release drops the service's reference to the instance. Callers still
// holding the *Instance may keep using it.
func (s *DefaultCounterService) Release(id string) {
	s.mu.Lock()
	_, ok := s.instances[id]
	delete(s.instances, id)
	s.mu.Unlock()

	if ok {
		s.metrics.RecordReleased()
		s.logger.Debug("Counter released", zap.String("counter_id", id))
	}
}

// IDs returns the IDs of all live instances, sorted
func (s *DefaultCounterService) IDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.instances))
	for id := range s.instances {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids
}
