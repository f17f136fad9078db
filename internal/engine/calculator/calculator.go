// Package calculator evaluates energies and forces of atomic configurations
// and reuses the result of the most recent configuration.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Calculator = (*Calculator)(nil)

// Calculator runs the descriptor and model pipeline for a host simulation.
//
// A single mutex covers fingerprinting, lookup, computation and store, so
// concurrent callers are serialized and never see a partially written entry.
type Calculator struct {
	id         uuid.UUID
	settings   domain.Settings
	descriptor ports.Descriptor
	model      ports.Model
	hasher     ports.Fingerprinter
	cache      ports.ResultCache

	logger  ports.Logger
	tracer  ports.Tracer
	metrics ports.Metrics

	mu      sync.Mutex
	caching bool
}

// New creates a Calculator. The cache must be owned by the returned Calculator.
func New(
	settings domain.Settings,
	descriptor ports.Descriptor,
	model ports.Model,
	hasher ports.Fingerprinter,
	cache ports.ResultCache,
	opts ...Option,
) (*Calculator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	backend, err := domain.ParseBackend(string(settings.Backend))
	if err != nil {
		return nil, err
	}
	settings.Backend = backend

	switch {
	case descriptor == nil:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "a descriptor is required"), "setting", "descriptor")
	case model == nil:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "a model is required"), "setting", "model")
	case hasher == nil || cache == nil:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "a fingerprinter and a cache are required"), "setting", "cache")
	}

	c := &Calculator{
		id:         uuid.New(),
		settings:   settings,
		descriptor: descriptor,
		model:      model,
		hasher:     hasher,
		cache:      cache,
		logger:     nopLogger{},
		tracer:     nopTracer{},
		metrics:    nopMetrics{},
		caching:    settings.CacheResults,
	}
	for _, opt := range opts {
		opt(c)
	}

	if settings.EnableForces && backend.TracksGradients() && !c.analytic() {
		c.logger.Warn("gradient backend requested but the descriptor or model does not provide gradients; " +
			"forces fall back to finite differences")
	}
	return c, nil
}

// ID returns the identifier of this instance, used in logs and spans.
func (c *Calculator) ID() uuid.UUID {
	return c.id
}

// Settings returns the active settings. CacheResults reflects SetCaching.
func (c *Calculator) Settings() domain.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.settings
	s.CacheResults = c.caching
	return s
}

// Calculate returns the requested properties of s. An empty request means energy.
// The returned Results are owned by the caller.
func (c *Calculator) Calculate(ctx context.Context, s *domain.Snapshot, props ...domain.Property) (domain.Results, error) {
	results, _, err := c.Evaluate(ctx, s, props...)
	return results, err
}

// Evaluate is Calculate that also reports whether the results came from the cache.
func (c *Calculator) Evaluate(ctx context.Context, s *domain.Snapshot, props ...domain.Property) (domain.Results, bool, error) {
	props = domain.NormalizeProperties(props)

	ctx, span := c.tracer.Start(ctx, "calculate",
		ports.WithAttribute("mlpot.calculator", c.id.String()),
		ports.WithAttribute("mlpot.properties", fmt.Sprint(props)),
	)
	defer span.End()

	results, cached, err := c.calculate(ctx, s, props)
	if err != nil {
		span.RecordError(err)
		c.metrics.RecordError(errorKind(err))
		return domain.Results{}, false, err
	}
	span.SetAttribute("mlpot.cached", cached)
	return results, cached, nil
}

// GetProperty returns one property of s: float64 for energy, []domain.Vec3 for forces.
func (c *Calculator) GetProperty(ctx context.Context, p domain.Property, s *domain.Snapshot) (any, error) {
	results, err := c.Calculate(ctx, s, p)
	if err != nil {
		return nil, err
	}
	value, _ := results.Value(p)
	return value, nil
}

// PotentialEnergy returns the energy of s in eV.
func (c *Calculator) PotentialEnergy(ctx context.Context, s *domain.Snapshot) (float64, error) {
	results, err := c.Calculate(ctx, s, domain.PropertyEnergy)
	if err != nil {
		return 0, err
	}
	return *results.Energy, nil
}

// Forces returns the per-atom forces of s in eV/Å.
func (c *Calculator) Forces(ctx context.Context, s *domain.Snapshot) ([]domain.Vec3, error) {
	results, err := c.Calculate(ctx, s, domain.PropertyForces)
	if err != nil {
		return nil, err
	}
	return results.Forces, nil
}

// Clear drops the cached entry.
func (c *Calculator) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Clear()
}

// SetCaching turns result reuse on or off. Turning it off drops the cached entry.
func (c *Calculator) SetCaching(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.caching = enabled
	if !enabled {
		c.cache.Clear()
	}
}

// Cached returns the fingerprint of the cached entry, if any.
func (c *Calculator) Cached() (domain.Fingerprint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Fingerprint()
}

func (c *Calculator) calculate(ctx context.Context, s *domain.Snapshot, props []domain.Property) (domain.Results, bool, error) {
	if err := c.checkCapabilities(props); err != nil {
		return domain.Results{}, false, err
	}
	if s == nil {
		return domain.Results{}, false, zerr.Wrap(domain.ErrValidation, "no frame was given")
	}
	if err := s.Validate(); err != nil {
		return domain.Results{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	fp := c.hasher.Fingerprint(s)
	if c.caching {
		if cached, ok := c.cache.Lookup(fp); ok && cached.HasAll(props) {
			c.metrics.CacheHit()
			c.logger.Debug(fmt.Sprintf("cache hit for frame %d (%s)", s.Index, fp))
			return cached.Subset(props), true, nil
		}
	}

	c.metrics.CacheMiss()
	c.logger.Debug(fmt.Sprintf("computing %v for frame %d (%s)", props, s.Index, fp))

	start := time.Now()
	results, err := c.compute(ctx, s, props)
	if err != nil {
		return domain.Results{}, false, err
	}
	c.metrics.ObserveRecompute(time.Since(start))

	if c.caching {
		c.cache.Store(fp, results)
	}
	return results.Subset(props), false, nil
}

// checkCapabilities rejects properties this instance was not configured to compute.
func (c *Calculator) checkCapabilities(props []domain.Property) error {
	for _, p := range props {
		if !slices.Contains(domain.KnownProperties, p) {
			return domain.NotImplemented(p, "unknown property")
		}
		if p == domain.PropertyForces && !c.settings.EnableForces {
			return domain.NotImplemented(p, "forces are disabled; enable them in the calculator settings")
		}
	}
	return nil
}

// compute runs the pipeline. It never touches the cache.
func (c *Calculator) compute(ctx context.Context, s *domain.Snapshot, props []domain.Property) (domain.Results, error) {
	if req, ok := c.descriptor.(ports.AttributeRequirer); ok {
		if err := s.RequireAttributes(req.Name(), req.RequiredAttributes()); err != nil {
			return domain.Results{}, err
		}
	}

	if slices.Contains(props, domain.PropertyForces) {
		if c.analytic() {
			return c.analyticResults(ctx, s)
		}
		return c.finiteDifferenceResults(ctx, s)
	}

	energy, err := c.energy(s)
	if err != nil {
		return domain.Results{}, err
	}
	return domain.Results{Energy: &energy}, nil
}

// energy returns the energy of s in eV.
func (c *Calculator) energy(s *domain.Snapshot) (float64, error) {
	features, err := c.features(s)
	if err != nil {
		return 0, err
	}
	e, err := c.predict(s, features)
	if err != nil {
		return 0, err
	}
	return e * c.settings.EnergyUnitsToEV, nil
}

// features evaluates the descriptor on s expressed in model length units.
func (c *Calculator) features(s *domain.Snapshot) ([]float64, error) {
	features, err := c.descriptor.Compute(s.Scaled(c.settings.LengthUnitsToA))
	if err != nil {
		return nil, descriptorError(s, err)
	}
	if err := checkFeatures(s, features); err != nil {
		return nil, err
	}
	return features, nil
}

func (c *Calculator) predict(s *domain.Snapshot, features []float64) (float64, error) {
	e, err := c.model.Predict(features)
	if err != nil {
		return 0, modelError(s, err)
	}
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return 0, modelError(s, zerr.New(fmt.Sprintf("model returned a non-finite energy %g", e)))
	}
	return e, nil
}

func checkFeatures(s *domain.Snapshot, features []float64) error {
	if len(features) == 0 {
		return descriptorError(s, zerr.New("descriptor returned no features"))
	}
	for k, f := range features {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return descriptorError(s, zerr.With(zerr.New(fmt.Sprintf("feature %d is not finite", k)), "feature", k))
		}
	}
	return nil
}

func descriptorError(s *domain.Snapshot, err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return err
	}
	err = zerr.Wrap(domain.Classify(domain.ErrDescriptor, err), "failed to compute descriptor")
	return zerr.With(err, "index", s.Index)
}

func modelError(s *domain.Snapshot, err error) error {
	err = zerr.Wrap(domain.Classify(domain.ErrModel, err), "failed to evaluate model")
	return zerr.With(err, "index", s.Index)
}

// errorKind labels an evaluation failure for metrics.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrPropertyNotImplemented):
		return "not_implemented"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrDescriptor):
		return "descriptor"
	case errors.Is(err, domain.ErrModel):
		return "model"
	default:
		return "other"
	}
}
