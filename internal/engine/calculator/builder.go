package calculator

import (
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
)

// Builder assembles calculators from loaded configuration.
type Builder struct {
	descriptors ports.DescriptorFactory
	models      ports.ModelLoader
	hasher      ports.Fingerprinter
	newCache    func() ports.ResultCache
	logger      ports.Logger
	tracer      ports.Tracer
	metrics     ports.Metrics
}

// NewBuilder creates a new Builder. newCache is called once per calculator.
func NewBuilder(
	descriptors ports.DescriptorFactory,
	models ports.ModelLoader,
	hasher ports.Fingerprinter,
	newCache func() ports.ResultCache,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Builder {
	return &Builder{
		descriptors: descriptors,
		models:      models,
		hasher:      hasher,
		newCache:    newCache,
		logger:      logger,
		tracer:      tracer,
		metrics:     metrics,
	}
}

// Build creates a calculator with its own cache from cfg.
func (b *Builder) Build(cfg *domain.Config) (*Calculator, error) {
	descriptor, err := b.descriptors.New(cfg.Descriptor)
	if err != nil {
		return nil, err
	}
	model, err := b.models.Load(cfg.Model)
	if err != nil {
		return nil, err
	}

	return New(cfg.Settings, descriptor, model, b.hasher, b.newCache(),
		WithLogger(b.logger),
		WithTracer(b.tracer),
		WithMetrics(b.metrics),
	)
}
