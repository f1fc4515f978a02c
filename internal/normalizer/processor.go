// Package normalizer flattens raw API notification items into report records.
package normalizer

import (
	"consultapje/internal/logger"
	"consultapje/internal/models"
)

// Processor validates payloads and turns them into report tables.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	logger      *logger.Logger
}

// NewProcessor creates a new processor instance.
func NewProcessor(log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Discard()
	}

	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
		logger:      log,
	}
}

// Validate checks the payload status.
func (p *Processor) Validate(payload *models.Payload) error {
	return p.validator.Validate(payload)
}

// Process normalizes every item in payload order. A missing payload or items
// collection yields an empty table and a warning.
func (p *Processor) Process(payload *models.Payload) *models.ReportTable {
	table := &models.ReportTable{}

	if payload == nil || !payload.HasItems {
		p.logger.Warn("Nenhum dado encontrado ou formato inválido")

		return table
	}

	table.Records = make([]models.Record, 0, len(payload.Items))
	for _, item := range payload.Items {
		table.Append(p.transformer.Transform(item))
	}

	p.logger.Debug("Registros normalizados", "records", table.Len())

	return table
}
