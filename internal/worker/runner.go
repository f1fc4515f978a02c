// Package worker sequences one report run: query, validate, normalize, export.
package worker

import (
	"context"
	"fmt"

	"consultapje/internal/logger"
	"consultapje/internal/models"
)

// Querier fetches the raw payload for a window.
type Querier interface {
	Query(ctx context.Context, identity models.QueryIdentity, window models.QueryWindow) (*models.Payload, error)
}

// Normalizer checks a payload and flattens it into a table.
type Normalizer interface {
	Validate(payload *models.Payload) error
	Process(payload *models.Payload) *models.ReportTable
}

// Exporter writes a table and returns the resulting file path.
type Exporter interface {
	Export(table *models.ReportTable, label string) (string, error)
}

// RawSink receives the raw payload of a successful query.
type RawSink func(payload *models.Payload, label string) error

// Outcome is how a run ended.
type Outcome int

// Run outcomes.
const (
	OutcomeExported Outcome = iota
	OutcomeEmpty
	OutcomeQueryFailed
	OutcomeAPIError
	OutcomeExportFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExported:
		return "exported"
	case OutcomeEmpty:
		return "empty"
	case OutcomeQueryFailed:
		return "query_failed"
	case OutcomeAPIError:
		return "api_error"
	case OutcomeExportFailed:
		return "export_failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result summarizes a run.
type Result struct {
	Err      error
	Path     string
	Outcome  Outcome
	Reported int64
	Records  int
}

// Runner executes report runs. It never returns errors; conditions are logged
// and reported through Result.
type Runner struct {
	querier    Querier
	normalizer Normalizer
	exporter   Exporter
	logger     *logger.Logger
	rawSink    RawSink
	identity   models.QueryIdentity
}

// NewRunner wires a runner for identity.
func NewRunner(identity models.QueryIdentity, q Querier, n Normalizer, e Exporter, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Discard()
	}

	return &Runner{
		querier:    q,
		normalizer: n,
		exporter:   e,
		logger:     log,
		identity:   identity,
	}
}

// WithRawSink makes the runner hand every successful raw payload to sink.
func (r *Runner) WithRawSink(sink RawSink) *Runner {
	r.rawSink = sink

	return r
}

// Run queries window and exports the report labelled label.
func (r *Runner) Run(ctx context.Context, window models.QueryWindow, label string) *Result {
	payload, err := r.querier.Query(ctx, r.identity, window)
	if err != nil {
		r.logger.Error("Falha na consulta à API", "error", err)

		return &Result{Outcome: OutcomeQueryFailed, Err: err}
	}

	if r.rawSink != nil {
		if err := r.rawSink(payload, label); err != nil {
			r.logger.Warn("Não foi possível salvar a resposta bruta", "error", err)
		}
	}

	return r.Replay(payload, label)
}

// Replay runs every stage after the query on an already obtained payload.
func (r *Runner) Replay(payload *models.Payload, label string) *Result {
	if err := r.normalizer.Validate(payload); err != nil {
		msg := ""
		if payload != nil {
			msg = payload.Message
		}

		r.logger.Error(fmt.Sprintf("Consulta retornou erro: %s", msg), "error", err)

		return &Result{Outcome: OutcomeAPIError, Err: err}
	}

	r.logger.Info(fmt.Sprintf("Encontrados %d registros para a data %s", payload.Count, label))

	result := &Result{Reported: payload.Count}

	table := r.normalizer.Process(payload)
	result.Records = table.Len()

	if table.IsEmpty() {
		r.logger.Warn("Nenhum dado para exportar após processamento")
		result.Outcome = OutcomeEmpty

		return result
	}

	path, err := r.exporter.Export(table, label)
	if err != nil {
		result.Outcome = OutcomeExportFailed
		result.Err = err

		return result
	}

	result.Outcome = OutcomeExported
	result.Path = path

	return result
}
