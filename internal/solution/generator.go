package solution

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/roach88/solreport/internal/namemap"
)

// NameSource produces the name map for a run. The map is owned elsewhere;
// the generator only reads it.
type NameSource func(ctx context.Context) (namemap.Map, error)

// StaticNames wraps an already-loaded map as a NameSource.
func StaticNames(m namemap.Map) NameSource {
	return func(context.Context) (namemap.Map, error) {
		return m, nil
	}
}

// Generator builds selection reports from solver output.
type Generator struct {
	// Names supplies the name map. Required.
	Names NameSource

	// Parallel loads the companion files concurrently.
	Parallel bool

	// Logger receives progress at debug level. Defaults to a no-op logger.
	Logger *zap.Logger

	// NewRunID overrides run id generation (for tests). Defaults to UUIDv7.
	NewRunID func() string
}

// Generate reads the decision file at solutionPath and the companion files
// named by prefix, validates them, and returns the report. It fails on the
// first inconsistency; no partial report is ever returned.
func (g *Generator) Generate(ctx context.Context, solutionPath, prefix string) (*Report, error) {
	if g.Names == nil {
		return nil, fmt.Errorf("generate report: no name source configured")
	}
	runID := g.runID()
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", runID))

	names, err := g.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("load name map: %w", err)
	}

	decisions, err := LoadDecisions(solutionPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("read build variables", zap.String("path", solutionPath), zap.Int("count", len(decisions)))

	params, err := LoadParams(ctx, names, prefix, g.Parallel, logger)
	if err != nil {
		return nil, err
	}

	report, err := Evaluate(decisions, params, names)
	if err != nil {
		return nil, err
	}
	report.RunID = runID

	logger.Info("solution validated",
		zap.Int("decisions", report.DecisionsRead),
		zap.Int("selected", report.Selected),
		zap.Float64("total_cost", report.TotalCost),
		zap.Float64("storage_ratio", report.StorageRatio))
	return report, nil
}

func (g *Generator) runID() string {
	if g.NewRunID != nil {
		return g.NewRunID()
	}
	return uuid.Must(uuid.NewV7()).String()
}

// Evaluate checks decisions against params and builds the report.
//
// Every decision must be 0 or 1, and there must be exactly one decision per
// candidate and per storage row. Selected candidates are listed in index
// order with their members rendered through names. params is expected to
// come from LoadParams, which rejects a zero budget.
func Evaluate(decisions []int, params *Params, names namemap.Map) (*Report, error) {
	for i, d := range decisions {
		if d != 0 && d != 1 {
			return nil, newNonIntegerError(i, float64(d))
		}
	}

	if len(params.Candidates) != len(decisions) || params.Storage.Rows() != len(decisions) {
		return nil, newLengthMismatchError(len(decisions), len(params.Candidates), params.Storage.Rows())
	}

	report := &Report{
		DecisionsRead: len(decisions),
		TotalStorage:  params.TotalStorage,
		T:             params.T,
		Chosen:        []Candidate{},
	}
	if len(decisions) == 0 {
		return report, nil
	}

	// Cost is the dot product of the 0/1 decision vector with the first
	// storage column.
	chosen := mat.NewVecDense(len(decisions), nil)
	for i, d := range decisions {
		if d != 1 {
			continue
		}
		chosen.SetVec(i, 1)
		report.Selected++

		members := make([]string, len(params.Candidates[i]))
		for j, id := range params.Candidates[i] {
			name, ok := names.Name(id)
			if !ok {
				return nil, newUnknownIndexError(i, id)
			}
			members[j] = name
		}
		report.Chosen = append(report.Chosen, Candidate{Index: i, Members: members})
	}
	report.TotalCost = mat.Dot(chosen, params.Storage.Dense().ColView(0))
	report.StorageRatio = report.TotalCost / report.TotalStorage
	return report, nil
}
