package solution

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/solreport/internal/namemap"
	"github.com/roach88/solreport/internal/tabular"
)

// Companion file names, appended to the run's filename prefix.
const (
	CandidatesFile   = "candidates.txt"
	StorageFile      = "storage.txt"
	TotalStorageFile = "total_storage.txt"
	ThresholdFile    = "T.txt"
)

// Params holds the model parameters loaded from the companion files.
type Params struct {
	// Candidates holds one ascending-sorted member id set per candidate.
	Candidates [][]int

	// Storage has one row per candidate; column 0 is the storage cost.
	Storage *tabular.NumericMatrix

	// TotalStorage is the storage budget, read from a 1x1 matrix.
	TotalStorage float64

	// T is the threshold parameter, read from a 1x1 matrix.
	T float64
}

// LoadParams reads the four companion files named by prefix. When parallel
// is true the files are read concurrently; the result is identical either
// way. The first failure is returned and the rest are cancelled.
func LoadParams(ctx context.Context, names namemap.Map, prefix string, parallel bool, logger *zap.Logger) (*Params, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		p            Params
		totalStorage *tabular.NumericMatrix
		threshold    *tabular.NumericMatrix
	)

	loads := []struct {
		file string
		fn   func(path string) error
	}{
		{CandidatesFile, func(path string) (err error) {
			p.Candidates, err = tabular.LoadNamedIntegerRows(names, path)
			return err
		}},
		{StorageFile, func(path string) (err error) {
			p.Storage, err = tabular.LoadNumericMatrix(path)
			return err
		}},
		{TotalStorageFile, func(path string) (err error) {
			totalStorage, err = tabular.LoadNumericMatrix(path)
			return err
		}},
		{ThresholdFile, func(path string) (err error) {
			threshold, err = tabular.LoadNumericMatrix(path)
			return err
		}},
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if !parallel {
		eg.SetLimit(1)
	}
	for _, l := range loads {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			path := prefix + l.file
			if err := l.fn(path); err != nil {
				return err
			}
			logger.Debug("loaded parameter file", zap.String("path", path))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var ok bool
	if p.TotalStorage, ok = totalStorage.Scalar(); !ok {
		return nil, newNotScalarError(prefix+TotalStorageFile, totalStorage.Rows(), totalStorage.Cols())
	}
	if p.TotalStorage == 0 {
		return nil, newZeroBudgetError(prefix + TotalStorageFile)
	}
	if p.T, ok = threshold.Scalar(); !ok {
		return nil, newNotScalarError(prefix+ThresholdFile, threshold.Rows(), threshold.Cols())
	}
	return &p, nil
}
