// File: report.go
// Role: the Report structure and its assembly/ordering rules.
package motif

import (
	"math"
	"sort"

	"github.com/mgab/motifs/canon"
)

// ClassStat is the per-class row of a Report.
type ClassStat struct {
	// Signature identifies the isomorphism class; expand it with
	// Signature.Representative() for a concrete canonical graph.
	Signature canon.Signature

	// RealCount is the class's occurrence count in the original graph.
	RealCount int

	// NullMean is the mean occurrence count across the ensemble.
	NullMean float64

	// NullStdDev is the population standard deviation across the ensemble.
	NullStdDev float64

	// Z is (RealCount − NullMean) / NullStdDev. Meaningful only when
	// ZDefined; otherwise NaN.
	Z float64

	// ZDefined is false when the null distribution has zero variance
	// (every ensemble member produced the same count). This is a
	// reportable outcome, not an error, and is distinct from Z == 0.
	ZDefined bool

	// PValue is the fraction of ensemble members whose count reached
	// RealCount (one-sided enrichment).
	PValue float64
}

// Report is the immutable result of one Evaluate call.
type Report struct {
	// K is the motif size evaluated.
	K int

	// EnsembleSize is the number of randomized graphs censused.
	EnsembleSize int

	// DegreePreserving records which null model produced the ensemble.
	DegreePreserving bool

	// Classes holds one row per isomorphism class observed in the real
	// graph (post MinCount filtering), ordered by descending |Z| with
	// undefined-z rows last; ties break by real count descending, then
	// by signature order.
	Classes []ClassStat
}

// Class returns the row for sig, if present.
func (r *Report) Class(sig canon.Signature) (ClassStat, bool) {
	for _, cs := range r.Classes {
		if cs.Signature == sig {
			return cs, true
		}
	}

	return ClassStat{}, false
}

// sortClasses orders rows per the Report contract.
func sortClasses(rows []ClassStat) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.ZDefined != b.ZDefined:
			return a.ZDefined // defined z-scores before undefined ones
		case a.ZDefined && math.Abs(a.Z) != math.Abs(b.Z):
			return math.Abs(a.Z) > math.Abs(b.Z)
		case a.RealCount != b.RealCount:
			return a.RealCount > b.RealCount
		default:
			return canon.Compare(a.Signature, b.Signature) < 0
		}
	})
}
