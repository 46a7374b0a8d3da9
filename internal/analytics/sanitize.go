package analytics

import (
	"math"

	"github.com/Veraticus/cashflow/internal/model"
)

// AnomalyReason describes why a transaction was excluded from aggregation.
type AnomalyReason string

// Anomaly reasons.
const (
	ReasonMissingDate    AnomalyReason = "missing date"
	ReasonNegativeAmount AnomalyReason = "negative amount"
	ReasonInvalidAmount  AnomalyReason = "non-finite amount"
	ReasonUnknownType    AnomalyReason = "unknown transaction type"
)

// Anomaly records a malformed transaction that was skipped.
type Anomaly struct {
	TransactionID string
	Reason        AnomalyReason
	Index         int
}

// AnomalyReporter receives anomalies found while building views. It is how
// skipped records reach the caller's observability layer.
type AnomalyReporter interface {
	ReportAnomalies(anomalies []Anomaly)
}

// AnomalyReporterFunc adapts a function to AnomalyReporter.
type AnomalyReporterFunc func([]Anomaly)

// ReportAnomalies calls f.
func (f AnomalyReporterFunc) ReportAnomalies(anomalies []Anomaly) {
	f(anomalies)
}

// checkTransaction returns the first problem with txn, or "" when it can be
// aggregated.
func checkTransaction(txn *model.Transaction) AnomalyReason {
	switch {
	case txn.Date.IsZero():
		return ReasonMissingDate
	case math.IsNaN(txn.Amount) || math.IsInf(txn.Amount, 0):
		return ReasonInvalidAmount
	case txn.Amount < 0:
		return ReasonNegativeAmount
	case !txn.Type.IsValid():
		return ReasonUnknownType
	default:
		return ""
	}
}

func usable(txn *model.Transaction) bool {
	return checkTransaction(txn) == ""
}

// Sanitize splits transactions into the records that can be aggregated and
// the anomalies that were excluded. It never fails.
func Sanitize(transactions []model.Transaction) ([]model.Transaction, []Anomaly) {
	clean := make([]model.Transaction, 0, len(transactions))
	var anomalies []Anomaly
	for i, txn := range transactions {
		if reason := checkTransaction(&txn); reason != "" {
			anomalies = append(anomalies, Anomaly{
				Index:         i,
				TransactionID: txn.ID,
				Reason:        reason,
			})
			continue
		}
		clean = append(clean, txn)
	}
	return clean, anomalies
}
