package domain

type EvidenceKind string

const (
	KindItem       EvidenceKind = "item"
	KindEvaluation EvidenceKind = "evaluation"
)

func ValidEvidenceKind(k string) bool {
	switch EvidenceKind(k) {
	case KindItem, KindEvaluation:
		return true
	}
	return false
}

// EvidenceItem is the simple evidence form: Value carries both direction
// and magnitude (0 = fully opposing, 100 = fully supporting).
type EvidenceItem struct {
	ID     string  `json:"id" yaml:"id"`
	Value  float64 `json:"value" yaml:"value"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Criterion is a decision criterion that evaluations are scored against.
type Criterion struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Importance float64 `json:"importance" yaml:"importance"`
}

// CriterionEvaluation is the richer evidence form: direction is a separate
// boolean so Strength stays a pure magnitude regardless of which side it
// favors.
type CriterionEvaluation struct {
	CriterionID      string  `json:"criterion_id" yaml:"criterion_id"`
	SupportsDecision bool    `json:"supports_decision" yaml:"supports"`
	Strength         float64 `json:"strength" yaml:"strength"`
	Confidence       float64 `json:"confidence" yaml:"confidence"`
}

// Evidence is the tagged variant consumed by the aggregator. Exactly one of
// Item or Evaluation is set, according to Kind.
type Evidence struct {
	Kind       EvidenceKind         `json:"kind"`
	Item       *EvidenceItem        `json:"item,omitempty"`
	Evaluation *CriterionEvaluation `json:"evaluation,omitempty"`
}

func ItemEvidence(item EvidenceItem) Evidence {
	return Evidence{Kind: KindItem, Item: &item}
}

func EvaluationEvidence(eval CriterionEvaluation) Evidence {
	return Evidence{Kind: KindEvaluation, Evaluation: &eval}
}

// ID returns the caller-supplied identifier for either form.
func (e Evidence) ID() string {
	switch e.Kind {
	case KindItem:
		if e.Item != nil {
			return e.Item.ID
		}
	case KindEvaluation:
		if e.Evaluation != nil {
			return e.Evaluation.CriterionID
		}
	}
	return ""
}

// Supports reports which side the evidence favors. For the item form the
// midpoint of the value range is the dividing line.
func (e Evidence) Supports() bool {
	switch e.Kind {
	case KindItem:
		if e.Item != nil {
			return e.Item.Value >= 50
		}
	case KindEvaluation:
		if e.Evaluation != nil {
			return e.Evaluation.SupportsDecision
		}
	}
	return false
}

// CorrelationGroup marks a set of evidence identifiers the caller considers
// correlated. Factor ranges 0 (independent) to 1 (identical); member
// pseudo-counts are discounted so redundant evidence is not double-counted.
type CorrelationGroup struct {
	Members []string `json:"members" yaml:"members"`
	Factor  float64  `json:"factor" yaml:"factor"`
}
