// Generates a randomized decision document for exercising the CLI.
// Run with: go run ./scripts/gen_decision.go > decision.yaml
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/credencehq/credence/internal/domain"
)

var criterionNames = []string{
	"Cost", "Time to market", "Team buy-in", "Technical risk",
	"Strategic fit", "Maintenance burden", "Vendor lock-in", "Scalability",
}

func main() {
	seed := uint64(os.Getpid())
	rng := rand.New(rand.NewPCG(seed, seed))

	count := 3 + rng.IntN(4)
	criteria := make([]domain.Criterion, 0, count)
	evaluations := make([]domain.CriterionEvaluation, 0, count)
	for i := 0; i < count; i++ {
		id := uuid.New().String()
		criteria = append(criteria, domain.Criterion{
			ID:         id,
			Name:       criterionNames[i%len(criterionNames)],
			Importance: float64(20 + rng.IntN(81)),
		})
		evaluations = append(evaluations, domain.CriterionEvaluation{
			CriterionID:      id,
			SupportsDecision: rng.IntN(2) == 0,
			Strength:         float64(10 + rng.IntN(91)),
			Confidence:       float64(30 + rng.IntN(71)),
		})
	}

	doc := domain.DecisionDocument{
		Name:        "generated decision",
		Prior:       float64(20 + rng.IntN(61)),
		Criteria:    criteria,
		Evaluations: evaluations,
		Options:     &domain.DocumentOptions{Seed: seed},
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		log.Fatalf("failed to marshal document: %v", err)
	}
	fmt.Print(string(out))
}
