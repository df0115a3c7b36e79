// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/pathwise/internal/dataset"
	"github.com/tomtom215/pathwise/internal/metrics"
)

// CareerType is the Type of every career recommendation.
const CareerType = "career"

// recommendCareers predicts careers from the aptitude row, decodes them and
// resolves each against the career catalog. Unresolved careers are kept with
// a zero score. The result holds at most MaxCareers entries in prediction
// order.
func (e *Engine) recommendCareers(row FeatureRow) ([]Recommendation, error) {
	labels, err := e.registry.CareerModel().Predict(row)
	if err != nil {
		return nil, fmt.Errorf("predict careers: %w", err)
	}

	decoder := e.registry.Decoder()
	careers := e.data.Careers
	recs := make([]Recommendation, 0, min(len(labels), e.config.MaxCareers))
	for _, label := range labels {
		if len(recs) == e.config.MaxCareers {
			break
		}
		name, err := decoder.Decode(label)
		if err != nil {
			return nil, fmt.Errorf("%w: decode career label %q: %w", ErrModelOutput, label, err)
		}
		name = strings.TrimSpace(name)

		idx, how := resolveName(name, len(careers), func(i int) string { return careers[i].Name })
		metrics.RecordCatalogMatch("career", how)
		if idx < 0 {
			e.logger.Debug().Str("career", name).Msg("predicted career not in catalog")
			recs = append(recs, unresolvedCareer(name))
			continue
		}
		recs = append(recs, resolvedCareer(careers[idx]))
	}
	return recs, nil
}

func resolvedCareer(entry dataset.CareerEntry) Recommendation {
	return Recommendation{
		Name:             entry.Name,
		Type:             CareerType,
		SimilarityScore:  1.0,
		Description:      entry.Description,
		Reasoning:        CareerReasoning(entry.RequiredSkills),
		JobApplicability: dataset.NA,
		FutureTrends:     dataset.NA,
		AutomationRisk:   dataset.NA,
	}
}

func unresolvedCareer(name string) Recommendation {
	return Recommendation{
		Name:             name,
		Type:             CareerType,
		SimilarityScore:  0.0,
		Description:      careerNoDescription,
		Reasoning:        careerReasonUnresolved,
		JobApplicability: dataset.NA,
		FutureTrends:     dataset.NA,
		AutomationRisk:   dataset.NA,
	}
}
