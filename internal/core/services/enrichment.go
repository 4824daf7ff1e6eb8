package services

import (
	"github.com/expenza/claims_management_app/internal/core/domain"
)

// unknownDescription is the fallback label for codes missing from a dimension.
const unknownDescription = "Unknown"

// EnrichClaims decorates claims with their human-readable status and type
// labels. It is a pure function of its inputs; the caller supplies the
// dimension lookups.
func EnrichClaims(claims []domain.Claim, statusDescs, typeDescs map[int]string) []domain.EnrichedClaim {
	enriched := make([]domain.EnrichedClaim, len(claims))
	for i, c := range claims {
		statusDesc, ok := statusDescs[int(c.Status)]
		if !ok {
			statusDesc = unknownDescription
		}
		typeDesc, ok := typeDescs[c.Type]
		if !ok {
			typeDesc = unknownDescription
		}
		enriched[i] = domain.EnrichedClaim{
			Claim:             c,
			StatusDescription: statusDesc,
			TypeDescription:   typeDesc,
		}
	}
	return enriched
}
