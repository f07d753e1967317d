package interfaces

import (
	"context"

	domaintypes "cityboard/internal/domain/types"
)

// CitiesClient is how we talk to the territory backend.
type CitiesClient interface {
	FetchCities(ctx context.Context) (domaintypes.CitiesResponse, error)
}
