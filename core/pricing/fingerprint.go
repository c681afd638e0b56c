package pricing

import (
	"paint-quote/core/determinism"
	"paint-quote/core/types"
	"paint-quote/internal/errors"
)

// Fingerprint identifies a pricing input. Price is a pure function, so
// equal fingerprints always mean equal quotes, and callers may cache by it.
func Fingerprint(surfaces []types.Surface, rateCard *types.RateCard) (string, error) {
	h, err := determinism.HashJSON(struct {
		Surfaces []types.Surface `json:"surfaces"`
		RateCard *types.RateCard `json:"rateCard"`
	}{surfaces, rateCard})
	if err != nil {
		return "", errors.Internal("failed to fingerprint pricing input", err)
	}
	return h.Short(), nil
}
