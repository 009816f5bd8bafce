package service

import (
	"context"
	"errors"

	"cropadvisor/pkg/fertilizer/advisory"
)

var ErrUnknownCrop = errors.New("crop not in reference table")

// Deviation is ideal minus observed, per nutrient.
type Deviation struct {
	N float64 `json:"n"`
	P float64 `json:"p"`
	K float64 `json:"k"`
}

type Advice struct {
	Crop      string        `json:"crop"`
	Key       advisory.Key  `json:"key"`
	Nutrient  string        `json:"nutrient"`
	High      bool          `json:"high"`
	Deviation Deviation     `json:"deviation"`
	Text      advisory.Text `json:"text"`
}

type FertilizerService interface {
	Advise(ctx context.Context, nitrogen, phosphorus, potassium int, crop string) (*Advice, error)
	Crops() []string
}
