package service

import (
	"context"
	"errors"

	"cropadvisor/entities"
)

var (
	ErrEmptyPrediction = errors.New("classifier returned no label")
	ErrUnknownLabel    = errors.New("classifier label has no crop")
)

type Recommendation struct {
	Label    int    `json:"label"`
	Crop     string `json:"crop"`
	ImageURL string `json:"image_url"`
}

type CropService interface {
	Recommend(ctx context.Context, s entities.SoilSample) (*Recommendation, error)
}
