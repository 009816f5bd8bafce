package serviceImp

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/crop/catalog"
	"cropadvisor/pkg/crop/classifier"
	"cropadvisor/pkg/crop/service"
)

type cropSvc struct {
	model classifier.Classifier
	log   *zap.Logger
}

func NewCropService(model classifier.Classifier, log *zap.Logger) service.CropService {
	return &cropSvc{model: model, log: log}
}

func (s *cropSvc) Recommend(ctx context.Context, sample entities.SoilSample) (*service.Recommendation, error) {
	labels, err := s.model.Predict([][]float64{sample.Features()})
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if len(labels) == 0 {
		return nil, service.ErrEmptyPrediction
	}

	label := labels[0]
	name, ok := catalog.Name(label)
	if !ok {
		return nil, fmt.Errorf("%w: %d", service.ErrUnknownLabel, label)
	}
	url, ok := catalog.ImageURL(name)
	if !ok {
		return nil, fmt.Errorf("%w: no image for %s", service.ErrUnknownLabel, name)
	}

	s.log.Debug("crop recommended",
		zap.Float64s("features", sample.Features()),
		zap.Int("label", label),
		zap.String("crop", name),
	)
	return &service.Recommendation{Label: label, Crop: name, ImageURL: url}, nil
}
