package serviceImp

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"cropadvisor/pkg/fertilizer/advisory"
	"cropadvisor/pkg/fertilizer/reference"
	"cropadvisor/pkg/fertilizer/service"
)

type fertilizerSvc struct {
	table *reference.Table
	log   *zap.Logger
}

func NewFertilizerService(table *reference.Table, log *zap.Logger) service.FertilizerService {
	return &fertilizerSvc{table: table, log: log}
}

func (s *fertilizerSvc) Crops() []string { return s.table.Crops() }

func (s *fertilizerSvc) Advise(ctx context.Context, nitrogen, phosphorus, potassium int, crop string) (*service.Advice, error) {
	ref, ok := s.table.Lookup(crop)
	if !ok {
		return nil, fmt.Errorf("%w: %q", service.ErrUnknownCrop, crop)
	}

	dev := service.Deviation{
		N: ref.N - float64(nitrogen),
		P: ref.P - float64(phosphorus),
		K: ref.K - float64(potassium),
	}
	nutrient, d := limiting(dev)

	// A negative deviation (observed above ideal) reads as "High"; anything
	// else, zero included, reads as "low".
	high := d < 0
	key := advisory.Key(nutrient + "low")
	if high {
		key = advisory.Key(nutrient + "High")
	}
	text, ok := advisory.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("no advisory text for %s", key)
	}

	s.log.Debug("fertilizer advice",
		zap.String("crop", ref.Crop),
		zap.String("key", string(key)),
		zap.Float64("dn", dev.N), zap.Float64("dp", dev.P), zap.Float64("dk", dev.K),
	)
	return &service.Advice{Crop: ref.Crop, Key: key, Nutrient: nutrient, High: high, Deviation: dev, Text: text}, nil
}

// limiting returns the nutrient with the largest absolute deviation and its
// signed value. Equal magnitudes resolve N, then P, then K, whatever the signs.
func limiting(d service.Deviation) (string, float64) {
	name, val := "N", d.N
	for _, c := range []struct {
		name string
		val  float64
	}{{"P", d.P}, {"K", d.K}} {
		if math.Abs(c.val) > math.Abs(val) {
			name, val = c.name, c.val
		}
	}
	return name, val
}
