package forms

import (
	"strconv"

	"cropadvisor/entities"
)

// Soil is the crop recommendation form; every field must be a plain decimal.
type Soil struct {
	Nitrogen    string `form:"nitrogen" validate:"required,numeric"`
	Phosphorus  string `form:"phosphorus" validate:"required,numeric"`
	Potassium   string `form:"potassium" validate:"required,numeric"`
	Temperature string `form:"temperature" validate:"required,numeric"`
	Humidity    string `form:"humidity" validate:"required,numeric"`
	PH          string `form:"pH" validate:"required,numeric"`
	Rainfall    string `form:"rainfall" validate:"required,numeric"`
}

// Validate checks the form and, when it passes, returns the parsed sample.
func (f *Soil) Validate() (entities.SoilSample, Result) {
	trim(&f.Nitrogen, &f.Phosphorus, &f.Potassium, &f.Temperature, &f.Humidity, &f.PH, &f.Rainfall)
	res := check(f)
	if !res.OK() {
		return entities.SoilSample{}, res
	}

	var s entities.SoilSample
	for _, fld := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"nitrogen", f.Nitrogen, &s.Nitrogen},
		{"phosphorus", f.Phosphorus, &s.Phosphorus},
		{"potassium", f.Potassium, &s.Potassium},
		{"temperature", f.Temperature, &s.Temperature},
		{"humidity", f.Humidity, &s.Humidity},
		{"pH", f.PH, &s.PH},
		{"rainfall", f.Rainfall, &s.Rainfall},
	} {
		v, err := strconv.ParseFloat(fld.raw, 64)
		if err != nil {
			res.Add(fld.name, "Enter a number.")
			continue
		}
		*fld.dst = v
	}
	return s, res
}

// Fertilizer is the fertilizer advisory form.
type Fertilizer struct {
	Nitrogen   string `form:"nitrogen" validate:"required,integer"`
	Phosphorus string `form:"phosphorus" validate:"required,integer"`
	Potassium  string `form:"potassium" validate:"required,integer"`
	CropName   string `form:"cropName" validate:"required"`
}

type FertilizerInput struct {
	Nitrogen   int
	Phosphorus int
	Potassium  int
	Crop       string
}

func (f *Fertilizer) Validate() (FertilizerInput, Result) {
	trim(&f.Nitrogen, &f.Phosphorus, &f.Potassium, &f.CropName)
	res := check(f)
	if !res.OK() {
		return FertilizerInput{}, res
	}
	// The integer tag already proved these parse.
	n, _ := strconv.Atoi(f.Nitrogen)
	p, _ := strconv.Atoi(f.Phosphorus)
	k, _ := strconv.Atoi(f.Potassium)
	return FertilizerInput{Nitrogen: n, Phosphorus: p, Potassium: k, Crop: f.CropName}, res
}

// Values returns the submitted values keyed by form name, for re-rendering.
func (f Soil) Values() map[string]string {
	return map[string]string{
		"nitrogen": f.Nitrogen, "phosphorus": f.Phosphorus, "potassium": f.Potassium,
		"temperature": f.Temperature, "humidity": f.Humidity, "pH": f.PH, "rainfall": f.Rainfall,
	}
}

func (f Fertilizer) Values() map[string]string {
	return map[string]string{
		"nitrogen": f.Nitrogen, "phosphorus": f.Phosphorus, "potassium": f.Potassium, "cropName": f.CropName,
	}
}
