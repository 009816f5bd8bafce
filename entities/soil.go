package entities

// FeatureOrder is the column order the crop classifier was trained on.
var FeatureOrder = []string{"N", "P", "K", "temperature", "humidity", "ph", "rainfall"}

// SoilSample is one submitted measurement set. Never persisted.
type SoilSample struct {
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PH          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"`
}

// Features packs the sample in FeatureOrder.
func (s SoilSample) Features() []float64 {
	return []float64{s.Nitrogen, s.Phosphorus, s.Potassium, s.Temperature, s.Humidity, s.PH, s.Rainfall}
}

// CropReference holds the ideal N/P/K levels for one crop.
type CropReference struct {
	Crop string  `json:"crop"`
	N    float64 `json:"n"`
	P    float64 `json:"p"`
	K    float64 `json:"k"`
}
