// Package catalog is the fixed mapping between classifier labels, crop names
// and their illustrative images.
package catalog

import (
	"sort"
	"strings"
)

const (
	MinLabel = 1
	MaxLabel = 22
)

var names = [MaxLabel + 1]string{
	1: "rice", 2: "maize", 3: "jute", 4: "cotton", 5: "coconut", 6: "papaya",
	7: "orange", 8: "apple", 9: "muskmelon", 10: "watermelon", 11: "grapes",
	12: "mango", 13: "banana", 14: "pomegranate", 15: "lentil", 16: "blackgram",
	17: "mungbean", 18: "mothbeans", 19: "pigeonpeas", 20: "kidneybeans",
	21: "chickpea", 22: "coffee",
}

var labels, images = func() (map[string]int, map[string]string) {
	l := make(map[string]int, MaxLabel)
	img := make(map[string]string, MaxLabel)
	for id := MinLabel; id <= MaxLabel; id++ {
		l[names[id]] = id
		img[names[id]] = "/static/images/crops/" + names[id] + ".svg"
	}
	return l, img
}()

// Name returns the crop for a classifier label.
func Name(label int) (string, bool) {
	if label < MinLabel || label > MaxLabel {
		return "", false
	}
	return names[label], true
}

func Label(crop string) (int, bool) {
	id, ok := labels[normalize(crop)]
	return id, ok
}

func ImageURL(crop string) (string, bool) {
	u, ok := images[normalize(crop)]
	return u, ok
}

// Names lists every known crop alphabetically.
func Names() []string {
	out := make([]string, 0, MaxLabel)
	for id := MinLabel; id <= MaxLabel; id++ {
		out = append(out, names[id])
	}
	sort.Strings(out)
	return out
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
