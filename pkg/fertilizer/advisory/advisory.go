// Package advisory holds the canned remediation text for each nutrient imbalance.
package advisory

type Key string

const (
	NHigh Key = "NHigh"
	NLow  Key = "Nlow"
	PHigh Key = "PHigh"
	PLow  Key = "Plow"
	KHigh Key = "KHigh"
	KLow  Key = "Klow"
)

// Text is a heading plus ordered suggestions.
type Text struct {
	Heading     string
	Suggestions []string
}

var texts = map[Key]Text{
	NHigh: {
		Heading: "The N value of soil is high and might give rise to weeds.",
		Suggestions: []string{
			"Manure: add manure only if it is well composted; fresh manure carries extra nitrogen.",
			"Coffee grounds are a nitrogen source; keep them out of the field for now.",
			"Plant nitrogen-hungry crops such as tomatoes, corn, broccoli or cabbage to use the surplus.",
			"Water the soil thoroughly; soaking lets nitrogen leach below the root zone.",
			"Add sawdust or fine woodchips; their carbon binds the excess nitrogen while they break down.",
			"Mulch with dry material such as straw to slow nitrogen release.",
			"Do nothing for a season; excess nitrogen declines as crops draw on it.",
		},
	},
	NLow: {
		Heading: "The N value of your soil is low.",
		Suggestions: []string{
			"Add sawdust only once fully composted; raw sawdust locks up nitrogen.",
			"Apply well-rotted manure or compost to raise nitrogen steadily.",
			"Grow legumes such as beans or peas; their root nodules fix atmospheric nitrogen.",
			"Use a nitrogen fertilizer (urea, ammonium sulfate, or an NPK blend with a high first number).",
			"Apply green manure: grow clover or alfalfa and till it back into the soil.",
			"Mulch with fresh grass clippings, which release nitrogen as they decay.",
		},
	},
	PHigh: {
		Heading: "The P value of your soil is high.",
		Suggestions: []string{
			"Avoid adding manure; it usually carries a lot of phosphorus.",
			"Use phosphorus-free fertilizer, an NPK blend whose middle number is 0 (for example 10-0-10).",
			"Water the soil; deep watering moves soluble phosphorus below the root zone.",
			"Plant nitrogen-fixing vegetables such as beans and peas to rebalance the ratio.",
			"Use crop rotations that include phosphorus-hungry crops.",
		},
	},
	PLow: {
		Heading: "The P value of your soil is low.",
		Suggestions: []string{
			"Add bone meal, a fast-acting phosphorus source.",
			"Apply rock phosphate for a slow, long-term supply.",
			"Use a phosphorus fertilizer with a high middle number (for example 10-20-10).",
			"Add organic compost to improve phosphorus availability.",
			"Apply manure, which releases phosphorus as it breaks down.",
			"Bring soil pH towards 6.0-7.0 where phosphorus is most available.",
		},
	},
	KHigh: {
		Heading: "The K value of your soil is high.",
		Suggestions: []string{
			"Loosen the soil deeply and water thoroughly to wash soluble potassium down.",
			"Remove rocks from the soil; some minerals slowly release potassium.",
			"Stop applying potassium-rich fertilizers and wood ash.",
			"Use fertilizer with a low last number (for example 10-10-0).",
			"Mix crushed eggshells or seashells into the soil to add calcium, which competes with potassium uptake.",
			"Grow cover crops to take up the surplus.",
		},
	},
	KLow: {
		Heading: "The K value of your soil is low.",
		Suggestions: []string{
			"Mix in muricate of potash or sulphate of potash.",
			"Apply potash fertilizer with a high last number (for example 10-10-20).",
			"Bury banana peels a few inches below the surface.",
			"Use kelp meal or seaweed extracts.",
			"Add wood ash sparingly; it raises pH as well as potassium.",
			"Grow cover crops and till them back in to recycle potassium.",
		},
	},
}

// Lookup returns the text for key. Every Key constant is present.
func Lookup(k Key) (Text, bool) {
	t, ok := texts[k]
	return t, ok
}

// Keys lists all six keys in nutrient order.
func Keys() []Key { return []Key{NHigh, NLow, PHigh, PLow, KHigh, KLow} }
