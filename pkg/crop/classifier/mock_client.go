package classifier

// Mock is a canned Classifier for tests. The server always loads a real artifact.
type Mock struct {
	labels []int
	err    error
	seen   [][]float64
}

// NewMock answers every call with labels (possibly none) and records the rows
// it was given.
func NewMock(labels ...int) *Mock { return &Mock{labels: labels} }

func NewFailing(err error) *Mock { return &Mock{err: err} }

func (m *Mock) Predict(rows [][]float64) ([]int, error) {
	m.seen = append(m.seen, rows...)
	if m.err != nil {
		return nil, m.err
	}
	return m.labels, nil
}

// Rows returns every row passed to Predict so far.
func (m *Mock) Rows() [][]float64 { return m.seen }
