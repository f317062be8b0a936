package sheet

import (
	"bytes"
	"fmt"
	"strconv"
)

// Answer is the decoded selection for one question: a 0-based option
// index, or one of the sentinel values below.
type Answer int

const (
	// NoAnswer means no option cell reached the minimum mark density.
	NoAnswer Answer = -1

	// Ambiguous means two or more options were marked with
	// near-identical density, so no single pick is defensible.
	Ambiguous Answer = -2
)

// String renders an option index as its letter (0 -> "A") and sentinels
// as their names.
func (a Answer) String() string {
	switch {
	case a == NoAnswer:
		return "none"
	case a == Ambiguous:
		return "ambiguous"
	case a >= 0 && int(a) < OptionsPerQuestion:
		return string(rune('A' + int(a)))
	default:
		return fmt.Sprintf("invalid(%d)", int(a))
	}
}

// AnswerMap records one Answer per question number. Question numbers are
// unique across the whole submission, insertion order is question order,
// and an existing entry is never overwritten — the first page to answer a
// question wins.
type AnswerMap struct {
	entries map[int]Answer
	order   []int
}

// NewAnswerMap creates an empty answer map.
func NewAnswerMap() *AnswerMap {
	return &AnswerMap{entries: make(map[int]Answer)}
}

// Set records the answer for a question. It reports false, leaving the
// existing entry untouched, when the question was already answered by an
// earlier page.
func (m *AnswerMap) Set(question int, a Answer) bool {
	if _, exists := m.entries[question]; exists {
		return false
	}
	m.entries[question] = a
	m.order = append(m.order, question)
	return true
}

// Get returns the answer recorded for a question.
func (m *AnswerMap) Get(question int) (Answer, bool) {
	a, ok := m.entries[question]
	return a, ok
}

// Len returns the number of answered questions.
func (m *AnswerMap) Len() int {
	return len(m.order)
}

// Questions returns the question numbers in insertion order.
func (m *AnswerMap) Questions() []int {
	out := make([]int, len(m.order))
	copy(out, m.order)
	return out
}

// MarshalJSON encodes the map as a JSON object keyed by question number,
// in question order. Selected options serialize as 0-based indices,
// sentinels as "none"/"ambiguous".
func (m *AnswerMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, q := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(q)))
		buf.WriteByte(':')
		a := m.entries[q]
		if a >= 0 {
			buf.WriteString(strconv.Itoa(int(a)))
		} else {
			buf.WriteString(strconv.Quote(a.String()))
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
