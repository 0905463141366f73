package skooma

import "strings"

// Report is the outcome of one Validate call: the ordered list of every
// violation found. An empty report means the frame conforms.
type Report struct {
	messages []string
}

// Valid reports whether no violations were found.
func (r *Report) Valid() bool {
	return len(r.messages) == 0
}

// Len returns the number of violations.
func (r *Report) Len() int {
	return len(r.messages)
}

// Messages returns the violation messages in the order they were found.
func (r *Report) Messages() []string {
	return append([]string(nil), r.messages...)
}

func (r *Report) String() string {
	if r.Valid() {
		return "valid"
	}
	return strings.Join(r.messages, "\n")
}
