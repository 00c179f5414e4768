package sink

// Recorder keeps every written value in memory. Useful for headless runs
// and assertions on write counts.
type Recorder struct {
	Values []uint8
}

func (r *Recorder) Write(v uint8) {
	r.Values = append(r.Values, v)
}

// Last returns the most recent value, or 0 before the first write.
func (r *Recorder) Last() uint8 {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[len(r.Values)-1]
}

// Count returns the number of writes seen.
func (r *Recorder) Count() int { return len(r.Values) }
