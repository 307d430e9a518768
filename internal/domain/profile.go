package domain

import "time"

// Profile collects wall-clock timings for the pipeline stages of one run.
// Not safe for concurrent use.
type Profile struct {
	Spans   []ProfileSpan
	startTs time.Time
}

type ProfileSpan struct {
	Name      string
	ElapsedMs int64
}

func NewProfile() *Profile {
	return &Profile{startTs: time.Now()}
}

// StartSpan begins a named stage; the returned func ends it.
func (p *Profile) StartSpan(name string) func() {
	start := time.Now()
	return func() {
		p.Spans = append(p.Spans, ProfileSpan{
			Name:      name,
			ElapsedMs: time.Since(start).Milliseconds(),
		})
	}
}

func (p Profile) TotalMs() int64 {
	return time.Since(p.startTs).Milliseconds()
}
