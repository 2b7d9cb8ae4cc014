package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// RunProfile collects coarse stage timings for one invocation. Engines
// never touch it; callers mark stages around engine calls.
type RunProfile struct {
	StartTime time.Time         `json:"-"`
	Events    []RunProfileEvent `json:"events"`
	TotalMs   int64             `json:"totalMs"`
}

type RunProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

func NewRunProfile() *RunProfile {
	return &RunProfile{StartTime: time.Now()}
}

// Mark records a stage, elapsed relative to the previous mark.
func (p *RunProfile) Mark(name string) {
	previous := p.StartTime
	if len(p.Events) > 0 {
		previous = p.Events[len(p.Events)-1].Time
	}
	now := time.Now()
	p.Events = append(p.Events, RunProfileEvent{
		Name:      name,
		ElapsedMs: now.Sub(previous).Milliseconds(),
		Time:      now,
	})
}

func (p *RunProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

func (p RunProfile) ToJSONBytes() ([]byte, error) {
	contents, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run profile: %w", err)
	}
	return contents, nil
}
