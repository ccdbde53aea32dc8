package telemetry

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"github.com/vito/progrock"
)

// Journal is a progrock.Writer that keeps the latest state of every vertex
// and writes a step summary to the logger when closed.
type Journal struct {
	logger ports.Logger

	mu       sync.Mutex
	order    []string
	vertexes map[string]*progrock.Vertex
	stderr   map[string]int
}

var _ progrock.Writer = (*Journal)(nil)

// NewJournal creates a Journal reporting to logger.
func NewJournal(logger ports.Logger) *Journal {
	j := &Journal{logger: logger}
	j.reset()
	return j
}

// WriteStatus records the vertex and log updates of a status update.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, seen := j.vertexes[v.Id]; !seen {
			j.order = append(j.order, v.Id)
		}
		j.vertexes[v.Id] = v
	}

	for _, l := range update.Logs {
		j.stderr[l.Vertex] += bytes.Count(l.Data, []byte("\n"))
	}

	return nil
}

// Close writes one line per recorded step and starts a fresh journal.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.order) > 0 {
		j.logger.Line("Steps:")
		for _, id := range j.order {
			j.logger.Line(formatStep(j.vertexes[id], j.stderr[id]))
		}
	}

	j.reset()
	return nil
}

func (j *Journal) reset() {
	j.order = nil
	j.vertexes = make(map[string]*progrock.Vertex)
	j.stderr = make(map[string]int)
}

// formatStep renders a vertex as "  <status> <name> (<duration>)" followed by
// the first line of its error, if any.
func formatStep(v *progrock.Vertex, stderrLines int) string {
	status := "running"
	switch {
	case v.Cached:
		status = "cached"
	case v.Completed != nil && v.Error != nil:
		status = "failed"
	case v.Completed != nil:
		status = "ok"
	}

	var details []string
	if v.Started != nil && v.Completed != nil && !v.Cached {
		elapsed := v.Completed.AsTime().Sub(v.Started.AsTime())
		details = append(details, elapsed.Round(time.Millisecond).String())
	}
	if stderrLines > 0 {
		details = append(details, fmt.Sprintf("%d stderr lines", stderrLines))
	}

	line := fmt.Sprintf("  %-7s %s", status, v.Name)
	if len(details) > 0 {
		line += " (" + strings.Join(details, ", ") + ")"
	}
	if v.Error != nil {
		msg, _, _ := strings.Cut(*v.Error, "\n")
		line += ": " + msg
	}
	return line
}
