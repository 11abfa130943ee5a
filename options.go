package pixelsort

import "sync"

// Stage identifies a phase of the decode, sort, encode pipeline.
type Stage uint8

const (
	StageDecode Stage = iota
	StageSort
	StageEncode
)

func (s Stage) String() string {
	switch s {
	case StageDecode:
		return "Reading"
	case StageSort:
		return "Sorting"
	case StageEncode:
		return "Writing"
	}
	return "Unknown"
}

// ProgressFunc observes how many of total units a stage has completed.
// It is never called concurrently.
type ProgressFunc func(stage Stage, done, total int)

// Options are the optional settings shared by Decode, Sort and Encode.
// A nil *Options is valid and means defaults.
type Options struct {
	// Progress, if set, is called about once per percent of work and once
	// more when the stage completes.
	Progress ProgressFunc

	// Workers is the number of rows Sort processes concurrently.
	// Values <= 1 sort sequentially. Output does not depend on it.
	Workers int
}

func (o *Options) workers() int {
	if o == nil || o.Workers < 1 {
		return 1
	}
	return o.Workers
}

// progress throttles calls to a ProgressFunc to one per percent.
type progress struct {
	mu    sync.Mutex
	fn    ProgressFunc
	stage Stage
	total int
	step  int
	done  int
	next  int
}

func (o *Options) newProgress(stage Stage, total int) *progress {
	p := &progress{stage: stage, total: total, step: max(total/100, 1)}
	if o != nil {
		p.fn = o.Progress
	}
	p.next = p.step
	return p
}

// add records n more completed units.
func (p *progress) add(n int) {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done += n
	if p.done >= p.next && p.done < p.total {
		p.fn(p.stage, p.done, p.total)
		p.next = p.done + p.step
	}
}

// finish reports the stage as complete.
func (p *progress) finish() {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fn(p.stage, p.total, p.total)
}
