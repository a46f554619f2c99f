package utils

// progressMarks are the completion percentages that get reported.
var progressMarks = []int{5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// Progress logs completion of a fixed-size job at fixed percentage marks.
type Progress struct {
	logger *Logger
	label  string
	total  int
	next   int
}

// NewProgress tracks a job of total items.
func NewProgress(logger *Logger, label string, total int) *Progress {
	return &Progress{logger: logger, label: label, total: total}
}

// Step records that done items are complete and logs each mark crossed.
// It returns true once the job is complete.
func (p *Progress) Step(done int) bool {
	if p.total <= 0 {
		return true
	}
	for p.next < len(progressMarks) && done*100 >= progressMarks[p.next]*p.total {
		p.logger.Info("[%s] Processing status: %d%% complete", p.label, progressMarks[p.next])
		p.next++
	}
	return done >= p.total
}
