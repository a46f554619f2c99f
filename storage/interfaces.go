package storage

import "ppr-analyser/models"

// DatasetWriter is the interface any backend storing parsed sales must satisfy.
type DatasetWriter interface {
	Write(ds *models.Dataset) error
	Close() error
}

// SummaryAppender is the interface for sinks that receive one summary block per run.
type SummaryAppender interface {
	AppendSummary(s models.Summary) error
	Close() error
}

var (
	_ DatasetWriter   = (*PostgresWriter)(nil)
	_ SummaryAppender = (*PostgresWriter)(nil)
	_ SummaryAppender = (*SummaryWriter)(nil)
)
