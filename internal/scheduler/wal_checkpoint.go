package scheduler

import "github.com/rs/zerolog"

// Checkpointer is satisfied by *database.DB
type Checkpointer interface {
	WALCheckpoint(mode string) error
	Name() string
}

// WALCheckpointJob truncates the write-ahead log so it does not grow
// between the driver's automatic checkpoints.
type WALCheckpointJob struct {
	db  Checkpointer
	log zerolog.Logger
}

// NewWALCheckpointJob creates a checkpoint job for one database
func NewWALCheckpointJob(db Checkpointer, log zerolog.Logger) *WALCheckpointJob {
	return &WALCheckpointJob{
		db:  db,
		log: log.With().Str("job", "wal_checkpoint").Str("database", db.Name()).Logger(),
	}
}

// Name returns the job name
func (j *WALCheckpointJob) Name() string {
	return "wal_checkpoint"
}

// Run executes a TRUNCATE checkpoint
func (j *WALCheckpointJob) Run() error {
	if err := j.db.WALCheckpoint("TRUNCATE"); err != nil {
		j.log.Warn().Err(err).Msg("WAL checkpoint failed")
		return err
	}
	j.log.Debug().Msg("WAL checkpoint completed")
	return nil
}
