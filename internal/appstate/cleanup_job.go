package appstate

import "github.com/rs/zerolog"

// CleanupJob removes expired state entries.
// It should be scheduled to run daily.
type CleanupJob struct {
	repo     *Repository
	log      zerolog.Logger
	recorder DeletionRecorder
}

// DeletionRecorder receives the number of entries each run removed
type DeletionRecorder interface {
	RecordExpiredDeleted(n int64)
}

// NewCleanupJob creates a new app state cleanup job.
func NewCleanupJob(repo *Repository, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		repo: repo,
		log:  log.With().Str("job", "app_state_cleanup").Logger(),
	}
}

// SetRecorder attaches a metrics sink
func (j *CleanupJob) SetRecorder(r DeletionRecorder) {
	j.recorder = r
}

// Run removes all expired entries from the repository's namespace.
func (j *CleanupJob) Run() error {
	deleted, err := j.repo.DeleteExpired()
	if err != nil {
		j.log.Error().Err(err).Msg("Failed to delete expired app state")
		return err
	}

	if j.recorder != nil {
		j.recorder.RecordExpiredDeleted(deleted)
	}

	if deleted > 0 {
		j.log.Info().
			Int64("deleted", deleted).
			Msg("App state cleanup completed")
	}

	return nil
}

// Name returns the job name for scheduling and logging.
func (j *CleanupJob) Name() string {
	return "app_state_cleanup"
}
