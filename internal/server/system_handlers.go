package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/creditgo/creditgo/internal/database"
)

// JobCounter reports how many background jobs are scheduled; *scheduler.Scheduler satisfies it.
type JobCounter interface {
	Entries() int
}

// SystemHandlers handles system monitoring endpoints
type SystemHandlers struct {
	log        zerolog.Logger
	appStateDB *database.DB
	jobs       JobCounter
	startedAt  time.Time
}

// NewSystemHandlers creates system handlers. db and jobs may be nil.
func NewSystemHandlers(log zerolog.Logger, db *database.DB, jobs JobCounter) *SystemHandlers {
	return &SystemHandlers{
		log:        log.With().Str("service", "system").Logger(),
		appStateDB: db,
		jobs:       jobs,
		startedAt:  time.Now(),
	}
}

// SystemStatusResponse is returned by GET /api/system/status
type SystemStatusResponse struct {
	Status        string  `json:"status"`
	GoVersion     string  `json:"go_version"`
	LastChecked   string  `json:"last_checked"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	Goroutines    int     `json:"goroutines"`
	ScheduledJobs int     `json:"scheduled_jobs"`
	DatabaseMB    float64 `json:"database_mb"`
}

// DatabaseStatsResponse is returned by GET /api/system/database/stats
type DatabaseStatsResponse struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	LastChecked string  `json:"last_checked"`
	SizeMB      float64 `json:"size_mb"`
	WALSizeMB   float64 `json:"wal_size_mb"`
	PageCount   int64   `json:"page_count"`
	PageSize    int64   `json:"page_size"`
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, memPercent := h.getSystemStats()

	response := SystemStatusResponse{
		Status:        "healthy",
		GoVersion:     runtime.Version(),
		LastChecked:   time.Now().Format(time.RFC3339),
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		CPUPercent:    cpuPercent,
		MemoryPercent: memPercent,
		Goroutines:    runtime.NumGoroutine(),
	}

	if h.jobs != nil {
		response.ScheduledJobs = h.jobs.Entries()
	}

	if h.appStateDB != nil {
		stats, err := h.appStateDB.GetStats()
		if err != nil {
			h.log.Warn().Err(err).Msg("Failed to get database stats")
			response.Status = "degraded"
		} else {
			response.DatabaseMB = bytesToMB(stats.SizeBytes + stats.WALSizeBytes)
		}
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleDatabaseStats handles GET /api/system/database/stats
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting database stats")

	if h.appStateDB == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "database not configured"})
		return
	}

	stats, err := h.appStateDB.GetStats()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get database stats")
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read database stats"})
		return
	}

	h.writeJSON(w, http.StatusOK, DatabaseStatsResponse{
		Name:        h.appStateDB.Name(),
		Path:        h.appStateDB.Path(),
		LastChecked: time.Now().Format(time.RFC3339),
		SizeMB:      bytesToMB(stats.SizeBytes),
		WALSizeMB:   bytesToMB(stats.WALSizeBytes),
		PageCount:   stats.PageCount,
		PageSize:    stats.PageSize,
	})
}

// getSystemStats returns CPU and RAM usage percentages.
// The CPU sample window is kept short so the endpoint stays responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

func bytesToMB(b int64) float64 {
	return float64(b) / 1024 / 1024
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
