package model

// MaxRecentJobs caps the recent-jobs list kept in the app config.
const MaxRecentJobs = 10

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new runs
	DefaultCoverage  float64 `json:"default_coverage"`
	DefaultHeuristic string  `json:"default_heuristic"`

	// Application preferences
	RecentJobs []string `json:"recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultCoverage:  0.9,
		DefaultHeuristic: "maxrects-bssf",
		RecentJobs:       []string{},
	}
}

// AddRecentJob records a job file path at the front of the recent list,
// removing any earlier occurrence and trimming the list to MaxRecentJobs.
func (c *AppConfig) AddRecentJob(path string) {
	recent := []string{path}
	for _, p := range c.RecentJobs {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentJobs {
		recent = recent[:MaxRecentJobs]
	}
	c.RecentJobs = recent
}
