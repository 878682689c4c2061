package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(jobsStartedTotal, jobsFinishedTotal, jobsSweptTotal, companiesProcessedTotal) }

var jobsStartedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "research_jobs_started_total",
		Help: "Total number of research jobs started.",
	},
)

var jobsFinishedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "research_jobs_finished_total",
		Help: "Total number of research jobs that reached a terminal state, labeled by status.",
	},
	[]string{"status"}, // 'completed', 'failed', 'cancelled'
)

var jobsSweptTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "research_jobs_swept_total",
		Help: "Total number of terminal jobs removed by the retention sweep.",
	},
)

var companiesProcessedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "research_companies_processed_total",
		Help: "Companies processed across all jobs, labeled by per-company status.",
	},
	[]string{"status"}, // 'completed', 'error'
)

func IncJobStarted() { jobsStartedTotal.Inc() }

func IncJobFinished(status string) {
	jobsFinishedTotal.WithLabelValues(norm(status)).Inc()
}

func AddJobsSwept(n int) { jobsSweptTotal.Add(float64(n)) }

func IncCompanyProcessed(status string) {
	companiesProcessedTotal.WithLabelValues(norm(status)).Inc()
}
