package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters incremented by the handlers.
type Metrics struct {
	Signups            *prometheus.CounterVec
	MessagesPosted     *prometheus.CounterVec
	FollowRequests     *prometheus.CounterVec
	UnfollowRequests   *prometheus.CounterVec
	LikeRequests       *prometheus.CounterVec
	DirectMessagesSent *prometheus.CounterVec
}

func InitMetrics() *Metrics {
	m := &Metrics{
		Signups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_signups",
				Help: "Total number of successfully registered accounts",
			},
			[]string{"path"},
		),
		MessagesPosted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_messages",
				Help: "Total number of successfully posted messages",
			},
			[]string{"path"},
		),
		FollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_follows",
				Help: "Total number of successful follow requests",
			},
			[]string{"path"},
		),
		UnfollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_unfollows",
				Help: "Total number of successful unfollow requests",
			},
			[]string{"path"},
		),
		LikeRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_likes",
				Help: "Total number of successful like requests",
			},
			[]string{"path"},
		),
		DirectMessagesSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_direct_messages",
				Help: "Total number of successfully sent direct messages",
			},
			[]string{"path"},
		),
	}

	prometheus.MustRegister(m.Signups)
	prometheus.MustRegister(m.MessagesPosted)
	prometheus.MustRegister(m.FollowRequests)
	prometheus.MustRegister(m.UnfollowRequests)
	prometheus.MustRegister(m.LikeRequests)
	prometheus.MustRegister(m.DirectMessagesSent)

	return m
}
