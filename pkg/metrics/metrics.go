package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MarketsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainmart_markets_created_total",
		Help: "Total number of marketplaces created",
	})

	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainmart_products_created_total",
		Help: "Total number of products created",
	})

	ItemsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainmart_items_recorded_total",
		Help: "Total number of trade items recorded",
	})

	ReviewsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainmart_reviews_created_total",
		Help: "Total number of reviews created",
	}, []string{"scope"})

	ReportsFiledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainmart_reports_filed_total",
		Help: "Total number of issue reports filed",
	})

	CascadeSweptTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainmart_cascade_swept_total",
		Help: "Documents removed by cascade and cleanup sweeps",
	}, []string{"collection"})
)
