package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/entity/generated"
	"subs_dashboard/internal/gateways/http/mw"
)

func setupDashboard(r *gin.RouterGroup, u UseCases) {
	r.GET("/dashboard/stats", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}

		var ref time.Time
		if s := c.Query("date"); s != "" {
			d, err := parseDate(s)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
				return
			}
			ref = d
		}

		st, err := u.Dashboard.Stats(c, mw.UserID(c), ref)
		if respondUseCaseErr(c, err) {
			return
		}
		c.JSON(http.StatusOK, toWireStats(st))
	})
}

func toWireStats(st entity.DashboardStats) generated.DashboardStats {
	breakdown := make([]*generated.CategorySpend, 0, len(st.CategoryBreakdown))
	for _, cs := range st.CategoryBreakdown {
		breakdown = append(breakdown, &generated.CategorySpend{
			Category: cs.Category,
			Amount:   cs.Amount.StringFixed(2),
			Color:    cs.Color,
		})
	}
	return generated.DashboardStats{
		TotalMonthlySpending:     st.TotalMonthlySpending.StringFixed(2),
		TotalActiveSubscriptions: int64(st.TotalActiveSubscriptions),
		UpcomingPayments:         toWireSubs(st.UpcomingPayments),
		CategoryBreakdown:        breakdown,
	}
}
