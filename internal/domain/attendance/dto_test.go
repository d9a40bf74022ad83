package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

func TestDailyReportFilter_Validate(t *testing.T) {
	t.Run("empty date defaults to today", func(t *testing.T) {
		filter := DailyReportFilter{}
		require.NoError(t, filter.Validate())
		assert.Equal(t, time.Now().Format("2006-01-02"), filter.Date)
	})

	t.Run("malformed date", func(t *testing.T) {
		filter := DailyReportFilter{Date: "01-03-2024"}
		err := filter.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap()["date"], "YYYY-MM-DD")
	})

	t.Run("defaults and normalization", func(t *testing.T) {
		filter := DailyReportFilter{
			Date:         "2024-03-01",
			EmployeeName: "  Alice ",
			Gender:       "Female",
			Status:       "Half Day",
		}
		require.NoError(t, filter.Validate())

		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, "alice", filter.EmployeeName)
		assert.Equal(t, "female", filter.Gender)
		assert.Equal(t, "halfday", filter.Status)
	})

	t.Run("page size over limit", func(t *testing.T) {
		filter := DailyReportFilter{Date: "2024-03-01", PageSize: 101}
		err := filter.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "pageSize")
	})

	t.Run("negative page", func(t *testing.T) {
		filter := DailyReportFilter{Date: "2024-03-01", Page: -1}
		assert.Error(t, filter.Validate())
	})
}

func TestGridFilter_Validate(t *testing.T) {
	t.Run("empty date is allowed", func(t *testing.T) {
		filter := GridFilter{Status: "ON_TIME"}
		require.NoError(t, filter.Validate())
		assert.Equal(t, "ontime", filter.Status)
	})

	t.Run("malformed date", func(t *testing.T) {
		filter := GridFilter{Date: "March 1st"}
		assert.Error(t, filter.Validate())
	})
}
