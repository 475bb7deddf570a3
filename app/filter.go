package app

import (
	"slices"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

var errInvalidPeriod = &apperr.Error{
	Message: "invalid period: %s",
}

// reportingRange resolves --since and --period to a time range relative to
// now. --since takes precedence.
func reportingRange(since, period string, now time.Time) (start, end time.Time, err error) {
	end = timeutil.RoundToEnd(now)

	if since != "" {
		start, err = timeutil.FromStr(since, now)
		if err != nil {
			return start, end, err
		}

		return start, end, nil
	}

	p := timeutil.Period(period)
	if !slices.Contains(timeutil.PeriodCollection, p) {
		return start, end, errInvalidPeriod.Fmt(period)
	}

	start, end = timeutil.PeriodRange(p, now)

	return start, end, nil
}

func filterRange(ctx *cli.Context) (start, end time.Time, err error) {
	return reportingRange(ctx.String("since"), ctx.String("period"), time.Now())
}
