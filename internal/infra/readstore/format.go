package readstore

import (
	"fmt"

	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func formatDate(pd pgtype.Date) string {
	return pgconv.DateFromPgtype(pd).Format(schedule.DateLayout)
}

func formatClock(pt pgtype.Time) string {
	d, err := pgconv.TimeOfDayFromPgtype(pt)
	if err != nil {
		return ""
	}
	m := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
