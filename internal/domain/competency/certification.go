package competency

import (
	"sort"
	"time"
)

const (
	CertStatusValid        = "valid"
	CertStatusExpiringSoon = "expiring_soon"
	CertStatusExpired      = "expired"
)

const expiringSoonWindowDays = 30

// CertificationStatusRow is one employee certification with its derived
// expiry status. DaysUntilExpiry is a signed day count, negative once
// expired, and nil for certifications that never expire.
type CertificationStatusRow struct {
	EmployeeID      int64
	EmployeeName    string
	Department      *string
	CertificationID int64
	CertName        string
	IsCritical      bool
	IssueDate       time.Time
	ExpiryDate      *time.Time
	DaysUntilExpiry *int
	Status          string
}

// CertificationStatuses derives expiry status for every assignment. Status is
// purely a function of the expiry date against now, never stored. An empty
// status filter keeps everything.
func CertificationStatuses(rows []CertificationRow, now time.Time, status string) []CertificationStatusRow {
	out := make([]CertificationStatusRow, 0, len(rows))
	for _, r := range rows {
		st, days := CertificationStatus(r.ExpiryDate, now)
		if status != "" && st != status {
			continue
		}
		out = append(out, CertificationStatusRow{
			EmployeeID:      r.EmployeeID,
			EmployeeName:    r.EmployeeName,
			Department:      r.Department,
			CertificationID: r.CertificationID,
			CertName:        r.CertName,
			IsCritical:      r.IsCritical,
			IssueDate:       r.IssueDate,
			ExpiryDate:      r.ExpiryDate,
			DaysUntilExpiry: days,
			Status:          st,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		return a.CertName < b.CertName
	})
	return out
}

// CertificationStatus classifies an expiry date against now at day
// granularity: nil never expires, a negative day difference is expired, and
// anything inside the 30-day window is expiring soon.
func CertificationStatus(expiry *time.Time, now time.Time) (string, *int) {
	if expiry == nil {
		return CertStatusValid, nil
	}
	days := daysBetween(now, *expiry)
	switch {
	case days < 0:
		return CertStatusExpired, &days
	case days <= expiringSoonWindowDays:
		return CertStatusExpiringSoon, &days
	default:
		return CertStatusValid, &days
	}
}

func daysBetween(from, to time.Time) int {
	f := dateOnly(from)
	t := dateOnly(to)
	return int(t.Sub(f).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
