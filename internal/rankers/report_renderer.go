package rankers

import (
	"fmt"
	"strings"
	"time"

	"hotpath-analytics/internal/models"
)

const reportFrame = "===================================="

// reportTimeLayout formats the last second covered by the window.
const reportTimeLayout = "2006年01月02日 15时 04分 05秒"

// ReportRenderer turns a ranked report into its fixed text form:
//
//	====================================
//	时间: 2021年05月10日 12时 01分 59秒
//	No0:  请求URL=/api/orders  请求量=112
//	No1:  请求URL=/index.html  请求量=89
//	====================================
//	<blank line>
//
// The rendered time is windowEnd minus one second, the last second inside the
// window, shown in the configured zone. Ranks are zero-based.
type ReportRenderer struct {
	zone *time.Location
}

func NewReportRenderer(zone *time.Location) *ReportRenderer {
	if zone == nil {
		zone = time.UTC
	}
	return &ReportRenderer{zone: zone}
}

func (r *ReportRenderer) Render(report *models.RankedReport) string {
	var b strings.Builder

	b.WriteString(reportFrame)
	b.WriteByte('\n')

	displayed := report.WindowEnd.Add(-time.Second).In(r.zone)
	b.WriteString("时间: ")
	b.WriteString(displayed.Format(reportTimeLayout))
	b.WriteByte('\n')

	for i, entry := range report.Entries {
		fmt.Fprintf(&b, "No%d:  请求URL=%s  请求量=%d\n", i, entry.RequestPath, entry.Count)
	}

	b.WriteString(reportFrame)
	b.WriteString("\n\n")

	return b.String()
}
