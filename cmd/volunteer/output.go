package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/forgo/volunteer/internal/model"
)

func printOpportunities(w io.Writer, heading string, opportunities []*model.Opportunity) {
	fmt.Fprintf(w, "%s (%d)\n", heading, len(opportunities))
	for _, o := range opportunities {
		status := "open"
		if !o.IsAvailable() {
			status = "closed"
		}
		org := ""
		if o.Organization != nil {
			org = o.Organization.Email
		}
		fmt.Fprintf(w, "  #%d %-20s interest=%s status=%s org=%s\n", o.ID, o.Title, o.Interest, status, org)
	}
}

func printApplication(w io.Writer, a *model.Application) {
	opportunityID := 0
	if a.Opportunity != nil {
		opportunityID = a.Opportunity.ID
	}
	fmt.Fprintf(w, "application #%d opportunity=#%d volunteer=%s status=%s\n",
		a.ID, opportunityID, a.Volunteer.Email, a.Status)
}

// printCounters writes every counter sample in the registry, sorted by
// metric name then labels.
func printCounters(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			lines = append(lines, fmt.Sprintf("  %s%s %g", mf.GetName(), formatLabels(m.GetLabel()), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	fmt.Fprintln(w, "metrics")
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
