package formatter

import (
	"call-staffing/models"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage groups thousands the way the planning team reads them (5.616).
var DefaultLanguage = language.BrazilianPortuguese

// FormatText returns the text representation of the reports.
// Volumes and capacities are grouped by thousands for lang.
func FormatText(reports []models.NamedReport, lang language.Tag) string {
	p := message.NewPrinter(lang)
	var sb strings.Builder

	for i, nr := range reports {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeTextReport(&sb, p, nr)
	}

	return sb.String()
}

func writeTextReport(sb *strings.Builder, p *message.Printer, nr models.NamedReport) {
	r := nr.Report
	params := r.Parameters

	if nr.Name != "" {
		sb.WriteString(fmt.Sprintf("== %s\n", nr.Name))
	}
	sb.WriteString(fmt.Sprintf("Agents needed: %d (net %d per interval)\n", r.AgentsNeeded, r.NetAgents))
	sb.WriteString(fmt.Sprintf("Max capacity: %s calls/day\n", grouped(p, float64(r.MaxCapacity))))
	sb.WriteString(fmt.Sprintf("Capacity per agent: %d calls/day, AHT %s\n",
		int(r.CapacityPerAgent), FormatDuration(params.ServiceTime)))
	sb.WriteString(fmt.Sprintf("Volume: %s/hour, %s/day, %s/month\n",
		grouped(p, r.Volume.Hourly), grouped(p, r.Volume.Daily), grouped(p, r.Volume.Monthly)))

	sb.WriteString("Scenarios (agents : service level : capacity):\n")
	for _, e := range r.Scenarios.Entries {
		marker := ""
		if e.MeetsTarget {
			marker = " *"
		}
		sb.WriteString(fmt.Sprintf("  %d : %s : %s%s\n", e.Agents, Percent(e.ServiceLevel), grouped(p, float64(e.Capacity)), marker))
	}

	sb.WriteString("Hourly agents:\n")
	for _, s := range r.Hourly.Slots {
		sb.WriteString(fmt.Sprintf("  %s : %d\n", s.Label, s.AgentsNeeded))
	}
}

// FormatJSON returns the JSON representation of the reports
func FormatJSON(reports []models.NamedReport) string {
	jsonBytes, _ := json.MarshalIndent(reports, "", "  ")
	return string(jsonBytes)
}

// FormatCSV returns the CSV representation of the reports.
// Each report produces one summary row, one row per scenario and one row per hour slot.
func FormatCSV(reports []models.NamedReport) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	writer.Write([]string{
		"Name", "Kind", "Slot", "Agents", "Service Level", "Capacity", "Meets Target",
	})

	for _, nr := range reports {
		writeReportToCSV(writer, nr)
	}

	writer.Flush()
	return sb.String()
}

// writeReportToCSV writes a single report's rows to CSV
func writeReportToCSV(writer *csv.Writer, nr models.NamedReport) {
	r := nr.Report

	writer.Write([]string{
		nr.Name, "summary", "",
		fmt.Sprintf("%d", r.AgentsNeeded), "",
		fmt.Sprintf("%d", r.MaxCapacity), "",
	})

	for _, e := range r.Scenarios.Entries {
		meets := "No"
		if e.MeetsTarget {
			meets = "Yes"
		}
		writer.Write([]string{
			nr.Name, "scenario", "",
			fmt.Sprintf("%d", e.Agents),
			fmt.Sprintf("%.4f", e.ServiceLevel),
			fmt.Sprintf("%d", e.Capacity),
			meets,
		})
	}

	for _, s := range r.Hourly.Slots {
		writer.Write([]string{
			nr.Name, "hourly", s.Label,
			fmt.Sprintf("%d", s.AgentsNeeded), "", "", "",
		})
	}
}

// Percent renders a service level fraction with two decimals, e.g. 7.43%.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// FormatDuration renders whole seconds as H:MM:SS, e.g. 300 -> 0:05:00.
func FormatDuration(seconds float64) string {
	total := int64(seconds)
	if total < 0 {
		return "-" + FormatDuration(-seconds)
	}
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// grouped rounds v and groups its thousands for the printer's language.
func grouped(p *message.Printer, v float64) string {
	return p.Sprintf("%d", int64(math.Round(v)))
}
