// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Proged2021/SkillMiner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintHiddenSkills outputs the discovered hidden skills with confidence.
func (p *Printer) PrintHiddenSkills(skills []types.HiddenSkill) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := skills[i]
		sb.WriteString(fmt.Sprintf("#%d  %s [%s]\n", i+1, skill.Name, skill.Category))
		sb.WriteString(fmt.Sprintf("    Confidence: %.0f%%  Demand: %s\n", skill.Confidence*100, skill.DemandLevel))
		if skill.RevenueEstimate != "" {
			sb.WriteString(fmt.Sprintf("    Revenue: %s\n", skill.RevenueEstimate))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(skills)-maxItemsToShow))
	}

	p.printBox("HIDDEN SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchedJobs outputs the matched gig postings with match rates.
func (p *Printer) PrintMatchedJobs(jobs []types.MatchedJob) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs matched: %d\n\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, job.Title))
		sb.WriteString(fmt.Sprintf("    %s  Match: %d%%  (%s)\n", job.Company, job.MatchRate, job.Difficulty))
		if job.Salary != "" {
			sb.WriteString(fmt.Sprintf("    Salary: %s\n", job.Salary))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(jobs)-maxItemsToShow))
	}

	p.printBox("MATCHED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the weekly development roadmap.
func (p *Printer) PrintRoadmap(steps []types.RoadmapStep) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	for i, step := range steps {
		sb.WriteString(fmt.Sprintf("Week %d: %s\n", step.Week, step.Title))
		if step.Milestone != "" {
			sb.WriteString(fmt.Sprintf("    Milestone: %s\n", step.Milestone))
		}
		if i < len(steps)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs a full analysis report section by section.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}
	p.PrintHiddenSkills(report.HiddenSkills)
	p.PrintMatchedJobs(report.MatchedJobs)
	p.PrintRoadmap(report.Roadmap)
}
