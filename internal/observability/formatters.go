// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-navigator/internal/types"
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContact outputs the extracted contact details.
func (p *Printer) PrintContact(contact *types.ContactInfo) {
	if contact == nil || contact.IsZero() {
		return
	}

	var sb strings.Builder
	if contact.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", contact.Name))
	}
	if contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", contact.Email))
	}
	if contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", contact.Phone))
	}
	if contact.City != "" {
		sb.WriteString(fmt.Sprintf("City:   %s\n", contact.City))
	}

	p.printBox("CONTACT DETAILS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the mapped skill collection with taxonomy metadata.
func (p *Printer) PrintSkills(skills []types.Skill) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mapped %d skills:\n\n", len(skills)))

	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := skills[i]
		name := skill.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", name))
		sb.WriteString(fmt.Sprintf("  %s / %s\n", skill.Category, skill.Level))
	}

	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(skills)-maxItemsToShow))
	}

	p.printBox("MAPPED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerPaths outputs the matched career paths with scores.
func (p *Printer) PrintCareerPaths(paths []types.CareerPath) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d career paths:\n\n", len(paths)))

	count := min(len(paths), maxItemsToShow)
	for i := 0; i < count; i++ {
		path := paths[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%d%%)\n", i+1, path.Title, path.Match))
		if path.SOCCode != "" {
			sb.WriteString(fmt.Sprintf("    SOC: %s", path.SOCCode))
			if path.Outlook != "" {
				sb.WriteString(fmt.Sprintf("  Outlook: %s", path.Outlook))
			}
			sb.WriteString("\n")
		}
		if len(path.SkillsToLearn) > 0 {
			toLearn := strings.Join(path.SkillsToLearn, ", ")
			if len(toLearn) > 40 {
				toLearn = toLearn[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Learn: %s\n", toLearn))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(paths) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more paths", len(paths)-maxItemsToShow))
	}

	p.printBox("CAREER PATHS", sb.String())
}

// PrintPathway outputs a learning pathway summary.
func (p *Printer) PrintPathway(pathway *types.LearningPathway) {
	if pathway == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Timeline:    %s\n", pathway.Timeline))
	sb.WriteString(fmt.Sprintf("Difficulty:  %s\n", pathway.Difficulty))

	if pathway.IsEmpty() {
		sb.WriteString("\nNo learning steps returned.")
		p.printBox("LEARNING PATHWAY", sb.String())
		return
	}

	sb.WriteString("\n")
	count := min(len(pathway.LearningSteps), maxItemsToShow)
	for i := 0; i < count; i++ {
		step := pathway.LearningSteps[i]
		title := step.Title
		if len(title) > 42 {
			title = title[:39] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", step.Step, title, step.Duration))
	}
	if len(pathway.LearningSteps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more steps\n", len(pathway.LearningSteps)-maxItemsToShow))
	}

	p.printBox("LEARNING PATHWAY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMarket outputs a job market snapshot summary.
func (p *Printer) PrintJobMarket(snapshot *types.JobMarketSnapshot) {
	if snapshot == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Openings:  %s\n", snapshot.TotalEstimate))
	sb.WriteString(fmt.Sprintf("Remote:    %s\n", snapshot.RemotePercentage))
	sb.WriteString(fmt.Sprintf("Salary:    %s\n", snapshot.AverageSalary))

	if len(snapshot.SampleListings) > 0 {
		sb.WriteString("\nSample listings:\n")
		count := min(len(snapshot.SampleListings), 3)
		for i := 0; i < count; i++ {
			listing := snapshot.SampleListings[i]
			line := fmt.Sprintf("  • %s @ %s", listing.Title, listing.Company)
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(line + "\n")
		}
		if len(snapshot.SampleListings) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(snapshot.SampleListings)-3))
		}
	}

	p.printBox("JOB MARKET", strings.TrimSuffix(sb.String(), "\n"))
}
