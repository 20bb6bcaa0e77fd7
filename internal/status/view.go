package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Width(20)
)

// Render renders the status data to a string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n\n")

	b.WriteString(renderSettings(data))
	b.WriteString("\n\n")

	b.WriteString(renderLists(data))

	return b.String()
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📂 Storage root: ") + valueStyle.Render(data.StorageRoot) + "\n")
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	return b.String()
}

func renderSettings(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⚙️  Settings:") + "\n")

	configPath := data.ConfigPath
	if configPath == "" {
		configPath = "defaults (no config file)"
	}
	b.WriteString("   " + keyStyle.Render("Config: ") + subtleStyle.Render(configPath) + "\n")
	b.WriteString("   " + keyStyle.Render("Confirmations: ") + renderToggle(data.Confirmations) + "\n")
	b.WriteString("   " + keyStyle.Render("Cat selector: ") + renderToggle(data.CatSelector))

	return b.String()
}

func renderToggle(on bool) string {
	if on {
		return successStyle.Render("on")
	}
	return subtleStyle.Render("off")
}

func renderLists(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Lists:") + "\n")

	if len(data.Lists) == 0 {
		b.WriteString("   " + subtleStyle.Render("No lists found"))
		return b.String()
	}

	for _, l := range data.Lists {
		pending := fmt.Sprintf("%d pending", l.Pending)
		if l.Pending > 0 {
			pending = warningStyle.Render(pending)
		} else {
			pending = subtleStyle.Render(pending)
		}

		b.WriteString(fmt.Sprintf("   %s %s, %s\n",
			nameStyle.Render(l.Name),
			pending,
			successStyle.Render(fmt.Sprintf("%d allowed", l.Allowed))))
	}

	if data.Requested == "" && len(data.Lists) > 1 {
		b.WriteString(fmt.Sprintf("   %s %d pending, %d allowed\n",
			nameStyle.Render("total"),
			data.TotalPending(),
			data.TotalAllowed()))
	}

	// Remove trailing newline
	return strings.TrimSuffix(b.String(), "\n")
}
