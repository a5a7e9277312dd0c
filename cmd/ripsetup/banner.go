package main

import "github.com/charmbracelet/lipgloss"

func renderBanner() string {
	logo := `
██████╗ ██╗██████╗  █████╗ ██████╗
██╔══██╗██║██╔══██╗██╔══██╗██╔══██╗
██████╔╝██║██████╔╝███████║██████╔╝
██╔══██╗██║██╔═══╝ ██╔══██║██╔═══╝
██║  ██║██║██║     ██║  ██║██║
╚═╝  ╚═╝╚═╝╚═╝     ╚═╝  ╚═╝╚═╝`

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ccbeff")).
		Bold(true).
		MarginBottom(1)

	return style.Render(logo) + "\n"
}
