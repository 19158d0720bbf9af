package perfband

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// descSession prints out the session lifecycle info in a fancy format
func descSession(action string, message string) {
	char := "⏱"
	colors := text.Colors{text.FgBlack, text.BgHiGreen}
	switch action {
	case "begin":
		colors = text.Colors{text.FgBlack, text.BgHiCyan}
	case "report":
		colors = text.Colors{text.FgBlack, text.BgHiGreen}
	}

	fmt.Printf(
		colors.Sprintf(
			"%2s %-8s >> %-40s %2s",
			strings.Repeat(char, 2),
			strings.ToUpper(action),
			message,
			strings.Repeat(char, 2),
		))
	fmt.Print("\n")
}
