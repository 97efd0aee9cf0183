package tui

func SuccessIcon(colorize bool) string {
	icon := "✅"
	if colorize {
		return QuestionStyle.Render(icon)
	}
	return icon
}

func ErrorIcon(colorize bool) string {
	icon := "❌"
	if colorize {
		return ErrorStyle.Render(icon)
	}
	return icon
}

func WarningIcon(colorize bool) string {
	icon := "⚠️"
	if colorize {
		return WarningStyle.Render(icon)
	}
	return icon
}
