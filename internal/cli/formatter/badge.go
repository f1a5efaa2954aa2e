package formatter

// MilestoneBadge returns the achievement label for a progress
// percentage (0-100 scale).
func MilestoneBadge(progress float64) string {
	switch {
	case progress >= 100:
		return StyleGreen.Render("🎯 Goal Achieved!")
	case progress >= 75:
		return StyleGreen.Render("🚀 Almost There!")
	case progress >= 50:
		return StyleYellow.Render("🌟 Halfway There!")
	case progress >= 25:
		return StyleYellow.Render("💪 Making Progress!")
	default:
		return StyleDim.Render("New Goal")
	}
}

// MilestoneToast returns the one-line celebration shown when a progress
// update crosses the given milestone threshold (50, 75 or 100).
func MilestoneToast(milestone float64) string {
	switch {
	case milestone >= 100:
		return StyleGreen.Render("🎯 🎉 Goal Completed!")
	case milestone >= 75:
		return StyleGreen.Render("🚀 Almost there! Keep going!")
	case milestone >= 50:
		return StyleYellow.Render("🌟 Halfway there!")
	default:
		return ""
	}
}
