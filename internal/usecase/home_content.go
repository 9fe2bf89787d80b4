package usecase

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HomeContent struct {
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline"`
	About    string    `json:"about"`
	Features []Feature `json:"features"`
}

type Footer struct {
	Copyright string `json:"copyright"`
	Contact   string `json:"contact"`
	Note      string `json:"note"`
}

var homeContent = HomeContent{
	Title:   "GasVision AI",
	Tagline: "Predict. Monitor. Save.",
	About: "GasVision AI is a smart LPG delivery and monitoring system. " +
		"It helps households and businesses follow their gas consumption, " +
		"predict refill needs, and never run out of gas unexpectedly.",
	Features: []Feature{
		{Title: "Smart Monitoring", Description: "Tracking of LPG levels with consumption analysis"},
		{Title: "Smart Notifications", Description: "Get alerts before your gas runs out"},
		{Title: "Predictions", Description: "Estimate your next refill from your order history"},
		{Title: "Usage History", Description: "Tracking and visualization of your consumption data"},
		{Title: "Auto-Ordering", Description: "Refill scheduling with suppliers"},
		{Title: "Vision AI (Coming Soon)", Description: "Monitor cylinder levels using a smartphone camera"},
	},
}

var footer = Footer{
	Copyright: "© 2025 GasVision AI - In collaboration with Green Wells Energies",
	Contact:   "Contact: info@gasvisionai.com | +254 800 GAS VISION",
	Note:      "Built for smarter gas management",
}
