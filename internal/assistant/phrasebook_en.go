package assistant

import (
	"fmt"

	"github.com/kisanmitra/backend/internal/domain"
)

var englishPhrasebook = &phrasebook{
	// English replies quote the level code as shown on the risk card.
	riskLevels: map[domain.RiskLevel]string{
		domain.RiskLow:    "LOW",
		domain.RiskMedium: "MEDIUM",
		domain.RiskHigh:   "HIGH",
	},
	directions: map[domain.PriceDirection]string{
		domain.PriceUp:     "rising",
		domain.PriceDown:   "falling",
		domain.PriceStable: "stable",
	},

	riskDetailed: func(level string, score int, factors string) string {
		return fmt.Sprintf("Your current farm risk level is %s (Score: %d/100). Key factors: %s.", level, score, factors)
	},
	riskNoFactors: func(level string, score int) string {
		return fmt.Sprintf("Your current farm risk level is %s (Score: %d/100).", level, score)
	},
	riskGeneric: "Your farm risk assessment is available on the dashboard. Please check the main risk card.",

	irrigateNow: func(soilMoisture string) string {
		return fmt.Sprintf("It's recommended to irrigate now. Soil moisture is at %s%%.", soilMoisture)
	},
	delayIrrigation: func(delayHours *int, rainProbability, soilMoisture string) string {
		delay := "Delay irrigation for now."
		if delayHours != nil {
			delay = fmt.Sprintf("Delay irrigation by %d hours.", *delayHours)
		}
		return fmt.Sprintf("%s There's %s%% chance of rain. Soil moisture is %s%%.", delay, rainProbability, soilMoisture)
	},
	irrigationGeneric: "For irrigation guidance, please check the Smart Irrigation card on your dashboard.",

	sellNow: func(price string) string {
		return fmt.Sprintf("It's a good time to sell now. Current price is ₹%s per quintal.", price)
	},
	waitToSell: func(direction, price string) string {
		return fmt.Sprintf("Wait for now. Prices are %s. Current price is ₹%s.", direction, price)
	},
	marketGeneric: "For market timing advice, please check the Market Timing card on your dashboard.",

	schemes: "You may be eligible for several government schemes like PM-KISAN (₹6,000/year), PM Fasal Bima Yojana, and Kisan Credit Card. Check the Scheme Eligibility section on your dashboard for the complete list.",
	intro:   "I'm Kisan e-Mitra. I can help with your farming questions - ask me about risk assessment, irrigation, market timing, or government schemes.",
}
