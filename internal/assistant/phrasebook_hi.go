package assistant

import (
	"fmt"

	"github.com/kisanmitra/backend/internal/domain"
)

var hindiPhrasebook = &phrasebook{
	riskLevels: map[domain.RiskLevel]string{
		domain.RiskLow:    "कम",
		domain.RiskMedium: "मध्यम",
		domain.RiskHigh:   "उच्च",
	},
	directions: map[domain.PriceDirection]string{
		domain.PriceUp:     "बढ़",
		domain.PriceDown:   "गिर",
		domain.PriceStable: "स्थिर",
	},

	riskDetailed: func(level string, score int, factors string) string {
		return fmt.Sprintf("आपका वर्तमान फार्म जोखिम स्तर %s है (स्कोर: %d/100)। मुख्य कारक: %s।", level, score, factors)
	},
	riskNoFactors: func(level string, score int) string {
		return fmt.Sprintf("आपका वर्तमान फार्म जोखिम स्तर %s है (स्कोर: %d/100)।", level, score)
	},
	riskGeneric: "आपके फार्म का जोखिम मूल्यांकन डैशबोर्ड पर उपलब्ध है। कृपया मुख्य कार्ड देखें।",

	irrigateNow: func(soilMoisture string) string {
		return fmt.Sprintf("अभी सिंचाई करने की सिफारिश है। मिट्टी की नमी %s%% है।", soilMoisture)
	},
	delayIrrigation: func(delayHours *int, rainProbability, soilMoisture string) string {
		delay := "सिंचाई को अभी टालें।"
		if delayHours != nil {
			delay = fmt.Sprintf("सिंचाई को %d घंटे के लिए टालें।", *delayHours)
		}
		return fmt.Sprintf("%s बारिश की %s%% संभावना है। मिट्टी की नमी %s%% है।", delay, rainProbability, soilMoisture)
	},
	irrigationGeneric: "सिंचाई मार्गदर्शन के लिए डैशबोर्ड पर स्मार्ट सिंचाई कार्ड देखें।",

	sellNow: func(price string) string {
		return fmt.Sprintf("अभी बेचने का अच्छा समय है। वर्तमान मूल्य ₹%s प्रति क्विंटल है।", price)
	},
	waitToSell: func(direction, price string) string {
		return fmt.Sprintf("अभी प्रतीक्षा करें। कीमतें %s रही हैं। वर्तमान मूल्य ₹%s है।", direction, price)
	},
	marketGeneric: "बाजार समय सलाह के लिए डैशबोर्ड पर मार्केट टाइमिंग कार्ड देखें।",

	schemes: "आप कई सरकारी योजनाओं के लिए पात्र हो सकते हैं जैसे PM-KISAN (₹6,000/वर्ष), PM फसल बीमा योजना, और किसान क्रेडिट कार्ड। पूरी सूची के लिए डैशबोर्ड पर योजना पात्रता अनुभाग देखें।",
	intro:   "मैं किसान ई-मित्र हूं। मैं आपकी खेती संबंधी प्रश्नों में मदद कर सकता हूं - जोखिम मूल्यांकन, सिंचाई, बाजार समय, या सरकारी योजनाओं के बारे में पूछें।",
}
