package assistant

import (
	"strconv"
	"strings"

	"github.com/kisanmitra/backend/internal/domain"
)

// maxCitedFactors bounds how many risk factors a reply names
const maxCitedFactors = 2

// phrasebook holds every sentence the responder can say in one language.
// Presence checks live in Render, so a new language only needs a new
// phrasebook.
type phrasebook struct {
	riskLevels map[domain.RiskLevel]string
	directions map[domain.PriceDirection]string

	riskDetailed  func(level string, score int, factors string) string
	riskNoFactors func(level string, score int) string
	riskGeneric   string

	irrigateNow       func(soilMoisture string) string
	delayIrrigation   func(delayHours *int, rainProbability, soilMoisture string) string
	irrigationGeneric string

	sellNow       func(price string) string
	waitToSell    func(direction, price string) string
	marketGeneric string

	schemes string
	intro   string
}

var phrasebooks = map[domain.Language]*phrasebook{
	domain.English: englishPhrasebook,
	domain.Hindi:   hindiPhrasebook,
}

func phrasebookFor(lang domain.Language) *phrasebook {
	if p, ok := phrasebooks[lang]; ok {
		return p
	}
	return englishPhrasebook
}

// Render produces the reply for a topic. snap and each of its sub-records
// may be nil; a missing sub-record yields the generic sentence for that
// topic. The result is never empty.
func Render(topic Topic, lang domain.Language, snap *domain.ContextSnapshot) string {
	p := phrasebookFor(lang)
	if snap == nil {
		snap = &domain.ContextSnapshot{}
	}

	switch topic {
	case TopicRisk:
		if r := snap.FarmRisk; r != nil {
			level := p.riskLevel(r.OverallRisk)
			if len(r.Factors) == 0 {
				return p.riskNoFactors(level, r.RiskScore)
			}
			return p.riskDetailed(level, r.RiskScore, factorNames(r.Factors))
		}
		return p.riskGeneric
	case TopicIrrigation:
		if g := snap.Irrigation; g != nil {
			if g.Action == domain.IrrigateNow {
				return p.irrigateNow(formatNumber(g.SoilMoisture))
			}
			return p.delayIrrigation(g.DelayHours, formatNumber(g.RainProbability), formatNumber(g.SoilMoisture))
		}
		return p.irrigationGeneric
	case TopicMarket:
		if m := snap.Market; m != nil {
			price := formatNumber(m.CurrentPrice)
			if m.Action == domain.SellNow {
				return p.sellNow(price)
			}
			return p.waitToSell(p.direction(m.ExpectedDirection), price)
		}
		return p.marketGeneric
	case TopicScheme:
		return p.schemes
	default:
		return p.intro
	}
}

func (p *phrasebook) riskLevel(level domain.RiskLevel) string {
	if s, ok := p.riskLevels[level]; ok {
		return s
	}
	return string(level)
}

func (p *phrasebook) direction(d domain.PriceDirection) string {
	if s, ok := p.directions[d]; ok {
		return s
	}
	return p.directions[domain.PriceStable]
}

func factorNames(factors []domain.RiskFactor) string {
	n := min(len(factors), maxCitedFactors)
	names := make([]string, 0, n)
	for _, f := range factors[:n] {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}

// formatNumber prints prices and percentages without trailing zeros or
// exponents: 2450, 2450.5, 68.5
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
