// Package assistant implements the rule-based chat responder used when the
// external model is unavailable: a keyword topic classifier and a bilingual
// reply renderer.
package assistant

import "strings"

// Topic is the inferred subject of a farmer's question
type Topic string

const (
	TopicRisk       Topic = "RISK"
	TopicIrrigation Topic = "IRRIGATION"
	TopicMarket     Topic = "MARKET"
	TopicScheme     Topic = "SCHEME"
	TopicDefault    Topic = "DEFAULT"
)

// Rule maps a topic to the keywords that select it. English and Hindi
// keywords live in the same list.
type Rule struct {
	Topic    Topic
	Keywords []string
}

// Matches reports whether the lower-cased utterance contains any keyword
func (r Rule) Matches(lower string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// rules are evaluated in order; the first match wins
var rules = []Rule{
	{Topic: TopicRisk, Keywords: []string{"risk", "जोखिम"}},
	{Topic: TopicIrrigation, Keywords: []string{"irrigat", "water", "सिंचाई", "पानी"}},
	{Topic: TopicMarket, Keywords: []string{"sell", "market", "price", "बेच", "बाजार", "कीमत"}},
	{Topic: TopicScheme, Keywords: []string{"scheme", "yojana", "subsidy", "योजना", "सब्सिडी"}},
}

// Rules returns a copy of the ordered classification rules
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Topic: r.Topic, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Classify returns the topic of an utterance. Matching is plain substring
// containment on the lower-cased text, so "watermelon" is an irrigation
// question.
func Classify(utterance string) Topic {
	lower := strings.ToLower(utterance)
	for _, r := range rules {
		if r.Matches(lower) {
			return r.Topic
		}
	}
	return TopicDefault
}
